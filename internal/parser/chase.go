package parser

import (
	"fmt"
	"path/filepath"

	"github.com/spendview-dev/spendview/internal/model"
)

// ChaseParser handles Chase statement exports, both the card format
// (Transaction Date,Post Date,Description,Category,Type,Amount) and the
// checking format (Details,Posting Date,Description,Amount,Type,...).
type ChaseParser struct{}

var (
	chaseCSVTokens = []string{
		"chase",
		"jpmcb",
		"jpmorgan",
		"transaction date,post date,description,category,type,amount",
		"details,posting date,description,amount,type,balance,check or slip #",
	}
	chaseOFXTokens = []string{"chase", "jpmorgan"}

	chaseAliases = columnAliases{
		date:   []string{"transaction date", "posting date", "date"},
		desc:   []string{"description", "details"},
		amount: []string{"amount"},
	}
)

// Bank returns the source identifier.
func (p *ChaseParser) Bank() string { return "Chase" }

// CanParse checks the extension and sniffs the file head for Chase signatures.
func (p *ChaseParser) CanParse(path string) bool {
	switch fileExt(path) {
	case extCSV:
		head, ok := sniffCSV(path)
		return ok && containsAny(head, chaseCSVTokens)
	case extOFX, extQFX:
		head, ok := sniffOFX(path)
		return ok && containsAny(head, chaseOFXTokens)
	}
	return false
}

// Parse dispatches on extension. Chase CSV exports carry their own Category
// and Type columns, kept as passthrough fields.
func (p *ChaseParser) Parse(path string) ([]model.Transaction, error) {
	switch fileExt(path) {
	case extCSV:
		return parseCSV(path, p.Bank(), csvOptions{aliases: chaseAliases, passthrough: true})
	case extOFX, extQFX:
		return parseOFX(path, p.Bank())
	}
	return nil, fmt.Errorf("%s: unsupported file format %q", filepath.Base(path), fileExt(path))
}
