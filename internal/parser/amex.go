package parser

import (
	"fmt"
	"path/filepath"

	"github.com/spendview-dev/spendview/internal/model"
)

// AmexParser handles American Express statement exports.
type AmexParser struct{}

var (
	amexCSVTokens = []string{
		"american express",
		"amex",
		"date,description,amount",
		"transaction date",
		"reference,description,amount",
	}
	amexOFXTokens = []string{"american express", "amex"}

	amexAliases = columnAliases{
		date:   []string{"date", "transaction date", "trans date"},
		desc:   []string{"description", "merchant", "vendor"},
		amount: []string{"amount", "debit", "credit"},
	}
)

// Bank returns the source identifier.
func (p *AmexParser) Bank() string { return "Amex" }

// CanParse checks the extension and sniffs the file head for Amex signatures.
func (p *AmexParser) CanParse(path string) bool {
	switch fileExt(path) {
	case extCSV:
		head, ok := sniffCSV(path)
		return ok && containsAny(head, amexCSVTokens)
	case extOFX, extQFX:
		head, ok := sniffOFX(path)
		return ok && containsAny(head, amexOFXTokens)
	}
	return false
}

// Parse dispatches on extension.
func (p *AmexParser) Parse(path string) ([]model.Transaction, error) {
	switch fileExt(path) {
	case extCSV:
		return parseCSV(path, p.Bank(), csvOptions{aliases: amexAliases})
	case extOFX, extQFX:
		return parseOFX(path, p.Bank())
	}
	return nil, fmt.Errorf("%s: unsupported file format %q", filepath.Base(path), fileExt(path))
}
