package parser

import (
	"fmt"
	"path/filepath"

	"github.com/spendview-dev/spendview/internal/model"
)

// DiscoverParser handles Discover statement exports.
type DiscoverParser struct{}

var (
	discoverCSVTokens = []string{
		"discover",
		"trans. date,post date,description,amount,category",
		"transaction date,posted date,description,amount,category",
	}
	discoverOFXTokens = []string{"discover"}

	discoverAliases = columnAliases{
		date:   []string{"trans. date", "transaction date", "date"},
		desc:   []string{"description"},
		amount: []string{"amount"},
	}
)

// Bank returns the source identifier.
func (p *DiscoverParser) Bank() string { return "Discover" }

// CanParse checks the extension and sniffs the file head for Discover
// signatures.
func (p *DiscoverParser) CanParse(path string) bool {
	switch fileExt(path) {
	case extCSV:
		head, ok := sniffCSV(path)
		return ok && containsAny(head, discoverCSVTokens)
	case extOFX, extQFX:
		head, ok := sniffOFX(path)
		return ok && containsAny(head, discoverOFXTokens)
	}
	return false
}

// Parse dispatches on extension. Discover CSV exports carry their own
// Category column, kept as a passthrough field.
func (p *DiscoverParser) Parse(path string) ([]model.Transaction, error) {
	switch fileExt(path) {
	case extCSV:
		return parseCSV(path, p.Bank(), csvOptions{aliases: discoverAliases, passthrough: true})
	case extOFX, extQFX:
		return parseOFX(path, p.Bank())
	}
	return nil, fmt.Errorf("%s: unsupported file format %q", filepath.Base(path), fileExt(path))
}
