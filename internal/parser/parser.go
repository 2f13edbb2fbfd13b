// Package parser turns raw bank statement exports (CSV/OFX/QFX) into the
// canonical transaction table. One parser per supported bank plus a generic
// fallback; the Dispatcher routes files to the first parser that recognizes
// them.
package parser

import (
	"github.com/spendview-dev/spendview/internal/model"
)

// Parser handles one bank's statement exports.
type Parser interface {
	// Bank returns the source identifier stamped on every parsed row.
	Bank() string
	// CanParse reports whether the file looks like this bank's export.
	// It never fails; any internal error reads as false.
	CanParse(path string) bool
	// Parse extracts normalized transactions from the file.
	Parse(path string) ([]model.Transaction, error)
}

// DefaultParsers returns all bank parsers in dispatch priority order.
// The generic parser accepts any CSV unconditionally and must stay last.
func DefaultParsers() []Parser {
	return []Parser{
		&AmexParser{},
		&ChaseParser{},
		&DiscoverParser{},
		&GenericParser{},
	}
}
