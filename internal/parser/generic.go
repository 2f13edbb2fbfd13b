package parser

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spendview-dev/spendview/internal/model"
)

// GenericParser is the fallback for unrecognized CSV exports. It resolves the
// three required columns by name where possible and by content inspection
// otherwise.
type GenericParser struct{}

var genericAliases = columnAliases{
	date:   []string{"date", "time", "when", "day"},
	desc:   []string{"description", "desc", "narrative", "details", "merchant", "vendor", "payee", "memo"},
	amount: []string{"amount", "sum", "value", "price", "cost", "debit", "credit", "payment"},
}

// Bank returns the source identifier.
func (p *GenericParser) Bank() string { return "Generic" }

// CanParse accepts any CSV. The dispatcher keeps this parser last.
func (p *GenericParser) CanParse(path string) bool {
	return fileExt(path) == extCSV
}

// Parse resolves columns by alias with content verification, then falls back
// to pure content inference: the first column whose values all parse as dates,
// the first whose values all parse as numbers, and the first remaining
// non-numeric column as the description.
func (p *GenericParser) Parse(path string) ([]model.Transaction, error) {
	if fileExt(path) != extCSV {
		return nil, fmt.Errorf("%s: unsupported file format %q", filepath.Base(path), fileExt(path))
	}

	records, err := readRecords(path)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, &SchemaError{File: filepath.Base(path), Missing: []string{"date", "description", "amount"}}
	}
	header, rows := records[0], records[1:]

	date, desc, amount := -1, -1, -1
	for i, col := range header {
		name := strings.ToLower(col)
		if date < 0 && matchesAny(name, genericAliases.date) && allDates(rows, i) {
			date = i
		}
		if desc < 0 && i != date && matchesAny(name, genericAliases.desc) {
			desc = i
		}
		if amount < 0 && i != date && i != desc && matchesAny(name, genericAliases.amount) && allNumeric(rows, i) {
			amount = i
		}
	}

	// Content-based fallbacks when names gave nothing away.
	if date < 0 {
		for i := range header {
			if i != desc && i != amount && allDates(rows, i) {
				date = i
				break
			}
		}
	}
	if amount < 0 {
		for i := range header {
			if i != date && i != desc && allNumeric(rows, i) {
				amount = i
				break
			}
		}
	}
	if desc < 0 {
		for i := range header {
			if i != date && i != amount && !allNumeric(rows, i) {
				desc = i
				break
			}
		}
	}

	var missing []string
	if date < 0 {
		missing = append(missing, "date")
	}
	if desc < 0 {
		missing = append(missing, "description")
	}
	if amount < 0 {
		missing = append(missing, "amount")
	}
	if len(missing) > 0 {
		return nil, &SchemaError{File: filepath.Base(path), Missing: missing}
	}

	schema := rowSchema{date: date, desc: desc, amount: amount, origCategory: -1, txnType: -1}
	return extractRows(rows, schema, p.Bank()), nil
}
