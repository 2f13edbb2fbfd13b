package model

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Uncategorized is the category every freshly parsed transaction starts with.
const Uncategorized = "Uncategorized"

// Transaction is one normalized statement row. Source is the name of the bank
// parser that produced the row and never changes afterwards. Amount keeps the
// sign convention of the source export: OFX encodes expenses as negative while
// some CSV exports list them as positive; no normalization is applied.
type Transaction struct {
	ID          string
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Source      string
	Category    string

	// Passthrough fields kept for traceability only; never aggregated.
	OriginalCategory string
	TransactionType  string
}

// Month returns the calendar month of the transaction as "YYYY-MM".
func (t Transaction) Month() string {
	return t.Date.Format("2006-01")
}

// Table is the in-memory transaction collection passed between pipeline stages.
// Stages never mutate a table they received; they return a new one.
type Table []Transaction

// SortByDate orders the table by date ascending. Relative order of rows with
// equal dates is unspecified after merging multiple files.
func (t Table) SortByDate() {
	sort.Slice(t, func(i, j int) bool { return t[i].Date.Before(t[j].Date) })
}

// Between returns a new table containing rows with from <= date <= to.
// Zero-valued bounds are open on that side.
func (t Table) Between(from, to time.Time) Table {
	out := make(Table, 0, len(t))
	for _, txn := range t {
		if !from.IsZero() && txn.Date.Before(from) {
			continue
		}
		if !to.IsZero() && txn.Date.After(to) {
			continue
		}
		out = append(out, txn)
	}
	return out
}

// Categories returns the distinct category labels present, in row order.
func (t Table) Categories() []string {
	seen := make(map[string]struct{}, len(t))
	var out []string
	for _, txn := range t {
		if _, ok := seen[txn.Category]; ok {
			continue
		}
		seen[txn.Category] = struct{}{}
		out = append(out, txn.Category)
	}
	return out
}

// Sum returns the total of all amounts. Signs are passed through from the
// source exports, so a mixed-source table may mix conventions.
func (t Table) Sum() decimal.Decimal {
	total := decimal.Zero
	for _, txn := range t {
		total = total.Add(txn.Amount)
	}
	return total
}
