// Package pivot builds read-only aggregations of a categorized transaction
// table. Every builder recomputes from scratch over the table it is given;
// nothing is patched incrementally, so applying a date filter means
// re-filtering the table and rebuilding. That keeps stale aggregation state
// from leaking between filter changes.
package pivot

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/spendview-dev/spendview/internal/model"
)

// TotalLabel names the appended total row and column.
const TotalLabel = "Total"

// CategoryRow is one category's monthly sums. ByMonth is zero-filled for
// every month present in the pivot.
type CategoryRow struct {
	Category string
	ByMonth  map[string]decimal.Decimal
	Total    decimal.Decimal
}

// CategoryPivot is the category x month summary with totals on both axes.
type CategoryPivot struct {
	Months      []string // "YYYY-MM", sorted chronologically
	Rows        []CategoryRow
	MonthTotals map[string]decimal.Decimal
	GrandTotal  decimal.Decimal
}

// ByCategoryMonth sums amounts by (category, month). Rows are sorted by
// category name ascending; missing combinations are zero.
func ByCategoryMonth(t model.Table) CategoryPivot {
	p := CategoryPivot{
		Months:      monthsOf(t),
		MonthTotals: make(map[string]decimal.Decimal),
	}

	cells := make(map[string]map[string]decimal.Decimal)
	for _, txn := range t {
		row, ok := cells[txn.Category]
		if !ok {
			row = make(map[string]decimal.Decimal)
			cells[txn.Category] = row
		}
		row[txn.Month()] = row[txn.Month()].Add(txn.Amount)
	}

	categories := make([]string, 0, len(cells))
	for c := range cells {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	for _, c := range categories {
		row := CategoryRow{Category: c, ByMonth: make(map[string]decimal.Decimal, len(p.Months))}
		for _, m := range p.Months {
			v := cells[c][m]
			row.ByMonth[m] = v
			row.Total = row.Total.Add(v)
			p.MonthTotals[m] = p.MonthTotals[m].Add(v)
		}
		p.GrandTotal = p.GrandTotal.Add(row.Total)
		p.Rows = append(p.Rows, row)
	}
	return p
}

// MerchantRow is one (merchant, category) pair's monthly sums. Merchant is
// the uppercased transaction description.
type MerchantRow struct {
	Merchant string
	Category string
	ByMonth  map[string]decimal.Decimal
	Total    decimal.Decimal
}

// MerchantPivot is the merchant x month summary, rows sorted by total amount
// descending.
type MerchantPivot struct {
	Months []string
	Rows   []MerchantRow
}

// ByMerchantMonth sums amounts by (uppercased description, category, month).
func ByMerchantMonth(t model.Table) MerchantPivot {
	p := MerchantPivot{Months: monthsOf(t)}

	type key struct{ merchant, category string }
	cells := make(map[key]map[string]decimal.Decimal)
	for _, txn := range t {
		k := key{merchant: strings.ToUpper(txn.Description), category: txn.Category}
		row, ok := cells[k]
		if !ok {
			row = make(map[string]decimal.Decimal)
			cells[k] = row
		}
		row[txn.Month()] = row[txn.Month()].Add(txn.Amount)
	}

	for k, byMonth := range cells {
		row := MerchantRow{Merchant: k.merchant, Category: k.category, ByMonth: make(map[string]decimal.Decimal, len(p.Months))}
		for _, m := range p.Months {
			v := byMonth[m]
			row.ByMonth[m] = v
			row.Total = row.Total.Add(v)
		}
		p.Rows = append(p.Rows, row)
	}

	sort.Slice(p.Rows, func(i, j int) bool {
		if c := p.Rows[i].Total.Cmp(p.Rows[j].Total); c != 0 {
			return c > 0
		}
		return p.Rows[i].Merchant < p.Rows[j].Merchant
	})
	return p
}

// MerchantTotal is one (category, merchant) sum for drill-down views.
type MerchantTotal struct {
	Category string
	Merchant string
	Amount   decimal.Decimal
}

// ByCategoryMerchant sums amounts by (category, uppercased description),
// sorted by category ascending then amount descending within the category.
func ByCategoryMerchant(t model.Table) []MerchantTotal {
	type key struct{ category, merchant string }
	sums := make(map[key]decimal.Decimal)
	for _, txn := range t {
		k := key{category: txn.Category, merchant: strings.ToUpper(txn.Description)}
		sums[k] = sums[k].Add(txn.Amount)
	}

	out := make([]MerchantTotal, 0, len(sums))
	for k, v := range sums {
		out = append(out, MerchantTotal{Category: k.category, Merchant: k.merchant, Amount: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		if c := out[i].Amount.Cmp(out[j].Amount); c != 0 {
			return c > 0
		}
		return out[i].Merchant < out[j].Merchant
	})
	return out
}

// monthsOf returns the distinct months present in the table, sorted
// chronologically. Only observed months appear; gaps are not synthesized.
func monthsOf(t model.Table) []string {
	seen := make(map[string]struct{})
	var months []string
	for _, txn := range t {
		m := txn.Month()
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		months = append(months, m)
	}
	sort.Strings(months)
	return months
}
