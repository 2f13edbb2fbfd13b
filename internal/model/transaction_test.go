package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestTransaction_Month(t *testing.T) {
	txn := Transaction{Date: day("2024-01-05")}
	assert.Equal(t, "2024-01", txn.Month())
}

func TestTable_SortByDate(t *testing.T) {
	table := Table{
		{Date: day("2024-02-03")},
		{Date: day("2024-01-05")},
		{Date: day("2024-01-20")},
	}
	table.SortByDate()
	assert.Equal(t, day("2024-01-05"), table[0].Date)
	assert.Equal(t, day("2024-02-03"), table[2].Date)
}

func TestTable_Between(t *testing.T) {
	table := Table{
		{Date: day("2024-01-05")},
		{Date: day("2024-01-20")},
		{Date: day("2024-02-03")},
	}

	// Inclusive on both ends.
	got := table.Between(day("2024-01-05"), day("2024-01-20"))
	assert.Len(t, got, 2)

	// Zero bounds are open.
	assert.Len(t, table.Between(time.Time{}, day("2024-01-31")), 2)
	assert.Len(t, table.Between(day("2024-01-21"), time.Time{}), 1)
	assert.Len(t, table.Between(time.Time{}, time.Time{}), 3)
}

func TestTable_Categories(t *testing.T) {
	table := Table{
		{Category: "Dining"},
		{Category: "Groceries"},
		{Category: "Dining"},
		{Category: Uncategorized},
	}
	assert.Equal(t, []string{"Dining", "Groceries", Uncategorized}, table.Categories())
}

func TestTable_Sum(t *testing.T) {
	table := Table{
		{Amount: decimal.RequireFromString("4.50")},
		{Amount: decimal.RequireFromString("-1.25")},
	}
	assert.Equal(t, "3.25", table.Sum().StringFixed(2))
	assert.True(t, Table{}.Sum().IsZero())
}
