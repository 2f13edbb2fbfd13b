package parser

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendview-dev/spendview/internal/model"
)

func TestAmexParser_CanParse(t *testing.T) {
	p := &AmexParser{}
	assert.True(t, p.CanParse("../../testdata/amex.csv"))
	assert.True(t, p.CanParse("../../testdata/amex.ofx"))
	assert.False(t, p.CanParse("../../testdata/generic.csv"))
	assert.False(t, p.CanParse("../../testdata/notes.txt"))
}

func TestAmexParser_ParseCSV(t *testing.T) {
	p := &AmexParser{}
	txns, err := p.Parse("../../testdata/amex.csv")
	require.NoError(t, err)
	// The rows with an unparseable date and amount are dropped.
	require.Len(t, txns, 4)

	first := txns[0]
	assert.Equal(t, "STARBUCKS STORE #123", first.Description)
	assert.Equal(t, "4.50", first.Amount.StringFixed(2))
	assert.Equal(t, "Amex", first.Source)
	assert.Equal(t, model.Uncategorized, first.Category)
	assert.Equal(t, 2024, first.Date.Year())
	assert.Equal(t, 1, int(first.Date.Month()))
	assert.Equal(t, 5, first.Date.Day())
	assert.NotEmpty(t, first.ID)
}

func TestChaseParser_CanParse(t *testing.T) {
	p := &ChaseParser{}
	assert.True(t, p.CanParse("../../testdata/chase_card.csv"))
	assert.True(t, p.CanParse("../../testdata/chase_checking.csv"))
	assert.False(t, p.CanParse("../../testdata/generic.csv"))
}

func TestChaseParser_ParseCard(t *testing.T) {
	p := &ChaseParser{}
	txns, err := p.Parse("../../testdata/chase_card.csv")
	require.NoError(t, err)
	require.Len(t, txns, 3)

	first := txns[0]
	assert.Equal(t, "UBER EATS", first.Description)
	assert.Equal(t, "-23.45", first.Amount.StringFixed(2))
	assert.Equal(t, "Chase", first.Source)
	assert.Equal(t, "Food & Drink", first.OriginalCategory)
	assert.Equal(t, "Sale", first.TransactionType)
	// Post Date is the resolved date column.
	assert.Equal(t, 5, first.Date.Day())
}

func TestChaseParser_ParseChecking(t *testing.T) {
	p := &ChaseParser{}
	txns, err := p.Parse("../../testdata/chase_checking.csv")
	require.NoError(t, err)
	require.Len(t, txns, 3)

	assert.Equal(t, "GITHUB *PRO SUBSCRIPTION", txns[0].Description)
	assert.Equal(t, "ACH_DEBIT", txns[0].TransactionType)
	assert.Empty(t, txns[0].OriginalCategory)
	assert.Equal(t, "3500.00", txns[2].Amount.StringFixed(2))
	assert.True(t, txns[2].Amount.IsPositive())
}

func TestDiscoverParser_CanParse(t *testing.T) {
	p := &DiscoverParser{}
	assert.True(t, p.CanParse("../../testdata/discover.csv"))
	assert.False(t, p.CanParse("../../testdata/generic.csv"))
}

func TestDiscoverParser_Parse(t *testing.T) {
	p := &DiscoverParser{}
	txns, err := p.Parse("../../testdata/discover.csv")
	require.NoError(t, err)
	require.Len(t, txns, 2)

	assert.Equal(t, "NETFLIX.COM", txns[0].Description)
	assert.Equal(t, "Discover", txns[0].Source)
	assert.Equal(t, "Services", txns[0].OriginalCategory)
	assert.Equal(t, "Supermarkets", txns[1].OriginalCategory)
}

func TestGenericParser_Parse(t *testing.T) {
	p := &GenericParser{}
	txns, err := p.Parse("../../testdata/generic.csv")
	require.NoError(t, err)
	require.Len(t, txns, 3)

	assert.Equal(t, "LOCAL COFFEE ROASTERS", txns[0].Description)
	assert.Equal(t, "4.75", txns[0].Amount.StringFixed(2))
	assert.Equal(t, "Generic", txns[0].Source)
}

func TestGenericParser_ContentInference(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "export.csv")
	csv := "A,B,C\n2024-03-01,COFFEE SHOP,4.00\n2024-03-02,BOOK STORE,18.50\n"
	require.NoError(t, os.WriteFile(path, []byte(csv), 0o644))

	p := &GenericParser{}
	txns, err := p.Parse(path)
	require.NoError(t, err)
	require.Len(t, txns, 2)
	assert.Equal(t, "COFFEE SHOP", txns[0].Description)
	assert.Equal(t, "18.50", txns[1].Amount.StringFixed(2))
}

func TestGenericParser_SchemaError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "export.csv")
	require.NoError(t, os.WriteFile(path, []byte("Foo,Bar\nx,y\n"), 0o644))

	p := &GenericParser{}
	_, err := p.Parse(path)
	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Contains(t, schemaErr.Missing, "date")
	assert.Contains(t, schemaErr.Missing, "amount")
}

func TestAmexParser_SchemaError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "amex.csv")
	require.NoError(t, os.WriteFile(path, []byte("Date,Description\n01/05/2024,X\n"), 0o644))

	p := &AmexParser{}
	_, err := p.Parse(path)
	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, []string{"amount"}, schemaErr.Missing)
}

func TestParseCSV_Unreadable(t *testing.T) {
	p := &AmexParser{}
	_, err := p.Parse(filepath.Join(t.TempDir(), "missing_amex.csv"))
	assert.True(t, errors.Is(err, ErrUnreadable))
}
