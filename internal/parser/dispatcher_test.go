package parser

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDispatcher() *Dispatcher {
	return NewDispatcher(zerolog.Nop())
}

func TestDispatcher_ParseFile(t *testing.T) {
	d := newTestDispatcher()
	txns, err := d.ParseFile("../../testdata/amex.csv")
	require.NoError(t, err)
	require.Len(t, txns, 4)
	assert.Equal(t, "Amex", txns[0].Source)
}

func TestDispatcher_GenericFallthrough(t *testing.T) {
	d := newTestDispatcher()
	txns, err := d.ParseFile("../../testdata/generic.csv")
	require.NoError(t, err)
	require.Len(t, txns, 3)
	assert.Equal(t, "Generic", txns[0].Source)
}

func TestDispatcher_UnsupportedFormat(t *testing.T) {
	d := newTestDispatcher()
	_, err := d.ParseFile("../../testdata/notes.txt")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file format")
}

func TestDispatcher_ParseFiles(t *testing.T) {
	d := newTestDispatcher()
	res, err := d.ParseFiles([]string{
		"../../testdata/amex.csv",
		"../../testdata/generic.csv",
	})
	require.NoError(t, err)
	assert.Len(t, res.Parsed, 2)
	assert.Empty(t, res.Failures)
	require.Len(t, res.Transactions, 7)

	// Combined table sorted by date ascending.
	for i := 1; i < len(res.Transactions); i++ {
		assert.False(t, res.Transactions[i].Date.Before(res.Transactions[i-1].Date))
	}
}

func TestDispatcher_PartialFailure(t *testing.T) {
	d := newTestDispatcher()
	res, err := d.ParseFiles([]string{
		"../../testdata/amex.csv",
		"../../testdata/notes.txt",
	})
	require.NoError(t, err)
	assert.Len(t, res.Parsed, 1)
	require.Len(t, res.Failures, 1)
	assert.Equal(t, "notes.txt", res.Failures[0].File)
	assert.Len(t, res.Transactions, 4)
}

func TestDispatcher_AllFailed(t *testing.T) {
	d := newTestDispatcher()
	_, err := d.ParseFiles([]string{"../../testdata/notes.txt"})
	var batchErr *BatchError
	require.ErrorAs(t, err, &batchErr)
	require.Len(t, batchErr.Failures, 1)
	assert.Contains(t, batchErr.Error(), "notes.txt")
}

func TestDispatcher_NoFiles(t *testing.T) {
	d := newTestDispatcher()
	_, err := d.ParseFiles(nil)
	assert.EqualError(t, err, "no files provided")
}
