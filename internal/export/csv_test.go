package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendview-dev/spendview/internal/model"
)

func sampleTable() model.Table {
	return model.Table{
		{
			Date:        time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
			Description: "STARBUCKS STORE #123",
			Amount:      decimal.RequireFromString("4.50"),
			Category:    "Dining",
			Source:      "Amex",
		},
		{
			Date:        time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC),
			Description: "SHELL OIL 57444",
			Amount:      decimal.RequireFromString("-35.00"),
			Category:    "Gas & Automotive",
			Source:      "Chase",
		},
	}
}

func TestMarshalTransaction(t *testing.T) {
	row := MarshalTransaction(sampleTable()[0])
	assert.Equal(t, []string{"2024-01-05", "STARBUCKS STORE #123", "4.5", "Dining", "Amex"}, row)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleTable()))

	want := "Date,Description,Amount,Category,Source\n" +
		"2024-01-05,STARBUCKS STORE #123,4.5,Dining,Amex\n" +
		"2024-01-06,SHELL OIL 57444,-35,Gas & Automotive,Chase\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, Header+"\n", buf.String())
}
