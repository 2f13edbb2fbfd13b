// Package export serializes the normalized transaction table for external
// consumers, as delimited text or a spreadsheet.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/spendview-dev/spendview/internal/model"
)

// Header is the CSV header for exported transactions.
const Header = "Date,Description,Amount,Category,Source"

const (
	numFields   = 5
	dateFormat  = "2006-01-02"
	colDate     = 0
	colDesc     = 1
	colAmount   = 2
	colCategory = 3
	colSource   = 4
)

// MarshalTransaction converts a transaction to a CSV row. The amount is
// written exactly as parsed, sign included.
func MarshalTransaction(t model.Transaction) []string {
	row := make([]string, numFields)
	row[colDate] = t.Date.Format(dateFormat)
	row[colDesc] = t.Description
	row[colAmount] = t.Amount.String()
	row[colCategory] = t.Category
	row[colSource] = t.Source
	return row
}

// WriteCSV writes the table to w, header included.
func WriteCSV(w io.Writer, t model.Table) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, txn := range t {
		if err := cw.Write(MarshalTransaction(txn)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}
