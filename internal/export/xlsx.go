package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/spendview-dev/spendview/internal/model"
)

// SheetName is the worksheet holding the exported transactions.
const SheetName = "Transactions"

// WriteXLSX writes the table to an Excel workbook at path, one row per
// transaction with the same columns as the CSV export.
func WriteXLSX(path string, t model.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	header := strings.Split(Header, ",")
	cells := make([]interface{}, len(header))
	for i, h := range header {
		cells[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &cells); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, txn := range t {
		row := []interface{}{
			txn.Date.Format(dateFormat),
			txn.Description,
			txn.Amount.InexactFloat64(),
			txn.Category,
			txn.Source,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}
