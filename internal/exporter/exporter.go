// Package exporter serializes named tables into a single spreadsheet sheet,
// stacked vertically with titled headers.
package exporter

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/rose307/ticket-analysis/internal/model"
)

// SheetName is the one worksheet every export is written to.
const SheetName = "Summary"

// rows of spacing left between stacked tables
const tableGap = 2

// Table is one named block to write: a hyphenated name (the title is derived
// from it), a header row and data rows.
type Table struct {
	Name   string
	Header []string
	Rows   [][]interface{}
}

// Export writes the tables in order into one workbook. Each block is the
// derived title, the header row, the data rows, then a 2-row gap.
func Export(tables []Table) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		_ = f.Close()
		return nil, err
	}

	row := 1
	for _, t := range tables {
		if err := setRow(f, row, []interface{}{model.TitleFromName(t.Name)}); err != nil {
			_ = f.Close()
			return nil, err
		}
		row++

		header := make([]interface{}, len(t.Header))
		for i, h := range t.Header {
			header[i] = h
		}
		if err := setRow(f, row, header); err != nil {
			_ = f.Close()
			return nil, err
		}
		row++

		for _, r := range t.Rows {
			if err := setRow(f, row, r); err != nil {
				_ = f.Close()
				return nil, err
			}
			row++
		}

		row += tableGap
	}

	f.SetActiveSheet(0)
	return f, nil
}

func setRow(f *excelize.File, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
		return fmt.Errorf("write row %d: %w", row, err)
	}
	return nil
}
