package exporter

import (
	"testing"
)

func twoTables() []Table {
	return []Table{
		{
			Name:   "uts-comparative",
			Header: []string{"Month", "TKT 2023-24", "TKT 2024-25", "TKT % VAR"},
			Rows: [][]interface{}{
				{"APR", 10, 20, 100.0},
				{"MAY", 5, 5, 0.0},
			},
		},
		{
			Name:   "uts-cumulative",
			Header: []string{"Month", "TKT 2023-24", "TKT 2024-25", "TKT % VAR"},
			Rows: [][]interface{}{
				{"APR", 10, 20, 100.0},
				{"MAY", 15, 25, 66.67},
			},
		},
	}
}

func TestExportLayout(t *testing.T) {
	f, err := Export(twoTables())
	if err != nil {
		t.Fatalf("Export() error: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 1 || sheets[0] != SheetName {
		t.Fatalf("sheets = %v, want [%s]", sheets, SheetName)
	}

	get := func(cell string) string {
		v, err := f.GetCellValue(SheetName, cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s): %v", cell, err)
		}
		return v
	}

	// first block: title, header, 2 data rows
	if got := get("A1"); got != "Uts Comparative" {
		t.Errorf("A1 = %q, want %q", got, "Uts Comparative")
	}
	if got := get("A2"); got != "Month" {
		t.Errorf("A2 = %q, want Month", got)
	}
	if got := get("B3"); got != "10" {
		t.Errorf("B3 = %q, want 10", got)
	}
	if got := get("D3"); got != "100" {
		t.Errorf("D3 = %q, want 100", got)
	}

	// second block starts after title + header + 2 rows + 2 gap rows
	if got := get("A7"); got != "Uts Cumulative" {
		t.Errorf("A7 = %q, want %q", got, "Uts Cumulative")
	}
	if got := get("C9"); got != "20" {
		t.Errorf("C9 = %q, want 20", got)
	}
	if got := get("C10"); got != "25" {
		t.Errorf("C10 = %q, want 25", got)
	}
}

func TestExportEmpty(t *testing.T) {
	f, err := Export(nil)
	if err != nil {
		t.Fatalf("Export() error: %v", err)
	}
	defer f.Close()
	if got := f.GetSheetName(0); got != SheetName {
		t.Errorf("sheet name = %q, want %q", got, SheetName)
	}
}
