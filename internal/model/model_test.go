package model

import "testing"

func TestMonthIndex(t *testing.T) {
	tests := []struct {
		label    string
		expected int
	}{
		{"APR", 0},
		{" apr ", 0},
		{"MAR", 11},
		{"Jan", 9},
		{"APRIL", -1},
		{"", -1},
	}
	for _, tt := range tests {
		if got := MonthIndex(tt.label); got != tt.expected {
			t.Errorf("MonthIndex(%q) = %d, want %d", tt.label, got, tt.expected)
		}
	}
}

func TestReindex(t *testing.T) {
	rows := []MonthRow{
		{Month: "mar", TKT: 3},
		{Month: "APR", TKT: 1},
		{Month: "APR", TKT: 2}, // duplicate, last wins
		{Month: "???", TKT: 9}, // unknown label dropped
	}
	table := Reindex(rows)

	if len(table) != 12 {
		t.Fatalf("len = %d, want 12", len(table))
	}
	if table[0].Month != "APR" || table[0].TKT != 2 {
		t.Errorf("APR row = %+v", table[0])
	}
	if table[11].Month != "MAR" || table[11].TKT != 3 {
		t.Errorf("MAR row = %+v", table[11])
	}
	// everything else is a zero row
	for i := 1; i < 11; i++ {
		if table[i].TKT != 0 || table[i].PSG != 0 || table[i].AMT != 0 {
			t.Errorf("row %d not zero: %+v", i, table[i])
		}
	}
}

func TestZeroTable(t *testing.T) {
	z := ZeroTable()
	if len(z) != 12 {
		t.Fatalf("len = %d, want 12", len(z))
	}
	for i, r := range z {
		if r.Month != FiscalMonths[i] {
			t.Errorf("row %d month = %q, want %q", i, r.Month, FiscalMonths[i])
		}
		if r.TKT != 0 || r.PSG != 0 || r.AMT != 0 {
			t.Errorf("row %d not zero: %+v", i, r)
		}
	}
}

func TestYearLabels(t *testing.T) {
	years := Years()
	if len(years) != 14 {
		t.Fatalf("len(Years()) = %d, want 14", len(years))
	}
	if years[0] != "2023-24" || years[len(years)-1] != "2036-37" {
		t.Errorf("Years() range = %s..%s", years[0], years[len(years)-1])
	}

	if !ValidYear("2024-25") {
		t.Error("2024-25 should be valid")
	}
	for _, bad := range []string{"2022-23", "2037-38", "2024-26", "2024", "abcd-ef", ""} {
		if ValidYear(bad) {
			t.Errorf("%q should be invalid", bad)
		}
	}

	prev, err := PreviousYear("2023-24")
	if err != nil {
		t.Fatalf("PreviousYear error: %v", err)
	}
	if prev != BaselineYear {
		t.Errorf("PreviousYear(2023-24) = %q, want %q", prev, BaselineYear)
	}
}

func TestCategoryTitles(t *testing.T) {
	tests := []struct {
		cat      Category
		expected string
	}{
		{CategorySuburbanSeason, "Suburban Season"},
		{CategoryNonSuburbanJourney, "Non Suburban Journey"},
		{CategoryATVM, "Atvm"},
	}
	for _, tt := range tests {
		if got := tt.cat.Title(); got != tt.expected {
			t.Errorf("%s.Title() = %q, want %q", tt.cat, got, tt.expected)
		}
	}

	if len(Categories) != 7 {
		t.Fatalf("len(Categories) = %d, want 7", len(Categories))
	}
	if _, ok := ParseCategory("uts"); !ok {
		t.Error("ParseCategory(uts) should succeed")
	}
	if _, ok := ParseCategory("first-class"); ok {
		t.Error("ParseCategory(first-class) should fail")
	}
}
