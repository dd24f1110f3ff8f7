package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rose307/ticket-analysis/internal/baseline"
	"github.com/rose307/ticket-analysis/internal/model"
	"github.com/rose307/ticket-analysis/internal/store"
	"github.com/rose307/ticket-analysis/internal/variance"
)

// newTestBuilder wires a builder over a temp store and a generated baseline
// file where every cell of every category is 100/200/300.
func newTestBuilder(t *testing.T) (*Builder, *store.Store) {
	t.Helper()
	dir := t.TempDir()

	rows := [][]string{}
	for _, cat := range model.Categories {
		rows = append(rows,
			[]string{cat.AnchorLabel()},
			[]string{""},
			[]string{"Month", "TKT", "PSG", "AMT"},
		)
		for _, m := range model.FiscalMonths {
			rows = append(rows, []string{m, "100", "200", "300"})
		}
	}

	path := filepath.Join(dir, "baseline.csv")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create baseline: %v", err)
	}
	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		t.Fatalf("write baseline: %v", err)
	}
	w.Flush()
	_ = f.Close()

	st, err := store.New(filepath.Join(dir, "tables"))
	if err != nil {
		t.Fatalf("store.New: %v", err)
	}
	return NewBuilder(st, baseline.NewSource(path)), st
}

func TestBuildCategoryAgainstBaseline(t *testing.T) {
	b, st := newTestBuilder(t)

	cur := model.ZeroTable()
	for i := range cur {
		cur[i].TKT = 110
		cur[i].PSG = 100
		cur[i].AMT = 300
	}
	if err := st.Save(model.CategoryUTS, "2023-24", cur); err != nil {
		t.Fatalf("Save: %v", err)
	}

	r, err := b.BuildCategory(model.CategoryUTS, "2023-24")
	if err != nil {
		t.Fatalf("BuildCategory: %v", err)
	}
	if r.PreviousYear != model.BaselineYear {
		t.Fatalf("previous year = %q, want %q", r.PreviousYear, model.BaselineYear)
	}

	apr := r.Comparative[0]
	if apr.TKT.Previous != 100 || apr.TKT.Current != 110 || !floatEquals(apr.TKT.Variation, 10) {
		t.Errorf("APR TKT = %+v, want {100 110 10}", apr.TKT)
	}
	if !floatEquals(apr.PSG.Variation, -50) {
		t.Errorf("APR PSG variation = %v, want -50", apr.PSG.Variation)
	}
	if !floatEquals(apr.AMT.Variation, 0) {
		t.Errorf("APR AMT variation = %v, want 0", apr.AMT.Variation)
	}

	mar := r.Cumulative[11]
	if mar.TKT.Previous != 1200 || mar.TKT.Current != 1320 {
		t.Errorf("MAR cumulative TKT = {%d %d}, want {1200 1320}", mar.TKT.Previous, mar.TKT.Current)
	}
	if !floatEquals(mar.TKT.Variation, 10) {
		t.Errorf("MAR cumulative TKT variation = %v, want 10", mar.TKT.Variation)
	}
}

func TestBuildCategoryUnsavedYearsAreZero(t *testing.T) {
	b, _ := newTestBuilder(t)

	// 2025-26 vs 2024-25: neither saved, both zero, every variation 0
	r, err := b.BuildCategory(model.CategoryATVM, "2025-26")
	if err != nil {
		t.Fatalf("BuildCategory: %v", err)
	}
	zero := variance.MetricCells{}
	for i, row := range r.Comparative {
		if row.TKT != zero || row.PSG != zero || row.AMT != zero {
			t.Errorf("row %d not zero: %+v", i, row)
		}
	}
}

func TestBuildRejectsYearOutsideRange(t *testing.T) {
	b, _ := newTestBuilder(t)
	for _, year := range []string{"2022-23", "2037-38", "bogus"} {
		if _, err := b.BuildCategory(model.CategoryUTS, year); err == nil {
			t.Errorf("BuildCategory(%q) should fail", year)
		}
	}
}

func TestExportTablesOrder(t *testing.T) {
	b, _ := newTestBuilder(t)

	tables, err := b.ExportTables("2024-25")
	if err != nil {
		t.Fatalf("ExportTables: %v", err)
	}
	if len(tables) != 14 {
		t.Fatalf("len(tables) = %d, want 14", len(tables))
	}

	// comparatives for all categories first, then cumulatives
	for i, cat := range model.Categories {
		want := string(cat) + "-comparative"
		if tables[i].Name != want {
			t.Errorf("tables[%d].Name = %q, want %q", i, tables[i].Name, want)
		}
		want = string(cat) + "-cumulative"
		if tables[i+7].Name != want {
			t.Errorf("tables[%d].Name = %q, want %q", i+7, tables[i+7].Name, want)
		}
	}

	for _, tbl := range tables {
		if len(tbl.Header) != 10 {
			t.Errorf("%s: header has %d columns, want 10", tbl.Name, len(tbl.Header))
		}
		if len(tbl.Rows) != 12 {
			t.Errorf("%s: %d rows, want 12", tbl.Name, len(tbl.Rows))
		}
	}
	if !strings.Contains(tables[0].Header[1], "2023-24") || !strings.Contains(tables[0].Header[2], "2024-25") {
		t.Errorf("header year labels wrong: %v", tables[0].Header[:3])
	}
}

func floatEquals(a, b float64) bool {
	const epsilon = 1e-9
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff < epsilon
}
