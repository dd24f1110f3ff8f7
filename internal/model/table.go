package model

// MonthRow holds one fiscal month's figures for a single category.
type MonthRow struct {
	Month string `json:"month"`
	TKT   int    `json:"tkt"`
	PSG   int    `json:"psg"`
	AMT   int    `json:"amt"`
}

// MonthlyTable is an ordered sequence of exactly 12 rows, one per fiscal
// month in the canonical cycle.
type MonthlyTable []MonthRow

// ZeroTable returns an all-zero table keyed by the canonical months.
func ZeroTable() MonthlyTable {
	t := make(MonthlyTable, len(FiscalMonths))
	for i, m := range FiscalMonths {
		t[i] = MonthRow{Month: m}
	}
	return t
}

// Reindex maps arbitrary input rows onto the canonical month cycle. Rows with
// unknown month labels are dropped, months absent from the input become zero
// rows, and when a month appears more than once the last row wins.
func Reindex(rows []MonthRow) MonthlyTable {
	t := ZeroTable()
	for _, r := range rows {
		i := MonthIndex(r.Month)
		if i < 0 {
			continue
		}
		t[i] = MonthRow{Month: FiscalMonths[i], TKT: r.TKT, PSG: r.PSG, AMT: r.AMT}
	}
	return t
}

// Equal reports whether two tables agree cell for cell.
func (t MonthlyTable) Equal(other MonthlyTable) bool {
	if len(t) != len(other) {
		return false
	}
	for i := range t {
		if t[i] != other[i] {
			return false
		}
	}
	return true
}
