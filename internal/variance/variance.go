// Package variance computes year-over-year comparative and cumulative tables
// from two month-aligned monthly tables.
package variance

import (
	"math"

	"github.com/rose307/ticket-analysis/internal/model"
)

// MetricCells carries one metric's previous-year value, current-year value
// and percent variation for a single row.
type MetricCells struct {
	Previous  int     `json:"previous"`
	Current   int     `json:"current"`
	Variation float64 `json:"variation"`
}

// Row is one month of a comparative or cumulative table.
type Row struct {
	Month string      `json:"month"`
	TKT   MetricCells `json:"tkt"`
	PSG   MetricCells `json:"psg"`
	AMT   MetricCells `json:"amt"`
}

// ComparativeTable holds per-month previous vs. current values.
type ComparativeTable []Row

// CumulativeTable holds running-total previous vs. current values.
type CumulativeTable []Row

// Compare builds the month-by-month comparison of two tables. Both inputs
// must already be in canonical month order with exactly 12 rows; this
// function does not reindex or validate.
func Compare(previous, current model.MonthlyTable) ComparativeTable {
	out := make(ComparativeTable, len(previous))
	for i := range previous {
		p, c := previous[i], current[i]
		out[i] = Row{
			Month: p.Month,
			TKT:   cells(p.TKT, c.TKT),
			PSG:   cells(p.PSG, c.PSG),
			AMT:   cells(p.AMT, c.AMT),
		}
	}
	return out
}

// Accumulate turns a comparative table into a cumulative one: the previous
// and current series become strict prefix sums over the 12-month sequence,
// and variation is recomputed on the running sums. Row order is preserved
// as-is; it must not be re-sorted.
func Accumulate(comparative ComparativeTable) CumulativeTable {
	out := make(CumulativeTable, len(comparative))
	var tktPrev, tktCur, psgPrev, psgCur, amtPrev, amtCur int
	for i, r := range comparative {
		tktPrev += r.TKT.Previous
		tktCur += r.TKT.Current
		psgPrev += r.PSG.Previous
		psgCur += r.PSG.Current
		amtPrev += r.AMT.Previous
		amtCur += r.AMT.Current
		out[i] = Row{
			Month: r.Month,
			TKT:   cells(tktPrev, tktCur),
			PSG:   cells(psgPrev, psgCur),
			AMT:   cells(amtPrev, amtCur),
		}
	}
	return out
}

func cells(previous, current int) MetricCells {
	return MetricCells{
		Previous:  previous,
		Current:   current,
		Variation: ratePercent(previous, current),
	}
}

// ratePercent returns the percent change from previous to current, rounded
// to 2 decimals. A previous value of 0 yields 0 regardless of current.
func ratePercent(previous, current int) float64 {
	if previous == 0 {
		return 0
	}
	return round2(float64(current-previous) / float64(previous) * 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
