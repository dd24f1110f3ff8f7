// Package report assembles the per-category comparative and cumulative views
// for one fiscal year, and the table list for spreadsheet export.
package report

import (
	"fmt"

	"github.com/rose307/ticket-analysis/internal/baseline"
	"github.com/rose307/ticket-analysis/internal/exporter"
	"github.com/rose307/ticket-analysis/internal/model"
	"github.com/rose307/ticket-analysis/internal/store"
	"github.com/rose307/ticket-analysis/internal/variance"
)

// CategoryReport is everything the UI shows for one category in one year.
type CategoryReport struct {
	Category     model.Category            `json:"category"`
	Title        string                    `json:"title"`
	Year         string                    `json:"year"`
	PreviousYear string                    `json:"previousYear"`
	Current      model.MonthlyTable        `json:"current"`
	Comparative  variance.ComparativeTable `json:"comparative"`
	Cumulative   variance.CumulativeTable  `json:"cumulative"`
}

// Builder computes reports from current storage state. Nothing is cached;
// every call recomputes from the store and the baseline source.
type Builder struct {
	store    *store.Store
	baseline *baseline.Source
}

func NewBuilder(st *store.Store, src *baseline.Source) *Builder {
	return &Builder{store: st, baseline: src}
}

// previousTable resolves the previous-year table for a category: the
// baseline source when the previous year is the baseline year, otherwise the
// store (or zeros when nothing is saved).
func (b *Builder) previousTable(cat model.Category, prevYear string) (model.MonthlyTable, error) {
	if prevYear == model.BaselineYear {
		return b.baseline.Table(cat)
	}
	return b.store.LoadOrZero(cat, prevYear)
}

// BuildCategory computes one category's view for the year.
func (b *Builder) BuildCategory(cat model.Category, year string) (*CategoryReport, error) {
	if !model.ValidYear(year) {
		return nil, fmt.Errorf("year %q is outside the editable range", year)
	}
	prevYear, err := model.PreviousYear(year)
	if err != nil {
		return nil, err
	}

	current, err := b.store.LoadOrZero(cat, year)
	if err != nil {
		return nil, err
	}
	previous, err := b.previousTable(cat, prevYear)
	if err != nil {
		return nil, err
	}

	comparative := variance.Compare(previous, current)
	return &CategoryReport{
		Category:     cat,
		Title:        cat.Title(),
		Year:         year,
		PreviousYear: prevYear,
		Current:      current,
		Comparative:  comparative,
		Cumulative:   variance.Accumulate(comparative),
	}, nil
}

// Build computes all seven categories' views for the year, in fixed order.
func (b *Builder) Build(year string) ([]*CategoryReport, error) {
	out := make([]*CategoryReport, 0, len(model.Categories))
	for _, cat := range model.Categories {
		r, err := b.BuildCategory(cat, year)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

// ExportTables builds the export list for a year: comparative tables for all
// categories first, then cumulative tables for all categories.
func (b *Builder) ExportTables(year string) ([]exporter.Table, error) {
	reports, err := b.Build(year)
	if err != nil {
		return nil, err
	}

	tables := make([]exporter.Table, 0, 2*len(reports))
	for _, r := range reports {
		tables = append(tables, exporter.Table{
			Name:   string(r.Category) + "-comparative",
			Header: tableHeader(r.PreviousYear, r.Year),
			Rows:   tableRows(r.Comparative),
		})
	}
	for _, r := range reports {
		tables = append(tables, exporter.Table{
			Name:   string(r.Category) + "-cumulative",
			Header: tableHeader(r.PreviousYear, r.Year),
			Rows:   tableRows(r.Cumulative),
		})
	}
	return tables, nil
}

func tableHeader(prevYear, year string) []string {
	return []string{
		"Month",
		"TKT " + prevYear, "TKT " + year, "TKT % VAR",
		"PSG " + prevYear, "PSG " + year, "PSG % VAR",
		"AMT " + prevYear, "AMT " + year, "AMT % VAR",
	}
}

func tableRows(rows []variance.Row) [][]interface{} {
	out := make([][]interface{}, 0, len(rows))
	for _, r := range rows {
		out = append(out, []interface{}{
			r.Month,
			r.TKT.Previous, r.TKT.Current, r.TKT.Variation,
			r.PSG.Previous, r.PSG.Current, r.PSG.Variation,
			r.AMT.Previous, r.AMT.Current, r.AMT.Variation,
		})
	}
	return out
}
