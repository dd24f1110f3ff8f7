// Package baseline reads the fixed-layout baseline file that seeds the
// 2022-23 figures for every fare category.
package baseline

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/rose307/ticket-analysis/internal/model"
)

// Each category section in the baseline file is a label row followed by two
// layout rows, then 12 data rows of (month, TKT, PSG, AMT).
const (
	dataRowOffset = 3
	dataRowCount  = 12
)

var spaceRun = regexp.MustCompile(`\s+`)

// Parse extracts the per-category monthly tables from the raw baseline rows.
// An anchor row is matched by exact comparison of its normalized first cell
// against the category label. A missing category is an error.
func Parse(rows [][]string) (map[model.Category]model.MonthlyTable, error) {
	tables := make(map[model.Category]model.MonthlyTable, len(model.Categories))
	for _, cat := range model.Categories {
		anchor := findAnchor(rows, cat.AnchorLabel())
		if anchor < 0 {
			return nil, fmt.Errorf("baseline: category %q not found", cat)
		}
		tables[cat] = extractTable(rows, anchor+dataRowOffset)
	}
	return tables, nil
}

func findAnchor(rows [][]string, label string) int {
	want := normalizeLabel(label)
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		if normalizeLabel(row[0]) == want {
			return i
		}
	}
	return -1
}

func extractTable(rows [][]string, start int) model.MonthlyTable {
	parsed := make([]model.MonthRow, 0, dataRowCount)
	for i := start; i < start+dataRowCount && i < len(rows); i++ {
		row := rows[i]
		parsed = append(parsed, model.MonthRow{
			Month: strings.TrimSpace(cellAt(row, 0)),
			TKT:   coerceInt(cellAt(row, 1)),
			PSG:   coerceInt(cellAt(row, 2)),
			AMT:   coerceInt(cellAt(row, 3)),
		})
	}
	return model.Reindex(parsed)
}

func cellAt(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return row[i]
}

// coerceInt parses a numeric cell, truncating any fractional part. Anything
// that fails to parse counts as 0.
func coerceInt(s string) int {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return int(f)
}

// normalizeLabel trims, case-folds and collapses interior whitespace so the
// anchor match is exact on the whole cell rather than a substring test.
func normalizeLabel(s string) string {
	return spaceRun.ReplaceAllString(strings.ToUpper(strings.TrimSpace(s)), " ")
}
