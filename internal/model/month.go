package model

import "strings"

// FiscalMonths is the fixed April-to-March month cycle. Every table in the
// system is kept in exactly this order.
var FiscalMonths = [12]string{
	"APR", "MAY", "JUN", "JUL", "AUG", "SEP",
	"OCT", "NOV", "DEC", "JAN", "FEB", "MAR",
}

// MonthIndex returns the position of a month label in the fiscal cycle,
// or -1 if the label is not a fiscal month. Matching is case-insensitive
// and ignores surrounding whitespace.
func MonthIndex(label string) int {
	label = strings.ToUpper(strings.TrimSpace(label))
	for i, m := range FiscalMonths {
		if m == label {
			return i
		}
	}
	return -1
}
