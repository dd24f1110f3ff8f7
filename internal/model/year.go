package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Fiscal years are labeled "YYYY-YY" and run April through March.
const (
	// BaselineYear is the distinguished year whose figures come from the
	// baseline file, never from the table store.
	BaselineYear = "2022-23"

	firstEditableStart = 2023
	lastEditableStart  = 2036
)

// YearLabel builds the "YYYY-YY" label for a fiscal year starting in the
// given calendar year.
func YearLabel(startYear int) string {
	return fmt.Sprintf("%04d-%02d", startYear, (startYear+1)%100)
}

// Years lists the editable fiscal-year labels in ascending order.
func Years() []string {
	out := make([]string, 0, lastEditableStart-firstEditableStart+1)
	for y := firstEditableStart; y <= lastEditableStart; y++ {
		out = append(out, YearLabel(y))
	}
	return out
}

// StartYear parses the starting calendar year out of a "YYYY-YY" label.
func StartYear(label string) (int, error) {
	parts := strings.SplitN(strings.TrimSpace(label), "-", 2)
	if len(parts) != 2 || len(parts[0]) != 4 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("invalid year label %q", label)
	}
	start, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid year label %q", label)
	}
	if YearLabel(start) != strings.TrimSpace(label) {
		return 0, fmt.Errorf("invalid year label %q", label)
	}
	return start, nil
}

// ValidYear reports whether the label is inside the editable range.
func ValidYear(label string) bool {
	start, err := StartYear(label)
	if err != nil {
		return false
	}
	return start >= firstEditableStart && start <= lastEditableStart
}

// PreviousYear returns the label of the fiscal year before the given one.
func PreviousYear(label string) (string, error) {
	start, err := StartYear(label)
	if err != nil {
		return "", err
	}
	return YearLabel(start - 1), nil
}
