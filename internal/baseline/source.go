package baseline

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/rose307/ticket-analysis/internal/model"
)

// Source is the lazily-built cache of the parsed baseline tables. It is
// built once on first access, read-only afterwards, and rebuilt only by an
// explicit Reset.
type Source struct {
	path string

	mu     sync.Mutex
	tables map[model.Category]model.MonthlyTable
}

// NewSource creates a source over the baseline file at path. The file is not
// read until the first access.
func NewSource(path string) *Source {
	return &Source{path: path}
}

// Path returns the baseline file path the source reads from.
func (s *Source) Path() string {
	return s.path
}

// Table returns the baseline-year table for a category.
func (s *Source) Table(cat model.Category) (model.MonthlyTable, error) {
	tables, err := s.load()
	if err != nil {
		return nil, err
	}
	t, ok := tables[cat]
	if !ok {
		return nil, fmt.Errorf("baseline: category %q not found", cat)
	}
	return t, nil
}

// Load forces the cache build, so a broken baseline file can fail startup
// instead of the first request.
func (s *Source) Load() error {
	_, err := s.load()
	return err
}

// Reset drops the cache; the next access re-reads the file.
func (s *Source) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tables = nil
}

// splitRows parses the file one physical line at a time. csv.Reader skips
// blank lines entirely, which would shift every section's anchor-relative
// data window; here a blank line stays in the grid as an empty record.
func splitRows(data string) ([][]string, error) {
	data = strings.ReplaceAll(data, "\r\n", "\n")
	lines := strings.Split(data, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1] // trailing newline, not a row
	}

	rows := make([][]string, 0, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			rows = append(rows, nil)
			continue
		}
		r := csv.NewReader(strings.NewReader(line))
		r.FieldsPerRecord = -1
		rec, err := r.Read()
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		rows = append(rows, rec)
	}
	return rows, nil
}

func (s *Source) load() (map[model.Category]model.MonthlyTable, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tables != nil {
		return s.tables, nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("baseline: read %s: %w", s.path, err)
	}

	rows, err := splitRows(string(data))
	if err != nil {
		return nil, fmt.Errorf("baseline: read %s: %w", s.path, err)
	}

	tables, err := Parse(rows)
	if err != nil {
		return nil, err
	}
	s.tables = tables
	return tables, nil
}
