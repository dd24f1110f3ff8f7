// Package store persists one monthly table per (category, fiscal year) as a
// delimited file under the data directory.
package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/rose307/ticket-analysis/internal/model"
)

// ErrNotFound is returned by Load when no table has been saved for the key.
// Callers substitute a zero table; absence is an expected state, not a fault.
var ErrNotFound = errors.New("table not found")

var csvHeader = []string{"Month", "TKT", "PSG", "AMT"}

// Store is the file-backed table store. Writes are serialized; the last
// successful save wins.
type Store struct {
	dir string
	mu  sync.Mutex
}

// New creates a store rooted at dir, creating the directory if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create table directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// tablePath builds the deterministic file name for a (category, year) key.
func (s *Store) tablePath(cat model.Category, year string) string {
	return filepath.Join(s.dir, fmt.Sprintf("%s_%s.csv", cat, year))
}

// Save writes the table for the key, overwriting any previous file. Rows are
// reindexed to the canonical month order first. The write goes through a
// temp file and rename, so a failed save leaves the prior file untouched.
func (s *Store) Save(cat model.Category, year string, table model.MonthlyTable) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	canonical := model.Reindex(table)

	records := make([][]string, 0, len(canonical)+1)
	records = append(records, csvHeader)
	for _, r := range canonical {
		records = append(records, []string{
			r.Month,
			strconv.Itoa(r.TKT),
			strconv.Itoa(r.PSG),
			strconv.Itoa(r.AMT),
		})
	}

	var sb strings.Builder
	w := csv.NewWriter(&sb)
	if err := w.WriteAll(records); err != nil {
		return fmt.Errorf("encode table: %w", err)
	}

	return writeFileAtomic(s.tablePath(cat, year), []byte(sb.String()))
}

// Load returns the most recently saved table for the key, or ErrNotFound.
func (s *Store) Load(cat model.Category, year string) (model.MonthlyTable, error) {
	f, err := os.Open(s.tablePath(cat, year))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("open table: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read table: %w", err)
	}

	rows := make([]model.MonthRow, 0, len(records))
	for i, rec := range records {
		if i == 0 && isHeaderRow(rec) {
			continue
		}
		if len(rec) == 0 {
			continue
		}
		rows = append(rows, model.MonthRow{
			Month: strings.TrimSpace(rec[0]),
			TKT:   coerceInt(cellAt(rec, 1)),
			PSG:   coerceInt(cellAt(rec, 2)),
			AMT:   coerceInt(cellAt(rec, 3)),
		})
	}
	return model.Reindex(rows), nil
}

// LoadOrZero is Load with the absent case already substituted.
func (s *Store) LoadOrZero(cat model.Category, year string) (model.MonthlyTable, error) {
	table, err := s.Load(cat, year)
	if errors.Is(err, ErrNotFound) {
		return model.ZeroTable(), nil
	}
	return table, err
}

func isHeaderRow(rec []string) bool {
	return len(rec) > 0 && strings.EqualFold(strings.TrimSpace(rec[0]), "Month")
}

func cellAt(rec []string, i int) string {
	if i >= len(rec) {
		return ""
	}
	return rec[i]
}

func coerceInt(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return int(f)
}

func writeFileAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
