package csvfile

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/urban-tools/congestion-atlas/pkg/models/store"
)

// Store writes rectangular tables as headered CSV files under a single
// directory. Writes are one-shot: one attempt, errors propagate wrapped.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir. The directory is created lazily
// on the first write.
func NewStore(dir string) *Store {
	if dir == "" {
		dir = "."
	}
	return &Store{dir: dir}
}

// Write persists the table to <dir>/<name>.csv, header first, and returns
// the written path.
func (s *Store) Write(table store.Table) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export dir %s: %w", s.dir, err)
	}

	path := filepath.Join(s.dir, table.Name+".csv")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(table.Header); err != nil {
		f.Close()
		return "", fmt.Errorf("failed to write %s header: %w", path, err)
	}
	if err := w.WriteAll(table.Rows); err != nil {
		f.Close()
		return "", fmt.Errorf("failed to write %s rows: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close %s: %w", path, err)
	}

	return path, nil
}
