package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/robalobadob/hangman/internal/stats"
)

// JSONStore keeps the statistics record in a single indented JSON file.
type JSONStore struct {
	path string
}

// NewJSONStore returns a store backed by the file at path.
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

// Path returns the file the store reads and writes.
func (j *JSONStore) Path() string { return j.path }

// Load reads the record. A missing file yields a zero record.
func (j *JSONStore) Load(ctx context.Context) (stats.Statistics, error) {
	var s stats.Statistics
	b, err := os.ReadFile(j.path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("read %s: %w", j.path, err)
	}
	if err := json.Unmarshal(b, &s); err != nil {
		return stats.Statistics{}, fmt.Errorf("decode %s: %w", j.path, err)
	}
	return s, nil
}

// Save writes the record to a temp file in the same directory and renames it
// over the target, so a failed write leaves the previous record intact.
func (j *JSONStore) Save(ctx context.Context, s stats.Statistics) (err error) {
	dir := filepath.Dir(j.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	b, err := json.MarshalIndent(s, "", "    ")
	if err != nil {
		return fmt.Errorf("encode statistics: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".statistics-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(append(b, '\n')); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", tmp.Name(), err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	if err = os.Rename(tmp.Name(), j.path); err != nil {
		return fmt.Errorf("rename to %s: %w", j.path, err)
	}
	return nil
}

func (j *JSONStore) Close() error { return nil }
