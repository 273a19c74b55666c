// Package gamelog writes the per-game log file, one directory per game number.
package gamelog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/stats"
)

// FileName is the log file written inside each game directory.
const FileName = "log.txt"

// Writer writes game logs below Dir.
type Writer struct {
	Dir string
}

// PathFor returns the log path for a game number: <Dir>/game<N>/log.txt.
func (w Writer) PathFor(gameNumber int) string {
	return filepath.Join(w.Dir, "game"+strconv.Itoa(gameNumber), FileName)
}

// Write renders the report for s with the given totals and writes it,
// replacing any previous log for the same game number. The file is closed on
// every path; a close failure is reported alongside any write failure.
func (w Writer) Write(s *game.State, totals stats.Statistics, at time.Time) (path string, err error) {
	path = w.PathFor(s.GameNumber)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return path, fmt.Errorf("mkdir %s: %w", filepath.Dir(path), err)
	}

	f, err := os.Create(path)
	if err != nil {
		return path, fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("close %s: %w", path, cerr))
		}
	}()

	if err := game.WriteReport(f, s, totals.Totals(), at); err != nil {
		return path, fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
