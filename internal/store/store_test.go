package store

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/robalobadob/hangman/internal/stats"
)

func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("initial load: %v", err)
	}
	if got != (stats.Statistics{}) {
		t.Fatalf("initial load = %+v, want zero record", got)
	}

	want := stats.Statistics{GamesPlayed: 3, Wins: 2, Losses: 1, TotalScore: 70}
	if err := s.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	want.GamesPlayed, want.Losses = 4, 2
	if err := s.Save(ctx, want); err != nil {
		t.Fatalf("second save: %v", err)
	}

	got, err = s.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != want {
		t.Fatalf("load = %+v, want %+v", got, want)
	}
}

func TestMemoryStore(t *testing.T) {
	m := NewMemoryStore()
	exerciseStore(t, m)
	if m.Saves() != 2 {
		t.Fatalf("saves = %d, want 2", m.Saves())
	}
}

func TestJSONStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "statistics.json")
	exerciseStore(t, NewJSONStore(path))

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	for _, key := range []string{`    "games_played": 4`, `    "wins": 2`, `    "losses": 2`, `    "total_score": 70`} {
		if !strings.Contains(string(b), key) {
			t.Errorf("file missing %q:\n%s", key, b)
		}
	}

	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Fatalf("expected only the statistics file, got %d entries", len(entries))
	}
}

func TestJSONStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "statistics.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewJSONStore(path).Load(context.Background()); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestSQLiteStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db", "statistics.db")
	s, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	exerciseStore(t, s)
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	// Reopening must not re-apply migrations or lose the record.
	s, err = OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	got, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.GamesPlayed != 4 || got.TotalScore != 70 {
		t.Fatalf("load after reopen = %+v", got)
	}
}
