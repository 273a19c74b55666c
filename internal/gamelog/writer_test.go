package gamelog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/stats"
)

func TestWriteCreatesGameDirectory(t *testing.T) {
	dir := t.TempDir()
	w := Writer{Dir: dir}

	s := game.NewState("go", "Programming", 7, game.DefaultRules())
	s.GuessLetter("go")

	path, err := w.Write(s, stats.Statistics{GamesPlayed: 7, Wins: 7, TotalScore: 140}, time.Now())
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if want := filepath.Join(dir, "game7", "log.txt"); path != want {
		t.Fatalf("path = %q, want %q", path, want)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	out := string(b)
	if !strings.HasPrefix(out, "Game 7 Log\n") {
		t.Fatalf("unexpected header: %q", out[:20])
	}
	for _, line := range []string{"Result: Win\n", "Points Earned: 20\n", "Win Rate: 100.00%\n"} {
		if !strings.Contains(out, line) {
			t.Errorf("log missing %q", line)
		}
	}
}

func TestWriteOverwritesPreviousLog(t *testing.T) {
	w := Writer{Dir: t.TempDir()}
	first := game.NewState("aaaaaaaaaa", "X", 1, game.DefaultRules())
	if _, err := w.Write(first, stats.Statistics{}, time.Now()); err != nil {
		t.Fatal(err)
	}
	second := game.NewState("b", "Y", 1, game.DefaultRules())
	path, err := w.Write(second, stats.Statistics{}, time.Now())
	if err != nil {
		t.Fatal(err)
	}
	b, _ := os.ReadFile(path)
	if strings.Contains(string(b), "aaaaaaaaaa") {
		t.Fatalf("previous log content survived")
	}
}

func TestWriteFailsWhenDirIsAFile(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	w := Writer{Dir: blocker}
	if _, err := w.Write(game.NewState("go", "", 1, game.DefaultRules()), stats.Statistics{}, time.Now()); err == nil {
		t.Fatalf("expected error writing below a regular file")
	}
}
