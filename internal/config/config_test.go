package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/robalobadob/hangman/internal/game"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	c, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.LogLevel != "info" || c.DataDir != "game_log" || c.WordsDir != "words" || !c.ClearScreen {
		t.Fatalf("unexpected defaults: %+v", c)
	}
	if c.Rules() != game.DefaultRules() {
		t.Fatalf("rules = %+v, want defaults", c.Rules())
	}
	if c.StatsFilePath() != filepath.Join("game_log", "statistics.json") {
		t.Fatalf("stats file = %q", c.StatsFilePath())
	}
	if c.StatsDBPath() != filepath.Join("game_log", "statistics.db") {
		t.Fatalf("stats db = %q", c.StatsDBPath())
	}
	if c.LogFilePath() != filepath.Join("game_log", "hangman.log") {
		t.Fatalf("log file = %q", c.LogFilePath())
	}
}

func TestLoadOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HANGMAN_STATS_BACKEND", "sqlite")
	t.Setenv("HANGMAN_MAX_WRONG", "8")
	t.Setenv("HANGMAN_BASE_SCORE", "3")
	t.Setenv("HANGMAN_WRONG_PENALTY", "1")
	t.Setenv("HANGMAN_STATS_DB", "/tmp/x.db")
	t.Setenv("HANGMAN_CLEAR_SCREEN", "false")

	c, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.StatsBackend != BackendSQLite || c.StatsDBPath() != "/tmp/x.db" || c.ClearScreen {
		t.Fatalf("unexpected config: %+v", c)
	}
	if want := (game.Rules{MaxWrongGuesses: 8, BaseScore: 3, WrongGuessPenalty: 1}); c.Rules() != want {
		t.Fatalf("rules = %+v, want %+v", c.Rules(), want)
	}
}

func TestValidate(t *testing.T) {
	base := Config{StatsBackend: BackendJSON, MaxWrongGuesses: 6, BaseScore: 10, WrongGuessPenalty: 5}
	if err := base.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}
	bad := []Config{base, base, base}
	bad[0].StatsBackend = "redis"
	bad[1].MaxWrongGuesses = 0
	bad[2].WrongGuessPenalty = -1
	for i, c := range bad {
		if err := c.Validate(); err == nil {
			t.Errorf("case %d: expected error", i)
		}
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("restore cwd: %v", err)
		}
	})
}
