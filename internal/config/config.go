// Package config loads game configuration from the environment.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/robalobadob/hangman/internal/game"
)

// Stats backends.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Config is the runtime configuration of a game session.
type Config struct {
	LogLevel     string `env:"LOG_LEVEL"              envDefault:"info"`
	LogFile      string `env:"HANGMAN_LOG_FILE"`
	DataDir      string `env:"HANGMAN_DATA_DIR"       envDefault:"game_log"`
	WordsDir     string `env:"HANGMAN_WORDS_DIR"      envDefault:"words"`
	StatsBackend string `env:"HANGMAN_STATS_BACKEND"  envDefault:"json"`
	StatsFile    string `env:"HANGMAN_STATS_FILE"`
	StatsDB      string `env:"HANGMAN_STATS_DB"`
	ClearScreen  bool   `env:"HANGMAN_CLEAR_SCREEN"   envDefault:"true"`

	MaxWrongGuesses   int `env:"HANGMAN_MAX_WRONG"      envDefault:"6"`
	BaseScore         int `env:"HANGMAN_BASE_SCORE"     envDefault:"10"`
	WrongGuessPenalty int `env:"HANGMAN_WRONG_PENALTY"  envDefault:"5"`
}

// Load reads an optional .env file and parses the environment into a Config.
func Load() (Config, error) {
	_ = godotenv.Load()

	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks the values that cannot be defaulted away.
func (c Config) Validate() error {
	switch c.StatsBackend {
	case BackendJSON, BackendSQLite, BackendMemory:
	default:
		return fmt.Errorf("config: unknown stats backend %q", c.StatsBackend)
	}
	if c.MaxWrongGuesses <= 0 {
		return fmt.Errorf("config: HANGMAN_MAX_WRONG must be positive, got %d", c.MaxWrongGuesses)
	}
	if c.BaseScore < 0 || c.WrongGuessPenalty < 0 {
		return fmt.Errorf("config: scores must not be negative")
	}
	return nil
}

// Rules returns the game rule set described by the config.
func (c Config) Rules() game.Rules {
	return game.Rules{
		MaxWrongGuesses:   c.MaxWrongGuesses,
		BaseScore:         c.BaseScore,
		WrongGuessPenalty: c.WrongGuessPenalty,
	}
}

// StatsFilePath returns the JSON statistics file, defaulting to <DataDir>/statistics.json.
func (c Config) StatsFilePath() string {
	if c.StatsFile != "" {
		return c.StatsFile
	}
	return filepath.Join(c.DataDir, "statistics.json")
}

// StatsDBPath returns the SQLite statistics database, defaulting to <DataDir>/statistics.db.
func (c Config) StatsDBPath() string {
	if c.StatsDB != "" {
		return c.StatsDB
	}
	return filepath.Join(c.DataDir, "statistics.db")
}

// LogFilePath returns where logs go: "-" means stderr, empty means <DataDir>/hangman.log.
func (c Config) LogFilePath() string {
	if c.LogFile != "" {
		return c.LogFile
	}
	return filepath.Join(c.DataDir, "hangman.log")
}
