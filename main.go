package main

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/config"
	"github.com/robalobadob/hangman/internal/console"
	"github.com/robalobadob/hangman/internal/gamelog"
	"github.com/robalobadob/hangman/internal/session"
	"github.com/robalobadob/hangman/internal/store"
	"github.com/robalobadob/hangman/internal/words"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		log.Fatal().Err(err).Str("dir", cfg.DataDir).Msg("create data dir")
	}
	logOut, closeLog, err := openLogOutput(cfg.LogFilePath())
	if err != nil {
		log.Fatal().Err(err).Msg("open log file")
	}
	defer closeLog()
	log.Logger = zerolog.New(logOut).With().Timestamp().Str("session", uuid.NewString()).Logger()

	list, err := words.Load(cfg.WordsDir)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}

	st, err := openStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.StatsBackend).Msg("open statistics store")
	}
	defer st.Close()

	s := session.New(session.Deps{
		Words:   list,
		Store:   st,
		Logs:    gamelog.Writer{Dir: cfg.DataDir},
		Console: console.New(os.Stdin, os.Stdout, console.WithClearScreen(cfg.ClearScreen)),
		Rules:   cfg.Rules(),
		Logger:  log.Logger,
	})
	log.Info().Str("backend", cfg.StatsBackend).Str("words", cfg.WordsDir).Msg("starting hangman")
	if err := s.Run(context.Background()); err != nil {
		log.Error().Err(err).Msg("session failed")
		closeLog()
		os.Exit(1)
	}
}

// openStore picks the statistics backend named in the config.
func openStore(cfg config.Config) (store.Store, error) {
	switch cfg.StatsBackend {
	case config.BackendSQLite:
		return store.OpenSQLite(cfg.StatsDBPath())
	case config.BackendMemory:
		return store.NewMemoryStore(), nil
	default:
		return store.NewJSONStore(cfg.StatsFilePath()), nil
	}
}

// openLogOutput returns the log destination; "-" selects a console writer on stderr.
func openLogOutput(path string) (io.Writer, func(), error) {
	if path == "-" {
		return zerolog.ConsoleWriter{Out: os.Stderr}, func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}
