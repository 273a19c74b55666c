// internal/session/session.go
//
// Console session orchestration.
// Responsibilities:
//   - Load cumulative statistics and number games from where the last session stopped.
//   - Run rounds: category menu, word selection, guess loop, win/loss summary.
//   - Bridge finished rounds into Statistics, write the per-game log, persist statistics.
//
// Notes:
//   - The engine keeps accepting guesses after a round is over, so the round
//     loop checks IsGameOver before every prompt.
//   - "quit" or end of input ends the session without counting the round.
//   - A log or statistics write failure is reported and logged; the in-memory
//     statistics are never rolled back or altered by it.

package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/robalobadob/hangman/internal/console"
	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/stats"
	"github.com/robalobadob/hangman/internal/store"
)

const (
	cmdQuit  = "quit"
	cmdGuess = "guess"
)

// WordSource supplies words for new rounds.
type WordSource interface {
	Categories() []string
	Random(category string) (word, actual string)
}

// LogWriter persists the log of a finished round.
type LogWriter interface {
	Write(s *game.State, totals stats.Statistics, at time.Time) (string, error)
}

// Deps are the collaborators a Session needs.
type Deps struct {
	Words   WordSource
	Store   store.Store
	Logs    LogWriter
	Console *console.Console
	Rules   game.Rules
	Logger  zerolog.Logger
	Now     func() time.Time // defaults to time.Now
}

// Session runs rounds until the player stops.
type Session struct {
	words WordSource
	store store.Store
	logs  LogWriter
	ui    *console.Console
	rules game.Rules
	log   zerolog.Logger
	now   func() time.Time
}

// New constructs a Session from its dependencies.
func New(d Deps) *Session {
	now := d.Now
	if now == nil {
		now = time.Now
	}
	return &Session{
		words: d.Words,
		store: d.Store,
		logs:  d.Logs,
		ui:    d.Console,
		rules: d.Rules,
		log:   d.Logger,
		now:   now,
	}
}

// Run plays rounds until the player quits or declines another game.
// Statistics are saved after every completed round and once more on exit.
func (s *Session) Run(ctx context.Context) error {
	st, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load statistics: %w", err)
	}
	gameNumber := st.GamesPlayed + 1
	s.log.Info().Int("gamesPlayed", st.GamesPlayed).Int("totalScore", st.TotalScore).Msg("session started")

	for {
		completed, err := s.PlayRound(ctx, gameNumber, &st)
		if err != nil {
			return err
		}
		if !completed {
			break
		}
		s.saveStatistics(ctx, st)

		again, err := s.ui.Prompt("\nPlay again? (y/n): ")
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		if err != nil || strings.ToLower(again) != "y" {
			s.ui.Println("Thanks for playing Hangman!")
			break
		}
		gameNumber++
	}

	if err := s.store.Save(ctx, st); err != nil {
		return fmt.Errorf("save statistics: %w", err)
	}
	s.log.Info().Int("gamesPlayed", st.GamesPlayed).Msg("session ended")
	return nil
}

// PlayRound plays one round as game number gameNumber and folds its result
// into st. It reports false when the player quit before the round finished,
// in which case st is untouched.
func (s *Session) PlayRound(ctx context.Context, gameNumber int, st *stats.Statistics) (bool, error) {
	s.ui.ClearScreen()
	s.ui.Welcome(s.rules.MaxWrongGuesses)

	category, ok, err := s.chooseCategory()
	if err != nil || !ok {
		return false, err
	}

	word, actual := s.words.Random(category)
	state := game.NewState(word, actual, gameNumber, s.rules)
	rlog := s.log.With().Int("game", gameNumber).Str("category", actual).Logger()
	rlog.Info().Int("length", len([]rune(state.Word))).Msg("round started")

	s.ui.Printf("\nNew word selected from '%s' (length %d)\n", actual, len([]rune(state.Word)))
	s.showState(state)

	for !state.IsGameOver() {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		input, err := s.ui.Prompt("\nEnter a letter (or type 'guess' to guess full word, 'quit' to exit): ")
		if err != nil {
			return s.quit(rlog, err)
		}
		input = strings.ToLower(input)

		var result string
		switch input {
		case cmdQuit:
			return s.quit(rlog, nil)
		case cmdGuess:
			full, err := s.ui.Prompt("Enter your guess for the full word: ")
			if err != nil {
				return s.quit(rlog, err)
			}
			result = state.GuessWord(strings.ToLower(full))
		default:
			result = state.GuessLetter(input)
		}
		rlog.Debug().Str("input", input).Int("wrong", state.WrongGuesses).Msg("guess applied")
		s.ui.Println(result)
		s.showState(state)
	}

	won, score := state.HasWon(), state.Score()
	if won {
		s.ui.Printf("\n*** You win! Word: %s ***\n", state.Word)
		s.ui.Printf("Points earned this round: %d\n", score)
	} else {
		s.ui.Printf("\n*** Game over! The word was: %s ***\n", state.Word)
	}
	st.Record(won, score)
	rlog.Info().Bool("won", won).Int("score", score).Int("wrong", state.WrongGuesses).Msg("round finished")

	if path, err := s.logs.Write(state, *st, s.now()); err != nil {
		rlog.Error().Err(err).Str("path", path).Msg("write game log")
		s.ui.Printf("[!] Could not save the game log: %v\n", err)
	} else {
		rlog.Info().Str("path", path).Msg("game log written")
	}

	s.ui.ShowStatistics(*st)
	return true, nil
}

// chooseCategory shows the category menu until a valid choice is made.
// An empty category means "pick at random". ok is false on end of input.
func (s *Session) chooseCategory() (category string, ok bool, err error) {
	categories := s.words.Categories()
	s.ui.Println("\nAvailable categories:")
	for i, c := range categories {
		s.ui.Printf("%d. %s\n", i+1, c)
	}
	s.ui.Printf("%d. All categories (random)\n", len(categories)+1)

	for {
		choice, err := s.ui.Prompt("\nEnter category number: ")
		if errors.Is(err, io.EOF) {
			s.ui.Println("Thanks for playing!")
			return "", false, nil
		}
		if err != nil {
			return "", false, err
		}
		if isDigits(choice) {
			idx, err := strconv.Atoi(choice)
			if err == nil {
				idx--
				switch {
				case idx >= 0 && idx < len(categories):
					return categories[idx], true, nil
				case idx == len(categories):
					return "", true, nil
				}
			}
		}
		s.ui.Println("Invalid choice. Please try again.")
	}
}

// quit ends the round early. End of input counts as a quit.
func (s *Session) quit(rlog zerolog.Logger, err error) (bool, error) {
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	s.ui.Println("Thanks for playing!")
	rlog.Info().Msg("round abandoned")
	return false, nil
}

func (s *Session) showState(state *game.State) {
	s.ui.ShowState(state.DisplayWord(), state.GuessedLetters(), state.RemainingAttempts, console.HangmanArt(state.WrongGuesses))
}

// saveStatistics persists st after a round; failures are logged and shown.
func (s *Session) saveStatistics(ctx context.Context, st stats.Statistics) {
	if err := s.store.Save(ctx, st); err != nil {
		s.log.Error().Err(err).Msg("save statistics")
		s.ui.Printf("[!] Could not save statistics: %v\n", err)
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
