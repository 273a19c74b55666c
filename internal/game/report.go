// internal/game/report.go
//
// Plain text round report, as written to the per-game log file.
// The report lists the round summary, the cumulative totals passed in by the
// caller, and a progress trace that replays the guess history.

package game

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"
)

const (
	reportRule       = "=================================================="
	reportTimeLayout = "2006-01-02 15:04:05"
)

// Totals are the cumulative statistics printed at the end of a report.
type Totals struct {
	TotalScore  int
	GamesPlayed int
	Wins        int
	Losses      int
}

// WinRate returns wins as a percentage of games played, or 0 with no games.
func (t Totals) WinRate() float64 {
	if t.GamesPlayed <= 0 {
		return 0
	}
	return float64(t.Wins) / float64(t.GamesPlayed) * 100
}

// WriteReport renders the report for s to w. at is printed as the report time.
func WriteReport(w io.Writer, s *State, totals Totals, at time.Time) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "Game %d Log\n", s.GameNumber)
	fmt.Fprintf(bw, "%s\n\n", reportRule)
	fmt.Fprintf(bw, "Category: %s\n", s.Category)
	fmt.Fprintf(bw, "Word: %s\n", s.Word)
	fmt.Fprintf(bw, "Word Length: %d\n\n", len([]rune(s.Word)))

	fmt.Fprintln(bw, "Guesses (in order):")
	for i, g := range s.History {
		fmt.Fprintf(bw, "%d. %s → %s\n", i+1, g.Text, g.Outcome)
	}

	wrong := "None"
	if letters := s.WrongLetters(); len(letters) > 0 {
		parts := make([]string, len(letters))
		for i, r := range letters {
			parts[i] = string(r)
		}
		wrong = strings.Join(parts, ", ")
	}
	fmt.Fprintf(bw, "\nWrong Guesses List: %s\n", wrong)
	fmt.Fprintf(bw, "Wrong Guesses Count: %d\n", s.WrongGuesses)
	fmt.Fprintf(bw, "Remaining Attempts at End: %d\n\n", s.RemainingAttempts)

	result := "Loss"
	if s.HasWon() {
		result = "Win"
	}
	fmt.Fprintf(bw, "Result: %s\n", result)
	fmt.Fprintf(bw, "Points Earned: %d\n\n", s.Score())

	fmt.Fprintf(bw, "Total Score (after this round): %d\n", totals.TotalScore)
	fmt.Fprintf(bw, "Games Played: %d\n", totals.GamesPlayed)
	fmt.Fprintf(bw, "Wins: %d\n", totals.Wins)
	fmt.Fprintf(bw, "Losses: %d\n", totals.Losses)
	fmt.Fprintf(bw, "Win Rate: %.2f%%\n\n", totals.WinRate())

	fmt.Fprintf(bw, "Date & Time: %s\n", at.Format(reportTimeLayout))
	fmt.Fprintf(bw, "%s\n\n", reportRule)

	fmt.Fprintln(bw, "Session Notes:")
	fmt.Fprintf(bw, "- ASCII hangman reached state %d after %d wrong guess(es).\n", s.WrongGuesses, s.WrongGuesses)
	fmt.Fprintln(bw, "- Progress trace:")
	fmt.Fprint(bw, strings.Join(ProgressTrace(s), "\n"))
	fmt.Fprintf(bw, "\n%s\n", reportRule)

	return bw.Flush()
}

// ProgressTrace replays the guess history from an all-blank word.
//
// The first line is the blank word. Each correct letter adds a line with the
// letters revealed so far; each wrong letter or word adds the unchanged line
// with a note. Correct word guesses add no line.
func ProgressTrace(s *State) []string {
	revealed := make(map[rune]struct{})
	lines := []string{"  " + mask(s.Word, revealed)}

	for _, g := range s.History {
		switch {
		case g.Outcome == OutcomeCorrect && g.Kind == KindLetter:
			for _, r := range g.Text {
				revealed[r] = struct{}{}
			}
			lines = append(lines, "  -> "+mask(s.Word, revealed))
		case g.Outcome == OutcomeWrong:
			lines = append(lines, fmt.Sprintf("  -> %s (%s wrong — no progress change)", mask(s.Word, revealed), g.Text))
		}
	}
	return lines
}
