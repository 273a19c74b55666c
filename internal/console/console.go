// internal/console/console.go
//
// Text presentation for the game.
// Responsibilities:
//   - Welcome banner, per-turn status (drawing, word, guessed letters, attempts).
//   - Cumulative statistics summary.
//   - Line-based prompts over any io.Reader.
//   - Screen clearing, only when enabled and writing to a terminal.

package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/robalobadob/hangman/internal/stats"
)

const (
	bannerRule = "=================================================="
	panelRule  = "--------------------------------------------------"
	clearSeq   = "\033[H\033[2J"
)

// Console reads player input and writes the game screen.
type Console struct {
	in    *bufio.Scanner
	out   io.Writer
	clear bool
}

// Option configures a Console.
type Option func(*Console)

// WithClearScreen enables or disables screen clearing. Clearing still only
// happens when the output is a terminal.
func WithClearScreen(enabled bool) Option {
	return func(c *Console) { c.clear = enabled && isTerminal(c.out) }
}

// New returns a Console reading from in and writing to out.
func New(in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{in: bufio.NewScanner(in), out: out}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Printf writes formatted text.
func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// Println writes a line.
func (c *Console) Println(args ...any) {
	fmt.Fprintln(c.out, args...)
}

// Prompt writes label and reads one line, trimmed. It returns io.EOF when the
// input is exhausted.
func (c *Console) Prompt(label string) (string, error) {
	fmt.Fprint(c.out, label)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

// ClearScreen clears the terminal when clearing is enabled.
func (c *Console) ClearScreen() {
	if c.clear {
		fmt.Fprint(c.out, clearSeq)
	}
}

// Welcome prints the banner and the command help.
func (c *Console) Welcome(maxWrong int) {
	fmt.Fprintln(c.out, bannerRule)
	fmt.Fprintln(c.out, "          WELCOME TO HANGMAN!")
	fmt.Fprintln(c.out, bannerRule)
	fmt.Fprintln(c.out, "\nGuess the word letter by letter.")
	fmt.Fprintf(c.out, "You have %d wrong guesses before game over.\n", maxWrong)
	fmt.Fprintln(c.out, "Commands: 'guess' - guess full word, 'quit' - exit game")
}

// ShowState prints the drawing and the current round status.
func (c *Console) ShowState(display string, guessed []rune, remaining int, art string) {
	fmt.Fprintln(c.out, "\n"+panelRule)
	fmt.Fprintln(c.out, art)
	fmt.Fprintln(c.out, panelRule)
	fmt.Fprintf(c.out, "\nWord: %s\n", display)
	fmt.Fprintf(c.out, "Guessed letters: %s\n", joinLetters(guessed))
	fmt.Fprintf(c.out, "Remaining attempts: %d\n", remaining)
	fmt.Fprintln(c.out, panelRule)
}

// ShowStatistics prints the cumulative statistics summary.
func (c *Console) ShowStatistics(s stats.Statistics) {
	fmt.Fprintf(c.out, "\n%s\n", bannerRule)
	fmt.Fprintf(c.out, "Games played: %d | Wins: %d | Losses: %d\n", s.GamesPlayed, s.Wins, s.Losses)
	fmt.Fprintf(c.out, "Win rate: %.2f%% | Average score: %.2f\n", s.WinRate(), s.AverageScore())
	fmt.Fprintf(c.out, "Total score: %d\n", s.TotalScore)
	fmt.Fprintf(c.out, "%s\n\n", bannerRule)
}

// joinLetters renders sorted letters as "a, b, c", or "None" when empty.
func joinLetters(letters []rune) string {
	if len(letters) == 0 {
		return "None"
	}
	parts := make([]string, len(letters))
	for i, r := range letters {
		parts[i] = string(r)
	}
	return strings.Join(parts, ", ")
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
