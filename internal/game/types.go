// internal/game/types.go
//
// Core type definitions for the Hangman game engine.
// Defines:
//   - Rules: the numeric rule set a round is played under.
//   - Outcome / Guess: one accepted entry of the guess history.
//   - State: state for a single round, from word selection to win/loss.

package game

const (
	defaultMaxWrongGuesses   = 6
	defaultBaseScore         = 10
	defaultWrongGuessPenalty = 5
)

// Rules holds the numeric rule set for a round.
type Rules struct {
	MaxWrongGuesses   int // Wrong guesses allowed before the round is lost.
	BaseScore         int // Points per letter of the word on a win.
	WrongGuessPenalty int // Points lost per wrong guess on a win.
}

// DefaultRules returns the classic 6 / 10 / 5 rule set.
func DefaultRules() Rules {
	return Rules{
		MaxWrongGuesses:   defaultMaxWrongGuesses,
		BaseScore:         defaultBaseScore,
		WrongGuessPenalty: defaultWrongGuessPenalty,
	}
}

// Outcome is the result recorded for an accepted guess.
type Outcome string

const (
	OutcomeCorrect Outcome = "Correct"
	OutcomeWrong   Outcome = "Wrong"
)

// GuessKind distinguishes single letter guesses from whole word guesses.
type GuessKind int

const (
	KindLetter GuessKind = iota
	KindWord
)

// wordPrefix tags whole word entries in the history.
const wordPrefix = "WORD: "

// Guess is one entry of the guess history.
type Guess struct {
	Text    string    // The letter, or "WORD: <text>" for a word guess.
	Kind    GuessKind // Letter or word.
	Outcome Outcome   // Correct or Wrong.
}

// State holds the state of a single round.
//
// The letter sets only grow. WrongGuesses counts every Wrong history entry,
// including repeated wrong word guesses.
type State struct {
	Word       string // Target word (always lowercase).
	Category   string // Category the word was drawn from.
	GameNumber int    // 1-based game counter across sessions.
	Rules      Rules  // Rule set the round is played under.

	Guessed map[rune]struct{} // Every letter tried (⊇ Correct ∪ Wrong).
	Correct map[rune]struct{} // Letters found in Word.
	Wrong   map[rune]struct{} // Letters not in Word.

	WrongGuesses      int     // Count of Wrong entries in History.
	RemainingAttempts int     // Rules.MaxWrongGuesses - WrongGuesses.
	History           []Guess // Accepted guesses in order.
}
