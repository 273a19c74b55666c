// internal/game/engine.go
//
// Core game engine for a single Hangman round.
// Responsibilities:
//   - Create new rounds with empty letter sets and a full attempt budget.
//   - Validate and apply letter guesses (single or batched) and word guesses.
//   - Answer derived queries: display word, won/lost, score.
//
// Notes:
//   - Invalid input never returns an error; the caller gets a message and the
//     state is left untouched.
//   - The engine does not stop accepting guesses once the round is over. The
//     caller checks IsGameOver before every turn, otherwise RemainingAttempts
//     can drop below zero.
package game

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
)

// NewState constructs a new round for word. The word is lowercased and
// otherwise accepted as-is; word lists are validated by their loader.
func NewState(word, category string, gameNumber int, rules Rules) *State {
	return &State{
		Word:              strings.ToLower(word),
		Category:          category,
		GameNumber:        gameNumber,
		Rules:             rules,
		Guessed:           make(map[rune]struct{}),
		Correct:           make(map[rune]struct{}),
		Wrong:             make(map[rune]struct{}),
		RemainingAttempts: rules.MaxWrongGuesses,
		History:           []Guess{},
	}
}

// GuessLetter applies one or more letter guesses and returns a message for
// the player.
//
// Validation rules:
//   - Input must be non-empty.
//   - Every character must be a letter.
//
// Multi-letter input is applied left to right as separate guesses, one
// result line per character. A letter repeated in the same batch reports
// "already guessed" on its second occurrence.
func (s *State) GuessLetter(input string) string {
	if input == "" {
		return "[X] Please enter at least one letter."
	}
	if !isAlpha(input) {
		return "[X] Please enter only alphabetic characters."
	}

	letters := []rune(strings.ToLower(input))
	if len(letters) > 1 {
		lines := make([]string, 0, len(letters))
		for _, r := range letters {
			switch {
			case s.hasGuessed(r):
				lines = append(lines, fmt.Sprintf("[i] '%c' already guessed", r))
			case s.applyLetter(r):
				lines = append(lines, fmt.Sprintf("[+] '%c' is correct", r))
			default:
				lines = append(lines, fmt.Sprintf("[-] '%c' is wrong", r))
			}
		}
		return strings.Join(lines, "\n")
	}

	r := letters[0]
	if s.hasGuessed(r) {
		return fmt.Sprintf("[i] You already guessed '%c'. Try a different letter.", r)
	}
	if s.applyLetter(r) {
		return fmt.Sprintf("[+] Correct! The letter '%c' is in the word.", r)
	}
	return fmt.Sprintf("[-] Wrong! The letter '%c' is not in the word.", r)
}

// GuessWord applies a whole word guess.
//
// A correct guess reveals every letter of the word. A wrong guess always
// costs an attempt, even when the same word was guessed before.
func (s *State) GuessWord(input string) string {
	guess := strings.ToLower(input)
	entry := wordPrefix + guess

	if guess == s.Word {
		for _, r := range s.Word {
			s.Correct[r] = struct{}{}
			s.Guessed[r] = struct{}{}
		}
		s.History = append(s.History, Guess{Text: entry, Kind: KindWord, Outcome: OutcomeCorrect})
		return fmt.Sprintf("[+] Correct! You guessed the word: %s", s.Word)
	}

	s.recordWrong()
	s.History = append(s.History, Guess{Text: entry, Kind: KindWord, Outcome: OutcomeWrong})
	return fmt.Sprintf("[-] Wrong! '%s' is not the correct word.", guess)
}

// DisplayWord returns the word with unrevealed letters as "_", space separated.
func (s *State) DisplayWord() string {
	return mask(s.Word, s.Correct)
}

// HasWon reports whether every letter of the word has been revealed.
func (s *State) HasWon() bool {
	for _, r := range s.Word {
		if _, ok := s.Correct[r]; !ok {
			return false
		}
	}
	return true
}

// HasLost reports whether the wrong guess limit has been reached.
func (s *State) HasLost() bool {
	return s.WrongGuesses >= s.Rules.MaxWrongGuesses
}

// IsGameOver reports whether the round is won or lost.
func (s *State) IsGameOver() bool {
	return s.HasWon() || s.HasLost()
}

// Score returns the points earned for the round.
//
// Formula: len(word)*BaseScore - WrongGuesses*WrongGuessPenalty, floored at 0.
// A round that is not won scores 0.
func (s *State) Score() int {
	if !s.HasWon() {
		return 0
	}
	base := len([]rune(s.Word)) * s.Rules.BaseScore
	penalty := s.WrongGuesses * s.Rules.WrongGuessPenalty
	return max(0, base-penalty)
}

// GuessedLetters returns every guessed letter in sorted order.
func (s *State) GuessedLetters() []rune { return sortedSet(s.Guessed) }

// WrongLetters returns the wrong letters in sorted order.
func (s *State) WrongLetters() []rune { return sortedSet(s.Wrong) }

// applyLetter records a not-yet-guessed letter and reports whether it is in
// the word.
func (s *State) applyLetter(r rune) bool {
	s.Guessed[r] = struct{}{}
	if strings.ContainsRune(s.Word, r) {
		s.Correct[r] = struct{}{}
		s.History = append(s.History, Guess{Text: string(r), Kind: KindLetter, Outcome: OutcomeCorrect})
		return true
	}
	s.Wrong[r] = struct{}{}
	s.recordWrong()
	s.History = append(s.History, Guess{Text: string(r), Kind: KindLetter, Outcome: OutcomeWrong})
	return false
}

func (s *State) recordWrong() {
	s.WrongGuesses++
	s.RemainingAttempts--
}

func (s *State) hasGuessed(r rune) bool {
	_, ok := s.Guessed[r]
	return ok
}

// mask renders word with letters outside revealed shown as "_".
func mask(word string, revealed map[rune]struct{}) string {
	cells := make([]string, 0, len(word))
	for _, r := range word {
		if _, ok := revealed[r]; ok {
			cells = append(cells, string(r))
		} else {
			cells = append(cells, "_")
		}
	}
	return strings.Join(cells, " ")
}

// isAlpha reports whether s is non-empty and made only of letters.
func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func sortedSet(set map[rune]struct{}) []rune {
	out := make([]rune, 0, len(set))
	for r := range set {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
