// Package stats holds the cumulative statistics record shared across rounds.
package stats

import "github.com/robalobadob/hangman/internal/game"

// Statistics is the cumulative record persisted between sessions.
type Statistics struct {
	GamesPlayed int `json:"games_played"`
	Wins        int `json:"wins"`
	Losses      int `json:"losses"`
	TotalScore  int `json:"total_score"`
}

// Record adds one finished round. The score only counts on a win.
func (s *Statistics) Record(won bool, score int) {
	if won {
		s.Wins++
		s.TotalScore += score
	} else {
		s.Losses++
	}
	s.GamesPlayed++
}

// WinRate returns wins as a percentage of games played.
func (s Statistics) WinRate() float64 { return s.Totals().WinRate() }

// AverageScore returns the total score divided by games played.
func (s Statistics) AverageScore() float64 {
	if s.GamesPlayed <= 0 {
		return 0
	}
	return float64(s.TotalScore) / float64(s.GamesPlayed)
}

// Totals converts the record into the form printed by game reports.
func (s Statistics) Totals() game.Totals {
	return game.Totals{
		TotalScore:  s.TotalScore,
		GamesPlayed: s.GamesPlayed,
		Wins:        s.Wins,
		Losses:      s.Losses,
	}
}
