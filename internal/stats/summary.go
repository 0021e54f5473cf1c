package stats

import (
	"fmt"

	"github.com/bordhockey/statsboard/internal/matches"
)

// Summary holds a player's aggregate statistics over a filtered match set.
type Summary struct {
	TotalGames    int    `json:"total_games"`
	Wins          int    `json:"wins"`
	Losses        int    `json:"losses"`
	Draws         int    `json:"draws"`
	GoalsFor      int    `json:"goals_for"`
	GoalsAgainst  int    `json:"goals_against"`
	WinPercentage string `json:"win_percentage"`
}

// Summarize computes a player's summary over the given matches. It is a pure
// function; calling it twice with the same inputs yields identical output.
func Summarize(records []matches.Record, player string) Summary {
	summary := Summary{WinPercentage: "0.0"}

	for _, record := range records {
		p := Resolve(record, player)
		summary.TotalGames++
		summary.GoalsFor += p.OwnGoals
		summary.GoalsAgainst += p.OpponentGoals
		switch {
		case p.OwnGoals > p.OpponentGoals:
			summary.Wins++
		case p.OwnGoals == p.OpponentGoals:
			summary.Draws++
		}
	}

	// Losses are derived, so TotalGames == Wins + Losses + Draws holds by
	// construction even on anomalous records.
	summary.Losses = summary.TotalGames - summary.Wins - summary.Draws

	if summary.TotalGames > 0 {
		summary.WinPercentage = fmt.Sprintf("%.1f", float64(summary.Wins)/float64(summary.TotalGames)*100)
	}
	return summary
}
