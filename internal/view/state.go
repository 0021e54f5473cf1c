package view

import "github.com/bordhockey/statsboard/internal/stats"

// Fixed user-facing messages. Load failures surface as one fixed message; the
// underlying cause only goes to the logs.
const (
	MsgSelectPrompt = "Select a player to see their statistics."
	MsgLoadError    = "Failed to load match data. Please try refreshing the page."
	MsgNoMatches    = "No matches found for this player."
)

// State is the complete renderable state of the page. It is produced by the
// Controller and consumed by the Renderer; a test harness can drive the same
// transitions without any HTTP machinery.
type State struct {
	Players          []string
	SelectedPlayer   string
	SelectionEnabled bool
	StatusMessage    string
	ErrorMessage     string
	Summary          stats.Summary
	SummaryVisible   bool
	Rows             []Row
	MatchesVisible   bool
	NoMatches        bool
}

// Row is one match record projected from the selected player's perspective.
type Row struct {
	Date         string
	Opponent     string
	GoalsFor     int
	GoalsAgainst int
	Result       string
	ResultClass  string
	Tournament   string
}
