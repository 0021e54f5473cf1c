package view

import (
	"fmt"
	"time"

	"github.com/bordhockey/statsboard/internal/matches"
	"github.com/bordhockey/statsboard/internal/metrics"
	"github.com/bordhockey/statsboard/internal/stats"
	"github.com/charmbracelet/log"
)

// Controller reacts to player selections. It orchestrates filtering,
// aggregation and row building, passing the same filtered set to both.
type Controller struct {
	store      matches.MatchStore
	metrics    metrics.Metrics
	loadFailed bool
}

// NewController creates a new Controller. loadFailed records whether the
// startup dataset load failed; in that case selection stays disabled for the
// rest of the process lifecycle.
func NewController(store matches.MatchStore, metricsSvc metrics.Metrics, loadFailed bool) *Controller {
	return &Controller{
		store:      store,
		metrics:    metricsSvc,
		loadFailed: loadFailed,
	}
}

// LoadFailed reports whether the startup dataset load failed.
func (c *Controller) LoadFailed() bool {
	return c.loadFailed
}

// InitialState builds the state shown before any player is selected: the
// player index populated, nothing selected, panels hidden.
func (c *Controller) InitialState() State {
	st := State{StatusMessage: MsgSelectPrompt}

	if c.loadFailed {
		st.ErrorMessage = MsgLoadError
		return st
	}

	records, err := c.store.All()
	if err != nil {
		log.Error("Failed to read match store for player index", "error", err)
		st.ErrorMessage = MsgLoadError
		return st
	}

	st.Players = stats.PlayerIndex(records)
	st.SelectionEnabled = true
	return st
}

// Select is the state transition applied when the selection control changes.
// It takes the previous state and the new selection (possibly empty) and
// returns the next state.
func (c *Controller) Select(prev State, player string) State {
	next := prev
	next.SelectedPlayer = player
	next.Summary = stats.Summary{WinPercentage: "0.0"}
	next.SummaryVisible = false
	next.Rows = nil
	next.MatchesVisible = false
	next.NoMatches = false

	if player == "" || !prev.SelectionEnabled {
		next.SelectedPlayer = ""
		next.StatusMessage = MsgSelectPrompt
		return next
	}

	start := time.Now()
	filtered, err := c.store.ForPlayer(player)
	if err != nil {
		// Degrade to an empty result set; per-selection store errors are not fatal.
		log.Error("Failed to filter matches for player", "error", err, "player", player)
		filtered = nil
	}

	next.StatusMessage = fmt.Sprintf("Showing statistics for %s", player)
	next.Summary = stats.Summarize(filtered, player)
	next.SummaryVisible = len(filtered) > 0
	next.Rows = BuildRows(filtered, player)
	next.MatchesVisible = true
	next.NoMatches = len(filtered) == 0

	c.metrics.IncSelections()
	c.metrics.ObserveRenderDuration(time.Since(start).Seconds())
	return next
}
