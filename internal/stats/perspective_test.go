package stats_test

import (
	"testing"

	"github.com/bordhockey/statsboard/internal/matches"
	"github.com/bordhockey/statsboard/internal/stats"
	"github.com/stretchr/testify/assert"
)

func TestResolveFirstSlot(t *testing.T) {
	record := matches.Record{Player1: "A", Player2: "B", GoalsPlayer1: "3", GoalsPlayer2: "1"}

	p := stats.Resolve(record, "A")
	assert.Equal(t, 3, p.OwnGoals)
	assert.Equal(t, 1, p.OpponentGoals)
	assert.Equal(t, "B", p.Opponent)
}

func TestResolveSecondSlot(t *testing.T) {
	record := matches.Record{Player1: "A", Player2: "B", GoalsPlayer1: "3", GoalsPlayer2: "1"}

	p := stats.Resolve(record, "B")
	assert.Equal(t, 1, p.OwnGoals)
	assert.Equal(t, 3, p.OpponentGoals)
	assert.Equal(t, "A", p.Opponent)
}

func TestResolveIsCaseInsensitive(t *testing.T) {
	record := matches.Record{Player1: "anders", Player2: "Bjarne", GoalsPlayer1: "2", GoalsPlayer2: "0"}

	p := stats.Resolve(record, "Anders")
	assert.Equal(t, 2, p.OwnGoals)
	assert.Equal(t, "Bjarne", p.Opponent)
}

// A record carrying the same name in both slots resolves from the first
// slot's perspective.
func TestResolveSelfMatchFirstSlotWins(t *testing.T) {
	record := matches.Record{Player1: "A", Player2: "A", GoalsPlayer1: "4", GoalsPlayer2: "2"}

	p := stats.Resolve(record, "A")
	assert.Equal(t, 4, p.OwnGoals)
	assert.Equal(t, 2, p.OpponentGoals)
}

func TestResolveMissingOpponentName(t *testing.T) {
	record := matches.Record{Player1: "A", Player2: "", GoalsPlayer1: "1", GoalsPlayer2: "0"}

	p := stats.Resolve(record, "A")
	assert.Equal(t, stats.UnknownOpponent, p.Opponent)
}

func TestResolveCoercesGarbageGoals(t *testing.T) {
	record := matches.Record{Player1: "A", Player2: "B", GoalsPlayer1: "abc", GoalsPlayer2: ""}

	p := stats.Resolve(record, "A")
	assert.Zero(t, p.OwnGoals)
	assert.Zero(t, p.OpponentGoals)
}
