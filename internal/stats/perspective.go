package stats

import (
	"strings"

	"github.com/bordhockey/statsboard/internal/matches"
)

// UnknownOpponent is the placeholder shown when a record is missing the name
// on the other side.
const UnknownOpponent = "Unknown Opponent"

// Perspective is one match record resolved from a single player's point of
// view.
type Perspective struct {
	OwnGoals      int
	OpponentGoals int
	Opponent      string
}

// Resolve determines which slot of the record corresponds to the player and
// returns the record from that side. The first slot takes precedence when the
// same name occupies both sides. Goal coercion never fails; unparseable
// values count as 0.
func Resolve(record matches.Record, player string) Perspective {
	var own, opponentGoals matches.RawValue
	var opponent string

	if strings.EqualFold(record.Player1, player) {
		own = record.GoalsPlayer1
		opponentGoals = record.GoalsPlayer2
		opponent = record.Player2
	} else {
		own = record.GoalsPlayer2
		opponentGoals = record.GoalsPlayer1
		opponent = record.Player1
	}

	if opponent == "" {
		opponent = UnknownOpponent
	}

	return Perspective{
		OwnGoals:      own.Int(),
		OpponentGoals: opponentGoals.Int(),
		Opponent:      opponent,
	}
}
