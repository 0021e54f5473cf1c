package matches

import (
	"database/sql"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"sync"
)

// store handles all database operations for the match dataset.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// RawValue preserves a scalar JSON value exactly as it appears in the source
// dataset. Goal fields arrive as numbers in most records but as strings (or
// null) in older scraped seasons, so the store keeps the raw text and coerces
// on read.
type RawValue string

// UnmarshalJSON accepts any scalar token and keeps its text form.
func (v *RawValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = RawValue(s)
		return nil
	}
	if string(data) == "null" {
		*v = ""
		return nil
	}
	*v = RawValue(data)
	return nil
}

// MarshalJSON re-emits canonical integer values as JSON numbers and
// everything else as a string. The value text is otherwise opaque, so forms
// like "1e3" or "2.7" stay strings rather than being reinterpreted.
func (v RawValue) MarshalJSON() ([]byte, error) {
	if n, err := strconv.Atoi(string(v)); err == nil && strconv.Itoa(n) == string(v) {
		return []byte(v), nil
	}
	return json.Marshal(string(v))
}

// Int coerces the value to a whole number of goals. Missing or unparseable
// values coerce to 0; a NaN or infinity never escapes into totals.
func (v RawValue) Int() int {
	s := strings.TrimSpace(string(v))
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return int(f)
	}
	return 0
}

// Record is one match between two named players, as produced by the upstream
// dataset converter. Field names are fixed by the matches.json schema.
type Record struct {
	Player1        string   `json:"Player1"`
	Player2        string   `json:"Player2"`
	GoalsPlayer1   RawValue `json:"GoalsPlayer1"`
	GoalsPlayer2   RawValue `json:"GoalsPlayer2"`
	Date           string   `json:"Date"`
	TournamentName string   `json:"TournamentName,omitempty"`
}
