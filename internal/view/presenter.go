package view

import (
	"sort"
	"strings"
	"time"

	"github.com/bordhockey/statsboard/internal/matches"
	"github.com/bordhockey/statsboard/internal/stats"
)

// dateLayouts are the formats the scraped dataset has used across seasons.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"02.01.2006",
}

func parseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDate renders a parseable date in the pinned English short form, an
// unparseable one as its raw value, and a missing one as "Unknown".
func FormatDate(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return "Unknown"
	}
	if t, ok := parseDate(raw); ok {
		return t.Format("Jan 2, 2006")
	}
	return raw
}

// BuildRows projects the filtered matches into display rows, newest first.
// The input slice is never reordered; the sort works on a copy, and rows with
// unparseable dates are incomparable and keep their relative order.
func BuildRows(records []matches.Record, player string) []Row {
	sorted := append([]matches.Record(nil), records...)
	sort.SliceStable(sorted, func(i, j int) bool {
		di, iok := parseDate(sorted[i].Date)
		dj, jok := parseDate(sorted[j].Date)
		if !iok || !jok {
			return false
		}
		return di.After(dj)
	})

	rows := make([]Row, 0, len(sorted))
	for _, record := range sorted {
		p := stats.Resolve(record, player)
		result := "Draw"
		switch {
		case p.OwnGoals > p.OpponentGoals:
			result = "Win"
		case p.OwnGoals < p.OpponentGoals:
			result = "Loss"
		}
		rows = append(rows, Row{
			Date:         FormatDate(record.Date),
			Opponent:     p.Opponent,
			GoalsFor:     p.OwnGoals,
			GoalsAgainst: p.OpponentGoals,
			Result:       result,
			ResultClass:  strings.ToLower(result),
			Tournament:   record.TournamentName,
		})
	}
	return rows
}
