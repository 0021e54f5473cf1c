package stats

import (
	"strings"

	"github.com/bordhockey/statsboard/internal/matches"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// PlayerIndex collects every non-empty player name across the dataset into a
// de-duplicated, sorted list. Names differing only in case are the same
// player; the first-seen casing wins. The sort is pinned to an English
// collation so the order does not depend on the ambient locale.
func PlayerIndex(records []matches.Record) []string {
	seen := make(map[string]struct{})
	var names []string

	add := func(name string) {
		if name == "" {
			return
		}
		key := strings.ToLower(name)
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		names = append(names, name)
	}

	for _, record := range records {
		add(record.Player1)
		add(record.Player2)
	}

	collate.New(language.English, collate.IgnoreCase).SortStrings(names)
	return names
}
