package reconcile

import (
	"strings"

	"event-sync/core/event"
)

// Present reports whether a candidate title is judged to already exist
// among the opposite origin's titles for the given direction.
//
// The heuristic is intentionally approximate. An exact substring match
// always counts as present. On top of that:
//
//   - database→calendar: the title's second whitespace token (when one
//     exists) matching as a substring also counts, because pushed-to-calendar
//     titles are prefixed with an emoji and a space. Single-word titles
//     skip the token rule entirely.
//   - calendar→database: the whole title equaling any whitespace token of
//     an existing title also counts.
//
// False matches in either direction are possible when titles share short
// substrings; no stronger identity signal is maintained.
func Present(title string, existing []string, dir Direction) bool {
	for _, ex := range existing {
		if strings.Contains(ex, title) {
			return true
		}
	}

	switch dir {
	case DirectionDatabaseToCalendar:
		tokens := strings.Fields(title)
		if len(tokens) < 2 {
			return false
		}
		for _, ex := range existing {
			if strings.Contains(ex, tokens[1]) {
				return true
			}
		}
	case DirectionCalendarToDatabase:
		for _, ex := range existing {
			for _, token := range strings.Fields(ex) {
				if token == title {
					return true
				}
			}
		}
	}

	return false
}

// ComputeMissing returns the subset of candidates judged not already
// present among existingTitles, preserving candidate order. It is a pure
// function of its arguments.
func ComputeMissing(candidates []event.SyncEvent, existingTitles []string, dir Direction) []event.SyncEvent {
	missing := make([]event.SyncEvent, 0, len(candidates))
	for _, c := range candidates {
		if !Present(c.Title, existingTitles, dir) {
			missing = append(missing, c)
		}
	}
	return missing
}
