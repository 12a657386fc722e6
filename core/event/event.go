package event

import "time"

// UnknownTag is substituted whenever an origin supplies no usable tags,
// so that Tags is never empty.
const UnknownTag = "Unknown"

// SyncEvent is the canonical, origin-independent event representation.
// It is constructed fresh on every sync pass and never mutated afterwards.
//
// Events carry no persistent identifier shared across origins; identity
// across origins is inferred solely from the title (see core/reconcile).
type SyncEvent struct {
	// IconEmoji is the emoji attached to the event in the database origin.
	// Empty for events that came from the calendar origin.
	IconEmoji string `json:"icon_emoji"`

	// Title is the event title. Non-empty; the sole cross-origin identity signal.
	Title string `json:"title"`

	// Start is the timezone-aware start instant.
	Start time.Time `json:"start"`

	// End is the end instant. Always End >= Start; when an origin omits
	// the end, End equals Start.
	End time.Time `json:"end"`

	// Done is the completion flag. Always false for calendar-origin events.
	Done bool `json:"done"`

	// Tags is the ordered tag list. Never empty; ["Unknown"] when the
	// origin carries no tag concept or supplied none.
	Tags []string `json:"tags"`
}

// NormalizeTags drops empty entries and substitutes [UnknownTag] when
// nothing usable remains. Order of the surviving entries is preserved.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t != "" {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return []string{UnknownTag}
	}
	return out
}

// Titles returns the titles of the given events, preserving order.
func Titles(events []SyncEvent) []string {
	titles := make([]string, 0, len(events))
	for _, e := range events {
		titles = append(titles, e.Title)
	}
	return titles
}
