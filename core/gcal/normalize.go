package gcal

import (
	"fmt"
	"time"

	"event-sync/core/event"

	"google.golang.org/api/calendar/v3"
)

const allDayLayout = "2006-01-02"

// Normalize maps a raw calendar event into the canonical sync event shape.
// The calendar origin carries no icon, completion, or tag concept: the icon
// is always empty, done is always false, and tags are always ["Unknown"].
// An event without a summary or start fails with an error wrapping
// event.ErrMalformedRecord.
func Normalize(ev *calendar.Event) (event.SyncEvent, error) {
	if ev.Summary == "" {
		return event.SyncEvent{}, fmt.Errorf("%w: event %s has no summary", event.ErrMalformedRecord, ev.Id)
	}

	start, err := parseEventTime(ev.Start)
	if err != nil {
		return event.SyncEvent{}, fmt.Errorf("%w: event %q start: %v", event.ErrMalformedRecord, ev.Summary, err)
	}

	end := start
	if ev.End != nil {
		if parsed, err := parseEventTime(ev.End); err == nil {
			end = parsed
		}
	}

	return event.SyncEvent{
		IconEmoji: "",
		Title:     ev.Summary,
		Start:     start,
		End:       end,
		Done:      false,
		Tags:      []string{event.UnknownTag},
	}, nil
}

// parseEventTime handles both timed events (RFC 3339 DateTime) and all-day
// events (date only).
func parseEventTime(t *calendar.EventDateTime) (time.Time, error) {
	if t == nil {
		return time.Time{}, fmt.Errorf("no time set")
	}
	if t.DateTime != "" {
		return time.Parse(time.RFC3339, t.DateTime)
	}
	if t.Date != "" {
		return time.Parse(allDayLayout, t.Date)
	}
	return time.Time{}, fmt.Errorf("no time set")
}
