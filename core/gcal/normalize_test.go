package gcal

import (
	"testing"
	"time"

	"event-sync/core/event"

	"github.com/stretchr/testify/assert"
	"google.golang.org/api/calendar/v3"
)

// Scenario: calendar events carry no tag or completion concept, so every
// normalized event has tags ["Unknown"] and done false.
func TestNormalize_FixedFields(t *testing.T) {
	ev, err := Normalize(&calendar.Event{
		Summary: "Team offsite",
		Start:   &calendar.EventDateTime{DateTime: "2024-01-01T10:00:00Z"},
		End:     &calendar.EventDateTime{DateTime: "2024-01-01T12:00:00Z"},
	})

	assert.NoError(t, err)
	assert.Equal(t, "Team offsite", ev.Title)
	assert.Equal(t, []string{event.UnknownTag}, ev.Tags)
	assert.False(t, ev.Done)
	assert.Empty(t, ev.IconEmoji)
	assert.Equal(t, time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), ev.Start)
	assert.Equal(t, time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC), ev.End)
}

func TestNormalize_AllDayEvent(t *testing.T) {
	ev, err := Normalize(&calendar.Event{
		Summary: "Holiday",
		Start:   &calendar.EventDateTime{Date: "2024-03-15"},
		End:     &calendar.EventDateTime{Date: "2024-03-16"},
	})

	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), ev.Start)
	assert.Equal(t, time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC), ev.End)
}

func TestNormalize_MissingEndDefaultsToStart(t *testing.T) {
	ev, err := Normalize(&calendar.Event{
		Summary: "Reminder",
		Start:   &calendar.EventDateTime{DateTime: "2024-01-01T10:00:00Z"},
	})

	assert.NoError(t, err)
	assert.Equal(t, ev.Start, ev.End)
}

func TestNormalize_MalformedEvents(t *testing.T) {
	tests := []struct {
		name string
		ev   *calendar.Event
	}{
		{
			name: "no summary",
			ev: &calendar.Event{
				Start: &calendar.EventDateTime{DateTime: "2024-01-01T10:00:00Z"},
			},
		},
		{
			name: "no start",
			ev:   &calendar.Event{Summary: "Mystery"},
		},
		{
			name: "empty start",
			ev: &calendar.Event{
				Summary: "Mystery",
				Start:   &calendar.EventDateTime{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize(tt.ev)
			assert.ErrorIs(t, err, event.ErrMalformedRecord)
		})
	}
}
