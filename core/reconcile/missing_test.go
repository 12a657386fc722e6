package reconcile

import (
	"testing"
	"time"

	"event-sync/core/event"

	"github.com/stretchr/testify/assert"
)

func TestPresent_DatabaseToCalendar(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		existing []string
		present  bool
	}{
		{
			name:     "exact substring match",
			title:    "Lunch",
			existing: []string{"🍔 Lunch"},
			present:  true,
		},
		{
			name:     "second token substring match",
			title:    "📞 Standup",
			existing: []string{"Daily Standup meeting"},
			present:  true,
		},
		{
			name:     "single word title skips token rule",
			title:    "Lunch",
			existing: []string{"Dinner", "Breakfast"},
			present:  false,
		},
		{
			name:     "no match",
			title:    "🏃 Marathon training",
			existing: []string{"🍔 Lunch", "Dentist"},
			present:  false,
		},
		{
			name:     "empty existing set",
			title:    "Meeting",
			existing: []string{},
			present:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.present, Present(tt.title, tt.existing, DirectionDatabaseToCalendar))
		})
	}
}

func TestPresent_CalendarToDatabase(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		existing []string
		present  bool
	}{
		{
			name:     "exact substring match",
			title:    "Standup",
			existing: []string{"Daily Standup meeting"},
			present:  true,
		},
		{
			name:     "title equals a token of an existing title",
			title:    "Dentist",
			existing: []string{"Call Dentist office"},
			present:  true,
		},
		{
			name:     "no match",
			title:    "Marathon",
			existing: []string{"🍔 Lunch", "Dinner with Sam"},
			present:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.present, Present(tt.title, tt.existing, DirectionCalendarToDatabase))
		})
	}
}

func TestComputeMissing_PreservesOrder(t *testing.T) {
	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	candidates := []event.SyncEvent{
		{Title: "Alpha review", Start: start, End: start, Tags: []string{event.UnknownTag}},
		{Title: "🍔 Lunch", Start: start, End: start, Tags: []string{event.UnknownTag}},
		{Title: "Zulu briefing", Start: start, End: start, Tags: []string{event.UnknownTag}},
	}
	existing := []string{"Team Lunch break"}

	missing := ComputeMissing(candidates, existing, DirectionDatabaseToCalendar)

	assert.Len(t, missing, 2)
	assert.Equal(t, "Alpha review", missing[0].Title)
	assert.Equal(t, "Zulu briefing", missing[1].Title)
}

func TestComputeMissing_Pure(t *testing.T) {
	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	candidates := []event.SyncEvent{
		{Title: "Meeting", Start: start, End: start, Tags: []string{event.UnknownTag}},
		{Title: "Dentist", Start: start, End: start, Tags: []string{event.UnknownTag}},
	}
	existing := []string{"Dentist appointment"}

	first := ComputeMissing(candidates, existing, DirectionCalendarToDatabase)
	second := ComputeMissing(candidates, existing, DirectionCalendarToDatabase)

	assert.Equal(t, first, second)
}

// A title that is a substring of any existing title must never be pushed,
// regardless of direction.
func TestComputeMissing_SubstringAlwaysExcluded(t *testing.T) {
	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	candidates := []event.SyncEvent{
		{Title: "Lunch", Start: start, End: start, Tags: []string{event.UnknownTag}},
	}
	existing := []string{"🍔 Lunch"}

	for _, dir := range []Direction{DirectionDatabaseToCalendar, DirectionCalendarToDatabase} {
		missing := ComputeMissing(candidates, existing, dir)
		assert.Empty(t, missing, "direction %s", dir)
	}
}

func TestComputeMissing_EmptyExisting(t *testing.T) {
	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	candidates := []event.SyncEvent{
		{Title: "Meeting", Start: start, End: start, Tags: []string{event.UnknownTag}},
	}

	missing := ComputeMissing(candidates, []string{}, DirectionDatabaseToCalendar)
	assert.Len(t, missing, 1)
}
