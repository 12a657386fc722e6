package gcal

import (
	"context"
	"fmt"
	"testing"
	"time"

	"event-sync/core/event"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"google.golang.org/api/calendar/v3"
)

// mockAPI is a testify mock over the API interface.
type mockAPI struct {
	mock.Mock
}

func (m *mockAPI) ListEvents(ctx context.Context, calendarID string, updatedMin time.Time) ([]*calendar.Event, error) {
	args := m.Called(ctx, calendarID, updatedMin)
	if events, ok := args.Get(0).([]*calendar.Event); ok {
		return events, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAPI) InsertEvent(ctx context.Context, calendarID string, ev *calendar.Event) (*calendar.Event, error) {
	args := m.Called(ctx, calendarID, ev)
	if inserted, ok := args.Get(0).(*calendar.Event); ok {
		return inserted, args.Error(1)
	}
	return nil, args.Error(1)
}

func TestFetchEventsSince_SkipsMalformedEvents(t *testing.T) {
	since := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	api := new(mockAPI)
	api.On("ListEvents", mock.Anything, "primary", since).Return([]*calendar.Event{
		{
			Summary: "Team offsite",
			Start:   &calendar.EventDateTime{DateTime: "2024-01-01T10:00:00Z"},
			End:     &calendar.EventDateTime{DateTime: "2024-01-01T12:00:00Z"},
		},
		{
			// No summary: skipped, not fatal.
			Start: &calendar.EventDateTime{DateTime: "2024-01-01T10:00:00Z"},
		},
	}, nil)

	source := NewSource(api, Config{CalendarID: "primary"}, zap.NewNop())
	events, err := source.FetchEventsSince(context.Background(), since)

	assert.NoError(t, err)
	assert.Equal(t, []string{"Team offsite"}, event.Titles(events))
}

func TestFetchEventsSince_ListError(t *testing.T) {
	api := new(mockAPI)
	api.On("ListEvents", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("503 backend error"))

	source := NewSource(api, Config{CalendarID: "primary"}, zap.NewNop())
	events, err := source.FetchEventsSince(context.Background(), time.Now())

	assert.Nil(t, events)
	assert.ErrorContains(t, err, "list events")
}

func TestCreateEvent_SummaryAndDescription(t *testing.T) {
	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	var captured *calendar.Event
	api := new(mockAPI)
	api.On("InsertEvent", mock.Anything, "primary", mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(2).(*calendar.Event)
		}).
		Return(&calendar.Event{}, nil)

	source := NewSource(api, Config{CalendarID: "primary"}, zap.NewNop())
	err := source.CreateEvent(context.Background(), event.SyncEvent{
		IconEmoji: "📌",
		Title:     "Review",
		Start:     start,
		End:       start.Add(time.Hour),
		Tags:      []string{"Work", "Weekly"},
	})

	assert.NoError(t, err)
	assert.NotNil(t, captured)
	assert.Equal(t, "📌 Review", captured.Summary)
	assert.Equal(t, "Work,Weekly", captured.Description)
	assert.Equal(t, start.Format(time.RFC3339), captured.Start.DateTime)
	assert.Equal(t, start.Add(time.Hour).Format(time.RFC3339), captured.End.DateTime)
}

func TestCreateEvent_NoIconLeavesSummaryBare(t *testing.T) {
	var captured *calendar.Event
	api := new(mockAPI)
	api.On("InsertEvent", mock.Anything, "primary", mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(2).(*calendar.Event)
		}).
		Return(&calendar.Event{}, nil)

	source := NewSource(api, Config{CalendarID: "primary"}, zap.NewNop())
	err := source.CreateEvent(context.Background(), event.SyncEvent{
		Title: "Review",
		Start: time.Now(),
		End:   time.Now(),
		Tags:  []string{event.UnknownTag},
	})

	assert.NoError(t, err)
	assert.Equal(t, "Review", captured.Summary)
}

func TestCreateEvent_InsertError(t *testing.T) {
	api := new(mockAPI)
	api.On("InsertEvent", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("403 rate limit exceeded"))

	source := NewSource(api, Config{CalendarID: "primary"}, zap.NewNop())
	err := source.CreateEvent(context.Background(), event.SyncEvent{Title: "Review"})

	assert.ErrorContains(t, err, "insert event")
}
