package reconcile

import (
	"context"
	"time"

	"event-sync/core/event"
)

// DatabaseSource is the database-origin adapter consumed by the engine.
// Implemented by core/notion; mocked in core/reconcile/mocks for tests.
type DatabaseSource interface {
	// FetchOpenEvents returns all events not marked done, normalized.
	// Malformed records are skipped by the adapter.
	FetchOpenEvents(ctx context.Context) ([]event.SyncEvent, error)

	// CreateEvent re-serializes the canonical event into the database
	// origin's schema and creates it.
	CreateEvent(ctx context.Context, ev event.SyncEvent) error
}

// CalendarSource is the calendar-origin adapter consumed by the engine.
// Implemented by core/gcal.
type CalendarSource interface {
	// FetchEventsSince returns events updated since the given instant,
	// normalized. Malformed records are skipped by the adapter.
	FetchEventsSince(ctx context.Context, since time.Time) ([]event.SyncEvent, error)

	// CreateEvent creates the canonical event on the calendar.
	CreateEvent(ctx context.Context, ev event.SyncEvent) error
}
