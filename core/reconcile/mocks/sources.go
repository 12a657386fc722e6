package mocks

import (
	"context"
	"time"

	"event-sync/core/event"

	"github.com/stretchr/testify/mock"
)

// DatabaseSource is a mock implementation of reconcile.DatabaseSource.
type DatabaseSource struct {
	mock.Mock
}

func (m *DatabaseSource) FetchOpenEvents(ctx context.Context) ([]event.SyncEvent, error) {
	args := m.Called(ctx)
	if events, ok := args.Get(0).([]event.SyncEvent); ok {
		return events, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *DatabaseSource) CreateEvent(ctx context.Context, ev event.SyncEvent) error {
	args := m.Called(ctx, ev)
	return args.Error(0)
}

// CalendarSource is a mock implementation of reconcile.CalendarSource.
type CalendarSource struct {
	mock.Mock
}

func (m *CalendarSource) FetchEventsSince(ctx context.Context, since time.Time) ([]event.SyncEvent, error) {
	args := m.Called(ctx, since)
	if events, ok := args.Get(0).([]event.SyncEvent); ok {
		return events, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CalendarSource) CreateEvent(ctx context.Context, ev event.SyncEvent) error {
	args := m.Called(ctx, ev)
	return args.Error(0)
}
