package gcal

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// API is the subset of the Google Calendar service consumed by the source.
// Abstracting it keeps the source mockable without network access.
type API interface {
	// ListEvents returns all single events updated since the given instant.
	ListEvents(ctx context.Context, calendarID string, updatedMin time.Time) ([]*calendar.Event, error)
	// InsertEvent creates an event on the given calendar.
	InsertEvent(ctx context.Context, calendarID string, ev *calendar.Event) (*calendar.Event, error)
}

// NewAPI creates an API backed by the Google Calendar v3 service,
// authenticated with the configured credentials file.
func NewAPI(ctx context.Context, cfg Config) (API, error) {
	service, err := calendar.NewService(ctx,
		option.WithCredentialsFile(cfg.CredentialsFile),
		option.WithScopes(calendar.CalendarScope),
	)
	if err != nil {
		return nil, fmt.Errorf("create calendar service: %w", err)
	}
	return &serviceWrapper{service: service}, nil
}

type serviceWrapper struct {
	service *calendar.Service
}

func (w *serviceWrapper) ListEvents(ctx context.Context, calendarID string, updatedMin time.Time) ([]*calendar.Event, error) {
	var events []*calendar.Event
	call := w.service.Events.List(calendarID).
		SingleEvents(true).
		ShowDeleted(false).
		UpdatedMin(updatedMin.Format(time.RFC3339))

	err := call.Pages(ctx, func(page *calendar.Events) error {
		events = append(events, page.Items...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (w *serviceWrapper) InsertEvent(ctx context.Context, calendarID string, ev *calendar.Event) (*calendar.Event, error) {
	return w.service.Events.Insert(calendarID, ev).Context(ctx).Do()
}
