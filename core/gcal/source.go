package gcal

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"event-sync/core/event"

	"go.uber.org/zap"
	"google.golang.org/api/calendar/v3"
)

// Source adapts Google Calendar to the reconcile.CalendarSource interface.
type Source struct {
	api    API
	cfg    Config
	logger *zap.Logger
}

// NewSource creates a calendar source over the given API.
func NewSource(api API, cfg Config, logger *zap.Logger) *Source {
	return &Source{
		api:    api,
		cfg:    cfg,
		logger: logger,
	}
}

// FetchEventsSince returns events updated since the given instant,
// normalized into canonical sync events. Malformed events are skipped and
// logged.
func (s *Source) FetchEventsSince(ctx context.Context, since time.Time) ([]event.SyncEvent, error) {
	items, err := s.api.ListEvents(ctx, s.cfg.CalendarID, since)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	events := []event.SyncEvent{}
	for _, item := range items {
		ev, err := Normalize(item)
		if err != nil {
			if errors.Is(err, event.ErrMalformedRecord) {
				s.logger.Warn("Skipping malformed calendar event",
					zap.String("event_id", item.Id),
					zap.Error(err),
				)
				continue
			}
			return nil, err
		}
		events = append(events, ev)
	}

	return events, nil
}

// CreateEvent creates the canonical event on the configured calendar. The
// summary is prefixed with the database icon emoji when one is present, and
// the tags become the comma-joined description.
func (s *Source) CreateEvent(ctx context.Context, ev event.SyncEvent) error {
	summary := ev.Title
	if ev.IconEmoji != "" {
		summary = ev.IconEmoji + " " + ev.Title
	}

	item := &calendar.Event{
		Summary:     summary,
		Description: strings.Join(ev.Tags, ","),
		Start:       &calendar.EventDateTime{DateTime: ev.Start.Format(time.RFC3339)},
		End:         &calendar.EventDateTime{DateTime: ev.End.Format(time.RFC3339)},
	}

	if _, err := s.api.InsertEvent(ctx, s.cfg.CalendarID, item); err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}
