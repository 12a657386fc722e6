package reconcile

import (
	"context"
	"time"

	"event-sync/core/event"

	"go.uber.org/zap"
)

// Engine drives one full bidirectional reconciliation pass:
// fetch both origins, decide per direction which events are missing on the
// opposite side, push those one at a time, and report per-event outcomes.
//
// Both origins enforce conservative rate limits, so pushes are issued
// sequentially, never concurrently.
type Engine struct {
	database DatabaseSource
	calendar CalendarSource
	window   time.Duration
	logger   *zap.Logger
}

// NewEngine creates a reconciliation engine. The window bounds the
// calendar fetch: only events updated within it are considered.
func NewEngine(database DatabaseSource, calendar CalendarSource, window time.Duration, logger *zap.Logger) *Engine {
	return &Engine{
		database: database,
		calendar: calendar,
		window:   window,
		logger:   logger,
	}
}

// Run performs a single pass and returns its report.
//
// A fetch failure on either origin aborts the pass before any push is
// attempted and is returned as an *event.FetchError. A create failure
// aborts only that event's push; the remaining pushes still run.
func (e *Engine) Run(ctx context.Context) (*SyncReport, error) {
	e.logger.Info("Fetching database events")
	dbEvents, err := e.database.FetchOpenEvents(ctx)
	if err != nil {
		return nil, &event.FetchError{Origin: "database", Err: err}
	}

	since := time.Now().Add(-e.window)
	e.logger.Info("Fetching calendar events", zap.Time("since", since))
	calEvents, err := e.calendar.FetchEventsSince(ctx, since)
	if err != nil {
		return nil, &event.FetchError{Origin: "calendar", Err: err}
	}

	report := &SyncReport{
		FetchedDatabase: len(dbEvents),
		FetchedCalendar: len(calEvents),
		Outcomes:        []EventOutcome{},
	}

	e.pushDirection(ctx, report, dbEvents, event.Titles(calEvents), DirectionDatabaseToCalendar, e.calendar.CreateEvent)
	e.pushDirection(ctx, report, calEvents, event.Titles(dbEvents), DirectionCalendarToDatabase, e.database.CreateEvent)

	e.logger.Info("Reconciliation pass completed",
		zap.Int("pushed", report.Summary.Pushed),
		zap.Int("ignored", report.Summary.Ignored),
		zap.Int("failed", report.Summary.Failed),
	)

	return report, nil
}

// pushDirection classifies every candidate against the opposite origin's
// titles and pushes the missing ones sequentially, in candidate order.
func (e *Engine) pushDirection(
	ctx context.Context,
	report *SyncReport,
	candidates []event.SyncEvent,
	existingTitles []string,
	dir Direction,
	create func(context.Context, event.SyncEvent) error,
) {
	for _, ev := range candidates {
		if Present(ev.Title, existingTitles, dir) {
			e.logger.Info("Ignoring event already present",
				zap.String("title", ev.Title),
				zap.String("direction", string(dir)),
			)
			report.record(EventOutcome{
				Title:     ev.Title,
				Direction: dir,
				Outcome:   OutcomeIgnored,
				Reason:    "already present in " + dir.Target(),
			})
			continue
		}

		if err := create(ctx, ev); err != nil {
			createErr := &event.CreateError{Origin: dir.Target(), Title: ev.Title, Err: err}
			e.logger.Warn("Push failed",
				zap.String("title", ev.Title),
				zap.String("direction", string(dir)),
				zap.Error(createErr),
			)
			report.record(EventOutcome{
				Title:     ev.Title,
				Direction: dir,
				Outcome:   OutcomeFailed,
				Reason:    createErr.Error(),
			})
			continue
		}

		e.logger.Info("Pushed event",
			zap.String("title", ev.Title),
			zap.String("direction", string(dir)),
		)
		report.record(EventOutcome{
			Title:     ev.Title,
			Direction: dir,
			Outcome:   OutcomePushed,
		})
	}
}
