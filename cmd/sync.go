package cmd

import (
	"context"
	"fmt"
	"time"

	"event-sync/core/config"
	"event-sync/core/gcal"
	"event-sync/core/logger"
	"event-sync/core/notion"
	"event-sync/core/reconcile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the sync command
	windowHours int
)

// syncCmd performs one bidirectional reconciliation pass.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Run one bidirectional reconciliation pass",
	Long: `Run one full reconciliation pass between the Notion database and the
Google Calendar.

Fetches open (not done) events from the database and recently updated
events from the calendar, decides per direction which events are missing
on the opposite side, and creates those. Events judged already present
are ignored; a failed creation is reported but does not stop the pass.

Examples:
  # One pass with the configured fetch window
  event-sync sync

  # Consider calendar events updated in the last 3 days
  event-sync sync --window-hours 72`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().IntVar(&windowHours, "window-hours", 0, "Calendar fetch window in hours (0 = configured default)")

	RootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	l.Info("Starting reconciliation pass")

	// Build origin adapters
	databaseSource := notion.NewSource(notion.NewAPI(cfg.Notion), cfg.Notion, l)

	calendarAPI, err := gcal.NewAPI(ctx, cfg.Calendar)
	if err != nil {
		return fmt.Errorf("failed to create calendar client: %w", err)
	}
	calendarSource := gcal.NewSource(calendarAPI, cfg.Calendar, l)

	// Resolve fetch window (flag overrides config)
	window := cfg.Sync.Window()
	if windowHours > 0 {
		window = time.Duration(windowHours) * time.Hour
	}

	// Run the pass
	engine := reconcile.NewEngine(databaseSource, calendarSource, window, l)
	report, err := engine.Run(ctx)
	if err != nil {
		return fmt.Errorf("reconciliation pass failed: %w", err)
	}

	printSyncReport(l, report)
	return nil
}

// printSyncReport prints a formatted sync report using logger.
func printSyncReport(l *zap.Logger, report *reconcile.SyncReport) {
	l.Info("Sync report",
		zap.Int("fetched_database", report.FetchedDatabase),
		zap.Int("fetched_calendar", report.FetchedCalendar),
		zap.Int("pushed", report.Summary.Pushed),
		zap.Int("ignored", report.Summary.Ignored),
		zap.Int("failed", report.Summary.Failed),
	)

	for _, outcome := range report.Outcomes {
		l.Info("Event outcome",
			zap.String("title", outcome.Title),
			zap.String("direction", string(outcome.Direction)),
			zap.String("outcome", string(outcome.Outcome)),
			zap.String("reason", outcome.Reason),
		)
	}
}
