package sync

import (
	"context"
	"sync"

	"event-sync/core/reconcile"

	"go.uber.org/zap"
)

// Service runs reconciliation passes and retains the most recent report.
type Service struct {
	engine *reconcile.Engine
	logger *zap.Logger

	// mu serializes passes: both origins enforce rate limits, so
	// concurrent HTTP triggers must not overlap.
	mu   sync.Mutex
	last *reconcile.SyncReport
}

// NewService creates a new sync service.
func NewService(engine *reconcile.Engine, logger *zap.Logger) *Service {
	return &Service{
		engine: engine,
		logger: logger,
	}
}

// RunPass performs one reconciliation pass and stores its report.
func (s *Service) RunPass(ctx context.Context) (*reconcile.SyncReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	report, err := s.engine.Run(ctx)
	if err != nil {
		return nil, err
	}

	s.last = report
	return report, nil
}

// LastReport returns the report of the most recent successful pass, or nil
// if no pass has completed yet.
func (s *Service) LastReport() *reconcile.SyncReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}
