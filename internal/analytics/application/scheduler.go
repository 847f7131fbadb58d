package application

import (
	"context"
	"log"
	"time"

	"ispdesk/internal/analytics/application/events"
	analytics "ispdesk/internal/analytics/domain"
	"ispdesk/internal/observability/metrics"
)

// DefaultInterval is the period between statistics recomputations.
const DefaultInterval = 3 * time.Second

// SnapshotSource recomputes the registry statistics on demand.
type SnapshotSource interface {
	Snapshot(ctx context.Context) analytics.Snapshot
}

// EventBus publishes computed snapshots.
type EventBus interface {
	PublishStatisticsComputed(ctx context.Context, event events.StatisticsComputed) error
}

// Scheduler recomputes registry statistics on a fixed interval. The pass
// is read-only: it never mutates the domain model.
type Scheduler struct {
	source   SnapshotSource
	bus      EventBus
	metrics  *metrics.Metrics
	interval time.Duration
	logger   *log.Logger
}

// NewScheduler constructs a Scheduler. A non-positive interval falls
// back to DefaultInterval.
func NewScheduler(source SnapshotSource, bus EventBus, m *metrics.Metrics, interval time.Duration, logger *log.Logger) *Scheduler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Scheduler{
		source:   source,
		bus:      bus,
		metrics:  m,
		interval: interval,
		logger:   logger,
	}
}

// Start begins the scheduler loop and blocks until ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	if s == nil || s.source == nil {
		return
	}
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runOnce(ctx)
		}
	}
}

func (s *Scheduler) runOnce(ctx context.Context) {
	started := time.Now()
	snap := s.source.Snapshot(ctx)
	took := time.Since(started)

	s.metrics.ObserveSnapshot(snap, took)

	if s.bus == nil {
		return
	}
	event := events.StatisticsComputed{Snapshot: snap, OccurredAt: snap.TakenAt}
	if err := s.bus.PublishStatisticsComputed(ctx, event); err != nil && s.logger != nil {
		s.logger.Printf("publish statistics: %v", err)
	}
}
