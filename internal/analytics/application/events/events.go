package events

import (
	"time"

	analytics "ispdesk/internal/analytics/domain"
)

// StatisticsComputed is published after each periodic recomputation of
// the registry snapshot.
type StatisticsComputed struct {
	Snapshot   analytics.Snapshot
	OccurredAt time.Time
}
