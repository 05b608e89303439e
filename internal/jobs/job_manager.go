package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"backoffice/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	stalePendingSweepJob *StalePendingSweepJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the query handler as a dependency to wire up the job execution.
func NewJobManager(
	stalePendingHandler queries.ListStalePendingOrdersQueryHandler,
	sweepSchedule string,
	staleAfter time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		stalePendingSweepJob: NewStalePendingSweepJob(
			stalePendingHandler, sweepSchedule, staleAfter, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.stalePendingSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale pending sweep job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.stalePendingSweepJob.Stop()
}
