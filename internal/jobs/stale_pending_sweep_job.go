package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"backoffice/internal/core/application/usecases/queries"
)

// StalePendingSweepJob periodically looks for Pending orders that have sat
// past the staleness threshold and reports them through the log, oldest
// first, so operators can chase up orders nobody is processing.
type StalePendingSweepJob struct {
	handler   queries.ListStalePendingOrdersQueryHandler
	schedule  string
	olderThan time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewStalePendingSweepJob creates the sweep job. The schedule is a
// six-field cron expression; olderThan is the age past which a Pending
// order counts as stale.
func NewStalePendingSweepJob(
	handler queries.ListStalePendingOrdersQueryHandler,
	schedule string,
	olderThan time.Duration,
	logger *slog.Logger,
) *StalePendingSweepJob {
	return &StalePendingSweepJob{
		handler:   handler,
		schedule:  schedule,
		olderThan: olderThan,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "stale_pending_sweep_job"),
	}
}

// Start schedules the sweep.
func (j *StalePendingSweepJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.sweep)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale pending sweep job started",
		"schedule", j.schedule, "older_than", j.olderThan.String())
	return nil
}

// Stop stops the sweep job.
func (j *StalePendingSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale pending sweep job stopped")
}

func (j *StalePendingSweepJob) sweep() {
	ctx := context.Background()

	query, err := queries.NewListStalePendingOrdersQuery(j.olderThan)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale pending sweep failed to build query", "error", err)
		return
	}

	stale, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale pending sweep failed", "error", err)
		return
	}

	if len(stale) == 0 {
		return
	}

	j.logger.WarnContext(ctx, "Found stale pending orders", "count", len(stale))
	for _, o := range stale {
		j.logger.WarnContext(ctx, "Order pending past threshold",
			"order_id", o.ID.String(),
			"number", o.Number,
			"placed_at", o.PlacedAt,
		)
	}
}
