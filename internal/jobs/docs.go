// Package jobs provides scheduled background tasks for the back-office
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the order lifecycle.
//
// # Available Jobs
//
// 1. StalePendingSweepJob - Periodically finds Pending orders older than a
// configurable threshold and reports them through the log, oldest first.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with the required handler
//	jobManager := jobs.NewJobManager(stalePendingHandler, schedule, staleAfter, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The sweep schedule is a six-field cron expression (seconds included),
// configured through the environment alongside the staleness threshold.
//
// # Error Handling
//
// The sweep job logs failures and keeps its schedule; a failed run never
// stops subsequent runs. Failed job starts stop any already running jobs.
package jobs
