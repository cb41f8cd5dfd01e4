// Package jobs provides scheduled background tasks for the shipping platform.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations the request path cannot cover.
//
// # Available Jobs
//
// ScheduledDispatchJob - Runs every minute to promote scheduled deliveries
// whose window has opened from pending to accepted.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(dueHandler, transitionHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The dispatch job acts as the admin through the ordinary transition
// command, so it is subject to the same compare-and-swap as interactive
// callers. Lost races and already-moved deliveries are expected and
// skipped; every other error is logged as a system issue.
package jobs
