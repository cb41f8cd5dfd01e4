package jobs

import (
	"fmt"
	"log/slog"

	"zoneship/internal/core/application/usecases/commands"
	"zoneship/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	scheduledDispatchJob *ScheduledDispatchJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the handlers as dependencies to wire up the job execution.
func NewJobManager(
	dueHandler queries.GetDueScheduledDeliveriesQueryHandler,
	transitionHandler commands.TransitionDeliveryCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		scheduledDispatchJob: NewScheduledDispatchJob(dueHandler, transitionHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.scheduledDispatchJob.Start(); err != nil {
		return fmt.Errorf("failed to start scheduled dispatch job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.scheduledDispatchJob.Stop()
}
