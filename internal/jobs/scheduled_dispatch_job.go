package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"zoneship/internal/core/application/usecases/commands"
	"zoneship/internal/core/application/usecases/queries"
	"zoneship/internal/core/domain/model/delivery"
	"zoneship/internal/core/domain/model/manager"
	"zoneship/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// ScheduledDispatchJob promotes scheduled deliveries whose window has
// opened from pending to accepted. Runs every minute and goes through
// the ordinary transition command as the admin actor, so it competes
// for the compare-and-swap like any other caller: if an operator moved
// the delivery first, the job simply loses the race and moves on.
type ScheduledDispatchJob struct {
	dueHandler        queries.GetDueScheduledDeliveriesQueryHandler
	transitionHandler commands.TransitionDeliveryCommandHandler
	cron              *cron.Cron
	logger            *slog.Logger
}

// NewScheduledDispatchJob creates a job for dispatching due scheduled deliveries.
func NewScheduledDispatchJob(
	dueHandler queries.GetDueScheduledDeliveriesQueryHandler,
	transitionHandler commands.TransitionDeliveryCommandHandler,
	logger *slog.Logger,
) *ScheduledDispatchJob {
	return &ScheduledDispatchJob{
		dueHandler:        dueHandler,
		transitionHandler: transitionHandler,
		cron:              cron.New(),
		logger:            logger.With("component", "scheduled_dispatch_job"),
	}
}

// Start begins the dispatch job to run every minute.
func (j *ScheduledDispatchJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		j.dispatchDue(ctx)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Scheduled dispatch job started (running every minute)")
	return nil
}

// Stop stops the dispatch job.
func (j *ScheduledDispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Scheduled dispatch job stopped")
}

func (j *ScheduledDispatchJob) dispatchDue(ctx context.Context) {
	query, err := queries.NewGetDueScheduledDeliveriesQuery(time.Now().UTC())
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to build due deliveries query", "error", err)
		return
	}

	dueIDs, err := j.dueHandler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to find due scheduled deliveries", "error", err)
		return
	}

	for _, deliveryID := range dueIDs {
		cmd, cmdErr := commands.NewTransitionDeliveryCommand(
			deliveryID, delivery.StatusAccepted, manager.NewAdmin())
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Failed to build transition command",
				"delivery_id", deliveryID.String(), "error", cmdErr)
			continue
		}

		if handleErr := j.transitionHandler.Handle(ctx, cmd); handleErr != nil {
			// A lost CAS race or an already-moved delivery is an expected
			// business scenario, not a system issue.
			if errors.Is(handleErr, ports.ErrConcurrentModification) ||
				errors.Is(handleErr, delivery.ErrIllegalTransition) {
				continue
			}

			j.logger.ErrorContext(ctx, "Failed to dispatch scheduled delivery",
				"delivery_id", deliveryID.String(), "error", handleErr)
		}
	}
}
