package commands

import (
	"context"
	"time"

	"zoneship/internal/core/domain/model/manager"
)

// TransitionDeliveryCommandHandler handles lifecycle status transitions.
//
// Order of checks matters: authorization against the frozen delivery
// zone runs before transition legality, so a zone manager probing a
// foreign delivery learns nothing about its state.
//
// Concurrency is handled with a compare-and-swap on the status read at
// the start of the transaction. When a concurrent writer wins, the
// repository reports ports.ErrConcurrentModification and the command
// fails; the caller observes the fresh state on retry. Lost updates are
// impossible: exactly one of two racing transitions commits.
type TransitionDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewTransitionDeliveryCommandHandler creates a handler for status transitions.
func NewTransitionDeliveryCommandHandler(uowFactory DeliveryUoWFactory) TransitionDeliveryCommandHandler {
	return TransitionDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the transition command.
func (h *TransitionDeliveryCommandHandler) Handle(ctx context.Context, cmd TransitionDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()

	aggregate, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	if err = cmd.Actor().AuthorizeZone(aggregate.DeliveryZone()); err != nil {
		return err
	}

	expected := aggregate.Status()
	if err = aggregate.TransitionTo(cmd.Target(), time.Now().UTC()); err != nil {
		return err
	}

	if zm, ok := cmd.Actor().(*manager.ZoneManager); ok {
		if err = aggregate.RecordManager(zm.ID()); err != nil {
			return err
		}
	}

	if err = deliveryRepo.UpdateStatus(ctx, aggregate, expected); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
