package commands

import (
	"context"
	"time"

	"zoneship/internal/core/domain/model/manager"
)

// AssignDriverCommandHandler handles driver assignment.
//
// Like status transitions, authorization against the frozen delivery
// zone runs first, and the write is a compare-and-swap on the status
// read at the start of the transaction: an assignment racing a status
// change loses cleanly instead of resurrecting an unassignable state.
type AssignDriverCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewAssignDriverCommandHandler creates a handler for driver assignment.
func NewAssignDriverCommandHandler(uowFactory DeliveryUoWFactory) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the driver assignment command.
func (h *AssignDriverCommandHandler) Handle(ctx context.Context, cmd AssignDriverCommand) error {
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
	if err = aggregate.AssignDriver(cmd.DriverID(), time.Now().UTC()); err != nil {
		return err
	}

	if zm, ok := cmd.Actor().(*manager.ZoneManager); ok {
		if err = aggregate.RecordManager(zm.ID()); err != nil {
			return err
		}
	}

	if err = deliveryRepo.UpdateDriver(ctx, aggregate, expected); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
