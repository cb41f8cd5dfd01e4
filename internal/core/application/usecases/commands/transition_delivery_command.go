package commands

import (
	"errors"

	"zoneship/internal/core/domain/model/delivery"
	"zoneship/internal/core/domain/model/kernel"
	"zoneship/internal/core/domain/model/manager"
	"zoneship/internal/pkg/guard"
)

var (
	ErrTransitionDeliveryCommandIsNotConstructed = errors.New(
		"TransitionDeliveryCommand must be created via NewTransitionDeliveryCommand constructor",
	)
	ErrActorIsRequired = errors.New("acting principal is required")
)

// TransitionDeliveryCommand represents a request to move a delivery to a
// new lifecycle status on behalf of an actor.
//
// Example:
//
//	cmd, err := NewTransitionDeliveryCommand(deliveryID, delivery.StatusAccepted, zoneManager)
//	if err != nil {
//	    return fmt.Errorf("invalid transition request: %w", err)
//	}
//
//	handler := NewTransitionDeliveryCommandHandler(uowFactory)
//	err = handler.Handle(ctx, cmd)
//	if errors.Is(err, delivery.ErrIllegalTransition) {
//	    // edge does not exist on this delivery's track
//	}
//	if errors.Is(err, manager.ErrZoneForbidden) {
//	    // actor is scoped to a different zone
//	}
type TransitionDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	target     delivery.Status
	actor      manager.Actor

	guard guard.ConstructorGuard
}

// NewTransitionDeliveryCommand creates a command to transition a delivery.
// The target must belong to the shared status vocabulary; whether the
// edge is legal for this particular delivery is decided by the aggregate.
func NewTransitionDeliveryCommand(
	deliveryID kernel.UUID,
	target delivery.Status,
	actor manager.Actor,
) (TransitionDeliveryCommand, error) {
	cmd := TransitionDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setTarget(target),
		cmd.setActor(actor),
	); err != nil {
		return TransitionDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrTransitionDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the delivery to transition.
func (c TransitionDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Target returns the requested status.
func (c TransitionDeliveryCommand) Target() delivery.Status {
	return c.target
}

// Actor returns the acting principal.
func (c TransitionDeliveryCommand) Actor() manager.Actor {
	return c.actor
}

func (c *TransitionDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *TransitionDeliveryCommand) setTarget(target delivery.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}

func (c *TransitionDeliveryCommand) setActor(actor manager.Actor) error {
	if actor == nil {
		return ErrActorIsRequired
	}

	c.actor = actor
	return nil
}
