package commands

import (
	"errors"

	"zoneship/internal/core/domain/model/kernel"
	"zoneship/internal/core/domain/model/manager"
	"zoneship/internal/pkg/guard"
)

var ErrAssignDriverCommandIsNotConstructed = errors.New(
	"AssignDriverCommand must be created via NewAssignDriverCommand constructor",
)

// AssignDriverCommand represents a request to assign or reassign a
// driver to a delivery on behalf of an actor. Reassignment within an
// assignable status is last-write-wins; once custody of the goods has
// transferred, assignment is rejected by the aggregate.
type AssignDriverCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	driverID   kernel.UUID
	actor      manager.Actor

	guard guard.ConstructorGuard
}

// NewAssignDriverCommand creates a command to assign a driver.
func NewAssignDriverCommand(
	deliveryID kernel.UUID,
	driverID kernel.UUID,
	actor manager.Actor,
) (AssignDriverCommand, error) {
	cmd := AssignDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setDriverID(driverID),
		cmd.setActor(actor),
	); err != nil {
		return AssignDriverCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDriverCommand) Validate() error {
	return c.guard.Validate(ErrAssignDriverCommandIsNotConstructed)
}

// DeliveryID returns the delivery to assign a driver to.
func (c AssignDriverCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// DriverID returns the driver being assigned.
func (c AssignDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Actor returns the acting principal.
func (c AssignDriverCommand) Actor() manager.Actor {
	return c.actor
}

func (c *AssignDriverCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *AssignDriverCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *AssignDriverCommand) setActor(actor manager.Actor) error {
	if actor == nil {
		return ErrActorIsRequired
	}

	c.actor = actor
	return nil
}
