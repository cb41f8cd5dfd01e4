package commands

import (
	"errors"

	"zoneship/internal/core/domain/model/kernel"
	"zoneship/internal/core/domain/model/manager"
	"zoneship/internal/pkg/guard"
)

var ErrCreateZoneManagerCommandIsNotConstructed = errors.New(
	"CreateZoneManagerCommand must be created via NewCreateZoneManagerCommand constructor",
)

// CreateZoneManagerCommand represents a request to register an
// operations manager scoped to one zone, together with the bearer token
// the manager will authenticate with.
type CreateZoneManagerCommand struct { //nolint:recvcheck //using for validation
	managerID kernel.UUID
	name      string
	zone      kernel.Zone
	token     string

	guard guard.ConstructorGuard
}

// NewCreateZoneManagerCommand creates a command to register a zone manager.
func NewCreateZoneManagerCommand(
	managerID kernel.UUID,
	name string,
	zone kernel.Zone,
	token string,
) (CreateZoneManagerCommand, error) {
	cmd := CreateZoneManagerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setManagerID(managerID),
		cmd.setName(name),
		cmd.setZone(zone),
		cmd.setToken(token),
	); err != nil {
		return CreateZoneManagerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateZoneManagerCommand) Validate() error {
	return c.guard.Validate(ErrCreateZoneManagerCommandIsNotConstructed)
}

// ManagerID returns the unique identifier for the manager.
func (c CreateZoneManagerCommand) ManagerID() kernel.UUID {
	return c.managerID
}

// Name returns the manager's display name.
func (c CreateZoneManagerCommand) Name() string {
	return c.name
}

// Zone returns the zone the manager is scoped to.
func (c CreateZoneManagerCommand) Zone() kernel.Zone {
	return c.zone
}

// Token returns the manager's bearer token.
func (c CreateZoneManagerCommand) Token() string {
	return c.token
}

func (c *CreateZoneManagerCommand) setManagerID(managerID kernel.UUID) error {
	if err := managerID.Validate(); err != nil {
		return err
	}

	c.managerID = managerID
	return nil
}

func (c *CreateZoneManagerCommand) setName(name string) error {
	if name == "" {
		return manager.ErrManagerNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateZoneManagerCommand) setZone(zone kernel.Zone) error {
	if err := zone.Validate(); err != nil {
		return err
	}

	c.zone = zone
	return nil
}

func (c *CreateZoneManagerCommand) setToken(token string) error {
	if token == "" {
		return manager.ErrTokenIsRequired
	}

	c.token = token
	return nil
}
