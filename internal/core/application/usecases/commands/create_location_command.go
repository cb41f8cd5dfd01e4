package commands

import (
	"errors"

	"zoneship/internal/core/domain/model/kernel"
	"zoneship/internal/core/domain/model/location"
	"zoneship/internal/pkg/guard"
)

var ErrCreateLocationCommandIsNotConstructed = errors.New(
	"CreateLocationCommand must be created via NewCreateLocationCommand constructor",
)

// CreateLocationCommand represents a request to register a city or
// regency as a shipping endpoint, with its mandatory zone assignment.
//
// Example:
//
//	locationID := kernel.NewUUID()
//	zone, _ := kernel.NewZone(1)
//	cmd, err := NewCreateLocationCommand(locationID, "Bandung", "West Java",
//	    location.KindCity, "40111", zone)
//	if err != nil {
//	    return fmt.Errorf("invalid location data: %w", err)
//	}
//
//	handler := NewCreateLocationCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create location: %w", err)
//	}
type CreateLocationCommand struct { //nolint:recvcheck //using for validation
	locationID kernel.UUID
	name       string
	province   string
	kind       location.Kind
	postalCode string
	zone       kernel.Zone

	guard guard.ConstructorGuard
}

// NewCreateLocationCommand creates a command to register a shipping endpoint.
// Field validation mirrors the Location aggregate's invariants so bad input
// is rejected before a transaction starts.
func NewCreateLocationCommand(
	locationID kernel.UUID,
	name string,
	province string,
	kind location.Kind,
	postalCode string,
	zone kernel.Zone,
) (CreateLocationCommand, error) {
	cmd := CreateLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setLocationID(locationID),
		cmd.setName(name),
		cmd.setProvince(province),
		cmd.setKind(kind),
		cmd.setPostalCode(postalCode),
		cmd.setZone(zone),
	); err != nil {
		return CreateLocationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateLocationCommand) Validate() error {
	return c.guard.Validate(ErrCreateLocationCommandIsNotConstructed)
}

// LocationID returns the unique identifier for the location.
func (c CreateLocationCommand) LocationID() kernel.UUID {
	return c.locationID
}

// Name returns the city/regency name.
func (c CreateLocationCommand) Name() string {
	return c.name
}

// Province returns the free-text province name.
func (c CreateLocationCommand) Province() string {
	return c.province
}

// Kind returns the administrative level of the location.
func (c CreateLocationCommand) Kind() location.Kind {
	return c.kind
}

// PostalCode returns the postal code of the administrative center.
func (c CreateLocationCommand) PostalCode() string {
	return c.postalCode
}

// Zone returns the zone the location resolves to.
func (c CreateLocationCommand) Zone() kernel.Zone {
	return c.zone
}

func (c *CreateLocationCommand) setLocationID(locationID kernel.UUID) error {
	if err := locationID.Validate(); err != nil {
		return err
	}

	c.locationID = locationID
	return nil
}

func (c *CreateLocationCommand) setName(name string) error {
	if name == "" {
		return location.ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateLocationCommand) setProvince(province string) error {
	if province == "" {
		return location.ErrProvinceIsRequired
	}

	c.province = province
	return nil
}

func (c *CreateLocationCommand) setKind(kind location.Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	c.kind = kind
	return nil
}

func (c *CreateLocationCommand) setPostalCode(postalCode string) error {
	if postalCode == "" {
		return location.ErrPostalCodeIsRequired
	}

	c.postalCode = postalCode
	return nil
}

func (c *CreateLocationCommand) setZone(zone kernel.Zone) error {
	if err := zone.Validate(); err != nil {
		return err
	}

	c.zone = zone
	return nil
}
