package commands

import (
	"errors"
	"fmt"

	"zoneship/internal/core/domain/model/kernel"
	"zoneship/internal/pkg/errs"
	"zoneship/internal/pkg/guard"
)

var ErrUpsertZoneTariffCommandIsNotConstructed = errors.New(
	"UpsertZoneTariffCommand must be created via NewUpsertZoneTariffCommand constructor",
)

// UpsertZoneTariffCommand represents a request to set the per-kilogram
// rate for an ordered (origin, destination) zone pair. Each direction is
// configured independently; setting (1,2) says nothing about (2,1).
type UpsertZoneTariffCommand struct { //nolint:recvcheck //using for validation
	originZone kernel.Zone
	destZone   kernel.Zone
	ratePerKg  int64

	guard guard.ConstructorGuard
}

// NewUpsertZoneTariffCommand creates a command to configure a zone pair rate.
func NewUpsertZoneTariffCommand(originZone, destZone kernel.Zone, ratePerKg int64) (UpsertZoneTariffCommand, error) {
	cmd := UpsertZoneTariffCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOriginZone(originZone),
		cmd.setDestZone(destZone),
		cmd.setRatePerKg(ratePerKg),
	); err != nil {
		return UpsertZoneTariffCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpsertZoneTariffCommand) Validate() error {
	return c.guard.Validate(ErrUpsertZoneTariffCommandIsNotConstructed)
}

// OriginZone returns the origin zone of the ordered pair.
func (c UpsertZoneTariffCommand) OriginZone() kernel.Zone {
	return c.originZone
}

// DestZone returns the destination zone of the ordered pair.
func (c UpsertZoneTariffCommand) DestZone() kernel.Zone {
	return c.destZone
}

// RatePerKg returns the per-kilogram rate in integral currency units.
func (c UpsertZoneTariffCommand) RatePerKg() int64 {
	return c.ratePerKg
}

func (c *UpsertZoneTariffCommand) setOriginZone(zone kernel.Zone) error {
	if err := zone.Validate(); err != nil {
		return err
	}

	c.originZone = zone
	return nil
}

func (c *UpsertZoneTariffCommand) setDestZone(zone kernel.Zone) error {
	if err := zone.Validate(); err != nil {
		return err
	}

	c.destZone = zone
	return nil
}

func (c *UpsertZoneTariffCommand) setRatePerKg(rate int64) error {
	if rate < 0 {
		return errs.NewValueIsInvalidErrorWithCause("ratePerKg",
			fmt.Errorf("%d is negative", rate))
	}

	c.ratePerKg = rate
	return nil
}
