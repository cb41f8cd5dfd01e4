package commands

import (
	"errors"
	"fmt"

	"zoneship/internal/core/domain/model/kernel"
	"zoneship/internal/core/domain/model/tariff"
	"zoneship/internal/pkg/errs"
	"zoneship/internal/pkg/guard"
)

var ErrUpsertServiceTierCommandIsNotConstructed = errors.New(
	"UpsertServiceTierCommand must be created via NewUpsertServiceTierCommand constructor",
)

// UpsertServiceTierCommand represents a request to create or replace a
// service tier. Tiers are keyed by name: upserting "Express" again
// replaces its rate, multiplier and estimate without touching the price
// snapshots of already-placed deliveries.
type UpsertServiceTierCommand struct { //nolint:recvcheck //using for validation
	tierID        kernel.UUID
	name          string
	baseRatePerKg int64
	multiplier    float64
	estimate      string

	guard guard.ConstructorGuard
}

// NewUpsertServiceTierCommand creates a command to create or replace a service tier.
func NewUpsertServiceTierCommand(
	tierID kernel.UUID,
	name string,
	baseRatePerKg int64,
	multiplier float64,
	estimate string,
) (UpsertServiceTierCommand, error) {
	cmd := UpsertServiceTierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTierID(tierID),
		cmd.setName(name),
		cmd.setBaseRatePerKg(baseRatePerKg),
		cmd.setMultiplier(multiplier),
		cmd.setEstimate(estimate),
	); err != nil {
		return UpsertServiceTierCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpsertServiceTierCommand) Validate() error {
	return c.guard.Validate(ErrUpsertServiceTierCommandIsNotConstructed)
}

// TierID returns the identifier to use when inserting a new tier.
func (c UpsertServiceTierCommand) TierID() kernel.UUID {
	return c.tierID
}

// Name returns the tier's product name, the upsert key.
func (c UpsertServiceTierCommand) Name() string {
	return c.name
}

// BaseRatePerKg returns the base rate in integral currency units per kilogram.
func (c UpsertServiceTierCommand) BaseRatePerKg() int64 {
	return c.baseRatePerKg
}

// Multiplier returns the price multiplier applied to zone tariffs.
func (c UpsertServiceTierCommand) Multiplier() float64 {
	return c.multiplier
}

// Estimate returns the estimated-duration label.
func (c UpsertServiceTierCommand) Estimate() string {
	return c.estimate
}

func (c *UpsertServiceTierCommand) setTierID(tierID kernel.UUID) error {
	if err := tierID.Validate(); err != nil {
		return err
	}

	c.tierID = tierID
	return nil
}

func (c *UpsertServiceTierCommand) setName(name string) error {
	if name == "" {
		return tariff.ErrTierNameIsRequired
	}

	c.name = name
	return nil
}

func (c *UpsertServiceTierCommand) setBaseRatePerKg(rate int64) error {
	if rate < 0 {
		return errs.NewValueIsInvalidErrorWithCause("baseRatePerKg",
			fmt.Errorf("%d is negative", rate))
	}

	c.baseRatePerKg = rate
	return nil
}

func (c *UpsertServiceTierCommand) setMultiplier(multiplier float64) error {
	if multiplier <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("multiplier",
			fmt.Errorf("%g is not greater than 0", multiplier))
	}

	c.multiplier = multiplier
	return nil
}

func (c *UpsertServiceTierCommand) setEstimate(estimate string) error {
	if estimate == "" {
		return tariff.ErrEstimateIsRequired
	}

	c.estimate = estimate
	return nil
}
