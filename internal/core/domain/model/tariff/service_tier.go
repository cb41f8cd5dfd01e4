package tariff

import (
	"errors"
	"fmt"

	"zoneship/internal/core/domain/model/kernel"
	"zoneship/internal/pkg/errs"
	"zoneship/internal/pkg/guard"
)

var (
	// ErrServiceTierIsNotConstructed is returned when a ServiceTier was not created
	// through the NewServiceTier factory method.
	ErrServiceTierIsNotConstructed = errors.New("ServiceTier must be created via NewServiceTier constructor")

	// ErrTierNameIsRequired is returned when the tier name is empty.
	ErrTierNameIsRequired = errors.New("service tier name is required")

	// ErrEstimateIsRequired is returned when the estimated-duration label is empty.
	ErrEstimateIsRequired = errors.New("estimated duration label is required")
)

// ServiceTier is a named shipping product, e.g. "Express" or "Regular".
//
// Invariants:
//   - multiplier > 0
//   - baseRatePerKg >= 0 (integral currency units)
//   - name and estimate label are non-empty
//
// The multiplier scales the zone tariff when quoting; the base rate and
// estimate label are configuration data shown to customers.
type ServiceTier struct {
	id            kernel.UUID
	name          string
	baseRatePerKg int64
	multiplier    float64
	estimate      string

	guard guard.ConstructorGuard
}

// NewServiceTier creates a ServiceTier with validation.
//
// Parameters:
//   - id: unique identifier
//   - name: product name, e.g. "Express"
//   - baseRatePerKg: base rate in integral currency units per kilogram (>= 0)
//   - multiplier: price multiplier applied to the zone tariff (> 0)
//   - estimate: estimated-duration label, e.g. "1-2 days"
func NewServiceTier(
	id kernel.UUID,
	name string,
	baseRatePerKg int64,
	multiplier float64,
	estimate string,
) (*ServiceTier, error) {
	tier := &ServiceTier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		tier.setID(id),
		tier.setName(name),
		tier.setBaseRatePerKg(baseRatePerKg),
		tier.setMultiplier(multiplier),
		tier.setEstimate(estimate),
	); err != nil {
		return nil, err
	}

	return tier, nil
}

// RestoreServiceTier reconstructs a ServiceTier from persistence, re-validating all invariants.
func RestoreServiceTier(
	id kernel.UUID,
	name string,
	baseRatePerKg int64,
	multiplier float64,
	estimate string,
) (*ServiceTier, error) {
	return NewServiceTier(id, name, baseRatePerKg, multiplier, estimate)
}

// Validate ensures the ServiceTier instance was properly constructed.
func (t *ServiceTier) Validate() error {
	if t == nil {
		return ErrServiceTierIsNotConstructed
	}
	return t.guard.Validate(ErrServiceTierIsNotConstructed)
}

// IsEqual compares two service tiers by their unique identifiers.
func (t *ServiceTier) IsEqual(other *ServiceTier) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// ID returns the tier's unique identifier.
func (t *ServiceTier) ID() kernel.UUID {
	return t.id
}

// Name returns the product name.
func (t *ServiceTier) Name() string {
	return t.name
}

// BaseRatePerKg returns the base rate per kilogram in integral currency units.
func (t *ServiceTier) BaseRatePerKg() int64 {
	return t.baseRatePerKg
}

// Multiplier returns the price multiplier applied to the zone tariff.
// Guaranteed positive for properly constructed tiers.
func (t *ServiceTier) Multiplier() float64 {
	return t.multiplier
}

// Estimate returns the estimated-duration label.
func (t *ServiceTier) Estimate() string {
	return t.estimate
}

func (t *ServiceTier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *ServiceTier) setName(name string) error {
	if name == "" {
		return ErrTierNameIsRequired
	}
	t.name = name
	return nil
}

func (t *ServiceTier) setBaseRatePerKg(rate int64) error {
	if rate < 0 {
		return errs.NewValueIsInvalidErrorWithCause("baseRatePerKg",
			fmt.Errorf("%d is negative", rate))
	}
	t.baseRatePerKg = rate
	return nil
}

func (t *ServiceTier) setMultiplier(multiplier float64) error {
	if multiplier <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("multiplier",
			fmt.Errorf("%g is not greater than 0", multiplier))
	}
	t.multiplier = multiplier
	return nil
}

func (t *ServiceTier) setEstimate(estimate string) error {
	if estimate == "" {
		return ErrEstimateIsRequired
	}
	t.estimate = estimate
	return nil
}
