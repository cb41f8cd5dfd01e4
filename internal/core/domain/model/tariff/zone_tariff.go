package tariff

import (
	"errors"
	"fmt"

	"zoneship/internal/core/domain/model/kernel"
	"zoneship/internal/pkg/errs"
	"zoneship/internal/pkg/guard"
)

var (
	// ErrTariffNotConfigured is returned when no tariff row exists for an
	// ordered (origin zone, destination zone) pair. The engine never falls
	// back to a default rate and never infers symmetry: tariff(A,B) is not
	// assumed equal to tariff(B,A), and self-pairs (Z,Z) must be stored
	// explicitly to be quotable.
	ErrTariffNotConfigured = errors.New("tariff not configured for zone pair")

	// ErrZoneTariffIsNotConstructed is returned when a ZoneTariff was not created
	// through the NewZoneTariff factory method.
	ErrZoneTariffIsNotConstructed = errors.New("ZoneTariff must be created via NewZoneTariff constructor")
)

// ZoneTariff is the priced relationship between an origin zone and a
// destination zone: a per-kilogram rate in integral currency units.
//
// The pair is ordered. Storing (1,2) says nothing about (2,1), and
// (z,z) rows are ordinary rows with no special treatment.
type ZoneTariff struct {
	originZone kernel.Zone
	destZone   kernel.Zone
	ratePerKg  int64

	guard guard.ConstructorGuard
}

// NewZoneTariff creates a ZoneTariff for an ordered zone pair.
//
// Parameters:
//   - originZone, destZone: valid zones (origin may equal destination)
//   - ratePerKg: rate in integral currency units per kilogram (>= 0;
//     a stored zero rate is an explicit free tariff, never a fallback)
func NewZoneTariff(originZone, destZone kernel.Zone, ratePerKg int64) (*ZoneTariff, error) {
	zt := &ZoneTariff{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		zt.setOriginZone(originZone),
		zt.setDestZone(destZone),
		zt.setRatePerKg(ratePerKg),
	); err != nil {
		return nil, err
	}

	return zt, nil
}

// RestoreZoneTariff reconstructs a ZoneTariff from persistence, re-validating all invariants.
func RestoreZoneTariff(originZone, destZone kernel.Zone, ratePerKg int64) (*ZoneTariff, error) {
	return NewZoneTariff(originZone, destZone, ratePerKg)
}

// Validate ensures the ZoneTariff instance was properly constructed.
func (zt *ZoneTariff) Validate() error {
	if zt == nil {
		return ErrZoneTariffIsNotConstructed
	}
	return zt.guard.Validate(ErrZoneTariffIsNotConstructed)
}

// OriginZone returns the origin zone of the ordered pair.
func (zt *ZoneTariff) OriginZone() kernel.Zone {
	return zt.originZone
}

// DestZone returns the destination zone of the ordered pair.
func (zt *ZoneTariff) DestZone() kernel.Zone {
	return zt.destZone
}

// RatePerKg returns the per-kilogram rate in integral currency units.
func (zt *ZoneTariff) RatePerKg() int64 {
	return zt.ratePerKg
}

func (zt *ZoneTariff) setOriginZone(zone kernel.Zone) error {
	if err := zone.Validate(); err != nil {
		return err
	}
	zt.originZone = zone
	return nil
}

func (zt *ZoneTariff) setDestZone(zone kernel.Zone) error {
	if err := zone.Validate(); err != nil {
		return err
	}
	zt.destZone = zone
	return nil
}

func (zt *ZoneTariff) setRatePerKg(rate int64) error {
	if rate < 0 {
		return errs.NewValueIsInvalidErrorWithCause("ratePerKg",
			fmt.Errorf("%d is negative", rate))
	}
	zt.ratePerKg = rate
	return nil
}
