package services

import (
	"math"

	"zoneship/internal/core/domain/model/kernel"
	"zoneship/internal/core/domain/model/tariff"
)

// TariffCalculator is a domain service computing deterministic price
// quotes from a zone tariff, a service tier and a parcel weight.
//
// Business rules:
//   - total = roundHalfUp(ratePerKg × weightKg × multiplier), rounded
//     exactly once at the end
//   - the subtotal (ratePerKg × weightKg) is rounded independently for
//     display and never feeds back into the total
//   - the same inputs always produce the same Quote
//
// Example usage:
//
//	calc := NewTariffCalculator()
//	quote, err := calc.Quote(zoneTariff, tier, weight)
//	if err != nil {
//	    // tariff or tier was not properly constructed
//	    return
//	}
//	// quote.Total holds the price in integral currency units
type TariffCalculator struct{}

// NewTariffCalculator creates a new TariffCalculator instance.
func NewTariffCalculator() TariffCalculator {
	return TariffCalculator{}
}

// Quote computes the price breakdown for shipping the given weight
// under the given zone tariff and service tier.
//
// Parameters:
//   - zoneTariff: the rate for the ordered (origin, destination) pair
//   - tier: the service tier whose multiplier scales the rate
//   - weight: the parcel weight
//
// Returns:
//   - tariff.Quote: the full breakdown, ready to freeze onto a delivery
//   - error: validation errors if any input was not properly constructed
func (TariffCalculator) Quote(
	zoneTariff *tariff.ZoneTariff,
	tier *tariff.ServiceTier,
	weight kernel.Weight,
) (tariff.Quote, error) {
	if err := zoneTariff.Validate(); err != nil {
		return tariff.Quote{}, err
	}
	if err := tier.Validate(); err != nil {
		return tariff.Quote{}, err
	}
	if err := weight.Validate(); err != nil {
		return tariff.Quote{}, err
	}

	rate := float64(zoneTariff.RatePerKg())
	raw := rate * weight.Kg() * tier.Multiplier()

	return tariff.Quote{
		OriginZone:     zoneTariff.OriginZone(),
		DestZone:       zoneTariff.DestZone(),
		RatePerKg:      zoneTariff.RatePerKg(),
		WeightKg:       weight.Kg(),
		Subtotal:       roundHalfUp(rate * weight.Kg()),
		TierName:       tier.Name(),
		TierMultiplier: tier.Multiplier(),
		TierEstimate:   tier.Estimate(),
		Total:          roundHalfUp(raw),
	}, nil
}

// roundHalfUp rounds to the nearest integral currency unit, with exact
// halves rounding up.
func roundHalfUp(x float64) int64 {
	return int64(math.Floor(x + 0.5))
}
