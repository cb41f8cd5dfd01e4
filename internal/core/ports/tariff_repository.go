package ports

import (
	"context"

	"zoneship/internal/core/domain/model/kernel"
	"zoneship/internal/core/domain/model/tariff"
)

// ServiceTierRepository defines the persistence contract for service tiers.
type ServiceTierRepository interface {
	// Upsert inserts the tier or, when a tier with the same name already
	// exists, replaces its rate, multiplier and estimate.
	Upsert(ctx context.Context, aggregate *tariff.ServiceTier) error

	// GetByName retrieves a service tier by its product name.
	// Returns errs.ObjectNotFoundError when no such tier exists.
	GetByName(ctx context.Context, name string) (*tariff.ServiceTier, error)
}

// ZoneTariffRepository defines the persistence contract for zone tariffs.
// Rows are keyed by the ordered (origin, destination) zone pair.
type ZoneTariffRepository interface {
	// Upsert inserts the tariff or replaces the rate of an existing row
	// for the same ordered zone pair.
	Upsert(ctx context.Context, aggregate *tariff.ZoneTariff) error

	// GetByZones retrieves the tariff for the ordered (origin,
	// destination) pair. Missing pairs return tariff.ErrTariffNotConfigured;
	// the reverse pair is never consulted.
	GetByZones(ctx context.Context, origin, dest kernel.Zone) (*tariff.ZoneTariff, error)
}
