package ports

import (
	"context"

	"zoneship/internal/core/domain/model/kernel"
	"zoneship/internal/core/domain/model/location"
)

// LocationRepository defines the persistence contract for locations.
// Locations are reference data: created by admins, read during quoting
// and delivery creation, never mutated by lifecycle operations.
type LocationRepository interface {
	// Add persists a new location.
	Add(ctx context.Context, aggregate *location.Location) error

	// Get retrieves a location by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such location exists.
	Get(ctx context.Context, id kernel.UUID) (*location.Location, error)
}
