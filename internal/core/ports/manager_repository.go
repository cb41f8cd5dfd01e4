package ports

import (
	"context"

	"zoneship/internal/core/domain/model/manager"
)

// ZoneManagerRepository defines the persistence contract for zone managers.
type ZoneManagerRepository interface {
	// Add persists a new zone manager.
	Add(ctx context.Context, aggregate *manager.ZoneManager) error

	// GetByToken retrieves the zone manager owning the given bearer token.
	// Returns errs.ObjectNotFoundError when no manager holds the token.
	GetByToken(ctx context.Context, token string) (*manager.ZoneManager, error)
}
