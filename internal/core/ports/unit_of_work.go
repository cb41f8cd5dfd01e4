package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// DeliveryRepository returns a DeliveryRepository bound to the current transaction.
	DeliveryRepository() DeliveryRepository

	// LocationRepository returns a LocationRepository bound to the current transaction.
	LocationRepository() LocationRepository

	// ServiceTierRepository returns a ServiceTierRepository bound to the current transaction.
	ServiceTierRepository() ServiceTierRepository

	// ZoneTariffRepository returns a ZoneTariffRepository bound to the current transaction.
	ZoneTariffRepository() ZoneTariffRepository

	// ZoneManagerRepository returns a ZoneManagerRepository bound to the current transaction.
	ZoneManagerRepository() ZoneManagerRepository
}
