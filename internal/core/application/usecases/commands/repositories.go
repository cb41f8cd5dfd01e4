// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"zoneship/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// DeliveryRepoFactory provides access to the delivery repository within a transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// LocationRepoFactory provides access to the location repository within a transaction.
	LocationRepoFactory interface {
		LocationRepository() ports.LocationRepository
	}

	// ServiceTierRepoFactory provides access to the service tier repository within a transaction.
	ServiceTierRepoFactory interface {
		ServiceTierRepository() ports.ServiceTierRepository
	}

	// ZoneTariffRepoFactory provides access to the zone tariff repository within a transaction.
	ZoneTariffRepoFactory interface {
		ZoneTariffRepository() ports.ZoneTariffRepository
	}

	// ZoneManagerRepoFactory provides access to the zone manager repository within a transaction.
	ZoneManagerRepoFactory interface {
		ZoneManagerRepository() ports.ZoneManagerRepository
	}

	// LocationUoW manages transactions for location-only operations.
	LocationUoW interface {
		TxManager
		LocationRepoFactory
	}

	// LocationUoWFactory creates new location unit of work instances.
	LocationUoWFactory interface {
		Create() LocationUoW
	}

	// ServiceTierUoW manages transactions for service-tier-only operations.
	ServiceTierUoW interface {
		TxManager
		ServiceTierRepoFactory
	}

	// ServiceTierUoWFactory creates new service tier unit of work instances.
	ServiceTierUoWFactory interface {
		Create() ServiceTierUoW
	}

	// ZoneTariffUoW manages transactions for zone-tariff-only operations.
	ZoneTariffUoW interface {
		TxManager
		ZoneTariffRepoFactory
	}

	// ZoneTariffUoWFactory creates new zone tariff unit of work instances.
	ZoneTariffUoWFactory interface {
		Create() ZoneTariffUoW
	}

	// ZoneManagerUoW manages transactions for zone-manager-only operations.
	ZoneManagerUoW interface {
		TxManager
		ZoneManagerRepoFactory
	}

	// ZoneManagerUoWFactory creates new zone manager unit of work instances.
	ZoneManagerUoWFactory interface {
		Create() ZoneManagerUoW
	}

	// DeliveryUoW manages transactions for delivery-only lifecycle operations.
	// Used by status transitions and driver assignments.
	DeliveryUoW interface {
		TxManager
		DeliveryRepoFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// CreateDeliveryUoW manages the cross-aggregate transaction of delivery
	// creation: resolving locations, tier and tariff, then persisting the
	// priced delivery atomically.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   pickup, err := uow.LocationRepository().Get(ctx, pickupID)
	//   tariff, err := uow.ZoneTariffRepository().GetByZones(ctx, origin, dest)
	//   // ... price and persist
	//
	//   err = uow.Commit(ctx)
	CreateDeliveryUoW interface {
		TxManager
		DeliveryRepoFactory
		LocationRepoFactory
		ServiceTierRepoFactory
		ZoneTariffRepoFactory
	}

	// CreateDeliveryUoWFactory creates new unit of work instances for delivery creation.
	CreateDeliveryUoWFactory interface {
		Create() CreateDeliveryUoW
	}
)
