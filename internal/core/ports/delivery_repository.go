// Package ports defines repository interfaces for the shipping domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"
	"errors"

	"zoneship/internal/core/domain/model/delivery"
	"zoneship/internal/core/domain/model/kernel"
)

// ErrConcurrentModification is returned by compare-and-swap updates when
// the delivery's status changed between the caller's read and its write.
// The losing writer must re-read the aggregate and re-validate.
var ErrConcurrentModification = errors.New("delivery was modified concurrently")

// DeliveryRepository defines the persistence contract for delivery aggregates.
type DeliveryRepository interface {
	// Add persists a new delivery aggregate to storage.
	// The delivery must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such delivery exists.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetAllByZone retrieves all deliveries whose frozen delivery zone
	// equals the given zone, newest first.
	GetAllByZone(ctx context.Context, zone kernel.Zone) ([]*delivery.Delivery, error)

	// UpdateStatus persists a status transition with a compare-and-swap
	// on the expected current status. When a concurrent writer moved the
	// delivery first, no row matches and ErrConcurrentModification is
	// returned; the caller re-reads and re-validates against the fresh
	// status.
	UpdateStatus(ctx context.Context, aggregate *delivery.Delivery, expected delivery.Status) error

	// UpdateDriver persists a driver assignment (and manager bookkeeping)
	// with a compare-and-swap on the expected current status. Driver
	// reassignment within an assignable status is last-write-wins; the
	// CAS only guards against the status changing underneath.
	UpdateDriver(ctx context.Context, aggregate *delivery.Delivery, expected delivery.Status) error
}
