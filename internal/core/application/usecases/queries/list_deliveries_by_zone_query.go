package queries

import (
	"errors"
	"time"

	"zoneship/internal/core/domain/model/delivery"
	"zoneship/internal/core/domain/model/kernel"
	"zoneship/internal/core/domain/model/manager"
	"zoneship/internal/pkg/guard"
)

var (
	ErrListDeliveriesByZoneQueryIsNotConstructed = errors.New(
		"ListDeliveriesByZoneQuery must be created via NewListDeliveriesByZoneQuery constructor",
	)
	ErrActorIsRequired = errors.New("acting principal is required")
)

// ListDeliveriesByZoneQuery retrieves the deliveries of one zone for an
// operational dashboard. The zone filter matches the frozen delivery
// zone, and the actor must be authorized for exactly that zone: admins
// can list any zone, a zone manager only their own.
//
// Example:
//
//	zone, _ := kernel.NewZone(3)
//	query, err := NewListDeliveriesByZoneQuery(zone, zoneManager)
//	if errors.Is(err, manager.ErrZoneForbidden) {
//	    // manager asked for a foreign zone
//	}
type ListDeliveriesByZoneQuery struct { //nolint:recvcheck //using for validation
	zone         kernel.Zone
	statusFilter delivery.Status
	actor        manager.Actor

	guard guard.ConstructorGuard
}

// NewListDeliveriesByZoneQuery creates a zone listing query without a
// status filter.
func NewListDeliveriesByZoneQuery(zone kernel.Zone, actor manager.Actor) (ListDeliveriesByZoneQuery, error) {
	query := ListDeliveriesByZoneQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setZone(zone),
		query.setActor(actor),
	); err != nil {
		return ListDeliveriesByZoneQuery{}, err
	}

	return query, nil
}

// NewListDeliveriesByZoneQueryWithStatus creates a zone listing query
// narrowed to a single lifecycle status.
func NewListDeliveriesByZoneQueryWithStatus(
	zone kernel.Zone,
	status delivery.Status,
	actor manager.Actor,
) (ListDeliveriesByZoneQuery, error) {
	query, err := NewListDeliveriesByZoneQuery(zone, actor)
	if err != nil {
		return ListDeliveriesByZoneQuery{}, err
	}

	if err = query.setStatusFilter(status); err != nil {
		return ListDeliveriesByZoneQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q ListDeliveriesByZoneQuery) Validate() error {
	return q.guard.Validate(ErrListDeliveriesByZoneQueryIsNotConstructed)
}

// Zone returns the zone being listed.
func (q ListDeliveriesByZoneQuery) Zone() kernel.Zone {
	return q.zone
}

// StatusFilter returns the optional single-status filter; the boolean
// reports whether one was supplied.
func (q ListDeliveriesByZoneQuery) StatusFilter() (delivery.Status, bool) {
	return q.statusFilter, q.statusFilter != ""
}

// Actor returns the acting principal.
func (q ListDeliveriesByZoneQuery) Actor() manager.Actor {
	return q.actor
}

func (q *ListDeliveriesByZoneQuery) setZone(zone kernel.Zone) error {
	if err := zone.Validate(); err != nil {
		return err
	}

	q.zone = zone
	return nil
}

func (q *ListDeliveriesByZoneQuery) setStatusFilter(status delivery.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	q.statusFilter = status
	return nil
}

func (q *ListDeliveriesByZoneQuery) setActor(actor manager.Actor) error {
	if actor == nil {
		return ErrActorIsRequired
	}

	q.actor = actor
	return nil
}

// ListDeliveriesByZoneQueryResponse represents one delivery row in the
// zone dashboard read model.
type ListDeliveriesByZoneQueryResponse struct {
	ID             kernel.UUID  `json:"id"`
	CustomerID     kernel.UUID  `json:"customer_id"`
	Kind           string       `json:"kind"`
	Status         string       `json:"status"`
	PickupAddress  string       `json:"pickup_address"`
	DropoffAddress string       `json:"dropoff_address"`
	DeliveryZone   int          `json:"delivery_zone"`
	DropoffZone    int          `json:"dropoff_zone"`
	DriverID       *kernel.UUID `json:"driver_id,omitempty"`
	PriceTotal     int64        `json:"price_total"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}
