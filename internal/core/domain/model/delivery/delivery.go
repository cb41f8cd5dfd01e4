package delivery

import (
	"errors"
	"fmt"
	"time"

	"zoneship/internal/core/domain/model/kernel"
	"zoneship/internal/core/domain/model/location"
	"zoneship/internal/core/domain/model/tariff"
	"zoneship/internal/pkg/errs"
	"zoneship/internal/pkg/guard"
)

var (
	// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
	// created through the NewDelivery or RestoreDelivery factory methods.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")

	// ErrPickupAddressIsRequired is returned when the pickup description is empty.
	ErrPickupAddressIsRequired = errors.New("pickup address is required")

	// ErrDropoffAddressIsRequired is returned when the dropoff description is empty.
	ErrDropoffAddressIsRequired = errors.New("dropoff address is required")

	// ErrDriverNotAssignable is returned when a driver assignment is attempted
	// outside the track's assignable statuses.
	ErrDriverNotAssignable = errors.New("driver cannot be assigned in the current status")
)

// Delivery is the aggregate root tracked by the lifecycle manager: a food
// order or a standalone delivery-service request.
//
// Delivery follows these invariants:
//   - deliveryZone is derived once, at creation, from the pickup
//     location's zone and is immutable afterwards. It is the sole basis
//     for zone-scoped authorization, regardless of the dropoff zone, and
//     is never recomputed from mutable location data.
//   - The price is a frozen Quote snapshot; tariff or tier edits never
//     retroactively change it.
//   - Status only ever moves along an edge of the kind's track; the
//     lifecycle touches nothing but status, driver and updatedAt.
//   - The kind-specific payload is validated against the kind and frozen.
type Delivery struct {
	id                kernel.UUID
	customerID        kernel.UUID
	pickupLocationID  kernel.UUID
	dropoffLocationID kernel.UUID
	pickupAddress     string
	dropoffAddress    string
	kind              Kind
	status            Status
	driverID          *kernel.UUID
	managerID         *kernel.UUID
	deliveryZone      kernel.Zone
	dropoffZone       kernel.Zone
	price             tariff.Quote
	payload           Payload
	createdAt         time.Time
	updatedAt         time.Time

	guard guard.ConstructorGuard
}

// NewDelivery creates a Delivery in the initial pending status.
//
// The pickup and dropoff locations must be valid; the delivery zone is
// frozen from the pickup location's zone right here and never derived
// again. The price must be the Quote the customer was shown, produced by
// the tariff engine for exactly this pickup/dropoff pair.
//
// Parameters:
//   - id: unique identifier
//   - customerID: the owning user
//   - pickup, dropoff: resolved shipping endpoints
//   - pickupAddress, dropoffAddress: free-text descriptions
//   - kind: discriminator selecting track and payload rules
//   - payload: kind-specific data, validated against kind
//   - price: the frozen quote snapshot
//   - now: creation timestamp
func NewDelivery(
	id kernel.UUID,
	customerID kernel.UUID,
	pickup *location.Location,
	dropoff *location.Location,
	pickupAddress string,
	dropoffAddress string,
	kind Kind,
	payload Payload,
	price tariff.Quote,
	now time.Time,
) (*Delivery, error) {
	if err := errors.Join(pickup.Validate(), dropoff.Validate()); err != nil {
		return nil, err
	}

	d := &Delivery{
		status:    StatusPending,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setCustomerID(customerID),
		d.setKind(kind),
		d.setPickup(pickup, pickupAddress),
		d.setDropoff(dropoff, dropoffAddress),
		d.setPrice(price),
	); err != nil {
		return nil, err
	}

	if err := payload.ValidateFor(d.kind); err != nil {
		return nil, err
	}
	d.payload = payload

	return d, nil
}

// RestoreDelivery reconstructs a Delivery from persistence.
//
// Unlike NewDelivery it takes the frozen deliveryZone directly: the zone
// was derived exactly once at creation and must never be recomputed from
// location data that may have changed since.
func RestoreDelivery(
	id kernel.UUID,
	customerID kernel.UUID,
	pickupLocationID kernel.UUID,
	dropoffLocationID kernel.UUID,
	pickupAddress string,
	dropoffAddress string,
	kind Kind,
	status Status,
	driverID *kernel.UUID,
	managerID *kernel.UUID,
	deliveryZone kernel.Zone,
	dropoffZone kernel.Zone,
	price tariff.Quote,
	payload Payload,
	createdAt time.Time,
	updatedAt time.Time,
) (*Delivery, error) {
	d := &Delivery{
		pickupAddress:  pickupAddress,
		dropoffAddress: dropoffAddress,
		driverID:       driverID,
		managerID:      managerID,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setCustomerID(customerID),
		d.setKind(kind),
		pickupLocationID.Validate(),
		dropoffLocationID.Validate(),
		deliveryZone.Validate(),
		dropoffZone.Validate(),
		d.setPrice(price),
		payload.ValidateFor(kind),
	); err != nil {
		return nil, err
	}

	if err := kind.Track().ValidateStatus(status); err != nil {
		return nil, err
	}

	d.pickupLocationID = pickupLocationID
	d.dropoffLocationID = dropoffLocationID
	d.deliveryZone = deliveryZone
	d.dropoffZone = dropoffZone
	d.status = status
	d.payload = payload

	return d, nil
}

// Validate ensures the Delivery instance was properly constructed.
func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

// IsEqual compares two deliveries by their unique identifiers.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// CustomerID returns the owning user's identifier.
func (d *Delivery) CustomerID() kernel.UUID {
	return d.customerID
}

// PickupLocationID returns the pickup endpoint's identifier.
func (d *Delivery) PickupLocationID() kernel.UUID {
	return d.pickupLocationID
}

// DropoffLocationID returns the dropoff endpoint's identifier.
func (d *Delivery) DropoffLocationID() kernel.UUID {
	return d.dropoffLocationID
}

// PickupAddress returns the free-text pickup description.
func (d *Delivery) PickupAddress() string {
	return d.pickupAddress
}

// DropoffAddress returns the free-text dropoff description.
func (d *Delivery) DropoffAddress() string {
	return d.dropoffAddress
}

// Kind returns the delivery's discriminator.
func (d *Delivery) Kind() Kind {
	return d.kind
}

// Track returns the status track the delivery moves along.
func (d *Delivery) Track() Track {
	return d.kind.Track()
}

// Status returns the current lifecycle status.
func (d *Delivery) Status() Status {
	return d.status
}

// Driver returns the assigned driver's ID, or nil if unassigned.
func (d *Delivery) Driver() *kernel.UUID {
	return d.driverID
}

// Manager returns the zone manager who last handled the delivery, or nil.
// This is bookkeeping only: authorization always compares the actor's own
// zone against DeliveryZone, never this field.
func (d *Delivery) Manager() *kernel.UUID {
	return d.managerID
}

// DeliveryZone returns the frozen authorization zone derived from the
// pickup location at creation time.
func (d *Delivery) DeliveryZone() kernel.Zone {
	return d.deliveryZone
}

// DropoffZone returns the dropoff location's zone as of creation.
// Informational only; it plays no part in authorization.
func (d *Delivery) DropoffZone() kernel.Zone {
	return d.dropoffZone
}

// Price returns the frozen quote snapshot.
func (d *Delivery) Price() tariff.Quote {
	return d.price
}

// Payload returns the kind-specific payload.
func (d *Delivery) Payload() Payload {
	return d.payload
}

// CreatedAt returns the creation timestamp.
func (d *Delivery) CreatedAt() time.Time {
	return d.createdAt
}

// UpdatedAt returns the last lifecycle mutation timestamp.
func (d *Delivery) UpdatedAt() time.Time {
	return d.updatedAt
}

// TransitionTo moves the delivery to the requested status if the edge is
// legal on its track. Only status and updatedAt change; price, zone and
// payload are immutable post-creation.
//
// Returns:
//   - nil on success
//   - ErrIllegalTransition-wrapping error if the edge does not exist,
//     including every attempt to leave delivered or cancelled
func (d *Delivery) TransitionTo(target Status, now time.Time) error {
	newStatus, err := d.Track().Transition(d.status, target)
	if err != nil {
		return err
	}

	d.status = newStatus
	d.updatedAt = now
	return nil
}

// AssignDriver assigns or reassigns a driver while the delivery is still
// in an assignable status. Last write wins; no history is retained.
//
// Returns:
//   - nil on success
//   - ErrDriverNotAssignable-wrapping error once custody has transferred
func (d *Delivery) AssignDriver(driverID kernel.UUID, now time.Time) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	if !d.Track().CanAssignDriver(d.status) {
		return fmt.Errorf("%w: status is %s", ErrDriverNotAssignable, d.status)
	}

	d.driverID = &driverID
	d.updatedAt = now
	return nil
}

// RecordManager records the zone manager handling the delivery.
// Bookkeeping only; never consulted for authorization.
func (d *Delivery) RecordManager(managerID kernel.UUID) error {
	if err := managerID.Validate(); err != nil {
		return err
	}
	d.managerID = &managerID
	return nil
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	d.customerID = customerID
	return nil
}

func (d *Delivery) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	d.kind = kind
	return nil
}

func (d *Delivery) setPickup(pickup *location.Location, address string) error {
	if address == "" {
		return ErrPickupAddressIsRequired
	}
	d.pickupLocationID = pickup.ID()
	d.pickupAddress = address
	// The zone freezes here, once, from the pickup location.
	d.deliveryZone = pickup.Zone()
	return nil
}

func (d *Delivery) setDropoff(dropoff *location.Location, address string) error {
	if address == "" {
		return ErrDropoffAddressIsRequired
	}
	d.dropoffLocationID = dropoff.ID()
	d.dropoffAddress = address
	d.dropoffZone = dropoff.Zone()
	return nil
}

func (d *Delivery) setPrice(price tariff.Quote) error {
	if err := errors.Join(price.OriginZone.Validate(), price.DestZone.Validate()); err != nil {
		return err
	}
	if price.Total < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("total %d is negative", price.Total))
	}
	d.price = price
	return nil
}
