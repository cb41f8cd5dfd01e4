package commands

import (
	"errors"

	"zoneship/internal/core/domain/model/delivery"
	"zoneship/internal/core/domain/model/kernel"
	"zoneship/internal/core/domain/model/tariff"
	"zoneship/internal/pkg/guard"
)

var ErrCreateDeliveryCommandIsNotConstructed = errors.New(
	"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
)

// CreateDeliveryCommand represents a customer's request to place a food
// order or a delivery-service request.
//
// The command carries no price: the handler prices the delivery
// server-side from the current tariff configuration, so a client can
// never submit a stale or forged quote.
//
// Example:
//
//	cmd, err := NewCreateDeliveryCommand(
//	    kernel.NewUUID(), customerID, pickupID, dropoffID,
//	    "Jl. Braga 12", "Jl. Malioboro 52",
//	    delivery.KindSendNow, delivery.Payload{}, "Express", weight)
//	if err != nil {
//	    return fmt.Errorf("invalid delivery data: %w", err)
//	}
//
//	handler := NewCreateDeliveryCommandHandler(uowFactory, calculator)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create delivery: %w", err)
//	}
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID        kernel.UUID
	customerID        kernel.UUID
	pickupLocationID  kernel.UUID
	dropoffLocationID kernel.UUID
	pickupAddress     string
	dropoffAddress    string
	kind              delivery.Kind
	payload           delivery.Payload
	tierName          string
	weight            kernel.Weight

	guard guard.ConstructorGuard
}

// NewCreateDeliveryCommand creates a command to place a delivery.
// The payload is validated against the kind up front, so a multi-drop
// request with one drop point fails here, before any transaction.
func NewCreateDeliveryCommand(
	deliveryID kernel.UUID,
	customerID kernel.UUID,
	pickupLocationID kernel.UUID,
	dropoffLocationID kernel.UUID,
	pickupAddress string,
	dropoffAddress string,
	kind delivery.Kind,
	payload delivery.Payload,
	tierName string,
	weight kernel.Weight,
) (CreateDeliveryCommand, error) {
	cmd := CreateDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setCustomerID(customerID),
		cmd.setPickupLocationID(pickupLocationID),
		cmd.setDropoffLocationID(dropoffLocationID),
		cmd.setPickupAddress(pickupAddress),
		cmd.setDropoffAddress(dropoffAddress),
		cmd.setKindAndPayload(kind, payload),
		cmd.setTierName(tierName),
		cmd.setWeight(weight),
	); err != nil {
		return CreateDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the unique identifier for the delivery.
func (c CreateDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// CustomerID returns the owning user's identifier.
func (c CreateDeliveryCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// PickupLocationID returns the pickup endpoint's identifier.
func (c CreateDeliveryCommand) PickupLocationID() kernel.UUID {
	return c.pickupLocationID
}

// DropoffLocationID returns the dropoff endpoint's identifier.
func (c CreateDeliveryCommand) DropoffLocationID() kernel.UUID {
	return c.dropoffLocationID
}

// PickupAddress returns the free-text pickup description.
func (c CreateDeliveryCommand) PickupAddress() string {
	return c.pickupAddress
}

// DropoffAddress returns the free-text dropoff description.
func (c CreateDeliveryCommand) DropoffAddress() string {
	return c.dropoffAddress
}

// Kind returns the delivery's discriminator.
func (c CreateDeliveryCommand) Kind() delivery.Kind {
	return c.kind
}

// Payload returns the kind-specific payload.
func (c CreateDeliveryCommand) Payload() delivery.Payload {
	return c.payload
}

// TierName returns the requested service tier's product name.
func (c CreateDeliveryCommand) TierName() string {
	return c.tierName
}

// Weight returns the parcel weight.
func (c CreateDeliveryCommand) Weight() kernel.Weight {
	return c.weight
}

func (c *CreateDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *CreateDeliveryCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateDeliveryCommand) setPickupLocationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.pickupLocationID = id
	return nil
}

func (c *CreateDeliveryCommand) setDropoffLocationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.dropoffLocationID = id
	return nil
}

func (c *CreateDeliveryCommand) setPickupAddress(address string) error {
	if address == "" {
		return delivery.ErrPickupAddressIsRequired
	}

	c.pickupAddress = address
	return nil
}

func (c *CreateDeliveryCommand) setDropoffAddress(address string) error {
	if address == "" {
		return delivery.ErrDropoffAddressIsRequired
	}

	c.dropoffAddress = address
	return nil
}

func (c *CreateDeliveryCommand) setKindAndPayload(kind delivery.Kind, payload delivery.Payload) error {
	if err := payload.ValidateFor(kind); err != nil {
		return err
	}

	c.kind = kind
	c.payload = payload
	return nil
}

func (c *CreateDeliveryCommand) setTierName(tierName string) error {
	if tierName == "" {
		return tariff.ErrTierNameIsRequired
	}

	c.tierName = tierName
	return nil
}

func (c *CreateDeliveryCommand) setWeight(weight kernel.Weight) error {
	if err := weight.Validate(); err != nil {
		return err
	}

	c.weight = weight
	return nil
}
