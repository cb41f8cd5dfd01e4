package commands

import (
	"context"
	"time"

	"zoneship/internal/core/domain/model/delivery"
	"zoneship/internal/core/domain/services"
)

// CreateDeliveryCommandHandler handles the business logic for placing a delivery.
//
// The handler prices server-side: it resolves both locations, looks up
// the tariff for the ordered (pickup zone, dropoff zone) pair and the
// requested tier, computes the quote, and freezes it onto the new
// delivery. A missing tariff row fails the whole command with
// tariff.ErrTariffNotConfigured; there is no default rate.
type CreateDeliveryCommandHandler struct {
	uowFactory CreateDeliveryUoWFactory
	calculator services.TariffCalculator
}

// NewCreateDeliveryCommandHandler creates a handler for delivery placement.
func NewCreateDeliveryCommandHandler(
	uowFactory CreateDeliveryUoWFactory,
	calculator services.TariffCalculator,
) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{
		uowFactory: uowFactory,
		calculator: calculator,
	}
}

// Handle processes the delivery creation command.
// The delivery starts in pending status with its zone frozen from the
// pickup location and its price frozen from the computed quote.
func (h *CreateDeliveryCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	pickup, err := uow.LocationRepository().Get(ctx, cmd.PickupLocationID())
	if err != nil {
		return err
	}

	dropoff, err := uow.LocationRepository().Get(ctx, cmd.DropoffLocationID())
	if err != nil {
		return err
	}

	tier, err := uow.ServiceTierRepository().GetByName(ctx, cmd.TierName())
	if err != nil {
		return err
	}

	zoneTariff, err := uow.ZoneTariffRepository().GetByZones(ctx, pickup.Zone(), dropoff.Zone())
	if err != nil {
		return err
	}

	quote, err := h.calculator.Quote(zoneTariff, tier, cmd.Weight())
	if err != nil {
		return err
	}

	aggregate, err := delivery.NewDelivery(
		cmd.DeliveryID(),
		cmd.CustomerID(),
		pickup,
		dropoff,
		cmd.PickupAddress(),
		cmd.DropoffAddress(),
		cmd.Kind(),
		cmd.Payload(),
		quote,
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = uow.DeliveryRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
