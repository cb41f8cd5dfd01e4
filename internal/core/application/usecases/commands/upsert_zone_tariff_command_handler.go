package commands

import (
	"context"

	"zoneship/internal/core/domain/model/tariff"
)

// UpsertZoneTariffCommandHandler handles zone tariff configuration.
// Rate changes affect future quotes only; existing deliveries keep their
// frozen price snapshots.
type UpsertZoneTariffCommandHandler struct {
	uowFactory ZoneTariffUoWFactory
}

// NewUpsertZoneTariffCommandHandler creates a handler for tariff configuration operations.
func NewUpsertZoneTariffCommandHandler(uowFactory ZoneTariffUoWFactory) UpsertZoneTariffCommandHandler {
	return UpsertZoneTariffCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the tariff upsert command.
func (h *UpsertZoneTariffCommandHandler) Handle(ctx context.Context, cmd UpsertZoneTariffCommand) error {
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

	zoneTariff, err := tariff.NewZoneTariff(cmd.OriginZone(), cmd.DestZone(), cmd.RatePerKg())
	if err != nil {
		return err
	}

	if err = uow.ZoneTariffRepository().Upsert(ctx, zoneTariff); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
