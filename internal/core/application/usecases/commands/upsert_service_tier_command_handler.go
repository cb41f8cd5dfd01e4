package commands

import (
	"context"

	"zoneship/internal/core/domain/model/tariff"
)

// UpsertServiceTierCommandHandler handles service tier configuration.
// Replacing a tier affects future quotes only; existing deliveries keep
// their frozen price snapshots.
type UpsertServiceTierCommandHandler struct {
	uowFactory ServiceTierUoWFactory
}

// NewUpsertServiceTierCommandHandler creates a handler for tier configuration operations.
func NewUpsertServiceTierCommandHandler(uowFactory ServiceTierUoWFactory) UpsertServiceTierCommandHandler {
	return UpsertServiceTierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the tier upsert command.
func (h *UpsertServiceTierCommandHandler) Handle(ctx context.Context, cmd UpsertServiceTierCommand) error {
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

	tier, err := tariff.NewServiceTier(
		cmd.TierID(),
		cmd.Name(),
		cmd.BaseRatePerKg(),
		cmd.Multiplier(),
		cmd.Estimate(),
	)
	if err != nil {
		return err
	}

	if err = uow.ServiceTierRepository().Upsert(ctx, tier); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
