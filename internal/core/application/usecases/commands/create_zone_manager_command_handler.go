package commands

import (
	"context"

	"zoneship/internal/core/domain/model/manager"
)

// CreateZoneManagerCommandHandler handles the business logic for zone
// manager registration. The token stored here is what the HTTP adapter
// later resolves back into an acting ZoneManager.
type CreateZoneManagerCommandHandler struct {
	uowFactory ZoneManagerUoWFactory
}

// NewCreateZoneManagerCommandHandler creates a handler for zone manager registration.
func NewCreateZoneManagerCommandHandler(uowFactory ZoneManagerUoWFactory) CreateZoneManagerCommandHandler {
	return CreateZoneManagerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the zone manager registration command.
func (h *CreateZoneManagerCommandHandler) Handle(ctx context.Context, cmd CreateZoneManagerCommand) error {
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

	zoneManager, err := manager.NewZoneManager(
		cmd.ManagerID(),
		cmd.Name(),
		cmd.Zone(),
		cmd.Token(),
	)
	if err != nil {
		return err
	}

	if err = uow.ZoneManagerRepository().Add(ctx, zoneManager); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
