package commands

import (
	"context"

	"zoneship/internal/core/domain/model/location"
)

// CreateLocationCommandHandler handles the business logic for location creation.
// Locations are reference data; once created they are read by quoting and
// delivery creation but never mutated by lifecycle operations.
type CreateLocationCommandHandler struct {
	uowFactory LocationUoWFactory
}

// NewCreateLocationCommandHandler creates a handler for location creation operations.
func NewCreateLocationCommandHandler(uowFactory LocationUoWFactory) CreateLocationCommandHandler {
	return CreateLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the location creation command.
// Uses a transaction to ensure the location is properly persisted or rolled back on error.
func (h *CreateLocationCommandHandler) Handle(ctx context.Context, cmd CreateLocationCommand) error {
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

	loc, err := location.NewLocation(
		cmd.LocationID(),
		cmd.Name(),
		cmd.Province(),
		cmd.Kind(),
		cmd.PostalCode(),
		cmd.Zone(),
	)
	if err != nil {
		return err
	}

	if err = uow.LocationRepository().Add(ctx, loc); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
