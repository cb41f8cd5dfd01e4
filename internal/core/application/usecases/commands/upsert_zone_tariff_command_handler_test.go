package commands_test

import (
	"testing"

	"zoneship/internal/core/application/usecases/commands"
	"zoneship/internal/core/domain/model/kernel"
	"zoneship/internal/core/domain/model/tariff"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpsertZoneTariffCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpsertZoneTariffCommand(mustZone(t, 1), mustZone(t, 2), 10000)
	require.NoError(t, err)

	repo := new(MockZoneTariffRepository)
	uow := new(MockZoneTariffUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ZoneTariffRepository").Return(repo).Once()
	repo.On("Upsert", mock.Anything, mock.AnythingOfType("*tariff.ZoneTariff")).
		Run(func(args mock.Arguments) {
			zt := args.Get(1).(*tariff.ZoneTariff)
			assert.Equal(t, int64(10000), zt.RatePerKg())
		}).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockZoneTariffUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpsertZoneTariffCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestNewUpsertZoneTariffCommand_Validation(t *testing.T) {
	t.Run("same zone pair is allowed", func(t *testing.T) {
		cmd, err := commands.NewUpsertZoneTariffCommand(mustZone(t, 3), mustZone(t, 3), 5000)
		require.NoError(t, err)
		assert.Equal(t, cmd.OriginZone(), cmd.DestZone())
	})

	t.Run("negative rate", func(t *testing.T) {
		_, err := commands.NewUpsertZoneTariffCommand(mustZone(t, 1), mustZone(t, 2), -1)
		require.Error(t, err)
	})

	t.Run("invalid zone", func(t *testing.T) {
		_, err := commands.NewUpsertZoneTariffCommand(kernel.Zone(0), mustZone(t, 2), 10000)
		require.Error(t, err)
	})
}

func TestUpsertServiceTierCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpsertServiceTierCommand(kernel.NewUUID(), "Express", 12000, 1.5, "1-2 days")
	require.NoError(t, err)

	repo := new(MockServiceTierRepository)
	uow := new(MockServiceTierUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ServiceTierRepository").Return(repo).Once()
	repo.On("Upsert", mock.Anything, mock.AnythingOfType("*tariff.ServiceTier")).
		Run(func(args mock.Arguments) {
			tier := args.Get(1).(*tariff.ServiceTier)
			assert.Equal(t, "Express", tier.Name())
			assert.Equal(t, 1.5, tier.Multiplier())
		}).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockServiceTierUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpsertServiceTierCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestNewUpsertServiceTierCommand_Validation(t *testing.T) {
	t.Run("zero multiplier", func(t *testing.T) {
		_, err := commands.NewUpsertServiceTierCommand(kernel.NewUUID(), "Express", 12000, 0, "1-2 days")
		require.Error(t, err)
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := commands.NewUpsertServiceTierCommand(kernel.NewUUID(), "", 12000, 1.5, "1-2 days")
		require.ErrorIs(t, err, tariff.ErrTierNameIsRequired)
	})
}
