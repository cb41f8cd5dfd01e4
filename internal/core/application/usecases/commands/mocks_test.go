package commands_test

import (
	"context"

	"zoneship/internal/core/application/usecases/commands"
	"zoneship/internal/core/domain/model/delivery"
	"zoneship/internal/core/domain/model/kernel"
	"zoneship/internal/core/domain/model/location"
	"zoneship/internal/core/domain/model/manager"
	"zoneship/internal/core/domain/model/tariff"
	"zoneship/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) GetAllByZone(ctx context.Context, zone kernel.Zone) ([]*delivery.Delivery, error) {
	args := m.Called(ctx, zone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*delivery.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) UpdateStatus(
	ctx context.Context, d *delivery.Delivery, expected delivery.Status,
) error {
	args := m.Called(ctx, d, expected)
	return args.Error(0)
}

func (m *MockDeliveryRepository) UpdateDriver(
	ctx context.Context, d *delivery.Delivery, expected delivery.Status,
) error {
	args := m.Called(ctx, d, expected)
	return args.Error(0)
}

type MockLocationRepository struct{ mock.Mock }

func (m *MockLocationRepository) Add(ctx context.Context, l *location.Location) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockLocationRepository) Get(ctx context.Context, id kernel.UUID) (*location.Location, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*location.Location), args.Error(1)
}

type MockServiceTierRepository struct{ mock.Mock }

func (m *MockServiceTierRepository) Upsert(ctx context.Context, t *tariff.ServiceTier) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockServiceTierRepository) GetByName(ctx context.Context, name string) (*tariff.ServiceTier, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tariff.ServiceTier), args.Error(1)
}

type MockZoneTariffRepository struct{ mock.Mock }

func (m *MockZoneTariffRepository) Upsert(ctx context.Context, t *tariff.ZoneTariff) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockZoneTariffRepository) GetByZones(
	ctx context.Context, origin, dest kernel.Zone,
) (*tariff.ZoneTariff, error) {
	args := m.Called(ctx, origin, dest)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tariff.ZoneTariff), args.Error(1)
}

type MockZoneManagerRepository struct{ mock.Mock }

func (m *MockZoneManagerRepository) Add(ctx context.Context, zm *manager.ZoneManager) error {
	args := m.Called(ctx, zm)
	return args.Error(0)
}

func (m *MockZoneManagerRepository) GetByToken(ctx context.Context, token string) (*manager.ZoneManager, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*manager.ZoneManager), args.Error(1)
}

type MockTxManager struct{ mock.Mock }

func (m *MockTxManager) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTxManager) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTxManager) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockLocationUoW struct{ MockTxManager }

func (m *MockLocationUoW) LocationRepository() ports.LocationRepository {
	args := m.Called()
	return args.Get(0).(ports.LocationRepository)
}

type MockLocationUoWFactory struct{ mock.Mock }

func (m *MockLocationUoWFactory) Create() commands.LocationUoW {
	args := m.Called()
	return args.Get(0).(commands.LocationUoW)
}

type MockServiceTierUoW struct{ MockTxManager }

func (m *MockServiceTierUoW) ServiceTierRepository() ports.ServiceTierRepository {
	args := m.Called()
	return args.Get(0).(ports.ServiceTierRepository)
}

type MockServiceTierUoWFactory struct{ mock.Mock }

func (m *MockServiceTierUoWFactory) Create() commands.ServiceTierUoW {
	args := m.Called()
	return args.Get(0).(commands.ServiceTierUoW)
}

type MockZoneTariffUoW struct{ MockTxManager }

func (m *MockZoneTariffUoW) ZoneTariffRepository() ports.ZoneTariffRepository {
	args := m.Called()
	return args.Get(0).(ports.ZoneTariffRepository)
}

type MockZoneTariffUoWFactory struct{ mock.Mock }

func (m *MockZoneTariffUoWFactory) Create() commands.ZoneTariffUoW {
	args := m.Called()
	return args.Get(0).(commands.ZoneTariffUoW)
}

type MockZoneManagerUoW struct{ MockTxManager }

func (m *MockZoneManagerUoW) ZoneManagerRepository() ports.ZoneManagerRepository {
	args := m.Called()
	return args.Get(0).(ports.ZoneManagerRepository)
}

type MockZoneManagerUoWFactory struct{ mock.Mock }

func (m *MockZoneManagerUoWFactory) Create() commands.ZoneManagerUoW {
	args := m.Called()
	return args.Get(0).(commands.ZoneManagerUoW)
}

type MockDeliveryUoW struct{ MockTxManager }

func (m *MockDeliveryUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

type MockDeliveryUoWFactory struct{ mock.Mock }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryUoW)
}

type MockCreateDeliveryUoW struct{ MockTxManager }

func (m *MockCreateDeliveryUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

func (m *MockCreateDeliveryUoW) LocationRepository() ports.LocationRepository {
	args := m.Called()
	return args.Get(0).(ports.LocationRepository)
}

func (m *MockCreateDeliveryUoW) ServiceTierRepository() ports.ServiceTierRepository {
	args := m.Called()
	return args.Get(0).(ports.ServiceTierRepository)
}

func (m *MockCreateDeliveryUoW) ZoneTariffRepository() ports.ZoneTariffRepository {
	args := m.Called()
	return args.Get(0).(ports.ZoneTariffRepository)
}

type MockCreateDeliveryUoWFactory struct{ mock.Mock }

func (m *MockCreateDeliveryUoWFactory) Create() commands.CreateDeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.CreateDeliveryUoW)
}
