// Package tariffrepo provides data transfer objects and mapping functions for
// tariff configuration persistence: service tiers and zone tariffs.
package tariffrepo

import (
	"zoneship/internal/core/domain/model/kernel"
	"zoneship/internal/core/domain/model/tariff"

	"github.com/google/uuid"
)

// ServiceTierDTO represents the database structure for persisting service tiers.
// Tiers are keyed by name for upserts; the id only identifies the row.
type ServiceTierDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"type:varchar(64);uniqueIndex"`
	BaseRatePerKg int64
	Multiplier    float64
	Estimate      string `gorm:"type:varchar(64)"`
}

// TableName specifies the database table name for service tier entities.
func (ServiceTierDTO) TableName() string {
	return "service_tiers"
}

// ZoneTariffDTO represents the database structure for persisting zone tariffs.
// The ordered (origin, destination) pair is the composite primary key, so
// each direction is one row and upserts replace the rate in place.
type ZoneTariffDTO struct {
	OriginZone int8 `gorm:"type:smallint;primaryKey"`
	DestZone   int8 `gorm:"type:smallint;primaryKey"`
	RatePerKg  int64
}

// TableName specifies the database table name for zone tariff entities.
func (ZoneTariffDTO) TableName() string {
	return "zone_tariffs"
}

func tierFromDomain(tier *tariff.ServiceTier) ServiceTierDTO {
	return ServiceTierDTO{
		ID:            tier.ID().Bytes(),
		Name:          tier.Name(),
		BaseRatePerKg: tier.BaseRatePerKg(),
		Multiplier:    tier.Multiplier(),
		Estimate:      tier.Estimate(),
	}
}

func tierToDomain(dto ServiceTierDTO) (*tariff.ServiceTier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return tariff.RestoreServiceTier(id, dto.Name, dto.BaseRatePerKg, dto.Multiplier, dto.Estimate)
}

func zoneTariffFromDomain(zt *tariff.ZoneTariff) ZoneTariffDTO {
	return ZoneTariffDTO{
		OriginZone: int8(zt.OriginZone()),
		DestZone:   int8(zt.DestZone()),
		RatePerKg:  zt.RatePerKg(),
	}
}

func zoneTariffToDomain(dto ZoneTariffDTO) (*tariff.ZoneTariff, error) {
	return tariff.RestoreZoneTariff(
		kernel.Zone(dto.OriginZone),
		kernel.Zone(dto.DestZone),
		dto.RatePerKg,
	)
}
