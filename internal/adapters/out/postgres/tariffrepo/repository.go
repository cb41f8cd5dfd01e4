package tariffrepo

import (
	"context"
	"errors"

	"zoneship/internal/core/domain/model/kernel"
	"zoneship/internal/core/domain/model/tariff"
	"zoneship/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormServiceTierRepository implements ServiceTierRepository using GORM.
type GormServiceTierRepository struct {
	db *gorm.DB
}

// NewGormServiceTierRepository creates a new GORM service tier repository.
func NewGormServiceTierRepository(db *gorm.DB) *GormServiceTierRepository {
	return &GormServiceTierRepository{db: db}
}

// Upsert inserts the tier or replaces the rate, multiplier and estimate
// of an existing tier with the same name.
func (r *GormServiceTierRepository) Upsert(ctx context.Context, aggregate *tariff.ServiceTier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := tierFromDomain(aggregate)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"base_rate_per_kg", "multiplier", "estimate"}),
	}).Create(&dto).Error
}

// GetByName retrieves a service tier by its product name.
func (r *GormServiceTierRepository) GetByName(ctx context.Context, name string) (*tariff.ServiceTier, error) {
	if name == "" {
		return nil, tariff.ErrTierNameIsRequired
	}

	var dto ServiceTierDTO
	if err := r.db.WithContext(ctx).First(&dto, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("service tier", name)
		}
		return nil, err
	}

	return tierToDomain(dto)
}

// GormZoneTariffRepository implements ZoneTariffRepository using GORM.
type GormZoneTariffRepository struct {
	db *gorm.DB
}

// NewGormZoneTariffRepository creates a new GORM zone tariff repository.
func NewGormZoneTariffRepository(db *gorm.DB) *GormZoneTariffRepository {
	return &GormZoneTariffRepository{db: db}
}

// Upsert inserts the tariff or replaces the rate of the existing row for
// the same ordered zone pair.
func (r *GormZoneTariffRepository) Upsert(ctx context.Context, aggregate *tariff.ZoneTariff) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := zoneTariffFromDomain(aggregate)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "origin_zone"}, {Name: "dest_zone"}},
		DoUpdates: clause.AssignmentColumns([]string{"rate_per_kg"}),
	}).Create(&dto).Error
}

// GetByZones retrieves the tariff for the ordered (origin, destination)
// pair. The reverse pair is never consulted and there is no fallback:
// a missing row is tariff.ErrTariffNotConfigured.
func (r *GormZoneTariffRepository) GetByZones(
	ctx context.Context, origin, dest kernel.Zone,
) (*tariff.ZoneTariff, error) {
	if err := errors.Join(origin.Validate(), dest.Validate()); err != nil {
		return nil, err
	}

	var dto ZoneTariffDTO
	err := r.db.WithContext(ctx).
		First(&dto, "origin_zone = ? AND dest_zone = ?", int8(origin), int8(dest)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, tariff.ErrTariffNotConfigured
		}
		return nil, err
	}

	return zoneTariffToDomain(dto)
}
