package managerrepo

import (
	"context"
	"errors"

	"zoneship/internal/core/domain/model/manager"
	"zoneship/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormZoneManagerRepository implements ZoneManagerRepository using GORM.
type GormZoneManagerRepository struct {
	db *gorm.DB
}

// NewGormZoneManagerRepository creates a new GORM zone manager repository.
func NewGormZoneManagerRepository(db *gorm.DB) *GormZoneManagerRepository {
	return &GormZoneManagerRepository{db: db}
}

// Add saves a new zone manager to the database.
func (r *GormZoneManagerRepository) Add(ctx context.Context, aggregate *manager.ZoneManager) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetByToken retrieves the zone manager owning the given bearer token.
// The not-found message deliberately omits the token value so secrets
// never end up in logs.
func (r *GormZoneManagerRepository) GetByToken(ctx context.Context, token string) (*manager.ZoneManager, error) {
	if token == "" {
		return nil, manager.ErrTokenIsRequired
	}

	var dto ZoneManagerDTO
	if err := r.db.WithContext(ctx).First(&dto, "token = ?", token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("zone manager", "token")
		}
		return nil, err
	}

	return toDomain(dto)
}
