// Package managerrepo provides data transfer objects and mapping functions for zone manager persistence.
package managerrepo

import (
	"zoneship/internal/core/domain/model/kernel"
	"zoneship/internal/core/domain/model/manager"

	"github.com/google/uuid"
)

// ZoneManagerDTO represents the database structure for persisting zone managers.
// The bearer token is unique since it is the authentication lookup key.
type ZoneManagerDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string    `gorm:"type:varchar(128)"`
	Zone  int8      `gorm:"type:smallint;index"`
	Token string    `gorm:"type:varchar(128);uniqueIndex"`
}

// TableName specifies the database table name for zone manager entities.
func (ZoneManagerDTO) TableName() string {
	return "zone_managers"
}

// fromDomain converts a zone manager to its database representation.
func fromDomain(m *manager.ZoneManager) ZoneManagerDTO {
	return ZoneManagerDTO{
		ID:    m.ID().Bytes(),
		Name:  m.Name(),
		Zone:  int8(m.Zone()),
		Token: m.Token(),
	}
}

// toDomain converts a database DTO to a zone manager using RestoreZoneManager.
func toDomain(dto ZoneManagerDTO) (*manager.ZoneManager, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return manager.RestoreZoneManager(id, dto.Name, kernel.Zone(dto.Zone), dto.Token)
}
