// Package locationrepo provides data transfer objects and mapping functions for location persistence.
package locationrepo

import (
	"zoneship/internal/core/domain/model/kernel"
	"zoneship/internal/core/domain/model/location"

	"github.com/google/uuid"
)

// LocationDTO represents the database structure for persisting locations.
type LocationDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string    `gorm:"type:varchar(128)"`
	Province   string    `gorm:"type:varchar(128)"`
	Kind       string    `gorm:"type:varchar(16)"`
	PostalCode string    `gorm:"type:varchar(16)"`
	Zone       int8      `gorm:"type:smallint;index"`
}

// TableName specifies the database table name for location entities.
func (LocationDTO) TableName() string {
	return "locations"
}

// fromDomain converts a location entity to its database representation.
func fromDomain(loc *location.Location) LocationDTO {
	return LocationDTO{
		ID:         loc.ID().Bytes(),
		Name:       loc.Name(),
		Province:   loc.Province(),
		Kind:       string(loc.Kind()),
		PostalCode: loc.PostalCode(),
		Zone:       int8(loc.Zone()),
	}
}

// toDomain converts a database DTO to a location entity using RestoreLocation.
func toDomain(dto LocationDTO) (*location.Location, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return location.RestoreLocation(
		id,
		dto.Name,
		dto.Province,
		location.Kind(dto.Kind),
		dto.PostalCode,
		kernel.Zone(dto.Zone),
	)
}
