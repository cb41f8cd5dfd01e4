// Package deliveryrepo provides data transfer objects and mapping functions for delivery persistence.
// This package implements the repository pattern for the delivery aggregate, handling
// the conversion between domain entities and database representations.
package deliveryrepo

import (
	"encoding/json"
	"time"

	"zoneship/internal/core/domain/model/delivery"
	"zoneship/internal/core/domain/model/kernel"
	"zoneship/internal/core/domain/model/tariff"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for persisting delivery aggregates.
// The price snapshot is embedded with a price_ prefix so the frozen quote
// survives tariff reconfiguration, and the kind-specific payload is kept
// as a jsonb document since its shape varies per kind.
type DeliveryDTO struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID        uuid.UUID  `gorm:"type:uuid;index"`
	PickupLocationID  uuid.UUID  `gorm:"type:uuid"`
	DropoffLocationID uuid.UUID  `gorm:"type:uuid"`
	PickupAddress     string     `gorm:"type:text"`
	DropoffAddress    string     `gorm:"type:text"`
	Kind              string     `gorm:"type:varchar(32)"`
	Status            string     `gorm:"type:varchar(32);index"`
	DriverID          *uuid.UUID `gorm:"type:uuid"`
	ManagerID         *uuid.UUID `gorm:"type:uuid"`
	DeliveryZone      int8       `gorm:"type:smallint;index"`
	DropoffZone       int8       `gorm:"type:smallint"`
	Price             PriceDTO   `gorm:"embedded;embeddedPrefix:price_"`
	Payload           []byte     `gorm:"type:jsonb"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName specifies the database table name for delivery entities.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// PriceDTO represents the embedded frozen quote snapshot within the deliveries table.
type PriceDTO struct {
	OriginZone     int8 `gorm:"type:smallint"`
	DestZone       int8 `gorm:"type:smallint"`
	RatePerKg      int64
	WeightKg       float64
	Subtotal       int64
	TierName       string `gorm:"type:varchar(64)"`
	TierMultiplier float64
	TierEstimate   string `gorm:"type:varchar(64)"`
	Total          int64
}

// payloadDTO is the jsonb document shape of the kind-specific payload.
type payloadDTO struct {
	DropPoints []string       `json:"drop_points,omitempty"`
	Dimensions *dimensionsDTO `json:"dimensions,omitempty"`
	Window     *windowDTO     `json:"window,omitempty"`
	Request    string         `json:"request,omitempty"`
}

type dimensionsDTO struct {
	LengthCm int `json:"length_cm"`
	WidthCm  int `json:"width_cm"`
	HeightCm int `json:"height_cm"`
}

type windowDTO struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// fromDomain converts a delivery aggregate to its database representation.
func fromDomain(aggregate *delivery.Delivery) (DeliveryDTO, error) {
	var driverID *uuid.UUID
	if id := aggregate.Driver(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	var managerID *uuid.UUID
	if id := aggregate.Manager(); id != nil {
		raw := id.Bytes()
		managerID = &raw
	}

	payload, err := marshalPayload(aggregate.Payload())
	if err != nil {
		return DeliveryDTO{}, err
	}

	price := aggregate.Price()

	return DeliveryDTO{
		ID:                aggregate.ID().Bytes(),
		CustomerID:        aggregate.CustomerID().Bytes(),
		PickupLocationID:  aggregate.PickupLocationID().Bytes(),
		DropoffLocationID: aggregate.DropoffLocationID().Bytes(),
		PickupAddress:     aggregate.PickupAddress(),
		DropoffAddress:    aggregate.DropoffAddress(),
		Kind:              aggregate.Kind().String(),
		Status:            aggregate.Status().String(),
		DriverID:          driverID,
		ManagerID:         managerID,
		DeliveryZone:      int8(aggregate.DeliveryZone()),
		DropoffZone:       int8(aggregate.DropoffZone()),
		Price: PriceDTO{
			OriginZone:     int8(price.OriginZone),
			DestZone:       int8(price.DestZone),
			RatePerKg:      price.RatePerKg,
			WeightKg:       price.WeightKg,
			Subtotal:       price.Subtotal,
			TierName:       price.TierName,
			TierMultiplier: price.TierMultiplier,
			TierEstimate:   price.TierEstimate,
			Total:          price.Total,
		},
		Payload:   payload,
		CreatedAt: aggregate.CreatedAt(),
		UpdatedAt: aggregate.UpdatedAt(),
	}, nil
}

// toDomain converts a database DTO to a delivery aggregate using RestoreDelivery,
// re-validating every invariant so corrupted rows never leak into the domain.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	pickupLocationID, err := kernel.UUIDFromBytes(dto.PickupLocationID[:])
	if err != nil {
		return nil, err
	}

	dropoffLocationID, err := kernel.UUIDFromBytes(dto.DropoffLocationID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}

		driverID = &dID
	}

	var managerID *kernel.UUID
	if dto.ManagerID != nil {
		mID, managerErr := kernel.UUIDFromBytes((*dto.ManagerID)[:])
		if managerErr != nil {
			return nil, managerErr
		}

		managerID = &mID
	}

	payload, err := unmarshalPayload(dto.Payload)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(
		id,
		customerID,
		pickupLocationID,
		dropoffLocationID,
		dto.PickupAddress,
		dto.DropoffAddress,
		delivery.Kind(dto.Kind),
		delivery.Status(dto.Status),
		driverID,
		managerID,
		kernel.Zone(dto.DeliveryZone),
		kernel.Zone(dto.DropoffZone),
		tariff.Quote{
			OriginZone:     kernel.Zone(dto.Price.OriginZone),
			DestZone:       kernel.Zone(dto.Price.DestZone),
			RatePerKg:      dto.Price.RatePerKg,
			WeightKg:       dto.Price.WeightKg,
			Subtotal:       dto.Price.Subtotal,
			TierName:       dto.Price.TierName,
			TierMultiplier: dto.Price.TierMultiplier,
			TierEstimate:   dto.Price.TierEstimate,
			Total:          dto.Price.Total,
		},
		payload,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}

func marshalPayload(payload delivery.Payload) ([]byte, error) {
	doc := payloadDTO{
		DropPoints: payload.DropPoints,
		Request:    payload.Request,
	}

	if payload.Dimensions != nil {
		doc.Dimensions = &dimensionsDTO{
			LengthCm: payload.Dimensions.LengthCm,
			WidthCm:  payload.Dimensions.WidthCm,
			HeightCm: payload.Dimensions.HeightCm,
		}
	}

	if payload.Window != nil {
		doc.Window = &windowDTO{
			Start: payload.Window.Start,
			End:   payload.Window.End,
		}
	}

	return json.Marshal(doc)
}

func unmarshalPayload(raw []byte) (delivery.Payload, error) {
	if len(raw) == 0 {
		return delivery.Payload{}, nil
	}

	var doc payloadDTO
	if err := json.Unmarshal(raw, &doc); err != nil {
		return delivery.Payload{}, err
	}

	payload := delivery.Payload{
		DropPoints: doc.DropPoints,
		Request:    doc.Request,
	}

	if doc.Dimensions != nil {
		payload.Dimensions = &delivery.Dimensions{
			LengthCm: doc.Dimensions.LengthCm,
			WidthCm:  doc.Dimensions.WidthCm,
			HeightCm: doc.Dimensions.HeightCm,
		}
	}

	if doc.Window != nil {
		payload.Window = &delivery.ScheduleWindow{
			Start: doc.Window.Start,
			End:   doc.Window.End,
		}
	}

	return payload, nil
}
