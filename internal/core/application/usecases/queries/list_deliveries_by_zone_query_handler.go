package queries

import (
	"context"

	"zoneship/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListDeliveriesByZoneQueryHandler retrieves the deliveries of a zone
// from the database. Uses direct SQL queries for optimal read
// performance in the CQRS pattern.
//
// Authorization runs before any row is read: a zone manager asking for
// a foreign zone gets manager.ErrZoneForbidden and learns nothing about
// the zone's contents, not even whether it is empty.
type ListDeliveriesByZoneQueryHandler struct {
	db *gorm.DB
}

// NewListDeliveriesByZoneQueryHandler creates a handler for zone listing queries.
// Requires a GORM database connection for query execution.
func NewListDeliveriesByZoneQueryHandler(db *gorm.DB) ListDeliveriesByZoneQueryHandler {
	return ListDeliveriesByZoneQueryHandler{db: db}
}

// Handle executes the query to retrieve all deliveries of the zone,
// newest first.
func (h ListDeliveriesByZoneQueryHandler) Handle(
	ctx context.Context,
	query ListDeliveriesByZoneQuery,
) ([]ListDeliveriesByZoneQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := query.Actor().AuthorizeZone(query.Zone()); err != nil {
		return nil, err
	}

	deliveries := make([]ListDeliveriesByZoneQueryResponse, 0)

	stmt := `
		SELECT
			id,
			customer_id,
			kind,
			status,
			pickup_address,
			dropoff_address,
			delivery_zone,
			dropoff_zone,
			driver_id,
			price_total,
			created_at,
			updated_at
		FROM deliveries
		WHERE delivery_zone = ?`
	args := []any{int(query.Zone())}

	if status, ok := query.StatusFilter(); ok {
		stmt += ` AND status = ?`
		args = append(args, status.String())
	}

	stmt += `
		ORDER BY created_at DESC`

	rows, err := h.db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			row        ListDeliveriesByZoneQueryResponse
			id         uuid.UUID
			customerID uuid.UUID
			driverID   *uuid.UUID
		)

		err = rows.Scan(
			&id,
			&customerID,
			&row.Kind,
			&row.Status,
			&row.PickupAddress,
			&row.DropoffAddress,
			&row.DeliveryZone,
			&row.DropoffZone,
			&driverID,
			&row.PriceTotal,
			&row.CreatedAt,
			&row.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		deliveryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		row.ID = deliveryID

		ownerID, idErr := kernel.UUIDFromBytes(customerID[:])
		if idErr != nil {
			return nil, idErr
		}
		row.CustomerID = ownerID

		if driverID != nil {
			driver, idErr := kernel.UUIDFromBytes(driverID[:])
			if idErr != nil {
				return nil, idErr
			}
			row.DriverID = &driver
		}

		deliveries = append(deliveries, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}
