package queries

import (
	"context"

	"zoneship/internal/core/domain/model/delivery"
	"zoneship/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDueScheduledDeliveriesQueryHandler finds scheduled deliveries
// whose window start has passed while the delivery is still pending.
// The window lives inside the jsonb payload document, so the predicate
// extracts it in SQL rather than loading every scheduled row.
type GetDueScheduledDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetDueScheduledDeliveriesQueryHandler creates a handler for due-delivery queries.
// Requires a GORM database connection for query execution.
func NewGetDueScheduledDeliveriesQueryHandler(db *gorm.DB) GetDueScheduledDeliveriesQueryHandler {
	return GetDueScheduledDeliveriesQueryHandler{db: db}
}

// Handle executes the query and returns the identifiers of due deliveries,
// oldest window first.
func (h GetDueScheduledDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetDueScheduledDeliveriesQuery,
) ([]kernel.UUID, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id
		FROM deliveries
		WHERE kind = ?
		  AND status = ?
		  AND (payload -> 'window' ->> 'start')::timestamptz <= ?
		ORDER BY payload -> 'window' ->> 'start'
	`, delivery.KindScheduled.String(), delivery.StatusPending.String(), query.Now()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		if err = rows.Scan(&id); err != nil {
			return nil, err
		}

		deliveryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		ids = append(ids, deliveryID)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return ids, nil
}
