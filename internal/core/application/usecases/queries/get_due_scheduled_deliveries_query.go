package queries

import (
	"errors"
	"time"

	"zoneship/internal/pkg/errs"
	"zoneship/internal/pkg/guard"
)

var ErrGetDueScheduledDeliveriesQueryIsNotConstructed = errors.New(
	"GetDueScheduledDeliveriesQuery must be created via NewGetDueScheduledDeliveriesQuery constructor",
)

// GetDueScheduledDeliveriesQuery asks for scheduled deliveries that are
// still pending although their schedule window has already opened.
// Used by the dispatch job to promote them into the active lifecycle.
type GetDueScheduledDeliveriesQuery struct { //nolint:recvcheck //using for validation
	now time.Time

	guard guard.ConstructorGuard
}

// NewGetDueScheduledDeliveriesQuery creates a query for deliveries due
// at the given instant.
func NewGetDueScheduledDeliveriesQuery(now time.Time) (GetDueScheduledDeliveriesQuery, error) {
	query := GetDueScheduledDeliveriesQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setNow(now); err != nil {
		return GetDueScheduledDeliveriesQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDueScheduledDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetDueScheduledDeliveriesQueryIsNotConstructed)
}

// Now returns the instant the window check is evaluated against.
func (q GetDueScheduledDeliveriesQuery) Now() time.Time {
	return q.now
}

func (q *GetDueScheduledDeliveriesQuery) setNow(now time.Time) error {
	if now.IsZero() {
		return errs.NewValueIsRequiredError("now")
	}

	q.now = now
	return nil
}
