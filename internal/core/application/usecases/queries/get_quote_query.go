// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"zoneship/internal/core/domain/model/kernel"
	"zoneship/internal/core/domain/model/tariff"
	"zoneship/internal/pkg/guard"
)

var ErrGetQuoteQueryIsNotConstructed = errors.New(
	"GetQuoteQuery must be created via NewGetQuoteQuery constructor",
)

// GetQuoteQuery requests a shipping price for a pickup/dropoff location
// pair, a parcel weight and a service tier, without creating anything.
//
// Example:
//
//	weight, _ := kernel.NewWeight(2.5)
//	query, err := NewGetQuoteQuery(pickupID, dropoffID, "Express", weight)
//	if err != nil {
//	    return fmt.Errorf("invalid quote request: %w", err)
//	}
//
//	quote, err := NewGetQuoteQueryHandler(db).Handle(ctx, query)
//	if errors.Is(err, tariff.ErrTariffNotConfigured) {
//	    // no rate stored for this zone direction
//	}
type GetQuoteQuery struct { //nolint:recvcheck //using for validation
	pickupLocationID  kernel.UUID
	dropoffLocationID kernel.UUID
	tierName          string
	weight            kernel.Weight

	guard guard.ConstructorGuard
}

// NewGetQuoteQuery creates a quote request.
func NewGetQuoteQuery(
	pickupLocationID kernel.UUID,
	dropoffLocationID kernel.UUID,
	tierName string,
	weight kernel.Weight,
) (GetQuoteQuery, error) {
	query := GetQuoteQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setPickupLocationID(pickupLocationID),
		query.setDropoffLocationID(dropoffLocationID),
		query.setTierName(tierName),
		query.setWeight(weight),
	); err != nil {
		return GetQuoteQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetQuoteQuery) Validate() error {
	return q.guard.Validate(ErrGetQuoteQueryIsNotConstructed)
}

// PickupLocationID returns the pickup endpoint's identifier.
func (q GetQuoteQuery) PickupLocationID() kernel.UUID {
	return q.pickupLocationID
}

// DropoffLocationID returns the dropoff endpoint's identifier.
func (q GetQuoteQuery) DropoffLocationID() kernel.UUID {
	return q.dropoffLocationID
}

// TierName returns the requested service tier's product name.
func (q GetQuoteQuery) TierName() string {
	return q.tierName
}

// Weight returns the parcel weight.
func (q GetQuoteQuery) Weight() kernel.Weight {
	return q.weight
}

func (q *GetQuoteQuery) setPickupLocationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	q.pickupLocationID = id
	return nil
}

func (q *GetQuoteQuery) setDropoffLocationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	q.dropoffLocationID = id
	return nil
}

func (q *GetQuoteQuery) setTierName(tierName string) error {
	if tierName == "" {
		return tariff.ErrTierNameIsRequired
	}

	q.tierName = tierName
	return nil
}

func (q *GetQuoteQuery) setWeight(weight kernel.Weight) error {
	if err := weight.Validate(); err != nil {
		return err
	}

	q.weight = weight
	return nil
}

// GetQuoteQueryResponse is the price breakdown read model returned to
// customers. Mirrors the Quote snapshot frozen onto deliveries.
type GetQuoteQueryResponse struct {
	OriginZone     int     `json:"origin_zone"`
	DestZone       int     `json:"dest_zone"`
	RatePerKg      int64   `json:"rate_per_kg"`
	WeightKg       float64 `json:"weight_kg"`
	Subtotal       int64   `json:"subtotal"`
	TierName       string  `json:"tier_name"`
	TierMultiplier float64 `json:"tier_multiplier"`
	TierEstimate   string  `json:"tier_estimate"`
	Total          int64   `json:"total"`
}
