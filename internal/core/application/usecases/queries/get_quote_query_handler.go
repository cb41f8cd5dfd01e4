package queries

import (
	"context"
	"database/sql"
	"errors"

	"zoneship/internal/core/domain/model/kernel"
	"zoneship/internal/core/domain/model/tariff"
	"zoneship/internal/core/domain/services"
	"zoneship/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetQuoteQueryHandler prices a shipment without creating anything.
// Reads tariff configuration with direct SQL for optimal read
// performance, then delegates the arithmetic to the same domain
// calculator delivery creation uses, so a quote shown to a customer
// always matches the price that would be frozen.
type GetQuoteQueryHandler struct {
	db         *gorm.DB
	calculator services.TariffCalculator
}

// NewGetQuoteQueryHandler creates a handler for quote queries.
// Requires a GORM database connection for query execution.
func NewGetQuoteQueryHandler(db *gorm.DB) GetQuoteQueryHandler {
	return GetQuoteQueryHandler{
		db:         db,
		calculator: services.NewTariffCalculator(),
	}
}

// Handle executes the quote query.
//
// Returns:
//   - errs.ObjectNotFoundError when either location or the tier is unknown
//   - tariff.ErrTariffNotConfigured when the ordered zone pair has no rate
func (h GetQuoteQueryHandler) Handle(
	ctx context.Context,
	query GetQuoteQuery,
) (GetQuoteQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetQuoteQueryResponse{}, err
	}

	originZone, err := h.locationZone(ctx, query.PickupLocationID())
	if err != nil {
		return GetQuoteQueryResponse{}, err
	}

	destZone, err := h.locationZone(ctx, query.DropoffLocationID())
	if err != nil {
		return GetQuoteQueryResponse{}, err
	}

	tier, err := h.serviceTier(ctx, query.TierName())
	if err != nil {
		return GetQuoteQueryResponse{}, err
	}

	zoneTariff, err := h.zoneTariff(ctx, originZone, destZone)
	if err != nil {
		return GetQuoteQueryResponse{}, err
	}

	quote, err := h.calculator.Quote(zoneTariff, tier, query.Weight())
	if err != nil {
		return GetQuoteQueryResponse{}, err
	}

	return GetQuoteQueryResponse{
		OriginZone:     int(quote.OriginZone),
		DestZone:       int(quote.DestZone),
		RatePerKg:      quote.RatePerKg,
		WeightKg:       quote.WeightKg,
		Subtotal:       quote.Subtotal,
		TierName:       quote.TierName,
		TierMultiplier: quote.TierMultiplier,
		TierEstimate:   quote.TierEstimate,
		Total:          quote.Total,
	}, nil
}

func (h GetQuoteQueryHandler) locationZone(ctx context.Context, id kernel.UUID) (kernel.Zone, error) {
	var zone int8

	row := h.db.WithContext(ctx).Raw(`
		SELECT zone
		FROM locations
		WHERE id = ?
	`, id.String()).Row()

	if err := row.Scan(&zone); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return kernel.Zone(0), errs.NewObjectNotFoundError("location", id)
		}
		return kernel.Zone(0), err
	}

	return kernel.NewZone(int(zone))
}

func (h GetQuoteQueryHandler) serviceTier(ctx context.Context, name string) (*tariff.ServiceTier, error) {
	var (
		id            string
		baseRatePerKg int64
		multiplier    float64
		estimate      string
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, base_rate_per_kg, multiplier, estimate
		FROM service_tiers
		WHERE name = ?
	`, name).Row()

	if err := row.Scan(&id, &baseRatePerKg, &multiplier, &estimate); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewObjectNotFoundError("service tier", name)
		}
		return nil, err
	}

	tierID, err := kernel.UUIDFromString(id)
	if err != nil {
		return nil, err
	}

	return tariff.RestoreServiceTier(tierID, name, baseRatePerKg, multiplier, estimate)
}

func (h GetQuoteQueryHandler) zoneTariff(
	ctx context.Context, origin, dest kernel.Zone,
) (*tariff.ZoneTariff, error) {
	var ratePerKg int64

	row := h.db.WithContext(ctx).Raw(`
		SELECT rate_per_kg
		FROM zone_tariffs
		WHERE origin_zone = ? AND dest_zone = ?
	`, int(origin), int(dest)).Row()

	if err := row.Scan(&ratePerKg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, tariff.ErrTariffNotConfigured
		}
		return nil, err
	}

	return tariff.RestoreZoneTariff(origin, dest, ratePerKg)
}
