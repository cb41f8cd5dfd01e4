package tariff

import "zoneship/internal/core/domain/model/kernel"

// Quote is the deterministic price breakdown returned by the tariff
// engine. It is fully reconstructable from its fields (no hidden state)
// so it can be persisted as the price snapshot on the resulting
// delivery: later changes to zone tariffs or service tiers never
// retroactively alter an already-placed delivery's price.
//
// Monetary amounts are integral currency units. The canonical formula is
//
//	total = roundHalfUp(ratePerKg × weightKg × multiplier)
//
// with rounding applied exactly once, at the end. Subtotal is rounded
// independently for display and never used as an intermediate value.
type Quote struct {
	OriginZone     kernel.Zone
	DestZone       kernel.Zone
	RatePerKg      int64
	WeightKg       float64
	Subtotal       int64
	TierName       string
	TierMultiplier float64
	TierEstimate   string
	Total          int64
}
