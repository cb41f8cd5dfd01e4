package services_test

import (
	"testing"

	"zoneship/internal/core/domain/model/kernel"
	"zoneship/internal/core/domain/model/tariff"
	"zoneship/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustZone(t *testing.T, v int) kernel.Zone {
	t.Helper()
	z, err := kernel.NewZone(v)
	require.NoError(t, err)
	return z
}

func mustWeight(t *testing.T, kg float64) kernel.Weight {
	t.Helper()
	w, err := kernel.NewWeight(kg)
	require.NoError(t, err)
	return w
}

func TestTariffCalculator_Quote(t *testing.T) {
	calc := services.NewTariffCalculator()

	t.Run("express 2.5kg from zone 1 to zone 2", func(t *testing.T) {
		zt, err := tariff.NewZoneTariff(mustZone(t, 1), mustZone(t, 2), 10000)
		require.NoError(t, err)
		tier, err := tariff.NewServiceTier(kernel.NewUUID(), "Express", 12000, 1.5, "1-2 days")
		require.NoError(t, err)

		quote, err := calc.Quote(zt, tier, mustWeight(t, 2.5))

		require.NoError(t, err)
		assert.Equal(t, int64(25000), quote.Subtotal)
		assert.Equal(t, int64(37500), quote.Total)
		assert.Equal(t, "Express", quote.TierName)
		assert.Equal(t, 1.5, quote.TierMultiplier)
		assert.Equal(t, "1-2 days", quote.TierEstimate)
		assert.Equal(t, int64(10000), quote.RatePerKg)
		assert.Equal(t, 2.5, quote.WeightKg)
		assert.Equal(t, mustZone(t, 1), quote.OriginZone)
		assert.Equal(t, mustZone(t, 2), quote.DestZone)
	})

	t.Run("rounding happens once at the end", func(t *testing.T) {
		// 333 * 0.5 * 1.1 = 183.15 -> 183; rounding the subtotal first
		// (167 * 1.1 = 183.7 -> 184) would give a different answer.
		zt, err := tariff.NewZoneTariff(mustZone(t, 2), mustZone(t, 2), 333)
		require.NoError(t, err)
		tier, err := tariff.NewServiceTier(kernel.NewUUID(), "Regular", 0, 1.1, "3-5 days")
		require.NoError(t, err)

		quote, err := calc.Quote(zt, tier, mustWeight(t, 0.5))

		require.NoError(t, err)
		assert.Equal(t, int64(183), quote.Total)
		assert.Equal(t, int64(167), quote.Subtotal)
	})

	t.Run("exact half rounds up", func(t *testing.T) {
		// 1 * 0.5 * 1.0 = 0.5 -> 1
		zt, err := tariff.NewZoneTariff(mustZone(t, 3), mustZone(t, 4), 1)
		require.NoError(t, err)
		tier, err := tariff.NewServiceTier(kernel.NewUUID(), "Regular", 0, 1.0, "3-5 days")
		require.NoError(t, err)

		quote, err := calc.Quote(zt, tier, mustWeight(t, 0.5))

		require.NoError(t, err)
		assert.Equal(t, int64(1), quote.Total)
	})

	t.Run("zero rate quotes free", func(t *testing.T) {
		zt, err := tariff.NewZoneTariff(mustZone(t, 5), mustZone(t, 5), 0)
		require.NoError(t, err)
		tier, err := tariff.NewServiceTier(kernel.NewUUID(), "Express", 12000, 1.5, "1-2 days")
		require.NoError(t, err)

		quote, err := calc.Quote(zt, tier, mustWeight(t, 10))

		require.NoError(t, err)
		assert.Equal(t, int64(0), quote.Total)
		assert.Equal(t, int64(0), quote.Subtotal)
	})

	t.Run("unconstructed tariff is rejected", func(t *testing.T) {
		tier, err := tariff.NewServiceTier(kernel.NewUUID(), "Express", 12000, 1.5, "1-2 days")
		require.NoError(t, err)

		_, err = calc.Quote(&tariff.ZoneTariff{}, tier, mustWeight(t, 1))

		require.ErrorIs(t, err, tariff.ErrZoneTariffIsNotConstructed)
	})

	t.Run("unconstructed tier is rejected", func(t *testing.T) {
		zt, err := tariff.NewZoneTariff(mustZone(t, 1), mustZone(t, 2), 10000)
		require.NoError(t, err)

		_, err = calc.Quote(zt, &tariff.ServiceTier{}, mustWeight(t, 1))

		require.ErrorIs(t, err, tariff.ErrServiceTierIsNotConstructed)
	})

	t.Run("determinism", func(t *testing.T) {
		zt, err := tariff.NewZoneTariff(mustZone(t, 1), mustZone(t, 5), 42500)
		require.NoError(t, err)
		tier, err := tariff.NewServiceTier(kernel.NewUUID(), "Express", 12000, 1.5, "1-2 days")
		require.NoError(t, err)

		first, err := calc.Quote(zt, tier, mustWeight(t, 3.3))
		require.NoError(t, err)
		second, err := calc.Quote(zt, tier, mustWeight(t, 3.3))
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})
}
