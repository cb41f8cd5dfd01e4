package queries_test

import (
	"testing"
	"time"

	"zoneship/internal/core/application/usecases/queries"
	"zoneship/internal/core/domain/model/delivery"
	"zoneship/internal/core/domain/model/kernel"
	"zoneship/internal/core/domain/model/manager"
	"zoneship/internal/core/domain/model/tariff"

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

func TestNewGetQuoteQuery(t *testing.T) {
	t.Run("valid query", func(t *testing.T) {
		query, err := queries.NewGetQuoteQuery(
			kernel.NewUUID(), kernel.NewUUID(), "Express", mustWeight(t, 2.5))

		require.NoError(t, err)
		assert.Equal(t, "Express", query.TierName())
		assert.Equal(t, 2.5, query.Weight().Kg())
		require.NoError(t, query.Validate())
	})

	t.Run("empty tier name", func(t *testing.T) {
		_, err := queries.NewGetQuoteQuery(
			kernel.NewUUID(), kernel.NewUUID(), "", mustWeight(t, 2.5))

		require.ErrorIs(t, err, tariff.ErrTierNameIsRequired)
	})

	t.Run("unconstructed weight", func(t *testing.T) {
		_, err := queries.NewGetQuoteQuery(
			kernel.NewUUID(), kernel.NewUUID(), "Express", kernel.Weight{})

		require.Error(t, err)
	})

	t.Run("zero value query fails validation", func(t *testing.T) {
		var query queries.GetQuoteQuery

		require.ErrorIs(t, query.Validate(), queries.ErrGetQuoteQueryIsNotConstructed)
	})
}

func TestNewListDeliveriesByZoneQuery(t *testing.T) {
	t.Run("valid query", func(t *testing.T) {
		query, err := queries.NewListDeliveriesByZoneQuery(mustZone(t, 3), manager.NewAdmin())

		require.NoError(t, err)
		assert.Equal(t, mustZone(t, 3), query.Zone())
	})

	t.Run("invalid zone", func(t *testing.T) {
		_, err := queries.NewListDeliveriesByZoneQuery(kernel.Zone(9), manager.NewAdmin())

		require.Error(t, err)
	})

	t.Run("nil actor", func(t *testing.T) {
		_, err := queries.NewListDeliveriesByZoneQuery(mustZone(t, 3), nil)

		require.ErrorIs(t, err, queries.ErrActorIsRequired)
	})

	t.Run("without filter the status is absent", func(t *testing.T) {
		query, err := queries.NewListDeliveriesByZoneQuery(mustZone(t, 3), manager.NewAdmin())
		require.NoError(t, err)

		_, ok := query.StatusFilter()
		assert.False(t, ok)
	})
}

func TestNewListDeliveriesByZoneQueryWithStatus(t *testing.T) {
	t.Run("valid status filter", func(t *testing.T) {
		query, err := queries.NewListDeliveriesByZoneQueryWithStatus(
			mustZone(t, 3), delivery.StatusPending, manager.NewAdmin())

		require.NoError(t, err)
		status, ok := query.StatusFilter()
		assert.True(t, ok)
		assert.Equal(t, delivery.StatusPending, status)
	})

	t.Run("unknown status", func(t *testing.T) {
		_, err := queries.NewListDeliveriesByZoneQueryWithStatus(
			mustZone(t, 3), delivery.Status("flying"), manager.NewAdmin())

		require.Error(t, err)
	})
}

func TestNewGetDueScheduledDeliveriesQuery(t *testing.T) {
	t.Run("valid query", func(t *testing.T) {
		now := time.Now().UTC()
		query, err := queries.NewGetDueScheduledDeliveriesQuery(now)

		require.NoError(t, err)
		assert.Equal(t, now, query.Now())
	})

	t.Run("zero time", func(t *testing.T) {
		_, err := queries.NewGetDueScheduledDeliveriesQuery(time.Time{})

		require.Error(t, err)
	})
}

func TestListDeliveriesByZoneQueryHandler_Handle_ZoneForbidden(t *testing.T) {
	// Authorization runs before any SQL: a foreign-zone manager is
	// rejected without the handler ever touching the database.
	zoneManager, err := manager.NewZoneManager(kernel.NewUUID(), "Sari", mustZone(t, 3), "tok")
	require.NoError(t, err)

	query, err := queries.NewListDeliveriesByZoneQuery(mustZone(t, 1), zoneManager)
	require.NoError(t, err)

	h := queries.NewListDeliveriesByZoneQueryHandler(nil)
	_, err = h.Handle(t.Context(), query)

	require.ErrorIs(t, err, manager.ErrZoneForbidden)
}
