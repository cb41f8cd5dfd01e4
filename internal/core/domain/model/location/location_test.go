package location_test

import (
	"testing"

	"zoneship/internal/core/domain/model/kernel"
	"zoneship/internal/core/domain/model/location"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocation(t *testing.T) {
	t.Run("should create valid location", func(t *testing.T) {
		id := kernel.NewUUID()

		loc, err := location.NewLocation(id, "Denpasar", "Bali", location.KindCity, "80111", kernel.ZoneJavaBali)

		require.NoError(t, err)
		require.NoError(t, loc.Validate())
		assert.Equal(t, id, loc.ID())
		assert.Equal(t, "Denpasar", loc.Name())
		assert.Equal(t, "Bali", loc.Province())
		assert.Equal(t, location.KindCity, loc.Kind())
		assert.Equal(t, "80111", loc.PostalCode())
		assert.Equal(t, kernel.ZoneJavaBali, loc.Zone())
	})

	t.Run("should reject empty name", func(t *testing.T) {
		_, err := location.NewLocation(
			kernel.NewUUID(), "", "Bali", location.KindCity, "80111", kernel.ZoneJavaBali)

		require.ErrorIs(t, err, location.ErrNameIsRequired)
	})

	t.Run("should reject empty province", func(t *testing.T) {
		_, err := location.NewLocation(
			kernel.NewUUID(), "Denpasar", "", location.KindCity, "80111", kernel.ZoneJavaBali)

		require.ErrorIs(t, err, location.ErrProvinceIsRequired)
	})

	t.Run("should reject empty postal code", func(t *testing.T) {
		_, err := location.NewLocation(
			kernel.NewUUID(), "Denpasar", "Bali", location.KindCity, "", kernel.ZoneJavaBali)

		require.ErrorIs(t, err, location.ErrPostalCodeIsRequired)
	})

	t.Run("should reject unknown kind", func(t *testing.T) {
		_, err := location.NewLocation(
			kernel.NewUUID(), "Denpasar", "Bali", location.Kind("village"), "80111", kernel.ZoneJavaBali)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "location kind")
	})

	t.Run("should reject missing zone assignment", func(t *testing.T) {
		_, err := location.NewLocation(
			kernel.NewUUID(), "Denpasar", "Bali", location.KindCity, "80111", kernel.ZoneUnknown)

		require.Error(t, err)
	})

	t.Run("should collect multiple validation errors", func(t *testing.T) {
		_, err := location.NewLocation(
			kernel.NewUUID(), "", "", location.KindRegency, "80111", kernel.ZoneEastern)

		require.ErrorIs(t, err, location.ErrNameIsRequired)
		require.ErrorIs(t, err, location.ErrProvinceIsRequired)
	})
}

func TestLocation_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var loc location.Location

		err := loc.Validate()

		require.Error(t, err)
		assert.Equal(t, location.ErrLocationIsNotConstructed, err)
	})

	t.Run("nil fails validation", func(t *testing.T) {
		var loc *location.Location

		require.Error(t, loc.Validate())
	})
}

func TestLocation_IsEqual(t *testing.T) {
	id := kernel.NewUUID()

	first, err := location.NewLocation(id, "Badung", "Bali", location.KindRegency, "80351", kernel.ZoneJavaBali)
	require.NoError(t, err)

	same, err := location.NewLocation(id, "Renamed", "Bali", location.KindRegency, "80351", kernel.ZoneJavaBali)
	require.NoError(t, err)

	other, err := location.NewLocation(
		kernel.NewUUID(), "Medan", "Sumatera Utara", location.KindCity, "20111", kernel.ZoneSumatra)
	require.NoError(t, err)

	assert.True(t, first.IsEqual(same))
	assert.False(t, first.IsEqual(other))
	assert.False(t, first.IsEqual(nil))
}

func TestKind_Validate(t *testing.T) {
	require.NoError(t, location.KindCity.Validate())
	require.NoError(t, location.KindRegency.Validate())
	require.Error(t, location.Kind("").Validate())
}
