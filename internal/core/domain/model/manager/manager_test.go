package manager_test

import (
	"testing"

	"zoneship/internal/core/domain/model/kernel"
	"zoneship/internal/core/domain/model/manager"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewZoneManager(t *testing.T) {
	zone3, err := kernel.NewZone(3)
	require.NoError(t, err)

	t.Run("valid manager", func(t *testing.T) {
		m, err := manager.NewZoneManager(kernel.NewUUID(), "Sari", zone3, "tok-sari")

		require.NoError(t, err)
		assert.Equal(t, "Sari", m.Name())
		assert.Equal(t, zone3, m.Zone())
		assert.Equal(t, "tok-sari", m.Token())
		require.NoError(t, m.Validate())
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := manager.NewZoneManager(kernel.NewUUID(), "", zone3, "tok")

		require.ErrorIs(t, err, manager.ErrManagerNameIsRequired)
	})

	t.Run("empty token", func(t *testing.T) {
		_, err := manager.NewZoneManager(kernel.NewUUID(), "Sari", zone3, "")

		require.ErrorIs(t, err, manager.ErrTokenIsRequired)
	})

	t.Run("unknown zone", func(t *testing.T) {
		_, err := manager.NewZoneManager(kernel.NewUUID(), "Sari", kernel.Zone(9), "tok")

		require.Error(t, err)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var m manager.ZoneManager

		require.ErrorIs(t, m.Validate(), manager.ErrZoneManagerIsNotConstructed)
	})
}

func TestZoneManager_AuthorizeZone(t *testing.T) {
	zone1, err := kernel.NewZone(1)
	require.NoError(t, err)
	zone3, err := kernel.NewZone(3)
	require.NoError(t, err)

	m, err := manager.NewZoneManager(kernel.NewUUID(), "Sari", zone3, "tok-sari")
	require.NoError(t, err)

	t.Run("own zone is allowed", func(t *testing.T) {
		require.NoError(t, m.AuthorizeZone(zone3))
	})

	t.Run("foreign zone is forbidden", func(t *testing.T) {
		err := m.AuthorizeZone(zone1)

		require.ErrorIs(t, err, manager.ErrZoneForbidden)
	})

	t.Run("error does not reveal the target zone", func(t *testing.T) {
		err := m.AuthorizeZone(zone1)

		require.Error(t, err)
		assert.NotContains(t, err.Error(), zone1.String())
		assert.Contains(t, err.Error(), zone3.String())
	})

	t.Run("zero value fails closed", func(t *testing.T) {
		var zero manager.ZoneManager

		require.ErrorIs(t, zero.AuthorizeZone(zone3), manager.ErrZoneForbidden)
	})
}

func TestAdmin_AuthorizeZone(t *testing.T) {
	admin := manager.NewAdmin()

	for _, z := range kernel.AllZones() {
		require.NoError(t, admin.AuthorizeZone(z))
	}
}

func TestRestoreZoneManager(t *testing.T) {
	zone2, err := kernel.NewZone(2)
	require.NoError(t, err)
	id := kernel.NewUUID()

	m, err := manager.RestoreZoneManager(id, "Budi", zone2, "tok-budi")

	require.NoError(t, err)
	assert.True(t, m.ID().IsEqual(id))
	assert.Equal(t, zone2, m.Zone())
}
