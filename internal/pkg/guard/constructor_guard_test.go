package guard_test

import (
	"errors"
	"testing"

	"zoneship/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("test object not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("default_error_has_meaningful_message", func(t *testing.T) {
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard is used
// in a domain object to enforce constructor usage.
func TestConstructorGuardUsageExample(t *testing.T) {
	type Rate struct {
		perKg int64
		guard guard.ConstructorGuard
	}

	var errRateNotConstructed = errors.New("Rate must be created via NewRate")

	newRate := func(perKg int64) (Rate, error) {
		if perKg < 0 {
			return Rate{}, errors.New("rate cannot be negative")
		}
		return Rate{perKg: perKg, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		rate, err := newRate(10000)

		require.NoError(t, err)
		require.NoError(t, rate.guard.Validate(errRateNotConstructed))
		assert.Equal(t, int64(10000), rate.perKg)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var rate Rate // zero value

		err := rate.guard.Validate(errRateNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errRateNotConstructed, err)
	})
}
