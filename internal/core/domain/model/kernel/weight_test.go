package kernel_test

import (
	"testing"

	"zoneship/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWeight(t *testing.T) {
	t.Run("should create weight from positive kilograms", func(t *testing.T) {
		w, err := kernel.NewWeight(2.5)

		require.NoError(t, err)
		require.NoError(t, w.Validate())
		assert.InEpsilon(t, 2.5, w.Kg(), 1e-9)
	})

	t.Run("should reject zero weight", func(t *testing.T) {
		_, err := kernel.NewWeight(0)

		require.Error(t, err)
		require.ErrorIs(t, err, kernel.ErrInvalidWeight)
	})

	t.Run("should reject negative weight", func(t *testing.T) {
		_, err := kernel.NewWeight(-1.2)

		require.Error(t, err)
		require.ErrorIs(t, err, kernel.ErrInvalidWeight)
	})
}

func TestWeight_Validate(t *testing.T) {
	t.Run("zero value weight fails validation", func(t *testing.T) {
		var w kernel.Weight

		err := w.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrWeightIsNotConstructed, err)
	})
}

func TestWeight_String(t *testing.T) {
	w, err := kernel.NewWeight(2.5)
	require.NoError(t, err)

	assert.Equal(t, "2.5kg", w.String())
}
