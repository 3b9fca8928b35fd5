package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ionolab/etransport/core"
)

// TestNewGrid_TooShort verifies that axes with fewer than MinGridLen
// samples are rejected with ErrGridTooShort.
func TestNewGrid_TooShort(t *testing.T) {
	_, err := core.NewGrid([]float64{0, 1000})
	assert.ErrorIs(t, err, core.ErrGridTooShort, "two samples must be rejected")

	_, err = core.NewGrid(nil)
	assert.ErrorIs(t, err, core.ErrGridTooShort, "nil axis must be rejected")
}

// TestNewGrid_NotIncreasing verifies that duplicated or descending
// samples are rejected with ErrGridNotIncreasing.
func TestNewGrid_NotIncreasing(t *testing.T) {
	_, err := core.NewGrid([]float64{0, 1000, 1000})
	assert.ErrorIs(t, err, core.ErrGridNotIncreasing, "duplicate sample must be rejected")

	_, err = core.NewGrid([]float64{0, 2000, 1000})
	assert.ErrorIs(t, err, core.ErrGridNotIncreasing, "descending sample must be rejected")
}

// TestGrid_Accessors verifies Len, At, Spacing and MinSpacing on a
// nonuniform axis, and that NewGrid copies its input.
func TestGrid_Accessors(t *testing.T) {
	z := []float64{0, 500, 2000, 2500}
	g, err := core.NewGrid(z)
	require.NoError(t, err, "valid axis must construct")

	assert.Equal(t, 4, g.Len(), "length")
	assert.Equal(t, 2000.0, g.At(2), "sample access")
	assert.Equal(t, 1500.0, g.Spacing(1), "local spacing")
	assert.Equal(t, 500.0, g.MinSpacing(), "minimum spacing drives the CFL bound")

	// mutating the caller's slice must not affect the grid
	z[0] = 999
	assert.Equal(t, 0.0, g.At(0), "constructor must copy input")
}
