package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ionolab/etransport/core"
)

// TestNewStateFrom_SizeMismatch verifies that backing data of the wrong
// length is rejected with ErrStateSize.
func TestNewStateFrom_SizeMismatch(t *testing.T) {
	_, err := core.NewStateFrom([]float64{1, 2, 3}, 2, 2)
	assert.ErrorIs(t, err, core.ErrStateSize, "3 values cannot back a 2×2 state")
}

// TestState_StackingOrder pins down the stream-major, altitude-minor
// layout: stream s at altitude z sits at row s·nZ + z.
func TestState_StackingOrder(t *testing.T) {
	// two streams over three altitudes: [s0z0 s0z1 s0z2 | s1z0 s1z1 s1z2]
	st, err := core.NewStateFrom([]float64{1, 2, 3, 10, 20, 30}, 2, 3)
	require.NoError(t, err, "matching size must construct")

	assert.Equal(t, 4, st.Index(1, 1), "row of stream 1 at altitude 1")
	assert.Equal(t, 3.0, st.At(0, 2), "stream 0 top value")
	assert.Equal(t, 10.0, st.At(1, 0), "stream 1 bottom value")

	st.Set(1, 2, 99)
	assert.Equal(t, 99.0, st.Raw()[5], "Set writes through to stacked row 5")
}

// TestState_Clone verifies deep copies.
func TestState_Clone(t *testing.T) {
	st := core.NewState(1, 3)
	st.Set(0, 1, 7)

	c := st.Clone()
	c.Set(0, 1, -7)

	assert.Equal(t, 7.0, st.At(0, 1), "clone must not alias the original")
	assert.Equal(t, -7.0, c.At(0, 1), "clone holds its own data")
}
