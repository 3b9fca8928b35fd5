package triplet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ionolab/etransport/triplet"
)

// TestMatrix_MulVec verifies A·x on a small matrix with a duplicate
// entry, which must accumulate.
func TestMatrix_MulVec(t *testing.T) {
	// A = [2 1; 0 3], with the 2 built from two appends of 1.
	m := triplet.New(2, 2)
	m.Append(0, 0, 1)
	m.Append(0, 0, 1)
	m.Append(0, 1, 1)
	m.Append(1, 1, 3)

	dst := make([]float64, 2)
	m.MulVec(dst, []float64{1, 2})
	assert.Equal(t, []float64{4, 6}, dst, "A·(1,2)")

	// MulVecAdd accumulates on top of an existing dst
	m.MulVecAdd(dst, []float64{1, 0})
	assert.Equal(t, []float64{6, 6}, dst, "dst += A·(1,0)")
}

// TestMatrix_ZeroSkipped verifies zero appends do not create entries.
func TestMatrix_ZeroSkipped(t *testing.T) {
	m := triplet.New(3, 3)
	m.Append(1, 1, 0)
	assert.Equal(t, 0, m.NNZ(), "zero values are skipped")
}

// TestMatrix_ToDense verifies densification sums duplicates.
func TestMatrix_ToDense(t *testing.T) {
	m := triplet.New(2, 3)
	m.Append(0, 2, 5)
	m.Append(0, 2, -1)
	m.Append(1, 0, 2)

	d := m.ToDense()
	r, c := d.Dims()
	assert.Equal(t, 2, r, "rows preserved")
	assert.Equal(t, 3, c, "cols preserved")
	assert.Equal(t, 4.0, d.At(0, 2), "duplicates sum")
	assert.Equal(t, 2.0, d.At(1, 0), "single entry copied")
	assert.Equal(t, 0.0, d.At(1, 1), "untouched cells stay zero")
}

// TestMatrix_PanicsOnBadIndex verifies out-of-range appends panic
// (programmer error, not a user-facing condition).
func TestMatrix_PanicsOnBadIndex(t *testing.T) {
	m := triplet.New(2, 2)
	assert.Panics(t, func() { m.Append(2, 0, 1) }, "row out of range")
	assert.Panics(t, func() { m.Append(0, -1, 1) }, "column out of range")
}
