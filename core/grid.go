package core

// MinGridLen is the smallest usable altitude axis: the two boundary rows
// consume one position each, leaving at least one interior point.
const MinGridLen = 3

// Grid is an immutable, strictly increasing altitude axis.
//
// Spacing need not be uniform; difference operators take the local
// spacing from Spacing. A Grid is safe for concurrent use once built.
type Grid struct {
	z []float64
}

// NewGrid validates and copies the altitude axis.
//
// Errors:
//   - ErrGridTooShort      — len(z) < MinGridLen.
//   - ErrGridNotIncreasing — any z[i+1] <= z[i].
//
// Complexity: O(n).
func NewGrid(z []float64) (*Grid, error) {
	if len(z) < MinGridLen {
		return nil, ErrGridTooShort
	}
	for i := 1; i < len(z); i++ {
		if z[i] <= z[i-1] {
			return nil, ErrGridNotIncreasing
		}
	}
	c := make([]float64, len(z))
	copy(c, z)

	return &Grid{z: c}, nil
}

// Len returns the number of altitude samples. Complexity: O(1).
func (g *Grid) Len() int { return len(g.z) }

// At returns the altitude at index i. Complexity: O(1).
func (g *Grid) At(i int) float64 { return g.z[i] }

// Z returns a copy of the altitude axis. Complexity: O(n).
func (g *Grid) Z() []float64 {
	c := make([]float64, len(g.z))
	copy(c, g.z)

	return c
}

// Spacing returns z[i+1] − z[i], the local cell size above index i.
// Valid for i in [0, Len()-2]. Complexity: O(1).
func (g *Grid) Spacing(i int) float64 { return g.z[i+1] - g.z[i] }

// MinSpacing returns the smallest cell size on the axis; this is the
// spacing that drives the CFL stability bound. Complexity: O(n).
func (g *Grid) MinSpacing() float64 {
	min := g.z[1] - g.z[0]
	for i := 1; i < len(g.z)-1; i++ {
		if d := g.z[i+1] - g.z[i]; d < min {
			min = d
		}
	}

	return min
}
