package transport

import "github.com/ionolab/etransport/core"

// stencil is one row of a difference operator: column indices (relative
// to the stream block) and matching coefficients.
type stencil struct {
	cols  [3]int
	coefs [3]float64
	n     int
}

// upwindRow returns the mu-scaled upwind first-difference stencil at
// interior altitude index z.
//
// Downward streams (mu < 0) receive flux from above, so the derivative
// is forward-biased: mu·(x[z+1] − x[z])/Δz(z). Upward streams (mu > 0)
// receive flux from below: mu·(x[z] − x[z−1])/Δz(z−1). The bias is fixed
// by the cosine's sign for the whole solve.
func upwindRow(g *core.Grid, mu float64, z int) stencil {
	if mu < 0 {
		inv := 1 / g.Spacing(z)

		return stencil{
			cols:  [3]int{z, z + 1},
			coefs: [3]float64{-mu * inv, mu * inv},
			n:     2,
		}
	}
	inv := 1 / g.Spacing(z-1)

	return stencil{
		cols:  [3]int{z - 1, z},
		coefs: [3]float64{-mu * inv, mu * inv},
		n:     2,
	}
}

// secondDiffRow returns the three-point second-difference stencil at
// interior altitude index z on the (possibly nonuniform) grid:
//
//	a·x[z−1] + b·x[z] + c·x[z+1] ≈ x''(z)
//
// with a = 2/(Δz₋·(Δz₋+Δz₊)), c = 2/(Δz₊·(Δz₋+Δz₊)), b = −(a+c).
// Boundary rows carry no diffusion contribution.
func secondDiffRow(g *core.Grid, z int) stencil {
	dm := g.Spacing(z - 1)
	dp := g.Spacing(z)
	a := 2 / (dm * (dm + dp))
	c := 2 / (dp * (dm + dp))

	return stencil{
		cols:  [3]int{z - 1, z, z + 1},
		coefs: [3]float64{a, -(a + c), c},
		n:     3,
	}
}
