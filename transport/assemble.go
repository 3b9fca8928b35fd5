package transport

import (
	"github.com/ionolab/etransport/core"
	"github.com/ionolab/etransport/triplet"
)

// assembleSystem builds the implicit (lhs) and explicit (rhs) operators
// for the stacked state vector at internal step dt. The matrices depend
// on velocity and dt, so they are rebuilt once per Solve and reused for
// every internal sub-step.
//
// Block layout: stream i owns rows [i·nZ, (i+1)·nZ). The diagonal block
// (i, i) is built by selfBlock, every off-diagonal block (i, j) by
// couplingBlock with the j→i redistribution rate.
func assembleSystem(
	g *core.Grid,
	s *core.StreamSet,
	velocity, dt float64,
	loss []float64,
	scatter [][][]float64,
	diffusion []float64,
) (lhs, rhs *triplet.Matrix) {
	nZ := g.Len()
	nMu := s.Len()
	n := nZ * nMu
	lhs = triplet.New(n, n)
	rhs = triplet.New(n, n)

	invVDt := 1 / (velocity * dt)
	for i := 0; i < nMu; i++ {
		var diff float64
		if len(diffusion) > 0 {
			diff = diffusion[i]
		}
		selfBlock(lhs, rhs, g, i*nZ, s.Mu(i), invVDt, loss, selfScatter(scatter, i), diff)
		for j := 0; j < nMu; j++ {
			if j == i || scatter == nil {
				continue
			}
			couplingBlock(lhs, rhs, nZ, i*nZ, j*nZ, scatter[j][i])
		}
	}

	return lhs, rhs
}

// selfScatter returns stream i's own-diagonal redistribution profile,
// which folds into the loss pathway rather than appearing as coupling.
func selfScatter(scatter [][][]float64, i int) []float64 {
	if scatter == nil {
		return nil
	}

	return scatter[i][i]
}

// selfBlock appends stream i's diagonal block at row/column offset off.
//
// Interior rows carry the temporal term 1/(v·Δt) on both sides, the
// mu-scaled upwind derivative on the implicit side only, ±½ of
// (loss + self-scatter) on the diagonal, and ∓½ of the diffusion
// second-difference. Boundary rows are then overwritten:
//
//	bottom — Dirichlet: implicit identity, explicit zero; the RHS vector
//	         supplies the pinned value every step.
//	top    — downward streams: Dirichlet driven by the external series;
//	         upward streams: zero-gradient outflow, implicit [−1, +1] on
//	         the top two altitudes, explicit zero.
func selfBlock(
	lhs, rhs *triplet.Matrix,
	g *core.Grid,
	off int,
	mu, invVDt float64,
	loss, own []float64,
	diff float64,
) {
	nZ := g.Len()
	for z := 1; z < nZ-1; z++ {
		r := off + z

		// temporal derivative
		lhs.Append(r, r, invVDt)
		rhs.Append(r, r, invVDt)

		// upwind streaming, implicit side only
		up := upwindRow(g, mu, z)
		for k := 0; k < up.n; k++ {
			lhs.Append(r, off+up.cols[k], up.coefs[k])
		}

		// loss and self-scatter, split half per side
		half := 0.5 * loss[z]
		if own != nil {
			half += 0.5 * own[z]
		}
		lhs.Append(r, r, half)
		rhs.Append(r, r, -half)

		// velocity diffusion, split half per side, interior rows only
		if diff != 0 {
			d2 := secondDiffRow(g, z)
			for k := 0; k < d2.n; k++ {
				lhs.Append(r, off+d2.cols[k], -0.5*diff*d2.coefs[k])
				rhs.Append(r, off+d2.cols[k], 0.5*diff*d2.coefs[k])
			}
		}
	}

	// bottom Dirichlet row
	lhs.Append(off, off, 1)

	// top boundary row
	top := off + nZ - 1
	if mu < 0 {
		lhs.Append(top, top, 1)
	} else {
		lhs.Append(top, top-1, -1)
		lhs.Append(top, top, 1)
	}
}

// couplingBlock appends the off-diagonal elastic-scattering block
// feeding rows [rowOff, rowOff+nZ) from columns [colOff, colOff+nZ),
// split half per side. Boundary rows carry no coupling: the domain
// edges are owned entirely by their boundary constraints.
func couplingBlock(lhs, rhs *triplet.Matrix, nZ, rowOff, colOff int, coup []float64) {
	for z := 1; z < nZ-1; z++ {
		lhs.Append(rowOff+z, colOff+z, -0.5*coup[z])
		rhs.Append(rowOff+z, colOff+z, 0.5*coup[z])
	}
}
