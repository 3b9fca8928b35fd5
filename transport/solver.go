package transport

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// timeAxisTol is the relative tolerance for the uniform-spacing check on
// the caller's time axis.
const timeAxisTol = 1e-9

// Solve advances the flux history for one energy bin.
//
// Algorithm Outline:
//  1. Validate the configuration; every malformed input is a sentinel
//     error returned before any assembly.
//  2. Select the sub-stepping factor with RefinementFactor; the internal
//     step is Δt/factor and outputs are retained every factor-th step.
//  3. Assemble the implicit/explicit operators once (they depend on the
//     energy's velocity and on the internal Δt) and LU-factorize the
//     implicit side once.
//  4. For each internal sub-step: b = Mrhs·x + q̄, overwrite boundary
//     rows of b, back-substitute x ← Mlhs⁻¹·b. q̄ averages the source
//     term and the top-flux series over the two bracketing caller
//     samples; bottom rows are pinned to the initial bottom values;
//     upward-stream top rows are zero (zero-gradient constraint).
//  5. Retain the state at caller samples only and return the history.
//
// Errors: ErrNilProblem, ErrBadVelocity, ErrLossShape, ErrNegativeLoss,
// ErrScatterShape, ErrInitialShape, ErrBoundaryShape, ErrSourceShape,
// ErrDiffusionShape, ErrBadTimeAxis, ErrUnstable, ErrSingular.
//
// Solve is synchronous and single-threaded; run independent energies on
// separate goroutines, they share no mutable state.
func Solve(p *Problem, opts *Options) (*History, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := validate(p, &o); err != nil {
		return nil, err
	}

	nZ := p.Grid.Len()
	nMu := p.Streams.Len()
	n := nZ * nMu
	nT := len(p.Times)

	factor, err := RefinementFactor(p.Velocity, p.Grid.MinSpacing(), p.Times[1]-p.Times[0])
	if err != nil {
		return nil, err
	}
	dt := (p.Times[1] - p.Times[0]) / float64(factor)

	lhs, rhs := assembleSystem(p.Grid, p.Streams, p.Velocity, dt, p.Loss, p.Scatter, o.Diffusion)

	// Factor once per energy; every internal sub-step reuses it.
	var lu mat.LU
	lu.Factorize(lhs.ToDense())

	// Bottom Dirichlet values are pinned to the initial state.
	bottom := make([]float64, nMu)
	for s := 0; s < nMu; s++ {
		bottom[s] = p.Initial.At(s, 0)
	}

	hist := newHistory(p.Times, nMu, nZ)
	x := p.Initial.Clone().Raw()
	hist.setColumn(0, x)

	b := make([]float64, n)
	qbar := make([]float64, n)
	qcol := make([]float64, n)
	xv := mat.NewVecDense(n, nil)
	bv := mat.NewVecDense(n, b)

	for m := 0; m < nT-1; m++ {
		// Source and boundary data exist only at caller samples; every
		// sub-step inside interval m uses the average of samples m, m+1.
		for i := range qbar {
			qbar[i] = 0
		}
		if p.Source != nil {
			mat.Col(qcol, m, p.Source)
			floats.AddScaled(qbar, 0.5, qcol)
			mat.Col(qcol, m+1, p.Source)
			floats.AddScaled(qbar, 0.5, qcol)
		}
		for s := 0; s < nMu; s++ {
			off := s * nZ
			qbar[off] = bottom[s]
			if p.Streams.Downward(s) {
				qbar[off+nZ-1] = 0.5 * (p.TopFlux[s][m] + p.TopFlux[s][m+1])
			} else {
				qbar[off+nZ-1] = 0
			}
		}

		for k := 0; k < factor; k++ {
			// b = Mrhs·x + q̄. Boundary rows of Mrhs are empty, so their b
			// entries are exactly the constraint values carried in q̄.
			rhs.MulVec(b, x)
			floats.Add(b, qbar)
			if err := lu.SolveVecTo(xv, false, bv); err != nil {
				return nil, ErrSingular
			}
			copy(x, xv.RawVector().Data)
		}
		hist.setColumn(m+1, x)
	}

	return hist, nil
}

// validate checks the whole configuration before assembly; failure
// semantics are fail-fast, never silent degradation.
func validate(p *Problem, o *Options) error {
	if p == nil || p.Grid == nil || p.Streams == nil || p.Initial == nil {
		return ErrNilProblem
	}
	nZ := p.Grid.Len()
	nMu := p.Streams.Len()

	if p.Velocity <= 0 || math.IsInf(p.Velocity, 0) || math.IsNaN(p.Velocity) {
		return ErrBadVelocity
	}
	if len(p.Loss) != nZ {
		return ErrLossShape
	}
	for _, a := range p.Loss {
		if a < 0 {
			return ErrNegativeLoss
		}
	}
	if p.Scatter != nil {
		if len(p.Scatter) != nMu {
			return ErrScatterShape
		}
		for _, row := range p.Scatter {
			if len(row) != nMu {
				return ErrScatterShape
			}
			for _, profile := range row {
				if len(profile) != nZ {
					return ErrScatterShape
				}
			}
		}
	}
	if p.Initial.NumStreams() != nMu || p.Initial.NumAltitudes() != nZ {
		return ErrInitialShape
	}
	if len(p.Times) < 2 {
		return ErrBadTimeAxis
	}
	dt := p.Times[1] - p.Times[0]
	if dt <= 0 {
		return ErrBadTimeAxis
	}
	for i := 2; i < len(p.Times); i++ {
		if math.Abs((p.Times[i]-p.Times[i-1])-dt) > timeAxisTol*dt {
			return ErrBadTimeAxis
		}
	}
	if len(p.TopFlux) != nMu {
		return ErrBoundaryShape
	}
	for s := 0; s < nMu; s++ {
		// upward streams never read their series; nil is fine there
		if p.Streams.Downward(s) && len(p.TopFlux[s]) != len(p.Times) {
			return ErrBoundaryShape
		}
	}
	if p.Source != nil {
		r, c := p.Source.Dims()
		if r != nZ*nMu || c != len(p.Times) {
			return ErrSourceShape
		}
	}
	if len(o.Diffusion) != 0 && len(o.Diffusion) != nMu {
		return ErrDiffusionShape
	}

	return nil
}
