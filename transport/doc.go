// Package transport implements the implicit multistream transport
// solver: it advances electron number-flux through advection along
// altitude, first-order collisional loss, and stream-to-stream elastic
// scattering, driven by a time-varying top-of-domain boundary flux and
// an external production (source) term.
//
// 🚀 What is the scheme?
//
//	A Crank–Nicolson-style implicit step over the stacked state vector
//	x (stream-major, altitude-minor):
//
//	    Mlhs · xⁿ⁺¹ = Mrhs · xⁿ + q̄ⁿ
//
//	where, per stream block, Mlhs/Mrhs carry:
//	  • the temporal term 1/(v·Δt) on the diagonal of both sides
//	  • the upwind spatial derivative, mu-scaled, implicit side only
//	  • ±½ (loss + self-scatter) on the diagonal
//	  • ∓½ diffusion second-difference on interior rows
//	  • ∓½ elastic coupling in every off-diagonal stream block
//	and q̄ carries the source term averaged over the bracketing caller
//	samples plus the boundary values.
//
// ✨ Key behaviors:
//
//   - Stability sub-stepping: when v·Δt/min(Δz) exceeds StabilityLimit,
//     the internal time axis is refined by doubling (≤ MaxRefinements);
//     outputs are retained only at the caller's samples.
//   - Factor once, solve many: the implicit operator is LU-factorized a
//     single time per Solve and reused for every internal sub-step.
//   - Boundary rows: the lowest altitude is pinned to its initial value
//     (Dirichlet) for every stream; the highest altitude is Dirichlet
//     from TopFlux for downward streams and a zero-gradient outflow
//     constraint for upward streams.
//   - Fail fast: configuration errors are sentinels detected before any
//     assembly; an unsatisfiable stability bound is ErrUnstable, never a
//     silent unstable step.
//
// ⚙️ Usage:
//
//	grid, _ := core.NewGrid(altitudes)
//	streams, _ := core.NewStreamSet([]float64{-0.89, -0.5, 0.5, 0.89})
//	hist, err := transport.Solve(&transport.Problem{
//	    Grid: grid, Streams: streams, Velocity: v,
//	    Loss: loss, Scatter: b2b, Initial: x0,
//	    TopFlux: top, Source: qc, Times: times,
//	}, nil)
//
// The solver is single-threaded and allocation-stable inside the
// stepping loop; independent energies are embarrassingly parallel and
// should be distributed by the caller, one Solve per energy.
//
// Complexity: one O(N³) factorization (N = nZ·nMu) plus O(N²) per
// internal sub-step for the triangular solves and the sparse
// explicit-side product.
package transport
