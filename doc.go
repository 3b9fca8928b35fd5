// Package etransport models time-dependent transport of energetic
// electrons along a field-aligned atmospheric column, discretized into
// pitch-angle streams (discrete ordinates) and solved per electron
// energy with an implicit multistream scheme.
//
// 🚀 What is etransport?
//
//	A numerical kernel that advances electron number-flux through:
//		• Advection: angle-dependent streaming along altitude (upwind)
//		• Degradation: first-order collisional loss per altitude
//		• Redistribution: stream-to-stream elastic-scattering coupling
//		• Boundary forcing: a time-varying top-of-domain electron flux
//
// ✨ Why choose etransport?
//
//   - Implicit stepping – Crank–Nicolson operators, one factorization per energy
//   - Stability-aware – automatic CFL-driven sub-stepping of the time axis
//   - Fail-fast – configuration errors are sentinels, caught before assembly
//   - Embarrassingly parallel across energies – drive one Solve per worker
//
// Under the hood, everything is organized under three subpackages:
//
//	core/      — altitude Grid, pitch-angle StreamSet and the typed State container
//	triplet/   — coordinate-format sparse matrix used for system assembly
//	transport/ — the implicit solver: assembly, sub-stepping, history
//
// Quick sketch of one energy's solve:
//
//	    TopFlux(t) ──▶ ┌─────────────┐
//	                   │  Mlhs·xⁿ⁺¹ = │ ──▶ flux history
//	    Source(z,t) ─▶ │  Mrhs·xⁿ + q │     (z × stream × t)
//	                   └─────────────┘
//
// Independent energy bins share no mutable state; distribute them across
// goroutines from your own driver.
//
//	go get github.com/ionolab/etransport
package etransport
