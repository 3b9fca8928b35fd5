// Package core defines the domain primitives shared by every solver in
// etransport: the altitude Grid, the pitch-angle StreamSet, and the
// typed State container that replaces positional array stacking.
//
// 🚀 What lives here?
//
//	• Grid      — immutable, strictly increasing altitude axis
//	• StreamSet — ordered discrete pitch-angle ordinates (directional cosines)
//	• State     — flux per (stream, altitude) pair at one time instant
//
// ✨ Conventions:
//
//   - All constructors validate; malformed inputs return sentinel errors
//     (ErrGridNotIncreasing, ErrZeroCosine, …) matched with errors.Is.
//   - State is stream-major, altitude-minor: the flux of stream s at
//     altitude index z sits at row s·nZ + z. Every matrix, boundary
//     series, and source term in the transport package follows the same
//     ordering, and State is the single source of truth for it.
//   - Grid and StreamSet are immutable after construction, so a single
//     instance may be shared by concurrent per-energy solves.
//
// Errors:
//
//	ErrGridTooShort      - fewer than MinGridLen altitude samples.
//	ErrGridNotIncreasing - altitude axis not strictly increasing.
//	ErrNoStreams         - empty directional-cosine set.
//	ErrZeroCosine        - a stream with mu == 0 (undefined upwind stencil).
//	ErrStateSize         - backing data does not match nMu·nZ.
package core
