package transport

// LowerBoundaryMode selects the lower-boundary handling of older solver
// revisions.
//
// Deprecated: the parameter is retained for interface compatibility but
// has no effect; the lowest altitude is always a Dirichlet row pinned to
// the initial value. Any value is accepted and ignored.
type LowerBoundaryMode int

const (
	// LowerBoundaryDefault is the (only) effective lower-boundary mode.
	LowerBoundaryDefault LowerBoundaryMode = iota

	// LowerBoundaryLegacy is accepted for backward compatibility.
	//
	// Deprecated: has no effect.
	LowerBoundaryLegacy
)

// Options configures a transport solve.
//
// Fields:
//   - Diffusion — optional per-stream scalar multiplying a
//     second-difference (velocity-diffusion) operator on interior rows.
//     Nil or empty means zero for every stream; otherwise the length
//     must equal the stream count. The operator never touches boundary
//     rows: the Dirichlet constraint dominates at the bottom and every
//     top row is overwritten by its own boundary constraint.
//   - LowerBoundaryMode — deprecated no-op, see LowerBoundaryMode.
type Options struct {
	Diffusion         []float64
	LowerBoundaryMode LowerBoundaryMode
}

// DefaultOptions returns the zero-diffusion defaults.
func DefaultOptions() Options {
	return Options{}
}
