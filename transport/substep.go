package transport

const (
	// StabilityLimit is the largest Courant number v·Δt/min(Δz) the
	// internal step is allowed to carry. The implicit scheme does not blow
	// up beyond it, but accuracy and conditioning degrade; refining keeps
	// headroom without forcing correctness-limiting step sizes.
	StabilityLimit = 64.0

	// MaxRefinements is the refinement budget: the internal step may be
	// halved at most this many times before the solve is declared
	// unstable.
	MaxRefinements = 22
)

// RefinementFactor selects the sub-stepping factor for one solve: the
// smallest power of two f such that velocity·dt/(f·minDz) no longer
// exceeds StabilityLimit. Outputs are then retained every f-th internal
// step.
//
// RefinementFactor is pure: it depends only on its arguments.
//
// Errors:
//   - ErrUnstable — the bound is still violated after MaxRefinements
//     halvings; the configuration must be rejected, not integrated.
func RefinementFactor(velocity, minDz, dt float64) (int, error) {
	factor := 1
	for refinements := 0; velocity*dt/(float64(factor)*minDz) > StabilityLimit; refinements++ {
		if refinements == MaxRefinements {
			return 0, ErrUnstable
		}
		factor *= 2
	}

	return factor, nil
}
