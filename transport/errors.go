// Package transport: sentinel error set.
// Configuration errors are detected before any matrix assembly and are
// fatal to the current solve; they are never retried or degraded.
// Tests match these via errors.Is.

package transport

import "errors"

var (
	// ErrNilProblem indicates a nil Problem or a nil Grid/Streams/Initial field.
	ErrNilProblem = errors.New("transport: nil problem or missing grid/streams/initial state")

	// ErrBadVelocity indicates a non-positive or non-finite electron speed.
	ErrBadVelocity = errors.New("transport: velocity must be positive and finite")

	// ErrLossShape indicates a loss-coefficient array whose length differs
	// from the number of altitude samples.
	ErrLossShape = errors.New("transport: loss coefficient length must equal grid length")

	// ErrNegativeLoss indicates a negative total removal rate.
	ErrNegativeLoss = errors.New("transport: loss coefficient must be nonnegative")

	// ErrScatterShape indicates a scattering tensor whose dimensions do not
	// match the stream count and grid length.
	ErrScatterShape = errors.New("transport: scatter coefficient must be streams × streams × altitudes")

	// ErrInitialShape indicates an initial state sized for a different
	// (stream, altitude) layout than the problem's.
	ErrInitialShape = errors.New("transport: initial state shape mismatch")

	// ErrBoundaryShape indicates top-flux series missing for a downward
	// stream or sized differently from the time axis.
	ErrBoundaryShape = errors.New("transport: top flux series shape mismatch")

	// ErrSourceShape indicates a source term whose dimensions do not match
	// the stacked state length and the time axis.
	ErrSourceShape = errors.New("transport: source term shape mismatch")

	// ErrDiffusionShape indicates a per-stream diffusion array whose length
	// differs from the stream count.
	ErrDiffusionShape = errors.New("transport: diffusion coefficient length must equal stream count")

	// ErrBadTimeAxis indicates a time axis that is too short, descending,
	// or not uniformly spaced.
	ErrBadTimeAxis = errors.New("transport: time axis must be ascending, uniform, with at least two samples")

	// ErrUnstable indicates the CFL-type stability bound could not be
	// satisfied within the refinement budget; the configuration is
	// unstable and the solve is aborted rather than silently degraded.
	ErrUnstable = errors.New("transport: stability bound unsatisfiable within refinement budget")

	// ErrSingular indicates the implicit operator could not be factorized
	// or solved (singular or severely ill-conditioned system). There is no
	// automatic remediation: any fallback would change physical results.
	ErrSingular = errors.New("transport: implicit system is singular or ill-conditioned")
)
