package core

import "errors"

// Sentinel errors for core domain types.
var (
	// ErrGridTooShort indicates the altitude axis has fewer than MinGridLen samples.
	ErrGridTooShort = errors.New("core: grid must have at least three altitude samples")

	// ErrGridNotIncreasing indicates the altitude axis is not strictly increasing.
	ErrGridNotIncreasing = errors.New("core: grid must be strictly increasing")

	// ErrNoStreams indicates an empty set of directional cosines.
	ErrNoStreams = errors.New("core: stream set must contain at least one stream")

	// ErrZeroCosine indicates a stream with a zero directional cosine,
	// for which the upwind differencing stencil is undefined.
	ErrZeroCosine = errors.New("core: directional cosine must be nonzero")

	// ErrStateSize indicates backing data whose length is not nMu·nZ.
	ErrStateSize = errors.New("core: state data length must equal streams × altitudes")
)
