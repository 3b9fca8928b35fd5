package core

// StreamSet is an ordered set of discrete pitch-angle ordinates.
//
// Ordering is significant: stream index s owns rows [s·nZ, (s+1)·nZ) of
// every stacked vector and matrix block. The sign of a stream's
// directional cosine selects its upwind stencil and its top-of-domain
// boundary condition — downward streams (mu < 0) receive a prescribed
// flux, upward streams (mu > 0) an outflow (zero-gradient) constraint.
//
// A StreamSet is immutable after construction and safe to share across
// concurrent per-energy solves.
type StreamSet struct {
	mu []float64
}

// NewStreamSet validates and copies the directional cosines.
//
// Errors:
//   - ErrNoStreams  — empty input.
//   - ErrZeroCosine — any mu[i] == 0; the upwind scheme is undefined for
//     a zero cosine, so it is rejected rather than special-cased.
//
// Complexity: O(n).
func NewStreamSet(mu []float64) (*StreamSet, error) {
	if len(mu) == 0 {
		return nil, ErrNoStreams
	}
	for _, m := range mu {
		if m == 0 {
			return nil, ErrZeroCosine
		}
	}
	c := make([]float64, len(mu))
	copy(c, mu)

	return &StreamSet{mu: c}, nil
}

// Len returns the number of streams. Complexity: O(1).
func (s *StreamSet) Len() int { return len(s.mu) }

// Mu returns the directional cosine of stream i. Complexity: O(1).
func (s *StreamSet) Mu(i int) float64 { return s.mu[i] }

// Upward reports whether stream i propagates toward higher altitude.
func (s *StreamSet) Upward(i int) bool { return s.mu[i] > 0 }

// Downward reports whether stream i propagates toward lower altitude.
func (s *StreamSet) Downward(i int) bool { return s.mu[i] < 0 }

// Cosines returns a copy of the ordered directional cosines.
func (s *StreamSet) Cosines() []float64 {
	c := make([]float64, len(s.mu))
	copy(c, s.mu)

	return c
}
