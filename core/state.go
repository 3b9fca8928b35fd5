package core

// State holds the flux of every (stream, altitude) pair at one time
// instant. It is the typed replacement for the bare stacked array: the
// layout rule lives here, in Index, and nowhere else.
//
// Backing layout is stream-major, altitude-minor — stream s occupies the
// contiguous rows [s·nZ, (s+1)·nZ). System matrices, boundary series and
// source terms all follow this rule.
type State struct {
	nMu, nZ int
	data    []float64
}

// NewState returns a zero-valued State for nMu streams over nZ altitudes.
func NewState(nMu, nZ int) *State {
	return &State{nMu: nMu, nZ: nZ, data: make([]float64, nMu*nZ)}
}

// NewStateFrom wraps a copy of data as a State.
//
// Errors:
//   - ErrStateSize — len(data) != nMu·nZ.
func NewStateFrom(data []float64, nMu, nZ int) (*State, error) {
	if len(data) != nMu*nZ {
		return nil, ErrStateSize
	}
	c := make([]float64, len(data))
	copy(c, data)

	return &State{nMu: nMu, nZ: nZ, data: c}, nil
}

// Index returns the stacked row of stream s at altitude index z.
func (st *State) Index(s, z int) int { return s*st.nZ + z }

// At returns the flux of stream s at altitude index z.
func (st *State) At(s, z int) float64 { return st.data[s*st.nZ+z] }

// Set assigns the flux of stream s at altitude index z.
func (st *State) Set(s, z int, v float64) { st.data[s*st.nZ+z] = v }

// NumStreams returns nMu.
func (st *State) NumStreams() int { return st.nMu }

// NumAltitudes returns nZ.
func (st *State) NumAltitudes() int { return st.nZ }

// Len returns nMu·nZ, the stacked vector length.
func (st *State) Len() int { return len(st.data) }

// Raw exposes the backing slice in stacked order. The caller must not
// hold the slice across a mutation of the State.
func (st *State) Raw() []float64 { return st.data }

// Clone returns a deep copy of the State.
func (st *State) Clone() *State {
	c := make([]float64, len(st.data))
	copy(c, st.data)

	return &State{nMu: st.nMu, nZ: st.nZ, data: c}
}
