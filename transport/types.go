// Package transport: domain-facing types for one per-energy solve.
// Options live in options.go, errors in errors.go per the module
// conventions.

package transport

import (
	"gonum.org/v1/gonum/mat"

	"github.com/ionolab/etransport/core"
)

// Problem describes one energy bin's transport solve. All arrays follow
// the stream-major, altitude-minor stacking rule of core.State.
//
// Fields:
//   - Grid     — altitude axis (≥ core.MinGridLen samples).
//   - Streams  — ordered pitch-angle ordinates with nonzero cosines.
//   - Velocity — electron speed for this energy bin, m/s, positive.
//   - Loss     — per-altitude total removal rate, len == Grid.Len(),
//     nonnegative (collision cross-section × density).
//   - Scatter  — elastic redistribution rates indexed [from][to][z].
//     Diagonal entries [i][i] fold into the loss pathway of stream i and
//     never appear as explicit coupling. Nil means no scattering.
//   - Initial  — flux at Times[0] for every (stream, altitude) pair. The
//     lowest-altitude values are also the pinned Dirichlet bottom values
//     for the whole solve.
//   - TopFlux  — prescribed top-of-domain flux per stream per caller
//     time sample, indexed [stream][timeIdx]. Consulted only for
//     downward streams; upward streams carry a zero-gradient top
//     constraint and their series (nil allowed) is ignored.
//   - Source   — per-row, per-caller-sample production term,
//     (Grid.Len()·Streams.Len()) × len(Times). Nil means no production.
//   - Times    — caller (output) time axis: ascending, uniform spacing,
//     at least two samples. Outputs are retained exactly at these
//     samples regardless of internal sub-stepping.
type Problem struct {
	Grid     *core.Grid
	Streams  *core.StreamSet
	Velocity float64
	Loss     []float64
	Scatter  [][][]float64
	Initial  *core.State
	TopFlux  [][]float64
	Source   *mat.Dense
	Times    []float64
}

// History is the retained flux history: one column per caller time
// sample, rows in stacked (stream-major, altitude-minor) order. Values
// are number-flux per unit area, time and solid angle; dividing by
// solid angle and energy-bin width is the consumer's job.
type History struct {
	times   []float64
	nMu, nZ int
	data    *mat.Dense
}

func newHistory(times []float64, nMu, nZ int) *History {
	ts := make([]float64, len(times))
	copy(ts, times)

	return &History{
		times: ts,
		nMu:   nMu,
		nZ:    nZ,
		data:  mat.NewDense(nMu*nZ, len(times), nil),
	}
}

// setColumn retains x at time index t. LU back-substitution can round
// an exactly-zero flux to IEEE −0; retained columns store canonical
// zeros so formatted output is stable.
func (h *History) setColumn(t int, x []float64) {
	for i, v := range x {
		if v == 0 {
			x[i] = 0
		}
	}
	h.data.SetCol(t, x)
}

// Times returns a copy of the output time axis.
func (h *History) Times() []float64 {
	ts := make([]float64, len(h.times))
	copy(ts, h.times)

	return ts
}

// NumStreams returns the stream count.
func (h *History) NumStreams() int { return h.nMu }

// NumAltitudes returns the altitude-sample count.
func (h *History) NumAltitudes() int { return h.nZ }

// Len returns the number of retained time samples.
func (h *History) Len() int { return len(h.times) }

// At returns the flux of stream s at altitude index z and time index t.
func (h *History) At(s, z, t int) float64 { return h.data.At(s*h.nZ+z, t) }

// StateAt returns the full state at time index t as a typed container.
func (h *History) StateAt(t int) *core.State {
	st := core.NewState(h.nMu, h.nZ)
	mat.Col(st.Raw(), t, h.data)

	return st
}

// Data returns a dense copy of the whole history, rows stacked
// stream-major, one column per time sample — the layout downstream
// consumers index directly.
func (h *History) Data() *mat.Dense { return mat.DenseCopyOf(h.data) }

// Top returns stream s's top-of-domain flux across all time samples.
func (h *History) Top(s int) []float64 {
	row := make([]float64, len(h.times))
	mat.Row(row, s*h.nZ+h.nZ-1, h.data)

	return row
}
