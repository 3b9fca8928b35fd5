package transport_test

import (
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/ionolab/etransport/core"
	"github.com/ionolab/etransport/transport"
)

// benchmarkSolve runs one full solve of nMu streams over nZ altitudes
// and nT output samples with dense scattering coupling. It resets the
// timer after building the fixture and fails on unexpected errors.
func benchmarkSolve(b *testing.B, nZ, nMu, nT int) {
	z := make([]float64, nZ)
	for i := range z {
		z[i] = float64(i) * 1000
	}
	grid, err := core.NewGrid(z)
	if err != nil {
		b.Fatalf("grid: %v", err)
	}

	mu := make([]float64, nMu)
	for i := range mu {
		// half downward, half upward, no zero cosine
		mu[i] = float64(2*i-nMu+1) / float64(nMu)
		if mu[i] == 0 {
			mu[i] = 0.01
		}
	}
	streams, err := core.NewStreamSet(mu)
	if err != nil {
		b.Fatalf("streams: %v", err)
	}

	loss := make([]float64, nZ)
	scatter := make([][][]float64, nMu)
	for i := range scatter {
		scatter[i] = make([][]float64, nMu)
		for j := range scatter[i] {
			prof := make([]float64, nZ)
			for k := range prof {
				prof[k] = 1e-5
			}
			scatter[i][j] = prof
		}
	}

	top := make([][]float64, nMu)
	for i := range top {
		top[i] = make([]float64, nT)
		for j := range top[i] {
			top[i][j] = 1
		}
	}

	times := make([]float64, nT)
	for i := range times {
		times[i] = float64(i) * 1e-4
	}

	p := &transport.Problem{
		Grid:     grid,
		Streams:  streams,
		Velocity: 1e7,
		Loss:     loss,
		Scatter:  scatter,
		Initial:  core.NewState(nMu, nZ),
		TopFlux:  top,
		Source:   mat.NewDense(nZ*nMu, nT, nil),
		Times:    times,
	}

	b.ResetTimer() // ignore fixture setup
	for i := 0; i < b.N; i++ {
		if _, err := transport.Solve(p, nil); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

// BenchmarkSolve_Small benchmarks a 2-stream, 20-altitude column.
func BenchmarkSolve_Small(b *testing.B) {
	benchmarkSolve(b, 20, 2, 10)
}

// BenchmarkSolve_Medium benchmarks a 6-stream, 60-altitude column,
// roughly an auroral production run for one energy bin.
func BenchmarkSolve_Medium(b *testing.B) {
	benchmarkSolve(b, 60, 6, 20)
}
