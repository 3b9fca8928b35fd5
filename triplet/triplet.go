// SPDX-License-Identifier: BSD-3-Clause
//
// The coordinate storage and multiply kernels are adapted from the
// gonum iterative-solvers prototype:
// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license.

package triplet

import "gonum.org/v1/gonum/mat"

type entry struct {
	i, j int
	v    float64
}

// Matrix is a sparse matrix in coordinate (triplet) format.
// Entries with the same (i, j) accumulate.
type Matrix struct {
	r, c int
	data []entry
}

// New returns an empty r×c triplet matrix.
func New(r, c int) *Matrix {
	return &Matrix{r: r, c: c}
}

// Dims returns the matrix dimensions.
func (m *Matrix) Dims() (r, c int) { return m.r, m.c }

// NNZ returns the number of stored entries (duplicates counted).
func (m *Matrix) NNZ() int { return len(m.data) }

// Append records value v at (i, j). Zero values are skipped so stencil
// builders may append unconditionally.
func (m *Matrix) Append(i, j int, v float64) {
	if i < 0 || m.r <= i {
		panic("triplet: row index out of range")
	}
	if j < 0 || m.c <= j {
		panic("triplet: column index out of range")
	}
	if v == 0 {
		return
	}
	m.data = append(m.data, entry{i, j, v})
}

// MulVec stores A·x into dst.
func (m *Matrix) MulVec(dst, x []float64) {
	if m.c != len(x) {
		panic("triplet: dimension mismatch")
	}
	if m.r != len(dst) {
		panic("triplet: dimension mismatch")
	}
	for i := range dst {
		dst[i] = 0
	}
	for _, aij := range m.data {
		dst[aij.i] += aij.v * x[aij.j]
	}
}

// MulVecAdd accumulates A·x into dst without zeroing it first.
func (m *Matrix) MulVecAdd(dst, x []float64) {
	if m.c != len(x) {
		panic("triplet: dimension mismatch")
	}
	if m.r != len(dst) {
		panic("triplet: dimension mismatch")
	}
	for _, aij := range m.data {
		dst[aij.i] += aij.v * x[aij.j]
	}
}

// ToDense materializes the matrix as a *mat.Dense, summing duplicate
// entries. Used once per solve to hand the implicit operator to an LU
// factorization.
func (m *Matrix) ToDense() *mat.Dense {
	d := mat.NewDense(m.r, m.c, nil)
	for _, aij := range m.data {
		d.Set(aij.i, aij.j, d.At(aij.i, aij.j)+aij.v)
	}

	return d
}
