// Package triplet implements a coordinate-format (COO) sparse matrix
// used to assemble the transport system operators.
//
// The builder is append-only: every stencil contribution is one
// (row, col, value) entry, duplicates are implicitly summed, and the
// block structure of the assembled system stays visible in the order of
// appends. The explicit-side operator is applied directly with MulVec;
// the implicit-side operator is densified once with ToDense and handed
// to an LU factorization.
//
// Out-of-range indices panic: assembly indices are computed by the
// solver, so a bad index is a programmer error, not a user error.
package triplet
