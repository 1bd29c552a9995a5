// Package blas1 provides reference Level 1 BLAS kernels for single- and
// double-precision real vectors: asum, scal, rot, copy, axpy and dot.
//
// Vectors are described by strided views (Vector32, Vector64) over
// caller-owned slices, supporting positive, negative and zero increments
// with the classic BLAS addressing convention. Kernels validate dimensions
// and bounds before touching memory, never allocate, and use a fixed
// left-to-right accumulation order so results are bit-reproducible.
//
// Example usage:
//
//	x := blas1.Vector32{N: 3, Inc: 1, Data: []float32{-1, -2, 3}}
//	sum, err := blas1.Sasum(x) // 6
//
// Numeric edge values (NaN, Inf, signed zero) are not errors; they
// propagate per IEEE-754 arithmetic. The only failure conditions are
// caller bugs: negative lengths, undersized buffers, and mismatched
// vector lengths.
package blas1
