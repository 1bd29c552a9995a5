package blas1

import (
	"testing"
)

// MakeVector32 lays vals out logically in a fresh padded buffer with the
// given stride and fails the test on an invalid layout. For negative
// strides the buffer is filled so that logical index 0 lands on the highest
// physical address, matching the view convention.
func MakeVector32(t testing.TB, vals []float32, inc int) Vector32 {
	t.Helper()
	n := len(vals)
	v := Vector32{N: n, Inc: inc}
	if n == 0 {
		return v
	}
	if inc == 0 {
		t.Fatal("MakeVector32: zero increment needs an explicit shared cell")
	}
	v.Data = make([]float32, v.minLen())
	for i, val := range vals {
		v.Set(i, val)
	}
	return v
}

// MakeVector64 is the float64 counterpart of MakeVector32
func MakeVector64(t testing.TB, vals []float64, inc int) Vector64 {
	t.Helper()
	n := len(vals)
	v := Vector64{N: n, Inc: inc}
	if n == 0 {
		return v
	}
	if inc == 0 {
		t.Fatal("MakeVector64: zero increment needs an explicit shared cell")
	}
	v.Data = make([]float64, v.minLen())
	for i, val := range vals {
		v.Set(i, val)
	}
	return v
}

// Values32 reads a validated view back out in logical index order
func Values32(v Vector32) []float32 {
	out := make([]float32, v.N)
	for i := range out {
		out[i] = v.At(i)
	}
	return out
}

// Values64 is the float64 counterpart of Values32
func Values64(v Vector64) []float64 {
	out := make([]float64, v.N)
	for i := range out {
		out[i] = v.At(i)
	}
	return out
}
