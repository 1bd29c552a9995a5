package blas1

import (
	"fmt"
)

// Vector32 describes a strided view over a caller-owned float32 buffer.
// Logical element i (0 <= i < N) lives at Data[start + i*Inc], where start
// is 0 for Inc >= 0 and (N-1)*(-Inc) for Inc < 0, matching the reference
// BLAS convention that a negative increment walks the buffer backward with
// logical index 0 on the highest physical address.
//
// A Vector32 does not own or allocate memory; it borrows Data for the
// duration of a kernel call only. No kernel retains a view beyond the call.
//
// An increment of zero is legal: every logical index maps to the same cell,
// and mutating kernels perform exactly N sequential accesses to it, each
// step observing the value written by the previous step.
type Vector32 struct {
	N    int       // Number of logical elements
	Inc  int       // Stride between logical elements, may be <= 0
	Data []float32 // Backing buffer
}

// Vector64 is the float64 counterpart of Vector32.
type Vector64 struct {
	N    int
	Inc  int
	Data []float64
}

// start returns the buffer index of logical element 0.
func (v Vector32) start() int {
	if v.Inc < 0 {
		return (v.N - 1) * -v.Inc
	}
	return 0
}

func (v Vector64) start() int {
	if v.Inc < 0 {
		return (v.N - 1) * -v.Inc
	}
	return 0
}

// minLen returns the smallest buffer length that satisfies every access
// implied by N and Inc. Only meaningful for N > 0.
func (v Vector32) minLen() int {
	inc := v.Inc
	if inc < 0 {
		inc = -inc
	}
	return 1 + (v.N-1)*inc
}

func (v Vector64) minLen() int {
	inc := v.Inc
	if inc < 0 {
		inc = -inc
	}
	return 1 + (v.N-1)*inc
}

// At returns the value of logical element i. The view must have been
// validated; i outside [0, N) is a caller bug and panics via the runtime
// bounds check, it is not a recoverable error.
func (v Vector32) At(i int) float32 {
	return v.Data[v.start()+i*v.Inc]
}

func (v Vector64) At(i int) float64 {
	return v.Data[v.start()+i*v.Inc]
}

// Set writes logical element i. Same caller contract as At.
func (v Vector32) Set(i int, x float32) {
	v.Data[v.start()+i*v.Inc] = x
}

func (v Vector64) Set(i int, x float64) {
	v.Data[v.start()+i*v.Inc] = x
}

// check validates the view before any memory access. A zero-length view is
// always valid and addresses nothing.
func (v Vector32) check(op string) error {
	if v.N < 0 {
		return NewDimensionError(op, fmt.Sprintf("negative vector length: %d", v.N))
	}
	if v.N == 0 {
		return nil
	}
	if len(v.Data) < v.minLen() {
		return NewBoundsError(op, fmt.Sprintf("buffer too small: need %d elements for n=%d inc=%d, have %d",
			v.minLen(), v.N, v.Inc, len(v.Data)))
	}
	return nil
}

func (v Vector64) check(op string) error {
	if v.N < 0 {
		return NewDimensionError(op, fmt.Sprintf("negative vector length: %d", v.N))
	}
	if v.N == 0 {
		return nil
	}
	if len(v.Data) < v.minLen() {
		return NewBoundsError(op, fmt.Sprintf("buffer too small: need %d elements for n=%d inc=%d, have %d",
			v.minLen(), v.N, v.Inc, len(v.Data)))
	}
	return nil
}

// checkPair32 validates two views that must address the same number of
// logical elements. All failures are detected before either buffer is read
// or written.
func checkPair32(op string, x, y Vector32) error {
	if err := x.check(op); err != nil {
		return err
	}
	if err := y.check(op); err != nil {
		return err
	}
	if x.N != y.N {
		return NewDimensionError(op, fmt.Sprintf("mismatched vector lengths: x.N=%d y.N=%d", x.N, y.N))
	}
	return nil
}

func checkPair64(op string, x, y Vector64) error {
	if err := x.check(op); err != nil {
		return err
	}
	if err := y.check(op); err != nil {
		return err
	}
	if x.N != y.N {
		return NewDimensionError(op, fmt.Sprintf("mismatched vector lengths: x.N=%d y.N=%d", x.N, y.N))
	}
	return nil
}
