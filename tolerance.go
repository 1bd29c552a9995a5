// Package blas1 tolerance-based verification for floating-point comparisons
package blas1

import (
	"fmt"
	"math"
)

// ToleranceConfig defines tolerance parameters for floating-point comparison
type ToleranceConfig struct {
	// AbsTol is the absolute tolerance for values near zero
	AbsTol float64

	// RelTol is the relative tolerance as a fraction of the larger value
	RelTol float64

	// ULPTol is the maximum allowed difference in ULPs (Units in Last Place)
	ULPTol int

	// CheckNaN determines if NaN values should be considered equal
	CheckNaN bool

	// CheckInf determines if Inf values should be considered equal
	CheckInf bool
}

// DefaultTolerance returns default tolerance configuration
func DefaultTolerance() ToleranceConfig {
	return ToleranceConfig{
		AbsTol:   1e-7,
		RelTol:   1e-5,
		ULPTol:   4,
		CheckNaN: true,
		CheckInf: true,
	}
}

// StrictTolerance returns strict tolerance configuration for high precision.
// One ULP is the bound the reference accumulation order guarantees.
func StrictTolerance() ToleranceConfig {
	return ToleranceConfig{
		AbsTol:   1e-9,
		RelTol:   1e-7,
		ULPTol:   1,
		CheckNaN: true,
		CheckInf: true,
	}
}

// RelaxedTolerance returns relaxed tolerance for accumulated operations
func RelaxedTolerance() ToleranceConfig {
	return ToleranceConfig{
		AbsTol:   1e-5,
		RelTol:   1e-3,
		ULPTol:   16,
		CheckNaN: true,
		CheckInf: true,
	}
}

// Float32NearEqual checks if two float32 values are equal within tolerance
func Float32NearEqual(a, b float32, tol ToleranceConfig) bool {
	if tol.CheckNaN && math.IsNaN(float64(a)) && math.IsNaN(float64(b)) {
		return true
	}

	if tol.CheckInf {
		if math.IsInf(float64(a), 1) && math.IsInf(float64(b), 1) {
			return true // Both +Inf
		}
		if math.IsInf(float64(a), -1) && math.IsInf(float64(b), -1) {
			return true // Both -Inf
		}
	}

	// Check if exactly equal (handles ±0)
	if a == b {
		return true
	}

	diff := math.Abs(float64(a) - float64(b))

	if diff <= tol.AbsTol {
		return true
	}

	larger := math.Max(math.Abs(float64(a)), math.Abs(float64(b)))
	if diff <= larger*tol.RelTol {
		return true
	}

	if tol.ULPTol > 0 {
		if Float32ULPDiff(a, b) <= tol.ULPTol {
			return true
		}
	}

	return false
}

// Float64NearEqual checks if two float64 values are equal within tolerance
func Float64NearEqual(a, b float64, tol ToleranceConfig) bool {
	// Handle special cases
	if tol.CheckNaN && math.IsNaN(a) && math.IsNaN(b) {
		return true
	}

	if tol.CheckInf {
		if math.IsInf(a, 1) && math.IsInf(b, 1) {
			return true // Both +Inf
		}
		if math.IsInf(a, -1) && math.IsInf(b, -1) {
			return true // Both -Inf
		}
	}

	// Check if exactly equal (handles ±0)
	if a == b {
		return true
	}

	diff := math.Abs(a - b)

	// Check absolute tolerance
	if diff <= tol.AbsTol {
		return true
	}

	// Check relative tolerance
	larger := math.Max(math.Abs(a), math.Abs(b))
	if diff <= larger*tol.RelTol {
		return true
	}

	// Check ULP difference
	if tol.ULPTol > 0 {
		if Float64ULPDiff(a, b) <= tol.ULPTol {
			return true
		}
	}

	return false
}

// Float32ULPDiff computes the difference in ULPs between two float32 values.
// Values of different sign (other than exact equality) are reported as
// maximally different.
func Float32ULPDiff(a, b float32) int {
	aBits := math.Float32bits(a)
	bBits := math.Float32bits(b)

	if (aBits^bBits)&(1<<31) != 0 {
		if a == b {
			return 0 // +0 and -0
		}
		return math.MaxInt32
	}

	var diff uint32
	if aBits > bBits {
		diff = aBits - bBits
	} else {
		diff = bBits - aBits
	}
	return int(diff)
}

// Float64ULPDiff computes the difference in ULPs between two float64 values
func Float64ULPDiff(a, b float64) int {
	aBits := math.Float64bits(a)
	bBits := math.Float64bits(b)

	if (aBits^bBits)&(1<<63) != 0 {
		if a == b {
			return 0 // +0 and -0
		}
		return math.MaxInt32
	}

	var diff uint64
	if aBits > bBits {
		diff = aBits - bBits
	} else {
		diff = bBits - aBits
	}
	if diff > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(diff)
}

// VerificationResult summarizes an array comparison
type VerificationResult struct {
	MaxAbsError float64
	MaxRelError float64
	MaxULPError int
	NumErrors   int
	TotalItems  int
	FirstError  int // Index of first error, -1 if none
}

// VerifyFloat32Array compares two float32 arrays and returns detailed results
func VerifyFloat32Array(expected, actual []float32, tol ToleranceConfig) VerificationResult {
	result := VerificationResult{
		TotalItems: len(expected),
		FirstError: -1,
	}

	if len(expected) != len(actual) {
		result.NumErrors = len(expected)
		return result
	}

	for i := range expected {
		if !Float32NearEqual(expected[i], actual[i], tol) {
			result.record(i, float64(expected[i]), float64(actual[i]),
				Float32ULPDiff(expected[i], actual[i]))
		}
	}

	return result
}

// VerifyFloat64Array compares two float64 arrays and returns detailed results
func VerifyFloat64Array(expected, actual []float64, tol ToleranceConfig) VerificationResult {
	result := VerificationResult{
		TotalItems: len(expected),
		FirstError: -1,
	}

	if len(expected) != len(actual) {
		result.NumErrors = len(expected)
		return result
	}

	for i := range expected {
		if !Float64NearEqual(expected[i], actual[i], tol) {
			result.record(i, expected[i], actual[i],
				Float64ULPDiff(expected[i], actual[i]))
		}
	}

	return result
}

func (r *VerificationResult) record(i int, expected, actual float64, ulpDiff int) {
	r.NumErrors++
	if r.FirstError == -1 {
		r.FirstError = i
	}

	absDiff := math.Abs(expected - actual)
	if absDiff > r.MaxAbsError {
		r.MaxAbsError = absDiff
	}

	// Relative error (avoid division by zero)
	if expected != 0 {
		relDiff := absDiff / math.Abs(expected)
		if relDiff > r.MaxRelError {
			r.MaxRelError = relDiff
		}
	}

	if ulpDiff > r.MaxULPError {
		r.MaxULPError = ulpDiff
	}
}

// IsAcceptable returns true if the verification result is within tolerance
func (r VerificationResult) IsAcceptable(tol ToleranceConfig) bool {
	return r.NumErrors == 0 ||
		(r.MaxAbsError <= tol.AbsTol &&
			r.MaxRelError <= tol.RelTol &&
			r.MaxULPError <= tol.ULPTol)
}

// String formats the verification result for display
func (r VerificationResult) String() string {
	if r.NumErrors == 0 {
		return "PASS: All values match within tolerance"
	}

	errorRate := float64(r.NumErrors) / float64(r.TotalItems) * 100
	return fmt.Sprintf("FAIL: %d/%d values differ (%.2f%%)\n"+
		"  Max absolute error: %e\n"+
		"  Max relative error: %e\n"+
		"  Max ULP difference: %d\n"+
		"  First error at index: %d",
		r.NumErrors, r.TotalItems, errorRate,
		r.MaxAbsError, r.MaxRelError, r.MaxULPError,
		r.FirstError)
}

// KernelVerifier runs a strided kernel against a dense reference
// implementation and compares the mutated results.
type KernelVerifier struct {
	Name      string
	Reference func([]float32) []float32
	Kernel    func(Vector32) error
	Tolerance ToleranceConfig
}

// Verify runs both implementations on a copy of input and compares results
func (kv KernelVerifier) Verify(input []float32) (VerificationResult, error) {
	expected := kv.Reference(append([]float32(nil), input...))

	actual := append([]float32(nil), input...)
	err := kv.Kernel(Vector32{N: len(actual), Inc: 1, Data: actual})
	if err != nil {
		return VerificationResult{}, err
	}

	return VerifyFloat32Array(expected, actual, kv.Tolerance), nil
}
