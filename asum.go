package blas1

import (
	"math"
)

// abs32 clears the sign bit. Exact for every input, including NaN,
// infinities and signed zero.
func abs32(x float32) float32 {
	return math.Float32frombits(math.Float32bits(x) &^ (1 << 31))
}

// Sasum returns the sum of the absolute values of the elements of x,
// accumulated left to right in float32 with no widening. An empty vector
// sums to +0. NaN and Inf inputs propagate per IEEE-754.
func Sasum(x Vector32) (float32, error) {
	if err := x.check("Sasum"); err != nil {
		return 0, err
	}
	var sum float32
	if x.Inc == 1 {
		for _, v := range x.Data[:x.N] {
			sum += abs32(v)
		}
		return sum, nil
	}
	ix := x.start()
	for i := 0; i < x.N; i++ {
		sum += abs32(x.Data[ix])
		ix += x.Inc
	}
	return sum, nil
}

// Dasum returns the sum of the absolute values of the elements of x,
// accumulated left to right in float64. An empty vector sums to +0.
func Dasum(x Vector64) (float64, error) {
	if err := x.check("Dasum"); err != nil {
		return 0, err
	}
	var sum float64
	if x.Inc == 1 {
		for _, v := range x.Data[:x.N] {
			sum += math.Abs(v)
		}
		return sum, nil
	}
	ix := x.start()
	for i := 0; i < x.N; i++ {
		sum += math.Abs(x.Data[ix])
		ix += x.Inc
	}
	return sum, nil
}
