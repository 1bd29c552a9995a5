package blas1

// Sdot returns the dot product of x and y, accumulated left to right in
// float32 with no widening. The vectors must have equal length; neither is
// written. An empty pair yields +0.
func Sdot(x, y Vector32) (float32, error) {
	if err := checkPair32("Sdot", x, y); err != nil {
		return 0, err
	}
	n := x.N
	var sum float32
	if x.Inc == 1 && y.Inc == 1 {
		yd := y.Data[:n]
		for i, v := range x.Data[:n] {
			sum += v * yd[i]
		}
		return sum, nil
	}
	ix, iy := x.start(), y.start()
	for i := 0; i < n; i++ {
		sum += x.Data[ix] * y.Data[iy]
		ix += x.Inc
		iy += y.Inc
	}
	return sum, nil
}

// Ddot returns the dot product of x and y, accumulated left to right in
// float64. Same contract as Sdot.
func Ddot(x, y Vector64) (float64, error) {
	if err := checkPair64("Ddot", x, y); err != nil {
		return 0, err
	}
	n := x.N
	var sum float64
	if x.Inc == 1 && y.Inc == 1 {
		yd := y.Data[:n]
		for i, v := range x.Data[:n] {
			sum += v * yd[i]
		}
		return sum, nil
	}
	ix, iy := x.start(), y.start()
	for i := 0; i < n; i++ {
		sum += x.Data[ix] * y.Data[iy]
		ix += x.Inc
		iy += y.Inc
	}
	return sum, nil
}
