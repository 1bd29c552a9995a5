package blas1

// Saxpy computes y = alpha*x + y in place, element-wise in increasing
// logical index order. The vectors must have equal length. alpha == 0 is
// not special-cased; the multiply-add always happens, keeping the cost
// model uniform with Sscal.
func Saxpy(alpha float32, x, y Vector32) error {
	if err := checkPair32("Saxpy", x, y); err != nil {
		return err
	}
	n := x.N
	if x.Inc == 1 && y.Inc == 1 {
		xd, yd := x.Data[:n], y.Data[:n]
		for i, v := range xd {
			yd[i] += alpha * v
		}
		return nil
	}
	ix, iy := x.start(), y.start()
	for i := 0; i < n; i++ {
		y.Data[iy] += alpha * x.Data[ix]
		ix += x.Inc
		iy += y.Inc
	}
	return nil
}

// Daxpy computes y = alpha*x + y in place. Same contract as Saxpy.
func Daxpy(alpha float64, x, y Vector64) error {
	if err := checkPair64("Daxpy", x, y); err != nil {
		return err
	}
	n := x.N
	if x.Inc == 1 && y.Inc == 1 {
		xd, yd := x.Data[:n], y.Data[:n]
		for i, v := range xd {
			yd[i] += alpha * v
		}
		return nil
	}
	ix, iy := x.start(), y.start()
	for i := 0; i < n; i++ {
		y.Data[iy] += alpha * x.Data[ix]
		ix += x.Inc
		iy += y.Inc
	}
	return nil
}
