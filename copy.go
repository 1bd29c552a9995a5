package blas1

// Scopy copies x into y: y[i] = x[i] for every logical index in increasing
// order. The vectors must have equal length; x is never written. With
// y.Inc == 0 every step writes the same cell and the last logical element
// of x wins.
func Scopy(x, y Vector32) error {
	if err := checkPair32("Scopy", x, y); err != nil {
		return err
	}
	n := x.N
	if x.Inc == 1 && y.Inc == 1 {
		copy(y.Data[:n], x.Data[:n])
		return nil
	}
	ix, iy := x.start(), y.start()
	for i := 0; i < n; i++ {
		y.Data[iy] = x.Data[ix]
		ix += x.Inc
		iy += y.Inc
	}
	return nil
}

// Dcopy copies x into y. Same contract as Scopy.
func Dcopy(x, y Vector64) error {
	if err := checkPair64("Dcopy", x, y); err != nil {
		return err
	}
	n := x.N
	if x.Inc == 1 && y.Inc == 1 {
		copy(y.Data[:n], x.Data[:n])
		return nil
	}
	ix, iy := x.start(), y.start()
	for i := 0; i < n; i++ {
		y.Data[iy] = x.Data[ix]
		ix += x.Inc
		iy += y.Inc
	}
	return nil
}
