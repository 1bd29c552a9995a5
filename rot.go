package blas1

// Srot applies a plane rotation to the vector pair (x, y) in place:
//
//	x[i] = c*x[i] + s*y[i]
//	y[i] = c*y[i] - s*x[i]
//
// for every logical index in increasing order. Both old values are read
// before either new value is written, so the transform stays well-defined
// when x and y alias the same buffer through crafted views.
//
// c and s are not validated; if c*c+s*s != 1 the call simply performs the
// affine transform above. Mismatched lengths fail with a dimension error
// before either buffer is touched.
func Srot(x, y Vector32, c, s float32) error {
	if err := checkPair32("Srot", x, y); err != nil {
		return err
	}
	n := x.N
	if x.Inc == 1 && y.Inc == 1 {
		xd, yd := x.Data[:n], y.Data[:n]
		for i := 0; i < n; i++ {
			xi, yi := xd[i], yd[i]
			xd[i] = c*xi + s*yi
			yd[i] = c*yi - s*xi
		}
		return nil
	}
	ix, iy := x.start(), y.start()
	for i := 0; i < n; i++ {
		xi, yi := x.Data[ix], y.Data[iy]
		x.Data[ix] = c*xi + s*yi
		y.Data[iy] = c*yi - s*xi
		ix += x.Inc
		iy += y.Inc
	}
	return nil
}

// Drot applies a plane rotation to the vector pair (x, y) in place.
// Same contract as Srot.
func Drot(x, y Vector64, c, s float64) error {
	if err := checkPair64("Drot", x, y); err != nil {
		return err
	}
	n := x.N
	if x.Inc == 1 && y.Inc == 1 {
		xd, yd := x.Data[:n], y.Data[:n]
		for i := 0; i < n; i++ {
			xi, yi := xd[i], yd[i]
			xd[i] = c*xi + s*yi
			yd[i] = c*yi - s*xi
		}
		return nil
	}
	ix, iy := x.start(), y.start()
	for i := 0; i < n; i++ {
		xi, yi := x.Data[ix], y.Data[iy]
		x.Data[ix] = c*xi + s*yi
		y.Data[iy] = c*yi - s*xi
		ix += x.Inc
		iy += y.Inc
	}
	return nil
}
