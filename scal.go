package blas1

// Sscal scales x in place: x[i] = alpha * x[i] for every logical index in
// increasing order. alpha == 1 is not special-cased; the multiply always
// happens, keeping the cost model uniform (multiply by one is exact in
// IEEE-754, so the result is bit-identical anyway).
//
// With Inc == 0 all logical indices share one cell and each step multiplies
// the latest value, so n steps leave the cell at alpha^n times its original
// value.
func Sscal(alpha float32, x Vector32) error {
	if err := x.check("Sscal"); err != nil {
		return err
	}
	if x.Inc == 1 {
		xd := x.Data[:x.N]
		for i, v := range xd {
			xd[i] = alpha * v
		}
		return nil
	}
	ix := x.start()
	for i := 0; i < x.N; i++ {
		x.Data[ix] = alpha * x.Data[ix]
		ix += x.Inc
	}
	return nil
}

// Dscal scales x in place: x[i] = alpha * x[i]. Same contract as Sscal.
func Dscal(alpha float64, x Vector64) error {
	if err := x.check("Dscal"); err != nil {
		return err
	}
	if x.Inc == 1 {
		xd := x.Data[:x.N]
		for i, v := range xd {
			xd[i] = alpha * v
		}
		return nil
	}
	ix := x.start()
	for i := 0; i < x.N; i++ {
		x.Data[ix] = alpha * x.Data[ix]
		ix += x.Inc
	}
	return nil
}
