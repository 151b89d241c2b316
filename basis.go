package heat1d

// Hat is the piecewise-linear shape function of node Index on a uniform mesh
// with spacing H.  It is 1 at x = H*Index, falls linearly to 0 at the two
// neighboring nodes, and vanishes outside [H*(Index-1), H*(Index+1)].
// H must be positive; meshes always derive it as Length/N.
type Hat struct {
	Index int
	H     float64
}

// Value returns the shape function evaluated at x.
func (fn Hat) Value(x float64) float64 {
	i, h := float64(fn.Index), fn.H
	switch {
	case x < h*(i-1) || x > h*(i+1):
		return 0
	case x < h*i:
		return x/h - i + 1
	default:
		return -x/h + i + 1
	}
}

// Deriv returns the derivative of the shape function at x: the step function
// +1/H on the rising half of the support, -1/H on the falling half, and 0
// outside.
func (fn Hat) Deriv(x float64) float64 {
	i, h := float64(fn.Index), fn.H
	switch {
	case x < h*(i-1) || x > h*(i+1):
		return 0
	case x < h*i:
		return 1 / h
	default:
		return -1 / h
	}
}
