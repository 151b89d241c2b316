package heat1d

import "fmt"

// Conductivity is the material coefficient k(x) of the conduction term.
type Conductivity interface {
	// At returns the conductivity at position x, or ErrOutOfDomain when the
	// material is not defined there.
	At(x float64) (float64, error)
}

// Const is a conductivity with the same value everywhere.
type Const float64

func (c Const) At(x float64) (float64, error) { return float64(c), nil }

// PiecewiseConst is a piecewise-constant conductivity taking the value K[i]
// on the interval [X[i], X[i+1]].  X must be ascending with
// len(X) == len(K)+1.  A position shared by two intervals resolves to the
// lower one.  Positions outside [X[0], X[len(X)-1]] are out of domain.
type PiecewiseConst struct {
	X []float64
	K []float64
}

func (p *PiecewiseConst) At(x float64) (float64, error) {
	for i := 0; i < len(p.X)-1; i++ {
		if p.X[i] <= x && x <= p.X[i+1] {
			return p.K[i], nil
		}
	}
	return 0, fmt.Errorf("%w: x=%v outside [%v, %v]", ErrOutOfDomain, x, p.X[0], p.X[len(p.X)-1])
}

// Valer is a position-dependent scalar, used for volumetric source terms.
type Valer interface {
	Val(x float64) float64
}

// ConstVal is a constant Valer.
type ConstVal float64

func (v ConstVal) Val(x float64) float64 { return float64(v) }

// ReferenceConductivity returns the material of the reference problem:
// k = 1 on [0,1] and k = 2 on (1,2].
func ReferenceConductivity() Conductivity {
	return &PiecewiseConst{X: []float64{0, 1, 2}, K: []float64{1, 2}}
}
