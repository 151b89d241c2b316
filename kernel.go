package heat1d

// KernelParams carries the values a weak-form kernel is evaluated with at a
// single quadrature point.
type KernelParams struct {
	// X is the position the kernel is being evaluated at.
	X float64
	// U is the value of the solution shape function and GradU its
	// derivative.
	U, GradU float64
	// W is the value of the weight/test function and GradW its derivative.
	W, GradW float64
}

// Kernel is the weak form of a differential equation, split into the terms
// that depend on the solution shape function (VolIntU) and those that do
// not (VolInt).
type Kernel interface {
	VolIntU(p *KernelParams) (float64, error)
	VolInt(p *KernelParams) (float64, error)
}

// HeatConduction is the steady-state conduction weak form with conductivity
// K and optional volumetric source S (W/m^3).  A nil S means no source.
type HeatConduction struct {
	K Conductivity
	S Valer
}

func (hc *HeatConduction) VolIntU(p *KernelParams) (float64, error) {
	k, err := hc.K.At(p.X)
	if err != nil {
		return 0, err
	}
	return p.GradW * p.GradU * k, nil
}

func (hc *HeatConduction) VolInt(p *KernelParams) (float64, error) {
	if hc.S == nil {
		return 0, nil
	}
	return p.W * hc.S.Val(p.X), nil
}

// BoundaryType selects how an endpoint condition enters the assembled
// system.
type BoundaryType int

const (
	// Dirichlet fixes the solution value at the endpoint's degree of
	// freedom by substituting its equation with an identity row.
	Dirichlet BoundaryType = iota
	// Neumann adds the prescribed flux Val*e_i(x0) to the load vector.
	Neumann
	// Robin adds the same load increment as Neumann and additionally folds
	// -Coeff*e_i(x0)*e_j(x0) into the stiffness matrix.
	Robin
	// BoundaryNone leaves the endpoint without an explicit condition.
	BoundaryNone
)

// Boundary1D describes the two endpoint conditions of a 1D problem.  The
// left endpoint is x=0; the right endpoint is the last degree of freedom of
// the reduced system.
type Boundary1D struct {
	LeftType   BoundaryType
	LeftVal    float64
	LeftCoeff  float64
	RightType  BoundaryType
	RightVal   float64
	RightCoeff float64
}

// ReferenceBoundary returns the boundary conditions of the reference
// problem: a Robin condition at x=0 with flux -20 and unit transfer
// coefficient, and the value 3 fixed at the rightmost degree of freedom.
func ReferenceBoundary() Boundary1D {
	return Boundary1D{
		LeftType:  Robin,
		LeftVal:   -20,
		LeftCoeff: 1,
		RightType: Dirichlet,
		RightVal:  3,
	}
}
