package heat1d

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"heat1d/quad"
)

// Assembler builds the dense stiffness matrix and load vector for a kernel
// over a uniform mesh.  The reduced system has one degree of freedom per
// node except the last mesh node, which is held out of the solve entirely
// (see Problem.Solve).
type Assembler struct {
	Kernel   Kernel
	Boundary Boundary1D
	Rule     quad.Rule
}

// NewAssembler returns an assembler for the reference conduction problem
// using a 10-point Gauss-Legendre rule.
func NewAssembler() *Assembler {
	return &Assembler{
		Kernel:   &HeatConduction{K: ReferenceConductivity()},
		Boundary: ReferenceBoundary(),
		Rule:     quad.Must(quad.DefaultOrder),
	}
}

// Assemble returns the stiffness matrix K and load vector F for the n = m.N
// degrees of freedom 0..n-1.  K[i,j] integrates the kernel over the overlap
// of the hat supports of nodes i and j; entries with |i-j| > 1 have
// disjoint supports and stay zero, so K is tridiagonal and, before any
// Dirichlet substitution, symmetric.  Neumann and Robin conditions are
// folded in per Boundary1D; Dirichlet conditions substitute the whole
// equation of their degree of freedom with an identity row, which makes the
// solved value exact.  The returned matrix and vector are freshly allocated
// and owned by the caller.
//
// Kernel errors raised at quadrature points (an out-of-domain conductivity,
// for instance) abort the assembly; integration bounds are clipped to the
// mesh domain, so such errors cannot occur with a material covering
// [0, Length].
func (a *Assembler) Assemble(m *Mesh) (*mat.Dense, *mat.VecDense, error) {
	n := m.N
	K := mat.NewDense(n, n, nil)
	F := mat.NewVecDense(n, nil)

	for i := 0; i < n; i++ {
		w := m.Hat(i)
		for j := i; j < n && j <= i+1; j++ {
			lo, hi := a.overlap(m, i, j)
			v, err := a.integrateStiffness(w, m.Hat(j), lo, hi)
			if err != nil {
				return nil, nil, err
			}
			K.Set(i, j, v)
			K.Set(j, i, v)
		}

		lo, hi := a.overlap(m, i, i)
		f, err := a.integrateForce(w, lo, hi)
		if err != nil {
			return nil, nil, err
		}
		F.SetVec(i, f)
	}

	a.applyBoundary(m, K, F)
	return K, F, nil
}

// overlap returns the integration bounds for the hats of nodes i and j: the
// intersection of their supports clipped to [0, Length].
func (a *Assembler) overlap(m *Mesh, i, j int) (lo, hi float64) {
	if j < i {
		i, j = j, i
	}
	n := float64(m.N)
	lo = m.Length * math.Max(0, float64(j-1)/n)
	hi = m.Length * math.Min(1, float64(i+1)/n)
	return lo, hi
}

func (a *Assembler) integrateStiffness(w, u Hat, lo, hi float64) (float64, error) {
	var kerr error
	v := a.Rule.Integrate(func(x float64) float64 {
		p := &KernelParams{X: x, U: u.Value(x), GradU: u.Deriv(x), W: w.Value(x), GradW: w.Deriv(x)}
		val, err := a.Kernel.VolIntU(p)
		if err != nil && kerr == nil {
			kerr = err
		}
		return val
	}, lo, hi)
	if kerr != nil {
		return 0, fmt.Errorf("stiffness entry (%v,%v): %w", w.Index, u.Index, kerr)
	}
	return v, nil
}

// integrateForce integrates the solution-independent kernel terms against
// the hat w.  The hat has a kink at its peak, which fixed-order quadrature
// does not resolve across, so the integral is split there: each half is
// smooth and integrates at full accuracy.
func (a *Assembler) integrateForce(w Hat, lo, hi float64) (float64, error) {
	var kerr error
	fn := func(x float64) float64 {
		p := &KernelParams{X: x, W: w.Value(x), GradW: w.Deriv(x)}
		val, err := a.Kernel.VolInt(p)
		if err != nil && kerr == nil {
			kerr = err
		}
		return val
	}

	v := 0.0
	if peak := w.H * float64(w.Index); lo < peak && peak < hi {
		v = a.Rule.Integrate(fn, lo, peak) + a.Rule.Integrate(fn, peak, hi)
	} else {
		v = a.Rule.Integrate(fn, lo, hi)
	}
	if kerr != nil {
		return 0, fmt.Errorf("load entry %v: %w", w.Index, kerr)
	}
	return v, nil
}

func (a *Assembler) applyBoundary(m *Mesh, K *mat.Dense, F *mat.VecDense) {
	b := a.Boundary
	a.applyNatural(m, K, F, b.LeftType, b.LeftVal, b.LeftCoeff, 0)
	a.applyNatural(m, K, F, b.RightType, b.RightVal, b.RightCoeff, m.Length)

	// Dirichlet rows are substituted last so nothing re-dirties them.
	if b.LeftType == Dirichlet {
		substituteRow(K, F, 0, b.LeftVal)
	}
	if b.RightType == Dirichlet {
		substituteRow(K, F, m.N-1, b.RightVal)
	}
}

// applyNatural folds a Neumann or Robin condition at position x0 into the
// load vector and, for Robin, the stiffness matrix.  Hats vanishing at x0
// contribute nothing, so only the degrees of freedom adjacent to the
// endpoint are touched.
func (a *Assembler) applyNatural(m *Mesh, K *mat.Dense, F *mat.VecDense, typ BoundaryType, val, coeff, x0 float64) {
	if typ != Neumann && typ != Robin {
		return
	}
	for i := 0; i < m.N; i++ {
		wi := m.Hat(i).Value(x0)
		if wi == 0 {
			continue
		}
		F.SetVec(i, F.AtVec(i)+val*wi)
		if typ != Robin {
			continue
		}
		for j := 0; j < m.N; j++ {
			uj := m.Hat(j).Value(x0)
			if uj == 0 {
				continue
			}
			K.Set(i, j, K.At(i, j)-coeff*wi*uj)
		}
	}
}

// substituteRow overwrites equation i so it reads u[i] = val.
func substituteRow(K *mat.Dense, F *mat.VecDense, i int, val float64) {
	n, _ := K.Dims()
	for j := 0; j < n; j++ {
		K.Set(i, j, 0)
	}
	K.Set(i, i, 1)
	F.SetVec(i, val)
}
