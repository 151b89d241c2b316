package heat1d

import (
	"fmt"

	"heat1d/dense"
	"heat1d/quad"
)

// Solution is the nodal solution of a solved problem: Values[i] is the
// temperature at Positions[i].  Both slices have one entry per mesh node.
type Solution struct {
	Positions []float64
	Values    []float64
}

// Problem collects the physics and numerics of one boundary-value problem.
// The zero value is not usable; start from DefaultProblem and override
// fields as needed.
type Problem struct {
	// Conductivity is the material coefficient k(x).
	Conductivity Conductivity
	// Source is the volumetric heat source, or nil for none.
	Source Valer
	// Boundary holds the endpoint conditions.
	Boundary Boundary1D
	// Rule is the quadrature rule used during assembly.
	Rule quad.Rule
	// Length is the domain extent [0, Length].
	Length float64
}

// DefaultProblem returns the reference problem: length 2, conductivity 1 on
// [0,1] and 2 on (1,2], Robin flux -20 at x=0, and the value 3 fixed at the
// rightmost degree of freedom.
func DefaultProblem() *Problem {
	return &Problem{
		Conductivity: ReferenceConductivity(),
		Boundary:     ReferenceBoundary(),
		Rule:         quad.Must(quad.DefaultOrder),
		Length:       2,
	}
}

// Solve computes the nodal solution on a mesh of n elements.  The reduced
// system covers nodes 0..n-1; the held-out last node is appended with value
// 0.  Solve either returns a complete solution or an error, never a partial
// result, and builds all state per call, so it is safe to invoke
// concurrently with different n.
func (p *Problem) Solve(n int) (*Solution, error) {
	m, err := NewMesh(n, p.Length)
	if err != nil {
		return nil, err
	}

	asm := &Assembler{
		Kernel:   &HeatConduction{K: p.Conductivity, S: p.Source},
		Boundary: p.Boundary,
		Rule:     p.Rule,
	}
	K, F, err := asm.Assemble(m)
	if err != nil {
		return nil, fmt.Errorf("heat1d: assembling %v-element system: %w", n, err)
	}

	u, err := dense.Solve(K, F)
	if err != nil {
		return nil, fmt.Errorf("heat1d: solving %v-element system: %w", n, err)
	}

	vals := make([]float64, n+1)
	for i := 0; i < n; i++ {
		vals[i] = u.AtVec(i)
	}
	// vals[n] stays 0: the held-out boundary node.
	return &Solution{Positions: m.Positions(), Values: vals}, nil
}

// Solve runs the reference problem with n elements.
func Solve(n int) (*Solution, error) { return DefaultProblem().Solve(n) }

// Interpolate returns the piecewise-linear interpolant of the solution at
// x.  Positions outside the solved domain are an error.
func (s *Solution) Interpolate(x float64) (float64, error) {
	xs := s.Positions
	if len(xs) < 2 {
		return 0, fmt.Errorf("%w: solution has no elements", ErrOutOfDomain)
	}
	if x < xs[0] || x > xs[len(xs)-1] {
		return 0, fmt.Errorf("%w: x=%v outside [%v, %v]", ErrOutOfDomain, x, xs[0], xs[len(xs)-1])
	}
	for i := 0; i+1 < len(xs); i++ {
		if x <= xs[i+1] {
			t := (x - xs[i]) / (xs[i+1] - xs[i])
			return s.Values[i]*(1-t) + s.Values[i+1]*t, nil
		}
	}
	return s.Values[len(s.Values)-1], nil
}
