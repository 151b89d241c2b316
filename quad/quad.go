// Package quad provides fixed-order Gauss-Legendre quadrature over finite
// intervals.  Rules are tabulated rather than computed so that results are
// reproducible bit-for-bit across runs and platforms.
package quad

import (
	"errors"
	"fmt"
)

// ErrOrder is returned when no rule is tabulated for a requested order.
var ErrOrder = errors.New("quad: no tabulated rule for order")

// DefaultOrder is the rule order used by callers that do not configure one.
// A 10-point Gauss-Legendre rule is exact for polynomials up to degree 19.
const DefaultOrder = 10

// Rule is a fixed-order Gauss-Legendre rule on the reference interval
// [-1, 1].  The zero value is not usable; obtain rules from New or Must.
type Rule struct {
	order int
	x, w  []float64
}

// rules maps each supported order to its abscissae and weights.  The
// constants are the standard double-precision Gauss-Legendre tables.
var rules = map[int]Rule{
	1: {
		order: 1,
		x:     []float64{0},
		w:     []float64{2},
	},
	2: {
		order: 2,
		x:     []float64{-0.5773502691896257, 0.5773502691896257},
		w:     []float64{1, 1},
	},
	3: {
		order: 3,
		x:     []float64{-0.7745966692414834, 0, 0.7745966692414834},
		w:     []float64{0.5555555555555556, 0.8888888888888888, 0.5555555555555556},
	},
	4: {
		order: 4,
		x: []float64{
			-0.8611363115940526, -0.3399810435848563,
			0.3399810435848563, 0.8611363115940526,
		},
		w: []float64{
			0.3478548451374538, 0.6521451548625461,
			0.6521451548625461, 0.3478548451374538,
		},
	},
	5: {
		order: 5,
		x: []float64{
			-0.9061798459386640, -0.5384693101056831, 0,
			0.5384693101056831, 0.9061798459386640,
		},
		w: []float64{
			0.2369268850561891, 0.4786286704993665, 0.5688888888888889,
			0.4786286704993665, 0.2369268850561891,
		},
	},
	10: {
		order: 10,
		x: []float64{
			-0.9739065285171717, -0.8650633666889845, -0.6794095682990244,
			-0.4333953941292472, -0.1488743389816312,
			0.1488743389816312, 0.4333953941292472,
			0.6794095682990244, 0.8650633666889845, 0.9739065285171717,
		},
		w: []float64{
			0.0666713443086881, 0.1494513491505806, 0.2190863625159820,
			0.2692667193099963, 0.2955242247147529,
			0.2955242247147529, 0.2692667193099963,
			0.2190863625159820, 0.1494513491505806, 0.0666713443086881,
		},
	},
}

// New returns the tabulated rule for the given order.
func New(order int) (Rule, error) {
	r, ok := rules[order]
	if !ok {
		return Rule{}, fmt.Errorf("%w %v", ErrOrder, order)
	}
	return r, nil
}

// Must returns the tabulated rule for the given order and panics when none
// exists.  It is intended for the fixed, known-good orders wired into
// package defaults.
func Must(order int) Rule {
	r, err := New(order)
	if err != nil {
		panic(err)
	}
	return r
}

// Order returns the number of abscissae of the rule.
func (r Rule) Order() int { return r.order }

// Integrate approximates the integral of f over [a, b].  The reference
// abscissae are mapped onto [a, b] through the interval midpoint and
// half-length.  A degenerate interval (a == b) yields exactly 0 without
// evaluating f.  Integrate is pure: it has no error path and no side
// effects beyond calling f.
func (r Rule) Integrate(f func(x float64) float64, a, b float64) float64 {
	if a == b {
		return 0
	}
	m := (a + b) / 2
	s := (b - a) / 2
	sum := 0.0
	for i, xi := range r.x {
		sum += r.w[i] * f(m+s*xi)
	}
	return s * sum
}

// Fixed approximates the integral of f over [a, b] with an n-point rule.
func Fixed(f func(x float64) float64, a, b float64, n int) (float64, error) {
	r, err := New(n)
	if err != nil {
		return 0, err
	}
	return r.Integrate(f, a, b), nil
}
