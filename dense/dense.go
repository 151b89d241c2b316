// Package dense solves small dense linear systems with Gaussian elimination
// and partial pivoting.  It is intended for the modest system sizes produced
// by 1D finite element assembly, where an O(n^3) direct solve is cheap and
// sparse storage buys nothing.
package dense

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrSingular is returned when elimination encounters a pivot that is zero
// to working precision.
var ErrSingular = errors.New("dense: matrix is singular to working precision")

// pivTol is the pivot magnitude below which the matrix is treated as
// singular rather than dividing through and propagating NaN/Inf.
const pivTol = 1e-12

// Solve solves a*x = b by Gaussian elimination with partial pivoting
// followed by back substitution.  At each elimination step the row with the
// largest absolute value in the current column is swapped into the pivot
// position; ties keep the lowest row index.  Solve works on internal copies,
// so the caller's matrix and vector are unchanged when it returns.
func Solve(a mat.Matrix, b mat.Vector) (*mat.VecDense, error) {
	r, c := a.Dims()
	if r != c {
		return nil, fmt.Errorf("dense: matrix must be square, got %vx%v", r, c)
	}
	if b.Len() != r {
		return nil, fmt.Errorf("dense: dimension mismatch: %vx%v matrix, length-%v vector", r, c, b.Len())
	}

	var m mat.Dense
	m.CloneFrom(a)
	x := mat.NewVecDense(r, nil)
	x.CloneFromVec(b)

	for k := 0; k < r; k++ {
		piv, max := k, math.Abs(m.At(k, k))
		for i := k + 1; i < r; i++ {
			if v := math.Abs(m.At(i, k)); v > max {
				piv, max = i, v
			}
		}
		if max < pivTol {
			return nil, fmt.Errorf("%w: pivot %v in column %v", ErrSingular, m.At(piv, k), k)
		}
		if piv != k {
			swapRows(&m, k, piv)
			vk, vp := x.AtVec(k), x.AtVec(piv)
			x.SetVec(k, vp)
			x.SetVec(piv, vk)
		}

		for i := k + 1; i < r; i++ {
			mult := m.At(i, k) / m.At(k, k)
			if mult == 0 {
				continue
			}
			for j := k; j < r; j++ {
				m.Set(i, j, m.At(i, j)-mult*m.At(k, j))
			}
			x.SetVec(i, x.AtVec(i)-mult*x.AtVec(k))
		}
	}

	for i := r - 1; i >= 0; i-- {
		v := x.AtVec(i)
		for j := i + 1; j < r; j++ {
			v -= m.At(i, j) * x.AtVec(j)
		}
		x.SetVec(i, v/m.At(i, i))
	}
	return x, nil
}

func swapRows(m *mat.Dense, i, j int) {
	_, c := m.Dims()
	for k := 0; k < c; k++ {
		v := m.At(i, k)
		m.Set(i, k, m.At(j, k))
		m.Set(j, k, v)
	}
}
