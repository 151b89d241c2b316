package dense

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestSolve(t *testing.T) {
	var tests = []struct {
		vals []float64
		b    []float64
	}{
		{
			vals: []float64{
				1, 0, 0, 0,
				0, 2, 0, 0,
				0, 0, 3, 0,
				0, 0, 0, 4,
			},
			b: []float64{1, 2, 3, 4},
		}, {
			// requires a row swap on the first column
			vals: []float64{
				0, 2, 0, 0,
				1, 0, 0, 0,
				0, 0, 3, 0,
				0, 0, 0, 4,
			},
			b: []float64{1, 2, 3, 4},
		}, {
			vals: []float64{
				.5, .5, 0, 0,
				0, 2, 1, 0,
				0, 1, 3, 1,
				0, 0, 1, 4,
			},
			b: []float64{1, 2, 3, 4},
		}, {
			// asymmetric with fill below the diagonal
			vals: []float64{
				2, 1, 1,
				4, -6, 0,
				-2, 7, 2,
			},
			b: []float64{5, -2, 9},
		}, {
			vals: []float64{3},
			b:    []float64{12},
		},
	}

	for i, test := range tests {
		size := len(test.b)
		A := mat.NewDense(size, size, test.vals)
		b := mat.NewVecDense(size, test.b)

		var want mat.VecDense
		if err := want.SolveVec(A, b); err != nil {
			t.Fatalf("test %v: gonum reference solve failed: %v", i+1, err)
		}

		got, err := Solve(A, b)
		if err != nil {
			t.Errorf("test %v: unexpected error %v", i+1, err)
			continue
		}

		failed := false
		for j := 0; j < size; j++ {
			if diff := math.Abs(got.AtVec(j) - want.AtVec(j)); diff > 1e-12 {
				failed = true
				break
			}
		}
		if failed {
			t.Errorf("test %v: A=\n%v\nb=%v", i+1, mat.Formatted(A), test.b)
			t.Errorf("    x: got %v, want %v", got.RawVector().Data, want.RawVector().Data)
		}
	}
}

func TestSolveRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, size := range []int{1, 4, 11, 30} {
		A := mat.NewDense(size, size, nil)
		for i := 0; i < size; i++ {
			for j := 0; j < size; j++ {
				A.Set(i, j, rng.Float64()-0.5)
			}
			// diagonal dominance keeps the system well conditioned
			A.Set(i, i, A.At(i, i)+float64(size))
		}
		b := mat.NewVecDense(size, nil)
		for i := 0; i < size; i++ {
			b.SetVec(i, rng.NormFloat64())
		}

		x, err := Solve(A, b)
		if err != nil {
			t.Fatalf("size %v: unexpected error %v", size, err)
		}

		var ax mat.VecDense
		ax.MulVec(A, x)
		var diff mat.VecDense
		diff.SubVec(&ax, b)
		rel := mat.Norm(&diff, 2) / mat.Norm(b, 2)
		if rel > 1e-9 {
			t.Errorf("size %v: relative residual %v > 1e-9", size, rel)
		}
	}
}

func TestSolveSingular(t *testing.T) {
	var tests = []struct {
		name string
		vals []float64
	}{
		{"zero row", []float64{
			1, 2,
			0, 0,
		}},
		{"zero matrix", []float64{
			0, 0,
			0, 0,
		}},
		{"duplicate rows", []float64{
			1, 2,
			1, 2,
		}},
	}

	for _, test := range tests {
		A := mat.NewDense(2, 2, test.vals)
		b := mat.NewVecDense(2, []float64{1, 2})
		if _, err := Solve(A, b); !errors.Is(err, ErrSingular) {
			t.Errorf("%v: error = %v, want ErrSingular", test.name, err)
		}
	}
}

func TestSolveExactIdentityRow(t *testing.T) {
	// An identity row must survive elimination untouched so the associated
	// unknown comes out bit-exact.  Dirichlet rows in the assembler rely on
	// this.
	A := mat.NewDense(3, 3, []float64{
		2, 1, 0,
		1, 2, 1,
		0, 0, 1,
	})
	b := mat.NewVecDense(3, []float64{0, 0, 3})
	x, err := Solve(A, b)
	if err != nil {
		t.Fatal(err)
	}
	if got := x.AtVec(2); got != 3 {
		t.Errorf("x[2] = %v, want exactly 3", got)
	}
}

func TestSolveInputsUnchanged(t *testing.T) {
	A := mat.NewDense(2, 2, []float64{0, 1, 2, 3})
	b := mat.NewVecDense(2, []float64{4, 5})
	refA := mat.DenseCopyOf(A)
	refb := mat.VecDenseCopyOf(b)

	if _, err := Solve(A, b); err != nil {
		t.Fatal(err)
	}
	if !mat.Equal(A, refA) {
		t.Errorf("matrix modified by Solve:\ngot %v\nwant %v", mat.Formatted(A), mat.Formatted(refA))
	}
	if !mat.Equal(b, refb) {
		t.Errorf("vector modified by Solve: got %v, want %v", b.RawVector().Data, refb.RawVector().Data)
	}
}

func TestSolveDims(t *testing.T) {
	rect := mat.NewDense(2, 3, nil)
	if _, err := Solve(rect, mat.NewVecDense(2, nil)); err == nil {
		t.Error("expected error for non-square matrix")
	}
	sq := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
	if _, err := Solve(sq, mat.NewVecDense(3, nil)); err == nil {
		t.Error("expected error for mismatched vector length")
	}
}
