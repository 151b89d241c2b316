package heat1d

import (
	"errors"
	"math"
	"testing"
)

func TestNewMeshInvalid(t *testing.T) {
	cases := []struct {
		n      int
		length float64
	}{
		{0, 2}, {-3, 2}, {5, 0}, {5, -1},
	}
	for _, c := range cases {
		if _, err := NewMesh(c.n, c.length); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("NewMesh(%v, %v) error = %v, want ErrInvalidParameter", c.n, c.length, err)
		}
	}
}

func TestMeshPositions(t *testing.T) {
	for _, n := range []int{1, 2, 7, 10, 50} {
		m, err := NewMesh(n, 2)
		if err != nil {
			t.Fatal(err)
		}
		xs := m.Positions()
		if len(xs) != n+1 {
			t.Fatalf("n=%v: got %v positions, want %v", n, len(xs), n+1)
		}
		if xs[0] != 0 || xs[n] != 2 {
			t.Errorf("n=%v: endpoints %v, %v; want 0, 2", n, xs[0], xs[n])
		}
		h := m.Step()
		for i := 1; i <= n; i++ {
			if xs[i] <= xs[i-1] {
				t.Errorf("n=%v: positions not strictly increasing at %v", n, i)
			}
			if diff := math.Abs(xs[i] - xs[i-1] - h); diff > 1e-14 {
				t.Errorf("n=%v: spacing %v at %v, want %v", n, xs[i]-xs[i-1], i, h)
			}
		}
	}
}

func TestMeshHat(t *testing.T) {
	m, err := NewMesh(4, 2)
	if err != nil {
		t.Fatal(err)
	}
	for i, x := range m.Positions() {
		if v := m.Hat(i).Value(x); v != 1 {
			t.Errorf("Hat(%v).Value(%v) = %v, want 1", i, x, v)
		}
	}
}
