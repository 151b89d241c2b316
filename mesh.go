package heat1d

import "fmt"

// Mesh is a uniform 1D node layout over [0, Length] with N elements and N+1
// nodes implicitly indexed 0..N.  Meshes are cheap value-like objects; a new
// one is built for every solve.
type Mesh struct {
	N      int
	Length float64
}

// NewMesh returns a mesh with n elements over [0, length].
func NewMesh(n int, length float64) (*Mesh, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: element count %v < 1", ErrInvalidParameter, n)
	}
	if length <= 0 {
		return nil, fmt.Errorf("%w: domain length %v <= 0", ErrInvalidParameter, length)
	}
	return &Mesh{N: n, Length: length}, nil
}

// Step returns the node spacing h = Length/N.
func (m *Mesh) Step() float64 { return m.Length / float64(m.N) }

// Positions returns the N+1 node positions {0, h, 2h, ..., Length}.
func (m *Mesh) Positions() []float64 {
	xs := make([]float64, m.N+1)
	for i := range xs {
		xs[i] = m.Length * float64(i) / float64(m.N)
	}
	return xs
}

// Hat returns the shape function of node i.
func (m *Mesh) Hat(i int) Hat { return Hat{Index: i, H: m.Step()} }
