package types

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

var ErrFaceIndex = errors.New("face index out of range")

// Vertices is an N x 3 coordinate array, the row number is the vertex ID
type Vertices [][3]float64

// Faces is an M x 3 array of vertex indices, one triangle per row
type Faces [][3]int

var (
	_ mat.Matrix = Vertices(nil)
	_ mat.Matrix = Faces(nil)
)

func (v Vertices) Dims() (r, c int) { return len(v), 3 }

func (v Vertices) At(i, j int) float64 { return v[i][j] }

func (v Vertices) T() mat.Matrix { return mat.Transpose{Matrix: v} }

func (v Vertices) ToDense() (D *mat.Dense) {
	if len(v) == 0 {
		return &mat.Dense{}
	}
	D = mat.NewDense(len(v), 3, nil)
	for i, xyz := range v {
		D.SetRow(i, xyz[:])
	}
	return
}

func (f Faces) Dims() (r, c int) { return len(f), 3 }

func (f Faces) At(i, j int) float64 { return float64(f[i][j]) }

func (f Faces) T() mat.Matrix { return mat.Transpose{Matrix: f} }

// NewFacesFromMatrix takes the first three columns of M as vertex indices,
// values must be whole numbers
func NewFacesFromMatrix(M mat.Matrix) (f Faces, err error) {
	var (
		nr, nc = M.Dims()
	)
	if nr != 0 && nc < 3 {
		err = fmt.Errorf("%w: faces need 3 columns, have %d", ErrShape, nc)
		return
	}
	f = make(Faces, nr)
	for i := 0; i < nr; i++ {
		for j := 0; j < 3; j++ {
			v := M.At(i, j)
			if v != math.Trunc(v) || math.Abs(v) > math.MaxInt32 {
				return nil, fmt.Errorf("%w: face %d has non integer index %v", ErrFaceIndex, i, v)
			}
			f[i][j] = int(v)
		}
	}
	return
}

// Mesh is a triangle mesh, face indices are not validated on construction,
// callers check them with CheckFaces before use
type Mesh struct {
	Vertices Vertices
	Faces    Faces
}

func NewMesh(v Vertices, f Faces) *Mesh {
	return &Mesh{Vertices: v, Faces: f}
}

func (m *Mesh) NumVertices() int { return len(m.Vertices) }

func (m *Mesh) NumFaces() int { return len(m.Faces) }

func (m *Mesh) CheckFaces() error {
	nv := len(m.Vertices)
	for k, face := range m.Faces {
		for _, ind := range face {
			if ind < 0 || ind >= nv {
				return fmt.Errorf("%w: face %d references vertex %d, mesh has %d vertices",
					ErrFaceIndex, k, ind, nv)
			}
		}
	}
	return nil
}

// PointCloud returns the vertex coordinates as a 3 column cloud
func (m *Mesh) PointCloud() *PointCloud {
	return NewPointCloudFromMatrix(m.Vertices)
}
