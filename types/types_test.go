package types

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestPointCloud(t *testing.T) {
	{ // Stacking rows
		pc, err := NewPointCloud([][]float32{{1, 2, 3, 10}, {4, 5, 6, 20}})
		require.NoError(t, err)
		r, c := pc.Dims()
		assert.Equal(t, 2, r)
		assert.Equal(t, 4, c)
		assert.Equal(t, []float32{4, 5, 6, 20}, pc.Row(1))
		assert.Equal(t, 20., pc.At(1, 3))
		assert.Equal(t, []float32{3, 6}, pc.Column(2))
		assert.Equal(t, 2., pc.T().At(1, 0))
	}
	{ // Ragged rows are a shape error
		_, err := NewPointCloud([][]float32{{1, 2, 3}, {4, 5}})
		assert.True(t, errors.Is(err, ErrShape))
	}
	{ // Empty
		pc, err := NewPointCloud(nil)
		require.NoError(t, err)
		r, c := pc.Dims()
		assert.Equal(t, 0, r)
		assert.Equal(t, 0, c)
		assert.True(t, pc.ToDense().IsEmpty())
	}
	{ // Column slicing
		pc, err := NewPointCloud([][]float32{{1, 2, 3, 4, 5}, {6, 7, 8, 9, 10}})
		require.NoError(t, err)
		sl := pc.Columns(4)
		_, c := sl.Dims()
		assert.Equal(t, 4, c)
		assert.Equal(t, []float32{6, 7, 8, 9}, sl.Row(1))
		_, c = pc.Columns(10).Dims()
		assert.Equal(t, 5, c)
	}
	{ // gonum interop
		pc, err := NewPointCloud([][]float32{{1, 2, 3}, {4, 5, 6}})
		require.NoError(t, err)
		D := pc.ToDense()
		assert.True(t, mat.Equal(D, pc))
		back := NewPointCloudFromMatrix(D)
		assert.Equal(t, pc.DataP, back.DataP)
	}
	assert.Panics(t, func() {
		pc, _ := NewPointCloud([][]float32{{1, 2, 3}})
		pc.At(1, 0)
	})
	{ // Columns of an empty cloud are empty
		pc := NewPointCloudFromMatrix(Vertices{})
		assert.Empty(t, pc.Column(2))
		assert.Panics(t, func() { pc.Column(3) })
	}
}

func TestMesh(t *testing.T) {
	m := NewMesh(
		Vertices{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		Faces{{0, 1, 2}},
	)
	assert.Equal(t, 3, m.NumVertices())
	assert.Equal(t, 1, m.NumFaces())
	assert.NoError(t, m.CheckFaces())
	r, c := m.Faces.Dims()
	assert.Equal(t, 1, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, 2., m.Faces.At(0, 2))
	assert.Equal(t, 1., m.Vertices.ToDense().At(1, 0))

	m.Faces = append(m.Faces, [3]int{0, 1, 3})
	err := m.CheckFaces()
	assert.True(t, errors.Is(err, ErrFaceIndex))

	pc := m.PointCloud()
	r, c = pc.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 3, c)

	{ // Conversion from generic matrices
		f, err := NewFacesFromMatrix(mat.NewDense(1, 4, []float64{0, 1, 2, 9}))
		require.NoError(t, err)
		assert.Equal(t, Faces{{0, 1, 2}}, f)
		_, err = NewFacesFromMatrix(mat.NewDense(1, 2, []float64{0, 1}))
		assert.True(t, errors.Is(err, ErrShape))
		for _, bad := range []float64{1.7, math.NaN(), math.Inf(1)} {
			_, err = NewFacesFromMatrix(mat.NewDense(1, 3, []float64{0, bad, 2}))
			assert.True(t, errors.Is(err, ErrFaceIndex), "%v", bad)
		}
	}
}
