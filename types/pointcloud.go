package types

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

var ErrShape = errors.New("inconsistent row width")

// PointCloud is a row-major float32 array, one row per point: x, y, z and
// optional extra channels
type PointCloud struct {
	DataP        []float32
	nrows, ncols int
}

var _ mat.Matrix = (*PointCloud)(nil)

// NewPointCloud stacks rows into a fixed width cloud, rows must all be the
// same length
func NewPointCloud(rows [][]float32) (pc *PointCloud, err error) {
	var (
		nr = len(rows)
		nc int
	)
	if nr != 0 {
		nc = len(rows[0])
	}
	pc = &PointCloud{
		DataP: make([]float32, 0, nr*nc),
		nrows: nr,
		ncols: nc,
	}
	for i, row := range rows {
		if len(row) != nc {
			err = fmt.Errorf("%w: row %d has %d columns, expected %d",
				ErrShape, i, len(row), nc)
			return nil, err
		}
		pc.DataP = append(pc.DataP, row...)
	}
	return
}

// NewPointCloudFromMatrix copies any matrix into a cloud, values are
// narrowed to float32
func NewPointCloudFromMatrix(M mat.Matrix) (pc *PointCloud) {
	var (
		nr, nc = M.Dims()
	)
	pc = &PointCloud{
		DataP: make([]float32, nr*nc),
		nrows: nr,
		ncols: nc,
	}
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			pc.DataP[i*nc+j] = float32(M.At(i, j))
		}
	}
	return
}

func (pc *PointCloud) Dims() (r, c int) { return pc.nrows, pc.ncols }

func (pc *PointCloud) Len() int { return pc.nrows }

func (pc *PointCloud) At(i, j int) float64 {
	pc.checkBounds(i, j)
	return float64(pc.DataP[i*pc.ncols+j])
}

func (pc *PointCloud) Get(i, j int) float32 {
	pc.checkBounds(i, j)
	return pc.DataP[i*pc.ncols+j]
}

func (pc *PointCloud) T() mat.Matrix { return mat.Transpose{Matrix: pc} }

// Row returns a view into the storage, not a copy
func (pc *PointCloud) Row(i int) []float32 {
	pc.checkBounds(i, 0)
	return pc.DataP[i*pc.ncols : (i+1)*pc.ncols]
}

func (pc *PointCloud) Column(j int) (col []float32) {
	if j < 0 || j >= pc.ncols {
		panic(fmt.Errorf("column %d out of bounds in %dx%d point cloud",
			j, pc.nrows, pc.ncols))
	}
	col = make([]float32, pc.nrows)
	for i := range col {
		col[i] = pc.DataP[i*pc.ncols+j]
	}
	return
}

// Columns returns a new cloud with the first n columns, fewer if the cloud is
// narrower
func (pc *PointCloud) Columns(n int) (out *PointCloud) {
	if n > pc.ncols {
		n = pc.ncols
	}
	if n < 0 {
		n = 0
	}
	out = &PointCloud{
		DataP: make([]float32, 0, pc.nrows*n),
		nrows: pc.nrows,
		ncols: n,
	}
	for i := 0; i < pc.nrows; i++ {
		out.DataP = append(out.DataP, pc.DataP[i*pc.ncols:i*pc.ncols+n]...)
	}
	return
}

func (pc *PointCloud) ToDense() (D *mat.Dense) {
	if pc.nrows == 0 || pc.ncols == 0 {
		return &mat.Dense{}
	}
	data := make([]float64, len(pc.DataP))
	for i, v := range pc.DataP {
		data[i] = float64(v)
	}
	return mat.NewDense(pc.nrows, pc.ncols, data)
}

func (pc *PointCloud) checkBounds(i, j int) {
	if i < 0 || i >= pc.nrows || j < 0 || j >= pc.ncols {
		panic(fmt.Errorf("index out of bounds: [%d,%d] in %dx%d point cloud",
			i, j, pc.nrows, pc.ncols))
	}
}
