package visual

import (
	"github.com/notargets/visualpts/utils"
)

// Band holds the points whose color value falls into one slice of the
// value range. Level is the band center scaled to [0,1]
type Band struct {
	Level float32
	X, Y  []float32
}

// Bands splits points into n equal width bands over [vmin, vmax] of values.
// When all values are equal every point goes into the first band
func Bands(x, y, values []float32, n int) (bands []Band, vmin, vmax float32) {
	if n < 1 {
		n = 1
	}
	vmin, vmax = utils.MinMax32(values)
	var (
		width = (vmax - vmin) / float32(n)
	)
	bands = make([]Band, n)
	for i := range bands {
		bands[i].Level = (float32(i) + 0.5) / float32(n)
	}
	for i, v := range values {
		var ib int
		if width > 0 {
			ib = int((v - vmin) / width)
		}
		if ib >= n {
			ib = n - 1
		}
		if ib < 0 {
			ib = 0
		}
		bands[ib].X = append(bands[ib].X, x[i])
		bands[ib].Y = append(bands[ib].Y, y[i])
	}
	return
}

// CrossHairs converts points into the line segment list drawn by the chart,
// two segments of length 2*size per point
func CrossHairs(x, y []float32, size float32) (lines []float32) {
	lines = make([]float32, 0, 8*len(x))
	for i := range x {
		lines = append(lines,
			x[i]-size, y[i], x[i]+size, y[i],
			x[i], y[i]-size, x[i], y[i]+size,
		)
	}
	return
}
