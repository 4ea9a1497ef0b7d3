package visual

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/visualpts/types"
	"github.com/notargets/visualpts/utils"
)

func newCloud(t *testing.T, rows [][]float32) *types.PointCloud {
	t.Helper()
	pc, err := types.NewPointCloud(rows)
	require.NoError(t, err)
	return pc
}

func TestNewColorMode(t *testing.T) {
	for label, expected := range map[string]ColorMode{
		"height": Height, "Distance": Distance, " INTENSITY ": Intensity,
	} {
		cm, err := NewColorMode(label)
		require.NoError(t, err, label)
		assert.Equal(t, expected, cm)
	}
	_, err := NewColorMode("rainbow")
	assert.True(t, errors.Is(err, ErrColorMode))
	assert.Equal(t, "distance", Distance.String())
	assert.Equal(t, "ColorMode(9)", ColorMode(9).String())
}

func TestColorValues(t *testing.T) {
	pc := newCloud(t, [][]float32{{3, 4, 1, 10}, {0, 0, -2, 20}})
	v, err := ColorValues(pc, Height)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, -2}, v)

	v, err = ColorValues(pc, Distance)
	require.NoError(t, err)
	assert.Equal(t, []float32{5, 0}, v)

	v, err = ColorValues(pc, Intensity)
	require.NoError(t, err)
	assert.Equal(t, []float32{10, 20}, v)

	_, err = ColorValues(pc.Columns(3), Intensity)
	assert.True(t, errors.Is(err, ErrColorMode))
	_, err = ColorValues(pc, ColorMode(9))
	assert.True(t, errors.Is(err, ErrColorMode))
}

func TestBands(t *testing.T) {
	x := []float32{0, 1, 2, 3}
	y := []float32{0, 1, 2, 3}
	bands, vmin, vmax := Bands(x, y, []float32{0, 1, 2, 4}, 4)
	assert.Equal(t, float32(0), vmin)
	assert.Equal(t, float32(4), vmax)
	require.Len(t, bands, 4)
	assert.Equal(t, []float32{0}, bands[0].X)
	assert.Equal(t, []float32{1}, bands[1].X)
	assert.Equal(t, []float32{2}, bands[2].X)
	assert.Equal(t, []float32{3}, bands[3].X) // The maximum lands in the last band
	assert.Equal(t, float32(0.125), bands[0].Level)

	// Constant values all land in the first band
	bands, _, _ = Bands(x, y, []float32{5, 5, 5, 5}, 3)
	assert.Len(t, bands[0].X, 4)
	assert.Len(t, bands[1].X, 0)
}

func TestCrossHairs(t *testing.T) {
	lines := CrossHairs([]float32{1}, []float32{2}, 0.5)
	assert.Equal(t, []float32{0.5, 2, 1.5, 2, 1, 1.5, 1, 2.5}, lines)
}

func TestSquareBoundingBox(t *testing.T) {
	xmin, xmax, ymin, ymax := SquareBoundingBox(0, 4, 0, 2, 1)
	assert.Equal(t, []float32{0, 4, -1, 3}, []float32{xmin, xmax, ymin, ymax})
	xmin, xmax, ymin, ymax = SquareBoundingBox(1, 1, 1, 1, 2)
	assert.Equal(t, []float32{0, 2, 0, 2}, []float32{xmin, xmax, ymin, ymax})
}

func TestSceneBuildPoints(t *testing.T) {
	pc := newCloud(t, [][]float32{
		{0, 0, 0, 1, 99},
		{1, 1, 1, 2, 99},
		{2, 2, 2, 3, 99},
	})
	opts := DefaultOptions()
	opts.Title = "scan"
	s := NewScene(opts)
	require.NoError(t, s.AddPoints(pc))
	_, nc := s.clouds[0].Dims()
	assert.Equal(t, PlotColumns, nc)

	p, err := s.Build()
	require.NoError(t, err)
	assert.Equal(t, "scan", p.Title)
	assert.Equal(t, float32(0), p.VMin)
	assert.Equal(t, float32(2), p.VMax)
	// Three occupied bands plus the axis lines
	require.Len(t, p.Lines, 4)
	for _, ls := range p.Lines[:3] {
		assert.Len(t, ls.Lines, 8)
	}
	assert.Equal(t, AxisColor, p.Lines[3].Color)
	assert.Equal(t, utils.ColorRamp(bandLevel(0)), p.Lines[0].Color)
	assert.True(t, p.XMin < 0 && p.XMax > 2)

	opts.AxisVisible = false
	opts.ColorMode = Intensity
	s = NewScene(opts)
	require.NoError(t, s.AddPoints(pc))
	p, err = s.Build()
	require.NoError(t, err)
	assert.Len(t, p.Lines, 3)
	assert.Equal(t, float32(1), p.VMin)
	assert.Equal(t, float32(3), p.VMax)
}

func bandLevel(i int) float32 { return (float32(i) + 0.5) / NumBands }

func TestSceneBuildMesh(t *testing.T) {
	m := types.NewMesh(
		types.Vertices{{0, 0, 0}, {1, 0, 1}, {0, 1, 2}},
		types.Faces{{0, 1, 2}},
	)
	opts := DefaultOptions()
	opts.ColorMode = Intensity
	s := NewScene(opts)
	require.NoError(t, s.AddMesh(m))
	p, err := s.Build()
	require.NoError(t, err)
	require.Len(t, p.Meshes, 1)
	sm := p.Meshes[0]
	assert.Equal(t, []float32{0, 0, 1, 0, 0, 1}, sm.Mesh.XY)
	assert.Equal(t, [][3]int64{{0, 1, 2}}, sm.Mesh.TriVerts)
	assert.Equal(t, []float32{0, 1, 2}, sm.Values) // Falls back to height
	assert.Equal(t, float32(2), sm.FMax)
	assert.Empty(t, NewTriMesh(types.NewMesh(types.Vertices{}, types.Faces{})).XY)

	bad := types.NewMesh(types.Vertices{{0, 0, 0}}, types.Faces{{0, 0, 1}})
	assert.True(t, errors.Is(s.AddMesh(bad), types.ErrFaceIndex))
}

func TestSceneErrors(t *testing.T) {
	_, err := NewScene(DefaultOptions()).Build()
	assert.True(t, errors.Is(err, ErrEmptyScene))

	s := NewScene(DefaultOptions())
	assert.Error(t, s.AddPoints(newCloud(t, [][]float32{{1}})))

	opts := DefaultOptions()
	opts.ColorMode = Intensity
	s = NewScene(opts)
	require.NoError(t, s.AddPoints(newCloud(t, [][]float32{{1, 2, 3}})))
	_, err = s.Build()
	assert.True(t, errors.Is(err, ErrColorMode))
}
