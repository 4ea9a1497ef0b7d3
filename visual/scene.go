package visual

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/notargets/avs/assets"
	"github.com/notargets/avs/chart2d"
	"github.com/notargets/avs/geometry"
	utils2 "github.com/notargets/avs/utils"

	"github.com/notargets/visualpts/types"
	"github.com/notargets/visualpts/utils"
)

var ErrEmptyScene = errors.New("nothing to draw")

const (
	NumBands    = 16
	PlotColumns = 4 // x, y, z and the optional intensity channel
)

var AxisColor = color.RGBA{R: 128, G: 128, B: 128, A: 255}

type Options struct {
	Title         string
	PointSize     float64
	ColorMode     ColorMode
	AxisVisible   bool
	Width, Height int
}

func DefaultOptions() Options {
	return Options{
		PointSize:   1,
		ColorMode:   Height,
		AxisVisible: true,
		Width:       1920,
		Height:      1080,
	}
}

// Scene collects point clouds and meshes to be drawn into one chart, the
// x-y plane is shown and the color carries the third dimension
type Scene struct {
	Options Options
	clouds  []*types.PointCloud
	meshes  []*types.Mesh
}

func NewScene(opts Options) *Scene {
	return &Scene{Options: opts}
}

// AddPoints keeps only the columns used for plotting
func (s *Scene) AddPoints(pc *types.PointCloud) error {
	if _, nc := pc.Dims(); pc.Len() != 0 && nc < 2 {
		return fmt.Errorf("points need at least 2 columns to plot, have %d", nc)
	}
	s.clouds = append(s.clouds, pc.Columns(PlotColumns))
	return nil
}

// AddMesh rejects meshes with faces referencing missing vertices
func (s *Scene) AddMesh(m *types.Mesh) error {
	if err := m.CheckFaces(); err != nil {
		return err
	}
	s.meshes = append(s.meshes, m)
	return nil
}

type LineSet struct {
	Lines []float32 // x1,y1,x2,y2 per segment
	Color color.RGBA
}

type ShadedMesh struct {
	Mesh       geometry.TriMesh
	Values     []float32 // One per vertex
	FMin, FMax float32
}

// Plot is a fully resolved chart description, Render hands it to avs
type Plot struct {
	Title                  string
	Width, Height          int
	XMin, XMax, YMin, YMax float32
	VMin, VMax             float32 // Color value range
	Lines                  []LineSet
	Meshes                 []ShadedMesh
}

func (s *Scene) Build() (p *Plot, err error) {
	var (
		opts           = s.Options
		xs, ys, values []float32
	)
	for _, pc := range s.clouds {
		if pc.Len() == 0 {
			continue
		}
		var v []float32
		if v, err = ColorValues(pc, opts.ColorMode); err != nil {
			return
		}
		xs = append(xs, pc.Column(0)...)
		ys = append(ys, pc.Column(1)...)
		values = append(values, v...)
	}
	var (
		mx, my = append([]float32{}, xs...), append([]float32{}, ys...)
	)
	for _, m := range s.meshes {
		for _, xyz := range m.Vertices {
			mx = append(mx, float32(xyz[0]))
			my = append(my, float32(xyz[1]))
		}
	}
	if len(mx) == 0 {
		return nil, ErrEmptyScene
	}

	p = &Plot{Title: opts.Title, Width: opts.Width, Height: opts.Height}
	if p.Width <= 0 || p.Height <= 0 {
		p.Width, p.Height = 1920, 1080
	}
	xmin, xmax := utils.MinMax32(mx)
	ymin, ymax := utils.MinMax32(my)
	p.XMin, p.XMax, p.YMin, p.YMax = SquareBoundingBox(xmin, xmax, ymin, ymax, 1.1)

	var (
		span = p.XMax - p.XMin
		size = float32(opts.PointSize) * span / 400
	)
	bands, vmin, vmax := Bands(xs, ys, values, NumBands)
	p.VMin, p.VMax = vmin, vmax
	for _, band := range bands {
		if len(band.X) == 0 {
			continue
		}
		p.Lines = append(p.Lines, LineSet{
			Lines: CrossHairs(band.X, band.Y, size),
			Color: utils.ColorRamp(band.Level),
		})
	}
	for _, m := range s.meshes {
		var (
			pc = m.PointCloud()
			v  []float32
		)
		if v, err = ColorValues(pc, opts.ColorMode); err != nil {
			// Meshes carry no intensity channel, shade those by height
			if v, err = ColorValues(pc, Height); err != nil {
				return
			}
		}
		fmin, fmax := utils.MinMax32(v)
		p.Meshes = append(p.Meshes, ShadedMesh{
			Mesh:   NewTriMesh(m),
			Values: v,
			FMin:   fmin,
			FMax:   fmax,
		})
	}
	if opts.AxisVisible {
		p.Lines = append(p.Lines, LineSet{
			Lines: []float32{p.XMin, 0, p.XMax, 0, 0, p.YMin, 0, p.YMax},
			Color: AxisColor,
		})
	}
	return
}

// NewTriMesh projects the mesh onto the x-y plane
func NewTriMesh(m *types.Mesh) (gm geometry.TriMesh) {
	pc := m.PointCloud()
	gm = geometry.TriMesh{
		XY:       utils.ArraysToXY(pc.Column(0), pc.Column(1)),
		TriVerts: make([][3]int64, m.NumFaces()),
	}
	for k, face := range m.Faces {
		for n := 0; n < 3; n++ {
			gm.TriVerts[k][n] = int64(face[n])
		}
	}
	return
}

// SquareBoundingBox returns a square box centered on the data, enlarged by
// scale. Degenerate ranges get a unit box
func SquareBoundingBox(xMin, xMax, yMin, yMax, scale float32) (xBMin,
	xBMax, yBMin, yBMax float32) {
	var (
		xCent = (xMin + xMax) / 2
		yCent = (yMin + yMax) / 2
		half  = float32(math.Max(float64(xMax-xMin), float64(yMax-yMin))) / 2
	)
	if half <= 0 {
		half = 0.5
	}
	half *= scale
	return xCent - half, xCent + half, yCent - half, yCent + half
}

// Render opens the chart window and adds every layer, avs runs the window
// event loop on its own
func (p *Plot) Render() (ch *chart2d.Chart2D) {
	ch = chart2d.NewChart2D(p.XMin, p.XMax, p.YMin, p.YMax,
		p.Width, p.Height, utils2.WHITE, utils2.BLACK)
	for i := range p.Meshes {
		sm := &p.Meshes[i]
		if sm.FMax > sm.FMin {
			vs := geometry.VertexScalar{
				TMesh:       &sm.Mesh,
				FieldValues: sm.Values,
			}
			ch.AddShadedVertexScalar(&vs, sm.FMin, sm.FMax)
		}
		ch.AddTriMesh(sm.Mesh)
	}
	for _, ls := range p.Lines {
		ch.AddLine(ls.Lines, ls.Color)
	}
	if len(p.Title) != 0 {
		tf := assets.NewTextFormatter("NotoSans", "Regular", 24,
			utils2.WHITE, true, false)
		ch.Printf(tf, p.XMin+0.05*(p.XMax-p.XMin), p.YMax-0.05*(p.YMax-p.YMin), "%s", p.Title)
	}
	return
}

func (s *Scene) Draw() (ch *chart2d.Chart2D, err error) {
	var p *Plot
	if p, err = s.Build(); err != nil {
		return
	}
	return p.Render(), nil
}
