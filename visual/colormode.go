package visual

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/notargets/visualpts/types"
)

var ErrColorMode = errors.New("invalid color mode")

type ColorMode uint8

const (
	Height    ColorMode = iota // Color changes along the z axis
	Distance                   // Color changes with distance from the origin in the x-o-y plane
	Intensity                  // Color follows the 4th column
)

var ColorModeNames = map[string]ColorMode{
	"height":    Height,
	"distance":  Distance,
	"intensity": Intensity,
}

func (cm ColorMode) String() string {
	switch cm {
	case Height:
		return "height"
	case Distance:
		return "distance"
	case Intensity:
		return "intensity"
	}
	return fmt.Sprintf("ColorMode(%d)", uint8(cm))
}

func NewColorMode(label string) (cm ColorMode, err error) {
	var ok bool
	label = strings.ToLower(strings.TrimSpace(label))
	if cm, ok = ColorModeNames[label]; !ok {
		err = fmt.Errorf("%w: [%s], must be one of height, distance, intensity", ErrColorMode, label)
	}
	return
}

// ColorValues computes the scalar used to color each point
func ColorValues(pc *types.PointCloud, mode ColorMode) (values []float32, err error) {
	var (
		nr, nc = pc.Dims()
	)
	var need int
	switch mode {
	case Height:
		need = 3
	case Distance:
		need = 2
	case Intensity:
		need = 4
	default:
		return nil, fmt.Errorf("%w: %s", ErrColorMode, mode)
	}
	if nr != 0 && nc < need {
		return nil, fmt.Errorf("%w: %s needs %d columns, points have %d", ErrColorMode, mode, need, nc)
	}
	values = make([]float32, nr)
	for i := 0; i < nr; i++ {
		row := pc.Row(i)
		switch mode {
		case Height:
			values[i] = row[2]
		case Distance:
			values[i] = float32(math.Hypot(float64(row[0]), float64(row[1])))
		case Intensity:
			values[i] = row[3]
		}
	}
	return
}
