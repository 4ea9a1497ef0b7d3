package readfiles

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/visualpts/types"
)

var (
	ErrUnknownFiletype = errors.New("unknown filetype")
	ErrInvalidHeader   = errors.New("invalid header")
	ErrTruncated       = errors.New("truncated file")
	ErrSaveArity       = errors.New("wrong number of arrays to save")
	ErrNotMesh         = errors.New("file format does not hold a mesh")
)

type format struct {
	delimiter string
	isMesh    bool
	saveArity int
	load      func(pio *PointIO) ([]mat.Matrix, error)
	save      func(pio *PointIO, data []mat.Matrix) error
}

func textFormat(delimiter string) format {
	return format{
		delimiter: delimiter,
		saveArity: 1,
		load: func(pio *PointIO) ([]mat.Matrix, error) {
			pc, err := LoadText(pio.path, pio.Options)
			if err != nil {
				return nil, err
			}
			return []mat.Matrix{pc}, nil
		},
		save: func(pio *PointIO, data []mat.Matrix) error {
			return SaveText(pio.path, data[0], pio.Options.Delimiter)
		},
	}
}

var formats = map[string]format{
	".txt": textFormat(","),
	".asc": textFormat(","),
	".xyz": textFormat(" "),
	".off": {
		isMesh:    true,
		saveArity: 2,
		load: func(pio *PointIO) ([]mat.Matrix, error) {
			m, err := LoadOFF(pio.path)
			if err != nil {
				return nil, err
			}
			return []mat.Matrix{m.Vertices, m.Faces}, nil
		},
		save: func(pio *PointIO, data []mat.Matrix) error {
			return SaveOFF(pio.path, data[0], data[1])
		},
	},
}

func SupportedExtensions() (exts []string) {
	for ext := range formats {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return
}

// PointIO loads and saves one file, the codec is chosen from the file
// extension when the PointIO is created
type PointIO struct {
	// Options apply to the delimited text formats only
	Options TextOptions
	path    string
	ext     string
	codec   format
}

func NewPointIO(path string, skipRows int, strip bool) (pio *PointIO, err error) {
	var (
		ext   = strings.ToLower(filepath.Ext(path))
		f, ok = formats[ext]
	)
	if !ok {
		err = fmt.Errorf("%w: %s: file could only be one of %s",
			ErrUnknownFiletype, path, strings.Join(SupportedExtensions(), ", "))
		return
	}
	pio = &PointIO{
		Options: DefaultTextOptions(f.delimiter),
		path:    path,
		ext:     ext,
		codec:   f,
	}
	pio.Options.SkipRows = skipRows
	pio.Options.Strip = strip
	return
}

func (pio *PointIO) Path() string { return pio.path }

func (pio *PointIO) Ext() string { return pio.ext }

func (pio *PointIO) IsMesh() bool { return pio.codec.isMesh }

// SaveArity is the number of arrays Save expects: 1 for point files,
// 2 (vertices, faces) for meshes
func (pio *PointIO) SaveArity() int { return pio.codec.saveArity }

// Load returns the file contents as positional arrays, [points] for point
// files and [vertices, faces] for meshes
func (pio *PointIO) Load() ([]mat.Matrix, error) {
	return pio.codec.load(pio)
}

func (pio *PointIO) Save(data ...mat.Matrix) error {
	if len(data) != pio.codec.saveArity {
		return fmt.Errorf("%w: %s takes %d, got %d",
			ErrSaveArity, pio.ext, pio.codec.saveArity, len(data))
	}
	return pio.codec.save(pio, data)
}

// LoadPoints loads any supported file as a point cloud, meshes contribute
// their vertices
func (pio *PointIO) LoadPoints() (pc *types.PointCloud, err error) {
	if pio.codec.isMesh {
		var m *types.Mesh
		if m, err = LoadOFF(pio.path); err != nil {
			return
		}
		return m.PointCloud(), nil
	}
	return LoadText(pio.path, pio.Options)
}

func (pio *PointIO) LoadMesh() (m *types.Mesh, err error) {
	if !pio.codec.isMesh {
		err = fmt.Errorf("%w: %s", ErrNotMesh, pio.path)
		return
	}
	return LoadOFF(pio.path)
}
