package InputParameters

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ghodss/yaml"
)

// Parameters obtained from a YAML scene file, for example:
//
//	Title: "Scan 12"
//	PointSize: 2
//	ColorMode: intensity # height, distance or intensity
//	AxisVisible: false
//	Files:
//	  - Path: scan12.xyz
//	    SkipRows: 1
//	  - Path: hull.off
type SceneParameters struct {
	Title       string      `json:"Title"`
	PointSize   float64     `json:"PointSize"`
	ColorMode   string      `json:"ColorMode"`
	AxisVisible *bool       `json:"AxisVisible"`
	Files       []SceneFile `json:"Files"`
}

type SceneFile struct {
	Path     string `json:"Path"`
	SkipRows int    `json:"SkipRows"`
	Strip    *bool  `json:"Strip"`
}

const (
	DefaultPointSize = 1.
	DefaultColorMode = "height"
)

func (sp *SceneParameters) Parse(data []byte) (err error) {
	if err = yaml.Unmarshal(data, sp); err != nil {
		return
	}
	sp.setDefaults()
	for i, f := range sp.Files {
		if len(f.Path) == 0 {
			return fmt.Errorf("scene file entry %d has no Path", i)
		}
		if f.SkipRows < 0 {
			return fmt.Errorf("scene file entry %d [%s]: negative SkipRows", i, f.Path)
		}
	}
	return
}

func (sp *SceneParameters) setDefaults() {
	if sp.PointSize <= 0 {
		sp.PointSize = DefaultPointSize
	}
	if len(sp.ColorMode) == 0 {
		sp.ColorMode = DefaultColorMode
	}
	if sp.AxisVisible == nil {
		sp.AxisVisible = boolP(true)
	}
	for i := range sp.Files {
		if sp.Files[i].Strip == nil {
			sp.Files[i].Strip = boolP(true)
		}
	}
}

// ReadSceneFile parses a scene file, relative data paths are taken relative
// to the scene file's directory
func ReadSceneFile(path string) (sp *SceneParameters, err error) {
	var (
		data []byte
	)
	if data, err = os.ReadFile(path); err != nil {
		return
	}
	sp = &SceneParameters{}
	if err = sp.Parse(data); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	dir := filepath.Dir(path)
	for i, f := range sp.Files {
		if !filepath.IsAbs(f.Path) {
			sp.Files[i].Path = filepath.Join(dir, f.Path)
		}
	}
	return
}

func (sp *SceneParameters) Print(w io.Writer) {
	fmt.Fprintf(w, "\"%s\"\t\t= Title\n", sp.Title)
	fmt.Fprintf(w, "%8.5f\t\t= PointSize\n", sp.PointSize)
	fmt.Fprintf(w, "[%s]\t\t= ColorMode\n", sp.ColorMode)
	if sp.AxisVisible != nil {
		fmt.Fprintf(w, "[%t]\t\t= AxisVisible\n", *sp.AxisVisible)
	}
	for i, f := range sp.Files {
		strip := true
		if f.Strip != nil {
			strip = *f.Strip
		}
		fmt.Fprintf(w, "Files[%d] = %s (SkipRows=%d, Strip=%t)\n", i, f.Path, f.SkipRows, strip)
	}
}

func boolP(b bool) *bool { return &b }
