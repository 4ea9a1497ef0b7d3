package InputParameters

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScene(t *testing.T) {
	fileInput := []byte(`
Title: Test Scene
PointSize: 3
ColorMode: intensity # Can be height, distance or intensity
AxisVisible: false
Files:
  - Path: scan.xyz
    SkipRows: 2
  - Path: hull.off
    Strip: false
`)
	var sp SceneParameters
	require.NoError(t, sp.Parse(fileInput))
	assert.Equal(t, "Test Scene", sp.Title)
	assert.Equal(t, 3., sp.PointSize)
	assert.Equal(t, "intensity", sp.ColorMode)
	require.NotNil(t, sp.AxisVisible)
	assert.False(t, *sp.AxisVisible)
	require.Len(t, sp.Files, 2)
	assert.Equal(t, 2, sp.Files[0].SkipRows)
	assert.True(t, *sp.Files[0].Strip)
	assert.False(t, *sp.Files[1].Strip)

	var buf bytes.Buffer
	sp.Print(&buf)
	assert.Contains(t, buf.String(), "Files[1] = hull.off (SkipRows=0, Strip=false)")
}

func TestParseSceneDefaults(t *testing.T) {
	var sp SceneParameters
	require.NoError(t, sp.Parse([]byte("Files:\n  - Path: a.txt\n")))
	assert.Equal(t, DefaultPointSize, sp.PointSize)
	assert.Equal(t, DefaultColorMode, sp.ColorMode)
	assert.True(t, *sp.AxisVisible)
	assert.True(t, *sp.Files[0].Strip)
}

func TestParseSceneErrors(t *testing.T) {
	var sp SceneParameters
	assert.Error(t, sp.Parse([]byte("Files:\n  - SkipRows: 1\n")))
	assert.Error(t, sp.Parse([]byte("Files:\n  - Path: a.xyz\n    SkipRows: -1\n")))
	assert.Error(t, sp.Parse([]byte("Files: [")))
}

func TestReadSceneFile(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "scene.yaml")
	abs := filepath.Join(dir, "abs.xyz")
	content := "Title: s\nFiles:\n  - Path: rel.xyz\n  - Path: " + abs + "\n"
	require.NoError(t, os.WriteFile(fn, []byte(content), 0644))
	sp, err := ReadSceneFile(fn)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "rel.xyz"), sp.Files[0].Path)
	assert.Equal(t, abs, sp.Files[1].Path)

	_, err = ReadSceneFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
