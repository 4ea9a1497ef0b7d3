package readfiles

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/visualpts/types"
)

const (
	offHeader   = "OFF"
	maxPrealloc = 1 << 16
)

// LoadOFF reads an OFF mesh. Only the header and counts line are validated,
// face indices are returned exactly as written
func LoadOFF(path string) (m *types.Mesh, err error) {
	var (
		file       *os.File
		nv, nf, ne int
	)
	if file, err = os.Open(path); err != nil {
		return
	}
	defer file.Close()

	scanner := newLineScanner(file)
	var line string
	if scanner.Scan() {
		line = strings.TrimSpace(scanner.Text())
	}
	if line != offHeader {
		if err = scanner.Err(); err != nil {
			return nil, fmt.Errorf("%s: error reading file: %w", path, err)
		}
		return nil, fmt.Errorf("%w: %s: %q is not a valid OFF header", ErrInvalidHeader, path, line)
	}

	var foundCounts bool
	for scanner.Scan() {
		line = strings.TrimSpace(scanner.Text())
		if len(line) == 0 || strings.HasPrefix(line, "#") {
			continue
		}
		if nv, nf, ne, err = parseCounts(line); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidHeader, path, err)
		}
		foundCounts = true
		break
	}
	if !foundCounts {
		if err = scanner.Err(); err != nil {
			return nil, fmt.Errorf("%s: error reading file: %w", path, err)
		}
		return nil, fmt.Errorf("%w: %s: missing vertex/face counts line", ErrInvalidHeader, path)
	}
	_ = ne // Edges are not tracked

	// Counts are not trusted for allocation, a short file ends in ErrTruncated
	var (
		vertices = make(types.Vertices, 0, min(nv, maxPrealloc))
		faces    = make(types.Faces, 0, min(nf, maxPrealloc))
	)
	for i := 0; i < nv; i++ {
		if line, err = nextLine(scanner, path, "vertex", i); err != nil {
			return nil, err
		}
		fields := strings.Split(line, " ")
		if len(fields) < 3 {
			return nil, fmt.Errorf("%s: vertex %d: need 3 coordinates, line: %q", path, i, line)
		}
		var xyz [3]float64
		for j := 0; j < 3; j++ {
			if xyz[j], err = strconv.ParseFloat(fields[j], 64); err != nil {
				return nil, fmt.Errorf("%s: vertex %d: %w", path, i, err)
			}
		}
		vertices = append(vertices, xyz)
	}
	for k := 0; k < nf; k++ {
		if line, err = nextLine(scanner, path, "face", k); err != nil {
			return nil, err
		}
		fields := strings.Split(line, " ")
		if len(fields) < 4 {
			return nil, fmt.Errorf("%s: face %d: need a vertex count and 3 indices, line: %q", path, k, line)
		}
		var face [3]int
		for j := 0; j < 3; j++ {
			if face[j], err = strconv.Atoi(fields[j+1]); err != nil {
				return nil, fmt.Errorf("%s: face %d: %w", path, k, err)
			}
		}
		faces = append(faces, face)
	}
	m = types.NewMesh(vertices, faces)
	return
}

func parseCounts(line string) (nv, nf, ne int, err error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		err = fmt.Errorf("counts line needs 3 integers, got %q", line)
		return
	}
	var counts [3]int
	for i, f := range fields {
		if counts[i], err = strconv.Atoi(f); err != nil {
			err = fmt.Errorf("invalid count in line %q: %v", line, err)
			return
		}
		if counts[i] < 0 {
			err = fmt.Errorf("negative count in line %q", line)
			return
		}
	}
	nv, nf, ne = counts[0], counts[1], counts[2]
	return
}

func nextLine(scanner *bufio.Scanner, path, what string, index int) (line string, err error) {
	if !scanner.Scan() {
		if err = scanner.Err(); err != nil {
			return "", fmt.Errorf("%s: error reading file: %w", path, err)
		}
		return "", fmt.Errorf("%w: %s: unexpected EOF reading %s %d", ErrTruncated, path, what, index)
	}
	return strings.TrimSpace(scanner.Text()), nil
}

// SaveOFF writes a triangles-only OFF file: every face is written with a
// vertex count of 3 and its first three indices. The edge count is always 0.
// Face values must be whole numbers
func SaveOFF(path string, vertices, faces mat.Matrix) (err error) {
	var (
		file     *os.File
		tris     types.Faces
		nv, ncv  = vertices.Dims()
		fmtCoord = func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	)
	if nv != 0 && ncv < 3 {
		return fmt.Errorf("%w: vertices need 3 columns, have %d", types.ErrShape, ncv)
	}
	if tris, err = types.NewFacesFromMatrix(faces); err != nil {
		return
	}
	if file, err = os.Create(path); err != nil {
		return
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()
	w := bufio.NewWriter(file)
	fmt.Fprintln(w, offHeader)
	fmt.Fprintf(w, "%d %d %d\n", nv, len(tris), 0)
	for i := 0; i < nv; i++ {
		fmt.Fprintf(w, "%s %s %s\n",
			fmtCoord(vertices.At(i, 0)), fmtCoord(vertices.At(i, 1)), fmtCoord(vertices.At(i, 2)))
	}
	for _, face := range tris {
		fmt.Fprintf(w, "%d %d %d %d\n", 3, face[0], face[1], face[2])
	}
	return w.Flush()
}
