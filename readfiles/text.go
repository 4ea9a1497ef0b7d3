package readfiles

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/visualpts/types"
)

// TextOptions controls parsing of delimited point files
type TextOptions struct {
	Delimiter string // A blank delimiter matches any run of whitespace
	Comments  string // Lines starting with this prefix are ignored
	SkipRows  int    // Leading lines dropped before any other processing
	Strip     bool   // Trim each line before the comment check
}

func DefaultTextOptions(delimiter string) TextOptions {
	return TextOptions{
		Delimiter: delimiter,
		Comments:  "#",
		SkipRows:  0,
		Strip:     true,
	}
}

// LoadText reads one float32 row per data line. Unparsable tokens are
// dropped from their row rather than failing the load, rows of unequal width
// fail when the cloud is assembled
func LoadText(path string, opts TextOptions) (pc *types.PointCloud, err error) {
	var (
		file *os.File
		rows [][]float32
	)
	if file, err = os.Open(path); err != nil {
		return
	}
	defer file.Close()

	scanner := newLineScanner(file)
	for row := 0; scanner.Scan(); row++ {
		if row < opts.SkipRows {
			continue
		}
		line := scanner.Text()
		if opts.Strip {
			line = strings.TrimSpace(line)
		}
		if len(opts.Comments) != 0 && strings.HasPrefix(line, opts.Comments) {
			continue
		}
		rows = append(rows, parseRow(line, opts.Delimiter))
	}
	if err = scanner.Err(); err != nil {
		err = fmt.Errorf("%s: error reading file: %w", path, err)
		return
	}
	if pc, err = types.NewPointCloud(rows); err != nil {
		err = fmt.Errorf("%s: %w", path, err)
	}
	return
}

func parseRow(line, delimiter string) (row []float32) {
	var (
		tokens []string
	)
	if strings.TrimSpace(delimiter) == "" {
		tokens = strings.Fields(line)
	} else {
		tokens = strings.Split(line, delimiter)
	}
	row = make([]float32, 0, len(tokens))
	for _, tok := range tokens {
		f, err := strconv.ParseFloat(strings.TrimSpace(tok), 32)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			continue
		}
		row = append(row, float32(f))
	}
	return
}

// SaveText writes each row of data joined by delimiter, using the shortest
// representation that reads back to the same value
func SaveText(path string, data mat.Matrix, delimiter string) (err error) {
	var (
		file   *os.File
		nr, nc = data.Dims()
		bits   = 64
	)
	if _, ok := data.(*types.PointCloud); ok {
		bits = 32
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
	fields := make([]string, nc)
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			fields[j] = strconv.FormatFloat(data.At(i, j), 'g', -1, bits)
		}
		if _, err = fmt.Fprintln(w, strings.Join(fields, delimiter)); err != nil {
			return
		}
	}
	return w.Flush()
}

func newLineScanner(r io.Reader) (scanner *bufio.Scanner) {
	scanner = bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	return
}

const maxLineLength = 16 * 1024 * 1024
