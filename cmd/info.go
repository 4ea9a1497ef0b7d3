/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/notargets/visualpts/types"
	"github.com/notargets/visualpts/utils"
)

// InfoCmd represents the info command
var InfoCmd = &cobra.Command{
	Use:   "info <file>...",
	Short: "Print the shape and per column range of point and mesh files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, path := range args {
			if err := runInfo(cmd.OutOrStdout(), path); err != nil {
				return err
			}
		}
		verbosef(cmd, "%s\n", utils.GetMemUsage())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(InfoCmd)
}

func runInfo(w io.Writer, path string) (err error) {
	pio, err := newPointIO(path)
	if err != nil {
		return
	}
	if pio.IsMesh() {
		var m *types.Mesh
		if m, err = pio.LoadMesh(); err != nil {
			return
		}
		fmt.Fprintf(w, "%s: mesh, %d vertices, %d faces\n", path, m.NumVertices(), m.NumFaces())
		if cerr := m.CheckFaces(); cerr != nil {
			fmt.Fprintf(w, "  warning: %v\n", cerr)
		}
		if utils.IsNan(m.Vertices) {
			fmt.Fprintf(w, "  warning: vertices contain NaN\n")
		}
		printColumnStats(w, m.Vertices)
		return
	}
	var pc *types.PointCloud
	if pc, err = pio.LoadPoints(); err != nil {
		return
	}
	nr, nc := pc.Dims()
	fmt.Fprintf(w, "%s: points, %d rows x %d columns\n", path, nr, nc)
	if utils.IsNan(pc) {
		fmt.Fprintf(w, "  warning: points contain NaN\n")
	}
	printColumnStats(w, pc)
	return
}

func printColumnStats(w io.Writer, M mat.Matrix) {
	var (
		nr, nc = M.Dims()
		labels = []string{"x", "y", "z", "i"}
	)
	if nr == 0 {
		return
	}
	col := make([]float64, nr)
	for j := 0; j < nc; j++ {
		mat.Col(col, j, M)
		label := fmt.Sprintf("c%d", j)
		if j < len(labels) {
			label = labels[j]
		}
		fmt.Fprintf(w, "  %-3s min=%-12.6g max=%-12.6g mean=%.6g\n",
			label, floats.Min(col), floats.Max(col), stat.Mean(col, nil))
	}
}
