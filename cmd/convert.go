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

	"github.com/spf13/cobra"

	"github.com/notargets/visualpts/readfiles"
	"github.com/notargets/visualpts/types"
)

// ConvertCmd represents the convert command
var ConvertCmd = &cobra.Command{
	Use:   "convert <src> <dst>",
	Short: "Convert between point and mesh file formats",
	Long: `
Loads src and saves it as dst, the formats follow the file extensions.
Meshes saved as point files keep their vertices, point files saved as
meshes keep their first three columns as vertices and have no faces.

visualpts convert scan.txt scan.xyz`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			src, dst *readfiles.PointIO
		)
		if src, err = newPointIO(args[0]); err != nil {
			return
		}
		if dst, err = newPointIO(args[1]); err != nil {
			return
		}
		if err = Convert(src, dst); err != nil {
			return
		}
		verbosef(cmd, "wrote %s\n", dst.Path())
		return
	},
}

func init() {
	rootCmd.AddCommand(ConvertCmd)
}

func Convert(src, dst *readfiles.PointIO) (err error) {
	switch {
	case src.IsMesh():
		var m *types.Mesh
		if m, err = src.LoadMesh(); err != nil {
			return
		}
		if dst.IsMesh() {
			return dst.Save(m.Vertices, m.Faces)
		}
		return dst.Save(m.Vertices)
	default:
		var pc *types.PointCloud
		if pc, err = src.LoadPoints(); err != nil {
			return
		}
		if dst.IsMesh() {
			if _, nc := pc.Dims(); pc.Len() != 0 && nc < 3 {
				return fmt.Errorf("%s: need 3 columns for mesh vertices, have %d", src.Path(), nc)
			}
			return dst.Save(pc.Columns(3), types.Faces{})
		}
		return dst.Save(pc)
	}
}
