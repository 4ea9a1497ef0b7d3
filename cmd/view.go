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
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/visualpts/InputParameters"
	"github.com/notargets/visualpts/readfiles"
	"github.com/notargets/visualpts/types"
	"github.com/notargets/visualpts/visual"
)

// ViewCmd represents the view command
var ViewCmd = &cobra.Command{
	Use:   "view [file]...",
	Short: "Draw point clouds and meshes, colored by height, distance or intensity",
	Long: `
Draws the files in one chart, the x-y plane is shown and the color follows the
chosen mode. Files can be listed on the command line or in a YAML scene file:

Title: "Test Scene"
PointSize: 2
ColorMode: intensity # Can be height, distance or intensity
AxisVisible: true
Files:
  - Path: scan.xyz
    SkipRows: 1

visualpts view --scene scene.yaml`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			s *visual.Scene
		)
		if s, err = sceneFromCommand(cmd, args); err != nil {
			return
		}
		if _, err = s.Draw(); err != nil {
			return
		}
		wait := viper.GetDuration("wait")
		if wait > 0 {
			time.Sleep(wait)
			return
		}
		for {
			time.Sleep(10 * time.Second)
		}
	},
}

func init() {
	rootCmd.AddCommand(ViewCmd)
	ViewCmd.Flags().StringP("scene", "s", "", "YAML scene file listing the files and render options")
	ViewCmd.Flags().Float64P("pointSize", "p", InputParameters.DefaultPointSize, "point size")
	ViewCmd.Flags().StringP("color", "c", InputParameters.DefaultColorMode, "color mode: height, distance or intensity")
	ViewCmd.Flags().Bool("axis", true, "draw the x and y axes")
	ViewCmd.Flags().StringP("title", "t", "", "chart title")
	ViewCmd.Flags().Duration("wait", 0, "close after this long, 0 waits forever")
	for flag, key := range map[string]string{
		"pointSize": "view.pointSize",
		"color":     "view.color",
		"axis":      "view.axis",
		"title":     "view.title",
		"wait":      "wait",
	} {
		if err := viper.BindPFlag(key, ViewCmd.Flags().Lookup(flag)); err != nil {
			panic(err)
		}
	}
}

func sceneFromCommand(cmd *cobra.Command, args []string) (s *visual.Scene, err error) {
	var (
		sp        *InputParameters.SceneParameters
		sceneFile string
	)
	if sceneFile, err = cmd.Flags().GetString("scene"); err != nil {
		return
	}
	if len(sceneFile) != 0 {
		if sp, err = InputParameters.ReadSceneFile(sceneFile); err != nil {
			return
		}
		// Flags given explicitly win over the scene file
		flags := cmd.Flags()
		if flags.Changed("pointSize") {
			sp.PointSize = viper.GetFloat64("view.pointSize")
		}
		if flags.Changed("color") {
			sp.ColorMode = viper.GetString("view.color")
		}
		if flags.Changed("axis") {
			axis := viper.GetBool("view.axis")
			sp.AxisVisible = &axis
		}
		if flags.Changed("title") {
			sp.Title = viper.GetString("view.title")
		}
	} else {
		axis := viper.GetBool("view.axis")
		sp = &InputParameters.SceneParameters{
			Title:       viper.GetString("view.title"),
			PointSize:   viper.GetFloat64("view.pointSize"),
			ColorMode:   viper.GetString("view.color"),
			AxisVisible: &axis,
		}
	}
	strip := viper.GetBool("strip")
	for _, path := range args {
		sp.Files = append(sp.Files, InputParameters.SceneFile{
			Path:     path,
			SkipRows: viper.GetInt("skiprows"),
			Strip:    &strip,
		})
	}
	if len(sp.Files) == 0 {
		return nil, fmt.Errorf("nothing to view, give files or a --scene file")
	}
	if viper.GetBool("verbose") {
		sp.Print(cmd.OutOrStdout())
	}
	return NewScene(sp)
}

// NewScene loads every file named by the scene parameters
func NewScene(sp *InputParameters.SceneParameters) (s *visual.Scene, err error) {
	var (
		opts = visual.DefaultOptions()
	)
	opts.Title = sp.Title
	opts.PointSize = sp.PointSize
	if sp.AxisVisible != nil {
		opts.AxisVisible = *sp.AxisVisible
	}
	if opts.ColorMode, err = visual.NewColorMode(sp.ColorMode); err != nil {
		return
	}
	s = visual.NewScene(opts)
	for _, f := range sp.Files {
		var (
			pio   *readfiles.PointIO
			m     *types.Mesh
			pc    *types.PointCloud
			strip = true
		)
		if f.Strip != nil {
			strip = *f.Strip
		}
		if pio, err = readfiles.NewPointIO(f.Path, f.SkipRows, strip); err != nil {
			return nil, err
		}
		if pio.IsMesh() {
			if m, err = pio.LoadMesh(); err != nil {
				return nil, err
			}
			if err = s.AddMesh(m); err != nil {
				return nil, fmt.Errorf("%s: %w", f.Path, err)
			}
			continue
		}
		if pc, err = pio.LoadPoints(); err != nil {
			return nil, err
		}
		if err = s.AddPoints(pc); err != nil {
			return nil, fmt.Errorf("%s: %w", f.Path, err)
		}
	}
	return
}
