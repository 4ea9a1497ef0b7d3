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
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/visualpts/readfiles"
)

var (
	cfgFile  string
	profiler interface{ Stop() }
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "visualpts",
	Short: "Load, convert and display point cloud and OFF mesh files",
	Long: `
Reads and writes delimited point files (.txt, .asc, .xyz) and OFF meshes (.off),
prints summaries, converts between the formats and draws them.

visualpts view scan.xyz --color intensity`,
	SilenceUsage:      true,
	PersistentPreRunE: startProfile,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if profiler != nil {
			profiler.Stop()
			profiler = nil
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.visualpts.yaml)")
	pf.IntP("skiprows", "k", 0, "number of leading lines to skip in text point files")
	pf.Bool("strip", true, "trim whitespace from lines of text point files before the comment check")
	pf.BoolP("verbose", "v", false, "print more detail")
	pf.String("profile", "", "write a profile to the current directory: cpu or mem")
	for _, name := range []string{"skiprows", "strip", "verbose", "profile"} {
		if err := viper.BindPFlag(name, pf.Lookup(name)); err != nil {
			panic(err)
		}
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".visualpts")
	}
	viper.SetEnvPrefix("VISUALPTS")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && viper.GetBool("verbose") {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}

func startProfile(cmd *cobra.Command, args []string) error {
	switch mode := viper.GetString("profile"); mode {
	case "":
	case "cpu":
		profiler = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet)
	case "mem":
		profiler = profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet)
	default:
		return fmt.Errorf("unknown profile mode [%s], use cpu or mem", mode)
	}
	return nil
}

func newPointIO(path string) (*readfiles.PointIO, error) {
	skip := viper.GetInt("skiprows")
	if skip < 0 {
		return nil, fmt.Errorf("skiprows must not be negative, got %d", skip)
	}
	return readfiles.NewPointIO(path, skip, viper.GetBool("strip"))
}

func verbosef(cmd *cobra.Command, format string, args ...interface{}) {
	if viper.GetBool("verbose") {
		fmt.Fprintf(cmd.OutOrStdout(), format, args...)
	}
}
