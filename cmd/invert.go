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
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/gospline/splinebasis"
)

// InvertCmd inverts an arbitrary constraint matrix file
var InvertCmd = &cobra.Command{
	Use:   "invert <file>",
	Short: "Invert a constraint matrix and print it as integers",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		p := splinebasis.Preset{Name: "invert", File: filepath.Base(args[0])}
		p.Width, _ = cmd.Flags().GetInt("width")
		p.Split, _ = cmd.Flags().GetInt("split")
		_, err = splinebasis.Run(p, filepath.Dir(args[0]), cmd.OutOrStdout())
		return
	},
}

func newPresetCmd(p splinebasis.Preset, short string) *cobra.Command {
	c := &cobra.Command{
		Use:   p.Name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			pp := p
			pp.File, _ = cmd.Flags().GetString("file")
			_, err = splinebasis.Run(pp, viper.GetString("dir"), cmd.OutOrStdout())
			return
		},
	}
	c.Flags().StringP("file", "f", p.File, "constraint matrix file, lines starting with # are comments")
	return c
}

// BSplineCmd and TSplineCmd invert the fixed basis files
var (
	BSplineCmd = newPresetCmd(splinebasis.BSpline, "Invert the B-spline basis constraints in bspline.txt")
	TSplineCmd = newPresetCmd(splinebasis.TSpline, "Invert the T-spline basis constraints in tspline.txt, 32 columns per line")
)

func init() {
	rootCmd.AddCommand(InvertCmd, BSplineCmd, TSplineCmd)
	InvertCmd.Flags().IntP("width", "w", 2, "minimum width of each printed integer")
	InvertCmd.Flags().IntP("split", "s", 0, "columns per printed line, 0 prints whole rows")
}
