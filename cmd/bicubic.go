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
	"math/rand"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gonum.org/v1/plot/vg"

	"github.com/notargets/gospline/InputParameters"
	"github.com/notargets/gospline/bicubic"
	"github.com/notargets/gospline/utils"
)

// BicubicCmd represents the bicubic patch demonstration
var BicubicCmd = &cobra.Command{
	Use:   "bicubic",
	Short: "Sample a periodic bicubic Hermite patch over a random grid and render both",
	Long: `
Builds a random sample grid, evaluates the periodic bicubic Hermite interpolant
on a refined lattice and writes heat maps of the samples and of the refined
values to <output>_I.png and <output>_J.png.

Example parameters file:
########################################
Title: "Test Case"
Rows: 5
Cols: 5
Refine: 10
Seed: 1
Output: bicubic
########################################`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			ip   *InputParameters.BicubicParameters
			data []byte
		)
		ip = InputParameters.NewBicubicParameters()
		if icFile, _ := cmd.Flags().GetString("inputConditionsFile"); len(icFile) != 0 {
			if data, err = os.ReadFile(icFile); err != nil {
				return
			}
			if err = ip.Parse(data); err != nil {
				return fmt.Errorf("%s: %w", icFile, err)
			}
		}
		if cmd.Flags().Changed("output") {
			ip.Output, _ = cmd.Flags().GetString("output")
		}
		if cmd.Flags().Changed("seed") {
			ip.Seed, _ = cmd.Flags().GetInt64("seed")
		}
		if viper.GetBool("verbose") {
			ip.Print(os.Stderr)
		}
		_, _, err = RunBicubic(ip, viper.GetString("dir"))
		return
	},
}

func init() {
	rootCmd.AddCommand(BicubicCmd)
	BicubicCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for demo parameters like:\n\t- Rows, Cols\n\t- Refine\n\t- Seed")
	BicubicCmd.Flags().StringP("output", "o", "bicubic", "prefix of the image files")
	BicubicCmd.Flags().Int64("seed", 1, "seed of the random sample grid")
}

// RunBicubic returns the sample grid I and the refined evaluation J
func RunBicubic(ip *InputParameters.BicubicParameters, dir string) (I, J utils.Matrix, err error) {
	var (
		bc  *bicubic.Patch
		rnd = rand.New(rand.NewSource(ip.Seed))
	)
	if err = ip.Validate(); err != nil {
		return
	}
	I = utils.NewMatrix(ip.Rows, ip.Cols)
	for i := 0; i < ip.Rows; i++ {
		for j := 0; j < ip.Cols; j++ {
			I.Set(i, j, rnd.Float64())
		}
	}
	if bc, err = bicubic.New(I); err != nil {
		return
	}
	nr, nc, step := ip.EvalDims()
	J = bc.EvalGrid(nr, nc, step)
	utils.Debugf("evaluated %dx%d points, range [%.4f, %.4f]", nr, nc, J.Min(), J.Max())

	prefix := ip.Output
	if dir != "" && !filepath.IsAbs(prefix) {
		prefix = filepath.Join(dir, prefix)
	}
	size := vg.Length(ip.Size) * vg.Inch
	if err = bicubic.SaveHeatMap(I, ip.Title+": I", prefix+"_I.png", size); err != nil {
		return
	}
	if err = bicubic.SaveHeatMap(J, ip.Title+": J", prefix+"_J.png", size); err != nil {
		return
	}
	utils.Infof("wrote %s_I.png and %s_J.png", prefix, prefix)
	return
}
