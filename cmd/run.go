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
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/gospline/persistence"
	"github.com/notargets/gospline/utils"
)

// RunCmd represents the persistence pair extractor
var RunCmd = &cobra.Command{
	Use:   "run <file_id> <time>",
	Short: "Extract per-dimension persistence pairs",
	Long: `
Reads <file_id>.phat.<t>.conan (boundary matrix, first line is a header) and
<file_id>.alpha.<t>.conan (alpha value and cell type per cell) and writes the
alpha values of the boundary rows of each dimension to
<file_id>.b0.<t>.conan, <file_id>.b1.<t>.conan and <file_id>.b2.<t>.conan,
where <t> is time*10000 truncated and zero padded to five digits.

gospline run sim 0.1`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			time float64
			S    persistence.Summary
		)
		if time, err = strconv.ParseFloat(args[1], 64); err != nil {
			return fmt.Errorf("time %q is not a number", args[1])
		}
		S, err = persistence.Run(persistence.RunConfig{
			Dir:    viper.GetString("dir"),
			FileID: args[0],
			Time:   time,
		})
		if err != nil {
			return
		}
		for d := 0; d < persistence.Dimensions; d++ {
			utils.Debugf("b%d: %d rows, %d values -> %s", d, S.Rows[d], S.Values[d], S.Files.Output(d))
		}
		return
	},
}

func init() {
	rootCmd.AddCommand(RunCmd)
}
