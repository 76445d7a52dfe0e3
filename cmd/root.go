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

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/gospline/utils"
)

var (
	cfgFile  string
	profiler interface{ Stop() }
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gospline",
	Short: "Spline basis and persistence tools",
	Long: `
Batch tools for the spline interpolation and persistent homology workflow:

  run      extract persistence pairs from PHAT boundary and alpha files
  bspline  invert the B-spline constraint matrix in bspline.txt
  tspline  invert the T-spline constraint matrix in tspline.txt
  invert   invert any constraint matrix file
  bicubic  sample a periodic bicubic Hermite patch and render it`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: teardown,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		teardown(rootCmd, nil)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.gospline.yaml)")
	rootCmd.PersistentFlags().StringP("dir", "D", "", "directory holding input and output files (default is the working directory)")
	rootCmd.PersistentFlags().String("logfile", "", "copy diagnostics to this file, rotated by size")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "print debugging diagnostics")
	rootCmd.PersistentFlags().String("profile", "", "write a profile to the working directory: cpu or mem")
	for _, name := range []string{"dir", "logfile", "verbose", "profile"} {
		if err := viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name)); err != nil {
			panic(err)
		}
	}
	viper.SetDefault("max_log_size", 10)
	viper.SetDefault("max_log_age", 30)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		// Search config in home directory with name ".gospline" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".gospline")
	}

	viper.SetEnvPrefix("gospline")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func setup(cmd *cobra.Command, args []string) error {
	lc := &utils.LogConfig{
		Logfile: viper.GetString("logfile"),
		MaxSize: viper.GetInt("max_log_size"),
		MaxAge:  viper.GetInt("max_log_age"),
		Verbose: viper.GetBool("verbose"),
	}
	lc.SetLogger()
	switch mode := viper.GetString("profile"); mode {
	case "":
	case "cpu":
		profiler = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet)
	case "mem":
		profiler = profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet)
	default:
		return fmt.Errorf("unknown profile mode %q, want cpu or mem", mode)
	}
	return nil
}

func teardown(cmd *cobra.Command, args []string) {
	if profiler != nil {
		profiler.Stop()
		profiler = nil
	}
	utils.Debugf("%s", utils.GetMemUsage())
	utils.CloseLog()
}
