/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for juice.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/juice/cmd/build"
	"bennypowers.dev/juice/cmd/options"
	"bennypowers.dev/juice/cmd/preprocess"
	"bennypowers.dev/juice/cmd/project"
	"bennypowers.dev/juice/cmd/version"
	"bennypowers.dev/juice/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "juice",
	Short: "Build JavaScript and CSS files from directive-annotated sources",
	Long: `juice expands /* @if */, /* @else */, /* @endif */ and /* @include */
directives in JavaScript and CSS sources, minifies the results and writes them
to an output directory, as described by a juice.{yaml,yml,json} manifest.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if viper.GetBool("quiet") {
			logger.SetOutput(io.Discard)
		}
		logger.SetVerbose(viper.GetBool("verbose"))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// Execute runs the root command.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd.SetArgs(project.NormalizeArgs(os.Args[1:]))
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v.\n", err)
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringP("root", "C", ".", "Project directory")
	rootCmd.PersistentFlags().StringP("manifest", "m", "", "Manifest file (default: search the project directory)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug messages")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress progress output")

	for _, name := range []string{"root", "manifest", "verbose", "quiet"} {
		_ = viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}
	viper.SetEnvPrefix("juice")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd.AddCommand(build.Cmd)
	rootCmd.AddCommand(options.Cmd)
	rootCmd.AddCommand(preprocess.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
