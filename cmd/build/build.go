/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package build provides the build command for juice.
package build

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	buildlib "bennypowers.dev/juice/build"
	"bennypowers.dev/juice/cmd/project"
	"bennypowers.dev/juice/fs"
	"bennypowers.dev/juice/internal/logger"
	"bennypowers.dev/juice/transform"
	"bennypowers.dev/juice/watch"
)

// Cmd is the build cobra command.
var Cmd = &cobra.Command{
	Use:   "build",
	Short: "Build the files listed in the manifest",
	Long: `Build every file listed in the manifest whose condition holds.

Each file is preprocessed, minified according to its output extension
(.css with the built-in compactor, .js with the Closure Compiler service)
and written to the output directory.

Examples:
  # Build with manifest defaults
  juice build

  # Override options
  juice build --enable debug --disable legacy
  juice build --enable-debug --disable-legacy

  # Rebuild whenever a source changes
  juice build --watch`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	project.AddOverrideFlags(Cmd)
	Cmd.Flags().StringP("out", "o", "", "Output directory (default: manifest out, or \"out\")")
	Cmd.Flags().Bool("no-minify", false, "Skip the final minification of outputs")
	Cmd.Flags().Duration("timeout", transform.DefaultTimeout, "Timeout for each Closure Compiler request")
	Cmd.Flags().String("closure-url", "", "Closure Compiler endpoint (default: manifest closure.url)")
	Cmd.Flags().BoolP("watch", "w", false, "Rebuild when sources change")

	for _, name := range []string{"out", "no-minify", "timeout", "closure-url"} {
		_ = viper.BindPFlag(name, Cmd.Flags().Lookup(name))
	}
}

func run(cmd *cobra.Command, args []string) error {
	watchMode, _ := cmd.Flags().GetBool("watch")

	p, builder, err := load(cmd)
	if err != nil {
		return err
	}

	if err := build(cmd.Context(), builder); err != nil && !watchMode {
		return err
	} else if err != nil {
		logger.Error("Build failed: %v", err)
	}
	if !watchMode {
		return nil
	}

	w, err := watch.New(p.Root, []string{builder.OutDir()}, reloading(cmd))
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	logger.Info("Watching %s for changes.", p.Root)
	if err := w.Run(cmd.Context()); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// load reads the manifest and returns a builder configured from it and the
// command's flags.
func load(cmd *cobra.Command) (*project.Project, *buildlib.Builder, error) {
	p, err := project.Load(fs.NewOSFileSystem())
	if err != nil {
		return nil, nil, err
	}
	opts, err := p.OptionSet(cmd)
	if err != nil {
		return nil, nil, err
	}

	closure := p.Config.Closure
	closure.Timeout = viper.GetDuration("timeout")
	if url := viper.GetString("closure-url"); url != "" {
		closure.URL = url
	}

	builder := buildlib.New(buildlib.Options{
		FS:      p.FS,
		Root:    p.Root,
		Config:  p.Config,
		Options: opts,
		Transform: transform.Default(transform.Options{
			CSS:     p.Config.CSS,
			Closure: closure,
		}),
		OutDir:   viper.GetString("out"),
		NoMinify: viper.GetBool("no-minify"),
	})
	return p, builder, nil
}

// reloading returns a rebuild that reads the manifest again first, so edits
// to options and files take effect without restarting the watcher.
func reloading(cmd *cobra.Command) watch.RebuildFunc {
	return func(ctx context.Context) error {
		_, builder, err := load(cmd)
		if err != nil {
			return err
		}
		return build(ctx, builder)
	}
}

func build(ctx context.Context, builder *buildlib.Builder) error {
	if _, err := builder.Build(ctx); err != nil {
		return err
	}
	logger.Info("\nBuild process completed without error.")
	return nil
}
