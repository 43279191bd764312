/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package build drives a project build: it evaluates target conditions,
// preprocesses each target, minifies the result and writes it to the output
// directory.
package build

import (
	"context"
	"fmt"
	"path/filepath"

	"bennypowers.dev/juice/config"
	"bennypowers.dev/juice/fs"
	"bennypowers.dev/juice/internal/logger"
	"bennypowers.dev/juice/options"
	"bennypowers.dev/juice/preprocess"
	"bennypowers.dev/juice/transform"
)

// Options configures a Builder.
type Options struct {
	// FS reads sources and writes outputs.
	FS fs.FileSystem

	// Root is the project directory; sources and the output directory are
	// relative to it.
	Root string

	// Config is the loaded manifest.
	Config *config.Config

	// Options are the option values after command line overrides.
	// Defaults to the manifest's declared values.
	Options options.Set

	// Transform minifies included content and outputs.
	// Defaults to transform.Default with the manifest's settings.
	Transform transform.Transformer

	// OutDir overrides the manifest's output directory.
	OutDir string

	// NoMinify writes outputs without the final minification pass.
	// Includes flagged minify are still transformed.
	NoMinify bool
}

// Result describes one built or skipped target.
type Result struct {
	Target config.Target

	// Path is the written output path. Empty when skipped.
	Path string

	// Skipped is true when the target's condition did not hold.
	Skipped bool

	// Size is the number of bytes written.
	Size int
}

// Builder builds the targets of a project.
type Builder struct {
	opts Options
}

// New creates a builder, filling unset options from the manifest.
func New(opts Options) *Builder {
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	if opts.Options == nil {
		opts.Options = opts.Config.OptionSet()
	}
	if opts.Transform == nil {
		opts.Transform = transform.Default(transform.Options{
			CSS:     opts.Config.CSS,
			Closure: opts.Config.Closure,
		})
	}
	if opts.OutDir == "" {
		opts.OutDir = opts.Config.OutDir()
	}
	return &Builder{opts: opts}
}

// OutDir returns the absolute or root-relative output directory.
func (b *Builder) OutDir() string {
	if filepath.IsAbs(b.opts.OutDir) {
		return b.opts.OutDir
	}
	return filepath.Join(b.opts.Root, b.opts.OutDir)
}

// Build builds every target in manifest order. The first error aborts the
// build; outputs already written are left in place.
func (b *Builder) Build(ctx context.Context) ([]Result, error) {
	targets, err := b.opts.Config.Targets(b.opts.FS, b.opts.Root)
	if err != nil {
		return nil, err
	}
	if len(targets) == 0 {
		logger.Info("Nothing to build.")
		return []Result{}, nil
	}

	if err := b.opts.FS.MkdirAll(b.OutDir(), 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	results := make([]Result, 0, len(targets))
	for _, t := range targets {
		r, err := b.BuildTarget(ctx, t)
		if err != nil {
			return results, err
		}
		results = append(results, r)
	}
	return results, nil
}

// BuildTarget builds one target if its condition holds.
func (b *Builder) BuildTarget(ctx context.Context, t config.Target) (Result, error) {
	result := Result{Target: t}

	if t.Condition != "" {
		ok, err := options.Resolve(b.opts.Options, t.Condition)
		if err != nil {
			return result, fmt.Errorf("condition for %s: %w", t.Source, err)
		}
		if !ok {
			logger.Debug("Skipping %q (condition %q not met).", t.Source, t.Condition)
			result.Skipped = true
			return result, nil
		}
	}

	p := preprocess.New(preprocess.Config{
		FS:        b.opts.FS,
		Root:      b.opts.Root,
		Options:   b.opts.Options,
		Transform: b.opts.Transform,
	})
	output, err := p.Process(ctx, t.Source)
	if err != nil {
		return result, err
	}

	outPath := filepath.Join(b.OutDir(), t.Output)
	if !b.opts.NoMinify {
		output, err = b.opts.Transform.Transform(ctx, output, outPath)
		if err != nil {
			return result, err
		}
	}

	logger.Info("Producing %q.", outPath)
	if err := b.opts.FS.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return result, fmt.Errorf("creating directory for %s: %w", outPath, err)
	}
	if err := b.opts.FS.WriteFile(outPath, []byte(output), 0644); err != nil {
		return result, fmt.Errorf("writing %s: %w", outPath, err)
	}

	result.Path = outPath
	result.Size = len(output)
	return result, nil
}
