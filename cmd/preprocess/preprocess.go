/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package preprocess provides the preprocess command for juice.
package preprocess

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"bennypowers.dev/juice/cmd/project"
	"bennypowers.dev/juice/fs"
	"bennypowers.dev/juice/preprocess"
	"bennypowers.dev/juice/transform"
)

// Cmd is the preprocess cobra command.
var Cmd = &cobra.Command{
	Use:   "preprocess FILE|-",
	Short: "Expand the directives of one file and print the result",
	Long: `Expand the @if, @else, @endif and @include directives of one file
and print the folded text to stdout without the final minification.

FILE is resolved against the project directory. Use - to read stdin;
includes are still resolved against the project directory.

Examples:
  juice preprocess src/app.js --enable debug
  cat src/app.js | juice preprocess -`,
	Args: cobra.ExactArgs(1),
	RunE: run,
}

func init() {
	project.AddOverrideFlags(Cmd)
}

func run(cmd *cobra.Command, args []string) error {
	p, err := project.Load(fs.NewOSFileSystem())
	if err != nil {
		return err
	}
	set, err := p.OptionSet(cmd)
	if err != nil {
		return err
	}

	pp := preprocess.New(preprocess.Config{
		FS:      p.FS,
		Root:    p.Root,
		Options: set,
		Transform: transform.Default(transform.Options{
			CSS:     p.Config.CSS,
			Closure: p.Config.Closure,
		}),
	})

	var out string
	if args[0] == "-" {
		src, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		out, err = pp.ProcessSource(cmd.Context(), "<stdin>", string(src))
		if err != nil {
			return err
		}
	} else {
		out, err = pp.Process(cmd.Context(), args[0])
		if err != nil {
			return err
		}
	}

	_, err = io.WriteString(cmd.OutOrStdout(), out)
	return err
}
