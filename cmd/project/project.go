/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package project loads the manifest and option overrides shared by the
// build and preprocess commands.
package project

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/juice/config"
	"bennypowers.dev/juice/fs"
	"bennypowers.dev/juice/options"
)

// Project is a loaded manifest with its root directory.
type Project struct {
	FS     fs.FileSystem
	Root   string
	Config *config.Config
}

// Load reads the manifest named by --manifest, or searches --root for one.
func Load(filesystem fs.FileSystem) (*Project, error) {
	root := viper.GetString("root")
	if root == "" {
		root = "."
	}

	var (
		cfg *config.Config
		err error
	)
	if manifest := viper.GetString("manifest"); manifest != "" {
		cfg, err = config.LoadFile(filesystem, manifest)
		if err == nil && !viper.IsSet("root") {
			root = filepath.Dir(manifest)
		}
	} else {
		cfg, err = config.Load(filesystem, root)
	}
	if err != nil {
		return nil, fmt.Errorf("loading manifest: %w", err)
	}
	if cfg == nil {
		return nil, fmt.Errorf("no %s.{yaml,yml,json} manifest found in %s", config.ManifestName, root)
	}

	return &Project{FS: filesystem, Root: root, Config: cfg}, nil
}

// AddOverrideFlags registers --enable and --disable on cmd.
func AddOverrideFlags(cmd *cobra.Command) {
	cmd.Flags().StringSlice("enable", nil, "Enable options (repeatable, comma separated)")
	cmd.Flags().StringSlice("disable", nil, "Disable options (repeatable, comma separated)")
}

// OptionSet returns the manifest defaults with the command's --enable and
// --disable overrides applied, in that order.
func (p *Project) OptionSet(cmd *cobra.Command) (options.Set, error) {
	set := p.Config.OptionSet()

	enable, _ := cmd.Flags().GetStringSlice("enable")
	disable, _ := cmd.Flags().GetStringSlice("disable")
	for _, name := range enable {
		if err := set.Enable(name); err != nil {
			return nil, err
		}
	}
	for _, name := range disable {
		if err := set.Disable(name); err != nil {
			return nil, err
		}
	}
	return set, nil
}

// NormalizeArgs rewrites the legacy --enable-NAME and --disable-NAME
// arguments into --enable=NAME and --disable=NAME.
func NormalizeArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for _, arg := range args {
		if name, ok := strings.CutPrefix(arg, "--enable-"); ok && name != "" {
			arg = "--enable=" + name
		} else if name, ok := strings.CutPrefix(arg, "--disable-"); ok && name != "" {
			arg = "--disable=" + name
		}
		out = append(out, arg)
	}
	return out
}
