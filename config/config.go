/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides the project manifest: declared options and the
// files to build.
package config

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"bennypowers.dev/juice/options"
	"bennypowers.dev/juice/transform"
)

// DefaultOut is the output directory used when the manifest names none.
const DefaultOut = "out"

// Config represents a juice project manifest.
type Config struct {
	// Options declares the boolean build options and their defaults.
	Options map[string]Option `yaml:"options" json:"options"`

	// Files lists the build targets in order.
	Files []FileSpec `yaml:"files" json:"files"`

	// Out is the output directory, relative to the project root.
	Out string `yaml:"out" json:"out"`

	// CSS configures the stylesheet compactor.
	CSS transform.CSSOptions `yaml:"css" json:"css"`

	// Closure configures the JavaScript compiler service.
	Closure transform.ClosureOptions `yaml:"closure" json:"closure"`
}

// Option is a declared build option.
// It can be specified as a bare boolean or as an object with help text.
type Option struct {
	// Value is the default value.
	Value bool `yaml:"value" json:"value"`

	// Help describes the option for `juice options`.
	Help string `yaml:"help" json:"help"`
}

// FileSpec is a build target.
// It can be specified as a simple string filename or as an object.
type FileSpec struct {
	// Filename is the source file (supports globs when Output is empty).
	Filename string `yaml:"filename" json:"filename"`

	// Output is the output name inside Out. Defaults to Filename.
	Output string `yaml:"output" json:"output"`

	// Condition gates the target on an option, e.g. "debug" or "!debug".
	Condition string `yaml:"condition" json:"condition"`
}

// UnmarshalYAML handles both boolean and object forms for Option.
func (o *Option) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		return node.Decode(&o.Value)
	}

	type rawOption Option
	return node.Decode((*rawOption)(o))
}

// UnmarshalJSON handles both boolean and object forms for Option.
func (o *Option) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		o.Value = b
		return nil
	}

	type rawOption Option
	return json.Unmarshal(data, (*rawOption)(o))
}

// UnmarshalYAML handles both string and object forms for FileSpec.
func (f *FileSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		f.Filename = node.Value
		return nil
	}

	type rawFileSpec FileSpec
	return node.Decode((*rawFileSpec)(f))
}

// UnmarshalJSON handles both string and object forms for FileSpec.
func (f *FileSpec) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f.Filename = s
		return nil
	}

	type rawFileSpec FileSpec
	return json.Unmarshal(data, (*rawFileSpec)(f))
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		Options: map[string]Option{},
		Files:   nil,
		Out:     DefaultOut,
	}
}

// OptionSet returns a fresh option set holding the declared defaults.
func (c *Config) OptionSet() options.Set {
	set := make(options.Set, len(c.Options))
	for name, opt := range c.Options {
		set[name] = opt.Value
	}
	return set
}

// OutDir returns the output directory, defaulting to DefaultOut.
func (c *Config) OutDir() string {
	if c.Out == "" {
		return DefaultOut
	}
	return c.Out
}

// Validate checks the manifest for structural errors.
func (c *Config) Validate() error {
	for i, spec := range c.Files {
		if spec.Filename == "" {
			return fmt.Errorf("%w: files[%d] has no filename", ErrInvalidManifest, i)
		}
		if spec.Output != "" && containsGlob(spec.Filename) {
			return fmt.Errorf("%w: files[%d] sets output for glob %q", ErrInvalidManifest, i, spec.Filename)
		}
	}
	return nil
}
