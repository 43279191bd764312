/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	juicefs "bennypowers.dev/juice/fs"
)

// ManifestName is the base name of the manifest file without extension.
const ManifestName = "juice"

// manifestExtensions are the supported manifest extensions in priority order.
var manifestExtensions = []string{".yaml", ".yml", ".json"}

// ErrInvalidManifest indicates a manifest that parsed but is unusable.
var ErrInvalidManifest = errors.New("invalid manifest")

// Target is one file to build, with globs expanded.
type Target struct {
	// Source is the source filename relative to the project root.
	Source string

	// Output is the output filename relative to the output directory.
	Output string

	// Condition is the optional build condition.
	Condition string
}

// Load searches for juice.{yaml,yml,json} in rootDir.
// Returns nil if no manifest is found (not an error).
func Load(filesystem juicefs.FileSystem, rootDir string) (*Config, error) {
	for _, ext := range manifestExtensions {
		manifestPath := filepath.Join(rootDir, ManifestName+ext)
		if !filesystem.Exists(manifestPath) {
			continue
		}
		return LoadFile(filesystem, manifestPath)
	}

	return nil, nil
}

// LoadFile reads the manifest at path. The format follows the extension;
// JSON manifests may contain comments and trailing commas.
func LoadFile(filesystem juicefs.FileSystem, path string) (*Config, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(jsonc.ToJSON(data), cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported manifest format %q", ErrInvalidManifest, filepath.Ext(path))
	}

	if cfg.Options == nil {
		cfg.Options = map[string]Option{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Targets expands the file specs into build targets. Glob filenames are
// matched against rootDir and produce one target per match, in walk order.
func (c *Config) Targets(filesystem juicefs.FileSystem, rootDir string) ([]Target, error) {
	var result []Target

	for _, spec := range c.Files {
		if !containsGlob(spec.Filename) {
			output := spec.Output
			if output == "" {
				output = spec.Filename
			}
			result = append(result, Target{Source: spec.Filename, Output: output, Condition: spec.Condition})
			continue
		}

		matches, err := expandGlob(filesystem, rootDir, spec.Filename)
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			result = append(result, Target{Source: m, Output: m, Condition: spec.Condition})
		}
	}

	return result, nil
}

// containsGlob returns true if the pattern contains glob characters.
func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

// expandGlob expands a root-relative glob pattern and returns root-relative
// matches.
func expandGlob(filesystem juicefs.FileSystem, rootDir, pattern string) ([]string, error) {
	pattern = filepath.ToSlash(pattern)

	// Find the base directory (non-glob prefix)
	baseDir := pattern
	for containsGlob(baseDir) {
		baseDir = filepath.ToSlash(filepath.Dir(baseDir))
	}
	if baseDir == "." {
		baseDir = ""
	}

	walkRoot := filepath.Join(rootDir, baseDir)
	var matches []string

	err := fs.WalkDir(filesystem, walkRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Skip directories we can't read
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(rootDir, path)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)

		// doublestar handles both simple and ** globs
		if matched, _ := doublestar.Match(pattern, rel); matched {
			matches = append(matches, rel)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("expanding %s: %w", pattern, err)
	}

	return matches, nil
}
