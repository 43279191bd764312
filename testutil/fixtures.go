/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package testutil provides fixture and golden file helpers for tests.
package testutil

import (
	"flag"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"testing"

	"bennypowers.dev/juice/internal/mapfs"
)

var update = flag.Bool("update", false, "rewrite golden files with actual output")

// FixturePath returns the on-disk directory of testdata/fixtures/<name>.
// go test runs each package in its own directory, so the shared testdata
// tree is searched for upwards.
func FixturePath(t *testing.T, name string) string {
	t.Helper()
	dir, ok := testdata(filepath.Join("fixtures", name))
	if !ok {
		t.Fatalf("fixture %s not found", name)
	}
	return dir
}

// NewFixtureFS copies testdata/fixtures/<name> into an in-memory
// filesystem under root.
func NewFixtureFS(t *testing.T, name, root string) *mapfs.MapFileSystem {
	t.Helper()

	src := os.DirFS(FixturePath(t, name))
	mfs := mapfs.New()
	err := fs.WalkDir(src, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(src, p)
		if err != nil {
			return err
		}
		mfs.AddFile(path.Join(root, p), string(data), 0644)
		return nil
	})
	if err != nil {
		t.Fatalf("loading fixture %s: %v", name, err)
	}
	return mfs
}

// LoadGoldenFile returns the content of testdata/golden/<name>.
func LoadGoldenFile(t *testing.T, name string) []byte {
	t.Helper()
	p, ok := testdata(filepath.Join("golden", name))
	if !ok {
		t.Fatalf("golden file %s not found", name)
	}
	data, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("reading golden file %s: %v", name, err)
	}
	return data
}

// UpdateGoldenFile overwrites testdata/golden/<name> with actual when the
// test binary runs with -update.
func UpdateGoldenFile(t *testing.T, name string, actual []byte) {
	t.Helper()
	if !*update {
		return
	}

	dir, ok := testdata("golden")
	if !ok {
		if dir, ok = testdata("."); !ok {
			t.Fatalf("no testdata directory for golden file %s", name)
		}
		dir = filepath.Join(dir, "golden")
	}
	target := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		t.Fatalf("creating golden directory: %v", err)
	}
	if err := os.WriteFile(target, actual, 0644); err != nil {
		t.Fatalf("writing golden file %s: %v", name, err)
	}
	t.Logf("updated %s", target)
}

func testdata(rel string) (string, bool) {
	for _, up := range []string{".", "..", filepath.Join("..", "..")} {
		p := filepath.Join(up, "testdata", rel)
		if _, err := os.Stat(p); err == nil {
			return p, true
		}
	}
	return "", false
}
