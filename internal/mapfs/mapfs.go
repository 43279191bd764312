/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package mapfs provides an in-memory fs.FileSystem for tests.
package mapfs

import (
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"
	"testing/fstest"
	"time"
)

// keep marks a directory that has no files yet.
const keep = ".keep"

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

// MapFileSystem is a project tree held in an fstest.MapFS. Absolute and
// relative names address the same tree.
type MapFileSystem struct {
	mu    sync.RWMutex
	files fstest.MapFS
}

// New returns an empty filesystem.
func New() *MapFileSystem {
	return &MapFileSystem{files: fstest.MapFS{}}
}

// AddFile adds a file, replacing any previous content.
func (m *MapFileSystem) AddFile(name, content string, mode fs.FileMode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.put(clean(name), []byte(content), mode)
}

// Contents returns a file's content, or false if it does not exist.
func (m *MapFileSystem) Contents(name string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	file, ok := m.files[clean(name)]
	if !ok || file.Mode.IsDir() {
		return "", false
	}
	return string(file.Data), true
}

func (m *MapFileSystem) WriteFile(name string, data []byte, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	name = clean(name)
	if parent, ok := m.files[path.Dir(name)]; ok && !parent.Mode.IsDir() {
		return &fs.PathError{Op: "open", Path: name, Err: fmt.Errorf("not a directory")}
	}
	m.put(name, append([]byte(nil), data...), perm)
	return nil
}

func (m *MapFileSystem) MkdirAll(dir string, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	dir = clean(dir)
	if file, ok := m.files[dir]; ok && !file.Mode.IsDir() {
		return &fs.PathError{Op: "mkdir", Path: dir, Err: fmt.Errorf("not a directory")}
	}
	m.put(path.Join(dir, keep), nil, perm.Perm())
	return nil
}

func (m *MapFileSystem) Exists(name string) bool {
	_, err := m.Stat(name)
	return err == nil
}

func (m *MapFileSystem) Open(name string) (fs.File, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.files.Open(clean(name))
}

func (m *MapFileSystem) ReadFile(name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.files.ReadFile(clean(name))
}

func (m *MapFileSystem) ReadDir(name string) ([]fs.DirEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.files.ReadDir(clean(name))
}

func (m *MapFileSystem) Stat(name string) (fs.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.files.Stat(clean(name))
}

func (m *MapFileSystem) put(name string, data []byte, mode fs.FileMode) {
	m.files[name] = &fstest.MapFile{Data: data, Mode: mode, ModTime: epoch}
}

// clean maps a host-style name onto the slash-separated, rootless form
// fstest.MapFS expects.
func clean(name string) string {
	name = strings.TrimPrefix(path.Clean("/"+name), "/")
	if name == "" {
		return "."
	}
	return name
}
