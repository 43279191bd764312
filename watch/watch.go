/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package watch re-runs a build when files under a project root change.
package watch

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"bennypowers.dev/juice/internal/logger"
)

// DefaultDebounce is how long the watcher waits for writes to settle.
const DefaultDebounce = 200 * time.Millisecond

// RebuildFunc runs one full build.
type RebuildFunc func(ctx context.Context) error

// Watcher watches a directory tree and calls a RebuildFunc after changes.
type Watcher struct {
	root     string
	ignore   []string
	rebuild  RebuildFunc
	watcher  *fsnotify.Watcher
	Debounce time.Duration
}

// New creates a watcher for root. Paths under any of the ignore
// directories (typically the output directory) never trigger a rebuild.
func New(root string, ignore []string, rebuild RebuildFunc) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	cleaned := make([]string, 0, len(ignore))
	for _, dir := range ignore {
		cleaned = append(cleaned, filepath.Clean(dir))
	}

	return &Watcher{
		root:     filepath.Clean(root),
		ignore:   cleaned,
		rebuild:  rebuild,
		watcher:  watcher,
		Debounce: DefaultDebounce,
	}, nil
}

// Run watches until ctx is done, then closes the underlying watcher and
// returns ctx.Err(). Rebuild errors are logged and do not stop the loop.
func (w *Watcher) Run(ctx context.Context) error {
	defer func() {
		if err := w.watcher.Close(); err != nil {
			logger.Error("closing watcher: %v", err)
		}
	}()

	if err := w.addTree(w.root); err != nil {
		return err
	}

	timer := time.NewTimer(w.Debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.handle(event) {
				continue
			}
			timer.Reset(w.Debounce)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watch: %v", err)

		case <-timer.C:
			logger.Info("Change detected, rebuilding.")
			if err := w.rebuild(ctx); err != nil {
				logger.Error("Build failed: %v", err)
			}
		}
	}
}

// handle reports whether event should trigger a rebuild. New directories
// are added to the watch list.
func (w *Watcher) handle(event fsnotify.Event) bool {
	if w.skipped(event.Name) {
		return false
	}
	if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) &&
		!event.Op.Has(fsnotify.Remove) && !event.Op.Has(fsnotify.Rename) {
		return false
	}
	if event.Op.Has(fsnotify.Create) {
		if err := w.addTree(event.Name); err != nil {
			logger.Debug("watch: %v", err)
		}
	}
	logger.Debug("watch: %s %s", event.Op, event.Name)
	return true
}

// addTree adds dir and every directory below it, skipping hidden and
// ignored directories. Non-directories are ignored.
func (w *Watcher) addTree(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != w.root && w.skipped(path) {
			return filepath.SkipDir
		}
		return w.watcher.Add(path)
	})
}

func (w *Watcher) skipped(path string) bool {
	path = filepath.Clean(path)
	if rel, err := filepath.Rel(w.root, path); err == nil {
		for part := range strings.SplitSeq(rel, string(filepath.Separator)) {
			if strings.HasPrefix(part, ".") && part != "." && part != ".." {
				return true
			}
		}
	}
	for _, dir := range w.ignore {
		if path == dir || strings.HasPrefix(path, dir+string(filepath.Separator)) {
			return true
		}
	}
	return false
}
