/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package transform provides content transformers selected by filename
// suffix, used to minify included files and build outputs.
package transform

import (
	"context"
	"strings"
)

// Transformer rewrites content. filename selects type-specific behaviour.
type Transformer interface {
	Transform(ctx context.Context, content, filename string) (string, error)
}

// Func adapts a function to the Transformer interface.
type Func func(ctx context.Context, content, filename string) (string, error)

// Transform calls f.
func (f Func) Transform(ctx context.Context, content, filename string) (string, error) {
	return f(ctx, content, filename)
}

// Identity returns content unchanged.
var Identity Transformer = Func(func(_ context.Context, content, _ string) (string, error) {
	return content, nil
})

type route struct {
	suffix      string
	transformer Transformer
}

// Dispatcher routes content to a transformer by filename suffix.
// Unrecognized suffixes pass through unchanged.
type Dispatcher struct {
	routes []route
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Register adds a transformer for filenames ending in suffix (e.g. ".css").
// Earlier registrations win when several suffixes match.
func (d *Dispatcher) Register(suffix string, t Transformer) *Dispatcher {
	d.routes = append(d.routes, route{suffix: strings.ToLower(suffix), transformer: t})
	return d
}

// Transform implements Transformer.
func (d *Dispatcher) Transform(ctx context.Context, content, filename string) (string, error) {
	name := strings.ToLower(filename)
	for _, r := range d.routes {
		if strings.HasSuffix(name, r.suffix) {
			return r.transformer.Transform(ctx, content, filename)
		}
	}
	return content, nil
}

// Options configures the default dispatcher.
type Options struct {
	CSS     CSSOptions
	Closure ClosureOptions
}

// Default returns a dispatcher minifying .css with the CSS compactor and .js
// with the Closure Compiler service.
func Default(opts Options) *Dispatcher {
	return NewDispatcher().
		Register(".css", NewCSSMinifier(opts.CSS)).
		Register(".js", NewClosureCompiler(opts.Closure))
}
