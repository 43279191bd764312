/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package preprocess expands @if/@else/@endif and @include directives,
// folding each file into a single content string.
//
// Every file scope owns a stack. Tokens are pushed as they are read; an
// @endif folds the content above the nearest @if (and @else, if present)
// into one content token, keeping only the branch its condition selects.
// An @include recursively preprocesses the named file and either splices its
// content into the parent stack or, with the minify or quote flags, collapses
// it into one transformed content token.
package preprocess

import (
	"context"
	"errors"
	"fmt"
	iofs "io/fs"
	"path/filepath"
	"strings"

	"bennypowers.dev/juice/internal/logger"
	"bennypowers.dev/juice/lexer"
	"bennypowers.dev/juice/options"
	"bennypowers.dev/juice/token"
	"bennypowers.dev/juice/transform"
)

// FileReader reads source files.
type FileReader interface {
	ReadFile(name string) ([]byte, error)
}

// Config holds the collaborators threaded through every file scope.
type Config struct {
	// FS reads source and included files.
	FS FileReader

	// Root is the directory relative paths are resolved against.
	Root string

	// Options supplies the values of @if conditions.
	Options options.Provider

	// Transform minifies content for @include ... minify.
	// Nil leaves content unchanged.
	Transform transform.Transformer
}

// Preprocessor folds files according to their directives.
type Preprocessor struct {
	cfg    Config
	active map[string]bool
}

// New creates a preprocessor.
func New(cfg Config) *Preprocessor {
	if cfg.Transform == nil {
		cfg.Transform = transform.Identity
	}
	return &Preprocessor{
		cfg:    cfg,
		active: map[string]bool{},
	}
}

// Process preprocesses filename and returns the folded content.
func (p *Preprocessor) Process(ctx context.Context, filename string) (string, error) {
	contents, err := p.processFile(ctx, filename, 0)
	if err != nil {
		return "", err
	}
	return token.Join(contents), nil
}

// ProcessSource preprocesses src as if it were read from filename.
// Includes are still read through the configured FileReader.
func (p *Preprocessor) ProcessSource(ctx context.Context, filename, src string) (string, error) {
	contents, err := p.fold(ctx, filename, src, 0)
	if err != nil {
		return "", err
	}
	return token.Join(contents), nil
}

func (p *Preprocessor) processFile(ctx context.Context, filename string, depth int) ([]token.Content, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	logger.Info("%sBuilding %q.", strings.Repeat("  ", depth), filename)

	path := p.path(filename)
	if p.active[path] {
		return nil, fmt.Errorf("%w at %q", ErrIncludeCycle, filename)
	}
	p.active[path] = true
	defer delete(p.active, path)

	data, err := p.cfg.FS.ReadFile(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %w", ErrFileNotFound, filename, err)
		}
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}

	return p.fold(ctx, filename, string(data), depth)
}

// fold runs one file scope over src.
func (p *Preprocessor) fold(ctx context.Context, filename, src string, depth int) ([]token.Content, error) {
	s := &stack{}

	for tok := range lexer.New(src).All() {
		d, ok := tok.(token.Directive)
		if !ok {
			s.push(tok)
			continue
		}

		instr, err := token.Interpret(d)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", filename, d.Line, err)
		}

		switch i := instr.(type) {
		case token.If, token.Else:
			s.push(i)
		case token.EndIf:
			if err := p.endIf(s); err != nil {
				return nil, fmt.Errorf("%s:%d: %w", filename, i.Line, err)
			}
		case token.Include:
			for _, flag := range d.Params[1:] {
				if flag != token.FlagMinify && flag != token.FlagQuote {
					logger.Warn("%s:%d: ignoring unknown @include flag %q", filename, d.Line, flag)
				}
			}
			if err := p.include(ctx, s, i, depth); err != nil {
				return nil, err
			}
		}
	}

	contents, err := s.contents()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return contents, nil
}

// endIf folds the block closed by an @endif and keeps the selected branch.
func (p *Preprocessor) endIf(s *stack) error {
	segment, marker, err := s.fold(isIfOrElse)
	if err != nil {
		return fmt.Errorf("%w: @endif without matching @if", err)
	}

	trueOutput := segment
	var falseOutput *token.Content
	if _, ok := marker.(token.Else); ok {
		s.pop()
		falseOutput = &segment
		trueOutput, marker, err = s.fold(isIf)
		if err != nil {
			if marker != nil {
				return fmt.Errorf("%w: unexpected %s before @if", err, marker)
			}
			return fmt.Errorf("%w: @else without matching @if", err)
		}
	}

	cond := s.pop().(token.If)
	selected, err := options.Resolve(p.cfg.Options, cond.Cond)
	if err != nil {
		return fmt.Errorf("@if on line %d: %w", cond.Line, err)
	}

	switch {
	case selected:
		s.push(trueOutput)
	case falseOutput != nil:
		s.push(*falseOutput)
	}
	return nil
}

// include expands inc one level deeper and contributes its content to s.
func (p *Preprocessor) include(ctx context.Context, s *stack, inc token.Include, depth int) error {
	contents, err := p.processFile(ctx, inc.File, depth+1)
	if err != nil {
		return err
	}

	if !inc.Collapsed() {
		for _, c := range contents {
			s.push(c)
		}
		return nil
	}

	text := token.Join(contents)
	if inc.Minify {
		text, err = p.cfg.Transform.Transform(ctx, text, inc.File)
		if err != nil {
			return err
		}
	}
	if inc.Quote {
		text = `"` + text + `"`
	}
	s.push(token.Content{Text: text, Line: inc.Line})
	return nil
}

func (p *Preprocessor) path(filename string) string {
	if filepath.IsAbs(filename) || p.cfg.Root == "" {
		return filepath.Clean(filename)
	}
	return filepath.Join(p.cfg.Root, filename)
}
