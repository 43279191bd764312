/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Directive names understood by the preprocessor.
const (
	NameIf      = "if"
	NameElse    = "else"
	NameEndIf   = "endif"
	NameInclude = "include"
)

// Include flags.
const (
	FlagMinify = "minify"
	FlagQuote  = "quote"
)

// Sentinel errors for directive interpretation.
var (
	// ErrUnknownDirective indicates a directive name outside if/else/endif/include.
	ErrUnknownDirective = errors.New("unknown directive")

	// ErrMissingParameter indicates a directive lacks a required parameter.
	ErrMissingParameter = errors.New("missing directive parameter")
)

// Instruction is an interpreted directive. The concrete types are If, Else,
// EndIf and Include.
type Instruction interface {
	Token
	instruction()
}

// If opens a conditional block. Cond is an option name, optionally prefixed
// with "!".
type If struct {
	Cond string
	Line int
}

// Else separates the true and false branches of a conditional block.
type Else struct {
	Line int
}

// EndIf closes a conditional block.
type EndIf struct {
	Line int
}

// Include expands another file in place.
type Include struct {
	File   string
	Minify bool
	Quote  bool
	Line   int
}

func (If) token() {}
func (Else) token() {}
func (EndIf) token() {}
func (Include) token() {}
func (If) instruction() {}
func (Else) instruction() {}
func (EndIf) instruction() {}
func (Include) instruction() {}

func (i If) String() string { return "@if " + i.Cond }
func (Else) String() string { return "@else" }
func (EndIf) String() string { return "@endif" }
func (i Include) String() string {
	s := "@include " + i.File
	if i.Minify {
		s += " " + FlagMinify
	}
	if i.Quote {
		s += " " + FlagQuote
	}
	return s
}

// Collapsed reports whether the included file is concatenated into a single
// content token rather than spliced.
func (i Include) Collapsed() bool {
	return i.Minify || i.Quote
}

// Interpret converts a raw directive into its instruction. Names are matched
// case-insensitively; unrecognized include flags are ignored.
func Interpret(d Directive) (Instruction, error) {
	switch strings.ToLower(d.Name) {
	case NameIf:
		if len(d.Params) == 0 {
			return nil, fmt.Errorf("%w: @if requires a condition", ErrMissingParameter)
		}
		return If{Cond: d.Params[0], Line: d.Line}, nil
	case NameElse:
		return Else{Line: d.Line}, nil
	case NameEndIf:
		return EndIf{Line: d.Line}, nil
	case NameInclude:
		if len(d.Params) == 0 {
			return nil, fmt.Errorf("%w: @include requires a filename", ErrMissingParameter)
		}
		flags := d.Params[1:]
		return Include{
			File:   d.Params[0],
			Minify: slices.Contains(flags, FlagMinify),
			Quote:  slices.Contains(flags, FlagQuote),
			Line:   d.Line,
		}, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownDirective, d.Name)
	}
}
