/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package lexer splits source text into content spans and directive markers
// of the form /* @name params */.
package lexer

import (
	"iter"
	"regexp"
	"strings"

	"bennypowers.dev/juice/token"
)

// markerPattern matches a directive marker. Group 1 is the directive name,
// group 2 the optional parameter string, which never contains "*/" so a
// marker without parameters cannot swallow the next marker on its line.
var markerPattern = regexp.MustCompile(`/\*\s+@(\w+)(?:\s+((?:[^*\n]|\*[^/\n])+?))?\s+\*/`)

// Lexer produces tokens from a single file's text. The cursor only advances.
type Lexer struct {
	src  string
	pos  int
	line int
}

// New creates a lexer over src.
func New(src string) *Lexer {
	return &Lexer{src: src, line: 1}
}

// Next returns the next token, or false once the input is exhausted.
func (l *Lexer) Next() (token.Token, bool) {
	if l.pos >= len(l.src) {
		return nil, false
	}

	rest := l.src[l.pos:]
	loc := markerPattern.FindStringSubmatchIndex(rest)

	switch {
	case loc == nil:
		return l.content(len(rest)), true
	case loc[0] > 0:
		return l.content(loc[0]), true
	}

	d := token.Directive{
		Name: rest[loc[2]:loc[3]],
		Line: l.line,
	}
	if loc[4] >= 0 {
		d.Params = strings.Fields(rest[loc[4]:loc[5]])
	}
	l.advance(loc[1])
	return d, true
}

// All returns an iterator over the remaining tokens.
func (l *Lexer) All() iter.Seq[token.Token] {
	return func(yield func(token.Token) bool) {
		for {
			t, ok := l.Next()
			if !ok || !yield(t) {
				return
			}
		}
	}
}

// Tokenize returns every token in src.
func Tokenize(src string) []token.Token {
	var tokens []token.Token
	for t := range New(src).All() {
		tokens = append(tokens, t)
	}
	return tokens
}

func (l *Lexer) content(n int) token.Content {
	c := token.Content{Text: l.src[l.pos : l.pos+n], Line: l.line}
	l.advance(n)
	return c
}

func (l *Lexer) advance(n int) {
	l.line += strings.Count(l.src[l.pos:l.pos+n], "\n")
	l.pos += n
}
