/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package token provides the token types produced by the lexer and folded by
// the preprocessor.
package token

import (
	"fmt"
	"strings"
)

// Token is either a Content span, a raw Directive, or one of the interpreted
// directive markers (If, Else, EndIf, Include).
type Token interface {
	// String returns a short human readable form, used in diagnostics.
	String() string

	token()
}

// Content is a verbatim span of source text destined for output.
type Content struct {
	Text string

	// Line is the 1-based line where the span starts. Zero for folded content.
	Line int
}

func (Content) token() {}

func (c Content) String() string {
	return fmt.Sprintf("content(%d bytes)", len(c.Text))
}

// Directive is a raw directive invocation as found by the lexer.
// Params is nil when the marker carried no parameter string.
type Directive struct {
	Name   string
	Params []string

	// Line is the 1-based line of the directive marker.
	Line int
}

func (Directive) token() {}

func (d Directive) String() string {
	if len(d.Params) == 0 {
		return "@" + d.Name
	}
	return "@" + d.Name + " " + strings.Join(d.Params, " ")
}

// Join concatenates the text of the given content tokens in order.
func Join(contents []Content) string {
	var sb strings.Builder
	for _, c := range contents {
		sb.WriteString(c.Text)
	}
	return sb.String()
}
