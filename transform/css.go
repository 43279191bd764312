/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package transform

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/mazznoer/csscolorparser"
)

var (
	cssCommentPattern     = regexp.MustCompile(`(?s)\s*/\*.*?\*/\s*`)
	cssWhitespacePattern  = regexp.MustCompile(`\s+`)
	cssDeclarationPattern = regexp.MustCompile(`:[^;{}]+[;}]`)

	// cssValueTokenPattern matches, in order of precedence, a quoted string,
	// a url() reference or a six digit hex colour. Only the last is rewritten.
	cssValueTokenPattern = regexp.MustCompile(`"(?:[^"\\]|\\.)*"|'(?:[^'\\]|\\.)*'|(?i:url)\([^)]*\)|#[0-9a-fA-F]{6}\b`)
)

// CSSOptions configures the CSS compactor.
type CSSOptions struct {
	// ShortenColors rewrites #rrggbb values to #rgb where lossless.
	ShortenColors bool `yaml:"shortenColors" json:"shortenColors"`
}

// CSSMinifier removes comments and collapses whitespace.
type CSSMinifier struct {
	opts CSSOptions
}

// NewCSSMinifier creates a CSS compactor.
func NewCSSMinifier(opts CSSOptions) *CSSMinifier {
	return &CSSMinifier{opts: opts}
}

// Transform implements Transformer.
func (m *CSSMinifier) Transform(_ context.Context, content, _ string) (string, error) {
	out := cssCommentPattern.ReplaceAllString(content, "")
	out = cssWhitespacePattern.ReplaceAllString(out, " ")
	if m.opts.ShortenColors {
		out = cssDeclarationPattern.ReplaceAllStringFunc(out, func(decl string) string {
			return cssValueTokenPattern.ReplaceAllStringFunc(decl, shortenHex)
		})
	}
	return out, nil
}

// shortenHex returns the three digit form of a six digit hex colour when
// every channel is a repeated digit. Strings and url() references are
// returned unchanged.
func shortenHex(hex string) string {
	if !strings.HasPrefix(hex, "#") {
		return hex
	}
	c, err := csscolorparser.Parse(hex)
	if err != nil {
		return hex
	}
	r, g, b, _ := c.RGBA255()
	if r%17 != 0 || g%17 != 0 || b%17 != 0 {
		return hex
	}
	return fmt.Sprintf("#%x%x%x", r/17, g/17, b/17)
}
