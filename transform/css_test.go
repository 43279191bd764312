/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package transform

import (
	"context"
	"testing"
)

func TestCSSMinifier(t *testing.T) {
	tests := []struct {
		name  string
		opts  CSSOptions
		input string
		want  string
	}{
		{
			name:  "strips comments with surrounding whitespace",
			input: "a { color: red; }\n/* header\n  comment */\nb { margin: 0; }",
			want:  "a { color: red; }b { margin: 0; }",
		},
		{
			name:  "collapses whitespace runs",
			input: "a  {\n\tcolor:\tred;\n}",
			want:  "a { color: red; }",
		},
		{
			name:  "colours untouched by default",
			input: "a{color:#ffffff;}",
			want:  "a{color:#ffffff;}",
		},
		{
			name:  "shortens repeated hex digits",
			opts:  CSSOptions{ShortenColors: true},
			input: "a{color:#FFFFFF;background:#aabbcc}",
			want:  "a{color:#fff;background:#abc}",
		},
		{
			name:  "keeps lossy colours",
			opts:  CSSOptions{ShortenColors: true},
			input: "a{color:#123456;}",
			want:  "a{color:#123456;}",
		},
		{
			name:  "leaves quoted strings alone",
			opts:  CSSOptions{ShortenColors: true},
			input: `a{content:"#ffffff";b:'#aabbcc' #aabbcc;}`,
			want:  `a{content:"#ffffff";b:'#aabbcc' #abc;}`,
		},
		{
			name:  "leaves url fragments alone",
			opts:  CSSOptions{ShortenColors: true},
			input: "a{background:url(img.svg#aabbcc) #ffffff;}",
			want:  "a{background:url(img.svg#aabbcc) #fff;}",
		},
		{
			name:  "leaves id selectors alone",
			opts:  CSSOptions{ShortenColors: true},
			input: "a:hover #aabbcc{color:#000000;}",
			want:  "a:hover #aabbcc{color:#000;}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewCSSMinifier(tt.opts).Transform(context.Background(), tt.input, "x.css")
			if err != nil {
				t.Fatalf("Transform() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Transform() = %q, want %q", got, tt.want)
			}
		})
	}
}
