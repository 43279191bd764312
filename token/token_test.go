/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"errors"
	"testing"
)

func TestInterpret(t *testing.T) {
	tests := []struct {
		name    string
		in      Directive
		want    Instruction
		wantErr error
	}{
		{"if", Directive{Name: "if", Params: []string{"debug"}}, If{Cond: "debug"}, nil},
		{"negated if", Directive{Name: "if", Params: []string{"!debug"}}, If{Cond: "!debug"}, nil},
		{"upper case name", Directive{Name: "IF", Params: []string{"x"}}, If{Cond: "x"}, nil},
		{"else", Directive{Name: "else"}, Else{}, nil},
		{"endif", Directive{Name: "endif"}, EndIf{}, nil},
		{"plain include", Directive{Name: "include", Params: []string{"a.js"}}, Include{File: "a.js"}, nil},
		{
			"include flags",
			Directive{Name: "include", Params: []string{"a.css", "quote", "minify"}},
			Include{File: "a.css", Minify: true, Quote: true},
			nil,
		},
		{
			"unrecognized include flag ignored",
			Directive{Name: "include", Params: []string{"a.css", "gzip"}},
			Include{File: "a.css"},
			nil,
		},
		{"if without condition", Directive{Name: "if"}, nil, ErrMissingParameter},
		{"if with blank parameter", Directive{Name: "if", Params: []string{}}, nil, ErrMissingParameter},
		{"include without file", Directive{Name: "include"}, nil, ErrMissingParameter},
		{"unknown", Directive{Name: "define", Params: []string{"X"}}, nil, ErrUnknownDirective},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Interpret(tt.in)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Interpret() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Interpret() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Interpret() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestInterpret_UnknownNamesDirective(t *testing.T) {
	_, err := Interpret(Directive{Name: "pragma", Line: 7})
	if err == nil {
		t.Fatal("expected error")
	}
	if got, want := err.Error(), `unknown directive "pragma"`; got != want {
		t.Errorf("error = %q, want %q", got, want)
	}
}

func TestInclude_String(t *testing.T) {
	inc := Include{File: "x.js", Minify: true, Quote: true}
	if got, want := inc.String(), "@include x.js minify quote"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if !inc.Collapsed() {
		t.Error("expected include with flags to collapse")
	}
	if (Include{File: "x.js"}).Collapsed() {
		t.Error("expected plain include to splice")
	}
}

func TestJoin(t *testing.T) {
	got := Join([]Content{{Text: "a"}, {Text: ""}, {Text: "bc"}})
	if got != "abc" {
		t.Errorf("Join() = %q, want %q", got, "abc")
	}
}
