/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package transform

import (
	"context"
	"errors"
	"testing"
)

func upper(tag string) Transformer {
	return Func(func(_ context.Context, content, _ string) (string, error) {
		return tag + content, nil
	})
}

func TestDispatcher_Transform(t *testing.T) {
	d := NewDispatcher().
		Register(".css", upper("css:")).
		Register(".js", upper("js:"))

	tests := []struct {
		filename string
		want     string
	}{
		{"style.css", "css:body"},
		{"STYLE.CSS", "css:body"},
		{"lib/app.js", "js:body"},
		{"notes.txt", "body"},
		{"json", "body"},
		{"app.json", "body"},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			got, err := d.Transform(context.Background(), "body", tt.filename)
			if err != nil {
				t.Fatalf("Transform() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Transform() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDispatcher_FirstRegistrationWins(t *testing.T) {
	d := NewDispatcher().
		Register(".min.js", Identity).
		Register(".js", upper("js:"))

	got, err := d.Transform(context.Background(), "x", "vendor.min.js")
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}
	if got != "x" {
		t.Errorf("Transform() = %q, want %q", got, "x")
	}
}

func TestDispatcher_PropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	d := NewDispatcher().Register(".js", Func(func(context.Context, string, string) (string, error) {
		return "", boom
	}))

	if _, err := d.Transform(context.Background(), "x", "a.js"); !errors.Is(err, boom) {
		t.Errorf("Transform() error = %v, want %v", err, boom)
	}
}
