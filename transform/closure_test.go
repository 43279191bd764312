/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package transform

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestClosureCompiler_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("ParseForm() error = %v", err)
		}
		if got := r.PostForm.Get("js_code"); got != "var a = 1;" {
			t.Errorf("js_code = %q", got)
		}
		if got := r.PostForm.Get("compilation_level"); got != DefaultClosureLevel {
			t.Errorf("compilation_level = %q", got)
		}
		if got := r.PostForm.Get("output_format"); got != "json" {
			t.Errorf("output_format = %q", got)
		}
		if got := r.PostForm.Get("output_info"); got != "compiled_code" {
			t.Errorf("output_info = %q", got)
		}
		if !strings.HasPrefix(r.UserAgent(), "juice/") {
			t.Errorf("User-Agent = %q", r.UserAgent())
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"compiledCode":"var a=1;"}`))
	}))
	defer srv.Close()

	c := NewClosureCompiler(ClosureOptions{URL: srv.URL})
	got, err := c.Transform(context.Background(), "var a = 1;", "a.js")
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}
	if got != "var a=1;" {
		t.Errorf("Transform() = %q, want %q", got, "var a=1;")
	}
}

func TestClosureCompiler_CustomLevel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		if got := r.PostForm.Get("compilation_level"); got != "WHITESPACE_ONLY" {
			t.Errorf("compilation_level = %q", got)
		}
		_, _ = w.Write([]byte(`{"compiledCode":""}`))
	}))
	defer srv.Close()

	c := NewClosureCompiler(ClosureOptions{URL: srv.URL, Level: "WHITESPACE_ONLY"})
	if _, err := c.Transform(context.Background(), "", "a.js"); err != nil {
		t.Fatalf("Transform() error = %v", err)
	}
}

func TestClosureCompiler_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"serverErrors":[{"code":22,"error":"Too many compiles performed recently."}]}`))
	}))
	defer srv.Close()

	c := NewClosureCompiler(ClosureOptions{URL: srv.URL})
	_, err := c.Transform(context.Background(), "x", "a.js")
	if err == nil {
		t.Fatal("expected server error")
	}
	if !strings.Contains(err.Error(), "Too many compiles") {
		t.Errorf("expected server message in error, got: %v", err)
	}
}

func TestClosureCompiler_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{"compiledCode":"late"}`))
	}))
	defer srv.Close()

	c := NewClosureCompiler(ClosureOptions{URL: srv.URL, Timeout: 50 * time.Millisecond})
	_, err := c.Transform(context.Background(), "x", "a.js")
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if !strings.Contains(err.Error(), "timeout") && !strings.Contains(err.Error(), "context deadline exceeded") {
		t.Errorf("expected timeout error, got: %v", err)
	}
}

func TestClosureCompiler_MaxSizeExceeded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"compiledCode":"` + strings.Repeat("x", 100) + `"}`))
	}))
	defer srv.Close()

	c := NewClosureCompiler(ClosureOptions{URL: srv.URL, MaxSize: 50})
	_, err := c.Transform(context.Background(), "x", "a.js")
	if err == nil {
		t.Fatal("expected max size error")
	}
	if !strings.Contains(err.Error(), "exceeds maximum size") {
		t.Errorf("expected max size error, got: %v", err)
	}
}

func TestClosureCompiler_Non200Status(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClosureCompiler(ClosureOptions{URL: srv.URL})
	_, err := c.Transform(context.Background(), "x", "a.js")
	if err == nil {
		t.Fatal("expected error for 503")
	}
	if !strings.Contains(err.Error(), "503") {
		t.Errorf("expected 503 in error, got: %v", err)
	}
}

func TestNewClosureCompiler_Defaults(t *testing.T) {
	c := NewClosureCompiler(ClosureOptions{})
	if c.endpoint != DefaultClosureURL {
		t.Errorf("endpoint = %q", c.endpoint)
	}
	if c.level != DefaultClosureLevel {
		t.Errorf("level = %q", c.level)
	}
	if c.timeout != DefaultTimeout {
		t.Errorf("timeout = %v", c.timeout)
	}
	if c.maxSize != DefaultMaxSize {
		t.Errorf("maxSize = %d", c.maxSize)
	}
}
