/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package transform

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"bennypowers.dev/juice/internal/version"
)

const (
	// DefaultClosureURL is the Closure Compiler web service endpoint.
	DefaultClosureURL = "https://closure-compiler.appspot.com/compile"

	// DefaultClosureLevel is the compilation level sent to the service.
	DefaultClosureLevel = "SIMPLE_OPTIMIZATIONS"

	// DefaultTimeout is the maximum time to wait for a compile request.
	DefaultTimeout = 30 * time.Second

	// DefaultMaxSize is the maximum allowed response size (10 MB).
	DefaultMaxSize int64 = 10 * 1024 * 1024
)

// ClosureOptions configures the Closure Compiler client.
type ClosureOptions struct {
	// URL is the compile endpoint. Defaults to DefaultClosureURL.
	URL string `yaml:"url" json:"url"`

	// Level is the compilation_level parameter. Defaults to DefaultClosureLevel.
	Level string `yaml:"level" json:"level"`

	// Timeout bounds each request. Zero means DefaultTimeout.
	Timeout time.Duration `yaml:"-" json:"-"`

	// MaxSize limits the response body. Zero means DefaultMaxSize.
	MaxSize int64 `yaml:"-" json:"-"`
}

// ClosureCompiler minifies JavaScript with the Closure Compiler web service.
type ClosureCompiler struct {
	endpoint string
	level    string
	timeout  time.Duration
	maxSize  int64
	client   *http.Client
}

// NewClosureCompiler creates a client, filling unset options with defaults.
func NewClosureCompiler(opts ClosureOptions) *ClosureCompiler {
	c := &ClosureCompiler{
		endpoint: opts.URL,
		level:    opts.Level,
		timeout:  opts.Timeout,
		maxSize:  opts.MaxSize,
		client:   &http.Client{},
	}
	if c.endpoint == "" {
		c.endpoint = DefaultClosureURL
	}
	if c.level == "" {
		c.level = DefaultClosureLevel
	}
	if c.timeout <= 0 {
		c.timeout = DefaultTimeout
	}
	if c.maxSize <= 0 {
		c.maxSize = DefaultMaxSize
	}
	return c
}

type closureResponse struct {
	CompiledCode string `json:"compiledCode"`
	ServerErrors []struct {
		Code  int    `json:"code"`
		Error string `json:"error"`
	} `json:"serverErrors"`
}

// Transform implements Transformer.
func (c *ClosureCompiler) Transform(ctx context.Context, content, filename string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	form := url.Values{
		"js_code":           {content},
		"compilation_level": {c.level},
		"output_format":     {"json"},
		"output_info":       {"compiled_code"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("creating compile request for %s: %w", filename, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", version.UserAgent())

	resp, err := c.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", fmt.Errorf("timeout compiling %s: %w", filename, err)
		}
		return "", fmt.Errorf("compiling %s: %w", filename, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("compiling %s: %s", filename, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxSize+1))
	if err != nil {
		return "", fmt.Errorf("reading compile response for %s: %w", filename, err)
	}
	if int64(len(body)) > c.maxSize {
		return "", fmt.Errorf("compile response for %s exceeds maximum size of %d bytes", filename, c.maxSize)
	}

	var result closureResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("decoding compile response for %s: %w", filename, err)
	}
	if len(result.ServerErrors) > 0 {
		return "", fmt.Errorf("compiling %s: server error %d: %s",
			filename, result.ServerErrors[0].Code, result.ServerErrors[0].Error)
	}

	return result.CompiledCode, nil
}
