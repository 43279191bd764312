/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package preprocess

import (
	"errors"

	"bennypowers.dev/juice/options"
	"bennypowers.dev/juice/token"
)

// Sentinel errors for preprocessing. Every one of them is fatal to a build.
var (
	// ErrMismatchedDirective indicates unbalanced @if/@else/@endif markers.
	ErrMismatchedDirective = errors.New("mismatched directive")

	// ErrUnresolvedDirective indicates a directive marker survived folding,
	// e.g. an @if that was never closed.
	ErrUnresolvedDirective = errors.New("unresolved directive")

	// ErrFileNotFound indicates a source or included file does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrIncludeCycle indicates a file includes itself, directly or indirectly.
	ErrIncludeCycle = errors.New("include cycle")

	// ErrUnknownDirective is token.ErrUnknownDirective.
	ErrUnknownDirective = token.ErrUnknownDirective

	// ErrMissingParameter is token.ErrMissingParameter.
	ErrMissingParameter = token.ErrMissingParameter

	// ErrUnknownOption is options.ErrUnknownOption.
	ErrUnknownOption = options.ErrUnknownOption
)
