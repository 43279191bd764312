/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package options evaluates the boolean build options that select
// conditional branches.
package options

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// ErrUnknownOption indicates a condition or override names an undeclared option.
var ErrUnknownOption = errors.New("unknown option")

// Negation prefixes a condition that holds when the option is not set.
const Negation = "!"

// Provider reports the value of named options.
type Provider interface {
	IsSet(name string) (bool, error)
}

// Set maps option names to their values.
type Set map[string]bool

// IsSet returns the value of the named option.
func (s Set) IsSet(name string) (bool, error) {
	v, ok := s[name]
	if !ok {
		return false, fmt.Errorf("%w %q", ErrUnknownOption, name)
	}
	return v, nil
}

// Enable sets a declared option to true.
func (s Set) Enable(name string) error {
	return s.override(name, true)
}

// Disable sets a declared option to false.
func (s Set) Disable(name string) error {
	return s.override(name, false)
}

// Names returns the option names in sorted order.
func (s Set) Names() []string {
	return slices.Sorted(maps.Keys(s))
}

func (s Set) override(name string, value bool) error {
	if _, ok := s[name]; !ok {
		return fmt.Errorf("%w %q", ErrUnknownOption, name)
	}
	s[name] = value
	return nil
}

// Resolve evaluates a condition: an option name, or an option name prefixed
// with "!" for its negation.
func Resolve(p Provider, condition string) (bool, error) {
	if name, negated := strings.CutPrefix(condition, Negation); negated {
		v, err := p.IsSet(name)
		if err != nil {
			return false, err
		}
		return !v, nil
	}
	return p.IsSet(condition)
}
