/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package preprocess

import (
	"fmt"

	"bennypowers.dev/juice/token"
)

// stack holds the tokens of one file scope: content plus open If/Else markers.
type stack struct {
	items []token.Token
}

func (s *stack) push(t token.Token) {
	s.items = append(s.items, t)
}

func (s *stack) pop() token.Token {
	t := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return t
}

// fold pops the trailing content tokens down to the nearest marker accepted by
// want and returns their concatenation. The marker stays on the stack.
func (s *stack) fold(want func(token.Token) bool) (token.Content, token.Token, error) {
	i := len(s.items)
	for i > 0 {
		if _, ok := s.items[i-1].(token.Content); !ok {
			break
		}
		i--
	}

	if i == 0 {
		return token.Content{}, nil, ErrMismatchedDirective
	}
	marker := s.items[i-1]
	if !want(marker) {
		return token.Content{}, marker, ErrMismatchedDirective
	}

	segment := make([]token.Content, 0, len(s.items)-i)
	for _, t := range s.items[i:] {
		segment = append(segment, t.(token.Content))
	}
	s.items = s.items[:i]

	return token.Content{Text: token.Join(segment)}, marker, nil
}

// contents returns the finished scope. Any marker left over is an error.
func (s *stack) contents() ([]token.Content, error) {
	out := make([]token.Content, 0, len(s.items))
	for _, t := range s.items {
		c, ok := t.(token.Content)
		if !ok {
			return nil, unresolved(t)
		}
		out = append(out, c)
	}
	return out, nil
}

func unresolved(t token.Token) error {
	switch m := t.(type) {
	case token.If:
		return fmt.Errorf("line %d: %w: %s is never closed", m.Line, ErrUnresolvedDirective, m)
	case token.Else:
		return fmt.Errorf("line %d: %w: %s is never closed", m.Line, ErrUnresolvedDirective, m)
	default:
		return fmt.Errorf("%w: unexpected %s", ErrUnresolvedDirective, t)
	}
}

func isIf(t token.Token) bool {
	_, ok := t.(token.If)
	return ok
}

func isIfOrElse(t token.Token) bool {
	switch t.(type) {
	case token.If, token.Else:
		return true
	}
	return false
}
