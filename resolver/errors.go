/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for reference resolution. All of them are fatal to a compile.
var (
	// ErrMissingToken indicates a reference matched no token, exactly or by suffix.
	ErrMissingToken = errors.New("missing token")

	// ErrCircularReference indicates a reference recurred on its own resolution path.
	ErrCircularReference = errors.New("circular reference")

	// ErrEmptyValue indicates a token node has neither value field populated.
	ErrEmptyValue = errors.New("token node has no value")

	// ErrInvalidReference indicates a string is not of the form {key}.
	ErrInvalidReference = errors.New("invalid token reference")
)

// ChainSeparator joins keys in a circular reference report.
const ChainSeparator = " -> "

// MissingTokenError reports the unresolved reference key as written.
type MissingTokenError struct {
	Key string
}

func (e *MissingTokenError) Error() string {
	return fmt.Sprintf("%s %q", ErrMissingToken, e.Key)
}

func (e *MissingTokenError) Unwrap() error { return ErrMissingToken }

// CircularReferenceError reports the keys visited in order, ending with the
// key that repeated.
type CircularReferenceError struct {
	Chain []string
}

func (e *CircularReferenceError) Error() string {
	return fmt.Sprintf("%s: %s", ErrCircularReference, strings.Join(e.Chain, ChainSeparator))
}

func (e *CircularReferenceError) Unwrap() error { return ErrCircularReference }

// EmptyValueError reports the full path of a token node without a value.
type EmptyValueError struct {
	Path string
}

func (e *EmptyValueError) Error() string {
	return fmt.Sprintf("%s: %q", ErrEmptyValue, e.Path)
}

func (e *EmptyValueError) Unwrap() error { return ErrEmptyValue }
