/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package normalize turns resolved token values into stylesheet values.
package normalize

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"bennypowers.dev/tokencss/document"
)

// DefaultUnit is appended to unitless dimensional values.
const DefaultUnit = "px"

// Hint tells Normalize whether a value is a length.
type Hint int

const (
	// Verbatim values are emitted as authored (weights, families, colors).
	Verbatim Hint = iota

	// Dimensional values gain a unit when they are bare numbers.
	Dimensional
)

// ErrNotScalar indicates a composite or nested value where a single
// property value was expected.
var ErrNotScalar = errors.New("value is not a scalar")

// numericPattern matches strings holding only a non-negative decimal literal.
var numericPattern = regexp.MustCompile(`^\d+(\.\d+)?$`)

// Normalize prepares a resolved value for emission. Under Dimensional, a
// number or a purely numeric string gains unit; composites and every other
// value are returned unchanged.
func Normalize(raw any, hint Hint, unit string) any {
	if hint != Dimensional {
		return raw
	}
	switch v := raw.(type) {
	case float64:
		return FormatNumber(v) + unit
	case string:
		if numericPattern.MatchString(v) {
			return v + unit
		}
	}
	return raw
}

// Format renders a scalar as stylesheet text. Lists of scalars are joined
// with commas, as in font family stacks.
func Format(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case float64:
		return FormatNumber(x), nil
	case bool:
		return strconv.FormatBool(x), nil
	case []any:
		parts := make([]string, 0, len(x))
		for _, item := range x {
			s, err := Format(item)
			if err != nil {
				return "", err
			}
			parts = append(parts, s)
		}
		return strings.Join(parts, ", "), nil
	case *document.Map:
		return "", fmt.Errorf("%w: object with keys %v", ErrNotScalar, x.Keys())
	case nil:
		return "", fmt.Errorf("%w: null", ErrNotScalar)
	default:
		return "", fmt.Errorf("%w: %T", ErrNotScalar, v)
	}
}

// FormatNumber renders n in its shortest decimal form (16, 1.5, 0.25).
func FormatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
