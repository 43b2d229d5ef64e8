/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package normalize_test

import (
	"errors"
	"testing"

	"bennypowers.dev/tokencss/document"
	"bennypowers.dev/tokencss/normalize"
)

func TestNormalize(t *testing.T) {
	composite := document.NewMap().Set("fontSize", float64(16))

	tests := []struct {
		name     string
		raw      any
		hint     normalize.Hint
		expected any
	}{
		{"number gains unit", float64(8), normalize.Dimensional, "8px"},
		{"decimal number", float64(1.5), normalize.Dimensional, "1.5px"},
		{"negative number", float64(-4), normalize.Dimensional, "-4px"},
		{"numeric string", "12", normalize.Dimensional, "12px"},
		{"decimal string", "0.5", normalize.Dimensional, "0.5px"},
		{"string with unit", "1rem", normalize.Dimensional, "1rem"},
		{"keyword", "auto", normalize.Dimensional, "auto"},
		{"signed string untouched", "-4", normalize.Dimensional, "-4"},
		{"verbatim number", float64(400), normalize.Verbatim, float64(400)},
		{"verbatim numeric string", "700", normalize.Verbatim, "700"},
		{"composite passes through", composite, normalize.Dimensional, composite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalize.Normalize(tt.raw, tt.hint, normalize.DefaultUnit)
			if got != tt.expected {
				t.Errorf("Normalize(%v) = %v, want %v", tt.raw, got, tt.expected)
			}
		})
	}
}

func TestNormalize_CustomUnit(t *testing.T) {
	if got := normalize.Normalize(float64(2), normalize.Dimensional, "rem"); got != "2rem" {
		t.Errorf("Normalize() = %v, want 2rem", got)
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected string
	}{
		{"string", "#FFFFFF", "#FFFFFF"},
		{"integer-valued float", float64(400), "400"},
		{"fraction", float64(1.25), "1.25"},
		{"bool", true, "true"},
		{"font stack", []any{"Inter", "sans-serif"}, "Inter, sans-serif"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalize.Format(tt.value)
			if err != nil {
				t.Fatalf("Format() error = %v", err)
			}
			if got != tt.expected {
				t.Errorf("Format() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestFormat_RejectsComposites(t *testing.T) {
	for _, v := range []any{document.NewMap().Set("a", "b"), nil, []any{document.NewMap()}} {
		if _, err := normalize.Format(v); !errors.Is(err, normalize.ErrNotScalar) {
			t.Errorf("Format(%v) error = %v, want ErrNotScalar", v, err)
		}
	}
}
