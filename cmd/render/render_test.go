/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package render

import (
	"bytes"
	"testing"

	"bennypowers.dev/tokencss/document"
)

func TestColorSwatch(t *testing.T) {
	tests := []struct {
		value    string
		expected string
	}{
		{"#FFFFFF", "\x1b[48;2;255;255;255m  \x1b[0m "},
		{"rgb(90, 79, 207)", "\x1b[48;2;90;79;207m  \x1b[0m "},
		{"16px", ""},
		{"{Gray.900}", ""},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			if got := ColorSwatch(tt.value); got != tt.expected {
				t.Errorf("ColorSwatch(%q) = %q, want %q", tt.value, got, tt.expected)
			}
			if IsColor(tt.value) != (tt.expected != "") {
				t.Errorf("IsColor(%q) disagrees with ColorSwatch", tt.value)
			}
		})
	}
}

func TestValue(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected string
	}{
		{"string", "#fff", "#fff"},
		{"number", 1.5, "1.5"},
		{"composite", document.NewMap().Set("fontSize", 16.0).Set("fontFamily", "Inter"), `{"fontSize":16,"fontFamily":"Inter"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Value(tt.value)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Value() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestChain(t *testing.T) {
	if got := Chain([]string{"a.b", "c"}); got != "a.b → c" {
		t.Errorf("Chain() = %q", got)
	}
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, map[string]string{"value": "#fff"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := buf.String(); got != "{\n  \"value\": \"#fff\"\n}\n" {
		t.Errorf("JSON() = %q", got)
	}
}
