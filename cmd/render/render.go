/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package render provides shared rendering functions for CLI output.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mazznoer/csscolorparser"
	"golang.org/x/term"

	"bennypowers.dev/tokencss/document"
	"bennypowers.dev/tokencss/normalize"
)

// ChainArrow separates the steps of a displayed resolution chain.
const ChainArrow = " → "

// IsColor reports whether value parses as a CSS color.
func IsColor(value string) bool {
	_, err := csscolorparser.Parse(value)
	return err == nil
}

// ColorSwatch returns a 24-bit ANSI color block for the given color value,
// or "" when value is not a color.
func ColorSwatch(value string) string {
	c, err := csscolorparser.Parse(value)
	if err != nil {
		return ""
	}
	r, g, b, _ := c.RGBA255()
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m ", r, g, b)
}

// StdoutIsTerminal reports whether stdout is attached to a terminal.
func StdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Value renders a resolved value for display. Composites print as JSON
// objects in document order.
func Value(v any) (string, error) {
	if m, ok := v.(*document.Map); ok {
		out, err := json.Marshal(m)
		if err != nil {
			return "", err
		}
		return string(out), nil
	}
	return normalize.Format(v)
}

// Chain renders a resolution chain.
func Chain(chain []string) string {
	return strings.Join(chain, ChainArrow)
}

// JSON writes v as indented JSON followed by a newline.
func JSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
