/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package stylesheet

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Category tags placed between the prefix and the token path.
const (
	CategorySize       = "size"
	CategoryBreakpoint = "bp"
	CategoryType       = "type"
)

// separator joins sanitized name parts.
const separator = "-"

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Sanitize lower-cases each part, folds runs of characters other than a-z and
// 0-9 into a single "-", trims leading and trailing separators, drops parts
// that end up empty and joins the rest with "-".
//
//	Sanitize("Body", "Font Weight Regular") == "body-font-weight-regular"
func Sanitize(parts ...string) string {
	lower := cases.Lower(language.Und)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = nonAlphanumeric.ReplaceAllString(lower.String(p), separator)
		p = strings.Trim(p, separator)
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, separator)
}

// VariableName builds a custom property name: "--" followed by the prefix
// and the given parts, each sanitized.
//
//	VariableName("ds", "size", "Spacing", "4") == "--ds-size-spacing-4"
func VariableName(prefix string, parts ...string) string {
	return "--" + Sanitize(append([]string{prefix}, parts...)...)
}

// stripPrefix removes a leading word and an optional "-" or "_" from key,
// ignoring case: stripPrefix("responsive-Tablet", "responsive") == "Tablet".
func stripPrefix(key, word string) string {
	if len(key) < len(word) || !strings.EqualFold(key[:len(word)], word) {
		return key
	}
	rest := key[len(word):]
	if strings.HasPrefix(rest, "-") || strings.HasPrefix(rest, "_") {
		rest = rest[1:]
	}
	return rest
}
