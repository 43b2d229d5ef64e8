/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import "regexp"

// referencePattern matches a value that is exactly one {token.path} reference.
var referencePattern = regexp.MustCompile(`^\{(.+)\}$`)

// IsReference reports whether v is a reference string of the form {key}.
func IsReference(v any) bool {
	s, ok := v.(string)
	return ok && referencePattern.MatchString(s)
}

// ReferenceKey extracts the lookup key from a reference string, keeping its
// internal text (spaces, case) exactly as written.
// Returns the key and true if valid, empty string and false otherwise.
func ReferenceKey(ref string) (string, bool) {
	matches := referencePattern.FindStringSubmatch(ref)
	if len(matches) != 2 {
		return "", false
	}
	return matches[1], true
}
