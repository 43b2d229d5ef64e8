/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package token provides design token node types.
package token

import (
	"strings"

	"bennypowers.dev/tokencss/document"
)

// Value field names recognized on a token node, in priority order.
const (
	// ValueField is the primary value carrier.
	ValueField = "value"

	// AltValueField is the DTCG-style alternate value carrier.
	AltValueField = "$value"
)

// Token is a token node located in a document.
type Token struct {
	// Path is the sequence of keys locating the node (e.g., ["color", "primary"]).
	// Segments keep the case and spacing they were authored with.
	Path []string

	// Node is the mapping carrying the value field.
	Node *document.Map
}

// DotPath returns the dot-separated path to this token.
func (t *Token) DotPath() string {
	return strings.Join(t.Path, ".")
}

// RawValue returns the token's unresolved value.
func (t *Token) RawValue() any {
	return RawValue(t.Node)
}

// IsNode reports whether m is a token node, that is, it carries a value field.
func IsNode(m *document.Map) bool {
	return m.Has(ValueField) || m.Has(AltValueField)
}

// RawValue returns the value of a token node: the primary field when it is
// non-null, else the alternate field. Nil means the node has no value.
func RawValue(m *document.Map) any {
	if v, ok := m.Get(ValueField); ok && v != nil {
		return v
	}
	v, _ := m.Get(AltValueField)
	return v
}
