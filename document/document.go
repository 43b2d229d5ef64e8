/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package document decodes design token documents into an ordered tree.
//
// Token documents are key-ordered: generated stylesheets follow the order in
// which groups and tokens were authored, so the tree keeps mapping keys in
// document order rather than decoding into Go maps.
package document

import (
	"errors"
	"fmt"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// ErrMalformed indicates the document could not be decoded into a mapping.
var ErrMalformed = errors.New("malformed token document")

// Parse decodes JSON (comments and trailing commas allowed) or YAML token data.
// Mapping values in the returned tree are *Map, []any, string, float64, bool or nil.
func Parse(data []byte) (*Map, error) {
	if isLikelyJSON(data) {
		data = jsonc.ToJSON(data)
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(root.Content) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrMalformed)
	}

	v, err := decode(root.Content[0])
	if err != nil {
		return nil, err
	}
	m, ok := v.(*Map)
	if !ok {
		return nil, fmt.Errorf("%w: root must be an object", ErrMalformed)
	}
	return m, nil
}

// isLikelyJSON checks if data appears to be JSON rather than YAML.
func isLikelyJSON(data []byte) bool {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case 0xEF, 0xBB, 0xBF: // UTF-8 BOM
			continue
		case '{':
			return true
		default:
			return false
		}
	}
	return false
}

func decode(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}
		return decode(node.Content[0])

	case yaml.AliasNode:
		return decode(node.Alias)

	case yaml.MappingNode:
		m := NewMap()
		for i := 0; i+1 < len(node.Content); i += 2 {
			keyNode, valueNode := node.Content[i], node.Content[i+1]
			if keyNode.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("%w: line %d: mapping keys must be scalars", ErrMalformed, keyNode.Line)
			}
			v, err := decode(valueNode)
			if err != nil {
				return nil, err
			}
			m.Set(keyNode.Value, v)
		}
		return m, nil

	case yaml.SequenceNode:
		items := make([]any, 0, len(node.Content))
		for _, child := range node.Content {
			v, err := decode(child)
			if err != nil {
				return nil, err
			}
			items = append(items, v)
		}
		return items, nil

	case yaml.ScalarNode:
		return decodeScalar(node)

	default:
		return nil, fmt.Errorf("%w: line %d: unsupported node", ErrMalformed, node.Line)
	}
}

func decodeScalar(node *yaml.Node) (any, error) {
	switch node.ShortTag() {
	case "!!null":
		return nil, nil
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformed, node.Line, err)
		}
		return b, nil
	case "!!int", "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformed, node.Line, err)
		}
		return f, nil
	default:
		return node.Value, nil
	}
}
