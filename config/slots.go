/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Slot binds an output name to the literal path of a token node.
type Slot struct {
	// Name is the alias written after the prefix, e.g. "bg" for --ds-bg.
	Name string `yaml:"name" json:"name" toml:"name"`

	// Path locates the token node from the document root.
	Path Path `yaml:"path" json:"path" toml:"path"`
}

// Slots is an ordered list of slots.
//
// In YAML and JSON, slots can be written either as a list of {name, path}
// objects or as a mapping from name to path; mapping order is kept.
// In TOML, only the list form (an array of tables) keeps order and is accepted.
type Slots []Slot

// Path is a token path. It can be given as a list of segments or as a single
// dot-joined string when no segment contains a dot.
type Path []string

// String returns the path with segments joined by " > ".
func (p Path) String() string {
	return strings.Join(p, " > ")
}

func splitPath(s string) Path {
	return Path(strings.Split(s, "."))
}

// UnmarshalYAML handles both string and list forms for Path.
func (p *Path) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*p = splitPath(node.Value)
		return nil
	}
	var segments []string
	if err := node.Decode(&segments); err != nil {
		return err
	}
	*p = segments
	return nil
}

// UnmarshalJSON handles both string and list forms for Path.
func (p *Path) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*p = splitPath(s)
		return nil
	}
	var segments []string
	if err := json.Unmarshal(data, &segments); err != nil {
		return err
	}
	*p = segments
	return nil
}

// UnmarshalTOML handles both string and list forms for Path.
func (p *Path) UnmarshalTOML(v any) error {
	switch x := v.(type) {
	case string:
		*p = splitPath(x)
		return nil
	case []any:
		segments := make([]string, 0, len(x))
		for _, item := range x {
			s, ok := item.(string)
			if !ok {
				return fmt.Errorf("path segment must be a string, got %T", item)
			}
			segments = append(segments, s)
		}
		*p = segments
		return nil
	default:
		return fmt.Errorf("path must be a string or list, got %T", v)
	}
}

// UnmarshalYAML handles both mapping and list forms for Slots.
func (s *Slots) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		type rawSlots []Slot
		return node.Decode((*rawSlots)(s))
	}

	slots := make(Slots, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var path Path
		if err := node.Content[i+1].Decode(&path); err != nil {
			return fmt.Errorf("slot %q: %w", node.Content[i].Value, err)
		}
		slots = append(slots, Slot{Name: node.Content[i].Value, Path: path})
	}
	*s = slots
	return nil
}

// UnmarshalJSON handles both object and array forms for Slots.
// Object keys are read as a token stream so their order survives.
func (s *Slots) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		type rawSlots []Slot
		return json.Unmarshal(data, (*rawSlots)(s))
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	if _, err := dec.Token(); err != nil {
		return err
	}
	var slots Slots
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("slot name must be a string, got %v", tok)
		}
		var path Path
		if err := dec.Decode(&path); err != nil {
			return fmt.Errorf("slot %q: %w", name, err)
		}
		slots = append(slots, Slot{Name: name, Path: path})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*s = slots
	return nil
}

// UnmarshalTOML decodes an array of {name, path} tables.
func (s *Slots) UnmarshalTOML(v any) error {
	var items []map[string]any
	switch x := v.(type) {
	case []map[string]any:
		items = x
	case []any:
		for _, item := range x {
			table, ok := item.(map[string]any)
			if !ok {
				return fmt.Errorf("slot must be a table, got %T", item)
			}
			items = append(items, table)
		}
	default:
		return fmt.Errorf("slots must be an array of tables, got %T", v)
	}

	slots := make(Slots, 0, len(items))
	for _, item := range items {
		name, _ := item["name"].(string)
		if name == "" {
			return fmt.Errorf("slot is missing a name")
		}
		var path Path
		if err := path.UnmarshalTOML(item["path"]); err != nil {
			return fmt.Errorf("slot %q: %w", name, err)
		}
		slots = append(slots, Slot{Name: name, Path: path})
	}
	*s = slots
	return nil
}
