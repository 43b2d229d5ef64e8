/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package index builds the lookup tables used to resolve token references.
//
// An Index holds two tables built in a single pass over a document:
//
//   - the full-path index, keyed by the dot-joined path of every token node
//     exactly as authored, plus a lower-cased view for case-insensitive lookup;
//   - the suffix index, keyed by the lower-cased last one, two and three
//     dot-separated segments of each full path, each entry listing the full
//     paths sharing that suffix in the order they were first seen.
//
// An Index is immutable once built and safe to share between resolvers.
package index

import (
	"slices"
	"strings"

	"bennypowers.dev/tokencss/document"
	"bennypowers.dev/tokencss/token"
)

// MaxSuffixSegments is the longest suffix recorded for a path.
const MaxSuffixSegments = 3

// Index maps token paths to token nodes.
type Index struct {
	tokens  map[string]*token.Token
	folded  map[string]string
	suffix  map[string][]string
	ordered []string
}

// Build indexes every token node in doc. Recursion continues into token nodes
// so nested structure under a node is indexed as well.
func Build(doc *document.Map) *Index {
	idx := &Index{
		tokens: make(map[string]*token.Token),
		folded: make(map[string]string),
		suffix: make(map[string][]string),
	}
	idx.walk(doc, nil)
	return idx
}

func (idx *Index) walk(m *document.Map, path []string) {
	for key, v := range m.All() {
		child, ok := v.(*document.Map)
		if !ok {
			continue
		}
		childPath := slices.Clip(append(path, key))
		if token.IsNode(child) {
			idx.add(&token.Token{Path: childPath, Node: child})
		}
		idx.walk(child, childPath)
	}
}

func (idx *Index) add(tok *token.Token) {
	full := tok.DotPath()
	// Keys containing dots can collide with nested paths; the later node
	// replaces the earlier one but keeps its position.
	if _, exists := idx.tokens[full]; exists {
		idx.tokens[full] = tok
		return
	}
	idx.tokens[full] = tok
	idx.ordered = append(idx.ordered, full)

	lower := Fold(full)
	if _, exists := idx.folded[lower]; !exists {
		idx.folded[lower] = full
	}

	// Suffixes come from the dot-joined path, so a key such as "White.1000"
	// counts as two segments.
	segments := strings.Split(full, ".")
	for n := 1; n <= MaxSuffixSegments && n <= len(segments); n++ {
		suffix := Fold(strings.Join(segments[len(segments)-n:], "."))
		idx.suffix[suffix] = append(idx.suffix[suffix], full)
	}
}

// Fold returns the case-insensitive lookup form of a key.
func Fold(key string) string {
	return strings.ToLower(key)
}

// Lookup returns the token stored under an exact, case-sensitive full path.
func (idx *Index) Lookup(fullPath string) (*token.Token, bool) {
	tok, ok := idx.tokens[fullPath]
	return tok, ok
}

// Exact returns the token whose full path equals key, ignoring case.
// When several paths differ only by case, the first one indexed wins.
func (idx *Index) Exact(key string) (*token.Token, bool) {
	full, ok := idx.folded[Fold(key)]
	if !ok {
		return nil, false
	}
	return idx.tokens[full], true
}

// Candidates returns the full paths whose last one, two or three segments
// equal key, ignoring case, in the order they were indexed.
func (idx *Index) Candidates(key string) []string {
	return slices.Clone(idx.suffix[Fold(key)])
}

// Paths returns every indexed full path in document order.
func (idx *Index) Paths() []string {
	return slices.Clone(idx.ordered)
}

// Len returns the number of indexed token nodes.
func (idx *Index) Len() int {
	return len(idx.ordered)
}
