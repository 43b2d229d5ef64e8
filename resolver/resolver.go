/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolver provides token reference resolution.
//
// A reference {key} is matched against the index in two steps. An exact,
// case-insensitive full-path match always wins. Otherwise the key is looked
// up as a suffix of one to three trailing segments, and when several paths
// share that suffix PickBest chooses among them.
package resolver

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"bennypowers.dev/tokencss/index"
	"bennypowers.dev/tokencss/token"
)

// Resolver resolves references against an immutable index.
type Resolver struct {
	idx *index.Index
}

// New creates a resolver over idx.
func New(idx *index.Index) *Resolver {
	return &Resolver{idx: idx}
}

// Resolution is the outcome of resolving one reference.
type Resolution struct {
	// Value is the final scalar or composite value.
	Value any

	// Chain lists the full paths of the token nodes followed, in order.
	Chain []string
}

// Resolve returns the value a reference string ultimately points to.
func (r *Resolver) Resolve(ref string) (any, error) {
	res, err := r.Trace(ref)
	if err != nil {
		return nil, err
	}
	return res.Value, nil
}

// Trace resolves a reference string and records every token node it passed through.
func (r *Resolver) Trace(ref string) (*Resolution, error) {
	res := &Resolution{}
	v, err := r.resolve(ref, nil, res)
	if err != nil {
		return nil, err
	}
	res.Value = v
	return res, nil
}

// ResolveNode returns the value of a token node, following its reference if
// the value is one.
func (r *Resolver) ResolveNode(tok *token.Token) (any, error) {
	raw := tok.RawValue()
	if raw == nil {
		return nil, &EmptyValueError{Path: tok.DotPath()}
	}
	return r.ResolveValue(raw)
}

// ResolveValue follows v if it is a reference string and returns it unchanged otherwise.
func (r *Resolver) ResolveValue(v any) (any, error) {
	if s, ok := v.(string); ok && token.IsReference(s) {
		return r.Resolve(s)
	}
	return v, nil
}

// resolve follows one reference. visited holds the keys on the current
// resolution path only; each call extends its own copy so sibling
// resolutions never see each other's keys.
func (r *Resolver) resolve(ref string, visited []string, res *Resolution) (any, error) {
	key, ok := token.ReferenceKey(ref)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidReference, ref)
	}

	if slices.Contains(visited, key) {
		chain := append(slices.Clone(visited), key)
		return nil, &CircularReferenceError{Chain: chain}
	}
	visited = slices.Clip(append(visited, key))

	tok, err := r.match(key)
	if err != nil {
		return nil, err
	}
	res.Chain = append(res.Chain, tok.DotPath())

	raw := tok.RawValue()
	if raw == nil {
		return nil, &EmptyValueError{Path: tok.DotPath()}
	}
	if s, ok := raw.(string); ok && token.IsReference(s) {
		return r.resolve(s, visited, res)
	}
	return raw, nil
}

// match finds the token a reference key designates. A byte-for-byte full
// path beats one that only matches ignoring case.
func (r *Resolver) match(key string) (*token.Token, error) {
	if tok, ok := r.idx.Lookup(key); ok {
		return tok, nil
	}
	if tok, ok := r.idx.Exact(key); ok {
		return tok, nil
	}
	best := PickBest(r.idx.Candidates(key))
	if best == "" {
		return nil, &MissingTokenError{Key: key}
	}
	tok, ok := r.idx.Lookup(best)
	if !ok {
		return nil, &MissingTokenError{Key: key}
	}
	return tok, nil
}

// PickBest chooses among full paths sharing a suffix: paths mentioning
// "primitive" (any case) rank first, then fewer segments, then byte-wise
// string order. Returns "" for no candidates.
func PickBest(candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}
	return slices.MinFunc(candidates, compareCandidates)
}

func compareCandidates(a, b string) int {
	return cmp.Or(
		cmp.Compare(primitiveScore(a), primitiveScore(b)),
		cmp.Compare(segmentCount(a), segmentCount(b)),
		strings.Compare(a, b),
	)
}

func primitiveScore(path string) int {
	if strings.Contains(index.Fold(path), "primitive") {
		return 0
	}
	return 1
}

func segmentCount(path string) int {
	return strings.Count(path, ".") + 1
}
