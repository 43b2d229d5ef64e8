/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package stylesheet emits CSS custom properties from a token document.
//
// Output is a fixed sequence of blocks: one per configured color theme, then
// one per size subtree, responsive subtree, default typography subtree and
// mode typography subtree. Within a block, declarations follow document order,
// so compiling an unchanged document always yields identical bytes.
package stylesheet

import (
	"fmt"
	"slices"
	"strings"

	"bennypowers.dev/tokencss/config"
	"bennypowers.dev/tokencss/document"
	"bennypowers.dev/tokencss/index"
	"bennypowers.dev/tokencss/normalize"
	"bennypowers.dev/tokencss/resolver"
	"bennypowers.dev/tokencss/token"
)

// RootSelector scopes unconditional blocks.
const RootSelector = ":root"

// Group name prefixes stripped when composing names.
const (
	responsiveWord = "responsive"
	typographyWord = "typography"
)

// Emitter turns a document into stylesheet blocks.
type Emitter struct {
	doc      *document.Map
	resolver *resolver.Resolver
	cfg      *config.Config
}

// New creates an emitter. cfg should already carry defaults.
func New(doc *document.Map, r *resolver.Resolver, cfg *config.Config) *Emitter {
	return &Emitter{doc: doc, resolver: r, cfg: cfg}
}

// Compile indexes doc and renders the complete stylesheet. source is named in
// the banner. Nothing is returned unless every value resolved.
func Compile(doc *document.Map, cfg *config.Config, source string) ([]byte, error) {
	r := resolver.New(index.Build(doc))
	return New(doc, r, cfg).Render(source)
}

// Render assembles the stylesheet text in memory.
func (e *Emitter) Render(source string) ([]byte, error) {
	blocks, err := e.Blocks()
	if err != nil {
		return nil, err
	}

	var sb strings.Builder
	sb.WriteString(Banner(source))
	for i := range blocks {
		blocks[i].Render(&sb)
	}
	return []byte(sb.String()), nil
}

// Blocks returns every block in emission order.
func (e *Emitter) Blocks() ([]Block, error) {
	var blocks []Block

	for _, theme := range e.cfg.Themes {
		b, err := e.themeBlock(theme)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, b)
	}

	groups := []struct {
		patterns []string
		build    func(key string, subtree *document.Map) (Block, error)
	}{
		{e.cfg.Groups.Size, e.sizeBlock},
		{e.cfg.Groups.Responsive, e.responsiveBlock},
		{e.cfg.Groups.TypographyDefault, e.typographyDefaultBlock},
		{e.cfg.Groups.TypographyMode, e.typographyModeBlock},
	}
	for _, g := range groups {
		for key, v := range e.doc.All() {
			subtree, ok := v.(*document.Map)
			if !ok || !config.MatchAny(g.patterns, key) {
				continue
			}
			b, err := g.build(key, subtree)
			if err != nil {
				return nil, err
			}
			if len(b.Declarations) > 0 {
				blocks = append(blocks, b)
			}
		}
	}

	return blocks, nil
}

// themeBlock resolves each aliased slot of a theme and writes it verbatim.
func (e *Emitter) themeBlock(theme config.Theme) (Block, error) {
	b := Block{Comment: theme.Comment, Selector: theme.Selector}
	for _, slot := range theme.Slots {
		v, ok := e.doc.Lookup(slot.Path)
		node, isMap := v.(*document.Map)
		if !ok || !isMap {
			return b, &MissingTopLevelPathError{Theme: theme.Name, Slot: slot.Name, Path: slot.Path}
		}

		tok := &token.Token{Path: slices.Clone(slot.Path), Node: node}
		resolved, err := e.resolver.ResolveNode(tok)
		if err != nil {
			return b, fmt.Errorf("slot %q in theme %q: %w", slot.Name, theme.Name, err)
		}
		if _, composite := resolved.(*document.Map); composite {
			return b, fmt.Errorf("%w: slot %q in theme %q (%s)", ErrCompositeSlot, slot.Name, theme.Name, slot.Path)
		}
		s, err := normalize.Format(resolved)
		if err != nil {
			return b, fmt.Errorf("slot %q in theme %q: %w", slot.Name, theme.Name, err)
		}
		b.Declarations = append(b.Declarations, Declaration{
			Name:  VariableName(e.cfg.Prefix, slot.Name),
			Value: s,
		})
	}
	return b, nil
}

func (e *Emitter) sizeBlock(key string, subtree *document.Map) (Block, error) {
	return e.subtreeBlock(key, RootSelector, subtree, normalize.Dimensional, func(path []string) []string {
		return append([]string{CategorySize}, path...)
	})
}

func (e *Emitter) responsiveBlock(key string, subtree *document.Map) (Block, error) {
	group := stripPrefix(key, responsiveWord)
	return e.subtreeBlock(key, RootSelector, subtree, normalize.Dimensional, func(path []string) []string {
		return append([]string{CategoryBreakpoint, group}, path...)
	})
}

func (e *Emitter) typographyDefaultBlock(key string, subtree *document.Map) (Block, error) {
	return e.typographyBlock(key, RootSelector, subtree)
}

func (e *Emitter) typographyModeBlock(key string, subtree *document.Map) (Block, error) {
	mode := Sanitize(stripPrefix(key, typographyWord))
	selector := fmt.Sprintf("[%s=%q]", e.cfg.TypographyAttribute, mode)
	return e.typographyBlock(key, selector, subtree)
}

func (e *Emitter) typographyBlock(key, selector string, subtree *document.Map) (Block, error) {
	return e.subtreeBlock(key, selector, subtree, normalize.Verbatim, func(path []string) []string {
		return append([]string{CategoryType}, path...)
	})
}

// subtreeBlock emits every token node under subtree. Scalar leaves are
// normalized with hint; composite leaves expand into one declaration per
// property, with only the configured dimension properties gaining a unit.
func (e *Emitter) subtreeBlock(
	key, selector string,
	subtree *document.Map,
	hint normalize.Hint,
	nameParts func(path []string) []string,
) (Block, error) {
	b := Block{Comment: key, Selector: selector}

	for _, tok := range Walk(subtree) {
		resolved, err := e.resolver.ResolveNode(tok)
		if err != nil {
			return b, fmt.Errorf("%s.%s: %w", key, tok.DotPath(), err)
		}
		name := VariableName(e.cfg.Prefix, nameParts(tok.Path)...)

		composite, ok := resolved.(*document.Map)
		if !ok {
			s, err := normalize.Format(normalize.Normalize(resolved, hint, e.cfg.Unit))
			if err != nil {
				return b, fmt.Errorf("%s.%s: %w", key, tok.DotPath(), err)
			}
			b.Declarations = append(b.Declarations, Declaration{Name: name, Value: s})
			continue
		}

		decls, err := e.expand(name, composite)
		if err != nil {
			return b, fmt.Errorf("%s.%s: %w", key, tok.DotPath(), err)
		}
		b.Declarations = append(b.Declarations, decls...)
	}

	return b, nil
}

// expand writes one declaration per composite property, resolving
// properties that are themselves references.
func (e *Emitter) expand(base string, composite *document.Map) ([]Declaration, error) {
	decls := make([]Declaration, 0, composite.Len())
	for prop, raw := range composite.All() {
		v, err := e.resolver.ResolveValue(raw)
		if err != nil {
			return nil, fmt.Errorf("property %q: %w", prop, err)
		}
		hint := normalize.Verbatim
		if slices.Contains(e.cfg.DimensionProperties, prop) {
			hint = normalize.Dimensional
		}
		s, err := normalize.Format(normalize.Normalize(v, hint, e.cfg.Unit))
		if err != nil {
			return nil, fmt.Errorf("property %q: %w", prop, err)
		}
		decls = append(decls, Declaration{
			Name:  base + separator + Sanitize(prop),
			Value: s,
		})
	}
	return decls, nil
}

// Walk collects the token nodes under m in document order, with paths
// relative to m. It does not descend into token nodes.
func Walk(m *document.Map) []*token.Token {
	var out []*token.Token
	walk(m, nil, &out)
	return out
}

func walk(m *document.Map, path []string, out *[]*token.Token) {
	for key, v := range m.All() {
		child, ok := v.(*document.Map)
		if !ok {
			continue
		}
		childPath := slices.Clip(append(path, key))
		if token.IsNode(child) {
			*out = append(*out, &token.Token{Path: childPath, Node: child})
			continue
		}
		walk(child, childPath, out)
	}
}
