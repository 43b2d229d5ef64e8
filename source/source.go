/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package source locates the token document a compile reads from.
//
// An input is either a path on disk, relative to the project root, or an npm
// specifier such as npm:@scope/tokens/dist/tokens.json, which names a file
// inside an installed package.
package source

import (
	"fmt"
	"regexp"
	"strings"

	tcfs "bennypowers.dev/tokencss/fs"
)

// Kind tells local paths from package specifiers.
type Kind int

const (
	// KindLocal is a filesystem path.
	KindLocal Kind = iota
	// KindNPM is an npm package specifier.
	KindNPM
)

const npmScheme = "npm:"

// npmPattern matches npm:@scope/pkg/file, npm:pkg/file or a bare npm:pkg.
var npmPattern = regexp.MustCompile(`^npm:(@[^/]+/[^/]+|[^/]+)(/.*)?$`)

// Specifier is a parsed input specifier.
type Specifier struct {
	Kind Kind

	// Package is the package name, empty for local paths.
	Package string

	// File is the path inside the package, or the local path.
	File string

	// Raw is the string as given.
	Raw string
}

// Parse reads spec. Anything that is not a well-formed npm specifier is a
// local path.
func Parse(spec string) *Specifier {
	if strings.HasPrefix(spec, npmScheme) {
		if m := npmPattern.FindStringSubmatch(spec); len(m) == 3 {
			return &Specifier{
				Kind:    KindNPM,
				Package: m[1],
				File:    strings.TrimPrefix(m[2], "/"),
				Raw:     spec,
			}
		}
	}
	return &Specifier{Kind: KindLocal, File: spec, Raw: spec}
}

// IsNPM reports whether spec names a file in an npm package.
func IsNPM(spec string) bool {
	return Parse(spec).Kind == KindNPM
}

// File is a specifier together with the path it resolved to.
type File struct {
	// Specifier is the input as given, e.g. "npm:@acme/tokens/tokens.json".
	Specifier string

	// Path is the filesystem path,
	// e.g. "/project/node_modules/@acme/tokens/tokens.json".
	Path string

	Kind Kind
}

// Resolver turns specifiers into filesystem paths.
type Resolver interface {
	Resolve(spec string) (*File, error)
	CanResolve(spec string) bool
}

// ChainResolver delegates to the first resolver that accepts a specifier.
type ChainResolver struct {
	resolvers []Resolver
}

// NewChainResolver tries resolvers in the given order.
func NewChainResolver(resolvers ...Resolver) *ChainResolver {
	return &ChainResolver{resolvers: resolvers}
}

// Resolve uses the first resolver whose CanResolve accepts spec.
func (c *ChainResolver) Resolve(spec string) (*File, error) {
	for _, r := range c.resolvers {
		if r.CanResolve(spec) {
			return r.Resolve(spec)
		}
	}
	return nil, fmt.Errorf("no resolver found for input: %s", spec)
}

// CanResolve reports whether any resolver accepts spec.
func (c *ChainResolver) CanResolve(spec string) bool {
	for _, r := range c.resolvers {
		if r.CanResolve(spec) {
			return true
		}
	}
	return false
}

// NewDefaultResolver resolves npm specifiers first and local paths otherwise.
func NewDefaultResolver(filesystem tcfs.FileSystem, rootDir string) *ChainResolver {
	return NewChainResolver(
		NewNPMResolver(filesystem, rootDir),
		NewLocalResolver(rootDir),
	)
}

// Resolve is shorthand for NewDefaultResolver(filesystem, rootDir).Resolve(spec).
func Resolve(filesystem tcfs.FileSystem, rootDir, spec string) (*File, error) {
	return NewDefaultResolver(filesystem, rootDir).Resolve(spec)
}
