/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package source

import (
	"errors"
	"fmt"
	"path/filepath"

	tcfs "bennypowers.dev/tokencss/fs"
)

// ErrPackageNotFound indicates no node_modules directory held the package file.
var ErrPackageNotFound = errors.New("package not found")

// NPMResolver finds npm specifiers in node_modules, walking up from rootDir.
type NPMResolver struct {
	fs      tcfs.FileSystem
	rootDir string
}

// NewNPMResolver creates a resolver starting its search at rootDir.
func NewNPMResolver(filesystem tcfs.FileSystem, rootDir string) *NPMResolver {
	return &NPMResolver{fs: filesystem, rootDir: rootDir}
}

// Resolve returns the nearest node_modules copy of the named file.
func (r *NPMResolver) Resolve(spec string) (*File, error) {
	parsed := Parse(spec)
	if parsed.Kind != KindNPM {
		return nil, fmt.Errorf("not an npm specifier: %s", spec)
	}

	dir, err := filepath.Abs(r.rootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %s: %w", r.rootDir, err)
	}
	start := dir

	for {
		candidate := filepath.Join(dir, "node_modules", parsed.Package, parsed.File)
		if r.fs.Exists(candidate) {
			return &File{Specifier: spec, Path: candidate, Kind: KindNPM}, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return nil, fmt.Errorf("%w: %s (looked in node_modules starting from %s)", ErrPackageNotFound, spec, start)
}

// CanResolve accepts well-formed npm specifiers.
func (r *NPMResolver) CanResolve(spec string) bool {
	return IsNPM(spec)
}
