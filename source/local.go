/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package source

import "path/filepath"

// LocalResolver anchors relative paths at the project root.
type LocalResolver struct {
	rootDir string
}

// NewLocalResolver creates a resolver for paths relative to rootDir.
func NewLocalResolver(rootDir string) *LocalResolver {
	return &LocalResolver{rootDir: rootDir}
}

// Resolve joins relative paths onto the root; absolute paths pass through.
func (r *LocalResolver) Resolve(spec string) (*File, error) {
	path := spec
	if !filepath.IsAbs(path) && r.rootDir != "" {
		path = filepath.Join(r.rootDir, path)
	}
	return &File{Specifier: spec, Path: path, Kind: KindLocal}, nil
}

// CanResolve accepts anything that is not an npm specifier.
func (r *LocalResolver) CanResolve(spec string) bool {
	return !IsNPM(spec)
}
