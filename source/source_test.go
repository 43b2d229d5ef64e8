/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package source_test

import (
	"errors"
	"testing"

	"bennypowers.dev/tokencss/internal/mapfs"
	"bennypowers.dev/tokencss/source"
)

func TestParse(t *testing.T) {
	tests := []struct {
		spec string
		kind source.Kind
		pkg  string
		file string
	}{
		{"npm:@acme/tokens/dist/tokens.json", source.KindNPM, "@acme/tokens", "dist/tokens.json"},
		{"npm:tokens/tokens.json", source.KindNPM, "tokens", "tokens.json"},
		{"npm:tokens", source.KindNPM, "tokens", ""},
		{"./tokens.dtcg.json", source.KindLocal, "", "./tokens.dtcg.json"},
		{"/abs/tokens.json", source.KindLocal, "", "/abs/tokens.json"},
		{"npm:", source.KindLocal, "", "npm:"},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			s := source.Parse(tt.spec)
			if s.Kind != tt.kind || s.Package != tt.pkg || s.File != tt.file {
				t.Errorf("Parse(%q) = {%v %q %q}, want {%v %q %q}",
					tt.spec, s.Kind, s.Package, s.File, tt.kind, tt.pkg, tt.file)
			}
			if s.Raw != tt.spec {
				t.Errorf("Raw = %q, want %q", s.Raw, tt.spec)
			}
		})
	}
}

func TestResolve_Local(t *testing.T) {
	mfs := mapfs.New()

	tests := []struct {
		spec     string
		expected string
	}{
		{"tokens.dtcg.json", "/project/tokens.dtcg.json"},
		{"./design/tokens.json", "/project/design/tokens.json"},
		{"/elsewhere/tokens.json", "/elsewhere/tokens.json"},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			f, err := source.Resolve(mfs, "/project", tt.spec)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if f.Path != tt.expected {
				t.Errorf("Path = %q, want %q", f.Path, tt.expected)
			}
			if f.Kind != source.KindLocal {
				t.Errorf("Kind = %v, want KindLocal", f.Kind)
			}
		})
	}
}

func TestResolve_NPMWalksUp(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/repo/node_modules/@acme/tokens/tokens.json", `{}`, 0644)

	f, err := source.Resolve(mfs, "/repo/packages/site", "npm:@acme/tokens/tokens.json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Path != "/repo/node_modules/@acme/tokens/tokens.json" {
		t.Errorf("Path = %q", f.Path)
	}
	if f.Specifier != "npm:@acme/tokens/tokens.json" {
		t.Errorf("Specifier = %q", f.Specifier)
	}
	if f.Kind != source.KindNPM {
		t.Errorf("Kind = %v, want KindNPM", f.Kind)
	}
}

func TestResolve_NPMPrefersNearest(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/repo/node_modules/tokens/t.json", `{}`, 0644)
	mfs.AddFile("/repo/app/node_modules/tokens/t.json", `{}`, 0644)

	f, err := source.Resolve(mfs, "/repo/app", "npm:tokens/t.json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Path != "/repo/app/node_modules/tokens/t.json" {
		t.Errorf("Path = %q", f.Path)
	}
}

func TestResolve_NPMNotFound(t *testing.T) {
	_, err := source.Resolve(mapfs.New(), "/repo", "npm:@acme/missing/tokens.json")
	if !errors.Is(err, source.ErrPackageNotFound) {
		t.Fatalf("expected ErrPackageNotFound, got %v", err)
	}
}
