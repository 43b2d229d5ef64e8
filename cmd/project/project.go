/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package project loads the configuration and token document a command
// works on.
package project

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"

	"bennypowers.dev/tokencss/config"
	"bennypowers.dev/tokencss/document"
	"bennypowers.dev/tokencss/fs"
	"bennypowers.dev/tokencss/internal/logger"
	"bennypowers.dev/tokencss/source"
)

// Options override values from the config file. Empty fields leave the
// config untouched.
type Options struct {
	// Root is the project directory holding .config/ and relative paths.
	Root string

	Input  string
	Output string
	Prefix string
	Unit   string
}

// OptionsFromViper reads the global flags and TOKENCSS_* environment variables.
func OptionsFromViper() Options {
	return Options{
		Root:   viper.GetString("config-root"),
		Prefix: viper.GetString("prefix"),
		Unit:   viper.GetString("unit"),
	}
}

// Project is a loaded configuration and document.
type Project struct {
	Config   *config.Config
	Source   *source.File
	Document *document.Map
}

// Load reads the config under opts.Root, applies opts and parses the input document.
func Load(filesystem fs.FileSystem, opts Options) (*Project, error) {
	root := opts.Root
	if root == "" {
		root = "."
	}

	cfg, err := config.LoadOrDefault(filesystem, root)
	if err != nil {
		return nil, err
	}
	cfg = applyOverrides(cfg, opts)
	if path := config.Find(filesystem, root); path != "" {
		logger.Debug("Using config %s", path)
	}

	src, err := source.Resolve(filesystem, root, cfg.Input)
	if err != nil {
		return nil, err
	}
	data, err := filesystem.ReadFile(src.Path)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", src.Specifier, err)
	}
	doc, err := document.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", src.Specifier, err)
	}
	logger.Debug("Loaded %s (%s)", src.Specifier, src.Path)

	return &Project{Config: cfg, Source: src, Document: doc}, nil
}

// OutputPath returns the configured output anchored at root.
func (p *Project) OutputPath(root string) string {
	if filepath.IsAbs(p.Config.Output) || root == "" {
		return p.Config.Output
	}
	return filepath.Join(root, p.Config.Output)
}

func applyOverrides(cfg *config.Config, opts Options) *config.Config {
	out := *cfg
	if opts.Input != "" {
		out.Input = opts.Input
	}
	if opts.Output != "" {
		out.Output = opts.Output
	}
	if opts.Prefix != "" {
		out.Prefix = opts.Prefix
	}
	if opts.Unit != "" {
		out.Unit = opts.Unit
	}
	return &out
}
