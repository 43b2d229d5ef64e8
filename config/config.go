/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for tokencss.
package config

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"bennypowers.dev/tokencss/normalize"
)

// Defaults used when neither flags nor a config file set a value.
const (
	DefaultInput               = "tokens.dtcg.json"
	DefaultOutput              = "tokens.generated.css"
	DefaultPrefix              = "ds"
	DefaultTypographyAttribute = "data-typography"
)

// Config represents the compiler configuration.
type Config struct {
	// Input is the token document path or npm: specifier.
	Input string `yaml:"input" json:"input" toml:"input"`

	// Output is the generated stylesheet path.
	Output string `yaml:"output" json:"output" toml:"output"`

	// Prefix is the namespace every custom property name starts with.
	Prefix string `yaml:"prefix" json:"prefix" toml:"prefix"`

	// Unit is appended to unitless dimensional values.
	Unit string `yaml:"unit" json:"unit" toml:"unit"`

	// Themes are the aliased color blocks, emitted in order.
	Themes []Theme `yaml:"themes" json:"themes" toml:"themes"`

	// Groups selects the top-level subtrees emitted as subtree blocks.
	Groups Groups `yaml:"groups" json:"groups" toml:"groups"`

	// TypographyAttribute is the attribute selecting a typography mode.
	TypographyAttribute string `yaml:"typographyAttribute" json:"typographyAttribute" toml:"typographyAttribute"`

	// DimensionProperties are the composite properties that gain a unit.
	DimensionProperties []string `yaml:"dimensionProperties" json:"dimensionProperties" toml:"dimensionProperties"`
}

// Theme is one block of aliased slots.
type Theme struct {
	// Name identifies the theme in diagnostics.
	Name string `yaml:"name" json:"name" toml:"name"`

	// Selector is the block selector, e.g. `:root` or `[data-theme="dark"]`.
	Selector string `yaml:"selector" json:"selector" toml:"selector"`

	// Comment, when set, is written on the line before the block.
	Comment string `yaml:"comment" json:"comment" toml:"comment"`

	// Slots map output names to token paths, in output order.
	Slots Slots `yaml:"slots" json:"slots" toml:"slots"`
}

// Groups holds glob patterns matched against lower-cased top-level keys.
type Groups struct {
	Size              []string `yaml:"size" json:"size" toml:"size"`
	Responsive        []string `yaml:"responsive" json:"responsive" toml:"responsive"`
	TypographyDefault []string `yaml:"typographyDefault" json:"typographyDefault" toml:"typographyDefault"`
	TypographyMode    []string `yaml:"typographyMode" json:"typographyMode" toml:"typographyMode"`
}

// DefaultDimensionProperties are the typography properties measured in length units.
var DefaultDimensionProperties = []string{
	"fontSize",
	"lineHeight",
	"paragraphSpacing",
	"paragraphIndent",
	"letterSpacing",
}

// DefaultGroups mirrors the conventional top-level naming of token exports.
func DefaultGroups() Groups {
	return Groups{
		Size:              []string{"size*"},
		Responsive:        []string{"responsive*"},
		TypographyDefault: []string{"typography*default*"},
		TypographyMode:    []string{"typography*mode*"},
	}
}

// colorRoles lists the semantic color slots and their path below a color set.
var colorRoles = []struct {
	name string
	path []string
}{
	{"bg", []string{"Background", "Default", "Default"}},
	{"bg-hover", []string{"Background", "Default", "Default Hover"}},
	{"surface-2", []string{"Background", "Default", "Secondary"}},
	{"surface-3", []string{"Background", "Default", "Tertiary"}},
	{"text", []string{"Text", "Default", "Default"}},
	{"text-muted", []string{"Text", "Default", "Secondary"}},
	{"border", []string{"Border", "Default", "Default"}},
	{"accent", []string{"Background", "Brand", "Default"}},
	{"accent-hover", []string{"Background", "Brand", "Hover"}},
	{"on-accent", []string{"Text", "Brand", "On Brand"}},
	{"focus", []string{"Border", "Brand", "Default"}},
	{"overlay", []string{"Background", "Utilities", "Overlay"}},
}

// ColorSlots binds every semantic color role to the same path under set.
func ColorSlots(set string) Slots {
	slots := make(Slots, 0, len(colorRoles))
	for _, role := range colorRoles {
		path := append([]string{set}, role.path...)
		slots = append(slots, Slot{Name: role.name, Path: path})
	}
	return slots
}

// DefaultThemes returns the light, dark and brand B color blocks.
func DefaultThemes() []Theme {
	return []Theme{
		{Name: "light", Selector: ":root", Slots: ColorSlots("color-sds light")},
		{Name: "dark", Selector: `[data-theme="dark"]`, Slots: ColorSlots("color-sds dark")},
		{
			Name:     "brand-b",
			Selector: `[data-brand="b"]`,
			Comment:  "Brand B (light) override",
			Slots:    ColorSlots("color-brand b light"),
		},
	}
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		Input:               DefaultInput,
		Output:              DefaultOutput,
		Prefix:              DefaultPrefix,
		Unit:                normalize.DefaultUnit,
		Themes:              DefaultThemes(),
		Groups:              DefaultGroups(),
		TypographyAttribute: DefaultTypographyAttribute,
		DimensionProperties: DefaultDimensionProperties,
	}
}

// WithDefaults fills every unset field from Default.
// An explicitly empty prefix cannot be expressed in a file and stays "ds".
func (c *Config) WithDefaults() *Config {
	d := Default()
	out := *c
	if out.Input == "" {
		out.Input = d.Input
	}
	if out.Output == "" {
		out.Output = d.Output
	}
	if out.Prefix == "" {
		out.Prefix = d.Prefix
	}
	if out.Unit == "" {
		out.Unit = d.Unit
	}
	if out.Themes == nil {
		out.Themes = d.Themes
	}
	if out.Groups.Size == nil {
		out.Groups.Size = d.Groups.Size
	}
	if out.Groups.Responsive == nil {
		out.Groups.Responsive = d.Groups.Responsive
	}
	if out.Groups.TypographyDefault == nil {
		out.Groups.TypographyDefault = d.Groups.TypographyDefault
	}
	if out.Groups.TypographyMode == nil {
		out.Groups.TypographyMode = d.Groups.TypographyMode
	}
	if out.TypographyAttribute == "" {
		out.TypographyAttribute = d.TypographyAttribute
	}
	if out.DimensionProperties == nil {
		out.DimensionProperties = d.DimensionProperties
	}
	return &out
}

// MatchAny reports whether the lower-cased key matches any of the patterns.
// Patterns use doublestar glob syntax and are lower-cased before matching.
func MatchAny(patterns []string, key string) bool {
	key = strings.ToLower(key)
	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(strings.ToLower(pattern), key); ok {
			return true
		}
	}
	return false
}
