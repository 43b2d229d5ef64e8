/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validate provides the validate command for tokencss.
package validate

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"bennypowers.dev/tokencss/cmd/project"
	"bennypowers.dev/tokencss/cmd/render"
	"bennypowers.dev/tokencss/config"
	"bennypowers.dev/tokencss/document"
	"bennypowers.dev/tokencss/fs"
	"bennypowers.dev/tokencss/index"
	"bennypowers.dev/tokencss/internal/logger"
	"bennypowers.dev/tokencss/normalize"
	"bennypowers.dev/tokencss/resolver"
	"bennypowers.dev/tokencss/stylesheet"
	"bennypowers.dev/tokencss/token"
)

// ErrInvalid is returned when any token or slot failed to resolve.
var ErrInvalid = errors.New("validation failed")

// Cmd is the validate cobra command.
var Cmd = &cobra.Command{
	Use:   "validate [input]",
	Short: "Check that every token and slot resolves",
	Long: `Resolve every token node and every configured slot, reporting all failures
rather than stopping at the first. Slots whose value is not a CSS color are
reported as warnings.`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("quiet", false, "Only output errors")
}

// Options configures a validate run.
type Options struct {
	project.Options

	Quiet bool
}

// Report lists the problems found in a project.
type Report struct {
	Tokens   int
	Slots    int
	Errors   []error
	Warnings []string
}

func run(cmd *cobra.Command, args []string) error {
	opts := Options{Options: project.OptionsFromViper()}
	if len(args) > 0 {
		opts.Input = args[0]
	}
	opts.Quiet, _ = cmd.Flags().GetBool("quiet")

	return Run(fs.NewOSFileSystem(), opts, cmd.OutOrStdout())
}

// Run validates the project, logging each problem, and returns ErrInvalid
// if any error was found.
func Run(filesystem fs.FileSystem, opts Options, stdout io.Writer) error {
	p, err := project.Load(filesystem, opts.Options)
	if err != nil {
		return err
	}

	report := Check(p.Document, p.Config)
	for _, w := range report.Warnings {
		logger.Warn("%s", w)
	}
	for _, e := range report.Errors {
		logger.Error("%v", e)
	}

	if len(report.Errors) > 0 {
		return fmt.Errorf("%w: %d errors in %s", ErrInvalid, len(report.Errors), p.Source.Specifier)
	}
	if !opts.Quiet {
		fmt.Fprintf(stdout, "%s: %d tokens, %d slots, %d warnings\n",
			p.Source.Specifier, report.Tokens, report.Slots, len(report.Warnings))
	}
	return nil
}

// Check resolves every token node in doc, including references inside
// composite values, and every slot configured in cfg.
func Check(doc *document.Map, cfg *config.Config) *Report {
	idx := index.Build(doc)
	r := resolver.New(idx)
	report := &Report{Tokens: idx.Len()}

	for _, path := range idx.Paths() {
		tok, _ := idx.Lookup(path)
		if err := checkNode(r, tok); err != nil {
			report.Errors = append(report.Errors, fmt.Errorf("%s: %w", path, err))
		}
	}

	for _, theme := range cfg.Themes {
		for _, slot := range theme.Slots {
			report.Slots++
			checkSlot(r, doc, theme, slot, report)
		}
	}

	return report
}

func checkNode(r *resolver.Resolver, tok *token.Token) error {
	v, err := r.ResolveNode(tok)
	if err != nil {
		return err
	}
	composite, ok := v.(*document.Map)
	if !ok {
		return nil
	}
	var errs []error
	for prop, raw := range composite.All() {
		if _, err := r.ResolveValue(raw); err != nil {
			errs = append(errs, fmt.Errorf("property %q: %w", prop, err))
		}
	}
	return errors.Join(errs...)
}

func checkSlot(r *resolver.Resolver, doc *document.Map, theme config.Theme, slot config.Slot, report *Report) {
	where := fmt.Sprintf("slot %q in theme %q", slot.Name, theme.Name)

	v, ok := doc.Lookup(slot.Path)
	node, isMap := v.(*document.Map)
	if !ok || !isMap {
		report.Errors = append(report.Errors, &stylesheet.MissingTopLevelPathError{
			Theme: theme.Name,
			Slot:  slot.Name,
			Path:  slot.Path,
		})
		return
	}

	resolved, err := r.ResolveNode(&token.Token{Path: slot.Path, Node: node})
	if err != nil {
		report.Errors = append(report.Errors, fmt.Errorf("%s: %w", where, err))
		return
	}
	s, err := normalize.Format(resolved)
	if err != nil {
		report.Errors = append(report.Errors, fmt.Errorf("%s: %w", where, err))
		return
	}
	if !render.IsColor(s) {
		report.Warnings = append(report.Warnings, fmt.Sprintf("%s: %q is not a CSS color", where, s))
	}
}
