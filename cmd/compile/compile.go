/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package compile provides the compile command for tokencss.
package compile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"bennypowers.dev/tokencss/cmd/project"
	"bennypowers.dev/tokencss/fs"
	"bennypowers.dev/tokencss/internal/logger"
	"bennypowers.dev/tokencss/stylesheet"
)

// ErrStale is returned by --check when the output differs from what would be generated.
var ErrStale = errors.New("generated stylesheet is out of date")

// Cmd is the compile cobra command.
var Cmd = &cobra.Command{
	Use:   "compile [input] [output]",
	Short: "Compile a token document into CSS custom properties",
	Long: `Compile a design token document into a stylesheet of CSS custom properties.

Input and output default to the values in .config/tokencss.yaml, or to
tokens.dtcg.json and tokens.generated.css. The input may be an npm specifier.

Examples:
  tokencss compile
  tokencss compile tokens.json dist/tokens.css --prefix acme
  tokencss compile npm:@acme/tokens/tokens.json --stdout
  tokencss compile --check`,
	Args: cobra.MaximumNArgs(2),
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("stdout", false, "Write the stylesheet to stdout instead of the output file")
	Cmd.Flags().Bool("check", false, "Fail if the output file is not up to date; writes nothing")
}

// Options configures a compile run.
type Options struct {
	project.Options

	Stdout bool
	Check  bool
}

func run(cmd *cobra.Command, args []string) error {
	opts := Options{Options: project.OptionsFromViper()}
	if len(args) > 0 {
		opts.Input = args[0]
	}
	if len(args) > 1 {
		opts.Output = args[1]
	}
	opts.Stdout, _ = cmd.Flags().GetBool("stdout")
	opts.Check, _ = cmd.Flags().GetBool("check")

	return Run(fs.NewOSFileSystem(), opts, cmd.OutOrStdout())
}

// Run compiles the project. Nothing is written unless compilation succeeds.
func Run(filesystem fs.FileSystem, opts Options, stdout io.Writer) error {
	p, err := project.Load(filesystem, opts.Options)
	if err != nil {
		return err
	}

	css, err := stylesheet.Compile(p.Document, p.Config, p.Source.Specifier)
	if err != nil {
		return fmt.Errorf("error compiling %s: %w", p.Source.Specifier, err)
	}

	if opts.Stdout {
		_, err := stdout.Write(css)
		return err
	}

	outPath := p.OutputPath(opts.Root)

	if opts.Check {
		existing, err := filesystem.ReadFile(outPath)
		if err != nil || !bytes.Equal(existing, css) {
			return fmt.Errorf("%w: %s", ErrStale, outPath)
		}
		logger.Info("%s is up to date", outPath)
		return nil
	}

	if dir := filepath.Dir(outPath); dir != "." {
		if err := filesystem.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("error creating %s: %w", dir, err)
		}
	}
	if err := filesystem.WriteFile(outPath, css, 0644); err != nil {
		return fmt.Errorf("error writing to %s: %w", outPath, err)
	}
	logger.Info("Wrote %s", outPath)
	return nil
}
