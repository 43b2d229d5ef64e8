/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolve provides the resolve command for tokencss.
package resolve

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"bennypowers.dev/tokencss/cmd/project"
	"bennypowers.dev/tokencss/cmd/render"
	"bennypowers.dev/tokencss/fs"
	"bennypowers.dev/tokencss/index"
	"bennypowers.dev/tokencss/resolver"
	"bennypowers.dev/tokencss/token"
)

// Cmd is the resolve cobra command.
var Cmd = &cobra.Command{
	Use:   "resolve <reference>",
	Short: "Show what a token reference resolves to",
	Long: `Resolve a reference the way compile does and print the final value with
the chain of tokens it passed through. Braces are optional.

Examples:
  tokencss resolve "{White.1000}"
  tokencss resolve "color-sds light.Text.Default.Default" --format json`,
	Args: cobra.ExactArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("input", "i", "", "Token document (default from config)")
	Cmd.Flags().StringP("format", "f", "text", "Output format (text, json)")
}

// Options configures a resolve run.
type Options struct {
	project.Options

	Reference string
	Format    string

	// Swatch prefixes color values with an ANSI color block.
	Swatch bool
}

// Output is the JSON form of a resolution.
type Output struct {
	Reference string   `json:"reference"`
	Value     any      `json:"value"`
	Chain     []string `json:"chain"`
}

func run(cmd *cobra.Command, args []string) error {
	opts := Options{
		Options:   project.OptionsFromViper(),
		Reference: args[0],
		Swatch:    render.StdoutIsTerminal(),
	}
	opts.Input, _ = cmd.Flags().GetString("input")
	opts.Format, _ = cmd.Flags().GetString("format")

	return Run(fs.NewOSFileSystem(), opts, cmd.OutOrStdout())
}

// Run resolves opts.Reference against the project document and prints the result.
func Run(filesystem fs.FileSystem, opts Options, stdout io.Writer) error {
	p, err := project.Load(filesystem, opts.Options)
	if err != nil {
		return err
	}

	ref := opts.Reference
	if !token.IsReference(ref) {
		ref = "{" + ref + "}"
	}

	res, err := resolver.New(index.Build(p.Document)).Trace(ref)
	if err != nil {
		return err
	}

	switch opts.Format {
	case "json":
		return render.JSON(stdout, Output{Reference: ref, Value: res.Value, Chain: res.Chain})
	case "text", "":
		value, err := render.Value(res.Value)
		if err != nil {
			return err
		}
		swatch := ""
		if opts.Swatch {
			swatch = render.ColorSwatch(value)
		}
		_, err = fmt.Fprintf(stdout, "%s%s\n  %s\n", swatch, value, render.Chain(res.Chain))
		return err
	default:
		return fmt.Errorf("unknown format %q (want text or json)", opts.Format)
	}
}
