/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package version provides the version command for tokencss.
package version

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"bennypowers.dev/tokencss/cmd/render"
	"bennypowers.dev/tokencss/internal/version"
)

// Cmd is the version cobra command that prints version and build information.
var Cmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print version information for tokencss.`,
	Args:  cobra.NoArgs,
	RunE:  run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "text", "Output format (text, json)")
}

func run(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("error reading format flag: %w", err)
	}
	return Print(cmd.OutOrStdout(), format)
}

// Print writes the version in the given format.
func Print(w io.Writer, format string) error {
	switch format {
	case "json":
		return render.JSON(w, version.Info())
	case "text", "":
		_, err := fmt.Fprintf(w, "tokencss %s\n", version.Get())
		return err
	default:
		return fmt.Errorf("unknown format %q (want text or json)", format)
	}
}
