/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for tokencss.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/tokencss/cmd/compile"
	"bennypowers.dev/tokencss/cmd/resolve"
	"bennypowers.dev/tokencss/cmd/validate"
	"bennypowers.dev/tokencss/cmd/version"
	"bennypowers.dev/tokencss/internal/logger"
)

// EnvPrefix namespaces environment variables bound to global flags,
// e.g. TOKENCSS_PREFIX or TOKENCSS_CONFIG_ROOT.
const EnvPrefix = "TOKENCSS"

var rootCmd = &cobra.Command{
	Use:   "tokencss",
	Short: "Compile design tokens into CSS custom properties",
	Long: `tokencss resolves the references in a design token document and writes
the result as a stylesheet of CSS custom properties.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetVerbose(viper.GetBool("verbose"))
	},
}

// Execute runs the root command, logging any error it returns.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		logger.Error("%v", err)
	}
	return err
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringP("prefix", "p", "", "Custom property prefix (default from config, else \"ds\")")
	flags.StringP("unit", "u", "", "Unit for unitless dimensions (default from config, else \"px\")")
	flags.String("config-root", ".", "Directory containing .config/tokencss.{yaml,yml,json,toml}")
	flags.BoolP("verbose", "v", false, "Log debug output")

	for _, name := range []string{"prefix", "unit", "config-root", "verbose"} {
		_ = viper.BindPFlag(name, flags.Lookup(name))
	}
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd.AddCommand(compile.Cmd)
	rootCmd.AddCommand(resolve.Cmd)
	rootCmd.AddCommand(validate.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
