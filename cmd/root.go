/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for svginline.
package cmd

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/svginline/cmd/convert"
	"bennypowers.dev/svginline/cmd/flags"
	"bennypowers.dev/svginline/cmd/list"
	"bennypowers.dev/svginline/cmd/validate"
	"bennypowers.dev/svginline/cmd/version"
	"bennypowers.dev/svginline/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "svginline",
	Short: "Prepare SVG files for inlining",
	Long: `svginline sanitizes SVG files and rewrites them so they can be inlined
into HTML documents: ids and classes are prefixed to avoid collisions,
unwanted tags and attributes are removed or reported, and the result is
wrapped as a JavaScript, TypeScript, JSON or SVG file.`,
	PersistentPreRunE: configureLogging,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("class-prefix", "", `Prefix for CSS class names ("" derives one from the file content)`)
	rootCmd.PersistentFlags().String("id-prefix", "", `Prefix for ids and references to them ("" derives one from the file content)`)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug output")
	rootCmd.PersistentFlags().Bool("silent", false, "Do not log diagnostics")

	_ = viper.BindPFlag(flags.ClassPrefixKey, rootCmd.PersistentFlags().Lookup("class-prefix"))
	_ = viper.BindPFlag(flags.IDPrefixKey, rootCmd.PersistentFlags().Lookup("id-prefix"))
	viper.SetEnvPrefix("svginline")
	viper.AutomaticEnv()

	rootCmd.AddCommand(convert.Cmd)
	rootCmd.AddCommand(list.Cmd)
	rootCmd.AddCommand(validate.Cmd)
	rootCmd.AddCommand(version.Cmd)
}

func configureLogging(cmd *cobra.Command, _ []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	silent, _ := cmd.Flags().GetBool("silent")

	switch {
	case silent:
		logger.SetOutput(io.Discard)
	case verbose:
		logger.SetLevel(zerolog.DebugLevel)
	}
	return nil
}
