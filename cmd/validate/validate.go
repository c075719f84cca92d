/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validate provides the validate command for svginline.
package validate

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"bennypowers.dev/svginline/cmd/flags"
	"bennypowers.dev/svginline/config"
	"bennypowers.dev/svginline/diagnostic"
	"bennypowers.dev/svginline/extract"
	"bennypowers.dev/svginline/fs"
	"bennypowers.dev/svginline/transform"
)

// Cmd is the validate cobra command.
var Cmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Check SVG files for problems before inlining",
	Long: `Run extraction on SVG files and report its diagnostics.

Markup that cannot be tokenized is an error. Forbidden tags and
attributes (--warn-tags, --warn-attributes, or warningTags and
warningAttributes in config) are warnings, which fail the run only
with --strict.`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("strict", false, "Fail on warnings")
	Cmd.Flags().Bool("quiet", false, "Only output problems")
	flags.AddTransformFlags(Cmd)
}

// settings controls how validateFiles reports.
type settings struct {
	strict bool
	quiet  bool
}

func run(cmd *cobra.Command, args []string) error {
	strict, _ := cmd.Flags().GetBool("strict")
	quiet, _ := cmd.Flags().GetBool("quiet")

	filesystem := fs.NewOSFileSystem()

	// Load config from .config/svg-inline.{yaml,yml,json}
	cfg := config.LoadOrDefault(filesystem, ".")

	// Use config files if no args provided
	var files []string
	var err error
	if len(args) == 0 {
		files, err = cfg.ExpandFiles(filesystem, ".")
	} else {
		files, err = config.ExpandPatterns(filesystem, ".", args)
	}
	if err != nil {
		return fmt.Errorf("error expanding files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no files specified and no files found in config")
	}

	overrides := flags.Overrides(cmd)
	return validateFiles(filesystem, files, func(file string) transform.Options {
		return cfg.OptionsForFile(".", file).Merge(overrides)
	}, settings{strict: strict, quiet: quiet}, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// isError reports whether d makes a file invalid regardless of --strict.
func isError(d diagnostic.Diagnostic) bool {
	return d.Kind == diagnostic.TokenizationFailed
}

func validateFiles(
	filesystem fs.FileSystem,
	files []string,
	optionsFn func(file string) transform.Options,
	s settings,
	stdout, stderr io.Writer,
) error {
	var errorCount, warningCount int

	for _, file := range files {
		if !s.quiet {
			fmt.Fprintf(stdout, "Validating %s...\n", file)
		}

		data, err := filesystem.ReadFile(file)
		if err != nil {
			fmt.Fprintf(stderr, "Error reading %s: %v\n", file, err)
			errorCount++
			continue
		}

		opts := optionsFn(file)
		collector := &diagnostic.Collector{}
		extract.Extract(string(data), &extract.Options{
			Transform:    &opts,
			ResourcePath: file,
			Reporter:     collector,
		})

		for _, d := range collector.Diagnostics() {
			if isError(d) {
				fmt.Fprintf(stderr, "  error: %s\n", d)
				errorCount++
			} else {
				fmt.Fprintf(stderr, "  warning: %s\n", d)
				warningCount++
			}
		}

		if !s.quiet && collector.Len() == 0 {
			fmt.Fprintln(stdout, "  ok")
		}
	}

	switch {
	case errorCount > 0:
		return fmt.Errorf("validation failed: %d error(s), %d warning(s)", errorCount, warningCount)
	case s.strict && warningCount > 0:
		return fmt.Errorf("validation failed: %d warning(s) in strict mode", warningCount)
	}

	if !s.quiet {
		if warningCount > 0 {
			fmt.Fprintf(stdout, "All files valid, %d warning(s).\n", warningCount)
		} else {
			fmt.Fprintln(stdout, "All files valid.")
		}
	}
	return nil
}
