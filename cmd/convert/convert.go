/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package convert provides the convert command for svginline.
package convert

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"strings"
	"sync/atomic"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"bennypowers.dev/svginline/cmd/flags"
	"bennypowers.dev/svginline/config"
	convertlib "bennypowers.dev/svginline/convert"
	"bennypowers.dev/svginline/fs"
	"bennypowers.dev/svginline/internal/logger"
	"bennypowers.dev/svginline/loader"
	"bennypowers.dev/svginline/transform"
)

// NamePlaceholder is replaced with the input file's base name in output paths.
const NamePlaceholder = "{name}"

// Cmd is the convert cobra command.
var Cmd = &cobra.Command{
	Use:     "convert [files...]",
	Aliases: []string{"extract"},
	Short:   "Convert SVG files into inline-ready modules",
	Long: `Sanitize and transform SVG files, then write them in an output format.

Output Formats:
  cjs   CommonJS module: module.exports = "<svg>…" (default)
  esm   ES module with a default export
  ts    TypeScript ES module with a typed default export
  cts   TypeScript CommonJS module
  json  JSON string
  svg   The transformed markup

Examples:
  # Print a single icon as a CommonJS module
  svginline convert icons/close.svg

  # Write one ES module per icon, prefixing ids with the file name
  svginline convert --format esm --id-prefix "[name]-" -o "dist/{name}.js" icons/*.svg

  # Write into a directory, using the format's extension
  svginline convert --format ts -o dist/ icons/**/*.svg

  # Strip metadata and collision-proof classes with a content hash
  svginline convert --remove-tags title,desc --class-prefix "" -o dist/ icons/*.svg

  # Use files and options from config (.config/svg-inline.yaml)
  svginline convert`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("output", "o", "", "Output file, directory (trailing /), or template containing {name} (default: stdout)")
	Cmd.Flags().StringP("format", "f", "", "Output format: "+strings.Join(convertlib.ValidFormats(), ", ")+" (default cjs)")
	Cmd.Flags().String("header", "", "Comment written at the top of every output")
	Cmd.Flags().IntP("jobs", "j", 0, "Files converted in parallel (default: number of CPUs)")
	flags.AddTransformFlags(Cmd)
}

// job holds everything needed to convert a batch of files.
type job struct {
	files     []string
	output    string
	loader    *loader.Loader
	optionsFn func(file string) transform.Options
	jobs      int
}

func run(cmd *cobra.Command, args []string) error {
	filesystem := fs.NewOSFileSystem()

	// Load config from .config/svg-inline.{yaml,yml,json}
	cfg := config.LoadOrDefault(filesystem, ".")

	files, err := inputFiles(filesystem, cfg, args)
	if err != nil {
		return err
	}

	formatName := cfg.Format
	if cmd.Flags().Changed("format") {
		formatName, _ = cmd.Flags().GetString("format")
	}
	format, err := convertlib.ParseFormat(formatName)
	if err != nil {
		return err
	}

	output := cfg.Output
	if cmd.Flags().Changed("output") {
		output, _ = cmd.Flags().GetString("output")
	}
	header := cfg.Header
	if cmd.Flags().Changed("header") {
		header, _ = cmd.Flags().GetString("header")
	}
	jobs := cfg.Jobs
	if cmd.Flags().Changed("jobs") {
		jobs, _ = cmd.Flags().GetInt("jobs")
	}

	l, err := loader.New(loader.Options{Format: format, Header: header})
	if err != nil {
		return err
	}

	overrides := flags.Overrides(cmd)
	return convertFiles(cmd.Context(), filesystem, job{
		files:  files,
		output: output,
		loader: l,
		optionsFn: func(file string) transform.Options {
			return cfg.OptionsForFile(".", file).Merge(overrides)
		},
		jobs: jobs,
	}, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

func inputFiles(filesystem fs.FileSystem, cfg *config.Config, args []string) ([]string, error) {
	var files []string
	var err error
	if len(args) == 0 {
		files, err = cfg.ExpandFiles(filesystem, ".")
	} else {
		files, err = config.ExpandPatterns(filesystem, ".", args)
	}
	if err != nil {
		return nil, fmt.Errorf("error expanding files: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no files specified and no files found in config")
	}
	return files, nil
}

// convertFiles converts every file in j on a bounded worker pool.
// Per-file failures are reported on stderr and counted; the remaining
// files are still converted.
func convertFiles(ctx context.Context, filesystem fs.FileSystem, j job, stdout, stderr io.Writer) error {
	if j.output == "" && len(j.files) > 1 {
		return fmt.Errorf("converting %d files requires --output with %s or a directory", len(j.files), NamePlaceholder)
	}
	if j.output != "" && len(j.files) > 1 && !isTemplate(j.output) {
		return fmt.Errorf("output %q must contain %s or end with / when converting multiple files", j.output, NamePlaceholder)
	}
	if j.output != "" {
		written := make(map[string]string, len(j.files))
		for _, file := range j.files {
			path := OutputPath(j.output, file, j.loader.Format())
			if other, ok := written[path]; ok {
				return fmt.Errorf("%s and %s would both be written to %s", other, file, path)
			}
			written[path] = file
		}
	}
	if ctx == nil {
		ctx = context.Background()
	}

	jobs := j.jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	var failures atomic.Int32
	var stdoutBuf []byte

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for _, file := range j.files {
		file := file
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			data, err := filesystem.ReadFile(file)
			if err != nil {
				fmt.Fprintf(stderr, "Error reading %s: %v\n", file, err)
				failures.Add(1)
				return nil
			}

			out, err := j.loader.Load(file, data, j.optionsFn(file))
			if err != nil {
				fmt.Fprintf(stderr, "Error converting %s: %v\n", file, err)
				failures.Add(1)
				return nil
			}
			if len(out) > 0 && out[len(out)-1] != '\n' {
				out = append(out, '\n')
			}

			if j.output == "" {
				// Only reachable with a single file.
				stdoutBuf = out
				return nil
			}

			path := OutputPath(j.output, file, j.loader.Format())
			if err := fs.WriteFileAll(filesystem, path, out); err != nil {
				fmt.Fprintf(stderr, "Error writing %s: %v\n", path, err)
				failures.Add(1)
				return nil
			}
			logger.Info("Wrote %s", path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if stdoutBuf != nil {
		if _, err := stdout.Write(stdoutBuf); err != nil {
			return err
		}
	}

	if n := failures.Load(); n > 0 {
		return fmt.Errorf("failed to convert %d file(s)", n)
	}
	return nil
}

func isTemplate(output string) bool {
	return strings.Contains(output, NamePlaceholder) || strings.HasSuffix(output, "/")
}

// OutputPath returns where the converted form of file is written.
// A trailing slash in output names a directory, which receives
// <name><format extension>; otherwise {name} is replaced with the base
// name of file, without its extension.
func OutputPath(output, file string, format convertlib.Format) string {
	name := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	if strings.HasSuffix(output, "/") {
		return filepath.Join(output, name+format.Extension())
	}
	return strings.ReplaceAll(output, NamePlaceholder, name)
}
