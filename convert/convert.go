/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package convert extracts inline SVG markup and wraps it as source text
// for a bundler or a static file.
package convert

import (
	"bennypowers.dev/svginline/convert/formatter"
	"bennypowers.dev/svginline/diagnostic"
	"bennypowers.dev/svginline/extract"
	"bennypowers.dev/svginline/transform"
)

// Options configures a conversion.
type Options struct {
	// Format specifies the output format (default FormatCJS).
	Format Format

	// Header is emitted as a comment at the top of the output.
	Header string

	// Transform selects the transforms to run. Nil means the defaults.
	Transform *transform.Options

	// ResourcePath is the path of the source file, used for prefix
	// placeholders and diagnostics.
	ResourcePath string

	// Reporter receives diagnostics. Nil logs them.
	Reporter diagnostic.Reporter
}

// DefaultOptions returns options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Format: FormatCJS,
	}
}

// Convert extracts content and wraps the result in the configured format.
// The only error is an unknown format; extraction itself cannot fail.
func Convert(content string, opts Options) ([]byte, error) {
	if opts.Format == "" {
		opts.Format = FormatCJS
	}
	f, err := opts.Format.Formatter()
	if err != nil {
		return nil, err
	}

	svg := extract.Extract(content, &extract.Options{
		Transform:    opts.Transform,
		ResourcePath: opts.ResourcePath,
		Reporter:     opts.Reporter,
	})
	return f.Format(svg, formatter.Options{Header: opts.Header})
}
