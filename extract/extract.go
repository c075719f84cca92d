/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package extract turns raw SVG files into markup that is safe to inline
// in a host document.
//
// Extract sanitizes the input, tokenizes it, runs the transform pipeline
// selected by the options and serializes the result. It never fails:
// markup that cannot be tokenized is reported and returned sanitized but
// otherwise untouched.
package extract

import (
	"bennypowers.dev/svginline/diagnostic"
	"bennypowers.dev/svginline/interpolate"
	"bennypowers.dev/svginline/sanitize"
	"bennypowers.dev/svginline/tokenizer"
	"bennypowers.dev/svginline/transform"
)

// Options configures a single extraction.
type Options struct {
	// Transform selects the transforms to run. Nil means the defaults.
	Transform *transform.Options

	// ResourcePath is the path of the source file. It feeds [name]-style
	// placeholders in prefixes and is attached to diagnostics.
	ResourcePath string

	// Reporter receives diagnostics. Nil logs them as warnings.
	Reporter diagnostic.Reporter
}

// Extract returns content sanitized and transformed for inlining.
// It is safe for concurrent use; every call builds its own pipeline.
func Extract(content string, opts *Options) string {
	if opts == nil {
		opts = &Options{}
	}

	var r diagnostic.Reporter = diagnostic.LogReporter{}
	if opts.Reporter != nil {
		r = opts.Reporter
	}
	if opts.ResourcePath != "" {
		r = diagnostic.WithResource(r, opts.ResourcePath)
	}

	sanitized := sanitize.Sanitize(content)
	tokens, err := tokenizer.Tokenize(sanitized)
	if err != nil {
		r.Report(diagnostic.Diagnostic{Kind: diagnostic.TokenizationFailed, Err: err})
		return sanitized
	}

	ctx := interpolate.Context{Content: []byte(content), ResourcePath: opts.ResourcePath}
	pipeline := transform.Compose(resolvePrefixes(opts.Transform, ctx), r)
	return tokenizer.Generate(pipeline.Run(tokens))
}

// Sanitized returns content after sanitization only.
func Sanitized(content string) string {
	return sanitize.Sanitize(content)
}

// resolvePrefixes returns a copy of o whose string prefixes have been
// interpolated, with empty prefixes replaced by a content hash.
func resolvePrefixes(o *transform.Options, ctx interpolate.Context) *transform.Options {
	if o == nil {
		return nil
	}
	resolved := *o
	resolved.ClassPrefix = resolvePrefix(o.ClassPrefix, ctx)
	resolved.IDPrefix = resolvePrefix(o.IDPrefix, ctx)
	return &resolved
}

func resolvePrefix(prefix *string, ctx interpolate.Context) *string {
	if prefix == nil {
		return nil
	}
	pattern := *prefix
	if pattern == "" {
		pattern = interpolate.DefaultPrefixPattern
	}
	return transform.String(interpolate.Name(pattern, ctx))
}
