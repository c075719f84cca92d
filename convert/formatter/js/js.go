/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package js formats inline SVG markup as a JavaScript or TypeScript
// module whose default export is the markup string.
package js

import (
	"strings"

	"bennypowers.dev/svginline/convert/formatter"
)

// Module specifies the JavaScript module system.
type Module string

const (
	// ModuleCJS uses CommonJS (default).
	ModuleCJS Module = "cjs"
	// ModuleESM uses ES Modules.
	ModuleESM Module = "esm"
)

// Types specifies the type annotation system.
type Types string

const (
	// TypesNone emits plain JavaScript (default).
	TypesNone Types = ""
	// TypesTS uses TypeScript annotations.
	TypesTS Types = "ts"
)

// Options configures the JS formatter.
type Options struct {
	// Module specifies the module format: "cjs" (default), "esm".
	Module Module
	// Types specifies the type system: "" (none, default), "ts".
	Types Types
}

// Formatter outputs JavaScript/TypeScript with configurable options.
type Formatter struct {
	opts Options
}

// New creates a new JS formatter with default options (CommonJS, untyped).
func New() *Formatter {
	return NewWithOptions(Options{})
}

// NewWithOptions creates a new JS formatter with the specified options.
func NewWithOptions(opts Options) *Formatter {
	if opts.Module == "" {
		opts.Module = ModuleCJS
	}
	return &Formatter{opts: opts}
}

// Format wraps svg in a module.
//
//	cjs:     module.exports = "<svg>"
//	esm:     export default "<svg>";
//	cjs+ts:  const svg: string = "<svg>";\nexport = svg;
//	esm+ts:  const svg: string = "<svg>";\nexport default svg;
//
// The untyped CommonJS form has no trailing semicolon or newline.
func (f *Formatter) Format(svg string, opts formatter.Options) ([]byte, error) {
	quoted, err := formatter.QuoteJSON(svg)
	if err != nil {
		return nil, err
	}

	var sb strings.Builder
	sb.WriteString(formatter.FormatHeader(opts.Header, formatter.CStyleComments))

	switch {
	case f.opts.Types == TypesTS:
		sb.WriteString("const svg: string = " + quoted + ";\n")
		if f.opts.Module == ModuleCJS {
			sb.WriteString("export = svg;\n")
		} else {
			sb.WriteString("export default svg;\n")
		}
	case f.opts.Module == ModuleESM:
		sb.WriteString("export default " + quoted + ";\n")
	default:
		sb.WriteString("module.exports = " + quoted)
	}
	return []byte(sb.String()), nil
}

// Extension returns the appropriate file extension for the configured options.
func (f *Formatter) Extension() string {
	switch {
	case f.opts.Module == ModuleCJS && f.opts.Types == TypesTS:
		return ".cts"
	case f.opts.Types == TypesTS:
		return ".ts"
	case f.opts.Module == ModuleESM:
		return ".js"
	default:
		return ".cjs"
	}
}
