/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package convert

import (
	"errors"
	"fmt"
	"strings"

	"bennypowers.dev/svginline/convert/formatter"
	"bennypowers.dev/svginline/convert/formatter/js"
	"bennypowers.dev/svginline/convert/formatter/jsonstring"
	"bennypowers.dev/svginline/convert/formatter/raw"
)

// ErrUnknownFormat is returned for unrecognized format names.
var ErrUnknownFormat = errors.New("unknown format")

// Format represents an output format for extracted markup.
type Format string

const (
	// FormatCJS outputs a CommonJS module (default).
	FormatCJS Format = "cjs"

	// FormatESM outputs an ES module with a default export.
	FormatESM Format = "esm"

	// FormatTypeScript outputs a typed TypeScript ES module.
	FormatTypeScript Format = "ts"

	// FormatCTS outputs a typed TypeScript CommonJS module.
	FormatCTS Format = "cts"

	// FormatJSON outputs a JSON string.
	FormatJSON Format = "json"

	// FormatSVG outputs the markup itself.
	FormatSVG Format = "svg"
)

// ValidFormats returns all valid format strings.
func ValidFormats() []string {
	return []string{
		string(FormatCJS),
		string(FormatESM),
		string(FormatTypeScript),
		string(FormatCTS),
		string(FormatJSON),
		string(FormatSVG),
	}
}

// ParseFormat converts a string to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "cjs", "commonjs", "":
		return FormatCJS, nil
	case "esm", "module", "es":
		return FormatESM, nil
	case "ts", "typescript":
		return FormatTypeScript, nil
	case "cts":
		return FormatCTS, nil
	case "json":
		return FormatJSON, nil
	case "svg", "raw":
		return FormatSVG, nil
	default:
		return "", fmt.Errorf("%w: %s (valid: %s)", ErrUnknownFormat, s, strings.Join(ValidFormats(), ", "))
	}
}

// Formatter returns the formatter for f.
func (f Format) Formatter() (formatter.Formatter, error) {
	switch f {
	case FormatCJS:
		return js.New(), nil
	case FormatESM:
		return js.NewWithOptions(js.Options{Module: js.ModuleESM}), nil
	case FormatTypeScript:
		return js.NewWithOptions(js.Options{Module: js.ModuleESM, Types: js.TypesTS}), nil
	case FormatCTS:
		return js.NewWithOptions(js.Options{Module: js.ModuleCJS, Types: js.TypesTS}), nil
	case FormatJSON:
		return jsonstring.New(), nil
	case FormatSVG:
		return raw.New(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
}

// Extension returns the output file extension for f, or "" if f is unknown.
func (f Format) Extension() string {
	fm, err := f.Formatter()
	if err != nil {
		return ""
	}
	return fm.Extension()
}

// Wrap formats already extracted markup.
func Wrap(svg string, format Format, opts formatter.Options) ([]byte, error) {
	f, err := format.Formatter()
	if err != nil {
		return nil, err
	}
	return f.Format(svg, opts)
}
