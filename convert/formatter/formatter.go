/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package formatter provides the interface and common utilities for
// inline SVG output formatters.
package formatter

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Formatter wraps extracted SVG markup for a target module system.
type Formatter interface {
	// Format converts markup to the target format.
	Format(svg string, opts Options) ([]byte, error)

	// Extension returns the file extension, with leading dot, for output
	// written in this format.
	Extension() string
}

// Options configures formatter behavior.
type Options struct {
	// Header is emitted as a comment at the top of the output, for
	// formats that allow comments. Empty means no header.
	Header string
}

// CommentStyle selects how FormatHeader renders a header.
type CommentStyle int

const (
	// CStyleComments renders a /* */ block.
	CStyleComments CommentStyle = iota
	// LineComments renders one // comment per line.
	LineComments
	// XMLComments renders an <!-- --> block.
	XMLComments
)

// FormatHeader renders header as a comment followed by a blank line.
// Trailing newlines in header are dropped. An empty header renders as "".
// Sequences that would end the comment early are broken up.
func FormatHeader(header string, style CommentStyle) string {
	header = strings.TrimRight(header, "\r\n")
	if header == "" {
		return ""
	}
	header = neutralize(header, style)
	lines := strings.Split(header, "\n")

	var sb strings.Builder
	switch style {
	case LineComments:
		for _, line := range lines {
			sb.WriteString(strings.TrimRight("// "+line, " "))
			sb.WriteByte('\n')
		}
	case XMLComments:
		if len(lines) == 1 {
			sb.WriteString("<!-- " + lines[0] + " -->\n")
			break
		}
		sb.WriteString("<!--\n")
		for _, line := range lines {
			sb.WriteString(strings.TrimRight("  "+line, " "))
			sb.WriteByte('\n')
		}
		sb.WriteString("-->\n")
	default:
		if len(lines) == 1 {
			sb.WriteString("/* " + lines[0] + " */\n")
			break
		}
		sb.WriteString("/*\n")
		for _, line := range lines {
			sb.WriteString(strings.TrimRight(" * "+line, " "))
			sb.WriteByte('\n')
		}
		sb.WriteString(" */\n")
	}
	sb.WriteByte('\n')
	return sb.String()
}

// QuoteJSON returns s as a JSON string literal. Unlike json.Marshal it
// leaves <, > and & unescaped, matching JSON.stringify.
func QuoteJSON(s string) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// neutralize breaks up comment terminators in header.
func neutralize(header string, style CommentStyle) string {
	switch style {
	case LineComments:
		return header
	case XMLComments:
		// "---" becomes "- --" after one pass, so repeat.
		for strings.Contains(header, "--") {
			header = strings.ReplaceAll(header, "--", "- -")
		}
		return header
	default:
		return strings.ReplaceAll(header, "*/", "* /")
	}
}
