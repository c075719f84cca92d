/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package sanitize cleans up raw SVG markup before tokenization.
package sanitize

import (
	"regexp"
	"strings"
)

// Replacement is a single pattern/replacement pair applied to raw markup.
type Replacement struct {
	Pattern     *regexp.Regexp
	Replacement string
}

// Replacements are applied in order by Sanitize:
//
//   - XML prolog(s) are removed.
//   - Doctype declaration(s) are removed.
//   - Single-line comments are removed.
//   - Self-closing tags are rewritten as explicit open/close pairs.
//   - Runs of whitespace are collapsed to a single space.
//   - Whitespace between tags is removed.
var Replacements = []Replacement{
	{regexp.MustCompile(`(?i)<\?xml[\s\S]*?>`), ""},
	{regexp.MustCompile(`(?i)<!doctype[\s\S]*?>`), ""},
	{regexp.MustCompile(`<!--.*?-->`), ""},
	{regexp.MustCompile(`<([A-Za-z][A-Za-z0-9:._-]*)([^>]*)/>`), "<${1}${2}></${1}>"},
	{regexp.MustCompile(`\s+`), " "},
	{regexp.MustCompile(`> <`), "><"},
}

const byteOrderMark = "\ufeff"

// Sanitize applies Replacements to s and trims the result.
func Sanitize(s string) string {
	s = strings.TrimPrefix(s, byteOrderMark)
	for _, r := range Replacements {
		s = r.Pattern.ReplaceAllString(s, r.Replacement)
	}
	return strings.TrimSpace(s)
}
