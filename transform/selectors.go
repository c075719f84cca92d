/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package transform

import (
	"regexp"
	"strings"
)

var (
	// A class selector: a dot followed by a CSS identifier.
	classSelectorPattern = regexp.MustCompile(`\.-?[_a-zA-Z]+[_a-zA-Z0-9-]*`)

	// An attribute value that is exactly a local url() reference.
	urlReferencePattern = regexp.MustCompile(`(?i)^url\(#(.+)\)$`)
)

// PrefixSelectors inserts prefix after the dot of every class selector in
// css. Matches inside a declaration block, where the next '}' comes before
// any '{', are left alone so values such as "url(a.png)" or "0.5em" are
// not rewritten.
func PrefixSelectors(css, prefix string) string {
	matches := classSelectorPattern.FindAllStringIndex(css, -1)
	if len(matches) == 0 {
		return css
	}

	var sb strings.Builder
	sb.Grow(len(css) + len(matches)*len(prefix))
	last := 0
	for _, m := range matches {
		if insideBlock(css[m[1]:]) {
			continue
		}
		dot := m[0] + 1
		sb.WriteString(css[last:dot])
		sb.WriteString(prefix)
		last = dot
	}
	sb.WriteString(css[last:])
	return sb.String()
}

// insideBlock reports whether rest reaches a closing brace without first
// crossing an opening one.
func insideBlock(rest string) bool {
	end := strings.IndexByte(rest, '}')
	if end < 0 {
		return false
	}
	return strings.IndexByte(rest[:end], '{') < 0
}

// SelectorClasses returns the class names, without the dot, of the
// selectors in css that PrefixSelectors would rewrite.
func SelectorClasses(css string) []string {
	var names []string
	for _, m := range classSelectorPattern.FindAllStringIndex(css, -1) {
		if !insideBlock(css[m[1]:]) {
			names = append(names, css[m[0]+1:m[1]])
		}
	}
	return names
}
