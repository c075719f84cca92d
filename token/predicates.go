/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import "strings"

// IsStartTag reports whether tok is an opening tag.
func IsStartTag(tok Token) bool {
	_, ok := tok.(*StartTag)
	return ok
}

// IsNamedStartTag reports whether tok is an opening tag named name.
func IsNamedStartTag(tok Token, name string) bool {
	t, ok := tok.(*StartTag)
	return ok && t.Name == name
}

// IsEndTag reports whether tok is a closing tag.
func IsEndTag(tok Token) bool {
	_, ok := tok.(*EndTag)
	return ok
}

// IsNamedEndTag reports whether tok is a closing tag named name.
func IsNamedEndTag(tok Token, name string) bool {
	t, ok := tok.(*EndTag)
	return ok && t.Name == name
}

// NameSet is a set of tag or attribute names. Membership ignores ASCII
// case, since the tokenizer folds names it does not know to lower case.
type NameSet map[string]struct{}

// NewNameSet creates a NameSet from names.
func NewNameSet(names ...string) NameSet {
	set := make(NameSet, len(names))
	for _, name := range names {
		set[strings.ToLower(name)] = struct{}{}
	}
	return set
}

// Has reports whether name is in the set.
func (s NameSet) Has(name string) bool {
	_, ok := s[strings.ToLower(name)]
	return ok
}

// AttrNameIn returns a predicate matching attributes whose name is in set.
func AttrNameIn(set NameSet) func(Attr) bool {
	return func(attr Attr) bool {
		return set.Has(attr.Name)
	}
}

// AttrNameNotIn returns a predicate matching attributes whose name is not in set.
func AttrNameNotIn(set NameSet) func(Attr) bool {
	return func(attr Attr) bool {
		return !set.Has(attr.Name)
	}
}
