/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package transform rewrites, filters and reports on SVG token streams.
//
// Each transform sees one token at a time and returns the (possibly
// mutated) token, or nil to delete it. Transforms that need context
// across tokens, such as subtree removal, keep it in their own struct;
// a fresh set is built for every Pipeline.
package transform

import (
	"strings"

	"bennypowers.dev/svginline/diagnostic"
	"bennypowers.dev/svginline/token"
)

// Transform rewrites a single token. Returning nil deletes the token.
type Transform interface {
	Apply(tok token.Token) token.Token
}

// Func adapts a stateless function to the Transform interface.
type Func func(tok token.Token) token.Token

// Apply calls f(tok).
func (f Func) Apply(tok token.Token) token.Token { return f(tok) }

var sizeAttributes = token.NewNameSet("width", "height")

// rootSizeRemover strips width and height from the first <svg> start tag.
type rootSizeRemover struct {
	done bool
}

// RemoveRootSizeAttributes returns a transform that deletes the width and
// height attributes of the root <svg> element. Nested <svg> elements keep
// theirs.
func RemoveRootSizeAttributes() Transform {
	return &rootSizeRemover{}
}

func (r *rootSizeRemover) Apply(tok token.Token) token.Token {
	if r.done || !token.IsNamedStartTag(tok, "svg") {
		return tok
	}
	r.done = true
	tok.(*token.StartTag).Filter(token.AttrNameNotIn(sizeAttributes))
	return tok
}

// RemoveAttributes returns a transform that deletes the named attributes
// from every start tag.
func RemoveAttributes(names []string) Transform {
	keep := token.AttrNameNotIn(token.NewNameSet(names...))
	return Func(func(tok token.Token) token.Token {
		if t, ok := tok.(*token.StartTag); ok {
			t.Filter(keep)
		}
		return tok
	})
}

// WarnAttributes returns a transform that reports start tags carrying any
// of the named attributes. Tokens are not modified.
func WarnAttributes(names []string, r diagnostic.Reporter) Transform {
	forbidden := token.AttrNameIn(token.NewNameSet(names...))
	return Func(func(tok token.Token) token.Token {
		t, ok := tok.(*token.StartTag)
		if !ok {
			return tok
		}
		var found []string
		for _, attr := range t.Attributes {
			if forbidden(attr) {
				found = append(found, attr.Name)
			}
		}
		if len(found) > 0 {
			r.Report(diagnostic.Diagnostic{
				Kind:       diagnostic.ForbiddenAttributes,
				Tag:        t.Name,
				Attributes: found,
			})
		}
		return tok
	})
}

// WarnTags returns a transform that reports start tags with any of the
// given names. Tokens are not modified.
func WarnTags(names []string, r diagnostic.Reporter) Transform {
	set := token.NewNameSet(names...)
	return Func(func(tok token.Token) token.Token {
		if t, ok := tok.(*token.StartTag); ok && set.Has(t.Name) {
			r.Report(diagnostic.Diagnostic{Kind: diagnostic.ForbiddenTag, Tag: t.Name})
		}
		return tok
	})
}

// tagRemover deletes every token from a removed start tag through its
// matching end tag. depth counts open elements named target so nested
// elements of the same name do not end removal early.
type tagRemover struct {
	names  token.NameSet
	target string
	depth  int
}

// RemoveTags returns a transform that deletes the subtree of every element
// with one of the given names, including its start and end tags.
func RemoveTags(names []string) Transform {
	return &tagRemover{names: token.NewNameSet(names...)}
}

func (r *tagRemover) Apply(tok token.Token) token.Token {
	if r.target == "" {
		t, ok := tok.(*token.StartTag)
		if !ok || !r.names.Has(t.Name) {
			return tok
		}
		if !t.SelfClosing {
			r.target = t.Name
			r.depth = 1
		}
		return nil
	}

	switch t := tok.(type) {
	case *token.StartTag:
		if t.Name == r.target && !t.SelfClosing {
			r.depth++
		}
	case *token.EndTag:
		if t.Name == r.target {
			r.depth--
			if r.depth == 0 {
				r.target = ""
			}
		}
	}
	return nil
}

// classPrefixer prefixes class attributes, and class selectors in the
// character data of <style> elements.
type classPrefixer struct {
	prefix  string
	inStyle bool
}

// PrefixClasses returns a transform that prepends prefix to every class
// name. Class attribute values are rewritten as "<prefix><name> " for each
// class, so the result keeps a trailing space.
func PrefixClasses(prefix string) Transform {
	return &classPrefixer{prefix: prefix}
}

func (p *classPrefixer) Apply(tok token.Token) token.Token {
	switch t := tok.(type) {
	case *token.StartTag:
		// The class of a <style> element itself is left alone.
		if t.Name == "style" {
			p.inStyle = !t.SelfClosing
			return tok
		}
		if i := t.Index("class"); i >= 0 {
			var sb strings.Builder
			for _, name := range strings.Fields(t.Attributes[i].Value) {
				sb.WriteString(p.prefix)
				sb.WriteString(name)
				sb.WriteByte(' ')
			}
			t.Attributes[i].Value = sb.String()
		}
	case *token.EndTag:
		if t.Name == "style" {
			p.inStyle = false
		}
	case *token.Chars:
		if p.inStyle {
			t.Text = PrefixSelectors(t.Text, p.prefix)
		}
	}
	return tok
}

// PrefixIDs returns a transform that prepends prefix to id attributes,
// to "#id" references in the xlink:href and href attributes of <use>,
// and to every attribute value of the form url(#id).
func PrefixIDs(prefix string) Transform {
	return Func(func(tok token.Token) token.Token {
		t, ok := tok.(*token.StartTag)
		if !ok {
			return tok
		}
		if i := t.Index("id"); i >= 0 {
			t.Attributes[i].Value = prefix + t.Attributes[i].Value
		}
		if t.Name == "use" {
			for _, name := range []string{"xlink:href", "href"} {
				i := t.Index(name)
				if i >= 0 && strings.HasPrefix(t.Attributes[i].Value, "#") {
					t.Attributes[i].Value = "#" + prefix + t.Attributes[i].Value[1:]
				}
			}
		}
		for i, attr := range t.Attributes {
			if m := urlReferencePattern.FindStringSubmatch(attr.Value); m != nil {
				t.Attributes[i].Value = "url(#" + prefix + m[1] + ")"
			}
		}
		return tok
	})
}
