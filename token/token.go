/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package token provides the flat markup token model used by the
// extraction pipeline.
//
// A token stream carries no parent/child relationship: tags are only
// related by their order in the stream.
package token

// Type identifies the kind of a Token.
type Type int

const (
	// StartTagType is an opening tag, e.g. <svg viewBox="0 0 1 1">.
	StartTagType Type = iota
	// EndTagType is a closing tag, e.g. </svg>.
	EndTagType
	// CharsType is character data between tags.
	CharsType
	// CommentType is a markup comment.
	CommentType
)

// String returns the name of the token type.
func (t Type) String() string {
	switch t {
	case StartTagType:
		return "StartTag"
	case EndTagType:
		return "EndTag"
	case CharsType:
		return "Chars"
	case CommentType:
		return "Comment"
	default:
		return "Unknown"
	}
}

// Token is a single structural event in a markup stream.
// It is implemented by *StartTag, *EndTag, *Chars and *Comment.
// A nil Token marks a token that a transform removed.
type Token interface {
	Type() Type
	token()
}

// Attr is a single attribute name/value pair.
type Attr struct {
	Name  string
	Value string
}

// StartTag is an opening tag with its attributes in source order.
// Attribute names are not guaranteed to be unique.
type StartTag struct {
	// Name is the tag name, e.g. "svg".
	Name string

	// Attributes holds the tag's attributes in source order.
	Attributes []Attr

	// SelfClosing reports whether the tag was written as <name/>.
	SelfClosing bool
}

// EndTag is a closing tag.
type EndTag struct {
	Name string
}

// Chars is character data.
type Chars struct {
	Text string
}

// Comment is a comment, without its <!-- and --> delimiters.
type Comment struct {
	Text string
}

func (*StartTag) Type() Type { return StartTagType }
func (*EndTag) Type() Type   { return EndTagType }
func (*Chars) Type() Type    { return CharsType }
func (*Comment) Type() Type  { return CommentType }

func (*StartTag) token() {}
func (*EndTag) token()   {}
func (*Chars) token()    {}
func (*Comment) token()  {}

// Index returns the index of the first attribute with the given name,
// or -1 if the tag has no such attribute.
func (t *StartTag) Index(name string) int {
	for i, attr := range t.Attributes {
		if attr.Name == name {
			return i
		}
	}
	return -1
}

// Get returns the value of the first attribute with the given name.
func (t *StartTag) Get(name string) (string, bool) {
	i := t.Index(name)
	if i < 0 {
		return "", false
	}
	return t.Attributes[i].Value, true
}

// Set replaces the value of the first attribute with the given name,
// appending a new attribute if none exists.
func (t *StartTag) Set(name, value string) {
	if i := t.Index(name); i >= 0 {
		t.Attributes[i].Value = value
		return
	}
	t.Attributes = append(t.Attributes, Attr{Name: name, Value: value})
}

// Filter keeps only the attributes for which keep returns true.
func (t *StartTag) Filter(keep func(Attr) bool) {
	kept := t.Attributes[:0]
	for _, attr := range t.Attributes {
		if keep(attr) {
			kept = append(kept, attr)
		}
	}
	t.Attributes = kept
}
