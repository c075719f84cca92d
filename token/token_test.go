/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"testing"
)

func TestStartTagAttributes(t *testing.T) {
	tag := &StartTag{
		Name: "rect",
		Attributes: []Attr{
			{Name: "id", Value: "a"},
			{Name: "class", Value: "x"},
			{Name: "id", Value: "b"},
		},
	}

	t.Run("index finds first match", func(t *testing.T) {
		if got := tag.Index("id"); got != 0 {
			t.Errorf("expected index 0, got %d", got)
		}
		if got := tag.Index("missing"); got != -1 {
			t.Errorf("expected index -1, got %d", got)
		}
	})

	t.Run("get returns first match", func(t *testing.T) {
		value, ok := tag.Get("id")
		if !ok || value != "a" {
			t.Errorf("expected (a, true), got (%q, %v)", value, ok)
		}
	})

	t.Run("set mutates first match only", func(t *testing.T) {
		tag.Set("id", "c")
		if tag.Attributes[0].Value != "c" {
			t.Errorf("expected first id to be c, got %q", tag.Attributes[0].Value)
		}
		if tag.Attributes[2].Value != "b" {
			t.Errorf("expected duplicate id untouched, got %q", tag.Attributes[2].Value)
		}
	})

	t.Run("set appends missing attribute", func(t *testing.T) {
		tag.Set("fill", "red")
		if got := len(tag.Attributes); got != 4 {
			t.Fatalf("expected 4 attributes, got %d", got)
		}
		if tag.Attributes[3] != (Attr{Name: "fill", Value: "red"}) {
			t.Errorf("unexpected appended attribute %v", tag.Attributes[3])
		}
	})

	t.Run("filter keeps order", func(t *testing.T) {
		tag.Filter(AttrNameNotIn(NewNameSet("id")))
		if got := len(tag.Attributes); got != 2 {
			t.Fatalf("expected 2 attributes, got %d", got)
		}
		if tag.Attributes[0].Name != "class" || tag.Attributes[1].Name != "fill" {
			t.Errorf("unexpected attributes after filter: %v", tag.Attributes)
		}
	})
}

func TestPredicates(t *testing.T) {
	svg := &StartTag{Name: "svg"}
	style := &StartTag{Name: "style"}
	end := &EndTag{Name: "svg"}
	chars := &Chars{Text: "x"}

	if !IsStartTag(svg) || IsStartTag(end) || IsStartTag(chars) || IsStartTag(nil) {
		t.Error("IsStartTag misclassified a token")
	}
	if !IsNamedStartTag(svg, "svg") || IsNamedStartTag(style, "svg") || IsNamedStartTag(end, "svg") {
		t.Error("IsNamedStartTag misclassified a token")
	}
	if !IsEndTag(end) || IsEndTag(svg) {
		t.Error("IsEndTag misclassified a token")
	}
	if !IsNamedEndTag(end, "svg") || IsNamedEndTag(end, "g") {
		t.Error("IsNamedEndTag misclassified a token")
	}

	set := NewNameSet("width", "height")
	in := AttrNameIn(set)
	notIn := AttrNameNotIn(set)
	if !in(Attr{Name: "width"}) || in(Attr{Name: "fill"}) {
		t.Error("AttrNameIn misclassified an attribute")
	}
	if notIn(Attr{Name: "height"}) || !notIn(Attr{Name: "fill"}) {
		t.Error("AttrNameNotIn misclassified an attribute")
	}

	mixed := NewNameSet("onClick", "viewBox")
	if !mixed.Has("onclick") || !mixed.Has("VIEWBOX") || mixed.Has("onload") {
		t.Error("NameSet should ignore case")
	}
}

func TestTypeString(t *testing.T) {
	tests := map[Token]string{
		&StartTag{}: "StartTag",
		&EndTag{}:   "EndTag",
		&Chars{}:    "Chars",
		&Comment{}:  "Comment",
	}
	for tok, want := range tests {
		if got := tok.Type().String(); got != want {
			t.Errorf("expected %s, got %s", want, got)
		}
	}
}
