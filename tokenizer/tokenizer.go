/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package tokenizer converts SVG markup to and from a flat token stream.
//
// Tokenization follows HTML5 tokenizer rules (golang.org/x/net/html), which
// lowercase tag and attribute names; known SVG camelCase names such as
// linearGradient and viewBox are restored to their canonical spelling.
package tokenizer

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"bennypowers.dev/svginline/token"
)

// ErrMalformed is returned when markup cannot be tokenized.
var ErrMalformed = errors.New("malformed markup")

// Tokenize splits markup into tokens.
// It returns an error wrapping ErrMalformed when the input ends inside an
// unterminated tag, since the bytes of such a tag cannot be represented by
// any token.
func Tokenize(markup string) ([]token.Token, error) {
	z := html.NewTokenizer(strings.NewReader(markup))
	z.AllowCDATA(true)

	var tokens []token.Token
	consumed := 0

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if err := z.Err(); err != io.EOF {
				return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
			}
			break
		}
		consumed += len(z.Raw())

		switch tt {
		case html.StartTagToken, html.SelfClosingTagToken:
			tokens = append(tokens, readStartTag(z, tt == html.SelfClosingTagToken))
		case html.EndTagToken:
			name, _ := z.TagName()
			tokens = append(tokens, &token.EndTag{Name: canonicalTagName(string(name))})
		case html.TextToken:
			tokens = append(tokens, &token.Chars{Text: string(z.Text())})
		case html.CommentToken:
			tokens = append(tokens, &token.Comment{Text: string(z.Text())})
		case html.DoctypeToken:
			// dropped; doctypes are stripped during sanitization
		}
	}

	if consumed < len(markup) {
		return nil, fmt.Errorf("%w: unterminated tag at offset %d", ErrMalformed, consumed)
	}

	return tokens, nil
}

func readStartTag(z *html.Tokenizer, selfClosing bool) *token.StartTag {
	name, hasAttr := z.TagName()
	tag := &token.StartTag{
		Name:        canonicalTagName(string(name)),
		SelfClosing: selfClosing,
	}
	for hasAttr {
		var key, val []byte
		key, val, hasAttr = z.TagAttr()
		tag.Attributes = append(tag.Attributes, token.Attr{
			Name:  canonicalAttrName(string(key)),
			Value: string(val),
		})
	}
	return tag
}
