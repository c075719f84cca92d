/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package tokenizer_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/svginline/token"
	"bennypowers.dev/svginline/tokenizer"
)

func TestTokenize(t *testing.T) {
	tokens, err := tokenizer.Tokenize(`<svg viewBox="0 0 1 1"><linearGradient id="g"></linearGradient><!--note--><text>a &amp; b</text></svg>`)
	require.NoError(t, err)

	want := []token.Token{
		&token.StartTag{Name: "svg", Attributes: []token.Attr{{Name: "viewBox", Value: "0 0 1 1"}}},
		&token.StartTag{Name: "linearGradient", Attributes: []token.Attr{{Name: "id", Value: "g"}}},
		&token.EndTag{Name: "linearGradient"},
		&token.Comment{Text: "note"},
		&token.StartTag{Name: "text"},
		&token.Chars{Text: "a & b"},
		&token.EndTag{Name: "text"},
		&token.EndTag{Name: "svg"},
	}
	assert.Equal(t, want, tokens)
}

func TestTokenize_SelfClosing(t *testing.T) {
	tokens, err := tokenizer.Tokenize(`<svg><path d="M0 0"/></svg>`)
	require.NoError(t, err)
	require.Len(t, tokens, 3)

	path, ok := tokens[1].(*token.StartTag)
	require.True(t, ok)
	assert.True(t, path.SelfClosing)
	assert.Equal(t, "path", path.Name)
}

func TestTokenize_StyleIsSingleRawToken(t *testing.T) {
	tokens, err := tokenizer.Tokenize(`<svg><style>.a > .b { fill: red; } .c{}</style></svg>`)
	require.NoError(t, err)
	require.Len(t, tokens, 5)
	assert.Equal(t, &token.Chars{Text: ".a > .b { fill: red; } .c{}"}, tokens[2])
}

func TestTokenize_Malformed(t *testing.T) {
	inputs := []string{
		`<svg><path d="M0 0`,
		`<svg><rect`,
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := tokenizer.Tokenize(input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tokenizer.ErrMalformed))
		})
	}
}

func TestGenerate(t *testing.T) {
	tokens := []token.Token{
		&token.StartTag{Name: "svg", Attributes: []token.Attr{{Name: "data-x", Value: `a"b&c`}}},
		nil,
		&token.StartTag{Name: "style"},
		&token.Chars{Text: ".a > .b{}"},
		&token.EndTag{Name: "style"},
		&token.StartTag{Name: "text"},
		&token.Chars{Text: "1 < 2 & 3"},
		&token.EndTag{Name: "text"},
		&token.Comment{Text: " c "},
		&token.StartTag{Name: "path", SelfClosing: true},
		&token.EndTag{Name: "svg"},
	}

	got := tokenizer.Generate(tokens)
	want := `<svg data-x="a&quot;b&amp;c"><style>.a > .b{}</style><text>1 &lt; 2 &amp; 3</text><!-- c --><path/></svg>`
	assert.Equal(t, want, got)
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		`<svg viewBox="0 0 24 24" xmlns="http://www.w3.org/2000/svg"><defs><clipPath id="c"><rect width="1" height="1"></rect></clipPath></defs><g clip-path="url(#c)"><path d="M0 0h24v24H0z"></path></g></svg>`,
		`<svg><style>.a{fill:red}</style><text x="1">a &amp; b</text></svg>`,
		`<svg><feGaussianBlur stdDeviation="2"></feGaussianBlur></svg>`,
	}
	for _, input := range inputs {
		tokens, err := tokenizer.Tokenize(input)
		require.NoError(t, err)
		assert.Equal(t, input, tokenizer.Generate(tokens))
	}
}
