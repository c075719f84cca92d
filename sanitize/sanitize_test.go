/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "strips xml prolog",
			input: `<?xml version="1.0" encoding="UTF-8"?><svg></svg>`,
			want:  `<svg></svg>`,
		},
		{
			name:  "strips prolog case-insensitively",
			input: `<?XML version="1.0"?><svg></svg>`,
			want:  `<svg></svg>`,
		},
		{
			name:  "strips doctype",
			input: `<!DOCTYPE svg PUBLIC "-//W3C//DTD SVG 1.1//EN" "http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd"><svg></svg>`,
			want:  `<svg></svg>`,
		},
		{
			name:  "strips single-line comments without swallowing siblings",
			input: `<svg><!-- a --><rect></rect><!-- b --></svg>`,
			want:  `<svg><rect></rect></svg>`,
		},
		{
			name:  "expands self-closing tags",
			input: `<svg><path d="M0 0"/></svg>`,
			want:  `<svg><path d="M0 0"></path></svg>`,
		},
		{
			name:  "expands self-closing tags with hyphenated names",
			input: `<svg><font-face/></svg>`,
			want:  `<svg><font-face></font-face></svg>`,
		},
		{
			name:  "collapses whitespace runs",
			input: "<svg>\n\t<text>a \n  b</text>\n</svg>",
			want:  `<svg><text>a b</text></svg>`,
		},
		{
			name:  "trims surrounding whitespace and byte order mark",
			input: "\ufeff  <svg></svg>\n",
			want:  `<svg></svg>`,
		},
		{
			name: "keeps multi-line comments",
			input: `<svg><!--
a
--></svg>`,
			want: `<svg><!-- a --></svg>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.input))
		})
	}
}

func TestSanitize_Idempotent(t *testing.T) {
	inputs := []string{
		`<?xml version="1.0"?>
<!DOCTYPE svg>
<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24">
  <!-- icon -->
  <g fill="none">
    <path d="M1 1"/>
    <circle cx="1" cy="1" r="1" />
  </g>
</svg>`,
		`<svg><style>.a { fill: red; }</style><rect class="a"/></svg>`,
		`plain text`,
	}

	for _, input := range inputs {
		once := Sanitize(input)
		assert.Equal(t, once, Sanitize(once), "sanitize should be idempotent for %q", input)
	}
}
