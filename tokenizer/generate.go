/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package tokenizer

import (
	"strings"

	"bennypowers.dev/svginline/token"
)

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
)

// rawTextElements hold character data that is written without escaping.
var rawTextElements = token.NewNameSet(
	"style", "script", "xmp", "iframe", "noembed", "noframes", "noscript", "plaintext",
)

// Generate serializes tokens back into markup. Nil tokens are skipped.
func Generate(tokens []token.Token) string {
	var sb strings.Builder
	rawTag := ""

	for _, tok := range tokens {
		switch t := tok.(type) {
		case *token.StartTag:
			sb.WriteByte('<')
			sb.WriteString(t.Name)
			for _, attr := range t.Attributes {
				sb.WriteByte(' ')
				sb.WriteString(attr.Name)
				sb.WriteString(`="`)
				sb.WriteString(attrEscaper.Replace(attr.Value))
				sb.WriteByte('"')
			}
			if t.SelfClosing {
				sb.WriteString("/>")
				continue
			}
			sb.WriteByte('>')
			if rawTextElements.Has(strings.ToLower(t.Name)) {
				rawTag = t.Name
			}
		case *token.EndTag:
			if t.Name == rawTag {
				rawTag = ""
			}
			sb.WriteString("</")
			sb.WriteString(t.Name)
			sb.WriteByte('>')
		case *token.Chars:
			if rawTag != "" {
				sb.WriteString(t.Text)
			} else {
				sb.WriteString(textEscaper.Replace(t.Text))
			}
		case *token.Comment:
			sb.WriteString("<!--")
			sb.WriteString(t.Text)
			sb.WriteString("-->")
		}
	}

	return sb.String()
}
