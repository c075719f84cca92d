/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package raw writes inline SVG markup unchanged.
package raw

import (
	"bennypowers.dev/svginline/convert/formatter"
)

// Formatter outputs the markup itself.
type Formatter struct{}

// New creates a new raw SVG formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format returns svg, preceded by the header as an XML comment.
func (f *Formatter) Format(svg string, opts formatter.Options) ([]byte, error) {
	return []byte(formatter.FormatHeader(opts.Header, formatter.XMLComments) + svg + "\n"), nil
}

// Extension returns ".svg".
func (f *Formatter) Extension() string {
	return ".svg"
}
