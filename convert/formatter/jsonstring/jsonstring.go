/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package jsonstring formats inline SVG markup as a JSON document holding
// a single string.
package jsonstring

import (
	"bennypowers.dev/svginline/convert/formatter"
)

// Formatter outputs a JSON string literal.
type Formatter struct{}

// New creates a new JSON string formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format quotes svg as JSON. Headers are ignored since JSON has no comments.
func (f *Formatter) Format(svg string, _ formatter.Options) ([]byte, error) {
	quoted, err := formatter.QuoteJSON(svg)
	if err != nil {
		return nil, err
	}
	return []byte(quoted + "\n"), nil
}

// Extension returns ".json".
func (f *Formatter) Extension() string {
	return ".json"
}
