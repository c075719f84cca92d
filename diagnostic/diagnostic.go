/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package diagnostic provides the advisory side-channel used by the
// extraction pipeline to report problems without failing.
package diagnostic

import (
	"fmt"
	"strings"
	"sync"

	"bennypowers.dev/svginline/internal/logger"
)

// Kind classifies a Diagnostic.
type Kind string

const (
	// TokenizationFailed means the markup could not be tokenized and the
	// sanitized text was used as the result.
	TokenizationFailed Kind = "tokenization-failed"

	// ForbiddenTag means a start tag listed in warningTags was seen.
	ForbiddenTag Kind = "forbidden-tag"

	// ForbiddenAttributes means a start tag carried attributes listed in
	// warningAttributes.
	ForbiddenAttributes Kind = "forbidden-attributes"
)

// Diagnostic is a single advisory message.
type Diagnostic struct {
	// Kind classifies the diagnostic.
	Kind Kind `json:"kind"`

	// Resource is the file the diagnostic refers to, if known.
	Resource string `json:"resource,omitempty"`

	// Tag is the offending tag name, if any.
	Tag string `json:"tag,omitempty"`

	// Attributes are the offending attribute names in source order.
	Attributes []string `json:"attributes,omitempty"`

	// Err is the underlying error for TokenizationFailed.
	Err error `json:"-"`
}

// Message returns the human-readable text of the diagnostic.
func (d Diagnostic) Message() string {
	switch d.Kind {
	case TokenizationFailed:
		if d.Err != nil {
			return fmt.Sprintf("Invalid SVG: tokenization failed: %v", d.Err)
		}
		return "Invalid SVG: tokenization failed"
	case ForbiddenTag:
		return "Forbidden tag: " + d.Tag
	case ForbiddenAttributes:
		return fmt.Sprintf("Tag %s has forbidden attributes: %s", d.Tag, strings.Join(d.Attributes, ", "))
	default:
		return string(d.Kind)
	}
}

// String implements fmt.Stringer.
func (d Diagnostic) String() string {
	if d.Resource != "" {
		return d.Resource + ": " + d.Message()
	}
	return d.Message()
}

// Reporter receives diagnostics. Implementations must be safe for
// concurrent use.
type Reporter interface {
	Report(d Diagnostic)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(d Diagnostic)

// Report calls f(d).
func (f ReporterFunc) Report(d Diagnostic) { f(d) }

// Discard drops every diagnostic.
var Discard Reporter = ReporterFunc(func(Diagnostic) {})

// LogReporter writes diagnostics to the process logger as warnings.
type LogReporter struct{}

// Report implements Reporter.
func (LogReporter) Report(d Diagnostic) {
	logger.Warn("[svg-inline] %s", d)
}

// WithResource returns a Reporter that stamps resource onto every
// diagnostic before passing it to r.
func WithResource(r Reporter, resource string) Reporter {
	return ReporterFunc(func(d Diagnostic) {
		if d.Resource == "" {
			d.Resource = resource
		}
		r.Report(d)
	})
}

// Collector accumulates diagnostics in memory.
type Collector struct {
	mu          sync.Mutex
	diagnostics []Diagnostic
}

// Report implements Reporter.
func (c *Collector) Report(d Diagnostic) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.diagnostics = append(c.diagnostics, d)
}

// Diagnostics returns a copy of the collected diagnostics in report order.
func (c *Collector) Diagnostics() []Diagnostic {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Diagnostic(nil), c.diagnostics...)
}

// Len returns the number of collected diagnostics.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.diagnostics)
}
