/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package transform

import (
	"strings"
)

// Options configures which transforms a Pipeline runs.
//
// Nil fields are unset and fall back to DefaultOptions when merged.
// A non-nil empty slice explicitly clears a list.
type Options struct {
	// ClassPrefix is prepended to every CSS class name, both in class
	// attributes and in <style> selectors.
	ClassPrefix *string `json:"classPrefix,omitempty"`

	// IDPrefix is prepended to id attributes and to the #fragment and
	// url(#id) references that point at them.
	IDPrefix *string `json:"idPrefix,omitempty"`

	// RemovedTags lists tags whose entire subtree is deleted.
	RemovedTags []string `json:"removedTags,omitempty"`

	// RemovedAttributes lists attributes deleted from every start tag.
	RemovedAttributes []string `json:"removedAttributes,omitempty"`

	// RemoveRootSVGAttributes strips width and height from the root <svg>.
	RemoveRootSVGAttributes *bool `json:"removeRootSVGAttributes,omitempty"`

	// WarningTags lists tags that produce a diagnostic when seen.
	WarningTags []string `json:"warningTags,omitempty"`

	// WarningAttributes lists attributes that produce a diagnostic when seen.
	WarningAttributes []string `json:"warningAttributes,omitempty"`
}

// String returns a pointer to s, for use in Options literals.
func String(s string) *string { return &s }

// Bool returns a pointer to b, for use in Options literals.
func Bool(b bool) *bool { return &b }

// DefaultOptions returns the documented defaults: no prefixes, root
// sizing attributes removed, and no removed or warned tags/attributes.
func DefaultOptions() Options {
	return Options{
		ClassPrefix:             nil,
		IDPrefix:                nil,
		RemovedTags:             []string{},
		RemovedAttributes:       []string{},
		RemoveRootSVGAttributes: Bool(true),
		WarningTags:             []string{},
		WarningAttributes:       []string{},
	}
}

// IsZero reports whether no option is set.
func (o Options) IsZero() bool {
	return o.ClassPrefix == nil &&
		o.IDPrefix == nil &&
		o.RemovedTags == nil &&
		o.RemovedAttributes == nil &&
		o.RemoveRootSVGAttributes == nil &&
		o.WarningTags == nil &&
		o.WarningAttributes == nil
}

// Merge returns a copy of o with every set field of overrides applied.
func (o Options) Merge(overrides Options) Options {
	if overrides.ClassPrefix != nil {
		o.ClassPrefix = overrides.ClassPrefix
	}
	if overrides.IDPrefix != nil {
		o.IDPrefix = overrides.IDPrefix
	}
	if overrides.RemovedTags != nil {
		o.RemovedTags = overrides.RemovedTags
	}
	if overrides.RemovedAttributes != nil {
		o.RemovedAttributes = overrides.RemovedAttributes
	}
	if overrides.RemoveRootSVGAttributes != nil {
		o.RemoveRootSVGAttributes = overrides.RemoveRootSVGAttributes
	}
	if overrides.WarningTags != nil {
		o.WarningTags = overrides.WarningTags
	}
	if overrides.WarningAttributes != nil {
		o.WarningAttributes = overrides.WarningAttributes
	}
	return o
}

// Effective returns overrides merged over DefaultOptions, or the defaults
// verbatim when overrides is nil or sets nothing.
func Effective(overrides *Options) Options {
	if overrides == nil || overrides.IsZero() {
		return DefaultOptions()
	}
	return DefaultOptions().Merge(*overrides)
}

// OptionsFromMap decodes loosely typed options, as found in config files
// or loader queries. Values of an unexpected type are ignored and leave
// the corresponding option unset. Lists may be given as arrays of
// strings or as a comma-separated string.
func OptionsFromMap(m map[string]any) Options {
	var o Options
	if s, ok := m["classPrefix"].(string); ok {
		o.ClassPrefix = String(s)
	}
	if s, ok := m["idPrefix"].(string); ok {
		o.IDPrefix = String(s)
	}
	if b, ok := m["removeRootSVGAttributes"].(bool); ok {
		o.RemoveRootSVGAttributes = Bool(b)
	}
	o.RemovedTags = stringList(m["removedTags"])
	o.RemovedAttributes = stringList(m["removedAttributes"])
	o.WarningTags = stringList(m["warningTags"])
	o.WarningAttributes = stringList(m["warningAttributes"])
	return o
}

func stringList(v any) []string {
	switch list := v.(type) {
	case []string:
		return list
	case []any:
		result := make([]string, 0, len(list))
		for _, item := range list {
			if s, ok := item.(string); ok {
				result = append(result, s)
			}
		}
		return result
	case string:
		result := []string{}
		for _, part := range strings.Split(list, ",") {
			if part = strings.TrimSpace(part); part != "" {
				result = append(result, part)
			}
		}
		return result
	default:
		return nil
	}
}
