/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package transform

import (
	"bennypowers.dev/svginline/diagnostic"
	"bennypowers.dev/svginline/token"
)

// Transform names, as reported by Pipeline.Names.
const (
	NamePrefixClasses            = "prefixClasses"
	NamePrefixIDs                = "prefixIds"
	NameRemoveRootSizeAttributes = "removeRootSVGAttributes"
	NameWarnTags                 = "warningTags"
	NameRemoveTags               = "removedTags"
	NameWarnAttributes           = "warningAttributes"
	NameRemoveAttributes         = "removedAttributes"
)

type stage struct {
	name      string
	transform Transform
}

// Pipeline is an ordered list of transforms built for a single document.
// Stateful transforms make a Pipeline single-use; compose a new one for
// every token stream.
type Pipeline struct {
	stages []stage
}

// Compose builds the pipeline selected by overrides, merged over
// DefaultOptions. Transforms run in a fixed order regardless of how the
// options were written:
//
//  1. prefixClasses, when ClassPrefix is set
//  2. prefixIds, when IDPrefix is set
//  3. removeRootSVGAttributes, when enabled
//  4. warningTags, when the list is non-empty
//  5. removedTags, when the list is non-empty
//  6. warningAttributes, when the list is non-empty
//  7. removedAttributes, when the list is non-empty
//
// Warnings for tags precede their removal so removed tags are still
// reported, while attribute warnings follow tag removal so attributes
// inside removed subtrees are not. A nil reporter discards diagnostics.
// Empty prefixes are treated as unset.
func Compose(overrides *Options, r diagnostic.Reporter) *Pipeline {
	opts := Effective(overrides)
	if r == nil {
		r = diagnostic.Discard
	}

	p := &Pipeline{}
	if opts.ClassPrefix != nil && *opts.ClassPrefix != "" {
		p.add(NamePrefixClasses, PrefixClasses(*opts.ClassPrefix))
	}
	if opts.IDPrefix != nil && *opts.IDPrefix != "" {
		p.add(NamePrefixIDs, PrefixIDs(*opts.IDPrefix))
	}
	if opts.RemoveRootSVGAttributes != nil && *opts.RemoveRootSVGAttributes {
		p.add(NameRemoveRootSizeAttributes, RemoveRootSizeAttributes())
	}
	if len(opts.WarningTags) > 0 {
		p.add(NameWarnTags, WarnTags(opts.WarningTags, r))
	}
	if len(opts.RemovedTags) > 0 {
		p.add(NameRemoveTags, RemoveTags(opts.RemovedTags))
	}
	if len(opts.WarningAttributes) > 0 {
		p.add(NameWarnAttributes, WarnAttributes(opts.WarningAttributes, r))
	}
	if len(opts.RemovedAttributes) > 0 {
		p.add(NameRemoveAttributes, RemoveAttributes(opts.RemovedAttributes))
	}
	return p
}

func (p *Pipeline) add(name string, t Transform) {
	p.stages = append(p.stages, stage{name: name, transform: t})
}

// Names returns the names of the composed transforms, in run order.
func (p *Pipeline) Names() []string {
	names := make([]string, len(p.stages))
	for i, s := range p.stages {
		names[i] = s.name
	}
	return names
}

// Len returns the number of composed transforms.
func (p *Pipeline) Len() int {
	return len(p.stages)
}

// Run applies each transform to the whole stream in turn and returns the
// surviving tokens. Tokens deleted by one transform are not seen by the
// ones after it. Tokens are mutated in place.
func (p *Pipeline) Run(tokens []token.Token) []token.Token {
	for _, s := range p.stages {
		for i, tok := range tokens {
			if tok == nil {
				continue
			}
			tokens[i] = s.transform.Apply(tok)
		}
	}

	kept := tokens[:0]
	for _, tok := range tokens {
		if tok != nil {
			kept = append(kept, tok)
		}
	}
	return kept
}
