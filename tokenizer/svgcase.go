/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package tokenizer

import "strings"

// svgTagNames and svgAttrNames map lowercased SVG names back to their
// camelCase spelling. The lists match the HTML5 foreign content
// adjustment tables.
var (
	svgTagNames  = caseTable(svgCamelTags)
	svgAttrNames = caseTable(svgCamelAttrs)
)

var svgCamelTags = []string{
	"altGlyph", "altGlyphDef", "altGlyphItem",
	"animateColor", "animateMotion", "animateTransform",
	"clipPath",
	"feBlend", "feColorMatrix", "feComponentTransfer", "feComposite",
	"feConvolveMatrix", "feDiffuseLighting", "feDisplacementMap",
	"feDistantLight", "feDropShadow", "feFlood",
	"feFuncA", "feFuncB", "feFuncG", "feFuncR",
	"feGaussianBlur", "feImage", "feMerge", "feMergeNode",
	"feMorphology", "feOffset", "fePointLight", "feSpecularLighting",
	"feSpotLight", "feTile", "feTurbulence",
	"foreignObject", "glyphRef",
	"linearGradient", "radialGradient", "textPath",
}

var svgCamelAttrs = []string{
	"attributeName", "attributeType",
	"baseFrequency", "baseProfile",
	"calcMode", "clipPathUnits",
	"diffuseConstant", "edgeMode", "filterUnits", "glyphRef",
	"gradientTransform", "gradientUnits",
	"kernelMatrix", "kernelUnitLength",
	"keyPoints", "keySplines", "keyTimes",
	"lengthAdjust", "limitingConeAngle",
	"markerHeight", "markerUnits", "markerWidth",
	"maskContentUnits", "maskUnits",
	"numOctaves", "pathLength",
	"patternContentUnits", "patternTransform", "patternUnits",
	"pointsAtX", "pointsAtY", "pointsAtZ",
	"preserveAlpha", "preserveAspectRatio", "primitiveUnits",
	"refX", "refY", "repeatCount", "repeatDur",
	"requiredExtensions", "requiredFeatures",
	"specularConstant", "specularExponent", "spreadMethod",
	"startOffset", "stdDeviation", "stitchTiles", "surfaceScale",
	"systemLanguage", "tableValues", "targetX", "targetY", "textLength",
	"viewBox", "viewTarget",
	"xChannelSelector", "yChannelSelector", "zoomAndPan",
}

func caseTable(names []string) map[string]string {
	table := make(map[string]string, len(names))
	for _, name := range names {
		table[strings.ToLower(name)] = name
	}
	return table
}

func canonicalTagName(name string) string {
	if canonical, ok := svgTagNames[name]; ok {
		return canonical
	}
	return name
}

func canonicalAttrName(name string) string {
	if canonical, ok := svgAttrNames[name]; ok {
		return canonical
	}
	return name
}
