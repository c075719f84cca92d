/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package interpolate expands webpack-style name placeholders such as
// [hash:base64:7] and [name] into concrete strings.
//
// It is used to turn prefix patterns into stable, content-derived class
// and id prefixes.
package interpolate

import (
	"path"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// DefaultPrefixPattern is substituted for prefixes configured as "".
const DefaultPrefixPattern = "__[hash:base64:7]__"

// Context supplies the values placeholders are derived from.
type Context struct {
	// Content is hashed by [hash] and [contenthash] placeholders.
	Content []byte

	// ResourcePath is the path of the file being processed, if any.
	ResourcePath string
}

// hashPattern matches [hash], [contenthash] and their
// [<hashType>:hash:<digest>:<length>] variants.
var hashPattern = regexp.MustCompile(`(?i)\[(?:([^:\]]+):)?(?:hash|contenthash)(?::([a-z]+\d*))?(?::(\d+))?\]`)

var pathPattern = regexp.MustCompile(`(?i)\[(?:ext|name|path|folder)\]`)

// Name expands the placeholders in pattern.
// Supported placeholders are [ext], [name], [path], [folder], [hash] and
// [contenthash]. Hash placeholders accept an optional hash type (md4 by
// default), digest (hex by default) and maximum length.
func Name(pattern string, ctx Context) string {
	ext, base, dir, folder := "bin", "file", "", ""
	if ctx.ResourcePath != "" {
		resource := filepath.ToSlash(ctx.ResourcePath)
		if e := path.Ext(resource); e != "" {
			ext = strings.TrimPrefix(e, ".")
		}
		base = strings.TrimSuffix(path.Base(resource), path.Ext(resource))
		if d := path.Dir(resource); d != "." {
			dir = strings.TrimSuffix(d, "/") + "/"
			folder = path.Base(d)
		}
	}

	result := pattern
	if len(ctx.Content) > 0 {
		result = hashPattern.ReplaceAllStringFunc(result, func(match string) string {
			groups := hashPattern.FindStringSubmatch(match)
			maxLength := 0
			if groups[3] != "" {
				maxLength, _ = strconv.Atoi(groups[3])
			}
			digest, err := Digest(ctx.Content, groups[1], groups[2], maxLength)
			if err != nil {
				return match
			}
			return digest
		})
	}

	return pathPattern.ReplaceAllStringFunc(result, func(match string) string {
		switch strings.ToLower(match) {
		case "[ext]":
			return ext
		case "[name]":
			return base
		case "[path]":
			return dir
		default:
			return folder
		}
	})
}
