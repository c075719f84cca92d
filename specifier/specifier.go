/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package specifier resolves npm package specifiers, so SVG files that
// ship in installed packages can be named as inputs:
//
//	npm:@scope/icons/ui/close.svg
//	npm:feather-icons/dist/icons/*.svg
package specifier

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	svgfs "bennypowers.dev/svginline/fs"
)

// Prefix introduces a package specifier.
const Prefix = "npm:"

// Specifier is a parsed npm package specifier.
type Specifier struct {
	// Package is the package name, e.g. "@scope/pkg" or "pkg".
	Package string

	// File is the path within the package. It may be a glob pattern.
	File string

	// Raw is the original specifier string.
	Raw string
}

// npmPattern matches npm:@scope/pkg/path, npm:pkg/path, or bare npm:pkg
var npmPattern = regexp.MustCompile(`^npm:(@[^/]+/[^/]+|[^/@][^/]*)(/.*)?$`)

// Parse parses spec. It returns false if spec is not an npm specifier.
func Parse(spec string) (*Specifier, bool) {
	matches := npmPattern.FindStringSubmatch(spec)
	if matches == nil {
		return nil, false
	}
	return &Specifier{
		Package: matches[1],
		File:    strings.TrimPrefix(matches[2], "/"),
		Raw:     spec,
	}, true
}

// IsPackageSpecifier reports whether spec names a file in an npm package.
func IsPackageSpecifier(spec string) bool {
	_, ok := Parse(spec)
	return ok
}

// Resolver maps specifiers to filesystem paths.
type Resolver struct {
	fs      svgfs.FileSystem
	rootDir string
}

// NewResolver creates a resolver that looks for node_modules starting at
// rootDir and walking up to the filesystem root.
func NewResolver(fs svgfs.FileSystem, rootDir string) *Resolver {
	return &Resolver{fs: fs, rootDir: rootDir}
}

// Resolve returns the filesystem path for spec. Paths that are not
// package specifiers are returned unchanged. For a specifier whose file
// part is a glob, the result is the same glob rooted in the package
// directory.
func (r *Resolver) Resolve(spec string) (string, error) {
	parsed, ok := Parse(spec)
	if !ok {
		return spec, nil
	}

	dir := r.rootDir
	if !filepath.IsAbs(dir) {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return "", fmt.Errorf("failed to resolve path %s: %w", dir, err)
		}
		dir = abs
	}
	start := dir

	for {
		pkgDir := filepath.Join(dir, "node_modules", filepath.FromSlash(parsed.Package))
		if r.fs.Exists(pkgDir) {
			return filepath.Join(pkgDir, filepath.FromSlash(parsed.File)), nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("package not found: %s (looked in node_modules starting from %s)", parsed.Package, start)
}
