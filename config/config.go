/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides project configuration loading for svginline.
//
// A config file holds the transform options at its top level, plus the
// files to process and how to write them:
//
//	classPrefix: "icon-"
//	removedTags: [title, desc]
//	format: esm
//	output: dist/{name}.js
//	files:
//	  - icons/**/*.svg
//	  - path: logos/brand.svg
//	    removeRootSVGAttributes: false
package config

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"bennypowers.dev/svginline/specifier"
	"bennypowers.dev/svginline/transform"
)

// Config represents the svginline project configuration.
type Config struct {
	// Options are the transform options applied to every file.
	Options transform.Options

	// Files specifies the SVG files to process (paths or glob patterns).
	Files []FileSpec

	// Format is the output format name, see convert.ParseFormat.
	Format string

	// Output is the output path, or a template containing {name}.
	Output string

	// Header is a comment written at the top of every output file.
	Header string

	// Jobs bounds the number of files processed in parallel.
	// Zero means one per CPU.
	Jobs int
}

// FileSpec represents an SVG file specification.
// It can be specified as a simple string path or as an object with overrides.
type FileSpec struct {
	// Path is the file path (supports ** globs).
	Path string

	// Options override the global transform options for this file.
	Options transform.Options
}

// UnmarshalYAML decodes a config through a generic map so that values of
// the wrong type are ignored rather than failing the whole file.
func (c *Config) UnmarshalYAML(node *yaml.Node) error {
	var m map[string]any
	if err := node.Decode(&m); err != nil {
		return err
	}
	c.fromMap(m)
	return nil
}

// UnmarshalJSON decodes a config through a generic map so that values of
// the wrong type are ignored rather than failing the whole file.
func (c *Config) UnmarshalJSON(data []byte) error {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	c.fromMap(m)
	return nil
}

// UnmarshalYAML handles both string and object forms for FileSpec.
func (f *FileSpec) UnmarshalYAML(node *yaml.Node) error {
	var v any
	if err := node.Decode(&v); err != nil {
		return err
	}
	*f, _ = fileSpecFrom(v)
	return nil
}

// UnmarshalJSON handles both string and object forms for FileSpec.
func (f *FileSpec) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f, _ = fileSpecFrom(v)
	return nil
}

func (c *Config) fromMap(m map[string]any) {
	c.Options = transform.OptionsFromMap(m)
	c.Format, _ = m["format"].(string)
	c.Output, _ = m["output"].(string)
	c.Header, _ = m["header"].(string)

	switch jobs := m["jobs"].(type) {
	case int:
		c.Jobs = jobs
	case float64:
		c.Jobs = int(jobs)
	}

	c.Files = nil
	files, _ := m["files"].([]any)
	for _, v := range files {
		if spec, ok := fileSpecFrom(v); ok {
			c.Files = append(c.Files, spec)
		}
	}
}

func fileSpecFrom(v any) (FileSpec, bool) {
	switch v := v.(type) {
	case string:
		return FileSpec{Path: v}, v != ""
	case map[string]any:
		path, _ := v["path"].(string)
		return FileSpec{Path: path, Options: transform.OptionsFromMap(v)}, path != ""
	default:
		return FileSpec{}, false
	}
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{}
}

// OptionsForFile returns the transform options for path.
// File-level overrides take precedence over global config. A file
// matches a spec if it equals the spec's path or matches its glob;
// relative spec paths are resolved against rootDir. When several specs
// match, later ones win.
func (c *Config) OptionsForFile(rootDir, path string) transform.Options {
	path = filepath.Clean(path)
	opts := c.Options
	for _, spec := range c.Files {
		if spec.matches(rootDir, path) {
			opts = opts.Merge(spec.Options)
		}
	}
	return opts
}

func (f FileSpec) matches(rootDir, path string) bool {
	// An npm: spec matches the package file in any node_modules.
	if pkg, ok := specifier.Parse(f.Path); ok {
		pattern := "**/node_modules/" + pkg.Package + "/" + pkg.File
		return matchDoublestar(pattern, strings.TrimPrefix(filepath.ToSlash(path), "/"))
	}

	pattern := f.Path
	if !filepath.IsAbs(pattern) {
		pattern = filepath.Join(rootDir, pattern)
	}
	return pattern == path || (containsGlob(pattern) && matchDoublestar(pattern, path))
}

// FilePaths returns the list of file paths from all FileSpecs.
func (c *Config) FilePaths() []string {
	paths := make([]string, 0, len(c.Files))
	for _, spec := range c.Files {
		paths = append(paths, spec.Path)
	}
	return paths
}
