/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package loader adapts extraction to bundler-style module loading:
// resource-aware prefixes, module wrapping and result caching.
package loader

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"bennypowers.dev/svginline/convert"
	"bennypowers.dev/svginline/diagnostic"
	"bennypowers.dev/svginline/internal/logger"
	"bennypowers.dev/svginline/transform"
)

// DefaultCacheSize is the number of loaded modules kept when Options.CacheSize is zero.
const DefaultCacheSize = 512

// Options configures a Loader.
type Options struct {
	// Format is the module format (default convert.FormatCJS).
	Format convert.Format

	// Header is emitted as a comment at the top of every module.
	Header string

	// CacheSize bounds the number of cached results. Negative disables caching.
	CacheSize int

	// Reporter receives diagnostics. Nil logs them.
	Reporter diagnostic.Reporter
}

// Loader converts SVG resources into modules. It is safe for concurrent use.
type Loader struct {
	opts  Options
	cache *lru.Cache[string, []byte]
}

// New creates a Loader.
func New(opts Options) (*Loader, error) {
	if opts.Format == "" {
		opts.Format = convert.FormatCJS
	}
	if _, err := opts.Format.Formatter(); err != nil {
		return nil, err
	}

	l := &Loader{opts: opts}
	if opts.CacheSize >= 0 {
		size := opts.CacheSize
		if size == 0 {
			size = DefaultCacheSize
		}
		cache, err := lru.New[string, []byte](size)
		if err != nil {
			return nil, fmt.Errorf("creating loader cache: %w", err)
		}
		l.cache = cache
	}
	return l, nil
}

// Format returns the module format the loader produces.
func (l *Loader) Format() convert.Format {
	return l.opts.Format
}

// Load extracts content and wraps it as a module. Identical requests are
// served from the cache; diagnostics are only reported the first time.
func (l *Loader) Load(resourcePath string, content []byte, opts transform.Options) ([]byte, error) {
	var key string
	if l.cache != nil {
		key = l.cacheKey(resourcePath, content, opts)
		if out, ok := l.cache.Get(key); ok {
			logger.Debug("cache hit for %s", resourcePath)
			return bytes.Clone(out), nil
		}
	}

	out, err := convert.Convert(string(content), convert.Options{
		Format:       l.opts.Format,
		Header:       l.opts.Header,
		Transform:    &opts,
		ResourcePath: resourcePath,
		Reporter:     l.opts.Reporter,
	})
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", resourcePath, err)
	}

	if l.cache != nil {
		l.cache.Add(key, bytes.Clone(out))
	}
	return out, nil
}

// Len returns the number of cached results.
func (l *Loader) Len() int {
	if l.cache == nil {
		return 0
	}
	return l.cache.Len()
}

// Purge empties the cache.
func (l *Loader) Purge() {
	if l.cache != nil {
		l.cache.Purge()
	}
}

// cacheKey digests everything that can change the output. The resource
// path matters because prefixes may use [name]-style placeholders.
func (l *Loader) cacheKey(resourcePath string, content []byte, opts transform.Options) string {
	h := sha256.New()
	// Options only holds strings, bools and string slices, so this cannot fail.
	optsJSON, _ := json.Marshal(opts)
	for _, part := range [][]byte{
		[]byte(l.opts.Format),
		[]byte(l.opts.Header),
		optsJSON,
		[]byte(resourcePath),
		content,
	} {
		fmt.Fprintf(h, "%d:", len(part))
		h.Write(part)
	}
	return hex.EncodeToString(h.Sum(nil))
}
