/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package mapfs provides an in-memory filesystem for tests.
package mapfs

import (
	"errors"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"
	"testing/fstest"
	"time"

	svgfs "bennypowers.dev/svginline/fs"
)

var _ svgfs.FileSystem = (*MapFileSystem)(nil)

// modTime is stamped on every entry so directory listings are stable.
var modTime = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

var errNotDir = errors.New("not a directory")

// MapFileSystem implements svgfs.FileSystem over a fstest.MapFS.
// Paths are slash-separated; leading slashes are ignored, so "/a/b.svg"
// and "a/b.svg" name the same file. It is safe for concurrent use.
type MapFileSystem struct {
	mu    sync.RWMutex
	files fstest.MapFS
}

// New creates an empty filesystem.
func New() *MapFileSystem {
	return &MapFileSystem{files: make(fstest.MapFS)}
}

// key maps a path to its MapFS key. The root is ".".
func key(p string) string {
	k := strings.TrimPrefix(path.Clean("/"+p), "/")
	if k == "" {
		return "."
	}
	return k
}

// AddFile adds or replaces a file.
func (m *MapFileSystem) AddFile(p string, content string, mode fs.FileMode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[key(p)] = &fstest.MapFile{Data: []byte(content), Mode: mode, ModTime: modTime}
}

// WriteFile implements svgfs.FileSystem. It fails if the parent path is a file.
func (m *MapFileSystem) WriteFile(name string, data []byte, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	k := key(name)
	if parent, ok := m.files[path.Dir(k)]; ok && !parent.Mode.IsDir() {
		return &fs.PathError{Op: "open", Path: name, Err: errNotDir}
	}
	m.files[k] = &fstest.MapFile{Data: append([]byte(nil), data...), Mode: perm, ModTime: modTime}
	return nil
}

// MkdirAll implements svgfs.FileSystem by recording p and its parents as
// directories. It fails if any of them is a file.
func (m *MapFileSystem) MkdirAll(p string, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var missing []string
	for dir := key(p); dir != "."; dir = path.Dir(dir) {
		existing, ok := m.files[dir]
		if !ok {
			missing = append(missing, dir)
		} else if !existing.Mode.IsDir() {
			return &fs.PathError{Op: "mkdir", Path: p, Err: errNotDir}
		}
	}
	for _, dir := range missing {
		m.files[dir] = &fstest.MapFile{Mode: fs.ModeDir | perm.Perm(), ModTime: modTime}
	}
	return nil
}

// ReadFile implements svgfs.FileSystem.
func (m *MapFileSystem) ReadFile(name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return fs.ReadFile(m.files, key(name))
}

// Stat implements svgfs.FileSystem.
func (m *MapFileSystem) Stat(name string) (fs.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return fs.Stat(m.files, key(name))
}

// Exists implements svgfs.FileSystem. Directories implied by file paths exist.
func (m *MapFileSystem) Exists(p string) bool {
	_, err := m.Stat(p)
	return err == nil
}

// ReadDir implements svgfs.FileSystem.
func (m *MapFileSystem) ReadDir(name string) ([]fs.DirEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return fs.ReadDir(m.files, key(name))
}

// Open implements fs.FS.
func (m *MapFileSystem) Open(name string) (fs.File, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.files.Open(key(name))
}

// Paths returns the sorted paths of all regular files, with a leading slash.
func (m *MapFileSystem) Paths() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	paths := make([]string, 0, len(m.files))
	for p, f := range m.files {
		if !f.Mode.IsDir() {
			paths = append(paths, "/"+p)
		}
	}
	sort.Strings(paths)
	return paths
}

// Content returns the content of the file at p, if it exists.
func (m *MapFileSystem) Content(p string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	f, ok := m.files[key(p)]
	if !ok || f.Mode.IsDir() {
		return "", false
	}
	return string(f.Data), true
}
