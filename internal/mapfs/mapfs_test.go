/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package mapfs

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapFileSystem(t *testing.T) {
	m := New()
	m.AddFile("/icons/ui/close.svg", "<svg></svg>", 0644)

	assert.True(t, m.Exists("/icons"), "parent directories are implied")
	assert.True(t, m.Exists("icons/ui/close.svg"), "leading slash is optional")
	assert.True(t, m.Exists("/"))
	assert.False(t, m.Exists("/icons/open.svg"))

	require.NoError(t, m.MkdirAll("/dist/js", 0o755))
	require.NoError(t, m.WriteFile("/dist/js/close.js", []byte("x"), 0o644))
	assert.Equal(t, []string{"/dist/js/close.js", "/icons/ui/close.svg"}, m.Paths())

	info, err := m.Stat("/dist")
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	content, ok := m.Content("/dist/js/close.js")
	assert.True(t, ok)
	assert.Equal(t, "x", content)
	_, ok = m.Content("/dist")
	assert.False(t, ok)

	var walked []string
	require.NoError(t, fs.WalkDir(m, "/icons", func(p string, d fs.DirEntry, err error) error {
		if err == nil && !d.IsDir() {
			walked = append(walked, p)
		}
		return err
	}))
	assert.Equal(t, []string{"/icons/ui/close.svg"}, walked)
}

func TestMapFileSystem_FileInTheWay(t *testing.T) {
	m := New()
	m.AddFile("/out", "not a dir", 0644)

	assert.Error(t, m.MkdirAll("/out/js", 0o755))
	assert.Error(t, m.WriteFile("/out/a.js", nil, 0o644))
}
