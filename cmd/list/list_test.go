/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package list

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/svginline/internal/mapfs"
	"bennypowers.dev/svginline/testutil"
)

func TestCollect(t *testing.T) {
	inv, err := Collect(string(testutil.LoadFixtureFile(t, "fixtures/svg/icon.svg")))
	require.NoError(t, err)

	assert.Equal(t, []string{"grad", "x"}, inv.IDs)
	assert.Equal(t, []string{"accent", "fill", "stroke"}, inv.Classes)
}

func TestCollect_Empty(t *testing.T) {
	inv, err := Collect(`<svg><path d="M0 0"/></svg>`)
	require.NoError(t, err)
	assert.Empty(t, inv.IDs)
	assert.Empty(t, inv.Classes)
}

func TestCollect_Malformed(t *testing.T) {
	_, err := Collect(`<svg><path d="M0`)
	assert.Error(t, err)
}

func TestOutput(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/a.svg", `<svg><g id="g1" class="x  y"><style>.z{}</style></g></svg>`, 0644)
	mfs.AddFile("/b.svg", `<svg></svg>`, 0644)

	var stderr bytes.Buffer
	inventories := collect(mfs, []string{"/a.svg", "/b.svg", "/missing.svg"}, &stderr)
	require.Len(t, inventories, 2)
	assert.Contains(t, stderr.String(), "Error reading /missing.svg")

	t.Run("table", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, outputTable(&buf, inventories))
		assert.Equal(t, "/a.svg\n  ids      g1\n  classes  x, y, z\n/b.svg\n  ids      -\n  classes  -\n", buf.String())
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, outputJSON(&buf, inventories))
		assert.JSONEq(t, `[
			{"file": "/a.svg", "ids": ["g1"], "classes": ["x", "y", "z"]},
			{"file": "/b.svg", "ids": [], "classes": []}
		]`, buf.String())
	})
}
