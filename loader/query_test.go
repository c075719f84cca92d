/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package loader_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/svginline/loader"
)

func TestParseQuery_Arguments(t *testing.T) {
	opts, err := loader.ParseQuery("?classPrefix=icon-&removedTags=title,desc&warningTags[]=script&warningTags[]=foreignObject&-removeRootSVGAttributes")
	require.NoError(t, err)

	assert.Equal(t, "icon-", *opts.ClassPrefix)
	assert.Nil(t, opts.IDPrefix)
	assert.Equal(t, []string{"title", "desc"}, opts.RemovedTags)
	assert.Equal(t, []string{"script", "foreignObject"}, opts.WarningTags)
	assert.False(t, *opts.RemoveRootSVGAttributes)
}

func TestParseQuery_Values(t *testing.T) {
	tests := []struct {
		query string
		check func(t *testing.T, q string)
	}{
		{"?+removeRootSVGAttributes", func(t *testing.T, q string) {
			opts, err := loader.ParseQuery(q)
			require.NoError(t, err)
			assert.True(t, *opts.RemoveRootSVGAttributes)
		}},
		{"?removeRootSVGAttributes=false", func(t *testing.T, q string) {
			opts, err := loader.ParseQuery(q)
			require.NoError(t, err)
			assert.False(t, *opts.RemoveRootSVGAttributes)
		}},
		{"?idPrefix=", func(t *testing.T, q string) {
			opts, err := loader.ParseQuery(q)
			require.NoError(t, err)
			assert.Equal(t, "", *opts.IDPrefix)
		}},
		{"?idPrefix=null", func(t *testing.T, q string) {
			opts, err := loader.ParseQuery(q)
			require.NoError(t, err)
			assert.Nil(t, opts.IDPrefix)
		}},
		{"?classPrefix=a%2Bb%20", func(t *testing.T, q string) {
			opts, err := loader.ParseQuery(q)
			require.NoError(t, err)
			assert.Equal(t, "a+b ", *opts.ClassPrefix)
		}},
		{"?classPrefix", func(t *testing.T, q string) {
			opts, err := loader.ParseQuery(q)
			require.NoError(t, err)
			assert.Nil(t, opts.ClassPrefix, "a boolean is not a valid prefix")
		}},
		{"", func(t *testing.T, q string) {
			opts, err := loader.ParseQuery(q)
			require.NoError(t, err)
			assert.True(t, opts.IsZero())
		}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			tt.check(t, tt.query)
		})
	}
}

func TestParseQuery_JSON(t *testing.T) {
	opts, err := loader.ParseQuery(`?{
		// comments are allowed
		"idPrefix": "i-",
		"removedAttributes": ["style", "onclick",],
	}`)
	require.NoError(t, err)
	assert.Equal(t, "i-", *opts.IDPrefix)
	assert.Equal(t, []string{"style", "onclick"}, opts.RemovedAttributes)
}

func TestParseQuery_Errors(t *testing.T) {
	_, err := loader.ParseQuery(`?{"idPrefix": `)
	assert.Error(t, err)

	_, err = loader.ParseQuery(`?classPrefix=%zz`)
	assert.Error(t, err)
}
