/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package transform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bennypowers.dev/svginline/transform"
)

func TestDefaultOptions(t *testing.T) {
	d := transform.DefaultOptions()
	assert.Nil(t, d.ClassPrefix)
	assert.Nil(t, d.IDPrefix)
	assert.True(t, *d.RemoveRootSVGAttributes)
	assert.Empty(t, d.RemovedTags)
	assert.NotNil(t, d.RemovedTags)
	assert.False(t, d.IsZero())
}

func TestEffective(t *testing.T) {
	assert.Equal(t, transform.DefaultOptions(), transform.Effective(nil))
	assert.Equal(t, transform.DefaultOptions(), transform.Effective(&transform.Options{}))

	got := transform.Effective(&transform.Options{
		IDPrefix:    transform.String("i-"),
		RemovedTags: []string{"title"},
	})
	assert.Equal(t, "i-", *got.IDPrefix)
	assert.Equal(t, []string{"title"}, got.RemovedTags)
	assert.Nil(t, got.ClassPrefix)
	assert.True(t, *got.RemoveRootSVGAttributes)
	assert.Equal(t, []string{}, got.WarningTags)
}

func TestMerge(t *testing.T) {
	base := transform.Options{
		ClassPrefix: transform.String("a-"),
		WarningTags: []string{"script"},
	}
	got := base.Merge(transform.Options{
		ClassPrefix: transform.String("b-"),
		RemovedTags: []string{},
	})

	assert.Equal(t, "b-", *got.ClassPrefix)
	assert.Equal(t, []string{"script"}, got.WarningTags)
	assert.Equal(t, []string{}, got.RemovedTags)
	assert.Equal(t, "a-", *base.ClassPrefix)
}

func TestOptionsFromMap(t *testing.T) {
	got := transform.OptionsFromMap(map[string]any{
		"classPrefix":             "c-",
		"idPrefix":                42,
		"removeRootSVGAttributes": false,
		"removedTags":             []any{"title", 1, "desc"},
		"removedAttributes":       "style, onclick",
		"warningTags":             []string{"script"},
		"warningAttributes":       true,
		"unknown":                 "ignored",
	})

	assert.Equal(t, "c-", *got.ClassPrefix)
	assert.Nil(t, got.IDPrefix)
	assert.False(t, *got.RemoveRootSVGAttributes)
	assert.Equal(t, []string{"title", "desc"}, got.RemovedTags)
	assert.Equal(t, []string{"style", "onclick"}, got.RemovedAttributes)
	assert.Equal(t, []string{"script"}, got.WarningTags)
	assert.Nil(t, got.WarningAttributes)
}

func TestOptionsFromMap_Empty(t *testing.T) {
	assert.True(t, transform.OptionsFromMap(nil).IsZero())
	assert.True(t, transform.OptionsFromMap(map[string]any{}).IsZero())
}
