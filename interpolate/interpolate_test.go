/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package interpolate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigest(t *testing.T) {
	content := []byte("abc")

	tests := []struct {
		name      string
		hashType  string
		digest    string
		maxLength int
		want      string
	}{
		{"md4 hex by default", "", "", 0, "a448017aaf21d8525fc10ae87aa6729d"},
		{"md5 hex", "md5", "hex", 0, "900150983cd24fb0d6963f7d28e17f72"},
		{"sha256 truncated", "sha256", "hex", 8, "ba7816bf"},
		{"md4 base64", "md4", "base64", 7, "2tsGpWW"},
		{"md5 base64", "md5", "base64", 7, "1Ov-4Ev"},
		{"md5 base36", "md5", "base36", 8, "6s14nqv7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Digest(content, tt.hashType, tt.digest, tt.maxLength)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDigest_Unsupported(t *testing.T) {
	_, err := Digest([]byte("abc"), "whirlpool", "", 0)
	assert.Error(t, err)

	_, err = Digest([]byte("abc"), "md5", "base99", 0)
	assert.Error(t, err)

	_, err = Digest([]byte("abc"), "md5", "latin1", 0)
	assert.Error(t, err)
}

func TestEncodeToBase(t *testing.T) {
	table := baseEncodeTables[36]
	assert.Equal(t, "1", encodeToBase([]byte{1, 0}, table))
	assert.Equal(t, "74", encodeToBase([]byte{0, 1}, table))
	assert.Equal(t, "", encodeToBase([]byte{0, 0}, table))
}

func TestName(t *testing.T) {
	content := []byte("abc")

	t.Run("default prefix pattern", func(t *testing.T) {
		got := Name(DefaultPrefixPattern, Context{Content: content})
		assert.Equal(t, "__2tsGpWW__", got)
	})

	t.Run("contenthash with type", func(t *testing.T) {
		got := Name("icon-[md5:contenthash:hex:6]-", Context{Content: content})
		assert.Equal(t, "icon-900150-", got)
	})

	t.Run("hash placeholders need content", func(t *testing.T) {
		got := Name("[hash:6]", Context{})
		assert.Equal(t, "[hash:6]", got)
	})

	t.Run("path placeholders without resource", func(t *testing.T) {
		got := Name("[name].[ext]", Context{Content: content})
		assert.Equal(t, "file.bin", got)
	})

	t.Run("path placeholders from resource", func(t *testing.T) {
		got := Name("[folder]-[NAME]-[ext]|[path]", Context{ResourcePath: "assets/icons/close.svg"})
		assert.Equal(t, "icons-close-svg|assets/icons/", got)
	})

	t.Run("unsupported hash is left in place", func(t *testing.T) {
		got := Name("[whirlpool:hash]", Context{Content: content})
		assert.Equal(t, "[whirlpool:hash]", got)
	})
}
