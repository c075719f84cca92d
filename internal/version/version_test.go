/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name   string
		linked string
		tag    string
		commit string
		dirty  bool
		module string
		want   string
	}{
		{"linked wins", "v1.2.3", "v0.1.0", "abcdef0123", false, "v9.9.9", "v1.2.3"},
		{"module version", "dev", "unknown", "unknown", false, "v0.4.0", "v0.4.0"},
		{"nothing known", "dev", "unknown", "unknown", false, "", "dev"},
		{"tag and commit", "dev", "v0.1.0", "abcdef0123", false, "", "v0.1.0-abcdef0"},
		{"describe output", "dev", "v0.1.0-3-gabcdef0", "abcdef0123", false, "", "v0.1.0-3-gabcdef0"},
		{"dirty", "dev", "v0.1.0", "abc", true, "", "v0.1.0-abc-dirty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolve(tt.linked, tt.tag, tt.commit, tt.dirty, tt.module))
		})
	}
}

func TestInfo(t *testing.T) {
	info := Info()
	assert.Equal(t, Get(), info.Version)
	assert.Equal(t, GitCommit, info.GitCommit)
}
