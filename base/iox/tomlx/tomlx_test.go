// Copyright (c) 2025, The fbuf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tomlx

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

type testConfig struct {
	PreserveTagsOnLineRemoval bool `toml:"preserve-tags-on-line-removal"`
	Color                     bool `toml:"color"`
}

func TestTOMLRoundTrip(t *testing.T) {
	tpath := filepath.Join("testdata", "test.toml")

	cfg := &testConfig{PreserveTagsOnLineRemoval: true, Color: false}
	assert.NoError(t, Save(cfg, tpath))

	b, err := WriteBytes(cfg)
	assert.NoError(t, err)

	got := &testConfig{}
	assert.NoError(t, Open(got, tpath))
	assert.Equal(t, *cfg, *got)

	got2 := &testConfig{}
	assert.NoError(t, ReadBytes(got2, b))
	assert.Equal(t, *cfg, *got2)
}

func TestOpenFromPaths(t *testing.T) {
	got := &testConfig{}
	assert.NoError(t, OpenFromPaths(got, "test.toml", "nonexistent", "testdata"))
	assert.True(t, got.PreserveTagsOnLineRemoval)

	err := OpenFromPaths(&testConfig{}, "missing.toml", "testdata")
	assert.Error(t, err)
}
