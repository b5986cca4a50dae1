// Copyright (c) 2025, The fbuf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textpos

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPosIsLess(t *testing.T) {
	assert.True(t, Pos{Line: 0, Char: 1}.IsLess(Pos{Line: 1, Char: 0}))
	assert.True(t, Pos{Line: 2, Char: 1}.IsLess(Pos{Line: 2, Char: 5}))
	assert.False(t, Pos{Line: 2, Char: 5}.IsLess(Pos{Line: 2, Char: 5}))
	assert.False(t, Pos{Line: 3, Char: 0}.IsLess(Pos{Line: 2, Char: 9}))
}

func TestRegionContains(t *testing.T) {
	r := NewRegion(0, 2, 1, 0)
	assert.True(t, r.Contains(Pos{Line: 0, Char: 2}))
	assert.True(t, r.Contains(Pos{Line: 0, Char: 9}))
	assert.False(t, r.Contains(Pos{Line: 1, Char: 0}))
	assert.False(t, r.Contains(Pos{Line: 0, Char: 1}))
}

func TestRegionIsNil(t *testing.T) {
	assert.True(t, Region{}.IsNil())
	r := NewRegion(0, 0, 0, 1)
	assert.False(t, r.IsNil())
}

func TestPosString(t *testing.T) {
	assert.Equal(t, "{1,2}", Pos{Line: 1, Char: 2}.String())
}

func TestRegionString(t *testing.T) {
	r := NewRegion(0, 1, 0, 3)
	assert.Equal(t, "{0,1}-{0,3}", r.String())
}
