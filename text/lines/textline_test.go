// Copyright (c) 2025, The fbuf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lines

import (
	"testing"

	"github.com/fbuftext/fbuf/text/textpos"
	"github.com/stretchr/testify/assert"
)

func TestTextLineAppendAndInsert(t *testing.T) {
	tl := NewTextLine("hello")
	tl.AppendCharacter('!')
	assert.Equal(t, "hello!", tl.String())

	assert.True(t, tl.InsertString([]rune(", world"), 5))
	assert.Equal(t, "hello, world!", tl.String())

	assert.False(t, tl.InsertString([]rune("x"), textpos.CharOffset(100)))
}

func TestTextLineLengths(t *testing.T) {
	tl := NewTextLine("abc")
	assert.Equal(t, 3, tl.Length())
	assert.Equal(t, 4, tl.AbsLength())
}

func TestTextLineEraseAndCanErase(t *testing.T) {
	tl := NewTextLine("abcdef")
	assert.True(t, tl.CanErase(2, 3))
	erased, n, ok := tl.Erase(2, 3)
	assert.True(t, ok)
	assert.Equal(t, 3, n)
	assert.Equal(t, "cde", string(erased))
	assert.Equal(t, "abf", tl.String())

	assert.False(t, tl.CanErase(100, 1))
	_, _, ok = tl.Erase(100, 1)
	assert.False(t, ok)

	assert.False(t, tl.CanErase(0, 0))
}

func TestTextLineEraseUntilEnd(t *testing.T) {
	tl := NewTextLine("abcdef")
	erased, n, ok := tl.Erase(2, textpos.UntilTheEnd)
	assert.True(t, ok)
	assert.Equal(t, 4, n)
	assert.Equal(t, "cdef", string(erased))
	assert.Equal(t, "ab", tl.String())
}

func TestTextLineSubstr(t *testing.T) {
	tl := NewTextLine("abcdef")
	assert.Equal(t, "cd", string(tl.Substr(2, 2)))
	assert.Equal(t, "cdef", string(tl.Substr(2, textpos.UntilTheEnd)))
	assert.Nil(t, tl.Substr(100, 1))
}

func TestTextLineValidateRejectsNewline(t *testing.T) {
	tl := NewTextLine("ok")
	assert.NoError(t, tl.Validate())
	tl2 := NewTextLine("a\nb")
	assert.ErrorIs(t, tl2.Validate(), ErrEmbeddedNewline)
}

func TestTextLineClear(t *testing.T) {
	tl := NewTextLine("abc")
	tl.Clear()
	assert.Equal(t, 0, tl.Length())
	assert.Equal(t, "", tl.String())
}
