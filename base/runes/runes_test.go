// Copyright (c) 2025, The fbuf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package runes

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
)

// Unlike strings, a []rune has already been decoded: there is no
// invalid-UTF-8 or partial-rune case to worry about, so these tests
// skip the encoding-edge-case coverage that the stdlib's equivalents
// carry and focus on the rune-slice semantics themselves (aliasing,
// copying, multi-rune separators).

func TestEqualFold(t *testing.T) {
	assert.True(t, EqualFold([]rune("Bold"), []rune("bold")))
	assert.True(t, EqualFold([]rune("BOLD"), []rune("bold")))
	assert.False(t, EqualFold([]rune("bold"), []rune("italic")))
	assert.False(t, EqualFold([]rune("bold"), []rune("bol")))
	assert.True(t, EqualFold(nil, nil))
}

func TestIndex(t *testing.T) {
	assert.Equal(t, 1, Index([]rune("hello"), []rune("el")))
	assert.Equal(t, -1, Index([]rune("hello"), []rune("xy")))
	assert.Equal(t, -1, Index([]rune("hello"), nil))
	assert.Equal(t, -1, Index([]rune("ab"), []rune("abc")))
	assert.Equal(t, 1, Index([]rune("☺☻☹"), []rune("☻")))
}

func TestIndexFold(t *testing.T) {
	assert.Equal(t, 1, IndexFold([]rune("hELLo"), []rune("el")))
	assert.Equal(t, -1, IndexFold([]rune("hello"), []rune("xy")))
}

func TestIndexFunc(t *testing.T) {
	assert.Equal(t, 3, IndexFunc([]rune("abc1def"), unicode.IsDigit))
	assert.Equal(t, -1, IndexFunc([]rune("abcdef"), unicode.IsDigit))
	assert.Equal(t, -1, IndexFunc(nil, unicode.IsDigit))
}

func TestLastIndexFunc(t *testing.T) {
	assert.Equal(t, 3, LastIndexFunc([]rune("a1b1c"), unicode.IsDigit))
	assert.Equal(t, -1, LastIndexFunc([]rune("abc"), unicode.IsDigit))
}

func TestCount(t *testing.T) {
	assert.Equal(t, 3, Count([]rune("1,2,3,4"), []rune(",")))
	assert.Equal(t, 0, Count([]rune("abc"), []rune("x")))
	assert.Equal(t, 0, Count([]rune("abc"), nil))
}

func TestReplace(t *testing.T) {
	assert.Equal(t, "heLLo", string(Replace([]rune("hello"), []rune("l"), []rune("L"), -1)))
	assert.Equal(t, "heLlo", string(Replace([]rune("hello"), []rune("l"), []rune("L"), 1)))
	assert.Equal(t, "hello", string(Replace([]rune("hello"), []rune("l"), []rune("L"), 0)))

	in := []rune("hello")
	out := Replace(in, []rune("x"), []rune("y"), -1)
	assert.Equal(t, "hello", string(out))
	out[0] = 'H'
	assert.Equal(t, 'h', in[0], "Replace must always return a fresh slice, even on a no-op")
}

func TestReplaceAll(t *testing.T) {
	assert.Equal(t, "b<>n<>n<>", string(ReplaceAll([]rune("banana"), []rune("a"), []rune("<>"))))
}

func TestRepeat(t *testing.T) {
	assert.Equal(t, "hellohello", string(Repeat([]rune("hello"), 2)))
	assert.Equal(t, []rune{}, Repeat([]rune("hello"), 0))
	assert.Equal(t, []rune{}, Repeat([]rune("hello"), -1))
}

func runeSlicesToStrings(s [][]rune) []string {
	out := make([]string, len(s))
	for i, v := range s {
		out[i] = string(v)
	}
	return out
}

func TestSplit(t *testing.T) {
	assert.Equal(t, []string{"1", "2", "3", "4"}, runeSlicesToStrings(Split([]rune("1,2,3,4"), []rune(","))))
	assert.Equal(t, []string{"abcd"}, runeSlicesToStrings(Split([]rune("abcd"), []rune("z"))))
	assert.Equal(t, []string{"1", "2", "3 4"}, runeSlicesToStrings(SplitN([]rune("1 2 3 4"), []rune(" "), 3)))
}

func TestSplitAfter(t *testing.T) {
	assert.Equal(t, []string{"1,", "2,", "3,", "4"}, runeSlicesToStrings(SplitAfter([]rune("1,2,3,4"), []rune(","))))
}

func TestFields(t *testing.T) {
	assert.Equal(t, []string{"1", "2", "3", "4"}, runeSlicesToStrings(Fields([]rune("1  2\t3\n4"))))
	assert.Equal(t, []string{}, runeSlicesToStrings(Fields([]rune("   "))))
}

func TestFieldsFunc(t *testing.T) {
	pred := func(r rune) bool { return r == 'X' }
	assert.Equal(t, []string{"a", "b", "c"}, runeSlicesToStrings(FieldsFunc([]rune("aXXbXXXcX"), pred)))
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "a, b, c", string(Join([][]rune{[]rune("a"), []rune("b"), []rune("c")}, []rune(", "))))
	assert.Equal(t, []rune{}, Join(nil, []rune(",")))
	assert.Equal(t, "a", string(Join([][]rune{[]rune("a")}, []rune(","))))
}

func TestContains(t *testing.T) {
	assert.True(t, Contains([]rune("hello"), []rune("ell")))
	assert.False(t, Contains([]rune("hello"), []rune("xyz")))
}

// ContainsRune backs the single-line-text invariant TextLine.Validate
// checks: a line's text must not itself contain a newline.
func TestContainsRune(t *testing.T) {
	assert.True(t, ContainsRune([]rune("one\ntwo"), '\n'))
	assert.False(t, ContainsRune([]rune("oneline"), '\n'))
	assert.False(t, ContainsRune(nil, '\n'))
}

func TestContainsFunc(t *testing.T) {
	assert.True(t, ContainsFunc([]rune("abc1"), unicode.IsDigit))
	assert.False(t, ContainsFunc([]rune("abc"), unicode.IsDigit))
}
