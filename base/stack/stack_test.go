// Copyright (c) 2025, The fbuf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPushPopPeek(t *testing.T) {
	var st Stack[int]
	assert.True(t, st.Empty())
	st.Push(1, 2, 3)
	assert.Equal(t, 3, st.Len())
	assert.Equal(t, 3, st.Peek())
	assert.Equal(t, 3, st.Pop())
	assert.Equal(t, 2, st.Pop())
	assert.Equal(t, 1, st.Pop())
	assert.True(t, st.Empty())
}

func TestPopEmptyReturnsZeroValue(t *testing.T) {
	var st Stack[string]
	assert.Equal(t, "", st.Pop())
	assert.Equal(t, "", st.Peek())
}

// PopMatching is exercised the way tag pairing uses it: the most
// recently opened name is the first candidate, but an unrelated name
// opened in between must survive a failed match untouched and in its
// original order.
func TestPopMatchingFindsNearestMatchAndPreservesOthers(t *testing.T) {
	var st Stack[string]
	st.Push("bold", "italic", "bold")
	got, ok := st.PopMatching(func(s string) bool { return s == "bold" })
	assert.True(t, ok)
	assert.Equal(t, "bold", got)
	assert.Equal(t, 2, st.Len())
	assert.Equal(t, "italic", st.Pop())
	assert.Equal(t, "bold", st.Pop())
}

func TestPopMatchingNoMatchLeavesStackUnchanged(t *testing.T) {
	var st Stack[string]
	st.Push("italic", "underline")
	got, ok := st.PopMatching(func(s string) bool { return s == "bold" })
	assert.False(t, ok)
	assert.Equal(t, "", got)
	assert.Equal(t, 2, st.Len())
	assert.Equal(t, "underline", st.Pop())
	assert.Equal(t, "italic", st.Pop())
}

func TestPopMatchingOnEmptyStack(t *testing.T) {
	var st Stack[string]
	_, ok := st.PopMatching(func(s string) bool { return true })
	assert.False(t, ok)
}
