// Copyright (c) 2025, The fbuf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lines

import (
	"testing"

	"github.com/fbuftext/fbuf/text/textpos"
	"github.com/stretchr/testify/assert"
)

func TestAnchorSetParentSelfPanics(t *testing.T) {
	ft := New()
	a := ft.Line(0).CreateAnchorPoint(0, false)
	assert.Panics(t, func() { a.SetParent(a) })
}

func TestAnchorSetNextSelfPanics(t *testing.T) {
	ft := New()
	a := ft.Line(0).startAnchor
	assert.Panics(t, func() { a.SetNext(a) })
}

func TestAnchorInvariantAcrossInsertBeforeAndAfter(t *testing.T) {
	ft := New()
	ft.SetText([]rune("hello world"))
	before := ft.CreateAnchor(0, 2, false)  // at 'l' of "hello"
	after := ft.CreateAnchor(0, 8, false)   // inside "world"

	ft.InsertText([]rune("XXX"), 0, 5)

	boff, ok := before.Offset()
	assert.True(t, ok)
	assert.EqualValues(t, 2, boff)

	aoff, ok := after.Offset()
	assert.True(t, ok)
	assert.EqualValues(t, 11, aoff) // shifted forward by len("XXX")
}

func TestAnchorAtInsertPointDoesNotMove(t *testing.T) {
	ft := New()
	ft.SetText([]rune("abcdef"))
	at := ft.CreateAnchor(0, 3, false)
	ft.InsertText([]rune("XYZ"), 0, 3)
	off, ok := at.Offset()
	assert.True(t, ok)
	assert.EqualValues(t, 3, off)
}

func TestAnchorInvalidatedWhenErased(t *testing.T) {
	ft := New()
	ft.SetText([]rune("abcdef"))
	a := ft.CreateAnchor(0, 3, false)
	ft.RemoveText(0, 2, 3)
	assert.False(t, a.IsValid())
}

func TestAnchorAllowOOBSurvivesErase(t *testing.T) {
	ft := New()
	ft.SetText([]rune("abcdef"))
	a := ft.CreateAnchor(0, 3, true)
	ft.RemoveText(0, 2, 3)
	assert.True(t, a.IsValid())
}

func TestAnchorInvalidatedOnLineRemoval(t *testing.T) {
	ft := New()
	ft.SetText([]rune("line0\nline1\nline2"))
	a := ft.CreateAnchor(1, 2, false)
	ft.removeLine(1, false)
	assert.False(t, a.IsValid())
}

func TestAnchorCascadeThroughLineRemoval(t *testing.T) {
	ft := New()
	ft.SetText([]rune("aa\nbb\ncc"))
	onLine2 := ft.CreateAnchor(2, 1, false)
	offBefore, _ := onLine2.Offset()
	assert.EqualValues(t, textpos.TextOffset(7), offBefore)

	ft.removeLine(1, false)

	offAfter, ok := onLine2.Offset()
	assert.True(t, ok)
	assert.EqualValues(t, offBefore-3, offAfter)
	idx, ok := onLine2.LineIndex()
	assert.True(t, ok)
	assert.EqualValues(t, 1, idx)
}

func TestAnchorShiftByOffsetPrunesDeadChildren(t *testing.T) {
	ft := New()
	ft.SetText([]rune("abcdef"))
	fl := ft.Line(0)
	child := fl.CreateAnchorPoint(4, false)
	child.alive = false // simulate invalidation that bypassed ClearParent

	fl.startAnchor.ShiftByOffset(5)
	assert.Empty(t, fl.startAnchor.children)
}
