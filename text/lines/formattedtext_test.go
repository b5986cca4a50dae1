// Copyright (c) 2025, The fbuf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lines

import (
	"testing"

	"github.com/fbuftext/fbuf/text/textpos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBufferStartsWithOneEmptyLine(t *testing.T) {
	ft := New()
	assert.Equal(t, 1, ft.LineCount())
	assert.Equal(t, "", ft.String())
}

func TestSetTextSplitsOnNewline(t *testing.T) {
	ft := New()
	ft.SetText([]rune("one\ntwo\nthree"))
	assert.Equal(t, 3, ft.LineCount())
	assert.Equal(t, "one\ntwo\nthree", ft.String())
}

func TestConcatenationLaw(t *testing.T) {
	ft := New()
	ft.SetText([]rune("alpha\nbeta\ngamma"))
	joined := ""
	for i, l := range ft.Lines() {
		if i > 0 {
			joined += "\n"
		}
		joined += l.Unformatted().String()
	}
	assert.Equal(t, ft.String(), joined)
}

func TestInsertTextSingleLine(t *testing.T) {
	ft := New()
	ft.SetText([]rune("hello world"))
	edit, err := ft.InsertText([]rune("cruel "), 0, 6)
	assert.NoError(t, err)
	assert.Equal(t, "hello cruel world", ft.String())
	assert.Equal(t, textpos.Pos{Line: 0, Char: 6}, edit.Region.Start)
	assert.Equal(t, textpos.Pos{Line: 0, Char: 12}, edit.Region.End)
}

func TestInsertTextSplitsAcrossLines(t *testing.T) {
	ft := New()
	ft.SetText([]rune("abcdef"))
	_, err := ft.InsertText([]rune("X\nY\nZ"), 0, 3)
	assert.NoError(t, err)
	assert.Equal(t, "abcX\nY\nZdef", ft.String())
	assert.Equal(t, 3, ft.LineCount())
}

func TestInsertTextOutOfRangeLineReportsSentinel(t *testing.T) {
	ft := New()
	ft.SetText([]rune("abc"))
	_, err := ft.InsertText([]rune("x"), 5, 0)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestRemoveTextWholeLine(t *testing.T) {
	ft := New()
	ft.SetText([]rune("one\ntwo\nthree"))
	assert.NoError(t, ft.RemoveText(1, 0, textpos.UntilTheEnd))
	assert.Equal(t, "one\nthree", ft.String())
	assert.Equal(t, 2, ft.LineCount())
}

func TestRemoveTextMergesFollowingLine(t *testing.T) {
	ft := New()
	ft.SetText([]rune("one\ntwo"))
	assert.NoError(t, ft.RemoveText(0, 3, textpos.UntilTheEnd))
	assert.Equal(t, "onetwo", ft.String())
	assert.Equal(t, 1, ft.LineCount())
}

func TestRemoveTextInPlace(t *testing.T) {
	ft := New()
	ft.SetText([]rune("abcdef"))
	assert.NoError(t, ft.RemoveText(0, 1, 2))
	assert.Equal(t, "adef", ft.String())
}

func TestRemoveTextPastEndOfLineReportsSentinel(t *testing.T) {
	ft := New()
	ft.SetText([]rune("abc"))
	assert.ErrorIs(t, ft.RemoveText(0, 5, 1), ErrEraseBeyondLine)
	assert.Equal(t, "abc", ft.String())
}

func TestRemoveTextAtAcrossLines(t *testing.T) {
	ft := New()
	ft.SetText([]rune("one\ntwo\nthree\nfour"))
	err := ft.RemoveTextAt(1, 13) // from "ne\ntwo\nthree\n" leaving "o" + "four"
	assert.NoError(t, err)
	assert.Equal(t, "ofour", ft.String())
}

func TestMoveTextWithinLine(t *testing.T) {
	ft := New()
	ft.SetText([]rune("abcdefgh"))
	assert.NoError(t, ft.MoveText(0, 0, 3, 0, 6))
	assert.Equal(t, "defabcgh", ft.String())
}

func TestMoveTextAcrossLines(t *testing.T) {
	ft := New()
	ft.SetText([]rune("one\ntwo"))
	assert.NoError(t, ft.MoveText(0, 0, 3, 1, textpos.LastChar))
	assert.Equal(t, "\ntwoone", ft.String())
}

func TestMoveTextRejectsDegenerateTarget(t *testing.T) {
	ft := New()
	ft.SetText([]rune("abcdef"))
	assert.ErrorIs(t, ft.MoveText(0, 1, 3, 0, 2), ErrDegenerateMove)
	assert.Equal(t, "abcdef", ft.String())
}

func TestMoveTextAllowsTargetAtSourceBoundary(t *testing.T) {
	// A target exactly at the source's start or end offset is a
	// no-op relocation once the source text is removed, not an
	// interior overlap, so both boundaries are accepted.
	ft := New()
	ft.SetText([]rune("abcdef"))
	assert.NoError(t, ft.MoveText(0, 1, 3, 0, 1))
	assert.Equal(t, "abcdef", ft.String())

	ft2 := New()
	ft2.SetText([]rune("abcdef"))
	assert.NoError(t, ft2.MoveText(0, 1, 3, 0, 4))
	assert.Equal(t, "abcdef", ft2.String())
}

func TestMoveTextPreservesAnchorWithinMovedRange(t *testing.T) {
	ft := New()
	ft.SetText([]rune("abcdefgh"))
	a := ft.CreateAnchor(0, 1, false) // 'b', inside the moved range [0,3)
	assert.NoError(t, ft.MoveText(0, 0, 3, 0, 6))
	off, ok := a.Offset()
	assert.True(t, ok)
	r := string(ft.Substr(off, 1))
	assert.Equal(t, "b", r)
}

func TestRemoveLineSweepsOutTagFullyContainedOnIt(t *testing.T) {
	// Both the opening and closing component live on the removed
	// line, so preserving the tag markers alone leaves an empty pair,
	// which the post-migration sweep removes.
	ft := New()
	ft.SetText([]rune("{[bold]}one{[/bold]}\ntwo"))
	assert.True(t, ft.PreserveTagsOnLineRemoval)
	assert.NoError(t, ft.RemoveLine(0))
	assert.Equal(t, 1, ft.LineCount())
	assert.Empty(t, ft.TagsNamed("bold"))
	assert.Equal(t, "two", ft.String())
}

func TestRemoveLinePreservesTagThatSpansTheRemovedLine(t *testing.T) {
	// The opening component is on the removed line, the closing
	// component on the line that survives; preserving tags migrates
	// the opening marker so the pair still parses correctly.
	ft := New()
	ft.SetText([]rune("{[bold]}one\ntwo{[/bold]}\nthree"))
	assert.NoError(t, ft.RemoveLine(0))
	assert.Equal(t, 2, ft.LineCount())
	bold := ft.TagsNamed("bold")
	assert.Len(t, bold, 1)
	assert.True(t, bold[0].IsClosed())
	assert.Equal(t, "two", string(bold[0].Contents(ft)))
	assert.Equal(t, "{[bold]}two{[/bold]}\nthree", ft.String())
}

func TestRemoveLineDiscardsTagsWhenConfigured(t *testing.T) {
	ft := New()
	ft.PreserveTagsOnLineRemoval = false
	ft.SetText([]rune("{[bold]}one\ntwo{[/bold]}\nthree"))
	assert.NoError(t, ft.RemoveLine(0))
	assert.Equal(t, 2, ft.LineCount())
	assert.Empty(t, ft.TagsNamed("bold"))
	assert.Equal(t, "two{[/bold]}\nthree", ft.String())
}

func TestTagsDisabledLeavesFormattedEqualToUnformatted(t *testing.T) {
	ft := New()
	ft.TagsEnabled = false
	ft.SetText([]rune("a{[bold]}b{[/bold]}c"))
	assert.Equal(t, ft.String(), ft.FormattedString())
	assert.Empty(t, ft.Tags())
}

func TestClearResetsToOneEmptyLine(t *testing.T) {
	ft := New()
	ft.SetText([]rune("one\ntwo\nthree"))
	ft.Clear()
	assert.Equal(t, 1, ft.LineCount())
	assert.Equal(t, "", ft.String())
	assert.Empty(t, ft.Tags())
}

type countingWatcher struct {
	added, removed, changed, cleared, tagsCleared int
}

func (w *countingWatcher) OnLineAdded(*FormattedLine)   { w.added++ }
func (w *countingWatcher) OnLineRemoved(*FormattedLine) { w.removed++ }
func (w *countingWatcher) OnLineChanged(*FormattedLine) { w.changed++ }
func (w *countingWatcher) OnTextCleared()               { w.cleared++ }
func (w *countingWatcher) OnTagsCleared()                { w.tagsCleared++ }

func TestWatcherDispatch(t *testing.T) {
	ft := New()
	w := &countingWatcher{}
	ft.SetWatcher(w)
	ft.SetText([]rune("a\nb"))
	assert.GreaterOrEqual(t, w.added, 1)

	ft.InsertText([]rune("X"), 0, 1)
	assert.GreaterOrEqual(t, w.changed, 1)

	ft.RemoveLine(1)
	assert.GreaterOrEqual(t, w.removed, 1)

	// SetText clears the buffer before loading it, so it counts as one
	// clear too.
	ft.Clear()
	assert.Equal(t, 2, w.cleared)
	assert.Equal(t, 2, w.tagsCleared)
}

func TestTagNamedReturnsFirstMatchOrSentinel(t *testing.T) {
	ft := New()
	ft.SetText([]rune("{[bold]}one{[/bold]} {[bold]}two{[/bold]}"))
	tag, err := ft.TagNamed("bold")
	assert.NoError(t, err)
	assert.Equal(t, "one", string(tag.Contents(ft)))

	_, err = ft.TagNamed("italic")
	assert.ErrorIs(t, err, ErrUnknownTagName)
}

func TestEditIsolatedToOneComponentLeavesSiblingTagUntouched(t *testing.T) {
	boldOpen := "{[bold]}"
	boldBody := "one"
	boldClose := "{[/bold]}"
	sep := " "
	italicOpen := "{[italic]}"
	italicBody := "two"
	italicClose := "{[/italic]}"
	text := boldOpen + boldBody + boldClose + sep + italicOpen + italicBody + italicClose

	ft := New()
	ft.SetText([]rune(text))

	boldBefore, err := ft.TagNamed("bold")
	require.NoError(t, err)
	italicBefore, err := ft.TagNamed("italic")
	require.NoError(t, err)

	// Insert a character into the opening component's own tag name, an
	// edit only the bold component's span intersects; the italic pair
	// later on the line sits well outside it.
	editAt := textpos.CharOffset(len(boldOpen) - len("]}"))
	_, err = ft.InsertText([]rune("X"), 0, editAt)
	require.NoError(t, err)

	want := boldOpen[:editAt] + "X" + boldOpen[editAt:] + boldBody + boldClose + sep + italicOpen + italicBody + italicClose
	assert.Equal(t, want, ft.String())

	italicAfter, err := ft.TagNamed("italic")
	require.NoError(t, err)
	assert.Same(t, italicBefore, italicAfter)
	assert.Same(t, italicBefore.opening, italicAfter.opening)
	assert.Same(t, italicBefore.closing, italicAfter.closing)

	boldAfter, err := ft.TagNamed("boldX")
	require.NoError(t, err)
	assert.NotSame(t, boldBefore.opening, boldAfter.opening)
}
