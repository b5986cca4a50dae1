// Copyright (c) 2025, The fbuf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lines

import (
	"github.com/fbuftext/fbuf/base/runes"
	"github.com/fbuftext/fbuf/text/textpos"
)

// TextLine is a single line of text held as a mutable rune sequence.
// It never contains an embedded newline; newlines are what separate
// one TextLine from the next inside a FormattedLine sequence.
type TextLine struct {
	runes []rune
}

// NewTextLine returns a TextLine initialized with the runes of s.
func NewTextLine(s string) *TextLine {
	return &TextLine{runes: []rune(s)}
}

// AppendCharacter appends a single rune to the line.
func (t *TextLine) AppendCharacter(r rune) {
	t.runes = append(t.runes, r)
}

// AppendString appends s to the end of the line.
func (t *TextLine) AppendString(s []rune) {
	t.runes = append(t.runes, s...)
}

// InsertString inserts s at charOffset, or at the end of the line if
// charOffset is [textpos.LastChar]. Reports false if charOffset is
// past the end of the line.
func (t *TextLine) InsertString(s []rune, charOffset textpos.CharOffset) bool {
	co := int(charOffset)
	if charOffset == textpos.LastChar {
		co = len(t.runes)
	}
	if co > len(t.runes) || co < 0 {
		return false
	}
	t.runes = append(t.runes[:co], append(append([]rune{}, s...), t.runes[co:]...)...)
	return true
}

// Length returns the number of runes in the line.
func (t *TextLine) Length() int {
	return len(t.runes)
}

// AbsLength returns Length plus one, accounting for the line's
// trailing newline slot in absolute-offset bookkeeping.
func (t *TextLine) AbsLength() int {
	return t.Length() + 1
}

// At returns the rune at offset, without bounds checking.
func (t *TextLine) At(offset textpos.CharOffset) rune {
	return t.runes[offset]
}

// Char returns the rune at offset, and whether offset was in range.
func (t *TextLine) Char(offset textpos.CharOffset) (rune, bool) {
	if offset < 0 || int(offset) >= len(t.runes) {
		return 0, false
	}
	return t.runes[offset], true
}

// Clear empties the line.
func (t *TextLine) Clear() {
	t.runes = t.runes[:0]
}

// Substr returns the length runes starting at offset, or to the end
// of the line if length is [textpos.UntilTheEnd]. Returns nil if
// offset is out of range.
func (t *TextLine) Substr(offset textpos.CharOffset, length int) []rune {
	if offset < 0 || int(offset) > len(t.runes) {
		return nil
	}
	end := len(t.runes)
	if length != textpos.UntilTheEnd {
		end = int(offset) + length
		if end > len(t.runes) {
			end = len(t.runes)
		}
	}
	if end < int(offset) {
		return nil
	}
	return append([]rune{}, t.runes[offset:end]...)
}

// CanErase reports whether a call to Erase with the same arguments
// would remove anything.
func (t *TextLine) CanErase(startOffset textpos.CharOffset, length int) bool {
	return int(startOffset) < len(t.runes) && length != 0
}

// Erase removes up to length runes starting at startOffset (to the
// end of the line if length is [textpos.UntilTheEnd]), returning the
// erased runes, the actual count erased, and whether anything was
// erased at all.
func (t *TextLine) Erase(startOffset textpos.CharOffset, length int) ([]rune, int, bool) {
	if !t.CanErase(startOffset, length) {
		return nil, 0, false
	}
	end := len(t.runes)
	if length != textpos.UntilTheEnd {
		end = int(startOffset) + length
		if end > len(t.runes) {
			end = len(t.runes)
		}
	}
	erased := append([]rune{}, t.runes[startOffset:end]...)
	t.runes = append(t.runes[:startOffset], t.runes[end:]...)
	return erased, len(erased), true
}

// Runes returns the line's underlying rune slice. Callers must not
// mutate the returned slice.
func (t *TextLine) Runes() []rune {
	return t.runes
}

// String returns the line's text as a string.
func (t *TextLine) String() string {
	return string(t.runes)
}

// Validate reports an error if the line contains an embedded newline.
func (t *TextLine) Validate() error {
	if runes.ContainsRune(t.runes, '\n') {
		return ErrEmbeddedNewline
	}
	return nil
}
