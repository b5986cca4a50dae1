// Copyright (c) 2025, The fbuf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package textpos defines the coordinate types used throughout the
// formatted text buffer: line+char positions and regions, plus the
// three flavors of absolute offset (unformatted text, formatted text,
// and within-line), together with the sentinel values that stand in
// for "the last line", "the last character of a line", and "run to
// the end".
package textpos

import "fmt"

// TextOffset is an absolute rune offset into the buffer's unformatted
// (every character, including markup tokens) joined text.
type TextOffset int

// FormattedOffset is an absolute rune offset into the buffer's
// formatted (markup elided) joined text.
type FormattedOffset int

// CharOffset is a rune offset relative to the start of a single line.
type CharOffset int

// LineIndex identifies a line by its position in the buffer.
type LineIndex int

const (
	// LastLine stands in for "the last line of the buffer" wherever
	// a LineIndex is accepted.
	LastLine LineIndex = -1
	// InvalidLineIndex marks a line index that does not (or no longer)
	// identify a line.
	InvalidLineIndex LineIndex = -2
	// LastChar stands in for "the end of the line" (the offset just
	// past its last character) wherever a CharOffset is accepted.
	LastChar CharOffset = -1
	// UntilTheEnd stands in for "run to the end" wherever a length is
	// accepted (a line's end, the buffer's end, depending on context).
	UntilTheEnd = -1
)

// Pos is a line + in-line rune offset position within the buffer.
type Pos struct {
	Line LineIndex
	Char CharOffset
}

// IsLess reports whether p sorts before o (by line, then char).
func (p Pos) IsLess(o Pos) bool {
	if p.Line != o.Line {
		return p.Line < o.Line
	}
	return p.Char < o.Char
}

// String implements [fmt.Stringer].
func (p Pos) String() string {
	return fmt.Sprintf("{%d,%d}", p.Line, p.Char)
}

// Region is a half-open range between two positions, Start inclusive
// and End exclusive.
type Region struct {
	Start Pos
	End   Pos
}

// NewRegion returns a Region spanning the given start and end
// line/char coordinates.
func NewRegion(startLine, startChar, endLine, endChar int) Region {
	return Region{
		Start: Pos{Line: LineIndex(startLine), Char: CharOffset(startChar)},
		End:   Pos{Line: LineIndex(endLine), Char: CharOffset(endChar)},
	}
}

// IsNil reports whether the region is the zero-value, degenerate region.
func (r Region) IsNil() bool {
	return r.Start == r.End
}

// Contains reports whether pos falls within [r.Start, r.End).
func (r Region) Contains(pos Pos) bool {
	return !pos.IsLess(r.Start) && pos.IsLess(r.End)
}

// String implements [fmt.Stringer].
func (r Region) String() string {
	return r.Start.String() + "-" + r.End.String()
}

// Edit records the effect of a single InsertText call on a buffer:
// the newly-occupied region and the rune-per-line text that was
// inserted.
type Edit struct {
	Region Region
	Text   [][]rune
}
