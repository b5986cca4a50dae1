// Copyright (c) 2025, The fbuf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lines implements a formatted text buffer: an editable,
// line-oriented rune store that maintains an unformatted view (every
// character, including inline `{[...]}` markup) alongside a
// formatted view with that markup elided, plus anchor points that
// track a position across edits and tags that pair up opening and
// closing markup components.
package lines

import "github.com/fbuftext/fbuf/text/textpos"

// Config holds the buffer-wide settings that affect how edits are
// interpreted. Both flags default to true.
type Config struct {
	// TagsEnabled controls whether inline `{[...]}` markup is parsed
	// into tag components at all. With it false, the formatted view
	// is always identical to the unformatted one.
	TagsEnabled bool
	// PreserveTagsOnLineRemoval controls whether a removed line's tag
	// markup is migrated onto a neighboring line rather than
	// discarded along with the rest of the line's text.
	PreserveTagsOnLineRemoval bool
}

// Defaults resets c to the buffer's default configuration.
func (c *Config) Defaults() {
	c.TagsEnabled = true
	c.PreserveTagsOnLineRemoval = true
}

// FormattedText is the buffer itself: an ordered sequence of lines,
// the tags parsed out of their markup, and the derived caches
// (concatenated text, offset-to-line lookup tables) that let callers
// query it as one continuous string without walking every line.
type FormattedText struct {
	Config

	lines []*FormattedLine
	tags  []*Tag

	unformattedOffsets []textpos.LineIndex
	formattedOffsets   []textpos.LineIndex
	unformattedCache   []rune
	formattedCache     []rune
	dirty              bool

	watcher Watcher

	removingEmptyTags bool
}

// New returns a FormattedText holding a single empty line, with
// default configuration.
func New() *FormattedText {
	ft := &FormattedText{dirty: true}
	ft.Defaults()
	ft.insertLine(newFormattedLine(ft), textpos.LastLine)
	return ft
}

// SetWatcher installs w to receive structural-change notifications.
// Passing nil removes the current watcher.
func (ft *FormattedText) SetWatcher(w Watcher) {
	ft.watcher = w
}

// LineCount returns the number of lines in the buffer.
func (ft *FormattedText) LineCount() int {
	return len(ft.lines)
}

// CharCount returns the number of runes in the unformatted text.
func (ft *FormattedText) CharCount() int {
	ft.ensureUpToDate()
	return len(ft.unformattedCache)
}

// Line returns the line at idx, or nil if idx is out of range. idx
// may be [textpos.LastLine].
func (ft *FormattedText) Line(idx textpos.LineIndex) *FormattedLine {
	i := ft.resolveLineIndex(idx)
	if i < 0 || i >= len(ft.lines) {
		return nil
	}
	return ft.lines[i]
}

// Lines returns every line in the buffer, in order. Callers must not
// mutate the returned slice.
func (ft *FormattedText) Lines() []*FormattedLine {
	return ft.lines
}

// Tags returns every tag currently parsed out of the buffer, in
// order of their opening component's position. Callers must not
// mutate the returned slice.
func (ft *FormattedText) Tags() []*Tag {
	return ft.tags
}

// TagsNamed returns every valid tag whose name is name.
func (ft *FormattedText) TagsNamed(name string) []*Tag {
	var out []*Tag
	for _, t := range ft.tags {
		if t.IsValid() && t.Name() == name {
			out = append(out, t)
		}
	}
	return out
}

// TagNamed returns the first valid tag whose name is name, in
// document order. Returns ErrUnknownTagName if no such tag exists;
// callers after one of several same-named tags should use TagsNamed
// instead.
func (ft *FormattedText) TagNamed(name string) (*Tag, error) {
	for _, t := range ft.tags {
		if t.IsValid() && t.Name() == name {
			return t, nil
		}
	}
	return nil, ErrUnknownTagName
}

func (ft *FormattedText) resolveLineIndex(idx textpos.LineIndex) int {
	if idx == textpos.LastLine {
		return len(ft.lines) - 1
	}
	return int(idx)
}

// String returns the buffer's unformatted text (every character,
// including tag markup), with lines joined by '\n'.
func (ft *FormattedText) String() string {
	ft.ensureUpToDate()
	return string(ft.unformattedCache)
}

// FormattedString returns the buffer's formatted text (tag markup
// elided), with lines joined by '\n'.
func (ft *FormattedText) FormattedString() string {
	ft.ensureUpToDate()
	return string(ft.formattedCache)
}

func (ft *FormattedText) ensureUpToDate() {
	if !ft.dirty {
		return
	}
	var unf, fmtd []rune
	unformattedOffsets := ft.unformattedOffsets[:0]
	formattedOffsets := ft.formattedOffsets[:0]
	for i, line := range ft.lines {
		u := line.unformatted.Runes()
		unf = append(unf, u...)
		for c := 0; c <= len(u); c++ {
			unformattedOffsets = append(unformattedOffsets, textpos.LineIndex(i))
		}
		if i < len(ft.lines)-1 {
			unf = append(unf, '\n')
		}

		f := line.Format().Runes()
		fmtd = append(fmtd, f...)
		for c := 0; c <= len(f); c++ {
			formattedOffsets = append(formattedOffsets, textpos.LineIndex(i))
		}
		if i < len(ft.lines)-1 {
			fmtd = append(fmtd, '\n')
		}
	}
	ft.unformattedCache = unf
	ft.formattedCache = fmtd
	ft.unformattedOffsets = unformattedOffsets
	ft.formattedOffsets = formattedOffsets
	ft.dirty = false
}

// LineIndexForOffset returns the index of the line containing the
// unformatted-text absolute offset off.
func (ft *FormattedText) LineIndexForOffset(off textpos.TextOffset) (textpos.LineIndex, bool) {
	ft.ensureUpToDate()
	if off < 0 || int(off) >= len(ft.unformattedOffsets) {
		return textpos.InvalidLineIndex, false
	}
	return ft.unformattedOffsets[off], true
}

// LineIndexForFormattedOffset returns the index of the line
// containing the formatted-text absolute offset off.
func (ft *FormattedText) LineIndexForFormattedOffset(off textpos.FormattedOffset) (textpos.LineIndex, bool) {
	ft.ensureUpToDate()
	if off < 0 || int(off) >= len(ft.formattedOffsets) {
		return textpos.InvalidLineIndex, false
	}
	return ft.formattedOffsets[off], true
}

// Substr returns the length runes of unformatted text starting at
// the absolute offset offset, or to the end of the buffer if length
// is [textpos.UntilTheEnd].
func (ft *FormattedText) Substr(offset textpos.TextOffset, length int) []rune {
	ft.ensureUpToDate()
	n := len(ft.unformattedCache)
	start := int(offset)
	if start < 0 || start > n {
		return nil
	}
	end := n
	if length != textpos.UntilTheEnd {
		end = start + length
		if end > n {
			end = n
		}
	}
	if end < start {
		return nil
	}
	return append([]rune{}, ft.unformattedCache[start:end]...)
}

// CharAt returns the rune at the absolute unformatted-text offset
// offset.
func (ft *FormattedText) CharAt(offset textpos.TextOffset) (rune, bool) {
	ft.ensureUpToDate()
	if offset < 0 || int(offset) >= len(ft.unformattedCache) {
		return 0, false
	}
	return ft.unformattedCache[offset], true
}

// TextCharOffset returns the absolute unformatted-text offset of the
// position (line, char).
func (ft *FormattedText) TextCharOffset(line textpos.LineIndex, char textpos.CharOffset) (textpos.TextOffset, bool) {
	idx := ft.resolveLineIndex(line)
	if idx < 0 || idx >= len(ft.lines) {
		return 0, false
	}
	fl := ft.lines[idx]
	c := int(char)
	if char == textpos.LastChar {
		c = fl.unformatted.Length()
	}
	return fl.StartOffset() + textpos.TextOffset(c), true
}

// RelativeOffset converts an absolute unformatted-text offset into a
// line + in-line-char position.
func (ft *FormattedText) RelativeOffset(offset textpos.TextOffset) (textpos.Pos, bool) {
	idx, ok := ft.LineIndexForOffset(offset)
	if !ok {
		return textpos.Pos{}, false
	}
	fl := ft.lines[idx]
	return textpos.Pos{Line: idx, Char: textpos.CharOffset(offset - fl.StartOffset())}, true
}

// CreateAnchor creates an anchor at (line, char).
func (ft *FormattedText) CreateAnchor(line textpos.LineIndex, char textpos.CharOffset, allowOOB bool) *AnchorPoint {
	idx := ft.resolveLineIndex(line)
	if idx < 0 || idx >= len(ft.lines) {
		return nil
	}
	return ft.lines[idx].CreateAnchorPoint(char, allowOOB)
}

// CreateAnchorAtOffset creates an anchor at the absolute
// unformatted-text offset offset.
func (ft *FormattedText) CreateAnchorAtOffset(offset textpos.TextOffset, allowOOB bool) *AnchorPoint {
	idx, ok := ft.LineIndexForOffset(offset)
	if !ok {
		return nil
	}
	fl := ft.lines[idx]
	rel := textpos.CharOffset(offset - fl.StartOffset())
	return fl.CreateAnchorPoint(rel, allowOOB)
}

// Clear empties the buffer down to a single empty line, invalidating
// every anchor and discarding every tag.
func (ft *FormattedText) Clear() {
	for _, fl := range ft.lines {
		for _, a := range fl.AnchorPoints() {
			a.ClearParent()
			a.ClearLine()
		}
		fl.startAnchor.ClearParent()
		fl.startAnchor.ClearLine()
	}
	ft.lines = nil
	ft.tags = nil
	ft.dirty = true
	ft.insertLine(newFormattedLine(ft), textpos.LastLine)
	ft.dispatchTextCleared()
	ft.dispatchTagsCleared()
}

// SetText replaces the entire contents of the buffer with text,
// split into lines on '\n'.
func (ft *FormattedText) SetText(text []rune) {
	ft.Clear()
	proto := splitLines(text)
	ft.lines[0].unformatted.AppendString(proto[0])
	ft.lines[0].formattedDirty = true
	for i := 1; i < len(proto); i++ {
		nl := newFormattedLine(ft)
		nl.unformatted.AppendString(proto[i])
		ft.insertLine(nl, textpos.LastLine)
	}
	ft.dirty = true
	ft.parseTagsFull()
}

// AppendLine appends a new line holding text to the end of the
// buffer.
func (ft *FormattedText) AppendLine(text []rune) *FormattedLine {
	fl := newFormattedLine(ft)
	fl.unformatted.AppendString(text)
	ft.insertLine(fl, textpos.LastLine)
	return fl
}

// insertLine splices line into the buffer at idx (appending if idx is
// [textpos.LastLine] or past the end), wiring its start anchor into
// the line-start chain, renumbering every line at or after the
// insertion point, and reparsing tags over the new line.
func (ft *FormattedText) insertLine(line *FormattedLine, idx textpos.LineIndex) {
	pos := len(ft.lines)
	if idx != textpos.LastLine && int(idx) < len(ft.lines) {
		pos = int(idx)
	}

	var prevStart, nextStart *AnchorPoint
	var startOffset textpos.TextOffset
	if pos > 0 {
		prevLine := ft.lines[pos-1]
		prevStart = prevLine.startAnchor
		startOffset = prevLine.StartOffset() + textpos.TextOffset(prevLine.unformatted.AbsLength())
	}
	if pos < len(ft.lines) {
		nextStart = ft.lines[pos].startAnchor
	}

	line.startAnchor.SetOffset(startOffset)
	if prevStart != nil {
		prevStart.SetNext(line.startAnchor)
		line.startAnchor.SetParent(prevStart)
	}
	if nextStart != nil {
		line.startAnchor.SetNext(nextStart)
		nextStart.SetParent(line.startAnchor)
	}

	ft.lines = append(ft.lines, nil)
	copy(ft.lines[pos+1:], ft.lines[pos:])
	ft.lines[pos] = line
	for i := pos; i < len(ft.lines); i++ {
		ft.lines[i].index = textpos.LineIndex(i)
	}

	ft.dirty = true
	ft.parseTags(textpos.LineIndex(pos), 0, textpos.UntilTheEnd)
	ft.dispatchLineAdded(line)
}

// RemoveLine removes the line at lineIdx, using the buffer's
// PreserveTagsOnLineRemoval setting to decide whether its tag markup
// migrates to a neighboring line. Returns ErrOutOfRange if lineIdx
// doesn't address the buffer.
func (ft *FormattedText) RemoveLine(lineIdx textpos.LineIndex) error {
	if !ft.removeLine(lineIdx, ft.PreserveTagsOnLineRemoval) {
		return ErrOutOfRange
	}
	return nil
}

func (ft *FormattedText) removeLine(lineIdx textpos.LineIndex, preserveTags bool) bool {
	idx := ft.resolveLineIndex(lineIdx)
	if idx < 0 || idx >= len(ft.lines) {
		return false
	}
	line := ft.lines[idx]

	var migrated []rune
	if preserveTags {
		migrated = ft.collectTagText(line)
	}

	var prevStart, nextStart *AnchorPoint
	if idx > 0 {
		prevStart = ft.lines[idx-1].startAnchor
	}
	if idx+1 < len(ft.lines) {
		nextStart = ft.lines[idx+1].startAnchor
	}
	if idx > 0 {
		if nextStart != nil {
			prevStart.SetNext(nextStart)
			nextStart.SetParent(prevStart)
		} else {
			prevStart.ClearNext()
		}
	} else if nextStart != nil {
		nextStart.ClearPrevious()
		nextStart.ClearParent()
	}

	dyingAbsLen := line.unformatted.AbsLength()
	ft.invalidateLine(line)
	if nextStart != nil {
		nextStart.ShiftByOffset(-dyingAbsLen)
	}

	ft.lines = append(ft.lines[:idx], ft.lines[idx+1:]...)
	for i := idx; i < len(ft.lines); i++ {
		ft.lines[i].index = textpos.LineIndex(i)
	}

	ft.dirty = true
	ft.dispatchLineRemoved(line)

	if preserveTags && len(migrated) > 0 {
		migrated = stripLeadingNewline(migrated)
		if len(migrated) > 0 {
			if idx < len(ft.lines) {
				ft.InsertText(migrated, textpos.LineIndex(idx), 0)
				ft.removeEmptyTags(textpos.LineIndex(idx))
			} else if idx > 0 {
				target := ft.lines[idx-1]
				pos := textpos.CharOffset(target.unformatted.Length())
				ft.InsertText(migrated, textpos.LineIndex(idx-1), pos)
				ft.removeEmptyTags(textpos.LineIndex(idx - 1))
			}
		}
	}
	return true
}

func (ft *FormattedText) invalidateLine(line *FormattedLine) {
	for _, a := range line.AnchorPoints() {
		a.ClearParent()
		a.ClearLine()
	}
	line.startAnchor.ClearParent()
	line.startAnchor.ClearLine()
	line.components = nil
}

func (ft *FormattedText) collectTagText(line *FormattedLine) []rune {
	var out []rune
	for _, tc := range line.components {
		out = append(out, tc.TagString(ft)...)
	}
	return out
}

func stripLeadingNewline(s []rune) []rune {
	if len(s) > 0 && s[0] == '\n' {
		return s[1:]
	}
	return s
}

// splitLines splits text on '\n' into the proto-lines InsertText and
// SetText distribute across the buffer. An empty input yields a
// single empty proto-line, matching a buffer always having at least
// one line.
func splitLines(text []rune) [][]rune {
	var out [][]rune
	start := 0
	for i, r := range text {
		if r == '\n' {
			out = append(out, append([]rune{}, text[start:i]...))
			start = i + 1
		}
	}
	out = append(out, append([]rune{}, text[start:]...))
	return out
}
