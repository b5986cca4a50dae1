// Copyright (c) 2025, The fbuf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lines

import "github.com/fbuftext/fbuf/text/textpos"

// InsertText inserts text at (lineIdx, charOffset), splitting it into
// proto-lines on '\n'. A single-proto-line insert simply grows the
// target line in place. A multi-line insert detaches the suffix of
// the target line (everything from charOffset onward, together with
// its anchors), inserts the first proto-line in its place, splices in
// a new line for every remaining proto-line, and reattaches the
// detached suffix -- anchors included, at their original relative
// offsets -- onto the end of the last new line. Returns
// ErrOutOfRange, wrapped with errors.Is, if lineIdx or charOffset
// don't address the buffer.
func (ft *FormattedText) InsertText(text []rune, lineIdx textpos.LineIndex, charOffset textpos.CharOffset) (*textpos.Edit, error) {
	idx := ft.resolveLineIndex(lineIdx)
	if idx < 0 || idx >= len(ft.lines) {
		return nil, ErrOutOfRange
	}
	fl := ft.lines[idx]
	co := int(charOffset)
	if charOffset == textpos.LastChar {
		co = fl.unformatted.Length()
	}
	if co > fl.unformatted.Length() || co < 0 {
		return nil, ErrOutOfRange
	}

	proto := splitLines(text)
	startPos := textpos.Pos{Line: textpos.LineIndex(idx), Char: textpos.CharOffset(co)}

	if len(proto) == 1 {
		if !fl.InsertString(proto[0], textpos.CharOffset(co)) {
			return nil, ErrOutOfRange
		}
		ft.dirty = true
		ft.parseTags(textpos.LineIndex(idx), textpos.CharOffset(co), len(proto[0]))
		ft.dispatchLineChanged(fl)
		endPos := textpos.Pos{Line: textpos.LineIndex(idx), Char: textpos.CharOffset(co + len(proto[0]))}
		return &textpos.Edit{Region: textpos.Region{Start: startPos, End: endPos}, Text: proto}, nil
	}

	originalNext := fl.startAnchor.Next()
	fl.startAnchor.ClearNext()

	var suffix []rune
	var suffixAnchors []detachedAnchor
	if co < fl.unformatted.Length() {
		suffix = fl.unformatted.Substr(textpos.CharOffset(co), textpos.UntilTheEnd)
		suffixAnchors = fl.DetachAnchorPoints(textpos.CharOffset(co), textpos.UntilTheEnd)
		fl.unformatted.Erase(textpos.CharOffset(co), textpos.UntilTheEnd)
		fl.formattedDirty = true
	}

	fl.InsertString(proto[0], textpos.CharOffset(co))
	ft.dirty = true
	ft.parseTags(textpos.LineIndex(idx), textpos.CharOffset(co), len(proto[0]))
	ft.dispatchLineChanged(fl)

	lastIdx := idx
	for i := 1; i < len(proto); i++ {
		nl := newFormattedLine(ft)
		nl.unformatted.AppendString(proto[i])
		ft.insertLine(nl, textpos.LineIndex(lastIdx+1))
		lastIdx++
	}
	lastLine := ft.lines[lastIdx]

	insertedLen := lastLine.unformatted.Length()
	lastLine.unformatted.AppendString(suffix)
	lastLine.formattedDirty = true
	lastLine.AttachAnchorPoints(suffixAnchors, lastLine.StartOffset()+textpos.TextOffset(insertedLen))

	if originalNext != nil {
		originalNext.ShiftByOffset(len(text))
	}

	ft.dirty = true
	ft.parseTags(textpos.LineIndex(lastIdx), 0, textpos.UntilTheEnd)
	ft.dispatchLineChanged(lastLine)

	endPos := textpos.Pos{Line: textpos.LineIndex(lastIdx), Char: textpos.CharOffset(insertedLen + len(suffix))}
	return &textpos.Edit{Region: textpos.Region{Start: startPos, End: endPos}, Text: proto}, nil
}

// RemoveText removes length runes starting at (lineIdx, charOffset),
// relative to that one line (length may be [textpos.UntilTheEnd]).
// Removing from offset 0 through (at least) the line's own newline
// removes the line outright; removing through the newline from a
// nonzero offset erases the line's tail and merges the following
// line into it; otherwise the range is erased in place. Returns
// ErrOutOfRange if lineIdx doesn't address the buffer, or
// ErrEraseBeyondLine if charOffset itself is past the end of the
// line (there is nothing there to erase, as opposed to a length that
// merely runs past the end, which is the ordinary merge-with-next-line
// case).
func (ft *FormattedText) RemoveText(lineIdx textpos.LineIndex, charOffset textpos.CharOffset, length int) error {
	idx := ft.resolveLineIndex(lineIdx)
	if idx < 0 || idx >= len(ft.lines) {
		return ErrOutOfRange
	}
	fl := ft.lines[idx]
	lineLen := fl.unformatted.Length()
	co := int(charOffset)
	if co < 0 || co > lineLen {
		return ErrEraseBeyondLine
	}
	var end int
	if length == textpos.UntilTheEnd {
		end = lineLen + 1
	} else {
		end = co + length
	}

	if co == 0 && end > lineLen {
		if !ft.removeLine(textpos.LineIndex(idx), ft.PreserveTagsOnLineRemoval) {
			return ErrOutOfRange
		}
		return nil
	}

	if end > lineLen {
		if co < lineLen {
			if _, _, ok := fl.Erase(textpos.CharOffset(co), textpos.UntilTheEnd); !ok {
				return ErrEraseBeyondLine
			}
			ft.dirty = true
		}
		if idx+1 >= len(ft.lines) {
			ft.dispatchLineChanged(fl)
			return nil
		}
		return ft.mergeNextLineInto(textpos.LineIndex(idx))
	}

	if _, _, ok := fl.Erase(textpos.CharOffset(co), end-co); !ok {
		return ErrEraseBeyondLine
	}
	ft.dirty = true
	ft.parseTags(textpos.LineIndex(idx), textpos.CharOffset(co), 1)
	ft.dispatchLineChanged(fl)
	return nil
}

func (ft *FormattedText) mergeNextLineInto(lineIdx textpos.LineIndex) error {
	idx := int(lineIdx)
	targetLen := ft.lines[idx].unformatted.Length()
	if err := ft.MoveText(textpos.LineIndex(idx+1), 0, textpos.UntilTheEnd, textpos.LineIndex(idx), textpos.CharOffset(targetLen)); err != nil {
		return err
	}
	if !ft.removeLine(textpos.LineIndex(idx+1), false) {
		return ErrOutOfRange
	}
	return nil
}

// RemoveTextAt removes length runes starting at the absolute
// unformatted-text offset offset (length may be
// [textpos.UntilTheEnd]), converting to line-relative coordinates,
// removing every whole line the range spans, and delegating the
// partial lines at each end to RemoveText. Returns ErrOutOfRange if
// offset doesn't address the buffer.
func (ft *FormattedText) RemoveTextAt(offset textpos.TextOffset, length int) error {
	startIdx, ok := ft.LineIndexForOffset(offset)
	if !ok {
		return ErrOutOfRange
	}
	startLine := ft.lines[startIdx]
	startChar := int(offset - startLine.StartOffset())

	var endOffset textpos.TextOffset
	if length == textpos.UntilTheEnd {
		ft.ensureUpToDate()
		endOffset = textpos.TextOffset(len(ft.unformattedCache))
	} else {
		endOffset = offset + textpos.TextOffset(length)
	}

	var endIdx int
	var endChar int
	if idx, ok := ft.LineIndexForOffset(endOffset); ok {
		endIdx = int(idx)
		endChar = int(endOffset - ft.lines[idx].StartOffset())
	} else {
		endIdx = len(ft.lines) - 1
		endChar = ft.lines[endIdx].unformatted.Length() + 1
	}

	if endIdx == int(startIdx) {
		return ft.RemoveText(startIdx, textpos.CharOffset(startChar), endChar-startChar)
	}

	if endChar > 0 {
		if err := ft.RemoveText(textpos.LineIndex(endIdx), 0, endChar); err != nil {
			return err
		}
	}
	for i := 0; i < endIdx-int(startIdx)-1; i++ {
		if !ft.removeLine(startIdx+1, ft.PreserveTagsOnLineRemoval) {
			return ErrOutOfRange
		}
	}
	return ft.RemoveText(startIdx, textpos.CharOffset(startChar), textpos.UntilTheEnd)
}

// MoveText atomically relocates a run of text (and the anchors within
// it) from [srcLine, srcOffset, length) to (dstLine, dstOffset). The
// move is rejected with ErrDegenerateMove, buffer unchanged, if the
// target falls strictly inside the source range. ErrOutOfRange is
// returned if srcLine/srcOffset or dstLine/dstOffset don't address
// the buffer. A temporary, out-of-bounds-tolerant anchor tracks the
// target position through the source-side removal, so the
// destination is still correct even when the source and destination
// lines are the same or the removal shifts everything after it.
func (ft *FormattedText) MoveText(srcLine textpos.LineIndex, srcOffset textpos.CharOffset, length int, dstLine textpos.LineIndex, dstOffset textpos.CharOffset) error {
	if length == 0 {
		return nil
	}
	srcIdx := ft.resolveLineIndex(srcLine)
	if srcIdx < 0 || srcIdx >= len(ft.lines) {
		return ErrOutOfRange
	}
	src := ft.lines[srcIdx]
	srcStart := int(srcOffset)
	srcLen := length
	if length == textpos.UntilTheEnd {
		srcLen = src.unformatted.Length() - srcStart
	}
	if srcLen <= 0 {
		return ErrOutOfRange
	}
	srcAbsStart := src.StartOffset() + textpos.TextOffset(srcStart)
	srcAbsEnd := srcAbsStart + textpos.TextOffset(srcLen)

	dstIdx := ft.resolveLineIndex(dstLine)
	if dstIdx < 0 || dstIdx >= len(ft.lines) {
		return ErrOutOfRange
	}
	dstLineObj := ft.lines[dstIdx]
	dstCo := int(dstOffset)
	if dstOffset == textpos.LastChar {
		dstCo = dstLineObj.unformatted.Length()
	}
	dstAbs := dstLineObj.StartOffset() + textpos.TextOffset(dstCo)

	if dstAbs > srcAbsStart && dstAbs < srcAbsEnd {
		return ErrDegenerateMove
	}

	detached := src.DetachAnchorPoints(textpos.CharOffset(srcStart), srcLen)
	snapshot := append([]rune{}, src.unformatted.Substr(textpos.CharOffset(srcStart), srcLen)...)

	targetAnchor := ft.CreateAnchorAtOffset(dstAbs, true)
	if targetAnchor == nil {
		return ErrOutOfRange
	}

	if err := ft.RemoveText(textpos.LineIndex(srcIdx), textpos.CharOffset(srcStart), srcLen); err != nil {
		return err
	}

	newTargetAbs, ok := targetAnchor.Offset()
	targetAnchor.ClearParent()
	targetAnchor.ClearLine()
	if !ok {
		return ErrOutOfRange
	}
	newTargetIdx, ok := ft.LineIndexForOffset(newTargetAbs)
	if !ok {
		return ErrOutOfRange
	}
	newTargetLine := ft.lines[newTargetIdx]
	newTargetChar := textpos.CharOffset(newTargetAbs - newTargetLine.StartOffset())

	if _, err := ft.InsertText(snapshot, newTargetIdx, newTargetChar); err != nil {
		return err
	}

	finalIdx, ok := ft.LineIndexForOffset(newTargetAbs)
	if !ok {
		return ErrOutOfRange
	}
	ft.lines[finalIdx].AttachAnchorPoints(detached, newTargetAbs)
	return nil
}
