// Copyright (c) 2025, The fbuf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lines

import "github.com/fbuftext/fbuf/text/textpos"

// FormattedLine is one line of a FormattedText: an unformatted
// TextLine holding the literal characters (including any tag
// markup), a lazily-recomputed formatted projection with markup
// elided, the line's own tag components, and the line-start anchor
// that every other anchor on the line is ultimately parented to.
type FormattedLine struct {
	owner *FormattedText
	index textpos.LineIndex

	unformatted *TextLine
	formatted   *TextLine
	formattedDirty bool

	startAnchor *AnchorPoint
	components  []*TagComponent
}

func newFormattedLine(owner *FormattedText) *FormattedLine {
	fl := &FormattedLine{
		owner:          owner,
		unformatted:    NewTextLine(""),
		formatted:      NewTextLine(""),
		formattedDirty: true,
	}
	fl.startAnchor = newLineStartAnchor(fl, 0)
	return fl
}

// Index returns the line's current position in its owning buffer.
func (fl *FormattedLine) Index() textpos.LineIndex { return fl.index }

// StartAnchor returns the line's line-start anchor.
func (fl *FormattedLine) StartAnchor() *AnchorPoint { return fl.startAnchor }

// StartOffset returns the absolute offset of the first character of
// the line within the buffer's unformatted text.
func (fl *FormattedLine) StartOffset() textpos.TextOffset {
	off, _ := fl.startAnchor.Offset()
	return off
}

// Length returns the number of runes of unformatted text on the line.
func (fl *FormattedLine) Length() int { return fl.unformatted.Length() }

// AbsLength returns Length plus one, for the line's newline slot.
func (fl *FormattedLine) AbsLength() int { return fl.unformatted.AbsLength() }

// Unformatted returns the line's unformatted text.
func (fl *FormattedLine) Unformatted() *TextLine { return fl.unformatted }

// Components returns the line's tag components, ordered by start
// offset.
func (fl *FormattedLine) Components() []*TagComponent { return fl.components }

// AnchorPoints returns every ordinary anchor attached to the line
// (tag-component endpoints and caller-created anchors alike), but
// never the line's own start anchor or the next line's.
func (fl *FormattedLine) AnchorPoints() []*AnchorPoint {
	var out []*AnchorPoint
	for _, c := range fl.startAnchor.children {
		if !c.isLineStart {
			out = append(out, c)
		}
	}
	return out
}

// AttachAnchorPoint attaches a to the line, parenting it to the
// line's start anchor.
func (fl *FormattedLine) AttachAnchorPoint(a *AnchorPoint) {
	a.line = fl
	a.alive = true
	a.SetParent(fl.startAnchor)
}

// DetachAnchorPoint detaches a from the line, clearing its parent and
// line; the anchor reports itself invalid until it is reattached with
// AttachAnchorPoint.
func (fl *FormattedLine) DetachAnchorPoint(a *AnchorPoint) {
	a.ClearParent()
	a.ClearLine()
}

// CreateAnchorPoint creates and attaches a new anchor at charOffset
// within the line.
func (fl *FormattedLine) CreateAnchorPoint(charOffset textpos.CharOffset, allowOOB bool) *AnchorPoint {
	abs := fl.StartOffset() + textpos.TextOffset(charOffset)
	a := newAnchorPoint(fl, abs, allowOOB)
	a.SetParent(fl.startAnchor)
	return a
}

type detachedAnchor struct {
	anchor    *AnchorPoint
	relOffset int
}

// DetachAnchorPoints detaches and returns every anchor on the line
// whose offset falls within [startOffset, startOffset+length)
// (relative to the line), recording each one's offset relative to
// startOffset so it can be reattached elsewhere later.
func (fl *FormattedLine) DetachAnchorPoints(startOffset textpos.CharOffset, length int) []detachedAnchor {
	absStart := fl.StartOffset() + textpos.TextOffset(startOffset)
	var absEnd textpos.TextOffset
	if length == textpos.UntilTheEnd {
		absEnd = fl.StartOffset() + textpos.TextOffset(fl.unformatted.AbsLength())
	} else {
		absEnd = absStart + textpos.TextOffset(length)
	}
	var out []detachedAnchor
	for _, a := range fl.AnchorPoints() {
		off, ok := a.Offset()
		if !ok {
			continue
		}
		if off >= absStart && off < absEnd {
			out = append(out, detachedAnchor{anchor: a, relOffset: int(off - absStart)})
			fl.DetachAnchorPoint(a)
		}
	}
	return out
}

// AttachAnchorPoints reattaches a set of previously-detached anchors
// to the line, placing each one at targetAbs plus its recorded
// relative offset.
func (fl *FormattedLine) AttachAnchorPoints(detached []detachedAnchor, targetAbs textpos.TextOffset) {
	for _, d := range detached {
		fl.AttachAnchorPoint(d.anchor)
		d.anchor.SetOffset(targetAbs + textpos.TextOffset(d.relOffset))
	}
}

// ShiftAnchors updates every anchor on the line in response to an
// edit at [startOffset, startOffset+rangeLen) (relative to the line,
// clamped to oldLineLen, the line's length before the edit) that
// changed the line's length by shiftAmount: positive for an insert,
// negative for an erase. Anchors within the edited range (from its
// start, inclusive, to its end, exclusive) are
// invalidated unless they allow out-of-bounds positions; anchors
// after the range are shifted by shiftAmount. A zero-length range (an
// insertion point) leaves an anchor exactly at that point untouched,
// since nothing was actually removed there. The line's own start
// anchor is never touched here -- callers shift it themselves -- but
// the next line's start anchor (and everything after it, via its own
// cascade) is shifted by shiftAmount as the final step.
func (fl *FormattedLine) ShiftAnchors(startOffset textpos.CharOffset, rangeLen int, shiftAmount int, oldLineLen int) {
	start := int(startOffset)
	if start > oldLineLen {
		start = oldLineLen
	}
	end := start
	if rangeLen > 0 {
		end = start + rangeLen
		if rangeLen == textpos.UntilTheEnd || end > oldLineLen {
			end = oldLineLen
		}
	}
	absStart := fl.StartOffset() + textpos.TextOffset(start)
	absEnd := fl.StartOffset() + textpos.TextOffset(end)

	for _, a := range fl.AnchorPoints() {
		off, ok := a.Offset()
		if !ok {
			continue
		}
		if rangeLen > 0 {
			if off >= absStart && off < absEnd {
				if !a.allowOOB {
					fl.DetachAnchorPoint(a)
				}
				continue
			}
			if off >= absEnd {
				a.ShiftByOffset(shiftAmount)
			}
			continue
		}
		if off > absStart {
			a.ShiftByOffset(shiftAmount)
		}
	}
	if next := fl.startAnchor.Next(); next != nil {
		next.ShiftByOffset(shiftAmount)
	}
}

func (fl *FormattedLine) shiftAnchorsForInsert(charOffset textpos.CharOffset, length int, oldLineLen int) {
	fl.ShiftAnchors(charOffset, 0, length, oldLineLen)
}

// AppendCharacter appends a single rune to the line's unformatted
// text.
func (fl *FormattedLine) AppendCharacter(r rune) {
	fl.unformatted.AppendCharacter(r)
	fl.formattedDirty = true
}

// AppendString appends s to the end of the line's unformatted text.
func (fl *FormattedLine) AppendString(s []rune) {
	fl.InsertString(s, textpos.CharOffset(fl.unformatted.Length()))
}

// InsertString inserts s at charOffset within the line's unformatted
// text, shifting every anchor after the insertion point (and every
// later line, via the next-line cascade) forward by len(s). Reports
// false if charOffset is past the end of the line.
func (fl *FormattedLine) InsertString(s []rune, charOffset textpos.CharOffset) bool {
	oldLen := fl.unformatted.Length()
	co := int(charOffset)
	if charOffset == textpos.LastChar {
		co = oldLen
	}
	if co > oldLen {
		return false
	}
	if !fl.unformatted.InsertString(s, textpos.CharOffset(co)) {
		return false
	}
	if len(s) > 0 {
		fl.shiftAnchorsForInsert(textpos.CharOffset(co), len(s), oldLen)
	}
	fl.formattedDirty = true
	return true
}

// Erase removes up to length runes starting at startOffset from the
// line's unformatted text, invalidating or shifting anchors via
// ShiftAnchors. Returns the erased runes, the count erased, and
// whether anything was erased.
func (fl *FormattedLine) Erase(startOffset textpos.CharOffset, length int) ([]rune, int, bool) {
	oldLen := fl.unformatted.Length()
	erased, n, ok := fl.unformatted.Erase(startOffset, length)
	if !ok {
		return nil, 0, false
	}
	fl.ShiftAnchors(startOffset, n, -n, oldLen)
	fl.formattedDirty = true
	return erased, n, true
}

// Format returns the line's formatted projection, recomputing it if
// the unformatted text or the tag components have changed since the
// last call. The projection is the unformatted text with every live
// tag component's span elided.
func (fl *FormattedLine) Format() *TextLine {
	if !fl.formattedDirty {
		return fl.formatted
	}
	fl.formatted.Clear()
	n := fl.unformatted.Length()
	for i := 0; i < n; {
		if tc := fl.componentAt(i); tc != nil {
			eo, _ := tc.EndOffset()
			i = int(eo-fl.StartOffset()) + 1
			continue
		}
		fl.formatted.AppendCharacter(fl.unformatted.At(textpos.CharOffset(i)))
		i++
	}
	fl.formattedDirty = false
	return fl.formatted
}

func (fl *FormattedLine) componentAt(relOffset int) *TagComponent {
	abs := fl.StartOffset() + textpos.TextOffset(relOffset)
	for _, tc := range fl.components {
		if !tc.IsValid() {
			continue
		}
		so, _ := tc.StartOffset()
		eo, _ := tc.EndOffset()
		if abs >= so && abs <= eo {
			return tc
		}
	}
	return nil
}

// addComponent inserts tc into the line's component list, keeping it
// ordered by start offset.
func (fl *FormattedLine) addComponent(tc *TagComponent) {
	so, _ := tc.StartOffset()
	i := 0
	for ; i < len(fl.components); i++ {
		o, _ := fl.components[i].StartOffset()
		if o > so {
			break
		}
	}
	fl.components = append(fl.components, nil)
	copy(fl.components[i+1:], fl.components[i:])
	fl.components[i] = tc
	fl.formattedDirty = true
}

// removeComponent removes tc from the line's component list, if
// present.
func (fl *FormattedLine) removeComponent(tc *TagComponent) {
	for i, c := range fl.components {
		if c == tc {
			fl.components = append(fl.components[:i], fl.components[i+1:]...)
			fl.formattedDirty = true
			return
		}
	}
}
