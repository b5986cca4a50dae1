// Copyright (c) 2025, The fbuf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lines

import (
	"errors"

	baseerrors "github.com/fbuftext/fbuf/base/errors"
	"github.com/fbuftext/fbuf/text/textpos"
)

var errAnchorSelfParent = errors.New("lines: anchor cannot be its own parent")
var errAnchorSelfNeighbour = errors.New("lines: anchor cannot be its own neighbour")

// AnchorPoint is a position within a FormattedText that tracks an
// absolute rune offset across edits elsewhere in the buffer. Ordinary
// anchors (tag-component endpoints, caller-created bookmarks) are
// parented to the start anchor of the line they live on; a
// line-start anchor is instead parented to the previous line's start
// anchor. That single mechanism is what lets one ShiftByOffset
// implement both per-line anchor shifting and the forward cascade
// through every later line when an earlier edit changes the buffer's
// length.
//
// An AnchorPoint never owns the line it points into; the line owns
// its anchors. Once a line is torn down its anchors are explicitly
// invalidated (alive = false, line = nil) rather than left dangling.
type AnchorPoint struct {
	isLineStart bool

	line  *FormattedLine
	alive bool

	// offset is always an absolute rune offset into the buffer's
	// unformatted text. It is never resolved lazily through parent;
	// ShiftByOffset instead pushes a delta down through every live
	// child so each one's stored value stays absolute.
	offset   textpos.TextOffset
	allowOOB bool

	parent   *AnchorPoint
	children []*AnchorPoint

	// prev/next are only meaningful for line-start anchors, and give
	// O(1) neighbor traversal without walking the children slice.
	prev *AnchorPoint
	next *AnchorPoint
}

func newAnchorPoint(line *FormattedLine, offset textpos.TextOffset, allowOOB bool) *AnchorPoint {
	return &AnchorPoint{line: line, alive: true, offset: offset, allowOOB: allowOOB}
}

func newLineStartAnchor(line *FormattedLine, offset textpos.TextOffset) *AnchorPoint {
	return &AnchorPoint{isLineStart: true, line: line, alive: true, offset: offset}
}

// IsValid reports whether the anchor still points at a live line.
func (a *AnchorPoint) IsValid() bool {
	return a != nil && a.alive && a.line != nil
}

// IsLineStartAnchor reports whether a is the start anchor of a line,
// as opposed to an ordinary anchor (a tag-component endpoint or a
// caller-held bookmark).
func (a *AnchorPoint) IsLineStartAnchor() bool {
	return a.isLineStart
}

// AllowsOutOfBounds reports whether a survives an edit that deletes
// the text it points at, rather than being invalidated.
func (a *AnchorPoint) AllowsOutOfBounds() bool {
	return a.allowOOB
}

// Line returns the line a currently points into, or nil if invalid.
func (a *AnchorPoint) Line() *FormattedLine {
	if !a.IsValid() {
		return nil
	}
	return a.line
}

// LineIndex returns the index of the line a points into.
func (a *AnchorPoint) LineIndex() (textpos.LineIndex, bool) {
	if !a.IsValid() {
		return textpos.InvalidLineIndex, false
	}
	return a.line.Index(), true
}

// Offset returns a's resolved absolute offset into the buffer.
func (a *AnchorPoint) Offset() (textpos.TextOffset, bool) {
	if !a.IsValid() {
		return 0, false
	}
	return a.offset, true
}

// SetOffset repositions a to the given absolute offset, without
// touching any other anchor. Used when an anchor is moved outright
// rather than shifted in response to an edit elsewhere.
func (a *AnchorPoint) SetOffset(abs textpos.TextOffset) {
	a.offset = abs
}

// ShiftToOffset is an alias for SetOffset, matching the verb callers
// use when repositioning an anchor to a known absolute target.
func (a *AnchorPoint) ShiftToOffset(abs textpos.TextOffset) {
	a.SetOffset(abs)
}

// ShiftByOffset adds delta to a's stored offset, then recursively
// applies the same delta to every still-live child, pruning any
// children that were invalidated since the last shift. For a
// line-start anchor this is what cascades an edit forward: the next
// line's start anchor is itself a child, so shifting it in turn
// shifts everything after it.
func (a *AnchorPoint) ShiftByOffset(delta int) {
	if delta == 0 {
		return
	}
	a.offset += textpos.TextOffset(delta)
	live := a.children[:0]
	for _, c := range a.children {
		if !c.alive {
			continue
		}
		c.ShiftByOffset(delta)
		live = append(live, c)
	}
	a.children = live
}

// IsInRange reports whether a's resolved offset falls within
// [start, start+length). A length of [textpos.UntilTheEnd] means
// "start or later". An invalid anchor is never in range.
func (a *AnchorPoint) IsInRange(start textpos.TextOffset, length int) bool {
	off, ok := a.Offset()
	if !ok || length == 0 {
		return false
	}
	if length == textpos.UntilTheEnd {
		return off >= start
	}
	return off >= start && off < start+textpos.TextOffset(length)
}

// Parent returns a's parent anchor, if any.
func (a *AnchorPoint) Parent() *AnchorPoint {
	return a.parent
}

// SetParent reparents a onto p, removing it from any previous
// parent's children first. Setting an anchor as its own parent is a
// logic error in the caller and panics rather than looping forever.
func (a *AnchorPoint) SetParent(p *AnchorPoint) {
	if p == a {
		panic(baseerrors.Log(errAnchorSelfParent))
	}
	if a.parent != nil {
		a.parent.removeChild(a)
	}
	a.parent = p
	if p != nil {
		p.children = append(p.children, a)
	}
}

// ClearParent detaches a from its current parent, if any.
func (a *AnchorPoint) ClearParent() {
	a.SetParent(nil)
}

func (a *AnchorPoint) removeChild(c *AnchorPoint) {
	for i, ch := range a.children {
		if ch == c {
			a.children = append(a.children[:i], a.children[i+1:]...)
			return
		}
	}
}

// ClearLine detaches a from its line and marks it permanently
// invalid. Used when the line itself is torn down.
func (a *AnchorPoint) ClearLine() {
	a.line = nil
	a.alive = false
}

// Next returns the following line-start anchor in the chain.
func (a *AnchorPoint) Next() *AnchorPoint {
	return a.next
}

// Previous returns the preceding line-start anchor in the chain.
func (a *AnchorPoint) Previous() *AnchorPoint {
	return a.prev
}

// SetNext links a to n as its successor, updating n's prev pointer
// to match.
func (a *AnchorPoint) SetNext(n *AnchorPoint) {
	if n == a {
		panic(baseerrors.Log(errAnchorSelfNeighbour))
	}
	a.next = n
	if n != nil {
		n.prev = a
	}
}

// SetPrevious links a to p as its predecessor, updating p's next
// pointer to match.
func (a *AnchorPoint) SetPrevious(p *AnchorPoint) {
	if p == a {
		panic(baseerrors.Log(errAnchorSelfNeighbour))
	}
	a.prev = p
	if p != nil {
		p.next = a
	}
}

// ClearNext unlinks a from its successor.
func (a *AnchorPoint) ClearNext() {
	if a.next != nil {
		a.next.prev = nil
	}
	a.next = nil
}

// ClearPrevious unlinks a from its predecessor.
func (a *AnchorPoint) ClearPrevious() {
	if a.prev != nil {
		a.prev.next = nil
	}
	a.prev = nil
}

// Equal reports whether a and o are both valid and resolve to the
// same offset.
func (a *AnchorPoint) Equal(o *AnchorPoint) bool {
	if !a.IsValid() || o == nil || !o.IsValid() {
		return false
	}
	return a.offset == o.offset
}

// Less reports whether a resolves to an earlier offset than o.
func (a *AnchorPoint) Less(o *AnchorPoint) bool {
	if !a.IsValid() {
		return false
	}
	bo, ok := o.Offset()
	if !ok {
		return true
	}
	return a.offset < bo
}
