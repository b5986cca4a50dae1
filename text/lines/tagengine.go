// Copyright (c) 2025, The fbuf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lines

import (
	"sort"

	"github.com/fbuftext/fbuf/base/stack"
	"github.com/fbuftext/fbuf/text/textpos"
)

// parseTags reparses the tag components of the line at lineIdx that
// the edit at [offset, offset+length) could plausibly have touched,
// then rebuilds every tag's opening/closing pairing across the
// buffer. A no-op if tag parsing is disabled. Components entirely
// outside the touched range keep their existing *TagComponent (and,
// transitively, *Tag) identity: a caller holding one of those pointers
// from before the edit still sees it afterward, unchanged.
func (ft *FormattedText) parseTags(lineIdx textpos.LineIndex, offset textpos.CharOffset, length int) {
	if !ft.TagsEnabled {
		return
	}
	idx := ft.resolveLineIndex(lineIdx)
	if idx < 0 || idx >= len(ft.lines) {
		return
	}
	ft.reparseLineRange(ft.lines[idx], offset, length)
	ft.purgeInvalidTags()
	ft.pairComponents()
}

// parseTagsFull reparses every line in the buffer and rebuilds all
// tag pairings from scratch. Used after a full-text replacement, where
// nothing is worth preserving and reparsing line by line would be no
// cheaper.
func (ft *FormattedText) parseTagsFull() {
	if !ft.TagsEnabled {
		ft.tags = nil
		for _, fl := range ft.lines {
			fl.components = nil
			fl.formattedDirty = true
		}
		return
	}
	for _, fl := range ft.lines {
		ft.reparseLineFull(fl)
	}
	ft.tags = nil
	ft.pairComponents()
}

// reparseLineFull discards every one of fl's tag components
// (invalidating their anchors) and reparses its unformatted text for
// new ones from scratch.
func (ft *FormattedText) reparseLineFull(fl *FormattedLine) {
	for _, tc := range fl.components {
		invalidateComponent(tc)
	}
	fl.components = nil
	fl.formattedDirty = true

	pos := textpos.CharOffset(0)
	n := fl.unformatted.Length()
	for int(pos) < n {
		if tc, consumed, ok := fl.parseTagComponent(pos); ok {
			fl.addComponent(tc)
			pos += textpos.CharOffset(consumed)
			continue
		}
		pos++
	}
}

// tagTokenMargin is one less than the length of the shorter of
// TagPrefix and TagPostfix: the most an edit's boundary can shift which
// characters are adjacent to which, and so the widest a new prefix or
// postfix token can reach past the edit's own reported range.
const tagTokenMargin = 1

// reparseLineRange is the windowed counterpart to reparseLineFull: it
// only discards components whose span intersects the touched range
// (clamped to the line and widened by tagTokenMargin on each side, to
// catch a token newly formed from characters the edit made adjacent),
// leaving every other component's identity untouched. The range is
// then widened to cover every discarded component in full, so the
// text of a component the edit only partly touched is reparsed too.
// parseTagComponent
// always scans forward to the line's real end looking for a closing
// postfix, so a component found at any candidate start position is
// exactly what a full reparse would have produced there; the only
// bookkeeping this function owns is which existing components can be
// trusted as-is and which start positions are worth probing for new
// ones, widening both as a newly parsed component turns out to reach
// into a component that was assumed untouched.
func (ft *FormattedText) reparseLineRange(fl *FormattedLine, offset textpos.CharOffset, length int) {
	n := fl.unformatted.Length()
	lo := clampOffset(int(offset), 0, n)
	hi := lo
	if length == textpos.UntilTheEnd {
		hi = n
	} else {
		hi = clampOffset(lo+length, 0, n)
	}
	lo = clampOffset(lo-tagTokenMargin, 0, n)
	hi = clampOffset(hi+tagTokenMargin, 0, n)

	base := fl.StartOffset()
	var kept []*TagComponent
	for _, tc := range fl.components {
		start, end, ok := componentRelRange(tc, base)
		if ok && !(start < hi && lo < end) {
			kept = append(kept, tc)
			continue
		}
		if ok {
			if start < lo {
				lo = start
			}
			if end > hi {
				hi = end
			}
		}
		invalidateComponent(tc)
	}
	fl.components = kept

	pos := textpos.CharOffset(lo)
	for int(pos) < hi {
		tc, consumed, ok := fl.parseTagComponent(pos)
		if !ok {
			pos++
			continue
		}
		end := int(pos) + consumed
		fl.components = reclaimOverlapping(fl.components, base, int(pos), end, invalidateComponent)
		fl.addComponent(tc)
		if end > hi {
			hi = end
		}
		pos += textpos.CharOffset(consumed)
	}
	fl.formattedDirty = true
}

func clampOffset(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// componentRelRange returns tc's span as [start, end) relative to
// base, the owning line's start offset. EndOffset is the offset of
// the component's last (closing-brace) rune, so end is exclusive.
func componentRelRange(tc *TagComponent, base textpos.TextOffset) (start, end int, ok bool) {
	so, sok := tc.StartOffset()
	eo, eok := tc.EndOffset()
	if !sok || !eok {
		return 0, 0, false
	}
	return int(so - base), int(eo-base) + 1, true
}

func invalidateComponent(tc *TagComponent) {
	tc.start.ClearParent()
	tc.start.ClearLine()
	tc.end.ClearParent()
	tc.end.ClearLine()
}

// reclaimOverlapping drops from components any component whose span
// overlaps the relative range [start, end) -- a freshly parsed
// component reaching into territory a supposedly untouched component
// used to occupy -- invalidating it in the process.
func reclaimOverlapping(components []*TagComponent, base textpos.TextOffset, start, end int, invalidate func(*TagComponent)) []*TagComponent {
	out := components[:0]
	for _, tc := range components {
		s, e, ok := componentRelRange(tc, base)
		if ok && s < end && start < e {
			invalidate(tc)
			continue
		}
		out = append(out, tc)
	}
	return out
}

// purgeInvalidTags drops any tag whose opening component is no
// longer live.
func (ft *FormattedText) purgeInvalidTags() {
	live := ft.tags[:0]
	for _, t := range ft.tags {
		if t.opening != nil && t.opening.IsValid() {
			live = append(live, t)
		}
	}
	ft.tags = live
}

// pairComponents rebuilds every Tag from the buffer's current set of
// live tag components, in document order. Each closing component
// pops entries off a stack of still-open components until it finds
// one with a matching name, pairing that one; openings popped along
// the way that didn't match are still unclosed, so they go back on
// the stack in their original order, with only the matched one
// removed from it. A closing
// component that matches nothing leaves the stack exactly as it
// found it.
//
// An opening component that survived the edit unchanged (same
// *TagComponent pointer as last time) gets its previous *Tag back
// rather than a freshly allocated one, so a caller holding a *Tag from
// before an edit elsewhere on the document still holds the live one
// afterward.
func (ft *FormattedText) pairComponents() {
	var components []*TagComponent
	for _, fl := range ft.lines {
		for _, tc := range fl.components {
			if tc.IsValid() {
				components = append(components, tc)
			}
		}
	}
	sort.SliceStable(components, func(i, j int) bool {
		io, _ := components[i].StartOffset()
		jo, _ := components[j].StartOffset()
		return io < jo
	})

	prevByOpening := make(map[*TagComponent]*Tag, len(ft.tags))
	for _, t := range ft.tags {
		prevByOpening[t.opening] = t
	}

	var open stack.Stack[*TagComponent]
	tagFor := make(map[*TagComponent]*Tag, len(components))
	var tags []*Tag

	for _, tc := range components {
		if tc.IsOpeningTag() {
			t, reused := prevByOpening[tc]
			if reused {
				t.closing = nil
			} else {
				t = &Tag{opening: tc}
			}
			tags = append(tags, t)
			tagFor[tc] = t
			open.Push(tc)
			continue
		}

		if top, ok := open.PopMatching(func(c *TagComponent) bool { return c.tagName == tc.tagName }); ok {
			tagFor[top].closing = tc
		}
	}

	ft.tags = tags
}

// removeEmptyTags removes every tag on the line at lineIdx whose
// inner content is empty (an opening component immediately followed
// by its closing component, with nothing -- not even another tag --
// between them), together with both of its components. Reentrant
// calls while already sweeping are ignored, since removing one empty
// tag's markup can itself trigger a reparse that would otherwise
// recurse.
func (ft *FormattedText) removeEmptyTags(lineIdx textpos.LineIndex) {
	if ft.removingEmptyTags {
		return
	}
	ft.removingEmptyTags = true
	defer func() { ft.removingEmptyTags = false }()

	idx := ft.resolveLineIndex(lineIdx)
	if idx < 0 || idx >= len(ft.lines) {
		return
	}

	for {
		removedAny := false
		for _, t := range ft.tags {
			if !t.IsValid() || !t.IsClosed() {
				continue
			}
			openLine, ok := t.opening.start.LineIndex()
			if !ok || int(openLine) != idx {
				continue
			}
			_, length, ok := t.InnerRange()
			if !ok || length != 0 {
				continue
			}
			start, outerLen, ok := t.OuterRange()
			if !ok {
				continue
			}
			if err := ft.RemoveTextAt(start, outerLen); err != nil {
				continue
			}
			removedAny = true
			break
		}
		if !removedAny {
			return
		}
	}
}

// FindFirstVisibleChar returns the absolute unformatted-text offset
// of the first character on or after offset that is not elided by
// some live tag component's markup.
func (ft *FormattedText) FindFirstVisibleChar(offset textpos.TextOffset) (textpos.TextOffset, bool) {
	ft.ensureUpToDate()
	n := textpos.TextOffset(len(ft.unformattedCache))
	for o := offset; o < n; o++ {
		idx, ok := ft.LineIndexForOffset(o)
		if !ok {
			continue
		}
		fl := ft.lines[idx]
		if fl.componentAt(int(o-fl.StartOffset())) == nil {
			return o, true
		}
	}
	return 0, false
}

// FindLastVisibleChar returns the absolute unformatted-text offset of
// the last character on or before offset that is not elided by some
// live tag component's markup.
func (ft *FormattedText) FindLastVisibleChar(offset textpos.TextOffset) (textpos.TextOffset, bool) {
	ft.ensureUpToDate()
	for o := offset; o >= 0; o-- {
		idx, ok := ft.LineIndexForOffset(o)
		if !ok {
			continue
		}
		fl := ft.lines[idx]
		if fl.componentAt(int(o-fl.StartOffset())) == nil {
			return o, true
		}
	}
	return 0, false
}
