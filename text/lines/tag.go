// Copyright (c) 2025, The fbuf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lines

import (
	"strings"

	"github.com/fbuftext/fbuf/text/textpos"
)

// Tag delimiters. A tag component spans from TagPrefix through the
// matching TagPostfix, inclusive.
const (
	TagPrefix  = "{["
	TagPostfix = "]}"
)

// TagComponentKind distinguishes an opening component (which may
// carry a label and arguments) from a closing one.
type TagComponentKind int

const (
	OpeningComponent TagComponentKind = iota
	ClosingComponent
)

// TagComponent is one inline `{[...]}` marker in the unformatted
// text: either the opening half of a tag or its closing counterpart.
// Its start and end anchors track the markup's own position across
// edits, independent of the tag's paired partner.
type TagComponent struct {
	kind TagComponentKind

	tagName    string
	label      string   // opening components only
	attributes []string // opening components only

	start *AnchorPoint
	end   *AnchorPoint
}

// IsOpeningTag reports whether c is an opening component.
func (c *TagComponent) IsOpeningTag() bool { return c.kind == OpeningComponent }

// IsClosingTag reports whether c is a closing component.
func (c *TagComponent) IsClosingTag() bool { return c.kind == ClosingComponent }

// TagName returns the component's tag name.
func (c *TagComponent) TagName() string { return c.tagName }

// Label returns the component's label, or "" if it has none.
func (c *TagComponent) Label() string { return c.label }

// Attributes returns the component's argument list, or nil if it has
// none.
func (c *TagComponent) Attributes() []string { return c.attributes }

// StartOffset returns the absolute offset of the component's opening
// '{'.
func (c *TagComponent) StartOffset() (textpos.TextOffset, bool) { return c.start.Offset() }

// EndOffset returns the absolute offset of the component's closing
// '}'.
func (c *TagComponent) EndOffset() (textpos.TextOffset, bool) { return c.end.Offset() }

// IsValid reports whether both of the component's anchors are still
// live and in the correct order.
func (c *TagComponent) IsValid() bool {
	if c.start == nil || c.end == nil || !c.start.IsValid() || !c.end.IsValid() {
		return false
	}
	so, _ := c.start.Offset()
	eo, _ := c.end.Offset()
	return eo > so
}

// Length returns the component's span length in runes, including
// both delimiters.
func (c *TagComponent) Length() int {
	so, ok1 := c.start.Offset()
	eo, ok2 := c.end.Offset()
	if !ok1 || !ok2 {
		return 0
	}
	return int(eo-so) + 1
}

// TagString returns the literal markup text of the component
// (including its delimiters), as it currently reads in ft.
func (c *TagComponent) TagString(ft *FormattedText) []rune {
	so, ok1 := c.start.Offset()
	eo, ok2 := c.end.Offset()
	if !ok1 || !ok2 || eo < so {
		return nil
	}
	return ft.Substr(so, int(eo-so)+1)
}

// Tag is a matched pair of tag components: an opening component that
// always exists while the tag is live, and a closing component that
// may be nil or itself invalid if the tag has not (yet, or ever) been
// closed.
type Tag struct {
	opening *TagComponent
	closing *TagComponent
}

// Name returns the tag's name, taken from its opening component.
func (t *Tag) Name() string {
	if t.opening == nil {
		return ""
	}
	return t.opening.tagName
}

// Label returns the tag's label, taken from its opening component.
func (t *Tag) Label() string {
	if t.opening == nil {
		return ""
	}
	return t.opening.label
}

// Attributes returns the tag's arguments, taken from its opening
// component.
func (t *Tag) Attributes() []string {
	if t.opening == nil {
		return nil
	}
	return t.opening.attributes
}

// IsValid reports whether the tag's opening component is still live.
func (t *Tag) IsValid() bool {
	return t.opening != nil && t.opening.IsValid()
}

// IsClosed reports whether the tag has a live, paired closing
// component.
func (t *Tag) IsClosed() bool {
	return t.closing != nil && t.closing.IsValid()
}

// InnerRange returns the offset and length of the tag's content: the
// text strictly between the opening and closing components. Reports
// false if the tag is not both valid and closed.
func (t *Tag) InnerRange() (textpos.TextOffset, int, bool) {
	if !t.IsValid() || !t.IsClosed() {
		return 0, 0, false
	}
	openEnd, _ := t.opening.EndOffset()
	closeStart, _ := t.closing.StartOffset()
	start := openEnd + 1
	length := int(closeStart - start)
	if length < 0 {
		length = 0
	}
	return start, length, true
}

// OuterRange returns the offset and length of the whole tag,
// including both delimiters.
func (t *Tag) OuterRange() (textpos.TextOffset, int, bool) {
	if !t.IsValid() {
		return 0, 0, false
	}
	start, _ := t.opening.StartOffset()
	end, _ := t.opening.EndOffset()
	if t.IsClosed() {
		end, _ = t.closing.EndOffset()
	}
	return start, int(end-start) + 1, true
}

// Contents returns the tag's inner text as it currently reads in ft.
func (t *Tag) Contents(ft *FormattedText) []rune {
	start, length, ok := t.InnerRange()
	if !ok {
		return nil
	}
	return ft.Substr(start, length)
}

// String returns the tag's full literal text (both components and
// everything between them) as it currently reads in ft.
func (t *Tag) String(ft *FormattedText) []rune {
	start, length, ok := t.OuterRange()
	if !ok {
		return nil
	}
	return ft.Substr(start, length)
}

// OpeningTagString returns the opening component's literal text.
func (t *Tag) OpeningTagString(ft *FormattedText) []rune {
	if t.opening == nil {
		return nil
	}
	return t.opening.TagString(ft)
}

// ClosingTagString returns the closing component's literal text, or
// nil if the tag is not closed.
func (t *Tag) ClosingTagString(ft *FormattedText) []rune {
	if !t.IsClosed() {
		return nil
	}
	return t.closing.TagString(ft)
}

// parseTagComponent attempts to parse a single tag component starting
// exactly at relOffset within fl's unformatted text. It recognizes
// `{[` as the prefix and `]}` as the postfix; a `/` immediately after
// the prefix marks a closing component. Between them it runs a small
// state machine over three stages -- tag name, label, arguments --
// advanced by `#` and `:` respectively, with `,` starting a new
// (possibly empty) argument once in the arguments stage. A `"`
// toggles quote mode, in which none of those separators are
// recognized and characters are copied into the current buffer
// verbatim. Reaching the end of the line, or an embedded NUL, without
// finding the postfix fails the parse.
func (fl *FormattedLine) parseTagComponent(relOffset textpos.CharOffset) (*TagComponent, int, bool) {
	line := fl.unformatted
	n := line.Length()
	prefixLen := len(TagPrefix)
	if int(relOffset)+prefixLen > n {
		return nil, 0, false
	}
	if string(line.Substr(relOffset, prefixLen)) != TagPrefix {
		return nil, 0, false
	}

	pos := int(relOffset) + prefixLen
	isClosing := false
	if pos < n && line.At(textpos.CharOffset(pos)) == '/' {
		isClosing = true
		pos++
	}

	const (
		stageTagName = iota
		stageLabel
		stageArguments
	)
	stage := stageTagName

	var tagName, label, curArg strings.Builder
	var args []string
	inQuote := false

	for {
		if pos >= n {
			return nil, 0, false
		}
		c := line.At(textpos.CharOffset(pos))
		if c == 0 {
			return nil, 0, false
		}

		if inQuote {
			if c == '"' {
				inQuote = false
				pos++
				continue
			}
			writeStageRune(stage, c, &tagName, &label, &curArg)
			pos++
			continue
		}

		if c == ']' && pos+1 < n && line.At(textpos.CharOffset(pos+1)) == '}' {
			if stage == stageArguments {
				args = append(args, curArg.String())
			}
			closeBrace := pos + 1
			length := closeBrace - int(relOffset) + 1
			start := fl.CreateAnchorPoint(relOffset, false)
			end := fl.CreateAnchorPoint(textpos.CharOffset(closeBrace), false)
			if isClosing {
				return &TagComponent{kind: ClosingComponent, tagName: tagName.String(), start: start, end: end}, length, true
			}
			return &TagComponent{
				kind: OpeningComponent, tagName: tagName.String(), label: label.String(),
				attributes: args, start: start, end: end,
			}, length, true
		}

		switch c {
		case '"':
			inQuote = true
			pos++
			continue
		case '#':
			if stage == stageTagName {
				stage = stageLabel
				pos++
				continue
			}
		case ':':
			if stage == stageTagName || stage == stageLabel {
				stage = stageArguments
				pos++
				continue
			}
		case ',':
			if stage == stageArguments {
				args = append(args, curArg.String())
				curArg.Reset()
				pos++
				continue
			}
		}

		writeStageRune(stage, c, &tagName, &label, &curArg)
		pos++
	}
}

func writeStageRune(stage int, c rune, tagName, label, curArg *strings.Builder) {
	switch stage {
	case 0:
		tagName.WriteRune(c)
	case 1:
		label.WriteRune(c)
	default:
		curArg.WriteRune(c)
	}
}
