// Copyright (c) 2025, The fbuf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mdimport loads a Markdown document into a [lines.FormattedText],
// translating emphasis, strong emphasis, and link nodes into the
// buffer's own {[...]} tag markup rather than keeping Markdown's
// asterisk/underscore/bracket syntax as literal text.
package mdimport

import (
	"fmt"
	"strings"

	"github.com/fbuftext/fbuf/text/lines"
	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/parser"
)

// The tag names this importer emits, one for each kind of AST node it
// understands.
const (
	tagBold   = "bold"
	tagItalic = "italic"
	tagLink   = "link"
	tagHead   = "heading"
	tagCode   = "code"
)

// Import parses src as Markdown and loads the result into a new
// [lines.FormattedText], returning it.
func Import(src []byte) *lines.FormattedText {
	ft := lines.New()
	Load(ft, src)
	return ft
}

// Load parses src as Markdown and replaces ft's contents with the
// result, emitting {[...]} tags for the constructs it recognizes
// (bold, italic, links, headings, inline code) and leaving everything
// else as plain text.
func Load(ft *lines.FormattedText, src []byte) {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	doc := p.Parse(src)

	var b strings.Builder
	needsBlockBreak := false

	ast.WalkFunc(doc, func(node ast.Node, entering bool) ast.WalkStatus {
		switch n := node.(type) {
		case *ast.Document:
			return ast.GoToNext
		case *ast.Paragraph:
			if entering && needsBlockBreak {
				b.WriteString("\n\n")
			}
			needsBlockBreak = !entering
			return ast.GoToNext
		case *ast.Heading:
			if entering {
				if needsBlockBreak {
					b.WriteString("\n\n")
				}
				openTag(&b, tagHead, fmt.Sprintf("h%d", n.Level), nil)
			} else {
				closeTag(&b, tagHead)
				needsBlockBreak = true
			}
			return ast.GoToNext
		case *ast.Strong:
			if entering {
				openTag(&b, tagBold, "", nil)
			} else {
				closeTag(&b, tagBold)
			}
			return ast.GoToNext
		case *ast.Emph:
			if entering {
				openTag(&b, tagItalic, "", nil)
			} else {
				closeTag(&b, tagItalic)
			}
			return ast.GoToNext
		case *ast.Link:
			if entering {
				openTag(&b, tagLink, "", []string{string(n.Destination)})
			} else {
				closeTag(&b, tagLink)
			}
			return ast.GoToNext
		case *ast.Code:
			openTag(&b, tagCode, "", nil)
			b.Write(stripNewlines(n.Literal))
			closeTag(&b, tagCode)
			return ast.GoToNext
		case *ast.CodeBlock:
			if needsBlockBreak {
				b.WriteString("\n\n")
			}
			openTag(&b, tagCode, "block", nil)
			b.Write(n.Literal)
			closeTag(&b, tagCode)
			needsBlockBreak = true
			return ast.GoToNext
		case *ast.Text:
			b.Write(n.Literal)
			return ast.GoToNext
		case *ast.Hardbreak, *ast.Softbreak:
			b.WriteString("\n")
			return ast.GoToNext
		}
		return ast.GoToNext
	})

	ft.SetText([]rune(b.String()))
}

func openTag(b *strings.Builder, name, label string, attrs []string) {
	b.WriteString("{[")
	b.WriteString(name)
	if label != "" {
		b.WriteString("#")
		b.WriteString(label)
	}
	if len(attrs) > 0 {
		b.WriteString(":")
		b.WriteString(strings.Join(attrs, ","))
	}
	b.WriteString("]}")
}

func closeTag(b *strings.Builder, name string) {
	b.WriteString("{[/")
	b.WriteString(name)
	b.WriteString("]}")
}

func stripNewlines(s []byte) []byte {
	return []byte(strings.ReplaceAll(string(s), "\n", " "))
}
