// Copyright (c) 2025, The fbuf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package htmlimport loads HTML documents into a [lines.FormattedText].
// Import walks the parsed DOM and translates a handful of inline
// elements into {[...]} tag markup; ImportPlain discards all markup
// and keeps only the visible text.
package htmlimport

import (
	"strings"

	striptags "github.com/grokify/html-strip-tags-go"
	"golang.org/x/net/html"

	"github.com/fbuftext/fbuf/text/lines"
)

// elementTags maps the HTML tag names this importer understands to
// the tag name it emits for them.
var elementTags = map[string]string{
	"b": "bold", "strong": "bold",
	"i": "italic", "em": "italic",
	"code": "code",
	"a":    "link",
}

var headingLevels = map[string]string{
	"h1": "h1", "h2": "h2", "h3": "h3", "h4": "h4", "h5": "h5", "h6": "h6",
}

// Import parses src as HTML and returns a new [lines.FormattedText]
// whose text carries {[...]} tags for the elements it recognizes.
func Import(src string) (*lines.FormattedText, error) {
	ft := lines.New()
	if err := Load(ft, src); err != nil {
		return nil, err
	}
	return ft, nil
}

// Load parses src as HTML and replaces ft's contents with the result.
func Load(ft *lines.FormattedText, src string) error {
	doc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		return err
	}
	var b strings.Builder
	walk(doc, &b)
	ft.SetText([]rune(strings.TrimSpace(b.String())))
	return nil
}

// ImportPlain parses src as HTML and returns a [lines.FormattedText]
// holding only its visible text, with all markup stripped and no
// {[...]} tags emitted.
func ImportPlain(src string) *lines.FormattedText {
	ft := lines.New()
	ft.TagsEnabled = false
	ft.SetText([]rune(strings.TrimSpace(striptags.StripTags(src))))
	return ft
}

func walk(n *html.Node, b *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
		return
	case html.ElementNode:
		switch n.Data {
		case "script", "style":
			return
		case "br":
			b.WriteString("\n")
			return
		case "p", "div", "li":
			defer b.WriteString("\n")
		}
		if name, ok := headingLevels[n.Data]; ok {
			openTag(b, "heading", name, nil)
			defer closeTag(b, "heading")
		} else if name, ok := elementTags[n.Data]; ok {
			openTag(b, name, "", linkAttrs(n))
			defer closeTag(b, name)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, b)
	}
}

func linkAttrs(n *html.Node) []string {
	if n.Data != "a" {
		return nil
	}
	for _, a := range n.Attr {
		if a.Key == "href" {
			return []string{a.Val}
		}
	}
	return nil
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
