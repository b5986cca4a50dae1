// Copyright (c) 2025, The fbuf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
	"github.com/rivo/uniseg"

	"github.com/fbuftext/fbuf/text/lines"
)

// render writes ft's formatted view to w, one terminal line per
// buffer line, styling any text covered by a "bold" or "italic" tag
// (and underlining text covered by a "link" tag) when color is
// enabled.
func render(w io.Writer, ft *lines.FormattedText, color bool) {
	for i, fl := range ft.Lines() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		renderLine(w, ft, fl, color)
	}
	fmt.Fprintln(w)
}

func renderLine(w io.Writer, ft *lines.FormattedText, fl *lines.FormattedLine, color bool) {
	plain := fl.Format().String()
	if !color {
		fmt.Fprint(w, truncateGraphemes(plain, 4096))
		return
	}

	styled := plain
	for _, tag := range ft.Tags() {
		if !tag.IsClosed() {
			continue
		}
		contents := string(tag.Contents(ft))
		if contents == "" || !strings.Contains(styled, contents) {
			continue
		}
		switch tag.Name() {
		case "bold":
			styled = strings.Replace(styled, contents, termenv.String(contents).Bold().String(), 1)
		case "italic":
			styled = strings.Replace(styled, contents, termenv.String(contents).Italic().String(), 1)
		case "link":
			styled = strings.Replace(styled, contents, termenv.String(contents).Underline().String(), 1)
		}
	}
	fmt.Fprint(w, styled)
}

// truncateGraphemes returns s cut to at most n grapheme clusters,
// rather than n bytes or runes, so a multi-rune glyph is never split.
func truncateGraphemes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	gr := uniseg.NewGraphemes(s)
	var b strings.Builder
	count := 0
	for gr.Next() {
		if count >= n {
			break
		}
		b.WriteString(gr.Str())
		count++
	}
	return b.String()
}
