// Copyright (c) 2025, The fbuf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdimport

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImportEmphasisBecomesTags(t *testing.T) {
	ft := Import([]byte("this is **bold** and *italic* text"))
	assert.NotEmpty(t, ft.TagsNamed(tagBold))
	assert.NotEmpty(t, ft.TagsNamed(tagItalic))
	assert.Contains(t, ft.FormattedString(), "bold")
	assert.Contains(t, ft.FormattedString(), "italic")
	assert.NotContains(t, ft.String(), "**")
}

func TestImportLinkCarriesDestinationAsAttribute(t *testing.T) {
	ft := Import([]byte("see [here](https://example.com)"))
	links := ft.TagsNamed(tagLink)
	assert.Len(t, links, 1)
	assert.Equal(t, []string{"https://example.com"}, links[0].Attributes())
	assert.Equal(t, "here", string(links[0].Contents(ft)))
}

func TestImportHeadingLevel(t *testing.T) {
	ft := Import([]byte("## Section Title"))
	headings := ft.TagsNamed(tagHead)
	assert.Len(t, headings, 1)
	assert.Equal(t, "h2", headings[0].Label())
}

func TestImportInlineCode(t *testing.T) {
	ft := Import([]byte("run `go test` now"))
	code := ft.TagsNamed(tagCode)
	assert.Len(t, code, 1)
	assert.Equal(t, "go test", string(code[0].Contents(ft)))
}

func TestLoadReplacesExistingContent(t *testing.T) {
	ft := Import([]byte("first"))
	Load(ft, []byte("second"))
	assert.Equal(t, "second", ft.String())
}
