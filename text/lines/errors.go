// Copyright (c) 2025, The fbuf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lines

import "errors"

// Sentinel errors returned by reported (non-fatal) failures: an
// out-of-range index, a degenerate move, or an erase that starts past
// the end of a line. Callers compare with errors.Is. Invariant
// violations (a corrupted anchor chain, a self-parenting anchor) are
// not represented here: those panic, since they indicate a bug in
// this package rather than a caller mistake.
var (
	ErrOutOfRange      = errors.New("lines: index out of range")
	ErrDegenerateMove  = errors.New("lines: move target falls inside the source range")
	ErrEraseBeyondLine = errors.New("lines: erase runs past the end of the line")
	ErrEmbeddedNewline = errors.New("lines: line text must not contain a newline")
	ErrUnknownTagName  = errors.New("lines: no tag with that name")
)
