// Copyright (c) 2025, The fbuf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"

	shellwords "github.com/mattn/go-shellwords"

	"github.com/fbuftext/fbuf/text/lines"
	"github.com/fbuftext/fbuf/text/textpos"
)

// applyLine tokenizes a single edit-script or REPL line with
// shell-style quoting rules and applies it to ft. Recognized verbs:
//
//	insert <line> <char> <text>
//	remove <line> <char> <length>
//	removeat <offset> <length>
//	move <srcLine> <srcChar> <length> <dstLine> <dstChar>
//	removeline <line>
//
// Blank lines and lines starting with "#" are ignored.
func applyLine(ft *lines.FormattedText, line string) error {
	if line == "" || line[0] == '#' {
		return nil
	}
	args, err := shellwords.Parse(line)
	if err != nil {
		return fmt.Errorf("parsing %q: %w", line, err)
	}
	if len(args) == 0 {
		return nil
	}

	verb, rest := args[0], args[1:]
	switch verb {
	case "insert":
		if len(rest) != 3 {
			return fmt.Errorf("insert wants <line> <char> <text>, got %v", rest)
		}
		l, c, err := parseLineChar(rest[0], rest[1])
		if err != nil {
			return err
		}
		if _, err := ft.InsertText([]rune(rest[2]), l, c); err != nil {
			return fmt.Errorf("insert at %d:%d failed: %w", l, c, err)
		}
	case "remove":
		if len(rest) != 3 {
			return fmt.Errorf("remove wants <line> <char> <length>")
		}
		l, c, err := parseLineChar(rest[0], rest[1])
		if err != nil {
			return err
		}
		length, err := parseLength(rest[2])
		if err != nil {
			return err
		}
		if err := ft.RemoveText(l, c, length); err != nil {
			return fmt.Errorf("remove at %d:%d failed: %w", l, c, err)
		}
	case "removeat":
		if len(rest) != 2 {
			return fmt.Errorf("removeat wants <offset> <length>")
		}
		off, err := strconv.Atoi(rest[0])
		if err != nil {
			return err
		}
		length, err := parseLength(rest[1])
		if err != nil {
			return err
		}
		if err := ft.RemoveTextAt(textpos.TextOffset(off), length); err != nil {
			return fmt.Errorf("removeat %d failed: %w", off, err)
		}
	case "move":
		if len(rest) != 5 {
			return fmt.Errorf("move wants <srcLine> <srcChar> <length> <dstLine> <dstChar>")
		}
		sl, sc, err := parseLineChar(rest[0], rest[1])
		if err != nil {
			return err
		}
		length, err := parseLength(rest[2])
		if err != nil {
			return err
		}
		dl, dc, err := parseLineChar(rest[3], rest[4])
		if err != nil {
			return err
		}
		if err := ft.MoveText(sl, sc, length, dl, dc); err != nil {
			return fmt.Errorf("move %d:%d failed: %w", sl, sc, err)
		}
	case "removeline":
		if len(rest) != 1 {
			return fmt.Errorf("removeline wants <line>")
		}
		l, _, err := parseLineChar(rest[0], "0")
		if err != nil {
			return err
		}
		if err := ft.RemoveLine(l); err != nil {
			return fmt.Errorf("removeline %d failed: %w", l, err)
		}
	default:
		return fmt.Errorf("unknown command %q", verb)
	}
	return nil
}

func parseLineChar(lineStr, charStr string) (textpos.LineIndex, textpos.CharOffset, error) {
	l, err := strconv.Atoi(lineStr)
	if err != nil {
		return 0, 0, err
	}
	c, err := strconv.Atoi(charStr)
	if err != nil {
		return 0, 0, err
	}
	return textpos.LineIndex(l), textpos.CharOffset(c), nil
}

func parseLength(s string) (int, error) {
	if s == "end" {
		return textpos.UntilTheEnd, nil
	}
	return strconv.Atoi(s)
}
