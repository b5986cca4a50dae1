// Copyright (c) 2025, The fbuf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fbuftext/fbuf/text/lines"
)

var replCmd = &cobra.Command{
	Use:   "repl [file]",
	Short: "interactively apply edit commands to a file's buffer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ft, err := openBuffer(args[0])
		if err != nil {
			return err
		}
		return runRepl(cmd, ft)
	},
}

// runRepl reads edit commands from stdin, one per line, applying
// each to ft via applyLine and re-rendering after every successful
// command. "print" re-renders without editing; "quit" exits.
func runRepl(cmd *cobra.Command, ft *lines.FormattedText) error {
	out := cmd.OutOrStdout()
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Fprintln(out, "fbufdemo repl — commands: insert, remove, removeat, move, removeline, print, quit")
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := scanner.Text()
		switch line {
		case "quit", "exit":
			return nil
		case "print":
			render(out, ft, cfg.Color)
			continue
		}
		if err := applyLine(ft, line); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), err)
			continue
		}
		render(out, ft, cfg.Color)
	}
}
