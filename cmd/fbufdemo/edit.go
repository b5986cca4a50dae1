// Copyright (c) 2025, The fbuf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit [file] [script]",
	Short: "apply an edit script to a file's buffer and print the result",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ft, err := openBuffer(args[0])
		if err != nil {
			return err
		}
		script, err := os.Open(args[1])
		if err != nil {
			return err
		}
		defer script.Close()

		scanner := bufio.NewScanner(script)
		lineNo := 0
		for scanner.Scan() {
			lineNo++
			if err := applyLine(ft, scanner.Text()); err != nil {
				return fmt.Errorf("%s:%d: %w", args[1], lineNo, err)
			}
		}
		if err := scanner.Err(); err != nil {
			return err
		}

		render(cmd.OutOrStdout(), ft, cfg.Color)
		return nil
	},
}
