// Copyright (c) 2025, The fbuf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/fbuftext/fbuf/text/lines"
)

var loadCmd = &cobra.Command{
	Use:   "show [file]",
	Short: "load a file into a buffer and print its formatted view",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ft, err := openBuffer(args[0])
		if err != nil {
			return err
		}
		render(cmd.OutOrStdout(), ft, cfg.Color)
		return nil
	},
}

// openBuffer reads path and loads it into a new buffer configured
// from the current Config.
func openBuffer(path string) (*lines.FormattedText, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	ft := lines.New()
	ft.TagsEnabled = cfg.TagsEnabled
	ft.PreserveTagsOnLineRemoval = cfg.PreserveTagsOnLineRemoval
	ft.SetText([]rune(string(data)))
	return ft, nil
}
