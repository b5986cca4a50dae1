// Copyright (c) 2025, The fbuf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/jinzhu/copier"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *Config
)

var rootCmd = &cobra.Command{
	Use:   "fbufdemo",
	Short: "fbufdemo drives a formatted text buffer from the command line",
	Long: `fbufdemo is a small terminal program built on the fbuf buffer
library. It loads a file into a buffer, can apply a scripted sequence
of edits to it, watch it for external changes, and render its
formatted view to the terminal.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := loadConfig(cfgFile)
		if err != nil {
			return err
		}
		cfg = &Config{}
		if err := copier.Copy(cfg, loaded); err != nil {
			return fmt.Errorf("fbufdemo: copying config: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a config file (default: fbufdemo.toml, then fbufdemo.yaml, in . then ~/.config)")
	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(replCmd)
}

// Execute runs the root command, exiting the process with status 1
// on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
