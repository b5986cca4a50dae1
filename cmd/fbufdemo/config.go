// Copyright (c) 2025, The fbuf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"

	"github.com/fbuftext/fbuf/base/iox/tomlx"
	"github.com/fbuftext/fbuf/base/iox/yamlx"
)

// Config holds the settings fbufdemo loads from a config file.
type Config struct {
	// PreserveTagsOnLineRemoval controls whether tag markup split
	// across a removed line migrates to its neighbor.
	PreserveTagsOnLineRemoval bool `toml:"preserve-tags-on-line-removal" yaml:"preserveTagsOnLineRemoval"`

	// TagsEnabled controls whether {[...]} markup is parsed at all.
	TagsEnabled bool `toml:"tags-enabled" yaml:"tagsEnabled"`

	// Color enables termenv styling when rendering the formatted view.
	Color bool `toml:"color" yaml:"color"`
}

// DefaultConfig returns the config fbufdemo uses when no config file
// is found.
func DefaultConfig() *Config {
	return &Config{
		PreserveTagsOnLineRemoval: true,
		TagsEnabled:               true,
		Color:                     true,
	}
}

// configSearchDirs returns, in priority order, the directories
// loadConfig looks in when no explicit path is given: the current
// directory, then "~/.config".
func configSearchDirs() []string {
	dirs := []string{"."}
	if home, err := homedir.Dir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".config"))
	}
	return dirs
}

// loadConfig reads path into a fresh config seeded with DefaultConfig's
// values, using TOML or YAML depending on the file extension. When
// path is empty, it searches fbufdemo.toml then fbufdemo.yaml across
// configSearchDirs, using the first one found. A config that cannot
// be found anywhere is not an error; the defaults are returned
// unchanged.
func loadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		dirs := configSearchDirs()
		if err := tomlx.OpenFromPaths(cfg, "fbufdemo.toml", dirs...); err == nil {
			return cfg, nil
		}
		if err := yamlx.OpenFromPaths(cfg, "fbufdemo.yaml", dirs...); err == nil {
			return cfg, nil
		}
		return cfg, nil
	}
	if _, err := os.Stat(path); err != nil {
		return cfg, nil
	}
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yamlx.Open(cfg, path); err != nil {
			return nil, fmt.Errorf("fbufdemo: reading config %s: %w", path, err)
		}
	default:
		if err := tomlx.Open(cfg, path); err != nil {
			return nil, fmt.Errorf("fbufdemo: reading config %s: %w", path, err)
		}
	}
	return cfg, nil
}
