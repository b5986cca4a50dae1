// Copyright (c) 2025, The fbuf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fsx provides small filesystem helpers used for locating
// config files that may live in any of several candidate directories.
package fsx

import (
	"os"
	"path/filepath"
)

// FileExists reports whether filePath names a regular file (not a
// directory). A missing path is reported as (false, nil), not an
// error; only a genuine stat failure (permissions, a bad path
// component) is returned as an error.
func FileExists(filePath string) (bool, error) {
	info, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return !info.IsDir(), nil
}

// FindFilesOnPaths looks for each of files under each of paths, in
// path order, and returns the absolute path of every match found. A
// file missing from every path is simply absent from the result,
// never an error.
func FindFilesOnPaths(paths []string, files ...string) []string {
	var found []string
	for _, path := range paths {
		for _, name := range files {
			fp := filepath.Join(path, name)
			if ok, _ := FileExists(fp); ok {
				found = append(found, fp)
			}
		}
	}
	return found
}
