// Copyright (c) 2025, The fbuf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command fbufdemo is a small terminal driver for the fbuf text
// buffer: it loads a file, applies an edit script to it, watches it
// for external changes, and renders the formatted view.
package main

func main() {
	Execute()
}
