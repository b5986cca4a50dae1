// Copyright (c) 2024, The fbuf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package base contains a collection of base infrastructure packages
// that the fbuf module builds on.
package base
