// Copyright (c) 2024, The fbuf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package runes provides functions for rune slices that are
// equivalent to the standard library's strings package, for
// use where text is represented as []rune (already decoded
// Unicode code points) rather than a string.
package runes

import "unicode"

// EqualFold reports whether s and t, interpreted as UTF-8 code
// point sequences, are equal under simple Unicode case-folding.
func EqualFold(s, t []rune) bool {
	if len(s) != len(t) {
		return false
	}
	for i := range s {
		if unicode.ToLower(s[i]) != unicode.ToLower(t[i]) {
			return false
		}
	}
	return true
}

func equalRunes(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Index returns the index of the first instance of sep in s,
// or -1 if sep is not present in s or is empty.
func Index(s, sep []rune) int {
	if len(sep) == 0 {
		return -1
	}
	n := len(sep)
	if n > len(s) {
		return -1
	}
	for i := 0; i+n <= len(s); i++ {
		if equalRunes(s[i:i+n], sep) {
			return i
		}
	}
	return -1
}

// IndexFold is like Index but folds case before comparing.
func IndexFold(s, sep []rune) int {
	if len(sep) == 0 {
		return -1
	}
	n := len(sep)
	if n > len(s) {
		return -1
	}
	for i := 0; i+n <= len(s); i++ {
		if EqualFold(s[i:i+n], sep) {
			return i
		}
	}
	return -1
}

// IndexFunc returns the index of the first rune in s satisfying f,
// or -1 if none do.
func IndexFunc(s []rune, f func(rune) bool) int {
	for i, r := range s {
		if f(r) {
			return i
		}
	}
	return -1
}

// LastIndexFunc returns the index of the last rune in s satisfying f,
// or -1 if none do.
func LastIndexFunc(s []rune, f func(rune) bool) int {
	for i := len(s) - 1; i >= 0; i-- {
		if f(s[i]) {
			return i
		}
	}
	return -1
}

// Count counts the number of non-overlapping instances of sep in s.
func Count(s, sep []rune) int {
	if len(sep) == 0 {
		return 0
	}
	n := 0
	for {
		i := Index(s, sep)
		if i < 0 {
			break
		}
		n++
		s = s[i+len(sep):]
	}
	return n
}

// Replace returns a copy of s with the first n non-overlapping
// instances of old replaced by new. If n < 0, all instances are
// replaced. The result is always a freshly allocated slice, even
// when no replacement occurs.
func Replace(s, old, new []rune, n int) []rune {
	if len(old) == 0 || n == 0 {
		return append([]rune{}, s...)
	}
	m := Count(s, old)
	if m == 0 {
		return append([]rune{}, s...)
	}
	if n < 0 || m < n {
		n = m
	}
	out := make([]rune, 0, len(s)+n*(len(new)-len(old)))
	start := 0
	for i := 0; i < n; i++ {
		idx := Index(s[start:], old)
		if idx < 0 {
			break
		}
		j := start + idx
		out = append(out, s[start:j]...)
		out = append(out, new...)
		start = j + len(old)
	}
	out = append(out, s[start:]...)
	return out
}

// ReplaceAll returns a copy of s with all non-overlapping instances
// of old replaced by new.
func ReplaceAll(s, old, new []rune) []rune {
	return Replace(s, old, new, -1)
}

// Repeat returns a new slice consisting of count copies of r.
func Repeat(r []rune, count int) []rune {
	if count <= 0 {
		return []rune{}
	}
	out := make([]rune, 0, len(r)*count)
	for i := 0; i < count; i++ {
		out = append(out, r...)
	}
	return out
}

func genericSplit(s, sep []rune, sepSave, n int) [][]rune {
	if n == 0 {
		return nil
	}
	if len(sep) == 0 {
		return explode(s, n)
	}
	if n < 0 {
		n = Count(s, sep) + 1
	}
	if n > len(s)+1 {
		n = len(s) + 1
	}
	a := make([][]rune, n)
	n--
	i := 0
	for i < n {
		m := Index(s, sep)
		if m < 0 {
			break
		}
		a[i] = append([]rune{}, s[:m+sepSave]...)
		s = s[m+len(sep):]
		i++
	}
	a[i] = append([]rune{}, s...)
	return a[:i+1]
}

func explode(s []rune, n int) [][]rune {
	l := len(s)
	if n < 0 || n > l {
		n = l
	}
	a := make([][]rune, n)
	for i := 0; i < n-1; i++ {
		a[i] = []rune{s[0]}
		s = s[1:]
	}
	if n > 0 {
		a[n-1] = append([]rune{}, s...)
	}
	return a
}

// SplitN slices s into subslices separated by sep, up to n pieces.
func SplitN(s, sep []rune, n int) [][]rune {
	return genericSplit(s, sep, 0, n)
}

// Split slices s into all subslices separated by sep.
func Split(s, sep []rune) [][]rune {
	return genericSplit(s, sep, 0, -1)
}

// SplitAfterN slices s into subslices after each instance of sep,
// up to n pieces.
func SplitAfterN(s, sep []rune, n int) [][]rune {
	return genericSplit(s, sep, len(sep), n)
}

// SplitAfter slices s into all subslices after each instance of sep.
func SplitAfter(s, sep []rune) [][]rune {
	return genericSplit(s, sep, len(sep), -1)
}

// Fields splits s around runs of Unicode whitespace.
func Fields(s []rune) [][]rune {
	return FieldsFunc(s, unicode.IsSpace)
}

// FieldsFunc splits s around runs of runes satisfying f.
func FieldsFunc(s []rune, f func(rune) bool) [][]rune {
	result := [][]rune{}
	start := -1
	for i, r := range s {
		if f(r) {
			if start >= 0 {
				result = append(result, append([]rune{}, s[start:i]...))
				start = -1
			}
		} else if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		result = append(result, append([]rune{}, s[start:]...))
	}
	return result
}

// Join concatenates the elements of a, placing sep between them.
func Join(a [][]rune, sep []rune) []rune {
	if len(a) == 0 {
		return []rune{}
	}
	if len(a) == 1 {
		return append([]rune{}, a[0]...)
	}
	n := len(sep) * (len(a) - 1)
	for _, v := range a {
		n += len(v)
	}
	out := make([]rune, 0, n)
	out = append(out, a[0]...)
	for _, v := range a[1:] {
		out = append(out, sep...)
		out = append(out, v...)
	}
	return out
}

// Contains reports whether subslice is within b.
func Contains(b, subslice []rune) bool {
	return Index(b, subslice) >= 0
}

// ContainsRune reports whether r is within b.
func ContainsRune(b []rune, r rune) bool {
	for _, c := range b {
		if c == r {
			return true
		}
	}
	return false
}

// ContainsFunc reports whether any rune in b satisfies f.
func ContainsFunc(b []rune, f func(rune) bool) bool {
	return IndexFunc(b, f) >= 0
}
