// Copyright (c) 2024, The fbuf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stack provides a generic stack implementation.
package stack

// Stack provides a generic stack using a slice.
type Stack[T any] []T

// Push pushes item(s) onto the stack.
func (st *Stack[T]) Push(it ...T) {
	*st = append(*st, it...)
}

// Pop pops the top item off the stack.
// Returns nil / zero value if stack is empty.
func (st *Stack[T]) Pop() T {
	n := len(*st)
	if n == 0 {
		var zv T
		return zv
	}
	li := (*st)[n-1]
	*st = (*st)[:n-1]
	return li
}

// Peek returns the last element on the stack.
// Returns nil / zero value if stack is empty.
func (st *Stack[T]) Peek() T {
	n := len(*st)
	if n == 0 {
		var zv T
		return zv
	}
	return (*st)[n-1]
}

// Len returns the number of elements on the stack.
func (st *Stack[T]) Len() int {
	return len(*st)
}

// Empty returns true if the stack has no elements.
func (st *Stack[T]) Empty() bool {
	return len(*st) == 0
}

// PopMatching searches the stack top-down for the first element
// satisfying match, popping and discarding it and returning it with
// true. Every element popped along the way that does not satisfy
// match is pushed back in its original relative order, so a failed
// or successful search both leave the remaining stack exactly as it
// was except for the one matched element. Returns the zero value and
// false if no element satisfies match, in which case the stack is
// left unchanged.
//
// This is the shape tag-pair matching needs: the most recently opened
// tag is the first candidate for a closing tag, but an unrelated tag
// opened in between must not be discarded just because it didn't
// match.
func (st *Stack[T]) PopMatching(match func(T) bool) (T, bool) {
	var skipped []T
	for !st.Empty() {
		top := st.Pop()
		if match(top) {
			for i := len(skipped) - 1; i >= 0; i-- {
				st.Push(skipped[i])
			}
			return top, true
		}
		skipped = append(skipped, top)
	}
	for i := len(skipped) - 1; i >= 0; i-- {
		st.Push(skipped[i])
	}
	var zv T
	return zv, false
}
