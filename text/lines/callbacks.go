// Copyright (c) 2025, The fbuf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lines

// Watcher receives notification of structural changes to a
// FormattedText as they happen: lines added, removed, or edited in
// place, and the two bulk-reset events (the whole text replaced, or
// every tag discarded). A Watcher is never required to do anything
// with these; FormattedText keeps working correctly whether or not
// one is installed, and nothing a Watcher does can fail the edit
// that triggered it -- errors from watcher callbacks are not
// propagated back to the caller of the editing method.
type Watcher interface {
	OnLineAdded(line *FormattedLine)
	OnLineRemoved(line *FormattedLine)
	OnLineChanged(line *FormattedLine)
	OnTextCleared()
	OnTagsCleared()
}

func (ft *FormattedText) dispatchLineAdded(fl *FormattedLine) {
	if ft.watcher != nil {
		ft.watcher.OnLineAdded(fl)
	}
}

func (ft *FormattedText) dispatchLineRemoved(fl *FormattedLine) {
	if ft.watcher != nil {
		ft.watcher.OnLineRemoved(fl)
	}
}

func (ft *FormattedText) dispatchLineChanged(fl *FormattedLine) {
	if ft.watcher != nil {
		ft.watcher.OnLineChanged(fl)
	}
}

func (ft *FormattedText) dispatchTextCleared() {
	if ft.watcher != nil {
		ft.watcher.OnTextCleared()
	}
}

func (ft *FormattedText) dispatchTagsCleared() {
	if ft.watcher != nil {
		ft.watcher.OnTagsCleared()
	}
}
