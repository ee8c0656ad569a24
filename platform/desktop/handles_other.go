// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !windows && !((linux && !wayland) || freebsd || netbsd || openbsd)

package desktop

// RawHandles is unsupported here; backends that need raw handles report
// the window as an unsupported target.
func (w *window) RawHandles() (display, win uintptr, ok bool) {
	return 0, 0, false
}
