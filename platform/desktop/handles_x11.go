// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build (linux && !wayland) || freebsd || netbsd || openbsd

package desktop

import (
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// RawHandles returns the Xlib Display* and Window.
func (w *window) RawHandles() (display, win uintptr, ok bool) {
	if w.win == nil {
		return 0, 0, false
	}
	display = uintptr(unsafe.Pointer(glfw.GetX11Display()))
	win = uintptr(w.win.GetX11Window())
	return display, win, display != 0 && win != 0
}
