// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build windows

package desktop

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// RawHandles returns the module HINSTANCE and the HWND.
func (w *window) RawHandles() (display, win uintptr, ok bool) {
	if w.win == nil {
		return 0, 0, false
	}
	var module windows.Handle
	if err := windows.GetModuleHandleEx(0, nil, &module); err != nil {
		return 0, 0, false
	}
	win = uintptr(unsafe.Pointer(w.win.GetWin32Window()))
	return uintptr(module), win, win != 0
}
