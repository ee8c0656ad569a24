// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package desktop

import (
	"errors"
	"sync/atomic"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/yengine/platform"
)

var (
	errEmptySize     = errors.New("empty window size")
	errForeignWindow = errors.New("window was not created by this event loop")
)

type window struct {
	id   platform.WindowID
	win  *glfw.Window
	loop *eventLoop

	// framebuffer size, width<<32 | height
	size   atomic.Uint64
	redraw atomic.Bool
}

func newWindow(id platform.WindowID, gw *glfw.Window, l *eventLoop) *window {
	w := &window{id: id, win: gw, loop: l}
	fbw, fbh := gw.GetFramebufferSize()
	w.storeSize(fbw, fbh)

	gw.SetCloseCallback(func(gw *glfw.Window) {
		// The handler decides whether to close.
		gw.SetShouldClose(false)
		l.push(id, platform.CloseRequested{})
	})
	gw.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.storeSize(width, height)
		l.push(id, platform.Resized{Size: w.InnerSize()})
	})
	gw.SetPosCallback(func(_ *glfw.Window, x, y int) {
		l.push(id, platform.Moved{X: x, Y: y})
	})
	gw.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		l.push(id, platform.Focused{Focused: focused})
	})
	gw.SetMouseButtonCallback(func(_ *glfw.Window, b glfw.MouseButton, a glfw.Action, _ glfw.ModifierKey) {
		l.push(id, platform.MouseInput{Button: mouseButton(b), State: elementState(a)})
	})
	gw.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		l.push(id, platform.MouseWheel{
			Delta: platform.ScrollDelta{Unit: platform.ScrollLines, X: xoff, Y: yoff},
			Phase: platform.TouchPhaseMoved,
		})
	})
	gw.SetCursorPosCallback(func(gw *glfw.Window, x, y float64) {
		sx, sy := contentScale(gw)
		l.push(id, platform.CursorMoved{Position: platform.Position{X: x * sx, Y: y * sy}})
	})
	gw.SetCursorEnterCallback(func(_ *glfw.Window, entered bool) {
		if entered {
			l.push(id, platform.CursorEntered{})
		} else {
			l.push(id, platform.CursorLeft{})
		}
	})
	gw.SetKeyCallback(func(_ *glfw.Window, k glfw.Key, scancode int, a glfw.Action, _ glfw.ModifierKey) {
		l.push(id, platform.KeyboardInput{
			Key:    logicalKey(k, scancode, glfw.GetKeyName),
			State:  elementState(a),
			Repeat: a == glfw.Repeat,
		})
	})
	return w
}

// contentScale converts window coordinates to framebuffer pixels.
func contentScale(gw *glfw.Window) (float64, float64) {
	ww, wh := gw.GetSize()
	fw, fh := gw.GetFramebufferSize()
	if ww == 0 || wh == 0 {
		return 1, 1
	}
	return float64(fw) / float64(ww), float64(fh) / float64(wh)
}

func (w *window) storeSize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	w.size.Store(uint64(width)<<32 | uint64(uint32(height)))
}

func (w *window) ID() platform.WindowID { return w.id }

// InnerSize is safe for concurrent use.
func (w *window) InnerSize() platform.Size {
	v := w.size.Load()
	return platform.Size{Width: uint32(v >> 32), Height: uint32(v)}
}

// RequestRedraw is safe for concurrent use.
func (w *window) RequestRedraw() {
	if !w.redraw.Swap(true) {
		glfw.PostEmptyEvent()
	}
}

func (w *window) SetTitle(title string) { w.win.SetTitle(title) }

func (w *window) SetResizable(resizable bool) {
	w.win.SetAttrib(glfw.Resizable, boolHint(resizable))
}

func (w *window) SetDecorated(decorated bool) {
	w.win.SetAttrib(glfw.Decorated, boolHint(decorated))
}

// NativeHandle returns the *glfw.Window.
func (w *window) NativeHandle() any { return w.win }

func (w *window) destroy() {
	if w.win != nil {
		w.win.Destroy()
		w.win = nil
	}
}
