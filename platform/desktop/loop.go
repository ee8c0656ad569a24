// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package desktop

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/yengine/platform"
)

type queuedEvent struct {
	id platform.WindowID
	ev platform.Event
}

// eventLoop is only touched from the main thread.
type eventLoop struct {
	windows     map[platform.WindowID]*window
	order       []platform.WindowID
	nextID      platform.WindowID
	queue       []queuedEvent
	controlFlow platform.ControlFlow
	exiting     bool
}

func newEventLoop() *eventLoop {
	return &eventLoop{
		windows: make(map[platform.WindowID]*window),
		nextID:  1,
	}
}

func (l *eventLoop) push(id platform.WindowID, ev platform.Event) {
	l.queue = append(l.queue, queuedEvent{id: id, ev: ev})
}

// dispatch delivers queued events, then one RedrawRequested per window
// with a pending request. It stops as soon as the handler exits the loop.
func (l *eventLoop) dispatch(h platform.Handler) {
	for len(l.queue) > 0 && !l.exiting {
		qe := l.queue[0]
		l.queue = l.queue[1:]
		h.WindowEvent(l, qe.id, qe.ev)
	}
	l.queue = l.queue[:0]

	for _, id := range l.order {
		if l.exiting {
			return
		}
		if w := l.windows[id]; w != nil && w.redraw.Swap(false) {
			h.WindowEvent(l, id, platform.RedrawRequested{})
		}
	}
}

func (l *eventLoop) redrawPending() bool {
	for _, w := range l.windows {
		if w.redraw.Load() {
			return true
		}
	}
	return false
}

func (l *eventLoop) destroyAll() {
	for _, id := range l.order {
		l.windows[id].destroy()
	}
	l.windows = nil
	l.order = nil
}

// Exit stops the loop after the current callback.
func (l *eventLoop) Exit() {
	l.exiting = true
	glfw.PostEmptyEvent()
}

func (l *eventLoop) Exiting() bool { return l.exiting }

func (l *eventLoop) SetControlFlow(cf platform.ControlFlow) { l.controlFlow = cf }

func (l *eventLoop) PrimaryMonitor() (platform.Monitor, bool) {
	m := glfw.GetPrimaryMonitor()
	if m == nil {
		return platform.Monitor{}, false
	}
	mode := m.GetVideoMode()
	if mode == nil {
		return platform.Monitor{}, false
	}
	return platform.Monitor{
		Name: m.GetName(),
		Size: platform.Size{Width: uint32(mode.Width), Height: uint32(mode.Height)},
	}, true
}

func (l *eventLoop) CreateWindow(attrs platform.WindowAttributes) (platform.Window, error) {
	if attrs.Size.Empty() {
		return nil, fmt.Errorf("desktop: window size %dx%d: %w",
			attrs.Size.Width, attrs.Size.Height, errEmptySize)
	}

	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, boolHint(attrs.Resizable))
	glfw.WindowHint(glfw.Decorated, boolHint(attrs.Decorated))
	glfw.WindowHint(glfw.Floating, boolHint(attrs.AlwaysOnTop))
	glfw.WindowHint(glfw.TransparentFramebuffer, boolHint(attrs.Transparent))
	// Shown after positioning so it does not jump.
	glfw.WindowHint(glfw.Visible, glfw.False)

	gw, err := glfw.CreateWindow(int(attrs.Size.Width), int(attrs.Size.Height), attrs.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("desktop: create window: %w", err)
	}
	if attrs.Position != nil {
		gw.SetPos(attrs.Position.X, attrs.Position.Y)
	}

	id := l.nextID
	l.nextID++
	w := newWindow(id, gw, l)
	l.windows[id] = w
	l.order = append(l.order, id)

	gw.Show()
	l.push(id, platform.Resized{Size: w.InnerSize()})

	platform.Logger().Debug("desktop: window created",
		"id", id, "title", attrs.Title, "size", attrs.Size)
	return w, nil
}

func (l *eventLoop) CreatePixelSurface(pw platform.Window) (platform.PixelSurface, error) {
	w, ok := pw.(*window)
	if !ok || l.windows[w.id] != w {
		return nil, fmt.Errorf("desktop: %T: %w", pw, errForeignWindow)
	}
	return newPixelSurface(w)
}

func boolHint(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}
