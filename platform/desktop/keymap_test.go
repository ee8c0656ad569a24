// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package desktop

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/yengine/platform"
)

func TestLogicalKey(t *testing.T) {
	layout := func(k glfw.Key, _ int) string {
		switch k {
		case glfw.KeyA:
			return "a"
		case glfw.KeySemicolon:
			return "ö"
		}
		return ""
	}

	tests := []struct {
		name string
		key  glfw.Key
		want platform.Key
	}{
		{"escape", glfw.KeyEscape, platform.Named(platform.KeyEscape)},
		{"keypad enter", glfw.KeyKPEnter, platform.Named(platform.KeyEnter)},
		{"right shift", glfw.KeyRightShift, platform.Named(platform.KeyShift)},
		{"space is named", glfw.KeySpace, platform.Named(platform.KeySpace)},
		{"f12", glfw.KeyF12, platform.Named(platform.KeyF12)},
		{"printable", glfw.KeyA, platform.Character("a")},
		{"layout dependent", glfw.KeySemicolon, platform.Character("ö")},
		{"unknown", glfw.KeyF25, platform.Named(platform.KeyUnidentified)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := logicalKey(tt.key, 0, layout); got != tt.want {
				t.Errorf("logicalKey(%v) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}

	if got := logicalKey(glfw.KeyA, 0, nil); got != platform.Named(platform.KeyUnidentified) {
		t.Errorf("logicalKey without layout = %v, want Unidentified", got)
	}
}

func TestMouseButton(t *testing.T) {
	tests := []struct {
		in   glfw.MouseButton
		want platform.MouseButton
	}{
		{glfw.MouseButtonLeft, platform.MouseButtonLeft},
		{glfw.MouseButtonRight, platform.MouseButtonRight},
		{glfw.MouseButtonMiddle, platform.MouseButtonMiddle},
		{glfw.MouseButton4, platform.MouseButtonBack},
		{glfw.MouseButton5, platform.MouseButtonForward},
		{glfw.MouseButton8, platform.MouseButton(glfw.MouseButton8)},
	}
	for _, tt := range tests {
		if got := mouseButton(tt.in); got != tt.want {
			t.Errorf("mouseButton(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestElementState(t *testing.T) {
	if elementState(glfw.Press) != platform.Pressed {
		t.Error("Press should map to Pressed")
	}
	if elementState(glfw.Repeat) != platform.Pressed {
		t.Error("Repeat should map to Pressed")
	}
	if elementState(glfw.Release) != platform.Released {
		t.Error("Release should map to Released")
	}
}

func TestWindowSizePacking(t *testing.T) {
	w := &window{}
	w.storeSize(1920, 1080)
	if got := w.InnerSize(); got != (platform.Size{Width: 1920, Height: 1080}) {
		t.Errorf("InnerSize() = %v", got)
	}
	w.storeSize(-1, 5)
	if got := w.InnerSize(); got != (platform.Size{Width: 0, Height: 5}) {
		t.Errorf("InnerSize() after negative width = %v", got)
	}
}

func TestPixelSurfaceResize(t *testing.T) {
	s := &pixelSurface{}
	if err := s.Resize(0, 10); err == nil {
		t.Error("Resize(0, 10) should fail")
	}
	if err := s.Resize(4, 3); err != nil {
		t.Fatalf("Resize(4, 3) error = %v", err)
	}
	if len(s.Buffer()) != 12 {
		t.Errorf("len(Buffer()) = %d, want 12", len(s.Buffer()))
	}
	if err := s.Resize(2, 2); err != nil {
		t.Fatalf("Resize(2, 2) error = %v", err)
	}
	if len(s.Buffer()) != 4 || s.Size() != (platform.Size{Width: 2, Height: 2}) {
		t.Errorf("after shrink: len = %d, size = %v", len(s.Buffer()), s.Size())
	}
}

func TestEventLoopDispatchOrder(t *testing.T) {
	l := newEventLoop()
	w := &window{id: 1}
	l.windows[1] = w
	l.order = []platform.WindowID{1}

	l.push(1, platform.CursorEntered{})
	l.push(1, platform.Focused{Focused: true})
	w.redraw.Store(true)

	rec := &recorder{}
	l.dispatch(rec)

	want := []platform.Event{
		platform.CursorEntered{},
		platform.Focused{Focused: true},
		platform.RedrawRequested{},
	}
	if len(rec.events) != len(want) {
		t.Fatalf("dispatched %d events, want %d", len(rec.events), len(want))
	}
	for i := range want {
		if rec.events[i] != want[i] {
			t.Errorf("event %d = %#v, want %#v", i, rec.events[i], want[i])
		}
	}
	if l.redrawPending() {
		t.Error("redraw still pending after dispatch")
	}
}

func TestEventLoopDispatchStopsOnExit(t *testing.T) {
	l := newEventLoop()
	l.push(1, platform.CloseRequested{})
	l.push(1, platform.CursorLeft{})

	rec := &recorder{exitOnClose: true}
	l.dispatch(rec)

	if len(rec.events) != 1 {
		t.Errorf("dispatched %d events after exit, want 1", len(rec.events))
	}
	if len(l.queue) != 0 {
		t.Errorf("queue length = %d, want 0", len(l.queue))
	}
}

type recorder struct {
	events      []platform.Event
	exitOnClose bool
}

func (r *recorder) Resumed(platform.EventLoop) {}

func (r *recorder) WindowEvent(loop platform.EventLoop, _ platform.WindowID, ev platform.Event) {
	r.events = append(r.events, ev)
	if _, ok := ev.(platform.CloseRequested); ok && r.exitOnClose {
		// Exit would post an empty event to GLFW; set the flag directly.
		loop.(*eventLoop).exiting = true
	}
}
