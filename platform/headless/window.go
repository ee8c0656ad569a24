// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package headless

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/gogpu/yengine/platform"
)

// Window is a headless window record.
type Window struct {
	id   platform.WindowID
	loop *Loop

	size     atomic.Uint64
	pending  atomic.Bool
	requests atomic.Int64

	mu      sync.Mutex
	attrs   platform.WindowAttributes
	surface *Surface
}

// ID returns the window identifier.
func (w *Window) ID() platform.WindowID { return w.id }

// InnerSize is safe for concurrent use.
func (w *Window) InnerSize() platform.Size {
	v := w.size.Load()
	return platform.Size{Width: uint32(v >> 32), Height: uint32(v)}
}

// SetInnerSize changes the reported inner size without queueing an event.
func (w *Window) SetInnerSize(s platform.Size) {
	w.size.Store(uint64(s.Width)<<32 | uint64(s.Height))
}

// RequestRedraw is safe for concurrent use.
func (w *Window) RequestRedraw() {
	w.requests.Add(1)
	w.pending.Store(true)
	w.loop.notify()
}

// RedrawRequests returns how many times RequestRedraw was called.
func (w *Window) RedrawRequests() int64 { return w.requests.Load() }

func (w *Window) SetTitle(title string) {
	w.mu.Lock()
	w.attrs.Title = title
	w.mu.Unlock()
}

func (w *Window) SetResizable(resizable bool) {
	w.mu.Lock()
	w.attrs.Resizable = resizable
	w.mu.Unlock()
}

func (w *Window) SetDecorated(decorated bool) {
	w.mu.Lock()
	w.attrs.Decorated = decorated
	w.mu.Unlock()
}

// Attributes returns the creation attributes as modified by the setters.
func (w *Window) Attributes() platform.WindowAttributes {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.attrs
}

// Surface returns the pixel surface bound to the window, if any.
func (w *Window) Surface() *Surface {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.surface
}

// NativeHandle returns the window itself.
func (w *Window) NativeHandle() any { return w }

// RawHandles reports no raw handles.
func (w *Window) RawHandles() (display, window uintptr, ok bool) {
	return 0, 0, false
}

var errEmptySurface = errors.New("headless: pixel surface size must be non-zero")

// Surface is an in-memory pixel surface.
type Surface struct {
	mu       sync.Mutex
	size     platform.Size
	buf      []uint32
	presents int
	last     []uint32
}

func (s *Surface) Resize(width, height uint32) error {
	if width == 0 || height == 0 {
		return errEmptySurface
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.size = platform.Size{Width: width, Height: height}
	s.buf = make([]uint32, int(width)*int(height))
	return nil
}

func (s *Surface) Size() platform.Size {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.size
}

func (s *Surface) Buffer() []uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf
}

// Present snapshots the buffer.
func (s *Surface) Present() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.size.Empty() {
		return errEmptySurface
	}
	s.presents++
	s.last = append(s.last[:0], s.buf...)
	return nil
}

// Presents returns how many times Present succeeded.
func (s *Surface) Presents() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.presents
}

// LastFrame returns a copy of the most recently presented buffer.
func (s *Surface) LastFrame() []uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]uint32(nil), s.last...)
}
