// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package platform

// Window is a native window.
//
// InnerSize and RequestRedraw are safe for concurrent use. All other
// methods must be called on the event thread.
type Window interface {
	// ID returns the identifier used in Handler.WindowEvent.
	ID() WindowID

	// InnerSize returns the size of the drawable area in physical pixels.
	InnerSize() Size

	// RequestRedraw asks the platform to deliver a RedrawRequested event.
	// Multiple requests before delivery collapse into one event.
	RequestRedraw()

	SetTitle(title string)
	SetResizable(resizable bool)
	SetDecorated(decorated bool)

	// NativeHandle returns the platform's own window object, for backends
	// that know how to bind a surface to it (for example *glfw.Window).
	NativeHandle() any
}

// RawWindow is implemented by windows that can expose raw OS handles.
// display is the display connection (X11 Display*, HINSTANCE or 0) and
// window is the native window (X11 Window, HWND, NSView*).
type RawWindow interface {
	RawHandles() (display, window uintptr, ok bool)
}

// WindowAttributes configures a new window.
type WindowAttributes struct {
	Title string
	Size  Size

	// Position places the window's top-left corner. Nil lets the platform
	// choose.
	Position *Point

	Decorated   bool
	Resizable   bool
	Transparent bool
	AlwaysOnTop bool
}

// Point is an integer screen position.
type Point struct {
	X, Y int
}

// DefaultWindowAttributes returns attributes for an ordinary decorated,
// resizable 800x600 window.
func DefaultWindowAttributes() WindowAttributes {
	return WindowAttributes{
		Title:     "yengine",
		Size:      Size{Width: 800, Height: 600},
		Decorated: true,
		Resizable: true,
	}
}

// Monitor describes a display.
type Monitor struct {
	Name string
	Size Size
}

// ControlFlow tells the event loop how to wait between iterations.
type ControlFlow uint8

const (
	// ControlFlowWait blocks until an event or redraw request arrives.
	ControlFlowWait ControlFlow = iota
	// ControlFlowPoll runs the loop continuously.
	ControlFlowPoll
)

// PixelSurface is a CPU pixel buffer presented into a window.
//
// Each pixel is one uint32 holding the four RGBA bytes of the pixel in
// native byte order.
type PixelSurface interface {
	// Resize reallocates the buffer. Width and height must be non-zero.
	Resize(width, height uint32) error

	// Size returns the current buffer dimensions.
	Size() Size

	// Buffer returns the pixel buffer, Size().Width*Size().Height long,
	// row-major. The slice is valid until the next Resize.
	Buffer() []uint32

	// Present shows the buffer contents in the window.
	Present() error
}

// EventLoop is the active event loop handed to Handler callbacks.
type EventLoop interface {
	// Exit stops the loop after the current callback returns.
	Exit()

	// Exiting reports whether Exit has been called.
	Exiting() bool

	// PrimaryMonitor returns the primary display, if known.
	PrimaryMonitor() (Monitor, bool)

	CreateWindow(attrs WindowAttributes) (Window, error)

	// CreatePixelSurface binds a software pixel surface to w.
	CreatePixelSurface(w Window) (PixelSurface, error)

	SetControlFlow(cf ControlFlow)
}

// Handler receives lifecycle and window events from a Platform.
type Handler interface {
	// Resumed is called when the application may create windows.
	// Platforms may call it more than once.
	Resumed(loop EventLoop)

	// WindowEvent delivers one event for window id.
	WindowEvent(loop EventLoop, id WindowID, ev Event)
}

// Platform runs an event loop.
type Platform interface {
	// Name returns the platform identifier (e.g. "desktop").
	Name() string

	// Run drives h until the loop exits. It must be called from the
	// thread the platform requires (the main thread on desktop systems).
	Run(h Handler) error
}
