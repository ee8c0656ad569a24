package yengine

import "github.com/gogpu/yengine/platform"

// App is the application delegate driven by the running phase.
//
// Every method is called on the event thread. Embed BaseApp to get no-op
// defaults and override only what the application needs.
type App interface {
	// WindowRaw sees every event before it is dispatched. Returning true
	// consumes the event and no other method is called for it.
	WindowRaw(loop platform.EventLoop, ev platform.Event) bool

	// WindowResized is called with non-zero dimensions only.
	WindowResized(width, height uint32)

	// WindowCloseRequested is called when the user asks to close the
	// window. Call loop.Exit to quit; the engine never does it for you
	// once the application is running.
	WindowCloseRequested(loop platform.EventLoop)

	WindowRedraw()

	MouseButtonInput(button platform.MouseButton, state platform.ElementState)
	MouseWheelInput(delta platform.ScrollDelta, phase platform.TouchPhase)
	CursorMoved(pos platform.Position)
	CursorEntered()
	CursorLeft()
	KeyboardInput(key platform.Key, state platform.ElementState)
}

// AppFactory builds the application once the GPU is ready. It is called
// exactly once, on the event thread, and takes ownership of core.
type AppFactory func(window platform.Window, core *RenderCore) App

// BaseApp implements App with no-op methods.
type BaseApp struct{}

func (BaseApp) WindowRaw(platform.EventLoop, platform.Event) bool            { return false }
func (BaseApp) WindowResized(uint32, uint32)                                 {}
func (BaseApp) WindowCloseRequested(platform.EventLoop)                      {}
func (BaseApp) WindowRedraw()                                                {}
func (BaseApp) MouseButtonInput(platform.MouseButton, platform.ElementState) {}
func (BaseApp) MouseWheelInput(platform.ScrollDelta, platform.TouchPhase)    {}
func (BaseApp) CursorMoved(platform.Position)                                {}
func (BaseApp) CursorEntered()                                               {}
func (BaseApp) CursorLeft()                                                  {}
func (BaseApp) KeyboardInput(platform.Key, platform.ElementState)            {}

var _ App = BaseApp{}
