package yengine

import "github.com/gogpu/yengine/platform"

// runningPhase forwards window events to the application.
type runningPhase struct {
	app App

	// window is retained for the life of the phase even when the
	// application drops its reference.
	window platform.Window
}

func (p *runningPhase) handleEvent(loop platform.EventLoop, ev platform.Event) {
	if p.app.WindowRaw(loop, ev) {
		return
	}
	switch ev := ev.(type) {
	case platform.CloseRequested:
		p.app.WindowCloseRequested(loop)
	case platform.Resized:
		if !ev.Size.Empty() {
			p.app.WindowResized(ev.Size.Width, ev.Size.Height)
		}
	case platform.RedrawRequested:
		p.app.WindowRedraw()
	case platform.MouseInput:
		p.app.MouseButtonInput(ev.Button, ev.State)
	case platform.MouseWheel:
		p.app.MouseWheelInput(ev.Delta, ev.Phase)
	case platform.KeyboardInput:
		p.app.KeyboardInput(ev.Key, ev.State)
	case platform.CursorMoved:
		p.app.CursorMoved(ev.Position)
	case platform.CursorEntered:
		p.app.CursorEntered()
	case platform.CursorLeft:
		p.app.CursorLeft()
	}
}
