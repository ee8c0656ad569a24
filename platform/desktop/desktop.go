// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package desktop implements platform.Platform with GLFW.
//
// GLFW must be driven from the main OS thread. The package locks the main
// goroutine to it in init, so Platform.Run must be called from main.
//
// Window callbacks do not reach the handler directly. They queue events
// which Run dispatches after each PollEvents or WaitEvents returns, so the
// handler never re-enters GLFW from inside a callback. Redraw requests are
// coalesced per window and delivered after queued input.
//
// Software pixel surfaces are presented with an OpenGL 4.1 core context:
// the buffer is uploaded to a texture and drawn as a full-window quad.
//
//	import _ "github.com/gogpu/yengine/platform/desktop"
package desktop

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/yengine/platform"
)

func init() {
	// GLFW event processing must happen on the main thread.
	runtime.LockOSThread()

	platform.Register(platform.NameDesktop, func() platform.Platform {
		return &Platform{}
	})
}

// Platform is the GLFW platform.
type Platform struct{}

// Name returns platform.NameDesktop.
func (*Platform) Name() string { return platform.NameDesktop }

// Run initializes GLFW, calls h.Resumed once and dispatches events until
// the loop exits. All windows are destroyed before Run returns.
func (*Platform) Run(h platform.Handler) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("desktop: glfw init: %w", err)
	}
	defer glfw.Terminate()

	l := newEventLoop()
	defer l.destroyAll()

	h.Resumed(l)
	l.dispatch(h)

	for !l.exiting {
		if l.controlFlow == platform.ControlFlowPoll || l.redrawPending() {
			glfw.PollEvents()
		} else {
			glfw.WaitEvents()
		}
		l.dispatch(h)
	}
	platform.Logger().Debug("desktop: event loop exited")
	return nil
}
