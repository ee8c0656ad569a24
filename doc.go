// Package yengine bootstraps a windowed, GPU-accelerated application.
//
// # Overview
//
// GPU adapter and device acquisition can take hundreds of milliseconds.
// yengine opens a small borderless splash window immediately, draws a
// software-rendered image into it, and acquires the GPU on a background
// goroutine. When the GPU is ready, the window and the GPU objects are
// handed to the application and every later event goes to it.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/yengine"
//	    _ "github.com/gogpu/yengine/backend/webgpu"
//	    _ "github.com/gogpu/yengine/platform/desktop"
//	)
//
//	type game struct {
//	    yengine.BaseApp
//	    core *yengine.RenderCore
//	}
//
//	func (g *game) WindowResized(w, h uint32) { _ = g.core.Resize(w, h) }
//
//	func (g *game) WindowCloseRequested(loop platform.EventLoop) { loop.Exit() }
//
//	func main() {
//	    eng := yengine.New(func(w platform.Window, core *yengine.RenderCore) yengine.App {
//	        w.SetDecorated(true)
//	        w.SetResizable(true)
//	        return &game{core: core}
//	    })
//	    if err := eng.Run(); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
// # Phases
//
// The engine is in exactly one phase at a time:
//   - None: before the platform calls Resumed.
//   - Starting: the splash window is shown. A close request exits the
//     loop; non-empty resizes redraw the splash.
//   - Running: events go to the App. Promotion from Starting happens once,
//     on the first event after the GPU is ready, and that event is the
//     first one the App sees.
//
// # Backends and Platforms
//
// GPU backends (package backend) and window platforms (package platform)
// register themselves from init. Import the ones you want for their side
// effects, then select them by name with WithBackend or let the
// registries pick the default.
//
// # Errors
//
// Failures the application cannot recover from during bootstrap (no
// adapter, no device, undecodable splash image) go to the fatal handler,
// which exits the process unless replaced with WithFatalHandler.
// Invariant violations panic with ErrDuplicateGPUReady or
// ErrInvalidTransition.
package yengine

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0-alpha.1"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0

	// VersionPrerelease is the prerelease identifier
	VersionPrerelease = "alpha.1"
)
