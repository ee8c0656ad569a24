// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package platform defines the windowing contract consumed by yengine.
//
// The engine never talks to a windowing system directly. It receives events
// through a [Handler], creates windows and software pixel surfaces through an
// [EventLoop], and hands [Window] values to GPU backends so they can bind a
// presentable surface.
//
// # Threading
//
// All Handler callbacks and all EventLoop methods run on the platform's
// event thread. Exactly two Window methods may be called from other
// goroutines: [Window.InnerSize] and [Window.RequestRedraw]. The GPU
// bootstrap worker relies on both.
//
// # Implementations
//
// Platforms register themselves on import, like GPU backends do:
//
//	import _ "github.com/gogpu/yengine/platform/desktop" // GLFW
//
// [Default] then returns the highest-priority registered platform.
package platform
