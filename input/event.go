// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package input

import (
	"time"

	"github.com/gogpu/yengine/platform"
)

// Event is a queued input event. The set is closed:
// [MousePressed], [MouseReleased], [MouseWheel], [CursorMoved],
// [CursorEntered], [CursorLeft], [KeyPressed], [KeyReleased].
type Event interface {
	isInputEvent()
}

type (
	MousePressed  struct{ Button platform.MouseButton }
	MouseReleased struct{ Button platform.MouseButton }

	MouseWheel struct {
		Delta platform.ScrollDelta
		Phase platform.TouchPhase
	}

	CursorMoved   struct{ Position platform.Position }
	CursorEntered struct{}
	CursorLeft    struct{}

	KeyPressed  struct{ Key platform.Key }
	KeyReleased struct{ Key platform.Key }
)

func (MousePressed) isInputEvent()  {}
func (MouseReleased) isInputEvent() {}
func (MouseWheel) isInputEvent()    {}
func (CursorMoved) isInputEvent()   {}
func (CursorEntered) isInputEvent() {}
func (CursorLeft) isInputEvent()    {}
func (KeyPressed) isInputEvent()    {}
func (KeyReleased) isInputEvent()   {}

// TimedEvent is an Event with the time it was recorded.
type TimedEvent struct {
	At    time.Time
	Event Event
}
