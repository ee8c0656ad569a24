// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package input

import (
	"time"

	"github.com/gogpu/yengine/platform"
)

// DefaultCapacity is the queue capacity used by New without WithCapacity.
const DefaultCapacity = 32

// Option configures an Aggregator.
type Option func(*options)

type options struct {
	capacity int
	coalesce bool
	now      func() time.Time
}

func defaultOptions() options {
	return options{
		capacity: DefaultCapacity,
		coalesce: true,
		now:      time.Now,
	}
}

// WithCapacity sets the maximum number of queued events.
// Negative values are treated as zero, which drops every event.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n < 0 {
			n = 0
		}
		o.capacity = n
	}
}

// WithCoalesceCursorMoves controls whether a CursorMoved event replaces a
// CursorMoved event at the back of the queue. Enabled by default.
func WithCoalesceCursorMoves(enabled bool) Option {
	return func(o *options) {
		o.coalesce = enabled
	}
}

// WithClock sets the function used to timestamp events.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// Aggregator buffers input events and tracks pressed state.
type Aggregator struct {
	queue    ring
	coalesce bool
	now      func() time.Time

	keys    map[platform.Key]struct{}
	buttons map[platform.MouseButton]struct{}

	cursor platform.Position
	// cursor position at the last CursorDelta call
	deltaRef platform.Position
}

// New returns an Aggregator with a queue capacity of DefaultCapacity and
// cursor-move coalescing enabled, unless overridden by opts.
func New(opts ...Option) *Aggregator {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Aggregator{
		queue:    newRing(o.capacity),
		coalesce: o.coalesce,
		now:      o.now,
		keys:     make(map[platform.Key]struct{}),
		buttons:  make(map[platform.MouseButton]struct{}),
	}
}

// RecordMouseButton updates the pressed-button set and queues
// MousePressed or MouseReleased.
func (a *Aggregator) RecordMouseButton(button platform.MouseButton, pressed bool) {
	a.SetMouseButtonPressed(button, pressed)
	if pressed {
		a.push(MousePressed{Button: button})
	} else {
		a.push(MouseReleased{Button: button})
	}
}

// RecordKey updates the pressed-key set and queues KeyPressed or KeyReleased.
func (a *Aggregator) RecordKey(key platform.Key, pressed bool) {
	a.SetKeyPressed(key, pressed)
	if pressed {
		a.push(KeyPressed{Key: key})
	} else {
		a.push(KeyReleased{Key: key})
	}
}

// RecordWheel queues a MouseWheel event.
func (a *Aggregator) RecordWheel(delta platform.ScrollDelta, phase platform.TouchPhase) {
	a.push(MouseWheel{Delta: delta, Phase: phase})
}

// RecordCursorMoved updates the cursor position and queues CursorMoved.
// With coalescing enabled, a CursorMoved at the back of the queue is
// replaced rather than followed.
func (a *Aggregator) RecordCursorMoved(pos platform.Position) {
	a.cursor = pos
	if a.coalesce {
		if back, ok := a.queue.back(); ok {
			if _, moved := back.Event.(CursorMoved); moved {
				a.queue.popBack()
			}
		}
	}
	a.push(CursorMoved{Position: pos})
}

// RecordCursorEntered queues CursorEntered.
func (a *Aggregator) RecordCursorEntered() {
	a.push(CursorEntered{})
}

// RecordCursorLeft queues CursorLeft.
func (a *Aggregator) RecordCursorLeft() {
	a.push(CursorLeft{})
}

// Handle records a platform event. Events with no input meaning are ignored.
// It reports whether ev was an input event.
func (a *Aggregator) Handle(ev platform.Event) bool {
	switch e := ev.(type) {
	case platform.MouseInput:
		a.RecordMouseButton(e.Button, e.State == platform.Pressed)
	case platform.KeyboardInput:
		a.RecordKey(e.Key, e.State == platform.Pressed)
	case platform.MouseWheel:
		a.RecordWheel(e.Delta, e.Phase)
	case platform.CursorMoved:
		a.RecordCursorMoved(e.Position)
	case platform.CursorEntered:
		a.RecordCursorEntered()
	case platform.CursorLeft:
		a.RecordCursorLeft()
	default:
		return false
	}
	return true
}

// PopEvent removes and returns the oldest queued event.
// ok is false when the queue is empty.
func (a *Aggregator) PopEvent() (te TimedEvent, ok bool) {
	return a.queue.popFront()
}

// Len returns the number of queued events.
func (a *Aggregator) Len() int {
	return a.queue.len()
}

// Cap returns the queue capacity.
func (a *Aggregator) Cap() int {
	return a.queue.cap()
}

// IsKeyPressed reports whether key is currently held.
func (a *Aggregator) IsKeyPressed(key platform.Key) bool {
	_, ok := a.keys[key]
	return ok
}

// SetKeyPressed overrides the pressed state of key without queueing an event.
func (a *Aggregator) SetKeyPressed(key platform.Key, pressed bool) {
	if pressed {
		a.keys[key] = struct{}{}
	} else {
		delete(a.keys, key)
	}
}

// IsMouseButtonPressed reports whether button is currently held.
func (a *Aggregator) IsMouseButtonPressed(button platform.MouseButton) bool {
	_, ok := a.buttons[button]
	return ok
}

// SetMouseButtonPressed overrides the pressed state of button without
// queueing an event.
func (a *Aggregator) SetMouseButtonPressed(button platform.MouseButton, pressed bool) {
	if pressed {
		a.buttons[button] = struct{}{}
	} else {
		delete(a.buttons, button)
	}
}

// CursorPosition returns the latest known cursor position.
func (a *Aggregator) CursorPosition() platform.Position {
	return a.cursor
}

// CursorDelta returns how far the cursor moved since the previous call and
// makes the current position the new reference point. The first call
// measures from the origin.
func (a *Aggregator) CursorDelta() platform.Position {
	d := a.cursor.Sub(a.deltaRef)
	a.deltaRef = a.cursor
	return d
}

func (a *Aggregator) push(ev Event) {
	a.queue.pushBack(TimedEvent{At: a.now(), Event: ev})
}
