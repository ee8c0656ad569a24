// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package input aggregates raw window input into queryable state.
//
// An [Aggregator] keeps three things up to date:
//
//   - a bounded FIFO of timestamped [Event] values for consumers that want
//     to see every press, release and scroll in order;
//   - the sets of currently pressed keys and mouse buttons;
//   - the cursor position, plus a reference point for [Aggregator.CursorDelta].
//
// When the queue is full new events are dropped; events already queued are
// never evicted. Live state is updated regardless of the queue.
//
// # Usage
//
// Forward the delegate callbacks, or raw platform events, and drain the
// queue once per frame:
//
//	in := input.New()
//
//	func (a *myApp) KeyboardInput(key platform.Key, state platform.ElementState) {
//	    a.in.RecordKey(key, state == platform.Pressed)
//	}
//
//	for {
//	    te, ok := a.in.PopEvent()
//	    if !ok {
//	        break
//	    }
//	    ...
//	}
//
// An Aggregator is not safe for concurrent use. It is meant to be owned by
// the event thread.
package input
