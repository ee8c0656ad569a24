// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package input

import (
	"testing"
	"time"

	"github.com/gogpu/yengine/platform"
)

// fakeClock returns strictly increasing timestamps.
func fakeClock() func() time.Time {
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	n := 0
	return func() time.Time {
		n++
		return t0.Add(time.Duration(n) * time.Millisecond)
	}
}

func drain(a *Aggregator) []TimedEvent {
	var out []TimedEvent
	for {
		te, ok := a.PopEvent()
		if !ok {
			return out
		}
		out = append(out, te)
	}
}

func TestNewDefaults(t *testing.T) {
	a := New()
	if a.Cap() != DefaultCapacity {
		t.Errorf("Cap() = %d, want %d", a.Cap(), DefaultCapacity)
	}
	if a.Len() != 0 {
		t.Errorf("Len() = %d, want 0", a.Len())
	}
	if _, ok := a.PopEvent(); ok {
		t.Error("PopEvent() on empty queue returned ok")
	}
}

func TestCapacityDropsIncoming(t *testing.T) {
	a := New(WithCapacity(3), WithClock(fakeClock()))
	for i := 0; i < 5; i++ {
		a.RecordMouseButton(platform.MouseButton(i), true)
	}
	if a.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", a.Len())
	}

	got := drain(a)
	for i, te := range got {
		mp, ok := te.Event.(MousePressed)
		if !ok {
			t.Fatalf("event %d = %T, want MousePressed", i, te.Event)
		}
		if mp.Button != platform.MouseButton(i) {
			t.Errorf("event %d button = %v, want %v", i, mp.Button, platform.MouseButton(i))
		}
	}
	for i := 1; i < len(got); i++ {
		if !got[i].At.After(got[i-1].At) {
			t.Errorf("timestamps not increasing at %d", i)
		}
	}

	// Live state is updated even for dropped events.
	if !a.IsMouseButtonPressed(platform.MouseButton(4)) {
		t.Error("button 4 should be pressed although its event was dropped")
	}
}

func TestZeroCapacity(t *testing.T) {
	a := New(WithCapacity(-1))
	a.RecordCursorEntered()
	a.RecordCursorMoved(platform.Position{X: 1, Y: 1})
	if a.Len() != 0 {
		t.Errorf("Len() = %d, want 0", a.Len())
	}
	if got := a.CursorPosition(); got != (platform.Position{X: 1, Y: 1}) {
		t.Errorf("CursorPosition() = %v", got)
	}
}

func TestCursorMoveCoalescing(t *testing.T) {
	a := New()
	a.RecordCursorMoved(platform.Position{X: 1, Y: 1})
	a.RecordCursorMoved(platform.Position{X: 2, Y: 2})
	a.RecordCursorMoved(platform.Position{X: 3, Y: 3})

	got := drain(a)
	if len(got) != 1 {
		t.Fatalf("queued %d events, want 1", len(got))
	}
	cm, ok := got[0].Event.(CursorMoved)
	if !ok {
		t.Fatalf("event = %T, want CursorMoved", got[0].Event)
	}
	if cm.Position != (platform.Position{X: 3, Y: 3}) {
		t.Errorf("position = %v, want (3,3)", cm.Position)
	}
}

func TestCursorMoveCoalescingOnlyAdjacent(t *testing.T) {
	a := New()
	a.RecordCursorMoved(platform.Position{X: 1, Y: 1})
	a.RecordMouseButton(platform.MouseButtonLeft, true)
	a.RecordCursorMoved(platform.Position{X: 2, Y: 2})
	a.RecordCursorMoved(platform.Position{X: 3, Y: 3})

	got := drain(a)
	if len(got) != 3 {
		t.Fatalf("queued %d events, want 3", len(got))
	}
	if cm := got[0].Event.(CursorMoved); cm.Position.X != 1 {
		t.Errorf("first move = %v, want x=1", cm.Position)
	}
	if _, ok := got[1].Event.(MousePressed); !ok {
		t.Errorf("second event = %T, want MousePressed", got[1].Event)
	}
	if cm := got[2].Event.(CursorMoved); cm.Position.X != 3 {
		t.Errorf("last move = %v, want x=3", cm.Position)
	}
}

func TestCursorMoveWithoutCoalescing(t *testing.T) {
	a := New(WithCoalesceCursorMoves(false))
	a.RecordCursorMoved(platform.Position{X: 1, Y: 1})
	a.RecordCursorMoved(platform.Position{X: 2, Y: 2})
	a.RecordCursorMoved(platform.Position{X: 3, Y: 3})
	if a.Len() != 3 {
		t.Errorf("Len() = %d, want 3", a.Len())
	}
}

func TestCoalescingWhenFull(t *testing.T) {
	a := New(WithCapacity(2))
	a.RecordCursorEntered()
	a.RecordCursorMoved(platform.Position{X: 1, Y: 1})
	a.RecordCursorMoved(platform.Position{X: 5, Y: 5})

	got := drain(a)
	if len(got) != 2 {
		t.Fatalf("queued %d events, want 2", len(got))
	}
	if cm := got[1].Event.(CursorMoved); cm.Position.X != 5 {
		t.Errorf("coalesced move = %v, want x=5", cm.Position)
	}
}

func TestCursorDelta(t *testing.T) {
	a := New()
	a.RecordCursorMoved(platform.Position{X: 10, Y: 20})
	if d := a.CursorDelta(); d != (platform.Position{X: 10, Y: 20}) {
		t.Errorf("first delta = %v, want (10,20)", d)
	}
	if d := a.CursorDelta(); d != (platform.Position{}) {
		t.Errorf("second delta = %v, want zero", d)
	}

	a.RecordCursorMoved(platform.Position{X: 15, Y: 5})
	a.RecordCursorMoved(platform.Position{X: 12, Y: 8})
	if d := a.CursorDelta(); d != (platform.Position{X: 2, Y: -12}) {
		t.Errorf("delta = %v, want (2,-12)", d)
	}
	if got := a.CursorPosition(); got != (platform.Position{X: 12, Y: 8}) {
		t.Errorf("CursorPosition() = %v", got)
	}
}

func TestPressedSetsAreIdempotent(t *testing.T) {
	a := New()
	k := platform.Character("k")

	a.RecordKey(k, true)
	a.RecordKey(k, true)
	if !a.IsKeyPressed(k) {
		t.Error("k should be pressed after two presses")
	}
	a.RecordKey(k, false)
	if a.IsKeyPressed(k) {
		t.Error("k should be released after a single release")
	}

	a.RecordMouseButton(platform.MouseButtonRight, true)
	a.RecordMouseButton(platform.MouseButtonRight, true)
	a.RecordMouseButton(platform.MouseButtonRight, false)
	if a.IsMouseButtonPressed(platform.MouseButtonRight) {
		t.Error("right button should be released")
	}

	got := drain(a)
	want := []Event{
		KeyPressed{Key: k}, KeyPressed{Key: k}, KeyReleased{Key: k},
		MousePressed{Button: platform.MouseButtonRight},
		MousePressed{Button: platform.MouseButtonRight},
		MouseReleased{Button: platform.MouseButtonRight},
	}
	if len(got) != len(want) {
		t.Fatalf("queued %d events, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Event != want[i] {
			t.Errorf("event %d = %#v, want %#v", i, got[i].Event, want[i])
		}
	}
}

func TestSetPressedDoesNotQueue(t *testing.T) {
	a := New()
	a.SetKeyPressed(platform.Named(platform.KeyShift), true)
	a.SetMouseButtonPressed(platform.MouseButtonMiddle, true)
	if a.Len() != 0 {
		t.Errorf("Len() = %d, want 0", a.Len())
	}
	if !a.IsKeyPressed(platform.Named(platform.KeyShift)) {
		t.Error("Shift should be pressed")
	}
	if !a.IsMouseButtonPressed(platform.MouseButtonMiddle) {
		t.Error("middle button should be pressed")
	}
}

func TestHandle(t *testing.T) {
	a := New(WithCoalesceCursorMoves(false))
	events := []platform.Event{
		platform.MouseInput{Button: platform.MouseButtonLeft, State: platform.Pressed},
		platform.KeyboardInput{Key: platform.Named(platform.KeyEnter), State: platform.Pressed},
		platform.MouseWheel{Delta: platform.ScrollDelta{Unit: platform.ScrollLines, Y: -1}, Phase: platform.TouchPhaseMoved},
		platform.CursorMoved{Position: platform.Position{X: 4, Y: 2}},
		platform.CursorEntered{},
		platform.CursorLeft{},
	}
	for _, ev := range events {
		if !a.Handle(ev) {
			t.Errorf("Handle(%T) = false, want true", ev)
		}
	}
	if a.Handle(platform.Resized{Size: platform.Size{Width: 1, Height: 1}}) {
		t.Error("Handle(Resized) = true, want false")
	}
	if a.Handle(platform.RedrawRequested{}) {
		t.Error("Handle(RedrawRequested) = true, want false")
	}

	if a.Len() != len(events) {
		t.Fatalf("Len() = %d, want %d", a.Len(), len(events))
	}
	if !a.IsMouseButtonPressed(platform.MouseButtonLeft) {
		t.Error("left button should be pressed")
	}
	if !a.IsKeyPressed(platform.Named(platform.KeyEnter)) {
		t.Error("Enter should be pressed")
	}
	got := drain(a)
	if w, ok := got[2].Event.(MouseWheel); !ok || w.Delta.Y != -1 {
		t.Errorf("wheel event = %#v", got[2].Event)
	}
	if _, ok := got[4].Event.(CursorEntered); !ok {
		t.Errorf("event 4 = %T, want CursorEntered", got[4].Event)
	}
	if _, ok := got[5].Event.(CursorLeft); !ok {
		t.Errorf("event 5 = %T, want CursorLeft", got[5].Event)
	}
}

func TestRingWrapAround(t *testing.T) {
	r := newRing(3)
	for round := 0; round < 4; round++ {
		for i := 0; i < 3; i++ {
			if !r.pushBack(TimedEvent{Event: MousePressed{Button: platform.MouseButton(i)}}) {
				t.Fatalf("round %d push %d failed", round, i)
			}
		}
		if r.pushBack(TimedEvent{}) {
			t.Fatal("push into full ring succeeded")
		}
		first, _ := r.popFront()
		if first.Event.(MousePressed).Button != 0 {
			t.Errorf("round %d: first = %v", round, first.Event)
		}
		last, _ := r.popBack()
		if last.Event.(MousePressed).Button != 2 {
			t.Errorf("round %d: last = %v", round, last.Event)
		}
		mid, _ := r.popFront()
		if mid.Event.(MousePressed).Button != 1 {
			t.Errorf("round %d: mid = %v", round, mid.Event)
		}
		if r.len() != 0 {
			t.Fatalf("round %d: len = %d", round, r.len())
		}
	}
}
