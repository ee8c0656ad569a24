// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package headless

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/gogpu/yengine/platform"
)

type recorder struct {
	mu      sync.Mutex
	resumed int
	events  []platform.Event
	onEvent func(loop platform.EventLoop, ev platform.Event)
}

func (r *recorder) Resumed(platform.EventLoop) {
	r.mu.Lock()
	r.resumed++
	r.mu.Unlock()
}

func (r *recorder) WindowEvent(loop platform.EventLoop, _ platform.WindowID, ev platform.Event) {
	r.mu.Lock()
	r.events = append(r.events, ev)
	r.mu.Unlock()
	if r.onEvent != nil {
		r.onEvent(loop, ev)
	}
}

func (r *recorder) snapshot() []platform.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]platform.Event(nil), r.events...)
}

func TestDispatchOrder(t *testing.T) {
	l := NewLoop()
	w, err := l.CreateWindow(platform.DefaultWindowAttributes())
	if err != nil {
		t.Fatalf("CreateWindow() error = %v", err)
	}
	l.Send(w.ID(), platform.CursorEntered{})
	w.RequestRedraw()
	w.RequestRedraw()
	l.Send(w.ID(), platform.Focused{Focused: true})

	rec := &recorder{}
	l.Dispatch(rec)

	got := rec.snapshot()
	want := []platform.Event{
		platform.CursorEntered{},
		platform.Focused{Focused: true},
		platform.RedrawRequested{},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d events, want %d: %#v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %#v, want %#v", i, got[i], want[i])
		}
	}
	if n := w.(*Window).RedrawRequests(); n != 2 {
		t.Errorf("RedrawRequests() = %d, want 2", n)
	}
	if l.Pending() {
		t.Error("Pending() = true after Dispatch")
	}
}

func TestInitialResize(t *testing.T) {
	l := NewLoop(WithInitialResize())
	attrs := platform.DefaultWindowAttributes()
	w, _ := l.CreateWindow(attrs)

	rec := &recorder{}
	l.Dispatch(rec)
	got := rec.snapshot()
	if len(got) != 1 || got[0] != (platform.Resized{Size: attrs.Size}) {
		t.Errorf("events = %#v, want one Resized", got)
	}
	if w.InnerSize() != attrs.Size {
		t.Errorf("InnerSize() = %v, want %v", w.InnerSize(), attrs.Size)
	}
}

func TestCreateErrors(t *testing.T) {
	errWin := errors.New("no windows today")
	if _, err := NewLoop(WithWindowError(errWin)).CreateWindow(platform.DefaultWindowAttributes()); !errors.Is(err, errWin) {
		t.Errorf("CreateWindow() error = %v, want %v", err, errWin)
	}

	errSurf := errors.New("no surfaces today")
	l := NewLoop(WithSurfaceError(errSurf))
	w, _ := l.CreateWindow(platform.DefaultWindowAttributes())
	if _, err := l.CreatePixelSurface(w); !errors.Is(err, errSurf) {
		t.Errorf("CreatePixelSurface() error = %v, want %v", err, errSurf)
	}

	other, _ := NewLoop().CreateWindow(platform.DefaultWindowAttributes())
	if _, err := NewLoop().CreatePixelSurface(other); err == nil {
		t.Error("CreatePixelSurface() with a foreign window should fail")
	}
}

func TestSurface(t *testing.T) {
	l := NewLoop()
	w, _ := l.CreateWindow(platform.DefaultWindowAttributes())
	ps, err := l.CreatePixelSurface(w)
	if err != nil {
		t.Fatalf("CreatePixelSurface() error = %v", err)
	}
	if err := ps.Present(); err == nil {
		t.Error("Present() before Resize should fail")
	}
	if err := ps.Resize(0, 1); err == nil {
		t.Error("Resize(0, 1) should fail")
	}
	if err := ps.Resize(2, 2); err != nil {
		t.Fatalf("Resize() error = %v", err)
	}
	copy(ps.Buffer(), []uint32{1, 2, 3, 4})
	if err := ps.Present(); err != nil {
		t.Fatalf("Present() error = %v", err)
	}

	s := w.(*Window).Surface()
	if s == nil {
		t.Fatal("Surface() = nil")
	}
	if s.Presents() != 1 {
		t.Errorf("Presents() = %d, want 1", s.Presents())
	}
	if got := s.LastFrame(); len(got) != 4 || got[3] != 4 {
		t.Errorf("LastFrame() = %v", got)
	}
}

func TestMonitor(t *testing.T) {
	if _, ok := NewLoop().PrimaryMonitor(); ok {
		t.Error("PrimaryMonitor() ok without WithMonitor")
	}
	m := platform.Monitor{Name: "test", Size: platform.Size{Width: 1920, Height: 1080}}
	got, ok := NewLoop(WithMonitor(m)).PrimaryMonitor()
	if !ok || got != m {
		t.Errorf("PrimaryMonitor() = %v, %v", got, ok)
	}
}

func TestRunExitsOnHandlerExit(t *testing.T) {
	p := New()
	rec := &recorder{onEvent: func(loop platform.EventLoop, ev platform.Event) {
		if _, ok := ev.(platform.CloseRequested); ok {
			loop.Exit()
		}
	}}

	done := make(chan error, 1)
	go func() { done <- p.Run(rec) }()

	p.Loop().Send(1, platform.CursorEntered{})
	p.Loop().Send(1, platform.CloseRequested{})

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run() did not return after Exit")
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()
	if rec.resumed != 1 {
		t.Errorf("Resumed called %d times, want 1", rec.resumed)
	}
}

func TestRunStop(t *testing.T) {
	p := New()
	done := make(chan error, 1)
	go func() { done <- p.Run(&recorder{}) }()

	p.Stop()
	p.Stop()

	select {
	case err := <-done:
		if !errors.Is(err, ErrStopped) {
			t.Fatalf("Run() error = %v, want ErrStopped", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run() did not return after Stop")
	}
}

func TestRegistered(t *testing.T) {
	p := platform.Get(platform.NameHeadless)
	if p == nil {
		t.Fatal("Get(headless) = nil")
	}
	if p.Name() != platform.NameHeadless {
		t.Errorf("Name() = %q", p.Name())
	}
}
