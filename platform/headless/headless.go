// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package headless implements platform.Platform in memory.
//
// Windows exist only as records, pixel surfaces are plain buffers that
// count their presents, and events are injected with Loop.Send from any
// goroutine. It is meant for tests and for running the engine on machines
// without a display.
//
//	p := headless.New(headless.WithMonitor(platform.Monitor{Size: platform.Size{Width: 1920, Height: 1080}}))
//	go p.Run(handler)
//	p.Loop().Send(1, platform.CloseRequested{})
package headless

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/gogpu/yengine/platform"
)

// ErrStopped is returned by Run when Stop ends the loop.
var ErrStopped = errors.New("headless: stopped")

func init() {
	platform.Register(platform.NameHeadless, func() platform.Platform {
		return New()
	})
}

// Option configures a Platform.
type Option func(*options)

type options struct {
	monitor       *platform.Monitor
	windowErr     error
	surfaceErr    error
	windowResized bool
}

// WithMonitor sets the primary monitor. Without it there is no monitor.
func WithMonitor(m platform.Monitor) Option {
	return func(o *options) {
		o.monitor = &m
	}
}

// WithWindowError makes CreateWindow fail with err.
func WithWindowError(err error) Option {
	return func(o *options) {
		o.windowErr = err
	}
}

// WithSurfaceError makes CreatePixelSurface fail with err.
func WithSurfaceError(err error) Option {
	return func(o *options) {
		o.surfaceErr = err
	}
}

// WithInitialResize queues a Resized event carrying the requested size for
// every created window, the way desktop platforms do.
func WithInitialResize() Option {
	return func(o *options) {
		o.windowResized = true
	}
}

// Platform is the headless platform.
type Platform struct {
	loop     *Loop
	stop     chan struct{}
	stopOnce sync.Once
}

// New returns a headless platform.
func New(opts ...Option) *Platform {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Platform{
		loop: newLoop(o),
		stop: make(chan struct{}),
	}
}

// Name returns platform.NameHeadless.
func (*Platform) Name() string { return platform.NameHeadless }

// Loop returns the event loop, for injecting events and inspecting windows.
func (p *Platform) Loop() *Loop { return p.loop }

// Stop ends Run from any goroutine.
func (p *Platform) Stop() {
	p.stopOnce.Do(func() { close(p.stop) })
}

// Run calls h.Resumed, then dispatches injected events and redraw requests
// until the handler exits the loop or Stop is called. With
// ControlFlowWait it blocks while there is nothing to deliver.
func (p *Platform) Run(h platform.Handler) error {
	l := p.loop
	h.Resumed(l)
	for {
		l.Dispatch(h)
		if l.Exiting() {
			return nil
		}
		if l.ControlFlow() == platform.ControlFlowPoll {
			select {
			case <-p.stop:
				return ErrStopped
			default:
			}
			continue
		}
		select {
		case <-l.wake:
		case <-p.stop:
			return ErrStopped
		}
	}
}

type queuedEvent struct {
	id platform.WindowID
	ev platform.Event
}

// Loop is the headless platform.EventLoop. Send and the Window accessors
// are safe for concurrent use; the platform.EventLoop methods follow the
// usual event-thread rule.
type Loop struct {
	opts options

	mu      sync.Mutex
	queue   []queuedEvent
	windows []*Window

	wake        chan struct{}
	exiting     atomic.Bool
	controlFlow atomic.Uint32
}

func newLoop(o options) *Loop {
	return &Loop{opts: o, wake: make(chan struct{}, 1)}
}

// NewLoop returns a loop that is not attached to a Platform. Tests use it
// to drive a handler by hand through Dispatch.
func NewLoop(opts ...Option) *Loop {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return newLoop(o)
}

func (l *Loop) notify() {
	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Send queues ev for window id.
func (l *Loop) Send(id platform.WindowID, ev platform.Event) {
	l.mu.Lock()
	l.queue = append(l.queue, queuedEvent{id: id, ev: ev})
	l.mu.Unlock()
	l.notify()
}

// Dispatch delivers queued events in order, then one RedrawRequested per
// window with a pending request. Events queued during delivery wait for
// the next call. It stops early once the handler exits the loop.
func (l *Loop) Dispatch(h platform.Handler) {
	l.mu.Lock()
	batch := l.queue
	l.queue = nil
	windows := append([]*Window(nil), l.windows...)
	l.mu.Unlock()

	for _, qe := range batch {
		if l.Exiting() {
			return
		}
		h.WindowEvent(l, qe.id, qe.ev)
	}
	for _, w := range windows {
		if l.Exiting() {
			return
		}
		if w.pending.Swap(false) {
			h.WindowEvent(l, w.id, platform.RedrawRequested{})
		}
	}
}

// Pending reports whether Dispatch has anything to deliver.
func (l *Loop) Pending() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.queue) > 0 {
		return true
	}
	for _, w := range l.windows {
		if w.pending.Load() {
			return true
		}
	}
	return false
}

// Windows returns the windows created so far, in creation order.
func (l *Loop) Windows() []*Window {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]*Window(nil), l.windows...)
}

// Exit stops the loop.
func (l *Loop) Exit() {
	l.exiting.Store(true)
	l.notify()
}

// Exiting reports whether Exit has been called.
func (l *Loop) Exiting() bool { return l.exiting.Load() }

// SetControlFlow sets how Run waits between dispatches.
func (l *Loop) SetControlFlow(cf platform.ControlFlow) { l.controlFlow.Store(uint32(cf)) }

// ControlFlow returns the last value passed to SetControlFlow.
func (l *Loop) ControlFlow() platform.ControlFlow {
	return platform.ControlFlow(l.controlFlow.Load())
}

// PrimaryMonitor returns the monitor set with WithMonitor.
func (l *Loop) PrimaryMonitor() (platform.Monitor, bool) {
	if l.opts.monitor == nil {
		return platform.Monitor{}, false
	}
	return *l.opts.monitor, true
}

// CreateWindow records a window with the requested attributes.
func (l *Loop) CreateWindow(attrs platform.WindowAttributes) (platform.Window, error) {
	if l.opts.windowErr != nil {
		return nil, l.opts.windowErr
	}
	l.mu.Lock()
	w := &Window{
		id:    platform.WindowID(len(l.windows) + 1),
		loop:  l,
		attrs: attrs,
	}
	w.SetInnerSize(attrs.Size)
	l.windows = append(l.windows, w)
	l.mu.Unlock()

	if l.opts.windowResized {
		l.Send(w.id, platform.Resized{Size: attrs.Size})
	}
	return w, nil
}

// CreatePixelSurface returns an in-memory surface for w.
func (l *Loop) CreatePixelSurface(w platform.Window) (platform.PixelSurface, error) {
	if l.opts.surfaceErr != nil {
		return nil, l.opts.surfaceErr
	}
	hw, ok := w.(*Window)
	if !ok || hw.loop != l {
		return nil, errors.New("headless: window was not created by this loop")
	}
	s := &Surface{}
	hw.mu.Lock()
	hw.surface = s
	hw.mu.Unlock()
	return s, nil
}
