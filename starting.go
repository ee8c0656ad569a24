package yengine

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/yengine/backend"
	"github.com/gogpu/yengine/platform"
)

// startingPhase shows the splash while the bootstrap goroutine acquires
// the GPU.
type startingPhase struct {
	log     *slog.Logger
	window  platform.Window
	surface platform.PixelSurface
	splash  *Splash

	// msgs has room for the single message the worker sends, so the
	// worker never blocks on it.
	msgs   chan bootstrapMsg
	worker *bootstrapWorker

	core *RenderCore
}

// newStartingPhase creates the splash window and its pixel surface,
// then starts the bootstrap worker.
func newStartingPhase(loop platform.EventLoop, o *options) (*startingPhase, error) {
	loop.SetControlFlow(platform.ControlFlowWait)

	data := o.splash
	if data == nil {
		data = defaultSplash
	}
	splash, err := DecodeSplash(data)
	if err != nil {
		return nil, err
	}

	b, err := resolveBackend(o)
	if err != nil {
		return nil, err
	}

	size := splash.WindowSize()
	pos := platform.Point{}
	if mon, ok := loop.PrimaryMonitor(); ok {
		pos = centerOn(mon.Size, size)
	}
	window, err := loop.CreateWindow(platform.WindowAttributes{
		Title:       o.title,
		Size:        size,
		Position:    &pos,
		Transparent: true,
		AlwaysOnTop: true,
	})
	if err != nil {
		return nil, fmt.Errorf("yengine: create splash window: %w", err)
	}
	surface, err := loop.CreatePixelSurface(window)
	if err != nil {
		return nil, fmt.Errorf("yengine: create pixel surface: %w", err)
	}

	p := &startingPhase{
		log:     o.log(),
		window:  window,
		surface: surface,
		splash:  splash,
		msgs:    make(chan bootstrapMsg, 1),
	}
	p.log.Debug("yengine: splash window created",
		"backend", b.Name(),
		"width", size.Width,
		"height", size.Height,
		"x", pos.X,
		"y", pos.Y)
	p.worker = spawnBootstrap(b, window, p.msgs, o)
	window.RequestRedraw()
	return p, nil
}

func resolveBackend(o *options) (backend.Backend, error) {
	if o.gpuBackend != nil {
		return o.gpuBackend, nil
	}
	b, err := backend.Lookup(o.backendName)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoBackend, err)
	}
	return b, nil
}

func (p *startingPhase) handleEvent(loop platform.EventLoop, ev platform.Event) {
	p.drain()
	// Keep events coming so the engine can notice readiness.
	p.window.RequestRedraw()

	switch ev := ev.(type) {
	case platform.CloseRequested:
		loop.Exit()
		// The window is destroyed once the loop returns; the surface
		// must go first.
		p.releaseCore()
	case platform.Resized:
		if ev.Size.Empty() {
			return
		}
		if err := p.surface.Resize(ev.Size.Width, ev.Size.Height); err != nil {
			p.log.Warn("yengine: splash resize failed", "err", err)
			return
		}
		p.drawSplash()
	}
}

// drain receives every pending message without blocking.
func (p *startingPhase) drain() {
	for {
		select {
		case msg := <-p.msgs:
			switch msg := msg.(type) {
			case gpuReadyMsg:
				if p.core != nil {
					panic(ErrDuplicateGPUReady)
				}
				p.core = msg.core
				p.log.Debug("yengine: GPU ready")
			}
		default:
			return
		}
	}
}

// releaseCore releases a RenderCore that never reached an application.
func (p *startingPhase) releaseCore() {
	if p.core != nil {
		p.core.Release()
		p.core = nil
		p.log.Debug("yengine: released undelivered GPU objects")
	}
}

func (p *startingPhase) ready() bool {
	return p.core != nil
}

func (p *startingPhase) drawSplash() {
	p.splash.Draw(p.surface.Buffer(), p.surface.Size())
	if err := p.surface.Present(); err != nil {
		p.log.Warn("yengine: splash present failed", "err", err)
	}
}
