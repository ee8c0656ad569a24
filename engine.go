package yengine

import (
	"fmt"

	"github.com/gogpu/yengine/platform"
)

// PhaseKind identifies the engine phase.
type PhaseKind uint8

const (
	// PhaseNone means the platform has not resumed the engine yet.
	PhaseNone PhaseKind = iota
	// PhaseStarting shows the splash while the GPU is acquired.
	PhaseStarting
	// PhaseRunning drives the application.
	PhaseRunning
)

// String returns the phase name.
func (k PhaseKind) String() string {
	switch k {
	case PhaseNone:
		return "None"
	case PhaseStarting:
		return "Starting"
	case PhaseRunning:
		return "Running"
	default:
		return fmt.Sprintf("PhaseKind(%d)", uint8(k))
	}
}

type phase interface {
	handleEvent(loop platform.EventLoop, ev platform.Event)
}

// emptyPhase only exists inside promote.
type emptyPhase struct{}

func (emptyPhase) handleEvent(platform.EventLoop, platform.Event) {}

// Engine drives an application through the starting and running phases.
// It implements platform.Handler and must only be used from the event
// thread.
//
// Example:
//
//	eng := yengine.New(func(w platform.Window, core *yengine.RenderCore) yengine.App {
//	    return &game{window: w, core: core}
//	})
//	if err := eng.Run(); err != nil {
//	    log.Fatal(err)
//	}
type Engine struct {
	factory AppFactory
	opts    options

	phase      phase
	promotions int
}

// New returns an engine that builds its application with factory.
// It panics if factory is nil.
func New(factory AppFactory, opts ...Option) *Engine {
	if factory == nil {
		panic(ErrNilFactory)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Engine{factory: factory, opts: o}
}

// Run runs the platform event loop with the engine as handler and returns
// when the loop exits. The platform is the one given with WithPlatform,
// else platform.Default.
func (e *Engine) Run() error {
	p := e.opts.platform
	if p == nil {
		p = platform.Default()
	}
	if p == nil {
		return ErrNoPlatform
	}
	e.opts.log().Debug("yengine: starting event loop", "platform", p.Name())
	defer e.shutdown()
	return p.Run(e)
}

// Phase reports the current phase.
func (e *Engine) Phase() PhaseKind {
	switch e.phase.(type) {
	case *startingPhase:
		return PhaseStarting
	case *runningPhase:
		return PhaseRunning
	default:
		return PhaseNone
	}
}

// Resumed creates the starting phase the first time it is called.
// Construction failures go to the fatal handler.
func (e *Engine) Resumed(loop platform.EventLoop) {
	if e.phase != nil {
		return
	}
	p, err := newStartingPhase(loop, &e.opts)
	if err != nil {
		e.opts.fatalf(err)
		return
	}
	e.phase = p
}

// WindowEvent promotes to the running phase if the GPU is ready, then
// hands ev to the current phase. Events before Resumed are dropped.
func (e *Engine) WindowEvent(loop platform.EventLoop, _ platform.WindowID, ev platform.Event) {
	if e.phase == nil {
		return
	}
	if sp, ok := e.phase.(*startingPhase); ok && sp.ready() {
		e.promote()
	}
	e.phase.handleEvent(loop, ev)
}

// promote moves the window and RenderCore out of the starting phase into
// a new running phase. The engine holds emptyPhase while the factory runs.
func (e *Engine) promote() {
	if e.promotions > 0 {
		panic(fmt.Errorf("%w: already promoted", ErrInvalidTransition))
	}
	sp, ok := e.phase.(*startingPhase)
	if !ok {
		panic(fmt.Errorf("%w: promote from %T", ErrInvalidTransition, e.phase))
	}
	e.phase = emptyPhase{}
	e.promotions++

	core := sp.core
	sp.core = nil
	app := e.factory(sp.window, core)
	e.phase = &runningPhase{app: app, window: sp.window}
	e.opts.log().Info("yengine: promoted to running phase",
		"format", core.Config.Format,
		"width", core.Config.Width,
		"height", core.Config.Height)
}

// shutdown releases a RenderCore that reached the channel after the last
// event. Its window may already be destroyed by then; a core drained
// before a close request is released by the starting phase instead.
func (e *Engine) shutdown() {
	if sp, ok := e.phase.(*startingPhase); ok {
		sp.drain()
		sp.releaseCore()
	}
}

var _ platform.Handler = (*Engine)(nil)
