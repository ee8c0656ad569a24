// Command ydemo opens the yengine splash, waits for the GPU and then logs
// the input it receives until the window is closed or Escape is pressed.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/yengine"
	"github.com/gogpu/yengine/backend"
	_ "github.com/gogpu/yengine/backend/native"
	_ "github.com/gogpu/yengine/backend/rust"
	_ "github.com/gogpu/yengine/backend/webgpu"
	"github.com/gogpu/yengine/input"
	"github.com/gogpu/yengine/platform"
	_ "github.com/gogpu/yengine/platform/desktop"
)

type demo struct {
	yengine.BaseApp

	window platform.Window
	core   *yengine.RenderCore
	input  *input.Aggregator
	loop   platform.EventLoop
	log    *slog.Logger
}

func newDemo(w platform.Window, core *yengine.RenderCore) yengine.App {
	w.SetResizable(true)
	w.SetDecorated(true)
	w.SetTitle("Y-ENGINE EXAMPLE")
	return &demo{
		window: w,
		core:   core,
		input:  input.New(),
		log:    yengine.Logger(),
	}
}

func (d *demo) WindowRaw(loop platform.EventLoop, _ platform.Event) bool {
	d.loop = loop
	return false
}

func (d *demo) WindowResized(width, height uint32) {
	if err := d.core.Resize(width, height); err != nil {
		d.log.Warn("resize failed", "err", err)
	}
	d.window.RequestRedraw()
}

func (d *demo) WindowCloseRequested(loop platform.EventLoop) {
	d.core.Device.Poll(true)
	d.core.Release()
	loop.Exit()
}

func (d *demo) WindowRedraw() {
	d.core.Device.Poll(false)
	for {
		te, ok := d.input.PopEvent()
		if !ok {
			break
		}
		d.log.Info("input", "at", te.At.Format("15:04:05.000"), "event", te.Event)
	}
	if delta := d.input.CursorDelta(); delta != (platform.Position{}) {
		d.log.Debug("cursor delta", "dx", delta.X, "dy", delta.Y)
	}
}

func (d *demo) MouseButtonInput(b platform.MouseButton, s platform.ElementState) {
	d.input.RecordMouseButton(b, s == platform.Pressed)
	d.window.RequestRedraw()
}

func (d *demo) MouseWheelInput(delta platform.ScrollDelta, phase platform.TouchPhase) {
	d.input.RecordWheel(delta, phase)
	d.window.RequestRedraw()
}

func (d *demo) CursorMoved(pos platform.Position) {
	d.input.RecordCursorMoved(pos)
	d.window.RequestRedraw()
}

func (d *demo) CursorEntered() { d.input.RecordCursorEntered() }
func (d *demo) CursorLeft()    { d.input.RecordCursorLeft() }

func (d *demo) KeyboardInput(k platform.Key, s platform.ElementState) {
	d.input.RecordKey(k, s == platform.Pressed)
	if k == platform.Named(platform.KeyEscape) && s == platform.Pressed && d.loop != nil {
		d.loop.Exit()
		return
	}
	d.window.RequestRedraw()
}

func main() {
	var (
		backendName  = flag.String("backend", "", "GPU backend (empty for default)")
		platformName = flag.String("platform", "", "platform (empty for default)")
		title        = flag.String("title", yengine.DefaultTitle, "splash window title")
		latency      = flag.Uint("latency", 2, "maximum frame latency")
		debug        = flag.Bool("debug", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	yengine.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	opts := []yengine.Option{
		yengine.WithTitle(*title),
		yengine.WithBackend(*backendName),
		yengine.WithMaxFrameLatency(uint32(*latency)),
	}
	if *platformName != "" {
		p := platform.Get(*platformName)
		if p == nil {
			log.Fatalf("platform %q not available (have %v)", *platformName, platform.Available())
		}
		opts = append(opts, yengine.WithPlatform(p))
	}
	log.Printf("backends: %v, platforms: %v", backend.Available(), platform.Available())

	if err := yengine.New(newDemo, opts...).Run(); err != nil {
		log.Fatalf("ydemo: %v", err)
	}
}
