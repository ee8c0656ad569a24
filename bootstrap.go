package yengine

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/yengine/backend"
	"github.com/gogpu/yengine/platform"
)

// bootstrapMsg is sent from the bootstrap goroutine to the starting phase.
type bootstrapMsg interface {
	isBootstrapMsg()
}

// gpuReadyMsg carries the fully configured RenderCore.
type gpuReadyMsg struct {
	core *RenderCore
}

func (gpuReadyMsg) isBootstrapMsg() {}

const deviceLabel = "Y-ENGINE GPU Device"

// bootstrapWorker acquires the GPU off the event thread. It is started
// once and never cancelled; done is closed when the goroutine returns.
type bootstrapWorker struct {
	done chan struct{}
}

// spawnBootstrap starts the worker. On success exactly one gpuReadyMsg is
// sent on tx and a redraw is requested so the event thread notices it.
// On failure nothing is sent and o.fatalf is called.
func spawnBootstrap(b backend.Backend, window platform.Window, tx chan<- bootstrapMsg, o *options) *bootstrapWorker {
	w := &bootstrapWorker{done: make(chan struct{})}
	go func() {
		defer close(w.done)
		core, err := initGPU(b, window, o)
		if err != nil {
			o.fatalf(err)
			return
		}
		tx <- gpuReadyMsg{core: core}
		window.RequestRedraw()
	}()
	return w
}

// initGPU runs the blocking acquisition sequence: instance, surface,
// adapter, device, then surface configuration for the window's current
// size. Partially created objects are released on error.
func initGPU(b backend.Backend, window platform.Window, o *options) (_ *RenderCore, err error) {
	log := o.log()
	core := &RenderCore{}
	defer func() {
		if err != nil {
			core.Release()
		}
	}()

	core.Instance, err = b.CreateInstance(&backend.InstanceDescriptor{
		Backends: gputypes.BackendsPrimary,
		Debug:    o.debug,
	})
	if err != nil {
		return nil, fmt.Errorf("yengine: create %s instance: %w", b.Name(), err)
	}

	core.Surface, err = core.Instance.CreateSurface(window)
	if err != nil {
		return nil, fmt.Errorf("yengine: create surface: %w", err)
	}

	core.Adapter, err = core.Instance.RequestAdapter(&backend.AdapterOptions{
		PowerPreference:   o.powerPreference,
		CompatibleSurface: core.Surface,
	})
	if err != nil {
		return nil, fmt.Errorf("yengine: request adapter: %w", err)
	}
	info := core.Adapter.Info()
	log.Info("yengine: adapter selected",
		"name", info.Name,
		"vendor", info.Vendor,
		"type", info.Type,
		"backend", info.Backend)

	core.Device, core.Queue, err = core.Adapter.RequestDevice(&backend.DeviceDescriptor{Label: deviceLabel})
	if err != nil {
		return nil, fmt.Errorf("yengine: request device: %w", err)
	}

	caps := core.Surface.Capabilities(core.Adapter)
	format, err := backend.PreferredFormat(caps.Formats)
	if err != nil {
		return nil, fmt.Errorf("yengine: choose surface format: %w", err)
	}

	size := window.InnerSize()
	cfg := backend.SurfaceConfiguration{
		Usage:                      gputypes.TextureUsageRenderAttachment,
		Format:                     format,
		Width:                      size.Width,
		Height:                     size.Height,
		PresentMode:                backend.PresentModeAutoVsync,
		AlphaMode:                  backend.CompositeAlphaModeAuto,
		DesiredMaximumFrameLatency: o.maxFrameLatency,
	}
	if err = core.Surface.Configure(core.Adapter, core.Device, &cfg); err != nil {
		return nil, fmt.Errorf("yengine: configure surface: %w", err)
	}
	core.Config = cfg
	log.Debug("yengine: surface configured",
		"format", format,
		"width", cfg.Width,
		"height", cfg.Height)
	return core, nil
}
