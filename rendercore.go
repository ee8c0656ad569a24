package yengine

import (
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/yengine/backend"
)

// RenderCore holds the GPU objects needed to render into the window.
//
// The bootstrap goroutine creates it once; after that it belongs to the
// application that received it from AppFactory and is used on the event
// thread only.
type RenderCore struct {
	Instance backend.Instance
	Adapter  backend.Adapter
	Device   backend.Device
	Queue    backend.Queue
	Surface  backend.Surface

	// Config is the surface configuration last applied.
	Config backend.SurfaceConfiguration
}

// Resize reconfigures the surface for a new window size.
// Zero dimensions are ignored; minimized windows report them.
func (rc *RenderCore) Resize(width, height uint32) error {
	if width == 0 || height == 0 {
		return nil
	}
	if width == rc.Config.Width && height == rc.Config.Height {
		return nil
	}
	cfg := rc.Config
	cfg.Width, cfg.Height = width, height
	if err := rc.Surface.Configure(rc.Adapter, rc.Device, &cfg); err != nil {
		return fmt.Errorf("yengine: resize surface to %dx%d: %w", width, height, err)
	}
	rc.Config = cfg
	Logger().Debug("yengine: surface resized", "width", width, "height", height)
	return nil
}

// Provider exposes the device to libraries that accept a
// gpucontext.DeviceProvider.
func (rc *RenderCore) Provider() gpucontext.DeviceProvider {
	return coreProvider{rc}
}

// Release destroys the GPU objects in reverse creation order.
// It is safe to call more than once.
func (rc *RenderCore) Release() {
	if rc.Surface != nil {
		rc.Surface.Release()
		rc.Surface = nil
	}
	if rc.Device != nil {
		rc.Device.Destroy()
		rc.Device = nil
	}
	rc.Queue = nil
	if rc.Adapter != nil {
		rc.Adapter.Release()
		rc.Adapter = nil
	}
	if rc.Instance != nil {
		rc.Instance.Release()
		rc.Instance = nil
	}
}

type coreProvider struct {
	rc *RenderCore
}

func (p coreProvider) Device() gpucontext.Device             { return p.rc.Device }
func (p coreProvider) Queue() gpucontext.Queue               { return p.rc.Queue }
func (p coreProvider) Adapter() gpucontext.Adapter           { return p.rc.Adapter }
func (p coreProvider) SurfaceFormat() gputypes.TextureFormat { return p.rc.Config.Format }

// AdapterInfo reports AdapterTypeUnknown for virtual and unclassified
// adapters and when no adapter is held.
func (p coreProvider) AdapterInfo() gpucontext.AdapterInfo {
	if p.rc.Adapter == nil {
		return gpucontext.AdapterInfo{Type: gpucontext.AdapterTypeUnknown}
	}
	info := p.rc.Adapter.Info()
	return gpucontext.AdapterInfo{Name: info.Name, Type: adapterType(info.Type)}
}

func adapterType(t gputypes.DeviceType) gpucontext.AdapterType {
	switch t {
	case gputypes.DeviceTypeDiscreteGPU:
		return gpucontext.AdapterTypeDiscrete
	case gputypes.DeviceTypeIntegratedGPU:
		return gpucontext.AdapterTypeIntegrated
	case gputypes.DeviceTypeCPU:
		return gpucontext.AdapterTypeSoftware
	default:
		return gpucontext.AdapterTypeUnknown
	}
}

var _ gpucontext.DeviceProvider = coreProvider{}
