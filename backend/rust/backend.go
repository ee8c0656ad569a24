//go:build rust

package rust

import (
	"fmt"
	"sync"

	"github.com/go-webgpu/webgpu/wgpu"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/yengine/backend"
)

// init registers the rust backend on package import.
func init() {
	backend.Register(backend.NameRust, func() backend.Backend {
		return &RustBackend{}
	})
}

var (
	initOnce sync.Once
	initErr  error
)

// RustBackend creates wgpu-native instances through go-webgpu/webgpu.
type RustBackend struct{}

// Name returns the backend identifier.
func (*RustBackend) Name() string {
	return backend.NameRust
}

// CreateInstance loads wgpu-native on first use and creates an instance.
// The go-webgpu instance descriptor carries no backend or validation
// selection; wgpu-native reads WGPU_BACKEND and its debug settings from
// the environment, so desc is only logged.
func (*RustBackend) CreateInstance(desc *backend.InstanceDescriptor) (backend.Instance, error) {
	initOnce.Do(func() { initErr = wgpu.Init() })
	if initErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrLibraryNotFound, initErr)
	}

	instance, err := wgpu.CreateInstance(nil)
	if err != nil {
		return nil, fmt.Errorf("rust: instance creation failed: %w", err)
	}
	if desc != nil {
		backend.Logger().Debug("rust: instance created", "backends", desc.Backends, "debug", desc.Debug)
	}
	return &instanceHandle{inst: instance}, nil
}

type instanceHandle struct {
	inst *wgpu.Instance
}

func (i *instanceHandle) CreateSurface(target backend.SurfaceTarget) (backend.Surface, error) {
	raw, ok := target.(backend.RawSurfaceTarget)
	if !ok {
		return nil, fmt.Errorf("rust: %T: %w", target, backend.ErrUnsupportedTarget)
	}
	display, window, ok := raw.RawHandles()
	if !ok {
		return nil, fmt.Errorf("rust: raw handles unavailable: %w", backend.ErrUnsupportedTarget)
	}
	s, err := createSurface(i.inst, display, window)
	if err != nil {
		return nil, fmt.Errorf("rust: surface creation failed: %w", err)
	}
	return &surfaceHandle{surface: s}, nil
}

func (i *instanceHandle) RequestAdapter(opts *backend.AdapterOptions) (backend.Adapter, error) {
	wopts := &wgpu.RequestAdapterOptions{}
	if opts != nil {
		wopts.PowerPreference = opts.PowerPreference
		if s, ok := opts.CompatibleSurface.(*surfaceHandle); ok {
			wopts.CompatibleSurface = s.surface.Handle()
		}
	}
	adapter, err := i.inst.RequestAdapter(wopts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %w", backend.ErrNoAdapter, ErrNoGPU, err)
	}
	return &adapterHandle{adapter: adapter}, nil
}

func (i *instanceHandle) Release() {
	if i.inst != nil {
		i.inst.Release()
		i.inst = nil
	}
}

type adapterHandle struct {
	adapter *wgpu.Adapter
}

func (a *adapterHandle) Info() backend.AdapterInfo {
	info, err := a.adapter.GetInfo()
	if err != nil || info == nil {
		return backend.AdapterInfo{Name: "unknown", Backend: "wgpu-native"}
	}
	return backend.AdapterInfo{
		Name:    info.Device,
		Vendor:  info.Vendor,
		Backend: backendTypeToString(info.BackendType),
		Type:    deviceType(info.AdapterType),
	}
}

// RequestDevice ignores the label; go-webgpu's descriptor has no label.
func (a *adapterHandle) RequestDevice(*backend.DeviceDescriptor) (backend.Device, backend.Queue, error) {
	device, err := a.adapter.RequestDevice(nil)
	if err != nil {
		return nil, nil, fmt.Errorf("rust: %w: %w", backend.ErrDeviceRequest, err)
	}
	queue := device.GetQueue()
	if queue == nil {
		device.Release()
		return nil, nil, fmt.Errorf("rust: %w: queue retrieval failed", backend.ErrDeviceRequest)
	}
	return &deviceHandle{device: device, queue: queue}, queue, nil
}

func (a *adapterHandle) Release() {
	if a.adapter != nil {
		a.adapter.Release()
		a.adapter = nil
	}
}

type deviceHandle struct {
	device *wgpu.Device
	queue  *wgpu.Queue
}

func (d *deviceHandle) Poll(wait bool) {
	if d.device != nil {
		d.device.Poll(wait)
	}
}

// Destroy releases the queue with its device.
func (d *deviceHandle) Destroy() {
	if d.queue != nil {
		d.queue.Release()
		d.queue = nil
	}
	if d.device != nil {
		d.device.Release()
		d.device = nil
	}
}

type surfaceHandle struct {
	surface *wgpu.Surface
}

func (s *surfaceHandle) Capabilities(adapter backend.Adapter) backend.SurfaceCapabilities {
	a, ok := adapter.(*adapterHandle)
	if !ok {
		return backend.SurfaceCapabilities{}
	}
	caps, err := s.surface.GetCapabilities(a.adapter)
	if err != nil || caps == nil {
		return backend.SurfaceCapabilities{}
	}
	out := backend.SurfaceCapabilities{
		Formats: append([]gputypes.TextureFormat(nil), caps.Formats...),
	}
	out.PresentModes, out.AlphaModes = backend.SupportedModes(caps.PresentModes, caps.AlphaModes)
	return out
}

// Configure resolves Auto present and alpha modes against the surface
// capabilities. View formats are not supported by go-webgpu and are dropped.
func (s *surfaceHandle) Configure(adapter backend.Adapter, device backend.Device, cfg *backend.SurfaceConfiguration) error {
	if _, ok := adapter.(*adapterHandle); !ok {
		return fmt.Errorf("rust: adapter %T: %w", adapter, backend.ErrUnsupportedTarget)
	}
	d, ok := device.(*deviceHandle)
	if !ok {
		return fmt.Errorf("rust: device %T: %w", device, backend.ErrUnsupportedTarget)
	}
	if cfg.Format == gputypes.TextureFormatUndefined {
		return fmt.Errorf("rust: undefined surface format: %w", backend.ErrNoSurfaceFormats)
	}
	caps := s.Capabilities(adapter)
	s.surface.Configure(&wgpu.SurfaceConfiguration{
		Device:      d.device,
		Format:      cfg.Format,
		Usage:       cfg.Usage,
		Width:       cfg.Width,
		Height:      cfg.Height,
		AlphaMode:   cfg.AlphaMode.Resolve(caps.AlphaModes).GPU(),
		PresentMode: cfg.PresentMode.Resolve(caps.PresentModes).GPU(),
	})
	return nil
}

func (s *surfaceHandle) Release() {
	if s.surface != nil {
		s.surface.Release()
		s.surface = nil
	}
}

// backendTypeToString converts wgpu backend type to string.
func backendTypeToString(bt wgpu.BackendType) string {
	switch bt {
	case wgpu.BackendTypeNull:
		return "Null"
	case wgpu.BackendTypeWebGPU:
		return "WebGPU"
	case wgpu.BackendTypeD3D11:
		return "D3D11"
	case wgpu.BackendTypeD3D12:
		return "D3D12"
	case wgpu.BackendTypeMetal:
		return "Metal"
	case wgpu.BackendTypeVulkan:
		return "Vulkan"
	case wgpu.BackendTypeOpenGL:
		return "OpenGL"
	case wgpu.BackendTypeOpenGLES:
		return "OpenGLES"
	default:
		return "Unknown"
	}
}

func deviceType(at wgpu.AdapterType) gputypes.DeviceType {
	switch at {
	case wgpu.AdapterTypeDiscreteGPU:
		return gputypes.DeviceTypeDiscreteGPU
	case wgpu.AdapterTypeIntegratedGPU:
		return gputypes.DeviceTypeIntegratedGPU
	case wgpu.AdapterTypeCPU:
		return gputypes.DeviceTypeCPU
	default:
		return gputypes.DeviceTypeOther
	}
}
