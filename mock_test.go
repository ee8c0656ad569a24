package yengine

import (
	"errors"
	"sync"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/yengine/backend"
)

var errMockRefused = errors.New("mock: refused")

// mockBackend is a scriptable backend.Backend. Set fail to the name of a
// step ("instance", "surface", "adapter", "device", "configure") to make
// it fail; close gate to let RequestAdapter return.
type mockBackend struct {
	formats []gputypes.TextureFormat
	fail    string
	gate    chan struct{}

	mu         sync.Mutex
	configured []backend.SurfaceConfiguration
	released   []string
}

func newMockBackend() *mockBackend {
	return &mockBackend{
		formats: []gputypes.TextureFormat{
			gputypes.TextureFormatBGRA8Unorm,
			gputypes.TextureFormatRGBA8UnormSrgb,
		},
	}
}

func (b *mockBackend) record(what string) {
	b.mu.Lock()
	b.released = append(b.released, what)
	b.mu.Unlock()
}

func (b *mockBackend) releases() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.released...)
}

func (b *mockBackend) configs() []backend.SurfaceConfiguration {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]backend.SurfaceConfiguration(nil), b.configured...)
}

func (b *mockBackend) Name() string { return "mock" }

func (b *mockBackend) CreateInstance(*backend.InstanceDescriptor) (backend.Instance, error) {
	if b.fail == "instance" {
		return nil, errMockRefused
	}
	return &mockInstance{b: b}, nil
}

type mockInstance struct{ b *mockBackend }

func (i *mockInstance) CreateSurface(backend.SurfaceTarget) (backend.Surface, error) {
	if i.b.fail == "surface" {
		return nil, backend.ErrUnsupportedTarget
	}
	return &mockSurface{b: i.b}, nil
}

func (i *mockInstance) RequestAdapter(*backend.AdapterOptions) (backend.Adapter, error) {
	if i.b.gate != nil {
		<-i.b.gate
	}
	if i.b.fail == "adapter" {
		return nil, backend.ErrNoAdapter
	}
	return &mockAdapter{b: i.b}, nil
}

func (i *mockInstance) Release() { i.b.record("instance") }

type mockAdapter struct{ b *mockBackend }

func (a *mockAdapter) Info() backend.AdapterInfo {
	return backend.AdapterInfo{Name: "Mock GPU", Vendor: "mock", Backend: "mock", Type: gputypes.DeviceTypeDiscreteGPU}
}

func (a *mockAdapter) RequestDevice(*backend.DeviceDescriptor) (backend.Device, backend.Queue, error) {
	if a.b.fail == "device" {
		return nil, nil, backend.ErrDeviceRequest
	}
	return &mockDevice{b: a.b}, &mockQueue{}, nil
}

func (a *mockAdapter) Release() { a.b.record("adapter") }

type mockDevice struct{ b *mockBackend }

func (d *mockDevice) Poll(bool) {}
func (d *mockDevice) Destroy()  { d.b.record("device") }

type mockQueue struct{}

type mockSurface struct{ b *mockBackend }

func (s *mockSurface) Capabilities(backend.Adapter) backend.SurfaceCapabilities {
	return backend.SurfaceCapabilities{
		Formats:      s.b.formats,
		PresentModes: []backend.PresentMode{backend.PresentModeFifo},
		AlphaModes:   []backend.CompositeAlphaMode{backend.CompositeAlphaModeOpaque},
	}
}

func (s *mockSurface) Configure(_ backend.Adapter, _ backend.Device, cfg *backend.SurfaceConfiguration) error {
	if s.b.fail == "configure" {
		return errMockRefused
	}
	s.b.mu.Lock()
	s.b.configured = append(s.b.configured, *cfg)
	s.b.mu.Unlock()
	return nil
}

func (s *mockSurface) Release() { s.b.record("surface") }
