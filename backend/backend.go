package backend

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not available.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrNoAdapter is returned when no adapter satisfies the request.
	ErrNoAdapter = errors.New("backend: no suitable adapter")

	// ErrDeviceRequest is returned when the adapter refuses to create a device.
	ErrDeviceRequest = errors.New("backend: device request failed")

	// ErrUnsupportedTarget is returned when a backend cannot bind a surface
	// to the given window.
	ErrUnsupportedTarget = errors.New("backend: unsupported surface target")

	// ErrNoSurfaceFormats is returned when a surface reports no formats.
	ErrNoSurfaceFormats = errors.New("backend: surface reports no formats")
)

// Backend name constants.
const (
	// NameWebGPU is the name of the wgpu-native backend (cogentcore/webgpu).
	NameWebGPU = "webgpu"
	// NameRust is the name of the wgpu-native backend over go-webgpu/webgpu.
	// It requires the "rust" build tag.
	NameRust = "rust"
	// NameNative is the name of the Pure Go GPU backend (gogpu/wgpu HAL).
	NameNative = "native"
)

// Backend creates GPU instances.
type Backend interface {
	// Name returns the backend identifier (e.g., "webgpu", "native").
	Name() string

	// CreateInstance creates the root GPU object.
	CreateInstance(desc *InstanceDescriptor) (Instance, error)
}

// InstanceDescriptor configures instance creation.
type InstanceDescriptor struct {
	// Backends selects the graphics APIs the instance may use.
	Backends gputypes.Backends

	// Debug enables API validation and debug labels where supported.
	Debug bool
}

// SurfaceTarget is anything a surface can be bound to.
// platform.Window satisfies it.
type SurfaceTarget interface {
	NativeHandle() any
}

// RawSurfaceTarget is a SurfaceTarget that exposes raw OS handles.
// platform.RawWindow satisfies it.
type RawSurfaceTarget interface {
	RawHandles() (display, window uintptr, ok bool)
}

// Instance is the root GPU object.
type Instance interface {
	// CreateSurface binds a presentable surface to target.
	// It returns ErrUnsupportedTarget when target is foreign to the backend.
	CreateSurface(target SurfaceTarget) (Surface, error)

	// RequestAdapter blocks until an adapter matching opts is found.
	// It returns an error wrapping ErrNoAdapter if none is.
	RequestAdapter(opts *AdapterOptions) (Adapter, error)

	Release()
}

// AdapterOptions filters adapters.
type AdapterOptions struct {
	PowerPreference gputypes.PowerPreference

	// CompatibleSurface, when set, restricts the search to adapters that
	// can present to it.
	CompatibleSurface Surface
}

// AdapterInfo describes a physical adapter.
type AdapterInfo struct {
	Name    string
	Vendor  string
	Backend string
	Type    gputypes.DeviceType
}

// String returns a human-readable description of the adapter.
func (i AdapterInfo) String() string {
	return fmt.Sprintf("%s (%s, %s)", i.Name, i.Type, i.Backend)
}

// DeviceDescriptor configures device creation.
type DeviceDescriptor struct {
	Label string
}

// Adapter is a physical GPU.
type Adapter interface {
	Info() AdapterInfo

	// RequestDevice blocks until a logical device and its queue exist.
	// It returns an error wrapping ErrDeviceRequest on refusal.
	RequestDevice(desc *DeviceDescriptor) (Device, Queue, error)

	Release()
}

// Device is a logical GPU device. Its method set matches
// gpucontext.Device so devices can be shared with gogpu libraries.
type Device interface {
	// Poll processes completed GPU work; wait blocks until the queue is idle.
	Poll(wait bool)

	Destroy()
}

// Queue is a device command queue.
type Queue interface{}

// Surface is a presentable window surface.
type Surface interface {
	// Capabilities reports what adapter can present to this surface.
	Capabilities(adapter Adapter) SurfaceCapabilities

	// Configure (re)creates the swapchain with cfg.
	Configure(adapter Adapter, device Device, cfg *SurfaceConfiguration) error

	Release()
}
