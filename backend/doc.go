// Package backend provides a pluggable GPU backend abstraction.
//
// yengine does not call a GPU API directly. The bootstrap worker acquires an
// instance, a surface bound to the splash window, an adapter, a device and a
// queue through the small interfaces in this package, and the resulting
// handles end up in a yengine.RenderCore owned by the application.
//
// # Backend Registration
//
// Backends are registered via init() functions and selected at runtime:
//
//	import _ "github.com/gogpu/yengine/backend/webgpu" // wgpu-native
//	import _ "github.com/gogpu/yengine/backend/rust"   // wgpu-native via FFI, -tags rust
//	import _ "github.com/gogpu/yengine/backend/native" // Pure Go (gogpu/wgpu)
//
// # Backend Selection
//
// Use Default() to get the best available backend, or Get() to request
// a specific backend by name:
//
//	// Get the default (best available) backend
//	b := backend.Default()
//
//	// Or request a specific backend
//	b := backend.Get(backend.NameNative)
//
// # Bootstrap Sequence
//
// A backend is driven in a fixed order, from a goroutine that may block:
//
//	inst, _ := b.CreateInstance(&backend.InstanceDescriptor{Backends: gputypes.BackendsPrimary})
//	surf, _ := inst.CreateSurface(window)
//	adapter, _ := inst.RequestAdapter(&backend.AdapterOptions{
//		PowerPreference:   gputypes.PowerPreferenceHighPerformance,
//		CompatibleSurface: surf,
//	})
//	device, queue, _ := adapter.RequestDevice(&backend.DeviceDescriptor{Label: "app"})
//	caps := surf.Capabilities(adapter)
//	_ = surf.Configure(adapter, device, &backend.SurfaceConfiguration{...})
//
// # Available Backends
//
//   - webgpu: wgpu-native through cogentcore/webgpu; binds surfaces to GLFW windows
//   - rust: wgpu-native through go-webgpu/webgpu; binds surfaces from raw handles
//   - native: gogpu/wgpu HAL; binds surfaces from raw OS window handles
package backend
