// Package rust implements backend.Backend over wgpu-native through the
// zero-CGO go-webgpu/webgpu bindings.
//
// # Registration and Selection
//
// The backend is registered when this package is imported with the "rust"
// build tag:
//
//	// Build with: go build -tags rust
//	import _ "github.com/gogpu/yengine/backend/rust"
//
// Without the tag, a stub is compiled that returns nil from the factory, so
// backend.Default() skips it. Priority order: webgpu > rust > native.
//
// # Surfaces
//
// Surfaces are created from raw OS window handles. The target must
// implement backend.RawSurfaceTarget; Xlib and Win32 windows are supported.
//
// # Dependencies
//
// This backend requires the wgpu-native library:
//   - Windows: wgpu_native.dll
//   - Linux: libwgpu_native.so
//   - macOS: libwgpu_native.dylib
//
// Download from: https://github.com/gfx-rs/wgpu-native/releases
//
// # Error Handling
//
//   - ErrLibraryNotFound: wgpu-native could not be loaded
//   - ErrNoGPU: no compatible adapter
//   - ErrUnsupportedWindow: no surface constructor for this windowing system
package rust
