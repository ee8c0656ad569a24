//go:build rust && windows

package rust

import "github.com/go-webgpu/webgpu/wgpu"

// createSurface binds a Win32 window; display is the HINSTANCE.
func createSurface(inst *wgpu.Instance, display, window uintptr) (*wgpu.Surface, error) {
	return inst.CreateSurfaceFromWindowsHWND(display, window)
}
