//go:build rust && linux

package rust

import "github.com/go-webgpu/webgpu/wgpu"

// createSurface binds an Xlib window; window is the XID.
func createSurface(inst *wgpu.Instance, display, window uintptr) (*wgpu.Surface, error) {
	return inst.CreateSurfaceFromXlibWindow(display, uint64(window))
}
