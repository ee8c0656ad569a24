//go:build rust && !linux && !windows

package rust

import (
	"fmt"
	"runtime"

	"github.com/go-webgpu/webgpu/wgpu"
)

func createSurface(*wgpu.Instance, uintptr, uintptr) (*wgpu.Surface, error) {
	return nil, fmt.Errorf("%s: %w", runtime.GOOS, ErrUnsupportedWindow)
}
