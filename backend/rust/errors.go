//go:build rust

package rust

import "errors"

// Package errors for rust backend.
var (
	// ErrLibraryNotFound is returned when wgpu-native library is not found.
	ErrLibraryNotFound = errors.New("rust: wgpu-native library not found")

	// ErrNoGPU is returned when no GPU adapter is available.
	ErrNoGPU = errors.New("rust: no GPU adapter available")

	// ErrUnsupportedWindow is returned when the windowing system has no
	// surface constructor.
	ErrUnsupportedWindow = errors.New("rust: unsupported windowing system")
)
