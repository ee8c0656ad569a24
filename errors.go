package yengine

import "errors"

var (
	// ErrNoPlatform is returned by Run when no platform is configured or
	// registered.
	ErrNoPlatform = errors.New("yengine: no platform available")

	// ErrNoBackend is reported to the fatal handler when no GPU backend is
	// configured or registered.
	ErrNoBackend = errors.New("yengine: no GPU backend available")

	// ErrNilFactory is the panic value of New when the factory is nil.
	ErrNilFactory = errors.New("yengine: nil AppFactory")

	// ErrDuplicateGPUReady is the panic value when the bootstrap channel
	// delivers a second RenderCore.
	ErrDuplicateGPUReady = errors.New("yengine: duplicate GPU-ready message")

	// ErrInvalidTransition is the panic value when promotion is attempted
	// from any phase other than the starting phase.
	ErrInvalidTransition = errors.New("yengine: invalid phase transition")

	// ErrSplashDecode is returned when the splash image cannot be decoded.
	ErrSplashDecode = errors.New("yengine: splash decode failed")
)
