package yengine

import (
	"log/slog"
	"os"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/yengine/backend"
	"github.com/gogpu/yengine/platform"
)

// DefaultTitle is the title of the splash window.
const DefaultTitle = "Y-ENGINE"

// Option configures an Engine.
//
// Example:
//
//	eng := yengine.New(newGame,
//	    yengine.WithTitle("demo"),
//	    yengine.WithBackend(backend.NameNative),
//	)
type Option func(*options)

type options struct {
	title           string
	splash          []byte
	backendName     string
	gpuBackend      backend.Backend
	platform        platform.Platform
	logger          *slog.Logger
	powerPreference gputypes.PowerPreference
	maxFrameLatency uint32
	debug           bool
	fatal           func(error)
}

func defaultOptions() options {
	return options{
		title:           DefaultTitle,
		powerPreference: gputypes.PowerPreferenceHighPerformance,
		maxFrameLatency: 2,
		debug:           true,
	}
}

// WithTitle sets the splash window title.
func WithTitle(title string) Option {
	return func(o *options) {
		o.title = title
	}
}

// WithSplashImage replaces the embedded splash image. data may be PNG, BMP
// or WebP.
func WithSplashImage(data []byte) Option {
	return func(o *options) {
		o.splash = data
	}
}

// WithBackend selects a registered GPU backend by name (see
// backend.Available). An empty name picks backend.Default.
func WithBackend(name string) Option {
	return func(o *options) {
		o.backendName = name
	}
}

// WithGPUBackend uses b directly instead of the backend registry.
// It takes precedence over WithBackend.
func WithGPUBackend(b backend.Backend) Option {
	return func(o *options) {
		o.gpuBackend = b
	}
}

// WithPlatform uses p instead of platform.Default.
func WithPlatform(p platform.Platform) Option {
	return func(o *options) {
		o.platform = p
	}
}

// WithLogger sets the logger for this engine only. Without it the engine
// logs through Logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithPowerPreference sets the adapter power preference. The default is
// gputypes.PowerPreferenceHighPerformance.
func WithPowerPreference(p gputypes.PowerPreference) Option {
	return func(o *options) {
		o.powerPreference = p
	}
}

// WithMaxFrameLatency sets the desired maximum frame latency of the
// configured surface. Zero keeps the default of 2.
func WithMaxFrameLatency(n uint32) Option {
	return func(o *options) {
		if n > 0 {
			o.maxFrameLatency = n
		}
	}
}

// WithDebugInstance toggles API validation on the GPU instance.
// It is on by default.
func WithDebugInstance(enabled bool) Option {
	return func(o *options) {
		o.debug = enabled
	}
}

// WithFatalHandler replaces the handler for unrecoverable bootstrap
// failures. The handler may be called from the bootstrap goroutine.
// The default logs the error and exits the process with status 1.
func WithFatalHandler(fn func(error)) Option {
	return func(o *options) {
		o.fatal = fn
	}
}

func (o *options) log() *slog.Logger {
	if o.logger != nil {
		return o.logger
	}
	return Logger()
}

func (o *options) fatalf(err error) {
	if o.fatal != nil {
		o.fatal(err)
		return
	}
	o.log().Error("yengine: fatal", "err", err)
	os.Exit(1)
}
