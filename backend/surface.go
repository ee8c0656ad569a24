package backend

import "github.com/gogpu/gputypes"

// PresentMode selects how frames are queued for display.
type PresentMode uint8

const (
	// PresentModeAutoVsync picks FifoRelaxed, then Fifo.
	PresentModeAutoVsync PresentMode = iota
	// PresentModeAutoNoVsync picks Immediate, then Mailbox, then Fifo.
	PresentModeAutoNoVsync
	PresentModeFifo
	PresentModeFifoRelaxed
	PresentModeImmediate
	PresentModeMailbox
)

// String returns the name of the present mode.
func (m PresentMode) String() string {
	switch m {
	case PresentModeAutoVsync:
		return "AutoVsync"
	case PresentModeAutoNoVsync:
		return "AutoNoVsync"
	case PresentModeFifo:
		return "Fifo"
	case PresentModeFifoRelaxed:
		return "FifoRelaxed"
	case PresentModeImmediate:
		return "Immediate"
	case PresentModeMailbox:
		return "Mailbox"
	default:
		return "Unknown"
	}
}

// Resolve maps the Auto modes onto the first entry of their fallback chain
// that appears in supported. Concrete modes are returned unchanged.
// Fifo is the final fallback since every surface must support it.
func (m PresentMode) Resolve(supported []PresentMode) PresentMode {
	var chain []PresentMode
	switch m {
	case PresentModeAutoVsync:
		chain = []PresentMode{PresentModeFifoRelaxed, PresentModeFifo}
	case PresentModeAutoNoVsync:
		chain = []PresentMode{PresentModeImmediate, PresentModeMailbox, PresentModeFifo}
	default:
		return m
	}
	for _, want := range chain {
		for _, have := range supported {
			if want == have {
				return want
			}
		}
	}
	return PresentModeFifo
}

// CompositeAlphaMode selects how the compositor blends the surface.
type CompositeAlphaMode uint8

const (
	// CompositeAlphaModeAuto picks the first mode the surface supports.
	CompositeAlphaModeAuto CompositeAlphaMode = iota
	CompositeAlphaModeOpaque
	CompositeAlphaModePreMultiplied
	CompositeAlphaModePostMultiplied
	CompositeAlphaModeInherit
)

// String returns the name of the alpha mode.
func (m CompositeAlphaMode) String() string {
	switch m {
	case CompositeAlphaModeAuto:
		return "Auto"
	case CompositeAlphaModeOpaque:
		return "Opaque"
	case CompositeAlphaModePreMultiplied:
		return "PreMultiplied"
	case CompositeAlphaModePostMultiplied:
		return "PostMultiplied"
	case CompositeAlphaModeInherit:
		return "Inherit"
	default:
		return "Unknown"
	}
}

// Resolve maps Auto onto the first supported mode, or Opaque when the list
// is empty.
func (m CompositeAlphaMode) Resolve(supported []CompositeAlphaMode) CompositeAlphaMode {
	if m != CompositeAlphaModeAuto {
		return m
	}
	if len(supported) == 0 {
		return CompositeAlphaModeOpaque
	}
	return supported[0]
}

// SurfaceCapabilities lists what an adapter can present to a surface.
// Formats are in the adapter's order of preference.
type SurfaceCapabilities struct {
	Formats      []gputypes.TextureFormat
	PresentModes []PresentMode
	AlphaModes   []CompositeAlphaMode
}

// SurfaceConfiguration describes the swapchain.
type SurfaceConfiguration struct {
	Usage       gputypes.TextureUsage
	Format      gputypes.TextureFormat
	Width       uint32
	Height      uint32
	PresentMode PresentMode
	AlphaMode   CompositeAlphaMode
	ViewFormats []gputypes.TextureFormat

	// DesiredMaximumFrameLatency is a hint; backends that cannot honour it
	// ignore it.
	DesiredMaximumFrameLatency uint32
}

// IsSRGB reports whether f is one of the 8-bit sRGB swapchain formats.
func IsSRGB(f gputypes.TextureFormat) bool {
	switch f {
	case gputypes.TextureFormatRGBA8UnormSrgb,
		gputypes.TextureFormatBGRA8UnormSrgb:
		return true
	}
	return false
}

// PreferredFormat returns the first sRGB format in formats, or the first
// format when none is sRGB. It returns ErrNoSurfaceFormats for an empty list.
func PreferredFormat(formats []gputypes.TextureFormat) (gputypes.TextureFormat, error) {
	if len(formats) == 0 {
		return gputypes.TextureFormatUndefined, ErrNoSurfaceFormats
	}
	for _, f := range formats {
		if IsSRGB(f) {
			return f, nil
		}
	}
	return formats[0], nil
}

var gpuPresentModes = []struct {
	m PresentMode
	g gputypes.PresentMode
}{
	{PresentModeFifo, gputypes.PresentModeFifo},
	{PresentModeFifoRelaxed, gputypes.PresentModeFifoRelaxed},
	{PresentModeImmediate, gputypes.PresentModeImmediate},
	{PresentModeMailbox, gputypes.PresentModeMailbox},
}

// GPU returns the gputypes value of a resolved mode. Auto modes map to Fifo.
func (m PresentMode) GPU() gputypes.PresentMode {
	for _, e := range gpuPresentModes {
		if e.m == m {
			return e.g
		}
	}
	return gputypes.PresentModeFifo
}

// PresentModeFromGPU reports false for modes with no equivalent.
func PresentModeFromGPU(g gputypes.PresentMode) (PresentMode, bool) {
	for _, e := range gpuPresentModes {
		if e.g == g {
			return e.m, true
		}
	}
	return PresentModeFifo, false
}

var gpuAlphaModes = []struct {
	m CompositeAlphaMode
	g gputypes.CompositeAlphaMode
}{
	{CompositeAlphaModeOpaque, gputypes.CompositeAlphaModeOpaque},
	{CompositeAlphaModePreMultiplied, gputypes.CompositeAlphaModePremultiplied},
	{CompositeAlphaModePostMultiplied, gputypes.CompositeAlphaModeUnpremultiplied},
	{CompositeAlphaModeInherit, gputypes.CompositeAlphaModeInherit},
}

// GPU returns the gputypes value of a resolved mode. Auto maps to Opaque.
func (m CompositeAlphaMode) GPU() gputypes.CompositeAlphaMode {
	for _, e := range gpuAlphaModes {
		if e.m == m {
			return e.g
		}
	}
	return gputypes.CompositeAlphaModeOpaque
}

// CompositeAlphaModeFromGPU reports false for Auto and unknown modes.
func CompositeAlphaModeFromGPU(g gputypes.CompositeAlphaMode) (CompositeAlphaMode, bool) {
	for _, e := range gpuAlphaModes {
		if e.g == g {
			return e.m, true
		}
	}
	return CompositeAlphaModeOpaque, false
}

// SupportedModes converts capability lists reported in gputypes values,
// dropping modes with no equivalent.
func SupportedModes(present []gputypes.PresentMode, alpha []gputypes.CompositeAlphaMode) ([]PresentMode, []CompositeAlphaMode) {
	var pms []PresentMode
	for _, g := range present {
		if m, ok := PresentModeFromGPU(g); ok {
			pms = append(pms, m)
		}
	}
	var ams []CompositeAlphaMode
	for _, g := range alpha {
		if m, ok := CompositeAlphaModeFromGPU(g); ok {
			ams = append(ams, m)
		}
	}
	return pms, ams
}
