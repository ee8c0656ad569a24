// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package webgpu

import (
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/yengine/backend"
)

var textureFormats = []struct {
	gt gputypes.TextureFormat
	wt wgpu.TextureFormat
}{
	{gputypes.TextureFormatRGBA8Unorm, wgpu.TextureFormatRGBA8Unorm},
	{gputypes.TextureFormatRGBA8UnormSrgb, wgpu.TextureFormatRGBA8UnormSrgb},
	{gputypes.TextureFormatBGRA8Unorm, wgpu.TextureFormatBGRA8Unorm},
	{gputypes.TextureFormatBGRA8UnormSrgb, wgpu.TextureFormatBGRA8UnormSrgb},
}

func toTextureFormat(f gputypes.TextureFormat) (wgpu.TextureFormat, bool) {
	for _, e := range textureFormats {
		if e.gt == f {
			return e.wt, true
		}
	}
	return 0, false
}

func fromTextureFormat(f wgpu.TextureFormat) (gputypes.TextureFormat, bool) {
	for _, e := range textureFormats {
		if e.wt == f {
			return e.gt, true
		}
	}
	return gputypes.TextureFormatUndefined, false
}

var instanceBackendBits = []struct {
	gb gputypes.Backends
	wb wgpu.InstanceBackend
}{
	{gputypes.BackendsVulkan, wgpu.InstanceBackendVulkan},
	{gputypes.BackendsMetal, wgpu.InstanceBackendMetal},
	{gputypes.BackendsDX12, wgpu.InstanceBackendDX12},
	{gputypes.BackendsGL, wgpu.InstanceBackendGL},
	{gputypes.BackendsBrowserWebGPU, wgpu.InstanceBackendBrowserWebGPU},
}

// instanceDescriptor returns nil, which lets wgpu-native choose, when no
// backends are requested.
func instanceDescriptor(desc *backend.InstanceDescriptor) *wgpu.InstanceDescriptor {
	if desc == nil || desc.Backends == gputypes.BackendsNone {
		return nil
	}
	var out wgpu.InstanceBackend
	for _, e := range instanceBackendBits {
		if desc.Backends&e.gb != 0 {
			out |= e.wb
		}
	}
	return &wgpu.InstanceDescriptor{Backends: out}
}

func deviceType(t wgpu.AdapterType) gputypes.DeviceType {
	switch t {
	case wgpu.AdapterTypeDiscreteGPU:
		return gputypes.DeviceTypeDiscreteGPU
	case wgpu.AdapterTypeIntegratedGPU:
		return gputypes.DeviceTypeIntegratedGPU
	case wgpu.AdapterTypeCPU:
		return gputypes.DeviceTypeCPU
	default:
		return gputypes.DeviceTypeOther
	}
}

func toTextureUsage(u gputypes.TextureUsage) wgpu.TextureUsage {
	var out wgpu.TextureUsage
	if u&gputypes.TextureUsageCopySrc != 0 {
		out |= wgpu.TextureUsageCopySrc
	}
	if u&gputypes.TextureUsageCopyDst != 0 {
		out |= wgpu.TextureUsageCopyDst
	}
	if u&gputypes.TextureUsageTextureBinding != 0 {
		out |= wgpu.TextureUsageTextureBinding
	}
	if u&gputypes.TextureUsageRenderAttachment != 0 {
		out |= wgpu.TextureUsageRenderAttachment
	}
	return out
}

func powerPreference(p gputypes.PowerPreference) wgpu.PowerPreference {
	if p == gputypes.PowerPreferenceHighPerformance {
		return wgpu.PowerPreferenceHighPerformance
	}
	var none wgpu.PowerPreference
	return none
}

var presentModes = []struct {
	bm backend.PresentMode
	wm wgpu.PresentMode
}{
	{backend.PresentModeFifo, wgpu.PresentModeFifo},
	{backend.PresentModeFifoRelaxed, wgpu.PresentModeFifoRelaxed},
	{backend.PresentModeImmediate, wgpu.PresentModeImmediate},
	{backend.PresentModeMailbox, wgpu.PresentModeMailbox},
}

// toPresentMode expects a resolved mode; anything else maps to Fifo.
func toPresentMode(m backend.PresentMode) wgpu.PresentMode {
	for _, e := range presentModes {
		if e.bm == m {
			return e.wm
		}
	}
	return wgpu.PresentModeFifo
}

func fromPresentMode(m wgpu.PresentMode) (backend.PresentMode, bool) {
	for _, e := range presentModes {
		if e.wm == m {
			return e.bm, true
		}
	}
	return backend.PresentModeFifo, false
}

var alphaModes = []struct {
	bm backend.CompositeAlphaMode
	wm wgpu.CompositeAlphaMode
}{
	{backend.CompositeAlphaModeAuto, wgpu.CompositeAlphaModeAuto},
	{backend.CompositeAlphaModeOpaque, wgpu.CompositeAlphaModeOpaque},
	{backend.CompositeAlphaModePreMultiplied, wgpu.CompositeAlphaModePremultiplied},
	{backend.CompositeAlphaModePostMultiplied, wgpu.CompositeAlphaModeUnpremultiplied},
	{backend.CompositeAlphaModeInherit, wgpu.CompositeAlphaModeInherit},
}

func toAlphaMode(m backend.CompositeAlphaMode) wgpu.CompositeAlphaMode {
	for _, e := range alphaModes {
		if e.bm == m {
			return e.wm
		}
	}
	return wgpu.CompositeAlphaModeAuto
}

func fromAlphaMode(m wgpu.CompositeAlphaMode) (backend.CompositeAlphaMode, bool) {
	for _, e := range alphaModes {
		if e.wm == m {
			return e.bm, true
		}
	}
	return backend.CompositeAlphaModeAuto, false
}
