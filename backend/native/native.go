// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package native implements backend.Backend over the Pure Go gogpu/wgpu HAL.
//
// Surfaces are created from raw OS window handles, so targets must also
// implement backend.RawSurfaceTarget (platform/desktop windows do on X11
// and Windows). By default the Vulkan HAL is used; New accepts any
// hal.Backend, which is how tests run against hal/noop.
//
//	import _ "github.com/gogpu/yengine/backend/native"
package native

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	_ "github.com/gogpu/wgpu/hal/vulkan" // register the Vulkan HAL

	"github.com/gogpu/yengine/backend"
)

func init() {
	backend.Register(backend.NameNative, func() backend.Backend {
		hb, ok := hal.GetBackend(gputypes.BackendVulkan)
		if !ok {
			return nil
		}
		return New(hb)
	})
}

// Backend creates HAL instances.
type Backend struct {
	hal hal.Backend
}

// New returns a Backend driving hb.
func New(hb hal.Backend) *Backend {
	return &Backend{hal: hb}
}

// Name returns backend.NameNative.
func (*Backend) Name() string { return backend.NameNative }

// CreateInstance creates a HAL instance.
func (b *Backend) CreateInstance(desc *backend.InstanceDescriptor) (backend.Instance, error) {
	if b.hal == nil {
		return nil, fmt.Errorf("native: %w", backend.ErrBackendNotAvailable)
	}
	hdesc := instanceDescriptor(desc)
	inst, err := b.hal.CreateInstance(&hdesc)
	if err != nil {
		return nil, fmt.Errorf("native: create instance: %w", err)
	}
	backend.Logger().Debug("native: instance created",
		"backends", hdesc.Backends, "flags", hdesc.Flags)
	return &Instance{inst: inst}, nil
}

// instanceDescriptor turns on debug and validation layers for debug
// instances. A nil desc selects the primary backends.
func instanceDescriptor(desc *backend.InstanceDescriptor) hal.InstanceDescriptor {
	if desc == nil {
		return hal.InstanceDescriptor{Backends: gputypes.BackendsPrimary}
	}
	out := hal.InstanceDescriptor{Backends: desc.Backends}
	if desc.Debug {
		out.Flags = gputypes.InstanceFlagsDebug | gputypes.InstanceFlagsValidation
	}
	return out
}

// Instance wraps hal.Instance.
type Instance struct {
	inst hal.Instance
}

// CreateSurface binds a surface to the target's raw window handles.
func (i *Instance) CreateSurface(target backend.SurfaceTarget) (backend.Surface, error) {
	raw, ok := target.(backend.RawSurfaceTarget)
	if !ok {
		return nil, fmt.Errorf("native: %T has no raw handles: %w", target, backend.ErrUnsupportedTarget)
	}
	display, window, ok := raw.RawHandles()
	if !ok {
		return nil, fmt.Errorf("native: raw handles unavailable: %w", backend.ErrUnsupportedTarget)
	}
	s, err := i.inst.CreateSurface(display, window)
	if err != nil {
		return nil, fmt.Errorf("native: create surface: %w", err)
	}
	return &Surface{surface: s}, nil
}

// RequestAdapter enumerates adapters and picks one.
// High performance prefers a discrete GPU, anything else prefers an
// integrated one; either falls back to the first adapter.
func (i *Instance) RequestAdapter(opts *backend.AdapterOptions) (backend.Adapter, error) {
	var hint hal.Surface
	var pref gputypes.PowerPreference
	if opts != nil {
		if s, ok := opts.CompatibleSurface.(*Surface); ok {
			hint = s.surface
		}
		pref = opts.PowerPreference
	}

	adapters := i.inst.EnumerateAdapters(hint)
	selected := selectAdapter(adapters, pref)
	if selected == nil {
		return nil, fmt.Errorf("native: %w", backend.ErrNoAdapter)
	}
	return &Adapter{exposed: *selected}, nil
}

func selectAdapter(adapters []hal.ExposedAdapter, pref gputypes.PowerPreference) *hal.ExposedAdapter {
	if len(adapters) == 0 {
		return nil
	}
	want := gputypes.DeviceTypeIntegratedGPU
	if pref == gputypes.PowerPreferenceHighPerformance {
		want = gputypes.DeviceTypeDiscreteGPU
	}
	for i := range adapters {
		if adapters[i].Info.DeviceType == want {
			return &adapters[i]
		}
	}
	return &adapters[0]
}

// Release destroys the instance.
func (i *Instance) Release() {
	if i.inst != nil {
		i.inst.Destroy()
		i.inst = nil
	}
}

// Adapter wraps hal.ExposedAdapter.
type Adapter struct {
	exposed hal.ExposedAdapter
}

// Info describes the adapter.
func (a *Adapter) Info() backend.AdapterInfo {
	return backend.AdapterInfo{
		Name:    a.exposed.Info.Name,
		Backend: "gogpu/wgpu",
		Type:    a.exposed.Info.DeviceType,
	}
}

// RequestDevice opens a device with default limits and no optional features.
func (a *Adapter) RequestDevice(desc *backend.DeviceDescriptor) (backend.Device, backend.Queue, error) {
	open, err := a.exposed.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		return nil, nil, fmt.Errorf("native: %w: %w", backend.ErrDeviceRequest, err)
	}
	label := ""
	if desc != nil {
		label = desc.Label
	}
	backend.Logger().Debug("native: device opened", "label", label)
	return &Device{device: open.Device}, &Queue{queue: open.Queue}, nil
}

// Release is a no-op; HAL adapters are owned by their instance.
func (a *Adapter) Release() {}

// Device wraps hal.Device.
type Device struct {
	device hal.Device
}

// Poll is a no-op. HAL work completes through fences owned by the caller.
func (d *Device) Poll(bool) {}

// Destroy destroys the device.
func (d *Device) Destroy() {
	if d.device != nil {
		d.device.Destroy()
		d.device = nil
	}
}

// Raw returns the underlying HAL device.
func (d *Device) Raw() hal.Device { return d.device }

// Queue wraps hal.Queue.
type Queue struct {
	queue hal.Queue
}

// Raw returns the underlying HAL queue.
func (q *Queue) Raw() hal.Queue { return q.queue }

// Surface wraps hal.Surface.
type Surface struct {
	surface hal.Surface
}

// Capabilities queries the adapter for what it can present to the surface.
func (s *Surface) Capabilities(adapter backend.Adapter) backend.SurfaceCapabilities {
	a, ok := adapter.(*Adapter)
	if !ok {
		return backend.SurfaceCapabilities{}
	}
	caps := a.exposed.Adapter.SurfaceCapabilities(s.surface)
	if caps == nil {
		return backend.SurfaceCapabilities{}
	}
	out := backend.SurfaceCapabilities{
		Formats: append([]gputypes.TextureFormat(nil), caps.Formats...),
	}
	out.PresentModes, out.AlphaModes = backend.SupportedModes(caps.PresentModes, caps.AlphaModes)
	return out
}

var errForeignHandle = errors.New("handle belongs to another backend")

// Configure (re)creates the swapchain. Auto modes are resolved against the
// surface capabilities; the HAL has no notion of Auto.
func (s *Surface) Configure(adapter backend.Adapter, device backend.Device, cfg *backend.SurfaceConfiguration) error {
	if _, ok := adapter.(*Adapter); !ok {
		return fmt.Errorf("native: adapter %T: %w", adapter, errForeignHandle)
	}
	d, ok := device.(*Device)
	if !ok {
		return fmt.Errorf("native: device %T: %w", device, errForeignHandle)
	}
	caps := s.Capabilities(adapter)
	err := s.surface.Configure(d.device, &hal.SurfaceConfiguration{
		Width:       cfg.Width,
		Height:      cfg.Height,
		Format:      cfg.Format,
		Usage:       cfg.Usage,
		PresentMode: cfg.PresentMode.Resolve(caps.PresentModes).GPU(),
		AlphaMode:   cfg.AlphaMode.Resolve(caps.AlphaModes).GPU(),
	})
	if err != nil {
		return fmt.Errorf("native: configure surface: %w", err)
	}
	return nil
}

// Release destroys the surface.
func (s *Surface) Release() {
	if s.surface != nil {
		s.surface.Destroy()
		s.surface = nil
	}
}
