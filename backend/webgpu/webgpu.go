// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package webgpu implements backend.Backend over wgpu-native through
// github.com/cogentcore/webgpu.
//
// Surfaces are bound to GLFW windows: the target's NativeHandle must be a
// *glfw.Window, which is what platform/desktop windows return.
//
//	import _ "github.com/gogpu/yengine/backend/webgpu"
package webgpu

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/yengine/backend"
)

func init() {
	backend.Register(backend.NameWebGPU, func() backend.Backend {
		return &Backend{}
	})
}

// Backend creates wgpu-native instances.
type Backend struct{}

// Name returns backend.NameWebGPU.
func (*Backend) Name() string { return backend.NameWebGPU }

// CreateInstance creates a wgpu-native instance limited to desc.Backends.
// wgpu-native reads its validation settings from the environment, so
// desc.Debug only controls device labels.
func (*Backend) CreateInstance(desc *backend.InstanceDescriptor) (backend.Instance, error) {
	wdesc := instanceDescriptor(desc)
	inst := wgpu.CreateInstance(wdesc)
	backends := wgpu.InstanceBackendAll
	if wdesc != nil {
		backends = wdesc.Backends
	}
	debug := desc != nil && desc.Debug
	backend.Logger().Debug("webgpu: instance created", "backends", backends, "debug", debug)
	return &Instance{inst: inst, debug: debug}, nil
}

// Instance wraps *wgpu.Instance.
type Instance struct {
	inst  *wgpu.Instance
	debug bool
}

// CreateSurface binds a surface to a GLFW window.
func (i *Instance) CreateSurface(target backend.SurfaceTarget) (backend.Surface, error) {
	w, ok := target.NativeHandle().(*glfw.Window)
	if !ok || w == nil {
		return nil, fmt.Errorf("webgpu: %T: %w", target.NativeHandle(), backend.ErrUnsupportedTarget)
	}
	s := i.inst.CreateSurface(wgpuglfw.GetSurfaceDescriptor(w))
	if s == nil {
		return nil, fmt.Errorf("webgpu: surface creation failed: %w", backend.ErrUnsupportedTarget)
	}
	return &Surface{surface: s}, nil
}

// RequestAdapter blocks until wgpu-native returns an adapter.
func (i *Instance) RequestAdapter(opts *backend.AdapterOptions) (backend.Adapter, error) {
	var wopts wgpu.RequestAdapterOptions
	if opts != nil {
		wopts.PowerPreference = powerPreference(opts.PowerPreference)
		if s, ok := opts.CompatibleSurface.(*Surface); ok {
			wopts.CompatibleSurface = s.surface
		}
	}
	a, err := i.inst.RequestAdapter(&wopts)
	if err != nil {
		return nil, fmt.Errorf("webgpu: %w: %w", backend.ErrNoAdapter, err)
	}
	return &Adapter{adapter: a, debug: i.debug}, nil
}

// Release releases the instance.
func (i *Instance) Release() {
	if i.inst != nil {
		i.inst.Release()
		i.inst = nil
	}
}

// Adapter wraps *wgpu.Adapter.
type Adapter struct {
	adapter *wgpu.Adapter
	debug   bool
}

// Info describes the adapter.
func (a *Adapter) Info() backend.AdapterInfo {
	info := a.adapter.GetInfo()
	return backend.AdapterInfo{
		Name:    info.Name,
		Vendor:  info.VendorName,
		Backend: info.BackendType.String(),
		Type:    deviceType(info.AdapterType),
	}
}

// RequestDevice blocks until wgpu-native returns a device.
func (a *Adapter) RequestDevice(desc *backend.DeviceDescriptor) (backend.Device, backend.Queue, error) {
	var wdesc wgpu.DeviceDescriptor
	if desc != nil && a.debug {
		wdesc.Label = desc.Label
	}
	d, err := a.adapter.RequestDevice(&wdesc)
	if err != nil {
		return nil, nil, fmt.Errorf("webgpu: %w: %w", backend.ErrDeviceRequest, err)
	}
	return &Device{device: d}, &Queue{queue: d.GetQueue()}, nil
}

// Release releases the adapter.
func (a *Adapter) Release() {
	if a.adapter != nil {
		a.adapter.Release()
		a.adapter = nil
	}
}

// Device wraps *wgpu.Device.
type Device struct {
	device *wgpu.Device
}

// Poll processes completed work; wait blocks until the queue is empty.
func (d *Device) Poll(wait bool) {
	d.device.Poll(wait, nil)
}

// Destroy releases the device.
func (d *Device) Destroy() {
	if d.device != nil {
		d.device.Release()
		d.device = nil
	}
}

// Raw returns the underlying device.
func (d *Device) Raw() *wgpu.Device { return d.device }

// Queue wraps *wgpu.Queue.
type Queue struct {
	queue *wgpu.Queue
}

// Raw returns the underlying queue.
func (q *Queue) Raw() *wgpu.Queue { return q.queue }

// Surface wraps *wgpu.Surface.
type Surface struct {
	surface *wgpu.Surface
}

// Capabilities reports the formats, present modes and alpha modes the
// adapter supports for this surface. Formats with no gputypes equivalent
// are omitted.
func (s *Surface) Capabilities(adapter backend.Adapter) backend.SurfaceCapabilities {
	a, ok := adapter.(*Adapter)
	if !ok {
		return backend.SurfaceCapabilities{}
	}
	caps := s.surface.GetCapabilities(a.adapter)
	var out backend.SurfaceCapabilities
	for _, f := range caps.Formats {
		if tf, ok := fromTextureFormat(f); ok {
			out.Formats = append(out.Formats, tf)
		}
	}
	for _, m := range caps.PresentModes {
		if pm, ok := fromPresentMode(m); ok {
			out.PresentModes = append(out.PresentModes, pm)
		}
	}
	for _, m := range caps.AlphaModes {
		if am, ok := fromAlphaMode(m); ok {
			out.AlphaModes = append(out.AlphaModes, am)
		}
	}
	return out
}

// Configure (re)creates the swapchain. Auto present and alpha modes are
// resolved against the surface capabilities first.
func (s *Surface) Configure(adapter backend.Adapter, device backend.Device, cfg *backend.SurfaceConfiguration) error {
	a, ok := adapter.(*Adapter)
	if !ok {
		return fmt.Errorf("webgpu: adapter %T: %w", adapter, backend.ErrUnsupportedTarget)
	}
	d, ok := device.(*Device)
	if !ok {
		return fmt.Errorf("webgpu: device %T: %w", device, backend.ErrUnsupportedTarget)
	}
	format, ok := toTextureFormat(cfg.Format)
	if !ok {
		return fmt.Errorf("webgpu: surface format %v: %w", cfg.Format, backend.ErrNoSurfaceFormats)
	}

	caps := s.Capabilities(adapter)
	viewFormats := make([]wgpu.TextureFormat, 0, len(cfg.ViewFormats))
	for _, vf := range cfg.ViewFormats {
		if f, ok := toTextureFormat(vf); ok {
			viewFormats = append(viewFormats, f)
		}
	}

	s.surface.Configure(a.adapter, d.device, &wgpu.SurfaceConfiguration{
		Usage:       toTextureUsage(cfg.Usage),
		Format:      format,
		Width:       cfg.Width,
		Height:      cfg.Height,
		PresentMode: toPresentMode(cfg.PresentMode.Resolve(caps.PresentModes)),
		AlphaMode:   toAlphaMode(cfg.AlphaMode.Resolve(caps.AlphaModes)),
		ViewFormats: viewFormats,
	})
	backend.Logger().Debug("webgpu: surface configured",
		"width", cfg.Width, "height", cfg.Height, "format", cfg.Format)
	return nil
}

// Release releases the surface.
func (s *Surface) Release() {
	if s.surface != nil {
		s.surface.Release()
		s.surface = nil
	}
}
