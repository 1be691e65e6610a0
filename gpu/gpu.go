// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpu owns the WebGPU device, the output surface, and the
// textures and render pipelines drawn each frame, exposed through the
// [Graphics] facade.
package gpu

import (
	"fmt"
	"log/slog"
	"sync/atomic"

	"cogentcore.org/core/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

var (
	// ErrGPUExists is returned by [NewGPU] while another GPU is live.
	ErrGPUExists = errors.New("gpu: a GPU context already exists in this process")

	// ErrNoAdapter is returned when no adapter compatible with the surface is found.
	ErrNoAdapter = errors.New("gpu: no compatible adapter")

	// ErrNoDevice is returned when the adapter cannot provide a device.
	ErrNoDevice = errors.New("gpu: could not create device")

	// ErrNoSurface is returned when the surface cannot be created or configured.
	ErrNoSurface = errors.New("gpu: could not create surface")

	// ErrSurfaceOutdated is returned by frame acquisition when the surface
	// must be reconfigured. It is transient: the frame is skipped.
	ErrSurfaceOutdated = errors.New("gpu: surface outdated")

	// ErrShaderCompile is returned when a shader or its pipeline fails to build.
	ErrShaderCompile = errors.New("gpu: shader compilation failed")

	// ErrInvalidTexture is returned for a texture handle that was never loaded.
	ErrInvalidTexture = errors.New("gpu: texture handle out of range")

	// ErrInvalidPipeline is returned for a pipeline handle that was never loaded.
	ErrInvalidPipeline = errors.New("gpu: pipeline handle out of range")

	// ErrNoVertices is returned when a pipeline is loaded without vertices.
	ErrNoVertices = errors.New("gpu: pipeline has no vertices")

	// ErrMalformedImage is returned when texture bytes cannot be decoded.
	ErrMalformedImage = errors.New("gpu: malformed image")
)

// Debug is whether to log additional GPU diagnostics.
var Debug = false

// live is set while a GPU exists.
var live atomic.Bool

// GPU is the process-wide WebGPU context: instance, adapter, device
// and queue. All other GPU objects borrow it and must be released
// before it.
type GPU struct {
	// Name is used in labels and logging.
	Name string

	// Instance is the WebGPU instance.
	Instance *wgpu.Instance

	// Adapter is the physical device chosen for the surface.
	Adapter *wgpu.Adapter

	// Device is the logical device.
	Device *wgpu.Device

	// Queue is the command submission queue of Device.
	Queue *wgpu.Queue
}

// NewGPU creates the WebGPU instance. Only one GPU may exist at a
// time; a second call before [GPU.Release] returns [ErrGPUExists].
// Call [GPU.SelectAdapter] to obtain a device.
func NewGPU(name string) (*GPU, error) {
	if !live.CompareAndSwap(false, true) {
		return nil, ErrGPUExists
	}
	gp := &GPU{Name: name}
	gp.Instance = wgpu.CreateInstance(nil)
	if gp.Instance == nil {
		live.Store(false)
		return nil, ErrNoAdapter
	}
	return gp, nil
}

// SelectAdapter requests an adapter able to present to the given
// surface, then a device and queue from it. This is the one blocking
// step of setup.
func (gp *GPU) SelectAdapter(compatible *wgpu.Surface) error {
	adapter, err := gp.Instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface: compatible,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNoAdapter, err)
	}
	if adapter == nil {
		return ErrNoAdapter
	}
	gp.Adapter = adapter

	device, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label: gp.Name,
		RequiredLimits: &wgpu.RequiredLimits{
			Limits: wgpu.DefaultLimits(),
		},
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNoDevice, err)
	}
	if device == nil {
		return ErrNoDevice
	}
	gp.Device = device
	gp.Queue = device.GetQueue()
	if Debug {
		slog.Info("gpu.GPU: device acquired", "name", gp.Name)
	}
	return nil
}

// Release destroys the device, adapter and instance, in that order.
func (gp *GPU) Release() {
	if gp.Queue != nil {
		gp.Queue.Release()
		gp.Queue = nil
	}
	if gp.Device != nil {
		gp.Device.Release()
		gp.Device = nil
	}
	if gp.Adapter != nil {
		gp.Adapter.Release()
		gp.Adapter = nil
	}
	if gp.Instance != nil {
		gp.Instance.Release()
		gp.Instance = nil
		live.Store(false)
	}
}
