// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"image"
	"log/slog"

	"cogentcore.org/core/base/errors"
)

// System is the WebGPU [Backend]: one GPU device presenting to one
// window surface, with the camera uniform shared by all pipelines.
type System struct {
	// Name of the system, used as the device label.
	Name string

	// GPU is the device context.
	GPU *GPU

	// Surface is the window render target.
	Surface *Surface

	// CameraBinding is the camera uniform buffer and bind group.
	CameraBinding *CameraBinding
}

// NewSystem creates the GPU, the surface for the given window, picks a
// compatible adapter and device, configures the surface at the window
// size, and allocates the camera uniform.
func NewSystem(name string, sp SurfaceProvider) (*System, error) {
	gp, err := NewGPU(name)
	if err != nil {
		return nil, err
	}
	sy := &System{Name: name, GPU: gp}
	ws := gp.Instance.CreateSurface(sp.SurfaceDescriptor())
	if ws == nil {
		sy.Release()
		return nil, ErrNoSurface
	}
	if err := gp.SelectAdapter(ws); err != nil {
		ws.Release()
		sy.Release()
		return nil, err
	}
	sf, err := NewSurface(gp, ws, sp.Size())
	if err != nil {
		ws.Release()
		sy.Release()
		return nil, err
	}
	sy.Surface = sf
	cb, err := NewCameraBinding(gp)
	if err != nil {
		sy.Release()
		return nil, err
	}
	sy.CameraBinding = cb
	slog.Info("gpu.System: ready", "name", name, "size", sf.Size, "format", sf.Format)
	return sy, nil
}

func (sy *System) Size() image.Point {
	return sy.Surface.Size
}

func (sy *System) Resize(size image.Point) error {
	if size == sy.Surface.Size {
		sy.Surface.Reconfigure()
		return nil
	}
	sy.Surface.SetSize(size)
	return nil
}

func (sy *System) NewTexture(label string, img *image.RGBA) (Resource, error) {
	return NewTexture(sy.GPU, label, img)
}

// NewPipeline creates a pipeline whose bind group layouts are the
// texture layout at group 0, if any, followed by the camera layout.
func (sy *System) NewPipeline(pd *PipelineDesc) (Resource, error) {
	var groups []bindable
	if pd.Texture != nil {
		tb, ok := pd.Texture.(bindable)
		if !ok {
			return nil, fmt.Errorf("%w: %T is not a bindable texture", ErrInvalidTexture, pd.Texture)
		}
		groups = append(groups, tb)
	}
	groups = append(groups, sy.CameraBinding)
	return NewPipeline(sy.GPU, sy.Surface.Format, pd, groups)
}

func (sy *System) Camera() Resource {
	return sy.CameraBinding
}

func (sy *System) WriteCamera(data []byte) error {
	return sy.CameraBinding.Write(sy.GPU, data)
}

// Release frees the camera, the surface and the GPU, in that order.
func (sy *System) Release() {
	if sy.CameraBinding != nil {
		sy.CameraBinding.Release()
		sy.CameraBinding = nil
	}
	if sy.Surface != nil {
		sy.Surface.Release()
		sy.Surface = nil
	}
	if sy.GPU != nil {
		sy.GPU.Release()
		sy.GPU = nil
	}
}

// errorf logs and returns an error for a frame step.
func errorf(step string, err error) error {
	return errors.Log(fmt.Errorf("gpu.System: %s: %w", step, err))
}
