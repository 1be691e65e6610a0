// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"cogentcore.org/core/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/genesis-engine/genesis/camera"
)

// CameraBinding is the uniform buffer holding the camera view-projection
// matrix, and the bind group exposing it to vertex shaders:
//
//	@group(N) @binding(0) var<uniform> camera: CameraUniform;
//
// where N is 1 for textured pipelines and 0 otherwise.
type CameraBinding struct {
	buffer *wgpu.Buffer
	layout *wgpu.BindGroupLayout
	group  *wgpu.BindGroup
}

// NewCameraBinding creates the uniform buffer and its bind group.
func NewCameraBinding(gp *GPU) (*CameraBinding, error) {
	cb := &CameraBinding{}
	buf, err := gp.Device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "camera",
		Size:  camera.UniformSize,
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if errors.Log(err) != nil {
		return nil, err
	}
	cb.buffer = buf

	lay, err := gp.Device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "camera",
		Entries: []wgpu.BindGroupLayoutEntry{{
			Binding:    0,
			Visibility: wgpu.ShaderStageVertex,
			Buffer:     wgpu.BufferBindingLayout{Type: wgpu.BufferBindingTypeUniform},
		}},
	})
	if errors.Log(err) != nil {
		cb.Release()
		return nil, err
	}
	cb.layout = lay

	bg, err := gp.Device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "camera",
		Layout: lay,
		Entries: []wgpu.BindGroupEntry{{
			Binding: 0,
			Buffer:  buf,
			Offset:  0,
			Size:    wgpu.WholeSize,
		}},
	})
	if errors.Log(err) != nil {
		cb.Release()
		return nil, err
	}
	cb.group = bg
	return cb, nil
}

// Write uploads the uniform bytes.
func (cb *CameraBinding) Write(gp *GPU, data []byte) error {
	return errors.Log(gp.Queue.WriteBuffer(cb.buffer, 0, data))
}

func (cb *CameraBinding) bindGroup() *wgpu.BindGroup             { return cb.group }
func (cb *CameraBinding) bindGroupLayout() *wgpu.BindGroupLayout { return cb.layout }

// Release frees the bind group, layout and buffer.
func (cb *CameraBinding) Release() {
	if cb.group != nil {
		cb.group.Release()
		cb.group = nil
	}
	if cb.layout != nil {
		cb.layout.Release()
		cb.layout = nil
	}
	if cb.buffer != nil {
		cb.buffer.Release()
		cb.buffer = nil
	}
}
