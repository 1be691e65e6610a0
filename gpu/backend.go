// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image"

	"github.com/cogentcore/webgpu/wgpu"
)

// Resource is a GPU object owned by a [Backend]: a texture, a
// pipeline, or the camera binding. [Graphics] holds resources only
// to hand them back to the backend in draw calls and to release them.
type Resource interface {
	Release()
}

// PipelineDesc describes a render pipeline to create.
type PipelineDesc struct {
	// Label names the pipeline and its GPU objects.
	Label string

	// Source is WGSL text with vs_main and fs_main entry points.
	Source string

	// Layout is the vertex buffer layout.
	Layout wgpu.VertexBufferLayout

	// Vertices is the vertex buffer content.
	Vertices []byte

	// Indices is the index buffer content, nil for non-indexed drawing.
	Indices []uint16

	// Texture is bound at group 0 when non-nil, moving the camera to group 1.
	Texture Resource
}

// DrawCall is one pipeline draw within the frame's render pass.
type DrawCall struct {
	// Pipeline is the pipeline resource to set.
	Pipeline Resource

	// BindGroups are the resources bound at groups 0, 1, ... in order.
	BindGroups []Resource

	// VertexCount is the number of vertices drawn when not indexed.
	VertexCount uint32

	// IndexCount is the number of indices drawn; 0 means not indexed.
	IndexCount uint32
}

// Indexed returns true if the draw uses the index buffer.
func (dc *DrawCall) Indexed() bool {
	return dc.IndexCount > 0
}

// Backend is the set of device operations [Graphics] drives.
// [System] is the WebGPU implementation.
type Backend interface {
	// Size returns the configured output surface size.
	Size() image.Point

	// Resize reconfigures the output surface synchronously.
	Resize(size image.Point) error

	// NewTexture uploads an image and returns its bindable resource.
	NewTexture(label string, img *image.RGBA) (Resource, error)

	// NewPipeline compiles the shader and creates the pipeline
	// with its vertex and index buffers.
	NewPipeline(pd *PipelineDesc) (Resource, error)

	// Camera returns the camera uniform binding resource.
	Camera() Resource

	// WriteCamera uploads the camera uniform bytes.
	WriteCamera(data []byte) error

	// Render acquires the next frame, runs one render pass clearing to
	// the clear color and issuing the draws in order, then submits and
	// presents. An outdated surface returns [ErrSurfaceOutdated].
	Render(clear wgpu.Color, draws []DrawCall) error

	// Release frees the surface and device.
	Release()
}
