// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
)

// Vertices is vertex data in one of the fixed layouts pipelines accept.
type Vertices interface {
	// Len returns the number of vertices.
	Len() int

	// Bytes returns the vertex data as uploaded to the vertex buffer.
	Bytes() []byte

	// Layout returns the vertex buffer layout for the pipeline.
	Layout() wgpu.VertexBufferLayout
}

// ColorVertex is a vertex with a position and an RGBA color:
//
//	@location(0) position: vec3<f32>,
//	@location(1) color: vec4<f32>,
type ColorVertex struct {
	Position [3]float32
	Color    [4]float32
}

// TexVertex is a vertex with a position and a texture coordinate:
//
//	@location(0) position: vec3<f32>,
//	@location(1) tex_coords: vec2<f32>,
type TexVertex struct {
	Position  [3]float32
	TexCoords [2]float32
}

// ColorVertices is a list of [ColorVertex].
type ColorVertices []ColorVertex

func (vs ColorVertices) Len() int      { return len(vs) }
func (vs ColorVertices) Bytes() []byte { return wgpu.ToBytes([]ColorVertex(vs)) }

func (vs ColorVertices) Layout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: uint64(unsafe.Sizeof(ColorVertex{})),
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
			{Format: wgpu.VertexFormatFloat32x4, Offset: uint64(unsafe.Offsetof(ColorVertex{}.Color)), ShaderLocation: 1},
		},
	}
}

// TexVertices is a list of [TexVertex].
type TexVertices []TexVertex

func (vs TexVertices) Len() int      { return len(vs) }
func (vs TexVertices) Bytes() []byte { return wgpu.ToBytes([]TexVertex(vs)) }

func (vs TexVertices) Layout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: uint64(unsafe.Sizeof(TexVertex{})),
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
			{Format: wgpu.VertexFormatFloat32x2, Offset: uint64(unsafe.Offsetof(TexVertex{}.TexCoords)), ShaderLocation: 1},
		},
	}
}

// IndexBytes returns 16-bit indices as uploaded to the index buffer,
// padded to a multiple of 4 bytes as buffer writes require.
func IndexBytes(indices []uint16) []byte {
	n := len(indices)
	if n%2 == 1 {
		padded := make([]uint16, n+1)
		copy(padded, indices)
		indices = padded
	}
	return wgpu.ToBytes(indices)
}
