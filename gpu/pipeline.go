// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"log/slog"

	"cogentcore.org/core/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

// Shader entry point names every pipeline shader must define.
const (
	VertexEntry   = "vs_main"
	FragmentEntry = "fs_main"
)

// bindable is a resource with a bind group, i.e., a texture or the camera.
type bindable interface {
	bindGroup() *wgpu.BindGroup
	bindGroupLayout() *wgpu.BindGroupLayout
}

// Pipeline is a compiled shader program with its fixed-function
// state and the vertex and index buffers it draws. The buffers are
// immutable after creation.
type Pipeline struct {
	// Name of the pipeline, used as the label of its GPU objects.
	Name string

	// Primitive has the topology, front face and cull mode.
	Primitive wgpu.PrimitiveState

	// Multisample has the multisample state.
	Multisample wgpu.MultisampleState

	module         *wgpu.ShaderModule
	layout         *wgpu.PipelineLayout
	renderPipeline *wgpu.RenderPipeline
	vertexBuffer   *wgpu.Buffer
	indexBuffer    *wgpu.Buffer
}

// SetGraphicsDefaults configures the default settings:
// triangle list, counter-clockwise front faces, back face culling.
func (pl *Pipeline) SetGraphicsDefaults() {
	pl.Primitive.Topology = wgpu.PrimitiveTopologyTriangleList
	pl.Primitive.FrontFace = wgpu.FrontFaceCCW
	pl.Primitive.CullMode = wgpu.CullModeBack
	pl.Multisample.Count = 1
	pl.Multisample.Mask = 0xFFFFFFFF
}

// NewPipeline compiles the shader, builds the pipeline layout from the
// given bind group layouts in group order, and creates the buffers.
// Shader and pipeline failures are wrapped in [ErrShaderCompile].
func NewPipeline(gp *GPU, format wgpu.TextureFormat, pd *PipelineDesc, groups []bindable) (*Pipeline, error) {
	pl := &Pipeline{Name: pd.Label}
	pl.SetGraphicsDefaults()
	if err := pl.config(gp, format, pd, groups); err != nil {
		pl.Release()
		return nil, err
	}
	if err := pl.createBuffers(gp, pd); err != nil {
		pl.Release()
		return nil, err
	}
	return pl, nil
}

func (pl *Pipeline) config(gp *GPU, format wgpu.TextureFormat, pd *PipelineDesc, groups []bindable) error {
	module, err := gp.Device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          pl.Name,
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: pd.Source},
	})
	if err != nil {
		slog.Error("gpu.Pipeline: shader module", "pipeline", pl.Name, "err", err)
		return errors.Join(ErrShaderCompile, err)
	}
	pl.module = module

	lays := make([]*wgpu.BindGroupLayout, len(groups))
	for i, g := range groups {
		lays[i] = g.bindGroupLayout()
	}
	rpl, err := gp.Device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            pl.Name,
		BindGroupLayouts: lays,
	})
	if errors.Log(err) != nil {
		return errors.Join(ErrShaderCompile, err)
	}
	pl.layout = rpl

	rp, err := gp.Device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  pl.Name,
		Layout: pl.layout,
		Vertex: wgpu.VertexState{
			Module:     pl.module,
			EntryPoint: VertexEntry,
			Buffers:    []wgpu.VertexBufferLayout{pd.Layout},
		},
		Fragment: &wgpu.FragmentState{
			Module:     pl.module,
			EntryPoint: FragmentEntry,
			Targets: []wgpu.ColorTargetState{{
				Format:    format,
				Blend:     &wgpu.BlendStateReplace,
				WriteMask: wgpu.ColorWriteMaskAll,
			}},
		},
		Primitive:   pl.Primitive,
		Multisample: pl.Multisample,
	})
	if err != nil {
		slog.Error("gpu.Pipeline: render pipeline", "pipeline", pl.Name, "err", err)
		return errors.Join(ErrShaderCompile, err)
	}
	pl.renderPipeline = rp
	return nil
}

func (pl *Pipeline) createBuffers(gp *GPU, pd *PipelineDesc) error {
	vb, err := gp.Device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    pl.Name + " vertices",
		Contents: pd.Vertices,
		Usage:    wgpu.BufferUsageVertex,
	})
	if errors.Log(err) != nil {
		return err
	}
	pl.vertexBuffer = vb
	if len(pd.Indices) == 0 {
		return nil
	}
	ib, err := gp.Device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    pl.Name + " indices",
		Contents: IndexBytes(pd.Indices),
		Usage:    wgpu.BufferUsageIndex,
	})
	if errors.Log(err) != nil {
		return err
	}
	pl.indexBuffer = ib
	return nil
}

// Release frees the buffers, the render pipeline, its layout and
// the shader module.
func (pl *Pipeline) Release() {
	if pl.indexBuffer != nil {
		pl.indexBuffer.Release()
		pl.indexBuffer = nil
	}
	if pl.vertexBuffer != nil {
		pl.vertexBuffer.Release()
		pl.vertexBuffer = nil
	}
	if pl.renderPipeline != nil {
		pl.renderPipeline.Release()
		pl.renderPipeline = nil
	}
	if pl.layout != nil {
		pl.layout.Release()
		pl.layout = nil
	}
	if pl.module != nil {
		pl.module.Release()
		pl.module = nil
	}
}
