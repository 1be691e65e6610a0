// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

// clearRenderPass returns a render pass descriptor that clears the
// given view to the clear color and stores the result.
func clearRenderPass(view *wgpu.TextureView, clear wgpu.Color) *wgpu.RenderPassDescriptor {
	return &wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:       view,
			LoadOp:     wgpu.LoadOpClear,
			ClearValue: clear,
			StoreOp:    wgpu.StoreOpStore,
		}},
	}
}

// Render draws one frame. An outdated surface is returned as
// [ErrSurfaceOutdated] before anything is encoded.
func (sy *System) Render(clear wgpu.Color, draws []DrawCall) error {
	tex, view, err := sy.Surface.AcquireTexture()
	if err != nil {
		return err
	}
	defer tex.Release()
	defer view.Release()

	cmd, err := sy.GPU.Device.CreateCommandEncoder(nil)
	if err != nil {
		return errorf("command encoder", err)
	}
	defer cmd.Release()

	rp := cmd.BeginRenderPass(clearRenderPass(view, clear))
	for i := range draws {
		if err := encodeDraw(rp, &draws[i]); err != nil {
			errors.Log(rp.End())
			rp.Release()
			return errorf("draw", err)
		}
	}
	err = rp.End()
	rp.Release()
	if err != nil {
		return errorf("end render pass", err)
	}

	cb, err := cmd.Finish(nil)
	if err != nil {
		return errorf("finish", err)
	}
	defer cb.Release()
	sy.GPU.Queue.Submit(cb)
	sy.Surface.Present()
	return nil
}

// encodeDraw records one draw call into the render pass.
func encodeDraw(rp *wgpu.RenderPassEncoder, dc *DrawCall) error {
	pl, ok := dc.Pipeline.(*Pipeline)
	if !ok || pl.renderPipeline == nil {
		return fmt.Errorf("%T is not a live pipeline", dc.Pipeline)
	}
	rp.SetPipeline(pl.renderPipeline)
	for gi, r := range dc.BindGroups {
		b, ok := r.(bindable)
		if !ok {
			return fmt.Errorf("group %d: %T has no bind group", gi, r)
		}
		rp.SetBindGroup(uint32(gi), b.bindGroup(), nil)
	}
	rp.SetVertexBuffer(0, pl.vertexBuffer, 0, wgpu.WholeSize)
	if dc.Indexed() && pl.indexBuffer != nil {
		rp.SetIndexBuffer(pl.indexBuffer, wgpu.IndexFormatUint16, 0, wgpu.WholeSize)
		rp.DrawIndexed(dc.IndexCount, 1, 0, 0, 0)
		return nil
	}
	rp.Draw(dc.VertexCount, 1, 0, 0)
	return nil
}
