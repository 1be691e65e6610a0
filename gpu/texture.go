// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image"

	"cogentcore.org/core/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

// TextureFormat is the pixel format of all loaded textures.
const TextureFormat = wgpu.TextureFormatRGBA8UnormSrgb

// Texture is an image in device memory together with its view,
// sampler, and the bind group exposing both to a fragment shader:
//
//	@group(0) @binding(0) var t_diffuse: texture_2d<f32>;
//	@group(0) @binding(1) var s_diffuse: sampler;
type Texture struct {
	// Name of the texture, used as the label of its GPU objects.
	Name string

	// Size of the texture in pixels.
	Size image.Point

	texture *wgpu.Texture
	view    *wgpu.TextureView
	sampler *wgpu.Sampler
	layout  *wgpu.BindGroupLayout
	group   *wgpu.BindGroup
}

// NewTexture uploads the image to the device and builds its sampler
// and bind group.
func NewTexture(gp *GPU, name string, img *image.RGBA) (*Texture, error) {
	tx := &Texture{Name: name, Size: img.Rect.Size()}
	if err := tx.create(gp); err != nil {
		tx.Release()
		return nil, err
	}
	if err := tx.write(gp, img); err != nil {
		tx.Release()
		return nil, err
	}
	if err := tx.bind(gp); err != nil {
		tx.Release()
		return nil, err
	}
	return tx, nil
}

func (tx *Texture) extent() wgpu.Extent3D {
	return wgpu.Extent3D{
		Width:              uint32(tx.Size.X),
		Height:             uint32(tx.Size.Y),
		DepthOrArrayLayers: 1,
	}
}

// create makes the texture and a view of it.
func (tx *Texture) create(gp *GPU) error {
	t, err := gp.Device.CreateTexture(&wgpu.TextureDescriptor{
		Label:         tx.Name,
		Size:          tx.extent(),
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        TextureFormat,
		Usage:         wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst,
	})
	if errors.Log(err) != nil {
		return err
	}
	tx.texture = t
	vw, err := t.CreateView(nil)
	if errors.Log(err) != nil {
		return err
	}
	tx.view = vw
	return nil
}

// write starts the WriteTexture call to upload the pixels.
func (tx *Texture) write(gp *GPU, img *image.RGBA) error {
	size := tx.extent()
	// https://www.w3.org/TR/webgpu/#gpuimagecopytexture
	return errors.Log(gp.Queue.WriteTexture(
		&wgpu.ImageCopyTexture{
			Aspect:   wgpu.TextureAspectAll,
			Texture:  tx.texture,
			MipLevel: 0,
			Origin:   wgpu.Origin3D{X: 0, Y: 0, Z: 0},
		},
		img.Pix,
		&wgpu.TextureDataLayout{
			Offset:       0,
			BytesPerRow:  uint32(img.Stride),
			RowsPerImage: uint32(tx.Size.Y),
		},
		&size,
	))
}

// bind creates the sampler, layout and bind group.
func (tx *Texture) bind(gp *GPU) error {
	sm, err := gp.Device.CreateSampler(&wgpu.SamplerDescriptor{
		Label:         tx.Name,
		AddressModeU:  wgpu.AddressModeClampToEdge,
		AddressModeV:  wgpu.AddressModeClampToEdge,
		AddressModeW:  wgpu.AddressModeClampToEdge,
		MagFilter:     wgpu.FilterModeLinear,
		MinFilter:     wgpu.FilterModeNearest,
		MipmapFilter:  wgpu.MipmapFilterModeNearest,
		LodMinClamp:   0,
		LodMaxClamp:   32,
		MaxAnisotropy: 1,
	})
	if errors.Log(err) != nil {
		return err
	}
	tx.sampler = sm

	lay, err := gp.Device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: tx.Name,
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageFragment,
				Texture: wgpu.TextureBindingLayout{
					SampleType:    wgpu.TextureSampleTypeFloat,
					ViewDimension: wgpu.TextureViewDimension2D,
					Multisampled:  false,
				},
			},
			{
				Binding:    1,
				Visibility: wgpu.ShaderStageFragment,
				Sampler:    wgpu.SamplerBindingLayout{Type: wgpu.SamplerBindingTypeFiltering},
			},
		},
	})
	if errors.Log(err) != nil {
		return err
	}
	tx.layout = lay

	bg, err := gp.Device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  tx.Name,
		Layout: lay,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, TextureView: tx.view},
			{Binding: 1, Sampler: tx.sampler},
		},
	})
	if errors.Log(err) != nil {
		return err
	}
	tx.group = bg
	return nil
}

func (tx *Texture) bindGroup() *wgpu.BindGroup             { return tx.group }
func (tx *Texture) bindGroupLayout() *wgpu.BindGroupLayout { return tx.layout }

// Release frees the bind group, sampler, view and texture.
func (tx *Texture) Release() {
	if tx.group != nil {
		tx.group.Release()
		tx.group = nil
	}
	if tx.layout != nil {
		tx.layout.Release()
		tx.layout = nil
	}
	if tx.sampler != nil {
		tx.sampler.Release()
		tx.sampler = nil
	}
	if tx.view != nil {
		tx.view.Release()
		tx.view = nil
	}
	if tx.texture != nil {
		tx.texture.Release()
		tx.texture = nil
	}
}
