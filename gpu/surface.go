// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"image"
	"log/slog"
	"strings"

	"cogentcore.org/core/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

// SurfaceProvider is a host window that a [Surface] can present to.
type SurfaceProvider interface {
	// SurfaceDescriptor returns the platform descriptor used to
	// create the WebGPU surface for the window.
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// Size returns the current drawable size in pixels.
	Size() image.Point
}

// Surface is the presentable render target of a window: the
// swapchain-like WebGPU surface plus its current configuration.
// The configuration must be re-applied whenever the window resizes,
// before the next present, which [Surface.SetSize] does synchronously.
type Surface struct {
	// Format is the pixel format chosen from the surface capabilities.
	Format wgpu.TextureFormat

	// Size is the configured size in pixels.
	Size image.Point

	surface *wgpu.Surface
	config  wgpu.SurfaceConfiguration
	gpu     *GPU
}

// NewSurface configures the surface for the device at the given size,
// using the first format and alpha mode the adapter reports.
func NewSurface(gp *GPU, surface *wgpu.Surface, size image.Point) (*Surface, error) {
	caps := surface.GetCapabilities(gp.Adapter)
	if len(caps.Formats) == 0 || len(caps.AlphaModes) == 0 {
		return nil, fmt.Errorf("%w: adapter reports no surface formats", ErrNoSurface)
	}
	sf := &Surface{surface: surface, gpu: gp, Format: caps.Formats[0]}
	sf.config = wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      sf.Format,
		PresentMode: wgpu.PresentModeFifo,
		AlphaMode:   caps.AlphaModes[0],
	}
	sf.SetSize(size)
	return sf, nil
}

// SetSize reconfigures the surface for a new size. A zero width or
// height, as reported for a minimized window, is ignored and the
// previous configuration is kept.
func (sf *Surface) SetSize(size image.Point) {
	if size.X <= 0 || size.Y <= 0 {
		return
	}
	sf.Size = size
	sf.Reconfigure()
}

// Reconfigure re-applies the current configuration to the surface.
func (sf *Surface) Reconfigure() {
	if sf.Size.X <= 0 || sf.Size.Y <= 0 {
		return
	}
	sf.config.Width = uint32(sf.Size.X)
	sf.config.Height = uint32(sf.Size.Y)
	sf.surface.Configure(sf.gpu.Adapter, sf.gpu.Device, &sf.config)
	if Debug {
		slog.Info("gpu.Surface: configured", "size", sf.Size, "format", sf.Format)
	}
}

// AcquireTexture returns the next frame texture and a view of it.
// If the surface reports it is outdated or lost, the error wraps
// [ErrSurfaceOutdated] and the caller should reconfigure and skip
// the frame.
func (sf *Surface) AcquireTexture() (*wgpu.Texture, *wgpu.TextureView, error) {
	tex, err := sf.surface.GetCurrentTexture()
	if err != nil {
		if isOutdated(err) {
			return nil, nil, fmt.Errorf("%w: %w", ErrSurfaceOutdated, err)
		}
		return nil, nil, errors.Log(err)
	}
	view, err := tex.CreateView(nil)
	if errors.Log(err) != nil {
		tex.Release()
		return nil, nil, err
	}
	return tex, view, nil
}

// isOutdated reports whether a frame acquisition error is one of the
// transient surface states that reconfiguration recovers from.
func isOutdated(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "outdated") || strings.Contains(msg, "lost") || strings.Contains(msg, "timeout")
}

// Present shows the rendered frame.
func (sf *Surface) Present() {
	sf.surface.Present()
}

// Release destroys the surface.
func (sf *Surface) Release() {
	if sf.surface == nil {
		return
	}
	sf.surface.Release()
	sf.surface = nil
}
