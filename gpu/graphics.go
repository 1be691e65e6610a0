// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"cogentcore.org/core/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/genesis-engine/genesis/camera"
	"github.com/genesis-engine/genesis/gpu/imagefmt"
)

// TextureHandle identifies a loaded texture. Handles are indexes
// assigned in load order starting from 0.
type TextureHandle int

// NoTexture is passed to [Graphics.LoadShader] for untextured pipelines.
const NoTexture TextureHandle = -1

// PipelineHandle identifies a loaded pipeline, in load order from 0.
// Visible pipelines draw in handle order every frame.
type PipelineHandle int

// DefaultClearColor is the initial background color.
var DefaultClearColor = wgpu.Color{R: 0.3, G: 0.5, B: 0.4, A: 1}

// pipelineEntry is a loaded pipeline with its draw parameters.
type pipelineEntry struct {
	pipeline    Resource
	texture     TextureHandle
	vertexCount uint32
	indexCount  uint32
	hidden      bool
}

// Graphics is the rendering facade used by scenes and the engine:
// it owns the loaded textures and pipelines, the camera and its
// uniform, and the clear color, and it drives a [Backend] to draw
// them each frame.
//
// Graphics must be used from a single goroutine.
type Graphics struct {
	backend   Backend
	clear     wgpu.Color
	camera    *camera.Camera
	uniform   *camera.Uniform
	textures  []Resource
	pipelines []pipelineEntry
}

// NewGraphics creates the WebGPU system for the window and returns a
// Graphics drawing to it.
func NewGraphics(sp SurfaceProvider) (*Graphics, error) {
	sy, err := NewSystem("genesis", sp)
	if err != nil {
		return nil, err
	}
	return NewGraphicsBackend(sy), nil
}

// NewGraphicsBackend returns a Graphics driving the given backend,
// with the camera aspect taken from the backend size.
func NewGraphicsBackend(b Backend) *Graphics {
	sz := b.Size()
	aspect := float32(1)
	if sz.X > 0 && sz.Y > 0 {
		aspect = float32(sz.X) / float32(sz.Y)
	}
	g := &Graphics{
		backend: b,
		clear:   DefaultClearColor,
		camera:  camera.New(aspect),
		uniform: camera.NewUniform(),
	}
	g.uniform.UpdateViewProj(g.camera)
	return g
}

// SetClearColor sets the background color used from the next frame on.
func (g *Graphics) SetClearColor(c color.Color) {
	r, gr, b, a := c.RGBA()
	g.clear = wgpu.Color{
		R: float64(r) / 0xffff,
		G: float64(gr) / 0xffff,
		B: float64(b) / 0xffff,
		A: float64(a) / 0xffff,
	}
}

// ClearColor returns the current background color.
func (g *Graphics) ClearColor() wgpu.Color {
	return g.clear
}

// LoadTexture decodes the encoded image bytes and uploads them,
// returning the handle of the new texture. Undecodable bytes return
// an error wrapping [ErrMalformedImage].
func (g *Graphics) LoadTexture(data []byte) (TextureHandle, error) {
	img, format, err := imagefmt.Decode(data)
	if err != nil {
		return NoTexture, fmt.Errorf("%w: %w", ErrMalformedImage, err)
	}
	h := TextureHandle(len(g.textures))
	tx, err := g.backend.NewTexture(fmt.Sprintf("texture %d", h), img)
	if err != nil {
		return NoTexture, err
	}
	g.textures = append(g.textures, tx)
	slog.Debug("gpu.Graphics: loaded texture", "handle", h, "format", format, "size", img.Rect.Size())
	return h, nil
}

// LoadShader compiles the WGSL shader into a pipeline drawing the
// given vertices, indexed when indices is non-empty. If tex is not
// [NoTexture], the texture is bound at group 0 and the camera at
// group 1; otherwise the camera is at group 0.
func (g *Graphics) LoadShader(src string, verts Vertices, indices []uint16, tex TextureHandle) (PipelineHandle, error) {
	if tex != NoTexture && (tex < 0 || int(tex) >= len(g.textures)) {
		return -1, fmt.Errorf("%w: %d of %d", ErrInvalidTexture, tex, len(g.textures))
	}
	if verts == nil || verts.Len() == 0 {
		return -1, ErrNoVertices
	}
	h := PipelineHandle(len(g.pipelines))
	pd := &PipelineDesc{
		Label:    fmt.Sprintf("pipeline %d", h),
		Source:   src,
		Layout:   verts.Layout(),
		Vertices: verts.Bytes(),
		Indices:  indices,
	}
	if tex != NoTexture {
		pd.Texture = g.textures[tex]
	}
	pl, err := g.backend.NewPipeline(pd)
	if err != nil {
		if !errors.Is(err, ErrShaderCompile) {
			err = fmt.Errorf("%w: %w", ErrShaderCompile, err)
		}
		return -1, err
	}
	g.pipelines = append(g.pipelines, pipelineEntry{
		pipeline:    pl,
		texture:     tex,
		vertexCount: uint32(verts.Len()),
		indexCount:  uint32(len(indices)),
	})
	return h, nil
}

// SetVisible shows or hides the pipeline. Hidden pipelines stay
// loaded but are not drawn until shown again.
func (g *Graphics) SetVisible(h PipelineHandle, visible bool) error {
	if h < 0 || int(h) >= len(g.pipelines) {
		return fmt.Errorf("%w: %d of %d", ErrInvalidPipeline, h, len(g.pipelines))
	}
	g.pipelines[h].hidden = !visible
	return nil
}

// Visible returns whether the pipeline is drawn each frame.
func (g *Graphics) Visible(h PipelineHandle) bool {
	if h < 0 || int(h) >= len(g.pipelines) {
		return false
	}
	return !g.pipelines[h].hidden
}

// drawCalls returns the draw calls for the visible pipelines in load order.
func (g *Graphics) drawCalls() []DrawCall {
	cam := g.backend.Camera()
	draws := make([]DrawCall, 0, len(g.pipelines))
	for _, pe := range g.pipelines {
		if pe.hidden {
			continue
		}
		dc := DrawCall{Pipeline: pe.pipeline, VertexCount: pe.vertexCount, IndexCount: pe.indexCount}
		if pe.texture != NoTexture {
			dc.BindGroups = append(dc.BindGroups, g.textures[pe.texture])
		}
		dc.BindGroups = append(dc.BindGroups, cam)
		draws = append(draws, dc)
	}
	return draws
}

// Render draws one frame: clear, then every visible pipeline in load order.
// If the surface is outdated it is reconfigured at its current size,
// the frame is skipped, and nil is returned.
func (g *Graphics) Render() error {
	err := g.backend.Render(g.clear, g.drawCalls())
	if errors.Is(err, ErrSurfaceOutdated) {
		slog.Debug("gpu.Graphics: surface outdated, skipping frame")
		return g.backend.Resize(g.backend.Size())
	}
	return err
}

// Resize reconfigures the surface and updates the camera aspect.
// A zero width or height is ignored.
func (g *Graphics) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return nil
	}
	if err := g.backend.Resize(image.Pt(width, height)); err != nil {
		return err
	}
	g.camera.SetAspect(width, height)
	return nil
}

// UpdateCamera recomputes the view-projection matrix from the camera
// and uploads it.
func (g *Graphics) UpdateCamera() error {
	g.uniform.UpdateViewProj(g.camera)
	return g.backend.WriteCamera(g.uniform.Bytes())
}

// Camera returns the camera, for controllers to modify.
func (g *Graphics) Camera() *camera.Camera {
	return g.camera
}

// Uniform returns the last computed camera uniform.
func (g *Graphics) Uniform() *camera.Uniform {
	return g.uniform
}

// NumTextures returns the number of loaded textures.
func (g *Graphics) NumTextures() int { return len(g.textures) }

// NumPipelines returns the number of loaded pipelines.
func (g *Graphics) NumPipelines() int { return len(g.pipelines) }

// Size returns the surface size.
func (g *Graphics) Size() image.Point {
	return g.backend.Size()
}

// Release frees pipelines, then textures, then the backend.
func (g *Graphics) Release() {
	for i := len(g.pipelines) - 1; i >= 0; i-- {
		g.pipelines[i].pipeline.Release()
	}
	g.pipelines = nil
	for i := len(g.textures) - 1; i >= 0; i-- {
		g.textures[i].Release()
	}
	g.textures = nil
	if g.backend != nil {
		g.backend.Release()
		g.backend = nil
	}
}
