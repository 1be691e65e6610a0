// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gputest provides a [gpu.Backend] that records the calls
// made to it instead of talking to a device, for testing code that
// renders through [gpu.Graphics] without a GPU or a window.
package gputest

import (
	"fmt"
	"image"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/genesis-engine/genesis/gpu"
)

// Resource is a fake GPU resource that remembers its label and
// whether it has been released.
type Resource struct {
	Label    string
	Released bool

	rec *Recorder
}

func (r *Resource) Release() {
	r.Released = true
	if r.rec != nil {
		r.rec.logf("release %s", r.Label)
	}
}

// Frame is one recorded call to Render.
type Frame struct {
	Clear wgpu.Color
	Draws []gpu.DrawCall
}

// Recorder is a [gpu.Backend] that records every call in Log, in
// order, and whose failures can be injected.
type Recorder struct {
	// SurfaceSize is the size returned by Size and set by Resize.
	SurfaceSize image.Point

	// Log has one line per call, e.g. "render 3" or "resize (800,600)".
	Log []string

	// Frames are the successfully rendered frames.
	Frames []Frame

	// Textures and Pipelines are the resources created, in order.
	Textures  []*Resource
	Pipelines []*Resource

	// PipelineDescs are the descriptors passed to NewPipeline.
	PipelineDescs []*gpu.PipelineDesc

	// CameraData is the last data written with WriteCamera.
	CameraData []byte

	// Resizes are the sizes passed to Resize.
	Resizes []image.Point

	// Outdated is the number of upcoming Render calls that fail
	// with [gpu.ErrSurfaceOutdated].
	Outdated int

	// RenderErr, PipelineErr, TextureErr and CameraErr are returned
	// by the corresponding calls when non-nil.
	RenderErr   error
	PipelineErr error
	TextureErr  error
	CameraErr   error

	// ReleasedBackend is set by Release.
	ReleasedBackend bool

	camera *Resource
}

// NewRecorder returns a recorder with a surface of the given size.
func NewRecorder(width, height int) *Recorder {
	rc := &Recorder{SurfaceSize: image.Pt(width, height)}
	rc.camera = &Resource{Label: "camera", rec: rc}
	return rc
}

func (rc *Recorder) logf(format string, args ...any) {
	rc.Log = append(rc.Log, fmt.Sprintf(format, args...))
}

func (rc *Recorder) Size() image.Point {
	return rc.SurfaceSize
}

func (rc *Recorder) Resize(size image.Point) error {
	rc.logf("resize %v", size)
	rc.Resizes = append(rc.Resizes, size)
	rc.SurfaceSize = size
	return nil
}

func (rc *Recorder) NewTexture(label string, img *image.RGBA) (gpu.Resource, error) {
	rc.logf("texture %s %v", label, img.Rect.Size())
	if rc.TextureErr != nil {
		return nil, rc.TextureErr
	}
	r := &Resource{Label: label, rec: rc}
	rc.Textures = append(rc.Textures, r)
	return r, nil
}

func (rc *Recorder) NewPipeline(pd *gpu.PipelineDesc) (gpu.Resource, error) {
	rc.logf("pipeline %s", pd.Label)
	if rc.PipelineErr != nil {
		return nil, rc.PipelineErr
	}
	r := &Resource{Label: pd.Label, rec: rc}
	rc.Pipelines = append(rc.Pipelines, r)
	rc.PipelineDescs = append(rc.PipelineDescs, pd)
	return r, nil
}

func (rc *Recorder) Camera() gpu.Resource {
	return rc.camera
}

func (rc *Recorder) WriteCamera(data []byte) error {
	rc.logf("camera %d", len(data))
	if rc.CameraErr != nil {
		return rc.CameraErr
	}
	rc.CameraData = append(rc.CameraData[:0], data...)
	return nil
}

func (rc *Recorder) Render(clear wgpu.Color, draws []gpu.DrawCall) error {
	if rc.Outdated > 0 {
		rc.Outdated--
		rc.logf("render outdated")
		return fmt.Errorf("%w: surface texture status outdated", gpu.ErrSurfaceOutdated)
	}
	if rc.RenderErr != nil {
		rc.logf("render error")
		return rc.RenderErr
	}
	rc.logf("render %d", len(draws))
	rc.Frames = append(rc.Frames, Frame{Clear: clear, Draws: draws})
	return nil
}

func (rc *Recorder) Release() {
	rc.logf("release backend")
	rc.ReleasedBackend = true
}

// LastFrame returns the most recent rendered frame, or nil if none.
func (rc *Recorder) LastFrame() *Frame {
	if len(rc.Frames) == 0 {
		return nil
	}
	return &rc.Frames[len(rc.Frames)-1]
}
