// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package camera provides the perspective camera, the view-projection
// uniform derived from it each frame, and a keyboard controller that
// moves the camera eye.
package camera

import (
	"cogentcore.org/core/math32"
)

// Camera is the view state: where the eye is, what it looks at, and
// the perspective frustum. It is plain data, mutated once per frame by
// a [Controller] or by scene code.
type Camera struct {
	// Eye is the camera position in world coordinates.
	Eye math32.Vector3

	// Target is the point the camera looks at.
	Target math32.Vector3

	// Up is the world up direction used to orient the view.
	Up math32.Vector3

	// Aspect is width / height of the output surface.
	Aspect float32

	// FOV is the vertical field of view in degrees.
	FOV float32

	// Near and Far are the clipping plane distances.
	Near float32
	Far  float32
}

// New returns a camera looking at the origin from slightly above and
// in front of it, with the given aspect ratio.
func New(aspect float32) *Camera {
	return &Camera{
		Eye:    math32.Vec3(0, 1, 2),
		Target: math32.Vec3(0, 0, 0),
		Up:     math32.Vec3(0, 1, 0),
		Aspect: aspect,
		FOV:    45,
		Near:   0.1,
		Far:    100,
	}
}

// SetAspect sets the aspect ratio from a pixel size.
// A zero dimension leaves the aspect unchanged.
func (c *Camera) SetAspect(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Aspect = float32(width) / float32(height)
}

// ViewMatrix returns the camera view matrix, based on the position
// of the camera facing the target, with the up vector.
func (c *Camera) ViewMatrix() math32.Matrix4 {
	var lookq math32.Quat
	lookq.SetFromRotationMatrix(math32.NewLookAt(c.Eye, c.Target, c.Up))
	scale := math32.Vec3(1, 1, 1)
	var cview math32.Matrix4
	cview.SetTransform(c.Eye, lookq, scale)
	view, _ := cview.Inverse()
	if view == nil {
		var id math32.Matrix4
		id.SetIdentity()
		return id
	}
	return *view
}

// ProjectionMatrix returns the perspective projection for the frustum.
func (c *Camera) ProjectionMatrix() math32.Matrix4 {
	var prjn math32.Matrix4
	prjn.SetPerspective(c.FOV, c.Aspect, c.Near, c.Far)
	return prjn
}
