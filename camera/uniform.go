// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import (
	"encoding/binary"
	"math"

	"cogentcore.org/core/math32"
)

// UniformSize is the size in bytes of the camera uniform as the shader
// sees it: one mat4x4<f32>.
const UniformSize = 64

// Uniform is the camera data uploaded to the GPU each frame,
// in the layout the shader expects:
//
//	struct CameraUniform {
//	    view_proj: mat4x4<f32>,
//	};
type Uniform struct {
	// ViewProj is the projection matrix times the view matrix.
	ViewProj math32.Matrix4
}

// NewUniform returns a uniform holding the identity matrix.
func NewUniform() *Uniform {
	u := &Uniform{}
	u.ViewProj.SetIdentity()
	return u
}

// UpdateViewProj recomputes ViewProj from the camera. It depends only on
// the camera fields, so identical cameras give identical matrices.
func (u *Uniform) UpdateViewProj(c *Camera) {
	view := c.ViewMatrix()
	prjn := c.ProjectionMatrix()
	u.ViewProj.MulMatrices(&prjn, &view)
}

// Bytes returns the uniform encoded for upload: column-major,
// little-endian float32.
func (u *Uniform) Bytes() []byte {
	b := make([]byte, UniformSize)
	for i, v := range u.ViewProj {
		binary.LittleEndian.PutUint32(b[i*4:], math.Float32bits(v))
	}
	return b
}
