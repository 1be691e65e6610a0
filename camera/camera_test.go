// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import (
	"encoding/binary"
	"math"
	"testing"

	"cogentcore.org/core/math32"
	"github.com/genesis-engine/genesis/events/key"
	"github.com/stretchr/testify/assert"
)

const tol = 1.0e-4

func project(u *Uniform, p math32.Vector3) math32.Vector4 {
	return math32.Vector4{X: p.X, Y: p.Y, Z: p.Z, W: 1}.MulMatrix4(&u.ViewProj)
}

func TestUpdateViewProjPure(t *testing.T) {
	a := New(1.5)
	b := New(1.5)

	ua := NewUniform()
	ub := NewUniform()
	ua.UpdateViewProj(a)
	ub.UpdateViewProj(b)
	assert.Equal(t, ua.ViewProj, ub.ViewProj)

	first := ua.ViewProj
	ua.UpdateViewProj(a)
	assert.Equal(t, first, ua.ViewProj)
	assert.Equal(t, ua.Bytes(), ub.Bytes())

	// camera is not modified
	assert.Equal(t, *b, *a)
}

func TestUpdateViewProjProjection(t *testing.T) {
	c := New(1)
	c.Eye = math32.Vec3(0, 0, 5)
	u := NewUniform()
	u.UpdateViewProj(c)

	center := project(u, c.Target)
	assert.Greater(t, center.W, float32(0))
	assert.InDelta(t, 0, center.X/center.W, tol)
	assert.InDelta(t, 0, center.Y/center.W, tol)

	above := project(u, math32.Vec3(0, 1, 0))
	assert.Greater(t, above.Y/above.W, float32(0))

	right := project(u, math32.Vec3(1, 0, 0))
	assert.Greater(t, right.X/right.W, float32(0))

	// changing the camera changes the matrix
	prev := u.ViewProj
	c.Eye = math32.Vec3(1, 2, 5)
	u.UpdateViewProj(c)
	assert.NotEqual(t, prev, u.ViewProj)
}

func TestUniformBytes(t *testing.T) {
	u := NewUniform()
	b := u.Bytes()
	assert.Len(t, b, UniformSize)
	// identity: 1 on the diagonal, column-major
	assert.Equal(t, float32(1), math.Float32frombits(binary.LittleEndian.Uint32(b[0:])))
	assert.Equal(t, float32(0), math.Float32frombits(binary.LittleEndian.Uint32(b[4:])))
	assert.Equal(t, float32(1), math.Float32frombits(binary.LittleEndian.Uint32(b[20:])))
	assert.Equal(t, float32(1), math.Float32frombits(binary.LittleEndian.Uint32(b[60:])))
}

func TestSetAspect(t *testing.T) {
	c := New(1)
	c.SetAspect(800, 600)
	assert.InDelta(t, 800.0/600.0, c.Aspect, tol)
	c.SetAspect(0, 600)
	assert.InDelta(t, 800.0/600.0, c.Aspect, tol)
}

func TestControllerForwardClamp(t *testing.T) {
	c := New(1)
	c.Eye = math32.Vec3(0, 0, 5)
	cc := NewController(1)
	assert.True(t, cc.ProcessKey(key.CodeUpArrow, true))

	cc.UpdateCamera(c)
	assert.InDelta(t, 4, c.Eye.Z, tol)

	// eye closer than one step: forward motion is blocked
	c.Eye = math32.Vec3(0, 0, 0.5)
	cc.UpdateCamera(c)
	assert.InDelta(t, 0.5, c.Eye.Z, tol)

	cc.ProcessKey(key.CodeUpArrow, false)
	cc.ProcessKey(key.CodeDownArrow, true)
	cc.UpdateCamera(c)
	assert.InDelta(t, 1.5, c.Eye.Z, tol)
}

func TestControllerOrbit(t *testing.T) {
	c := New(1)
	c.Eye = math32.Vec3(0, 0, 5)
	cc := NewController(0.5)
	cc.ProcessKey(key.CodeRightArrow, true)
	for range 10 {
		cc.UpdateCamera(c)
	}
	assert.InDelta(t, 5, c.Eye.Sub(c.Target).Length(), tol)
	assert.Less(t, c.Eye.X, float32(0))

	cc.Reset()
	c.Eye = math32.Vec3(0, 0, 5)
	cc.ProcessKey(key.CodeLeftArrow, true)
	cc.UpdateCamera(c)
	assert.InDelta(t, 5, c.Eye.Sub(c.Target).Length(), tol)
	assert.Greater(t, c.Eye.X, float32(0))
}

func TestControllerIgnoresOtherKeys(t *testing.T) {
	c := New(1)
	eye := c.Eye
	cc := NewController(1)
	assert.False(t, cc.ProcessKey(key.CodeW, true))
	assert.False(t, cc.ProcessKey(key.CodeEscape, true))
	cc.UpdateCamera(c)
	assert.Equal(t, eye, c.Eye)
}
