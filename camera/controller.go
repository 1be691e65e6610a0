// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import (
	"github.com/genesis-engine/genesis/events/key"
)

// Controller translates arrow key presses into camera eye motion.
// Up and down move the eye toward and away from the target; left and
// right orbit the eye around the target at a constant distance.
type Controller struct {
	// Speed is the distance moved per update while a key is held.
	Speed float32

	forward  bool
	backward bool
	left     bool
	right    bool
}

// NewController returns a controller moving at the given speed.
func NewController(speed float32) *Controller {
	return &Controller{Speed: speed}
}

// ProcessKey records the pressed state of an arrow key.
// It returns true if the key was consumed.
func (cc *Controller) ProcessKey(code key.Codes, pressed bool) bool {
	switch code {
	case key.CodeUpArrow:
		cc.forward = pressed
	case key.CodeDownArrow:
		cc.backward = pressed
	case key.CodeLeftArrow:
		cc.left = pressed
	case key.CodeRightArrow:
		cc.right = pressed
	default:
		return false
	}
	return true
}

// Reset releases all keys.
func (cc *Controller) Reset() {
	cc.forward, cc.backward, cc.left, cc.right = false, false, false, false
}

// UpdateCamera moves the camera eye according to the held keys.
// Forward motion stops before the eye would reach the target.
func (cc *Controller) UpdateCamera(c *Camera) {
	forward := c.Target.Sub(c.Eye)
	forwardNorm := forward.Normal()
	forwardMag := forward.Length()

	if cc.forward && forwardMag > cc.Speed {
		c.Eye = c.Eye.Add(forwardNorm.MulScalar(cc.Speed))
	}
	if cc.backward {
		c.Eye = c.Eye.Sub(forwardNorm.MulScalar(cc.Speed))
	}

	right := forwardNorm.Cross(c.Up)

	// redo in case forward or backward moved the eye
	forward = c.Target.Sub(c.Eye)
	forwardMag = forward.Length()

	if cc.right {
		c.Eye = c.Target.Sub(forward.Add(right.MulScalar(cc.Speed)).Normal().MulScalar(forwardMag))
	}
	if cc.left {
		c.Eye = c.Target.Sub(forward.Sub(right.MulScalar(cc.Speed)).Normal().MulScalar(forwardMag))
	}
}
