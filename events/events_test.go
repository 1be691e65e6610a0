// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"image"
	"testing"

	"github.com/genesis-engine/genesis/events/key"
	"github.com/stretchr/testify/assert"
)

func TestQueueOrder(t *testing.T) {
	var q Queue
	assert.Nil(t, q.Drain())

	q.Send(NewKey(key.CodeUpArrow, 111, true))
	q.Send(nil)
	q.Send(NewResize(image.Point{640, 480}))
	q.Send(NewRedraw())
	assert.Equal(t, 3, q.Len())

	evs := q.Drain()
	if assert.Len(t, evs, 3) {
		assert.Equal(t, KeyDown, evs[0].Type())
		assert.Equal(t, WindowResize, evs[1].Type())
		assert.Equal(t, Redraw, evs[2].Type())
	}
	assert.Equal(t, 0, q.Len())
	assert.Nil(t, q.Drain())
}

func TestKey(t *testing.T) {
	down := NewKey(key.CodeEscape, 9, true)
	assert.True(t, down.Pressed())
	assert.Equal(t, KeyDown, down.Type())
	assert.False(t, down.Time().IsZero())
	assert.Equal(t, "KeyDown{Code: Escape, Scancode: 9}", down.String())

	up := NewKey(key.CodeUnknown, 77, false)
	assert.False(t, up.Pressed())
	assert.Equal(t, KeyUp, up.Type())
	assert.True(t, up.Type().IsKey())
	assert.False(t, up.Type().IsMouse())
}

func TestTypesString(t *testing.T) {
	assert.Equal(t, "WindowClose", WindowClose.String())
	assert.Equal(t, "UnknownType", Types(100).String())
	assert.Equal(t, "Unknown", key.Codes(100).String())
	assert.True(t, MouseMove.IsMouse())
	assert.True(t, key.CodeLeftArrow.IsArrow())
	assert.False(t, key.CodeW.IsArrow())
}
