// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Types determines the type of event delivered by an event source.
// The engine treats the stream as opaque tagged events, dispatching
// on the type.
type Types int32

const (
	// zero value is an unknown type
	UnknownType Types = iota

	// KeyDown is when a key is pressed down.
	KeyDown

	// KeyUp is when a key is released.
	KeyUp

	// MouseDown happens when a mouse button is pressed down.
	MouseDown

	// MouseUp happens when a mouse button is released.
	MouseUp

	// MouseMove is sent when the pointer moves.
	MouseMove

	// WindowClose is sent when the host requests the window be closed.
	WindowClose

	// WindowResize is sent when the drawable size of the window changes.
	// The new size is in pixels.
	WindowResize

	// Redraw requests one update and render cycle.
	Redraw
)

var typeNames = [...]string{
	UnknownType:  "UnknownType",
	KeyDown:      "KeyDown",
	KeyUp:        "KeyUp",
	MouseDown:    "MouseDown",
	MouseUp:      "MouseUp",
	MouseMove:    "MouseMove",
	WindowClose:  "WindowClose",
	WindowResize: "WindowResize",
	Redraw:       "Redraw",
}

func (tp Types) String() string {
	if tp < 0 || int(tp) >= len(typeNames) {
		return "UnknownType"
	}
	return typeNames[tp]
}

// IsKey returns true for key press and release types.
func (tp Types) IsKey() bool {
	return tp == KeyDown || tp == KeyUp
}

// IsMouse returns true for pointer types.
func (tp Types) IsMouse() bool {
	return tp >= MouseDown && tp <= MouseMove
}
