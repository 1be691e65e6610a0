// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the discrete notifications an event source
// hands to the engine: key, pointer, close, resize and redraw.
package events

import (
	"fmt"
	"image"
	"time"

	"github.com/genesis-engine/genesis/events/key"
)

// Event is the interface for all events.
type Event interface {
	fmt.Stringer

	// Type returns the type of event.
	Type() Types

	// Time returns the time at which the event was generated.
	Time() time.Time
}

// Base is the base type for events, embedded by all concrete events.
type Base struct {
	Typ Types

	// GenTime is when the event was generated
	GenTime time.Time
}

func (ev *Base) Type() Types     { return ev.Typ }
func (ev *Base) Time() time.Time { return ev.GenTime }

func (ev *Base) init(typ Types) {
	ev.Typ = typ
	ev.GenTime = time.Now()
}

// Key is a key press or release with its physical code.
type Key struct {
	Base

	// Code is the physical key
	Code key.Codes

	// Scancode is the platform-specific scancode, useful when Code is unknown
	Scancode int
}

// NewKey returns a new KeyDown (pressed) or KeyUp event.
func NewKey(code key.Codes, scancode int, pressed bool) *Key {
	ev := &Key{Code: code, Scancode: scancode}
	if pressed {
		ev.init(KeyDown)
	} else {
		ev.init(KeyUp)
	}
	return ev
}

// Pressed returns true for a KeyDown event.
func (ev *Key) Pressed() bool {
	return ev.Typ == KeyDown
}

func (ev *Key) String() string {
	return fmt.Sprintf("%v{Code: %v, Scancode: %d}", ev.Typ, ev.Code, ev.Scancode)
}

// Buttons is a mouse button.
type Buttons int32

const (
	NoButton Buttons = iota
	Left
	Middle
	Right
)

// Mouse is a pointer event. It is passed through to scenes unchanged;
// the engine itself does not interpret it.
type Mouse struct {
	Base

	// Button is the button for MouseDown and MouseUp, NoButton for MouseMove
	Button Buttons

	// Where is the pointer position in window pixels
	Where image.Point
}

// NewMouse returns a new mouse event of the given type.
func NewMouse(typ Types, but Buttons, where image.Point) *Mouse {
	ev := &Mouse{Button: but, Where: where}
	ev.init(typ)
	return ev
}

func (ev *Mouse) String() string {
	return fmt.Sprintf("%v{Button: %d, Where: %v}", ev.Typ, ev.Button, ev.Where)
}

// Resize reports a new drawable size in pixels.
type Resize struct {
	Base

	Size image.Point
}

func NewResize(size image.Point) *Resize {
	ev := &Resize{Size: size}
	ev.init(WindowResize)
	return ev
}

func (ev *Resize) String() string {
	return fmt.Sprintf("%v{Size: %v}", ev.Typ, ev.Size)
}

// Window is an event without payload: WindowClose or Redraw.
type Window struct {
	Base
}

// NewClose returns a new WindowClose event.
func NewClose() *Window {
	ev := &Window{}
	ev.init(WindowClose)
	return ev
}

// NewRedraw returns a new Redraw event.
func NewRedraw() *Window {
	ev := &Window{}
	ev.init(Redraw)
	return ev
}

func (ev *Window) String() string {
	return ev.Typ.String()
}
