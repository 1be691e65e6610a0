// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene defines the lifecycle contract of application scenes
// and the [Manager] that decides which scene is active and drives
// their init and cleanup on transitions.
package scene

import (
	"context"
	"time"

	"github.com/genesis-engine/genesis/events"
	"github.com/genesis-engine/genesis/gpu"
)

// Scene is a unit of application behavior with a lifecycle driven by
// a [Manager] and the engine loop.
type Scene interface {
	// Init is called once per activation, before the first Draw, when
	// the scene is not yet initialized. It may load textures and
	// shaders into g.
	Init(g *gpu.Graphics) error

	// Input handles one event. Calling exit stops the engine loop
	// before the next tick.
	Input(ev events.Event, exit context.CancelFunc)

	// Update advances scene state by dt.
	Update(dt time.Duration)

	// Draw configures Graphics state for the next frame, such as the
	// clear color. It does not render.
	Draw(g *gpu.Graphics)

	// Cleanup is called once when another scene becomes active.
	// Textures and pipelines loaded into Graphics are not released.
	Cleanup()

	// IsInitialized returns whether Init has succeeded.
	IsInitialized() bool

	// SetInitialized sets the initialized flag; the [Manager] sets it
	// after a successful Init.
	SetInitialized(init bool)
}

// Enterer is implemented by scenes that need to act every time they
// become active, including reactivations that skip Init. OnEnter is
// called by [Manager.Reconcile] after Init, so a scene can show the
// pipelines it hid in Cleanup.
type Enterer interface {
	OnEnter(g *gpu.Graphics)
}

// Base provides the initialized flag and no-op hooks, for embedding
// in concrete scenes, which override the hooks they need.
type Base struct {
	initialized bool
}

func (sc *Base) Init(g *gpu.Graphics) error                     { return nil }
func (sc *Base) Input(ev events.Event, exit context.CancelFunc) {}
func (sc *Base) Update(dt time.Duration)                        {}
func (sc *Base) Draw(g *gpu.Graphics)                           {}
func (sc *Base) Cleanup()                                       {}
func (sc *Base) IsInitialized() bool                            { return sc.initialized }
func (sc *Base) SetInitialized(init bool)                       { sc.initialized = init }
