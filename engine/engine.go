// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package engine provides the main loop: it pumps events from the
// host, forwards input, and runs the scene and render sequence once
// per tick.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/genesis-engine/genesis/camera"
	"github.com/genesis-engine/genesis/config"
	"github.com/genesis-engine/genesis/events"
	"github.com/genesis-engine/genesis/gpu"
	"github.com/genesis-engine/genesis/scene"
)

// EventSource delivers host events. Poll returns the events that
// arrived since the last call, in arrival order.
type EventSource interface {
	Poll() []events.Event
}

// Engine is the outermost driver, owning the event source, the
// graphics and the scene manager for the life of the program.
type Engine struct {
	// Config has the tick rate and camera speed.
	Config *config.Config

	// Graphics is the rendering facade.
	Graphics *gpu.Graphics

	// Scenes is the scene manager.
	Scenes *scene.Manager

	// Controller moves the camera from arrow keys.
	Controller *camera.Controller

	// Now returns the current time, for frame delta times.
	Now func() time.Time

	// Frames is the number of frames rendered.
	Frames int

	src       EventSource
	cancel    context.CancelFunc
	lastFrame time.Time
	fpsStart  time.Time
	fpsFrames int
}

// New returns an engine reading events from src.
func New(cfg *config.Config, src EventSource, g *gpu.Graphics, m *scene.Manager) *Engine {
	return &Engine{
		Config:     cfg,
		Graphics:   g,
		Scenes:     m,
		Controller: camera.NewController(cfg.CameraSpeed),
		Now:        time.Now,
		src:        src,
	}
}

// Run ticks at the configured rate until ctx is done, a scene calls
// its exit function, or the window is closed. It returns the first
// fatal error from scene init or rendering.
func (e *Engine) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	e.cancel = cancel

	fps := e.Config.FPS
	if fps <= 0 {
		fps = 60
	}
	fpsTicker := time.NewTicker(time.Second / time.Duration(fps))
	defer fpsTicker.Stop()
	for {
		select {
		case <-ctx.Done():
			slog.Debug("engine: stopped", "frames", e.Frames)
			return nil
		case <-fpsTicker.C:
			for _, ev := range e.src.Poll() {
				if err := e.HandleEvent(ev); err != nil {
					return err
				}
				if ctx.Err() != nil {
					slog.Debug("engine: stopped", "frames", e.Frames)
					return nil
				}
			}
		}
	}
}

// Exit stops the loop before the next tick.
func (e *Engine) Exit() {
	if e.cancel != nil {
		e.cancel()
	}
}

// HandleEvent dispatches one event.
func (e *Engine) HandleEvent(ev events.Event) error {
	switch typ := ev.Type(); {
	case typ.IsKey():
		if ke, ok := ev.(*events.Key); ok {
			e.Controller.ProcessKey(ke.Code, ke.Pressed())
		}
		e.input(ev)
	case typ.IsMouse():
		e.input(ev)
	case typ == events.WindowResize:
		if re, ok := ev.(*events.Resize); ok {
			if err := e.Graphics.Resize(re.Size.X, re.Size.Y); err != nil {
				return fmt.Errorf("engine: resize: %w", err)
			}
		}
		e.input(ev)
	case typ == events.WindowClose:
		e.Exit()
	case typ == events.Redraw:
		return e.Frame()
	}
	return nil
}

func (e *Engine) input(ev events.Event) {
	if sc := e.Scenes.Active(); sc != nil {
		sc.Input(ev, e.Exit)
	}
}

// Frame runs one tick: apply any pending scene change, upload the
// camera, update the scene, render, then let the scene configure
// graphics for the next frame.
func (e *Engine) Frame() error {
	if err := e.Scenes.Reconcile(e.Graphics); err != nil {
		return err
	}
	e.Controller.UpdateCamera(e.Graphics.Camera())
	if err := e.Graphics.UpdateCamera(); err != nil {
		return fmt.Errorf("engine: camera: %w", err)
	}
	now := e.Now()
	var dt time.Duration
	if !e.lastFrame.IsZero() {
		dt = now.Sub(e.lastFrame)
	}
	e.lastFrame = now

	sc := e.Scenes.Active()
	if sc != nil {
		sc.Update(dt)
	}
	if err := e.Graphics.Render(); err != nil {
		return fmt.Errorf("engine: render: %w", err)
	}
	if sc != nil {
		sc.Draw(e.Graphics)
	}
	e.Frames++
	e.logFPS(now)
	return nil
}

// logFPS logs the frame rate every 10 seconds at debug level.
func (e *Engine) logFPS(now time.Time) {
	if e.fpsStart.IsZero() {
		e.fpsStart = now
	}
	e.fpsFrames++
	dur := now.Sub(e.fpsStart)
	if dur < 10*time.Second {
		return
	}
	slog.Debug("engine: frame rate", "fps", float64(e.fpsFrames)/dur.Seconds())
	e.fpsFrames = 0
	e.fpsStart = now
}
