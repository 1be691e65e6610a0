// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build (darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd

// Package window provides the desktop host window, using glfw: it is
// the surface the GPU presents to and the source of engine events.
package window

import (
	"image"
	"log/slog"

	"cogentcore.org/core/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/genesis-engine/genesis/config"
	"github.com/genesis-engine/genesis/events"
	"github.com/genesis-engine/genesis/events/key"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window is a glfw window without a client API, for WebGPU.
// All methods must be called on the main thread, which must be
// locked to its OS thread.
type Window struct {
	glw   *glfw.Window
	queue events.Queue
}

// New initializes glfw and opens the window described by the config,
// on the primary monitor if fullscreen.
func New(cfg *config.Config) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, errors.Log(err)
	}
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	width, height := cfg.Width, cfg.Height
	var monitor *glfw.Monitor
	if cfg.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
		if monitor != nil {
			if vm := monitor.GetVideoMode(); vm != nil {
				width, height = vm.Width, vm.Height
			}
		}
	}
	glw, err := glfw.CreateWindow(width, height, cfg.Title, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return nil, errors.Log(err)
	}
	w := &Window{glw: glw}
	w.setCallbacks()
	slog.Info("window: opened", "title", cfg.Title, "size", w.Size(), "fullscreen", cfg.Fullscreen)
	return w, nil
}

func (w *Window) setCallbacks() {
	w.glw.SetKeyCallback(func(gw *glfw.Window, k glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action == glfw.Repeat {
			return
		}
		w.queue.Send(events.NewKey(keyCode(k), scancode, action == glfw.Press))
	})
	w.glw.SetCursorPosCallback(func(gw *glfw.Window, xpos, ypos float64) {
		w.queue.Send(events.NewMouse(events.MouseMove, events.NoButton, image.Pt(int(xpos), int(ypos))))
	})
	w.glw.SetMouseButtonCallback(func(gw *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		x, y := gw.GetCursorPos()
		typ := events.MouseDown
		if action == glfw.Release {
			typ = events.MouseUp
		}
		w.queue.Send(events.NewMouse(typ, mouseButton(button), image.Pt(int(x), int(y))))
	})
	w.glw.SetFramebufferSizeCallback(func(gw *glfw.Window, width, height int) {
		w.queue.Send(events.NewResize(image.Pt(width, height)))
	})
	w.glw.SetCloseCallback(func(gw *glfw.Window) {
		w.queue.Send(events.NewClose())
	})
	w.glw.SetRefreshCallback(func(gw *glfw.Window) {
		w.queue.Send(events.NewRedraw())
	})
}

// SurfaceDescriptor returns the platform surface descriptor of the window.
func (w *Window) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return wgpuglfw.GetSurfaceDescriptor(w.glw)
}

// Size returns the framebuffer size in pixels.
func (w *Window) Size() image.Point {
	width, height := w.glw.GetFramebufferSize()
	return image.Pt(width, height)
}

// Poll processes pending glfw events and returns them, followed by a
// redraw for this tick.
func (w *Window) Poll() []events.Event {
	glfw.PollEvents()
	if w.glw.ShouldClose() && w.queue.Len() == 0 {
		w.queue.Send(events.NewClose())
	}
	w.queue.Send(events.NewRedraw())
	return w.queue.Drain()
}

// Close destroys the window and terminates glfw.
func (w *Window) Close() {
	w.glw.Destroy()
	glfw.Terminate()
}

// keyCode maps a glfw key to its code, or [key.CodeUnknown].
func keyCode(k glfw.Key) key.Codes {
	switch k {
	case glfw.KeyUp:
		return key.CodeUpArrow
	case glfw.KeyDown:
		return key.CodeDownArrow
	case glfw.KeyLeft:
		return key.CodeLeftArrow
	case glfw.KeyRight:
		return key.CodeRightArrow
	case glfw.KeyEscape:
		return key.CodeEscape
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return key.CodeReturnEnter
	case glfw.KeySpace:
		return key.CodeSpacebar
	case glfw.KeyBackspace:
		return key.CodeDeleteBackspace
	case glfw.KeyTab:
		return key.CodeTab
	case glfw.KeyW:
		return key.CodeW
	case glfw.KeyA:
		return key.CodeA
	case glfw.KeyS:
		return key.CodeS
	case glfw.KeyD:
		return key.CodeD
	}
	return key.CodeUnknown
}

func mouseButton(b glfw.MouseButton) events.Buttons {
	switch b {
	case glfw.MouseButtonLeft:
		return events.Left
	case glfw.MouseButtonMiddle:
		return events.Middle
	case glfw.MouseButtonRight:
		return events.Right
	}
	return events.NoButton
}
