// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"image/color"
	"time"

	"github.com/chewxy/math32"
	"github.com/genesis-engine/genesis/events"
	"github.com/genesis-engine/genesis/events/key"
	"github.com/genesis-engine/genesis/gpu"
	"github.com/genesis-engine/genesis/scene"
)

// MenuLabel is the label of the [Menu] scene.
const MenuLabel = "Menu"

// pulsePeriod is the duration of one pulse of the menu background.
const pulsePeriod = 2 * time.Second

// Menu is the start scene: its background pulses until Enter
// starts the game or Escape quits.
type Menu struct {
	scene.Base

	// Elapsed is the time spent in the menu.
	Elapsed time.Duration

	scenes *scene.Manager
}

func NewMenu(m *scene.Manager) *Menu {
	return &Menu{scenes: m}
}

func (mn *Menu) Input(ev events.Event, exit context.CancelFunc) {
	ke, ok := ev.(*events.Key)
	if !ok || !ke.Pressed() {
		return
	}
	switch ke.Code {
	case key.CodeReturnEnter:
		mn.scenes.RequestSceneChange(GamePlayLabel)
	case key.CodeEscape:
		exit()
	}
}

func (mn *Menu) Update(dt time.Duration) {
	mn.Elapsed += dt
}

// Pulse returns the background brightness in [0, 1].
func (mn *Menu) Pulse() float32 {
	phase := float32(mn.Elapsed%pulsePeriod) / float32(pulsePeriod)
	return 0.5 + 0.5*math32.Sin(2*math32.Pi*phase)
}

func (mn *Menu) Draw(g *gpu.Graphics) {
	p := mn.Pulse()
	g.SetClearColor(color.RGBA{R: uint8(0x20 + 0x30*p), G: uint8(0x50 + 0x40*p), B: uint8(0x40 + 0x30*p), A: 0xff})
}

func (mn *Menu) Cleanup() {
	mn.Elapsed = 0
}
