// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"image/color"
	"log/slog"

	"cogentcore.org/core/base/errors"
	"github.com/genesis-engine/genesis/config"
	"github.com/genesis-engine/genesis/events"
	"github.com/genesis-engine/genesis/events/key"
	"github.com/genesis-engine/genesis/gpu"
	"github.com/genesis-engine/genesis/gpu/shape"
	"github.com/genesis-engine/genesis/scene"
)

// GamePlayLabel is the label of the [GamePlay] scene.
const GamePlayLabel = "GamePlay"

// Asset paths under the asset root.
const (
	tileTexture    = "textures/tile.png"
	texturedShader = "shaders/textured.wgsl"
	pentagonShader = "shaders/pentagon.wgsl"
	triangleShader = "shaders/triangle.wgsl"
)

var (
	quadVertices, quadIndices         = shape.Quad(-1.3, -0.4, -0.5, 0.4)
	pentagonVertices, pentagonIndices = shape.Polygon(5, 0, 0, 0.5, [4]float32{0.5, 0, 0.5, 1})
	triangleVertices                  = shape.Triangle(0.9, 0, 0.8)
)

// GamePlay is the game scene: it loads its texture and shaders once
// and draws them on a black background. Its pipelines are hidden
// while another scene is active. Backspace returns to the menu and
// Escape quits.
type GamePlay struct {
	scene.Base

	// Texture is the tile texture.
	Texture gpu.TextureHandle

	// Pipelines are the quad, pentagon and triangle pipelines.
	Pipelines []gpu.PipelineHandle

	config   *config.Config
	scenes   *scene.Manager
	graphics *gpu.Graphics
}

func NewGamePlay(cfg *config.Config, m *scene.Manager) *GamePlay {
	return &GamePlay{Texture: gpu.NoTexture, config: cfg, scenes: m}
}

func (gp *GamePlay) Init(g *gpu.Graphics) error {
	gp.graphics = g
	b, err := gp.config.ReadAsset(tileTexture)
	if err != nil {
		return err
	}
	gp.Texture, err = g.LoadTexture(b)
	if err != nil {
		return fmt.Errorf("%s: %w", tileTexture, err)
	}
	if err := gp.loadShader(g, texturedShader, quadVertices, quadIndices, gp.Texture); err != nil {
		return err
	}
	if err := gp.loadShader(g, pentagonShader, pentagonVertices, pentagonIndices, gpu.NoTexture); err != nil {
		return err
	}
	if err := gp.loadShader(g, triangleShader, triangleVertices, nil, gpu.NoTexture); err != nil {
		return err
	}
	slog.Info("gameplay: loaded", "textures", g.NumTextures(), "pipelines", g.NumPipelines())
	return nil
}

func (gp *GamePlay) loadShader(g *gpu.Graphics, path string, verts gpu.Vertices, indices []uint16, tex gpu.TextureHandle) error {
	src, err := gp.config.ReadAsset(path)
	if err != nil {
		return err
	}
	pl, err := g.LoadShader(string(src), verts, indices, tex)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	gp.Pipelines = append(gp.Pipelines, pl)
	return nil
}

func (gp *GamePlay) OnEnter(g *gpu.Graphics) {
	gp.setVisible(true)
}

func (gp *GamePlay) Cleanup() {
	gp.setVisible(false)
}

func (gp *GamePlay) setVisible(visible bool) {
	for _, pl := range gp.Pipelines {
		errors.Log(gp.graphics.SetVisible(pl, visible))
	}
}

func (gp *GamePlay) Input(ev events.Event, exit context.CancelFunc) {
	ke, ok := ev.(*events.Key)
	if !ok || !ke.Pressed() {
		return
	}
	switch ke.Code {
	case key.CodeEscape:
		exit()
	case key.CodeDeleteBackspace:
		gp.scenes.RequestSceneChange(MenuLabel)
	}
}

func (gp *GamePlay) Draw(g *gpu.Graphics) {
	g.SetClearColor(color.Black)
}
