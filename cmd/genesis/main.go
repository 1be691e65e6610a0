// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command genesis opens a window and runs the sample scenes: a menu
// with a pulsing background, and a gameplay scene drawing a textured
// quad, a pentagon and a triangle.
//
//	genesis [config.toml|config.yaml]
package main

import (
	"context"
	"log/slog"
	"os"
	"runtime"

	"github.com/genesis-engine/genesis/config"
	"github.com/genesis-engine/genesis/engine"
	"github.com/genesis-engine/genesis/gpu"
	"github.com/genesis-engine/genesis/logx"
	"github.com/genesis-engine/genesis/scene"
	"github.com/genesis-engine/genesis/window"
)

func init() {
	// must lock main thread for gpu!
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		slog.Error("genesis: fatal", "err", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		return err
	}
	logx.SetDefaultLogger(cfg.Level())

	win, err := window.New(cfg)
	if err != nil {
		return err
	}
	defer win.Close()

	g, err := gpu.NewGraphics(win)
	if err != nil {
		return err
	}
	defer g.Release()
	clr, err := cfg.Color()
	if err != nil {
		return err
	}
	g.SetClearColor(clr)

	m, err := newScenes(cfg)
	if err != nil {
		return err
	}
	return engine.New(cfg, win, g, m).Run(context.Background())
}

// loadConfig opens the config file named by the first argument, if
// any, and validates it.
func loadConfig(args []string) (*config.Config, error) {
	cfg := config.Default()
	if len(args) > 0 {
		var err error
		cfg, err = config.Open(args[0])
		if err != nil {
			return nil, err
		}
	}
	return cfg, cfg.Validate()
}

// newScenes registers the sample scenes and starts at the menu.
func newScenes(cfg *config.Config) (*scene.Manager, error) {
	m := scene.NewManager()
	if err := m.AddScene(MenuLabel, NewMenu(m)); err != nil {
		return nil, err
	}
	if err := m.AddScene(GamePlayLabel, NewGamePlay(cfg, m)); err != nil {
		return nil, err
	}
	m.RequestSceneChange(MenuLabel)
	return m, nil
}
