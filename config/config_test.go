// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, "Genesis", c.Title)
	assert.Equal(t, 800, c.Width)
	assert.Equal(t, 600, c.Height)
	assert.False(t, c.Fullscreen)
	assert.Equal(t, "assets", c.AssetRoot)
	assert.Equal(t, 60, c.FPS)
	assert.InDelta(t, 0.2, c.CameraSpeed, 1e-6)
	assert.Equal(t, slog.LevelInfo, c.Level())
	require.NoError(t, c.Validate())

	clr, err := c.Color()
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0x4d, 0x80, 0x66, 0xff}, clr)
}

func TestOpenTOML(t *testing.T) {
	fp := filepath.Join(t.TempDir(), "genesis.toml")
	require.NoError(t, os.WriteFile(fp, []byte("title = \"Test\"\nwidth = 1024\nlog_level = \"debug\"\n"), 0666))
	c, err := Open(fp)
	require.NoError(t, err)
	assert.Equal(t, "Test", c.Title)
	assert.Equal(t, 1024, c.Width)
	assert.Equal(t, 600, c.Height)
	assert.Equal(t, slog.LevelDebug, c.Level())
}

func TestOpenYAML(t *testing.T) {
	fp := filepath.Join(t.TempDir(), "genesis.yaml")
	require.NoError(t, os.WriteFile(fp, []byte("fullscreen: true\nfps: 30\nclear_color: \"#000\"\n"), 0666))
	c, err := Open(fp)
	require.NoError(t, err)
	assert.True(t, c.Fullscreen)
	assert.Equal(t, 30, c.FPS)
	assert.Equal(t, "Genesis", c.Title)
	clr, err := c.Color()
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0, 0, 0, 0xff}, clr)
}

func TestOpenErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := Open(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	fp := filepath.Join(dir, "genesis.json")
	require.NoError(t, os.WriteFile(fp, []byte("{}"), 0666))
	_, err = Open(fp)
	assert.ErrorContains(t, err, "unsupported")

	fp = filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(fp, []byte("width = \"wide\""), 0666))
	_, err = Open(fp)
	assert.Error(t, err)
}

func TestSave(t *testing.T) {
	for _, name := range []string{"genesis.toml", "genesis.yml"} {
		t.Run(name, func(t *testing.T) {
			c := Default()
			c.Title = "Saved"
			c.Height = 720
			fp := filepath.Join(t.TempDir(), name)
			require.NoError(t, c.Save(fp))
			o, err := Open(fp)
			require.NoError(t, err)
			assert.Equal(t, c, o)
		})
	}
}

func TestValidate(t *testing.T) {
	c := Default()
	c.Width = 0
	c.FPS = -1
	c.AssetRoot = ""
	c.ClearColor = "#12"
	c.LogLevel = "loud"
	err := c.Validate()
	require.Error(t, err)
	for _, s := range []string{"window size", "fps", "asset root", "clear color", "log level"} {
		assert.ErrorContains(t, err, s)
	}

	c = Default()
	c.Width = 0
	c.Fullscreen = true
	assert.NoError(t, c.Validate())

	c = Default()
	c.ClearColor = "#zzzzzz"
	assert.Error(t, c.Validate())
}

func TestAssetPath(t *testing.T) {
	c := Default()
	c.AssetRoot = "/data/assets"
	assert.Equal(t, filepath.Join("/data/assets", "shaders", "triangle.wgsl"), c.AssetPath("shaders/triangle.wgsl"))
	assert.Equal(t, filepath.Join("/data/assets", "tile.png"), c.AssetPath("../../tile.png"))

	home, err := homedir.Dir()
	require.NoError(t, err)
	c.AssetRoot = "~/genesis"
	assert.Equal(t, filepath.Join(home, "genesis", "tile.png"), c.AssetPath("tile.png"))
}

func TestReadAsset(t *testing.T) {
	c := Default()
	c.AssetRoot = t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(c.AssetRoot, "shaders"), 0777))
	require.NoError(t, os.WriteFile(filepath.Join(c.AssetRoot, "shaders", "a.wgsl"), []byte("fn"), 0666))
	b, err := c.ReadAsset("shaders/a.wgsl")
	require.NoError(t, err)
	assert.Equal(t, "fn", string(b))
}
