// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration
// struct for the genesis engine and its sample app.
package config

import (
	"bytes"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/cli"
	"cogentcore.org/core/colors"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config is the main config struct
// that contains all of the configuration
// options for the engine.
type Config struct {

	// the title of the window
	Title string `default:"Genesis" toml:"title" yaml:"title"`

	// the initial width of the window in pixels
	Width int `default:"800" toml:"width" yaml:"width"`

	// the initial height of the window in pixels
	Height int `default:"600" toml:"height" yaml:"height"`

	// whether to open the window fullscreen on the primary monitor
	Fullscreen bool `toml:"fullscreen" yaml:"fullscreen"`

	// the directory that shader and texture paths are relative to;
	// a leading ~ is expanded to the home directory
	AssetRoot string `default:"assets" toml:"asset_root" yaml:"asset_root"`

	// the initial clear color as a hex string
	ClearColor string `default:"#4d8066" toml:"clear_color" yaml:"clear_color"`

	// the number of frames per second the engine loop ticks at
	FPS int `default:"60" toml:"fps" yaml:"fps"`

	// the distance the camera controller moves the eye per frame
	CameraSpeed float32 `default:"0.2" toml:"camera_speed" yaml:"camera_speed"`

	// the minimum log level: debug, info, warn or error
	LogLevel string `default:"info" toml:"log_level" yaml:"log_level"`
}

// Default returns a config with all fields set to their defaults.
func Default() *Config {
	c := &Config{}
	errors.Log(cli.SetFromDefaults(c))
	return c
}

// Open reads the config file, decoded as TOML or YAML by its
// extension, on top of the defaults.
func Open(filename string) (*Config, error) {
	fp, err := homedir.Expand(filename)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(fp)
	if err != nil {
		return nil, err
	}
	c := Default()
	switch ext := strings.ToLower(filepath.Ext(fp)); ext {
	case ".toml":
		err = toml.Unmarshal(b, c)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, c)
	default:
		return nil, fmt.Errorf("config.Open: unsupported file extension %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("config.Open %s: %w", filename, err)
	}
	return c, nil
}

// Save writes the config to the file, encoded as TOML or YAML by its
// extension.
func (c *Config) Save(filename string) error {
	fp, err := homedir.Expand(filename)
	if err != nil {
		return err
	}
	var b []byte
	switch ext := strings.ToLower(filepath.Ext(fp)); ext {
	case ".toml":
		var buf bytes.Buffer
		err = toml.NewEncoder(&buf).Encode(c)
		b = buf.Bytes()
	case ".yaml", ".yml":
		b, err = yaml.Marshal(c)
	default:
		return fmt.Errorf("config.Save: unsupported file extension %q", ext)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(fp, b, 0666)
}

// Validate returns an error for every field that cannot be used.
func (c *Config) Validate() error {
	var errs []error
	if !c.Fullscreen && (c.Width <= 0 || c.Height <= 0) {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Width, c.Height))
	}
	if c.FPS <= 0 {
		errs = append(errs, fmt.Errorf("fps must be positive, got %d", c.FPS))
	}
	if c.AssetRoot == "" {
		errs = append(errs, errors.New("asset root must not be empty"))
	}
	if _, err := c.Color(); err != nil {
		errs = append(errs, err)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// AssetPath returns the file path of the asset at the slash-separated
// path rel under the asset root.
func (c *Config) AssetPath(rel string) string {
	root := errors.Log1(homedir.Expand(c.AssetRoot))
	if root == "" {
		root = c.AssetRoot
	}
	return filepath.Join(root, filepath.FromSlash(path.Clean("/" + rel)))
}

// ReadAsset returns the contents of the asset at rel.
func (c *Config) ReadAsset(rel string) ([]byte, error) {
	return os.ReadFile(c.AssetPath(rel))
}

// Color returns the parsed clear color.
func (c *Config) Color() (color.RGBA, error) {
	if !isHexColor(c.ClearColor) {
		return color.RGBA{}, fmt.Errorf("clear color %q is not #rgb, #rrggbb or #rrggbbaa", c.ClearColor)
	}
	return colors.FromHex(c.ClearColor)
}

func isHexColor(s string) bool {
	h := strings.TrimPrefix(s, "#")
	switch len(h) {
	case 3, 6, 8:
	default:
		return false
	}
	for _, r := range h {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return false
		}
	}
	return true
}

// Level returns the log level, or info if it does not parse.
func (c *Config) Level() slog.Level {
	lv, err := ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return lv
}

// ParseLevel parses a level name as used by [slog.Level.UnmarshalText].
func ParseLevel(s string) (slog.Level, error) {
	var lv slog.Level
	if err := lv.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level: %w", err)
	}
	return lv, nil
}
