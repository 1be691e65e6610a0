// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestHandlerPlain(t *testing.T) {
	var buf bytes.Buffer
	lg := slog.New(NewHandler(&buf, slog.LevelInfo, true))
	lg.Debug("hidden")
	lg.Warn("surface outdated", "size", 3)
	s := buf.String()
	assert.NotContains(t, s, "hidden")
	assert.Contains(t, s, "level=WARN")
	assert.Contains(t, s, `msg="surface outdated" size=3`)
}

func TestHandlerColor(t *testing.T) {
	var buf bytes.Buffer
	out := termenv.NewOutput(&buf, termenv.WithProfile(termenv.TrueColor))
	lg := slog.New(NewHandler(out, slog.LevelDebug, true))
	lg.Error("boom")
	lg.Debug("quiet")
	s := buf.String()
	assert.Contains(t, s, "\x1b[")
	assert.Contains(t, s, "ERROR\x1b[0m time=")
	assert.Contains(t, s, "msg=boom")
	assert.Contains(t, s, "DEBUG")
	assert.NotContains(t, s, "level=")
}

func TestHandlerAscii(t *testing.T) {
	var buf bytes.Buffer
	out := termenv.NewOutput(&buf, termenv.WithProfile(termenv.Ascii))
	lg := slog.New(NewHandler(out, slog.LevelInfo, false))
	lg.Info("ready")
	assert.NotContains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "level=INFO")
}

func TestSetDefaultLogger(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)
	SetDefaultLogger(slog.LevelDebug)
	assert.Equal(t, slog.LevelDebug, UserLevel)
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))
}
