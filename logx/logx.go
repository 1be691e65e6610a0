// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx sets up the default structured logger, with the
// level of each record colored when writing to a terminal.
package logx

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity level set by [SetDefaultLogger].
var UserLevel = defaultUserLevel

// UseColor is whether to color the level of log records.
// It is turned off by NO_COLOR and when the output is not a terminal.
var UseColor = true

// levelColors are the terminal colors of each level.
var levelColors = map[slog.Level]string{
	slog.LevelInfo:  "#4b7bec",
	slog.LevelWarn:  "#f7b731",
	slog.LevelError: "#eb3b5a",
}

// SetDefaultLogger sets the default slog logger to a text handler
// on stderr at the given level.
func SetDefaultLogger(level slog.Level) {
	UserLevel = level
	out := termenv.NewOutput(os.Stderr)
	color := UseColor && !termenv.EnvNoColor() && out.Profile != termenv.Ascii
	slog.SetDefault(slog.New(NewHandler(out, UserLevel, color)))
}

// NewHandler returns a text handler writing to w at the given level.
// If color is true and w is a [termenv.Output], each record starts
// with its colored level instead of a level= attribute.
func NewHandler(w io.Writer, level slog.Leveler, color bool) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}
	out, ok := w.(*termenv.Output)
	if !ok || !color {
		return slog.NewTextHandler(w, opts)
	}
	opts.ReplaceAttr = func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == slog.LevelKey && len(groups) == 0 {
			return slog.Attr{}
		}
		return a
	}
	return &colorHandler{Handler: slog.NewTextHandler(out, opts), out: out, mu: &sync.Mutex{}}
}

// colorHandler writes the colored level, then the rest of the
// record through the wrapped text handler.
type colorHandler struct {
	slog.Handler
	out *termenv.Output
	mu  *sync.Mutex
}

func (h *colorHandler) Handle(ctx context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, err := io.WriteString(h.out, colorLevel(h.out, r.Level)+" "); err != nil {
		return err
	}
	return h.Handler.Handle(ctx, r)
}

func (h *colorHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &colorHandler{Handler: h.Handler.WithAttrs(attrs), out: h.out, mu: h.mu}
}

func (h *colorHandler) WithGroup(name string) slog.Handler {
	return &colorHandler{Handler: h.Handler.WithGroup(name), out: h.out, mu: h.mu}
}

// colorLevel returns the level name styled for the output.
func colorLevel(out *termenv.Output, lv slog.Level) string {
	st := out.String(lv.String())
	if lv < slog.LevelInfo {
		return st.Faint().String()
	}
	key := slog.LevelError
	switch {
	case lv < slog.LevelWarn:
		key = slog.LevelInfo
	case lv < slog.LevelError:
		key = slog.LevelWarn
	}
	return st.Foreground(out.Color(levelColors[key])).String()
}
