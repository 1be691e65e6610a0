// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"testing"

	"cogentcore.org/core/base/errors"
	"github.com/genesis-engine/genesis/gpu"
	"github.com/genesis-engine/genesis/gpu/gputest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counting records its lifecycle calls into a shared log.
type counting struct {
	Base
	name     string
	log      *[]string
	inits    int
	cleanups int
	initErr  error
}

func (sc *counting) Init(g *gpu.Graphics) error {
	sc.inits++
	*sc.log = append(*sc.log, sc.name+".init")
	return sc.initErr
}

func (sc *counting) Cleanup() {
	sc.cleanups++
	*sc.log = append(*sc.log, sc.name+".cleanup")
}

func newManager(t *testing.T, names ...string) (*Manager, map[string]*counting, *[]string) {
	log := &[]string{}
	m := NewManager()
	scs := map[string]*counting{}
	for _, n := range names {
		sc := &counting{name: n, log: log}
		require.NoError(t, m.AddScene(n, sc))
		scs[n] = sc
	}
	return m, scs, log
}

func graphics() *gpu.Graphics {
	return gpu.NewGraphicsBackend(gputest.NewRecorder(64, 64))
}

func TestActivate(t *testing.T) {
	m, scs, _ := newManager(t, "a", "b", "c")
	g := graphics()
	assert.Nil(t, m.Active())

	for _, l := range []string{"b", "c", "a"} {
		assert.True(t, m.RequestSceneChange(l))
		require.NoError(t, m.Reconcile(g))
		assert.Same(t, scs[l], m.Active())
		assert.Equal(t, l, m.ActiveLabel())
		assert.True(t, scs[l].IsInitialized())
		assert.Equal(t, 1, scs[l].inits)
	}
}

func TestReconcileIdempotent(t *testing.T) {
	m, scs, log := newManager(t, "a", "b")
	g := graphics()
	m.RequestSceneChange("a")
	require.NoError(t, m.Reconcile(g))
	require.NoError(t, m.Reconcile(g))
	require.NoError(t, m.Reconcile(g))
	assert.Equal(t, []string{"a.init"}, *log)
	assert.Equal(t, 0, scs["a"].cleanups)
}

func TestCleanupBeforeInit(t *testing.T) {
	m, scs, log := newManager(t, "a", "b")
	g := graphics()
	m.RequestSceneChange("a")
	require.NoError(t, m.Reconcile(g))
	m.RequestSceneChange("b")
	require.NoError(t, m.Reconcile(g))
	m.RequestSceneChange("a")
	require.NoError(t, m.Reconcile(g))

	assert.Equal(t, []string{"a.init", "a.cleanup", "b.init", "b.cleanup"}, *log)
	assert.Equal(t, 1, scs["a"].inits)
	assert.Same(t, scs["a"], m.Active())
}

func TestUnknownLabel(t *testing.T) {
	m, _, log := newManager(t, "a", "b")
	g := graphics()
	m.RequestSceneChange("a")
	require.NoError(t, m.Reconcile(g))

	assert.False(t, m.RequestSceneChange("nope"))
	assert.Equal(t, "a", m.ActiveLabel())
	assert.Equal(t, "", m.Pending())

	m.RequestSceneChange("b")
	assert.False(t, m.RequestSceneChange("nope"))
	assert.Equal(t, "b", m.Pending())
	require.NoError(t, m.Reconcile(g))
	assert.Equal(t, []string{"a.init", "a.cleanup", "b.init"}, *log)
}

func TestLaterRequestReplaces(t *testing.T) {
	m, scs, _ := newManager(t, "a", "b", "c")
	m.RequestSceneChange("b")
	m.RequestSceneChange("c")
	assert.Equal(t, "c", m.Pending())
	require.NoError(t, m.Reconcile(graphics()))
	assert.Equal(t, "c", m.ActiveLabel())
	assert.Equal(t, 0, scs["b"].inits)
}

func TestRequestBackToActive(t *testing.T) {
	m, _, log := newManager(t, "a", "b")
	g := graphics()
	m.RequestSceneChange("a")
	require.NoError(t, m.Reconcile(g))
	m.RequestSceneChange("b")
	m.RequestSceneChange("a")
	require.NoError(t, m.Reconcile(g))
	assert.Equal(t, "a", m.ActiveLabel())
	assert.Equal(t, []string{"a.init"}, *log)
}

func TestMenuPlay(t *testing.T) {
	m, scs, _ := newManager(t, "Menu", "Play")
	g := graphics()
	menu, play := scs["Menu"], scs["Play"]

	m.RequestSceneChange("Menu")
	require.NoError(t, m.Reconcile(g))
	assert.Equal(t, 1, menu.inits)
	assert.True(t, menu.IsInitialized())

	m.RequestSceneChange("Play")
	require.NoError(t, m.Reconcile(g))
	assert.Equal(t, 1, menu.cleanups)
	assert.Equal(t, 1, play.inits)
	assert.Same(t, play, m.Active())

	m.RequestSceneChange("Play")
	require.NoError(t, m.Reconcile(g))
	assert.Equal(t, 1, menu.cleanups)
	assert.Equal(t, 1, play.inits)
	assert.Equal(t, 0, play.cleanups)
}

// entering also logs each activation.
type entering struct {
	counting
}

func (sc *entering) OnEnter(g *gpu.Graphics) {
	*sc.log = append(*sc.log, sc.name+".enter")
}

func TestOnEnter(t *testing.T) {
	m, scs, log := newManager(t, "a")
	e := &entering{counting{name: "e", log: log}}
	require.NoError(t, m.AddScene("e", e))
	g := graphics()

	m.RequestSceneChange("e")
	require.NoError(t, m.Reconcile(g))
	m.RequestSceneChange("a")
	require.NoError(t, m.Reconcile(g))
	m.RequestSceneChange("e")
	require.NoError(t, m.Reconcile(g))
	require.NoError(t, m.Reconcile(g))

	assert.Equal(t, []string{"e.init", "e.enter", "e.cleanup", "a.init", "a.cleanup", "e.enter"}, *log)
	assert.Equal(t, 1, e.inits)
	assert.Equal(t, 1, scs["a"].inits)

	e.initErr = errors.New("boom")
	e.SetInitialized(false)
	m.RequestSceneChange("a")
	require.NoError(t, m.Reconcile(g))
	m.RequestSceneChange("e")
	assert.Error(t, m.Reconcile(g))
	assert.Equal(t, "e.init", (*log)[len(*log)-1])
}

func TestAddSceneErrors(t *testing.T) {
	m, scs, log := newManager(t, "a")
	assert.ErrorIs(t, m.AddScene("", &counting{log: log}), ErrEmptyLabel)
	assert.ErrorIs(t, m.AddScene("x", nil), ErrNilScene)
	assert.Nil(t, m.Scene("x"))
	assert.False(t, m.RequestSceneChange("x"))
	assert.NotPanics(t, func() { assert.NoError(t, m.Reconcile(graphics())) })

	dup := &counting{name: "dup", log: log}
	assert.ErrorIs(t, m.AddScene("a", dup), ErrSceneExists)
	assert.Same(t, scs["a"], m.Scene("a"))
	assert.Equal(t, 1, m.Len())

	require.NoError(t, m.AddScene("0", &counting{log: log}))
	assert.Equal(t, []string{"0", "a"}, m.Labels())
}

func TestInitError(t *testing.T) {
	m, scs, _ := newManager(t, "a")
	scs["a"].initErr = errors.New("missing texture")
	m.RequestSceneChange("a")
	err := m.Reconcile(graphics())
	assert.ErrorIs(t, err, scs["a"].initErr)
	assert.False(t, scs["a"].IsInitialized())
	assert.Equal(t, "a", m.ActiveLabel())
}
