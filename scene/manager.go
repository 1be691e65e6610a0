// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"log/slog"
	"slices"

	"cogentcore.org/core/base/errors"
	"github.com/genesis-engine/genesis/gpu"
)

var (
	// ErrEmptyLabel is returned when adding a scene with an empty label.
	ErrEmptyLabel = errors.New("scene: empty label")

	// ErrSceneExists is returned when adding a scene under a label
	// that is already registered. The first registration is kept.
	ErrSceneExists = errors.New("scene: label already registered")

	// ErrNilScene is returned when adding a nil scene.
	ErrNilScene = errors.New("scene: nil scene")
)

// Manager owns the registered scenes, keyed by label, and the active
// and pending scene labels. At most one transition is pending; it is
// applied by [Manager.Reconcile] once per tick.
//
// Manager must be used from a single goroutine.
type Manager struct {
	scenes map[string]Scene
	active string
	next   string
}

// NewManager returns an empty manager with no active scene.
func NewManager() *Manager {
	return &Manager{scenes: map[string]Scene{}}
}

// AddScene registers the scene under the label.
func (m *Manager) AddScene(label string, s Scene) error {
	if label == "" {
		return ErrEmptyLabel
	}
	if s == nil {
		return fmt.Errorf("%w: %q", ErrNilScene, label)
	}
	if _, has := m.scenes[label]; has {
		return fmt.Errorf("%w: %q", ErrSceneExists, label)
	}
	m.scenes[label] = s
	return nil
}

// RequestSceneChange schedules the labeled scene to become active at
// the next [Manager.Reconcile], replacing any pending request. It
// returns false, logging a warning, for an unknown label. Requesting
// the active scene with nothing pending does nothing.
func (m *Manager) RequestSceneChange(label string) bool {
	if _, has := m.scenes[label]; !has {
		slog.Warn("scene.Manager: change requested to unknown scene", "label", label)
		return false
	}
	if label == m.active && m.next == "" {
		return true
	}
	m.next = label
	return true
}

// Reconcile applies a pending transition: it cleans up the active
// scene, makes the pending one active, and initializes it if it has
// not been initialized yet, then calls OnEnter if it is an [Enterer].
// An Init error is returned and leaves the scene active but
// uninitialized. With nothing pending it does nothing.
func (m *Manager) Reconcile(g *gpu.Graphics) error {
	if m.next == "" {
		return nil
	}
	next := m.next
	m.next = ""
	if next == m.active {
		return nil
	}
	if cur := m.Active(); cur != nil {
		cur.Cleanup()
	}
	m.active = next
	sc := m.scenes[next]
	slog.Debug("scene.Manager: activated", "label", next)
	if !sc.IsInitialized() {
		if err := sc.Init(g); err != nil {
			return fmt.Errorf("scene %q init: %w", next, err)
		}
		sc.SetInitialized(true)
	}
	if en, ok := sc.(Enterer); ok {
		en.OnEnter(g)
	}
	return nil
}

// Active returns the active scene, or nil if none.
func (m *Manager) Active() Scene {
	if m.active == "" {
		return nil
	}
	return m.scenes[m.active]
}

// ActiveLabel returns the label of the active scene, or "".
func (m *Manager) ActiveLabel() string {
	return m.active
}

// Pending returns the label of the pending scene, or "".
func (m *Manager) Pending() string {
	return m.next
}

// Scene returns the scene registered under the label, or nil.
func (m *Manager) Scene(label string) Scene {
	return m.scenes[label]
}

// Labels returns the registered labels in sorted order.
func (m *Manager) Labels() []string {
	labels := make([]string, 0, len(m.scenes))
	for l := range m.scenes {
		labels = append(labels, l)
	}
	slices.Sort(labels)
	return labels
}

// Len returns the number of registered scenes.
func (m *Manager) Len() int {
	return len(m.scenes)
}
