// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package paint

import (
	"fmt"
	"sort"
	"sync"
)

// BackendFactory creates a Canvas of the given size.
type BackendFactory func(width, height int) (Canvas, error)

var (
	registryMu sync.RWMutex
	backends   = make(map[string]BackendFactory)
)

// Register makes a backend available by name. Backend packages call it
// from init, in the style of database/sql drivers:
//
//	import _ "github.com/gogpu/paint/backend/raster"
//
// Register panics if factory is nil or name is already taken.
func Register(name string, factory BackendFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("paint: Register factory is nil")
	}
	if _, dup := backends[name]; dup {
		panic("paint: Register called twice for " + name)
	}
	backends[name] = factory
}

// Unregister removes a backend. Unknown names are ignored.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// OpenCanvas creates a canvas from a registered backend.
func OpenCanvas(name string, width, height int) (Canvas, error) {
	registryMu.RLock()
	factory, ok := backends[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q (forgotten import?)", ErrUnknownBackend, name)
	}
	c, err := factory(width, height)
	if err != nil {
		return nil, fmt.Errorf("paint: open %s canvas: %w", name, err)
	}
	return c, nil
}

// NewBackend opens a canvas by backend name and wraps it in a Surface.
func NewBackend(name string, width, height int, opts ...Option) (*Surface, error) {
	c, err := OpenCanvas(name, width, height)
	if err != nil {
		return nil, err
	}
	return New(c, opts...)
}

// Backends returns the registered backend names in sorted order.
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered reports whether name has a registered backend.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[name]
	return ok
}
