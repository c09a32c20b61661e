// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package paint

import (
	"image"
	"sort"
	"sync"
)

// ImageCache maps image names to decoded bitmaps.
//
// The cache has an optional soft limit. When an insertion pushes it over the
// limit the least recently used quarter is dropped. A limit of 0 keeps every
// image until it is deleted.
//
// ImageCache is safe for concurrent use and must not be copied.
type ImageCache struct {
	mu        sync.Mutex
	entries   map[string]*imageEntry
	softLimit int
	tick      int64
}

type imageEntry struct {
	img   image.Image
	atime int64
}

// NewImageCache creates an empty cache. softLimit <= 0 means unlimited.
func NewImageCache(softLimit int) *ImageCache {
	if softLimit < 0 {
		softLimit = 0
	}
	return &ImageCache{
		entries:   make(map[string]*imageEntry),
		softLimit: softLimit,
	}
}

// Get returns the image stored under name.
func (c *ImageCache) Get(name string) (image.Image, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[name]
	if !ok {
		return nil, false
	}
	c.tick++
	e.atime = c.tick
	return e.img, true
}

// Set stores img under name, replacing any previous image.
// A nil img removes the entry.
func (c *ImageCache) Set(name string, img image.Image) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if img == nil {
		delete(c.entries, name)
		return
	}
	c.tick++
	c.entries[name] = &imageEntry{img: img, atime: c.tick}

	if c.softLimit > 0 && len(c.entries) > c.softLimit {
		c.evictOldest()
	}
}

// Delete removes name and reports whether it was present.
func (c *ImageCache) Delete(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[name]; !ok {
		return false
	}
	delete(c.entries, name)
	return true
}

// Clear removes every image.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*imageEntry)
	c.tick = 0
}

// Len returns the number of cached images.
func (c *ImageCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Names returns the cached names in sorted order.
func (c *ImageCache) Names() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	names := make([]string, 0, len(c.entries))
	for name := range c.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// evictOldest trims the cache to three quarters of the soft limit,
// least recently used first. Caller must hold c.mu.
func (c *ImageCache) evictOldest() {
	target := max(c.softLimit*3/4, 1)
	n := len(c.entries) - target
	if n <= 0 {
		return
	}

	type aged struct {
		name  string
		atime int64
	}
	all := make([]aged, 0, len(c.entries))
	for name, e := range c.entries {
		all = append(all, aged{name, e.atime})
	}
	sort.Slice(all, func(i, j int) bool { return all[i].atime < all[j].atime })

	for _, a := range all[:n] {
		delete(c.entries, a.name)
	}
	Logger().Debug("paint: image cache eviction", "evicted", n, "kept", len(c.entries))
}
