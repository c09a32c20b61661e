// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package paint

import (
	"fmt"
	"image"
	"slices"
	"sync"
	"testing"
)

func testImage(w, h int) image.Image {
	return image.NewRGBA(image.Rect(0, 0, w, h))
}

func TestImageCacheBasic(t *testing.T) {
	c := NewImageCache(0)
	if _, ok := c.Get("a"); ok {
		t.Fatal("Get on empty cache succeeded")
	}

	img := testImage(2, 2)
	c.Set("a", img)
	got, ok := c.Get("a")
	if !ok || got != img {
		t.Fatalf("Get(a) = %v, %v", got, ok)
	}

	c.Set("b", testImage(1, 1))
	if names := c.Names(); !slices.Equal(names, []string{"a", "b"}) {
		t.Errorf("Names() = %v", names)
	}

	c.Set("a", nil)
	if _, ok := c.Get("a"); ok {
		t.Error("Set(nil) did not remove the entry")
	}
	if !c.Delete("b") || c.Delete("b") {
		t.Error("Delete should report presence once")
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
}

func TestImageCacheClear(t *testing.T) {
	c := NewImageCache(0)
	for i := range 5 {
		c.Set(fmt.Sprint(i), testImage(1, 1))
	}
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d", c.Len())
	}
}

func TestImageCacheEviction(t *testing.T) {
	c := NewImageCache(4)
	for _, name := range []string{"a", "b", "c", "d"} {
		c.Set(name, testImage(1, 1))
	}
	// Touch "a" so it is the most recently used of the originals.
	c.Get("a")
	c.Set("e", testImage(1, 1))

	if c.Len() != 3 {
		t.Fatalf("Len() = %d, want 3 after eviction", c.Len())
	}
	for _, name := range []string{"a", "e"} {
		if _, ok := c.Get(name); !ok {
			t.Errorf("%q evicted, want kept", name)
		}
	}
	for _, name := range []string{"b", "c"} {
		if _, ok := c.Get(name); ok {
			t.Errorf("%q kept, want evicted", name)
		}
	}
}

func TestImageCacheUnlimited(t *testing.T) {
	c := NewImageCache(-1)
	for i := range 100 {
		c.Set(fmt.Sprint(i), testImage(1, 1))
	}
	if c.Len() != 100 {
		t.Errorf("Len() = %d, want 100", c.Len())
	}
}

func TestImageCacheConcurrent(t *testing.T) {
	c := NewImageCache(16)
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 50 {
				name := fmt.Sprintf("%d-%d", i, j)
				c.Set(name, testImage(1, 1))
				c.Get(name)
				_ = c.Names()
			}
		}()
	}
	wg.Wait()
	if c.Len() > 16 {
		t.Errorf("Len() = %d exceeds soft limit", c.Len())
	}
}
