// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package recording

import (
	"image"
	"reflect"
)

// ResourcePool stores the images referenced by DrawImageCommand.
// Adding the same image value twice returns the same reference when the
// image type is comparable.
//
// ResourcePool is not safe for concurrent use.
type ResourcePool struct {
	images []image.Image
	index  map[image.Image]ImageRef
}

// NewResourcePool creates an empty resource pool.
func NewResourcePool() *ResourcePool {
	return &ResourcePool{
		images: make([]image.Image, 0, 8),
		index:  make(map[image.Image]ImageRef),
	}
}

// AddImage adds img to the pool and returns its reference.
func (p *ResourcePool) AddImage(img image.Image) ImageRef {
	comparable := img != nil && reflect.TypeOf(img).Comparable()
	if comparable {
		if ref, ok := p.index[img]; ok {
			return ref
		}
	}
	p.images = append(p.images, img)
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	ref := ImageRef(uint32(len(p.images) - 1))
	if comparable {
		p.index[img] = ref
	}
	return ref
}

// Image returns the image for ref, or nil if ref is out of range.
func (p *ResourcePool) Image(ref ImageRef) image.Image {
	if int(ref) >= len(p.images) {
		return nil
	}
	return p.images[ref]
}

// ImageCount returns the number of distinct images in the pool.
func (p *ResourcePool) ImageCount() int {
	return len(p.images)
}

// Clear removes all images.
func (p *ResourcePool) Clear() {
	p.images = p.images[:0]
	clear(p.index)
}
