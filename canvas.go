// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package paint

import (
	"image"
	"image/color"
)

// Canvas is the immediate-mode drawing context a Surface drives.
// It follows the HTML canvas 2D model:
//
//   - Translate, Rotate and Scale post-multiply the current transform.
//   - Path coordinates are transformed when they are added.
//   - Fill and Stroke paint the current path without consuming it.
//   - Save and Restore cover the transform and style state, not the path.
//   - Line width is expressed in user space and follows the transform.
//
// Implementations live in backend/raster (gg), backend/ebitengine and
// recording. A Canvas is not safe for concurrent use.
type Canvas interface {
	// Width and Height return the backing bitmap size in pixels.
	Width() int
	Height() int

	Save()
	Restore()

	Translate(x, y float64)
	Rotate(angle float64)
	Scale(x, y float64)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	Rect(x, y, w, h float64)
	// Arc adds a clockwise circular arc. When a subpath is open a line
	// joins its current point to the arc start.
	Arc(x, y, radius, startAngle, endAngle float64)

	SetFillStyle(c color.Color)
	SetStrokeStyle(c color.Color)
	SetLineWidth(w float64)
	SetLineCap(c LineCap)
	SetLineJoin(j LineJoin)
	SetGlobalAlpha(a float64)

	Fill() error
	Stroke() error

	// DrawImage draws img stretched to the rectangle x, y, w, h in user space.
	DrawImage(img image.Image, x, y, w, h float64)

	// Reset blanks the whole bitmap and restores the default state,
	// like assigning a canvas its own width.
	Reset()
}
