// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package snapshot

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/paint"
	"github.com/gogpu/paint/backend/raster"
	"github.com/gogpu/paint/recording"
)

// Default canvas size of a snapshot.
const (
	DefaultWidth  = 300
	DefaultHeight = 300
)

// ErrNoPixels is returned when the chosen backend cannot hand back an image.
var ErrNoPixels = errors.New("snapshot: backend does not expose pixels")

// Case is one visual scenario.
type Case struct {
	// Name identifies the case and, slugified, its reference file.
	Name string

	// Load lists image sources fetched with Surface.LoadImages before Draw.
	Load []string

	// Draw issues the drawing calls under test.
	Draw func(s *paint.Surface)
}

// RenderOptions controls how a case is rendered.
type RenderOptions struct {
	Width, Height int

	// Grid draws a one-pixel cross through the canvas center first.
	Grid bool

	// Backend names a registered backend whose canvas implements Imager.
	// Empty means the raster backend.
	Backend string

	// Surface options, for example a loader for Case.Load.
	Surface []paint.Option
}

// DefaultRenderOptions returns a 300x300 raster render with the grid.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		Width:   DefaultWidth,
		Height:  DefaultHeight,
		Grid:    true,
		Backend: raster.Name,
	}
}

// Imager is implemented by canvases that can return their pixels.
type Imager interface {
	Image() image.Image
}

// Frame is a rendered case.
type Frame struct {
	Image image.Image

	// Recording holds the canvas calls the case produced.
	Recording *recording.Recording
}

// Render draws c and returns the result. The calls are recorded first and
// then replayed onto a fresh canvas of the chosen backend.
func Render(ctx context.Context, c Case, opts RenderOptions) (*Frame, error) {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultHeight
	}
	if opts.Backend == "" {
		opts.Backend = raster.Name
	}

	rec := recording.NewRecorder(opts.Width, opts.Height)
	s, err := paint.New(rec, opts.Surface...)
	if err != nil {
		return nil, err
	}
	if len(c.Load) > 0 {
		if err := s.LoadImages(ctx, c.Load...); err != nil {
			return nil, fmt.Errorf("snapshot: %s: %w", c.Name, err)
		}
	}
	if opts.Grid {
		drawGrid(rec)
	}
	if c.Draw != nil {
		c.Draw(s)
	}
	r := rec.Finish()

	target, err := paint.OpenCanvas(opts.Backend, opts.Width, opts.Height)
	if err != nil {
		return nil, err
	}
	im, ok := target.(Imager)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoPixels, opts.Backend)
	}
	if err := r.Playback(target); err != nil {
		return nil, fmt.Errorf("snapshot: %s: %w", c.Name, err)
	}
	return &Frame{Image: im.Image(), Recording: r}, nil
}

// drawGrid marks the canvas center with a black cross, ignoring any view.
func drawGrid(c paint.Canvas) {
	w, h := float64(c.Width()), float64(c.Height())
	c.Save()
	defer c.Restore()
	c.BeginPath()
	c.Rect(w/2-0.5, 0, 1, h)
	c.Rect(0, h/2-0.5, w, 1)
	c.SetFillStyle(color.Black)
	_ = c.Fill()
}
