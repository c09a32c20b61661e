// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package window presents a paint.Surface in a gogpu window.
//
// A Window owns a ggcanvas.Canvas, draws into its gg.Context through the
// raster backend and uploads the pixels as a GPU texture when rendered:
//
//	w, err := window.New(app.GPUContextProvider(), 800, 600)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer w.Close()
//
//	app.OnDraw(func(dc *gogpu.Context) {
//	    _ = w.FitTo(dc.Width(), dc.Height())
//	    _ = w.Draw(func(s *paint.Surface) {
//	        s.Rectangle(paint.RectangleProps{...})
//	    })
//	    _ = w.RenderTo(dc.AsTextureDrawer())
//	})
package window

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/paint"
	"github.com/gogpu/paint/backend/raster"
)

// ErrClosed is returned by operations on a closed Window.
var ErrClosed = errors.New("window: closed")

// Window binds a Surface to a GPU-presented canvas.
//
// Window is not safe for concurrent use.
type Window struct {
	cv      *ggcanvas.Canvas
	canvas  *raster.Canvas
	surface *paint.Surface
	closed  bool
}

// New creates a width x height window canvas on provider.
// opts configure the Surface.
func New(provider gpucontext.DeviceProvider, width, height int, opts ...paint.Option) (*Window, error) {
	cv, err := ggcanvas.New(provider, width, height)
	if err != nil {
		return nil, fmt.Errorf("window: %w", err)
	}
	rc := raster.NewForContext(cv.Context())
	s, err := paint.New(rc, opts...)
	if err != nil {
		_ = cv.Close()
		return nil, fmt.Errorf("window: %w", err)
	}
	return &Window{cv: cv, canvas: rc, surface: s}, nil
}

// Surface returns the drawing surface.
func (w *Window) Surface() *paint.Surface { return w.surface }

// Canvas returns the underlying ggcanvas.Canvas.
func (w *Window) Canvas() *ggcanvas.Canvas { return w.cv }

// Size returns the current canvas size.
func (w *Window) Size() (width, height int) { return w.cv.Size() }

// Draw clears the surface, calls fn and marks the canvas for upload.
func (w *Window) Draw(fn func(*paint.Surface)) error {
	if w.closed {
		return ErrClosed
	}
	return w.cv.Draw(func(*gg.Context) {
		w.surface.Clear()
		if fn != nil {
			fn(w.surface)
		}
	})
}

// FitTo resizes the canvas to width x height, typically the window size.
// The content is cleared when the size changes.
func (w *Window) FitTo(width, height int) error {
	if w.closed {
		return ErrClosed
	}
	cw, ch := w.cv.Size()
	if cw == width && ch == height {
		return nil
	}
	if err := w.cv.Resize(width, height); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	w.canvas.Reset()
	paint.Logger().Debug("window resized", "width", width, "height", height)
	return nil
}

// RenderTo uploads pending changes and draws the canvas at (0, 0).
func (w *Window) RenderTo(dc gpucontext.TextureDrawer) error {
	if w.closed {
		return ErrClosed
	}
	if err := w.cv.RenderTo(dc); err != nil {
		return fmt.Errorf("window: render: %w", err)
	}
	return nil
}

// Close releases the canvas and its texture. Close is idempotent.
func (w *Window) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	return w.cv.Close()
}
