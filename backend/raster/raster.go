// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/paint"
	"github.com/gogpu/paint/internal/geom"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// Name is the registry name of this backend.
const Name = "raster"

// ErrInvalidSize is returned by the registered factory for non-positive sizes.
var ErrInvalidSize = errors.New("raster: width and height must be positive")

func init() {
	paint.Register(Name, func(width, height int) (paint.Canvas, error) {
		if width <= 0 || height <= 0 {
			return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
		}
		return New(width, height), nil
	})
}

// style is the paint state covered by Save and Restore.
// gg.Context.Push only saves the matrix, so the canvas keeps its own stack.
type style struct {
	fill      gg.RGBA
	stroke    gg.RGBA
	lineWidth float64
	lineCap   paint.LineCap
	lineJoin  paint.LineJoin
	alpha     float64
}

func defaultStyle() style {
	return style{
		fill:      gg.Black,
		stroke:    gg.Black,
		lineWidth: 1,
		lineCap:   paint.LineCapButt,
		lineJoin:  paint.LineJoinMiter,
		alpha:     1,
	}
}

// Canvas implements paint.Canvas on a gg.Context.
type Canvas struct {
	dc    *gg.Context
	state style
	stack []style
}

// New creates a canvas backed by a new transparent width x height context.
func New(width, height int) *Canvas {
	return NewForContext(gg.NewContext(width, height))
}

// NewForContext wraps an existing context, for example the one owned by
// a ggcanvas.Canvas. The context is reset to the canvas defaults except for
// its pixels.
func NewForContext(dc *gg.Context) *Canvas {
	c := &Canvas{
		dc:    dc,
		state: defaultStyle(),
		stack: make([]style, 0, 8),
	}
	c.applyLineStyle()
	return c
}

// Context returns the underlying gg context.
func (c *Canvas) Context() *gg.Context { return c.dc }

func (c *Canvas) Width() int  { return c.dc.Width() }
func (c *Canvas) Height() int { return c.dc.Height() }

func (c *Canvas) Save() {
	c.stack = append(c.stack, c.state)
	c.dc.Push()
}

// Restore pops the last saved state. Unbalanced calls are ignored.
func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	c.dc.Pop()
	c.applyLineStyle()
}

func (c *Canvas) Translate(x, y float64) { c.dc.Translate(x, y) }
func (c *Canvas) Rotate(angle float64)   { c.dc.Rotate(angle) }
func (c *Canvas) Scale(x, y float64)     { c.dc.Scale(x, y) }

func (c *Canvas) BeginPath()          { c.dc.ClearPath() }
func (c *Canvas) MoveTo(x, y float64) { c.dc.MoveTo(x, y) }
func (c *Canvas) LineTo(x, y float64) { c.dc.LineTo(x, y) }
func (c *Canvas) ClosePath()          { c.dc.ClosePath() }

func (c *Canvas) Rect(x, y, w, h float64) { c.dc.DrawRectangle(x, y, w, h) }

// Arc adds the arc as cubic segments in user space so that the radius
// follows the current transform, including non-uniform scales.
func (c *Canvas) Arc(x, y, radius, startAngle, endAngle float64) {
	segs := geom.Arc(x, y, radius, startAngle, endAngle)
	if len(segs) == 0 {
		return
	}
	start := segs[0].P0
	if _, _, ok := c.dc.GetCurrentPoint(); ok {
		c.dc.LineTo(start.X, start.Y)
	} else {
		c.dc.MoveTo(start.X, start.Y)
	}
	for _, s := range segs {
		c.dc.CubicTo(s.C1.X, s.C1.Y, s.C2.X, s.C2.Y, s.P1.X, s.P1.Y)
	}
}

func (c *Canvas) SetFillStyle(col color.Color)   { c.state.fill = straight(col) }
func (c *Canvas) SetStrokeStyle(col color.Color) { c.state.stroke = straight(col) }

func (c *Canvas) SetLineWidth(w float64) {
	if w <= 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		return
	}
	c.state.lineWidth = w
	c.dc.SetLineWidth(w)
}

func (c *Canvas) SetLineCap(lc paint.LineCap) {
	if lc == paint.LineCapUnset {
		return
	}
	c.state.lineCap = lc
	c.dc.SetLineCap(ggLineCap(lc))
}

func (c *Canvas) SetLineJoin(lj paint.LineJoin) {
	if lj == paint.LineJoinUnset {
		return
	}
	c.state.lineJoin = lj
	c.dc.SetLineJoin(ggLineJoin(lj))
}

// SetGlobalAlpha sets the opacity of later fills, strokes and images.
// Values outside [0, 1] are ignored.
func (c *Canvas) SetGlobalAlpha(a float64) {
	if a < 0 || a > 1 || math.IsNaN(a) {
		return
	}
	c.state.alpha = a
}

// Fill paints the current path with the fill style. The path is kept.
func (c *Canvas) Fill() error {
	c.dc.SetFillBrush(gg.Solid(c.withAlpha(c.state.fill)))
	return c.dc.FillPreserve()
}

// Stroke outlines the current path with the stroke style. The path is kept.
func (c *Canvas) Stroke() error {
	c.dc.SetStrokeBrush(gg.Solid(c.withAlpha(c.state.stroke)))
	c.applyLineStyle()
	return c.dc.StrokePreserve()
}

// DrawImage composites img into the rectangle x, y, w, h under the current
// transform using bilinear sampling.
func (c *Canvas) DrawImage(img image.Image, x, y, w, h float64) {
	sb := img.Bounds()
	if sb.Empty() || w == 0 || h == 0 {
		return
	}
	if err := c.dc.FlushGPU(); err != nil {
		paint.Logger().Warn("raster: flush before image draw failed", "err", err)
	}

	m := c.dc.GetTransform().
		Multiply(gg.Translate(x, y)).
		Multiply(gg.Scale(w/float64(sb.Dx()), h/float64(sb.Dy()))).
		Multiply(gg.Translate(-float64(sb.Min.X), -float64(sb.Min.Y)))
	s2d := f64.Aff3{m.A, m.B, m.C, m.D, m.E, m.F}

	var opts *xdraw.Options
	if c.state.alpha < 1 {
		opts = &xdraw.Options{
			DstMask: image.NewUniform(color.Alpha16{A: uint16(math.Round(c.state.alpha * 0xffff))}),
		}
	}
	xdraw.BiLinear.Transform(c.target(), s2d, img, sb, xdraw.Over, opts)
	c.dc.ResizeTarget().NotifyPixelsChanged()
}

// Reset clears every pixel to transparent and restores the default state.
func (c *Canvas) Reset() {
	for len(c.stack) > 0 {
		c.stack = c.stack[:len(c.stack)-1]
		c.dc.Pop()
	}
	c.dc.Identity()
	c.dc.ClearPath()
	c.dc.Clear()
	c.state = defaultStyle()
	c.applyLineStyle()
}

// Image returns a copy of the current pixels.
func (c *Canvas) Image() image.Image {
	if err := c.dc.FlushGPU(); err != nil {
		paint.Logger().Warn("raster: flush failed", "err", err)
	}
	return c.dc.Image()
}

// SavePNG writes the current pixels to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	return c.dc.SavePNG(path)
}

// EncodePNG writes the current pixels as PNG to w.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if err := c.dc.FlushGPU(); err != nil {
		return err
	}
	return c.dc.EncodePNG(w)
}

// Close releases the gg context.
func (c *Canvas) Close() error {
	return c.dc.Close()
}

// target views the context pixmap as an *image.RGBA sharing its memory.
func (c *Canvas) target() *image.RGBA {
	pm := c.dc.ResizeTarget()
	return &image.RGBA{
		Pix:    pm.Data(),
		Stride: pm.Width() * 4,
		Rect:   image.Rect(0, 0, pm.Width(), pm.Height()),
	}
}

func (c *Canvas) applyLineStyle() {
	c.dc.SetLineWidth(c.state.lineWidth)
	c.dc.SetLineCap(ggLineCap(c.state.lineCap))
	c.dc.SetLineJoin(ggLineJoin(c.state.lineJoin))
}

func (c *Canvas) withAlpha(col gg.RGBA) gg.RGBA {
	col.A *= c.state.alpha
	return col
}

// straight converts col to a non-premultiplied gg color.
// gg.FromColor already divides out the alpha.
func straight(col color.Color) gg.RGBA {
	if col == nil {
		return gg.Transparent
	}
	return gg.FromColor(col)
}

func ggLineCap(lc paint.LineCap) gg.LineCap {
	switch lc {
	case paint.LineCapRound:
		return gg.LineCapRound
	case paint.LineCapSquare:
		return gg.LineCapSquare
	default:
		return gg.LineCapButt
	}
}

func ggLineJoin(lj paint.LineJoin) gg.LineJoin {
	switch lj {
	case paint.LineJoinRound:
		return gg.LineJoinRound
	case paint.LineJoinBevel:
		return gg.LineJoinBevel
	default:
		return gg.LineJoinMiter
	}
}

var _ paint.Canvas = (*Canvas)(nil)
