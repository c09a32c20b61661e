// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package paint

import (
	"context"
	"image"
	"log/slog"
	"math"
)

// Surface turns shape descriptions into ordered Canvas calls.
//
// Every draw runs inside a Save/Restore pair. Inside it the surface applies
// the view transform, then the shape's own rotation, anchor and position,
// then issues the primitive at the local origin and paints it.
//
// A Surface is not safe for concurrent use. LoadImages may run on another
// goroutine while the surface draws; the image cache is synchronized.
type Surface struct {
	canvas Canvas
	view   ViewTransform
	images *ImageCache
	loader Loader
	logger *slog.Logger
}

// New creates a Surface drawing on c.
func New(c Canvas, opts ...Option) (*Surface, error) {
	if c == nil {
		return nil, ErrNilCanvas
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.images == nil {
		o.images = NewImageCache(0)
	}
	if o.loader == nil {
		o.loader = DefaultLoader
	}

	return &Surface{
		canvas: c,
		view:   o.view,
		images: o.images,
		loader: o.loader,
		logger: o.logger,
	}, nil
}

// MustNew is like New but panics on error.
func MustNew(c Canvas, opts ...Option) *Surface {
	s, err := New(c, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// Canvas returns the underlying canvas.
func (s *Surface) Canvas() Canvas { return s.canvas }

// Width returns the canvas width in pixels.
func (s *Surface) Width() int { return s.canvas.Width() }

// Height returns the canvas height in pixels.
func (s *Surface) Height() int { return s.canvas.Height() }

// Images returns the name to bitmap table used by Image.
func (s *Surface) Images() *ImageCache { return s.images }

// View returns the current view transform.
func (s *Surface) View() ViewTransform { return s.view }

// SetView replaces the view transform.
func (s *Surface) SetView(v ViewTransform) { s.view = v }

// SetViewAngle sets the view rotation in radians.
func (s *Surface) SetViewAngle(angle float64) { s.view.Angle = angle }

// SetViewScale sets the view zoom. Zero collapses every shape onto the
// surface center.
func (s *Surface) SetViewScale(scale float64) { s.view.Scale = Float(scale) }

// SetViewOffset sets the world point shown at the surface center.
func (s *Surface) SetViewOffset(x, y float64) { s.view.Offset = Pt(x, y) }

// Clear blanks the whole backing bitmap and resets the canvas state.
func (s *Surface) Clear() { s.canvas.Reset() }

// LoadImages fetches every source concurrently and returns once all of them
// have finished. Each decoded image is cached under its source string so
// ImageProps.Name can refer to it. Images that loaded are kept even when
// others fail; the failures are returned joined, each as a *LoadError.
func (s *Surface) LoadImages(ctx context.Context, sources ...string) error {
	return loadAll(ctx, s.loader, s.images, s.log(), sources)
}

// Draw draws each shape in order.
func (s *Surface) Draw(shapes ...Shape) {
	for _, sh := range shapes {
		if sh == nil {
			continue
		}
		sh.drawOn(s)
	}
}

// Rectangle draws a Width by Height rectangle with its anchor at Position.
func (s *Surface) Rectangle(p RectangleProps) {
	b := p.resolved()
	dims := Size{W: p.Width * b.scale, H: p.Height * b.scale}

	s.canvas.Save()
	defer s.canvas.Restore()

	s.applyView()
	s.applyTransform(b, dims)

	s.canvas.BeginPath()
	s.canvas.Rect(0, 0, dims.W, dims.H)
	s.canvas.ClosePath()
	s.paintShape(b, KindRectangle)
}

// Image draws a bitmap at its natural size times Scale.
// A Name that is not in the image cache draws nothing.
func (s *Surface) Image(p ImageProps) {
	img := p.Image
	if img == nil {
		var ok bool
		img, ok = s.images.Get(p.Name)
		if !ok {
			s.log().Debug("paint: image not loaded, skipping draw", "name", p.Name)
			return
		}
	}

	b := p.resolved()
	dims := ImageSize(img, b.scale)

	s.canvas.Save()
	defer s.canvas.Restore()

	s.applyView()
	s.applyTransform(b, dims)

	s.canvas.SetGlobalAlpha(b.alpha)
	s.canvas.DrawImage(img, 0, 0, dims.W, dims.H)
}

// Circle draws a circle of Radius times Scale centered at Position.
// Anchor and Angle are ignored.
func (s *Surface) Circle(p CircleProps) {
	b := p.resolved()

	s.canvas.Save()
	defer s.canvas.Restore()

	s.applyView()

	s.canvas.BeginPath()
	s.canvas.Arc(b.Position.X, b.Position.Y, p.Radius*b.scale, 0, 2*math.Pi)
	s.canvas.ClosePath()
	s.paintShape(b, KindCircle)
}

// Path draws a polyline through Points, each scaled by Scale and offset by
// Position. The anchor is a fraction of the scaled bounding box extent.
// An empty Points draws nothing.
func (s *Surface) Path(p PathProps) {
	if len(p.Points) == 0 {
		s.log().Debug("paint: empty path, skipping draw")
		return
	}

	b := p.resolved()
	dims := pathSize(p.Points, b.scale)

	s.canvas.Save()
	defer s.canvas.Restore()

	s.applyView()
	s.applyTransform(b, dims)

	s.canvas.BeginPath()
	first := p.Points[0].Mul(b.scale)
	s.canvas.MoveTo(first.X, first.Y)
	for _, pt := range p.Points[1:] {
		pt = pt.Mul(b.scale)
		s.canvas.LineTo(pt.X, pt.Y)
	}
	if p.ClosePath {
		s.canvas.ClosePath()
	}
	s.paintShape(b, KindPath)
}

// applyView maps world coordinates to surface pixels.
func (s *Surface) applyView() {
	v := s.view
	if v.IsIdentity() {
		return
	}
	cx := float64(s.canvas.Width()) / 2
	cy := float64(s.canvas.Height()) / 2

	s.canvas.Translate(cx, cy)
	s.canvas.Rotate(-v.Angle)
	s.canvas.Translate(-v.Offset.X, -v.Offset.Y)
	s.canvas.Scale(v.Zoom(), v.Zoom())
	s.canvas.Translate(-cx, -cy)
}

// applyTransform rotates about Position, shifts by the anchor fraction of
// dims and moves the local origin to Position.
func (s *Surface) applyTransform(b style, dims Size) {
	pos := b.Position

	s.canvas.Translate(pos.X, pos.Y)
	s.canvas.Rotate(b.Angle)
	s.canvas.Translate(-pos.X, -pos.Y)

	s.canvas.Translate(-dims.W*b.Anchor.X, -dims.H*b.Anchor.Y)
	s.canvas.Translate(pos.X, pos.Y)
}

func (s *Surface) paintShape(b style, kind ShapeKind) {
	s.canvas.SetGlobalAlpha(b.alpha)

	if b.Fill != nil {
		s.canvas.SetFillStyle(b.Fill)
		if err := s.canvas.Fill(); err != nil {
			s.log().Warn("paint: fill failed", "shape", kind, "err", err)
		}
	}

	if b.Stroke != nil {
		if b.LineCap != LineCapUnset {
			s.canvas.SetLineCap(b.LineCap)
		}
		if b.LineJoin != LineJoinUnset {
			s.canvas.SetLineJoin(b.LineJoin)
		}
		s.canvas.SetLineWidth(b.strokeWidth())
		s.canvas.SetStrokeStyle(b.Stroke)
		if err := s.canvas.Stroke(); err != nil {
			s.log().Warn("paint: stroke failed", "shape", kind, "err", err)
		}
	}
}

func (s *Surface) log() *slog.Logger {
	if s.logger != nil {
		return s.logger
	}
	return Logger()
}

// Ensure the shape types satisfy Shape.
var (
	_ Shape = RectangleProps{}
	_ Shape = ImageProps{}
	_ Shape = CircleProps{}
	_ Shape = PathProps{}
)

// ImageSize returns the drawn size of img at the given scale.
func ImageSize(img image.Image, scale float64) Size {
	b := img.Bounds()
	return Size{W: float64(b.Dx()) * scale, H: float64(b.Dy()) * scale}
}
