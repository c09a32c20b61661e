// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ebitengine implements paint.Canvas on an Ebitengine image.
//
// Paths are transformed on the CPU and tessellated with ebiten/v2/vector,
// then drawn as triangles from a white source so the vertex colors carry
// the fill or stroke color. Images are drawn with a GeoM built from the
// current transform.
//
// The package registers itself as the "ebitengine" backend. Drawing and
// reading pixels requires a running Ebitengine game loop; see Game.
package ebitengine

import (
	"image"
	"image/color"
	"math"
	"reflect"

	"github.com/gogpu/gg"
	"github.com/gogpu/paint"
	"github.com/gogpu/paint/internal/geom"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Name is the registry name of this backend.
const Name = "ebitengine"

func init() {
	paint.Register(Name, func(width, height int) (paint.Canvas, error) {
		return NewImage(width, height), nil
	})
}

// whiteImage is the triangle source. A sub-image avoids sampling the edge.
var whiteImage = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}()

type style struct {
	fill      color.Color
	stroke    color.Color
	lineWidth float64
	lineCap   paint.LineCap
	lineJoin  paint.LineJoin
	alpha     float64
	transform gg.Matrix
}

func defaultStyle() style {
	return style{
		fill:      color.Black,
		stroke:    color.Black,
		lineWidth: 1,
		lineCap:   paint.LineCapButt,
		lineJoin:  paint.LineJoinMiter,
		alpha:     1,
		transform: gg.Identity(),
	}
}

// Canvas draws onto an *ebiten.Image.
type Canvas struct {
	target *ebiten.Image
	state  style
	stack  []style

	path     vector.Path
	hasPoint bool
	start    gg.Point // start of the current subpath, device space
	closed   bool

	vs []ebiten.Vertex
	is []uint16

	textures map[image.Image]*ebiten.Image
}

// New creates a canvas drawing onto target, for example the screen passed
// to ebiten.Game.Draw.
func New(target *ebiten.Image) *Canvas {
	return &Canvas{
		target:   target,
		state:    defaultStyle(),
		textures: make(map[image.Image]*ebiten.Image),
	}
}

// NewImage creates a canvas backed by a new width x height offscreen image.
func NewImage(width, height int) *Canvas {
	return New(ebiten.NewImage(width, height))
}

// Target returns the image the canvas draws onto.
func (c *Canvas) Target() *ebiten.Image { return c.target }

// SetTarget redirects drawing to target, keeping the state and path.
func (c *Canvas) SetTarget(target *ebiten.Image) { c.target = target }

func (c *Canvas) Width() int  { return c.target.Bounds().Dx() }
func (c *Canvas) Height() int { return c.target.Bounds().Dy() }

func (c *Canvas) Save() { c.stack = append(c.stack, c.state) }

func (c *Canvas) Restore() {
	if n := len(c.stack); n > 0 {
		c.state = c.stack[n-1]
		c.stack = c.stack[:n-1]
	}
}

func (c *Canvas) Translate(x, y float64) {
	c.state.transform = c.state.transform.Multiply(gg.Translate(x, y))
}

func (c *Canvas) Rotate(angle float64) {
	c.state.transform = c.state.transform.Multiply(gg.Rotate(angle))
}

func (c *Canvas) Scale(x, y float64) {
	c.state.transform = c.state.transform.Multiply(gg.Scale(x, y))
}

func (c *Canvas) BeginPath() {
	c.path = vector.Path{}
	c.hasPoint = false
	c.closed = false
}

func (c *Canvas) MoveTo(x, y float64) {
	c.moveTo(c.device(x, y))
}

func (c *Canvas) LineTo(x, y float64) {
	c.lineTo(c.device(x, y))
}

func (c *Canvas) ClosePath() {
	if !c.hasPoint {
		return
	}
	c.path.Close()
	c.closed = true
}

func (c *Canvas) Rect(x, y, w, h float64) {
	c.moveTo(c.device(x, y))
	c.lineTo(c.device(x+w, y))
	c.lineTo(c.device(x+w, y+h))
	c.lineTo(c.device(x, y+h))
	c.ClosePath()
}

func (c *Canvas) Arc(x, y, radius, startAngle, endAngle float64) {
	segs := geom.Arc(x, y, radius, startAngle, endAngle)
	if len(segs) == 0 {
		return
	}
	m := c.state.transform
	c.lineTo(m.TransformPoint(segs[0].P0))
	for _, s := range segs {
		d := s.Transform(m)
		c.path.CubicTo(
			float32(d.C1.X), float32(d.C1.Y),
			float32(d.C2.X), float32(d.C2.Y),
			float32(d.P1.X), float32(d.P1.Y),
		)
	}
}

func (c *Canvas) SetFillStyle(col color.Color)   { c.state.fill = col }
func (c *Canvas) SetStrokeStyle(col color.Color) { c.state.stroke = col }

func (c *Canvas) SetLineWidth(w float64) {
	if w > 0 && !math.IsInf(w, 0) {
		c.state.lineWidth = w
	}
}

func (c *Canvas) SetLineCap(lc paint.LineCap) {
	if lc != paint.LineCapUnset {
		c.state.lineCap = lc
	}
}

func (c *Canvas) SetLineJoin(lj paint.LineJoin) {
	if lj != paint.LineJoinUnset {
		c.state.lineJoin = lj
	}
}

func (c *Canvas) SetGlobalAlpha(a float64) {
	if a >= 0 && a <= 1 {
		c.state.alpha = a
	}
}

// Fill draws the current path with the non-zero rule. The path is kept.
func (c *Canvas) Fill() error {
	c.vs, c.is = c.path.AppendVerticesAndIndicesForFilling(c.vs[:0], c.is[:0])
	c.drawTriangles(c.state.fill)
	return nil
}

// Stroke outlines the current path. The path is kept.
func (c *Canvas) Stroke() error {
	c.vs, c.is = c.path.AppendVerticesAndIndicesForStroke(c.vs[:0], c.is[:0], &vector.StrokeOptions{
		Width:      float32(c.state.lineWidth * scaleFactor(c.state.transform)),
		LineCap:    vectorCap(c.state.lineCap),
		LineJoin:   vectorJoin(c.state.lineJoin),
		MiterLimit: 10,
	})
	c.drawTriangles(c.state.stroke)
	return nil
}

func (c *Canvas) DrawImage(img image.Image, x, y, w, h float64) {
	b := img.Bounds()
	if b.Empty() || w == 0 || h == 0 {
		return
	}
	tex := c.texture(img)

	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(x, y)
	op.GeoM.Concat(geoM(c.state.transform))
	op.ColorScale.ScaleAlpha(float32(c.state.alpha))
	c.target.DrawImage(tex, op)
}

// Reset clears the target to transparent and restores the default state.
func (c *Canvas) Reset() {
	c.target.Clear()
	c.state = defaultStyle()
	c.stack = c.stack[:0]
	c.BeginPath()
}

// Dispose frees the cached image textures.
func (c *Canvas) Dispose() {
	for k, t := range c.textures {
		t.Deallocate()
		delete(c.textures, k)
	}
}

func (c *Canvas) device(x, y float64) gg.Point {
	return c.state.transform.TransformPoint(gg.Pt(x, y))
}

func (c *Canvas) moveTo(p gg.Point) {
	c.path.MoveTo(float32(p.X), float32(p.Y))
	c.start = p
	c.hasPoint = true
	c.closed = false
}

func (c *Canvas) lineTo(p gg.Point) {
	switch {
	case !c.hasPoint:
		c.moveTo(p)
	case c.closed:
		c.moveTo(c.start)
		c.path.LineTo(float32(p.X), float32(p.Y))
	default:
		c.path.LineTo(float32(p.X), float32(p.Y))
	}
}

func (c *Canvas) drawTriangles(col color.Color) {
	if len(c.is) == 0 || col == nil {
		return
	}
	r, g, b, a := straightRGBA(col)
	a *= float32(c.state.alpha)
	for i := range c.vs {
		c.vs[i].SrcX = 1
		c.vs[i].SrcY = 1
		c.vs[i].ColorR = r
		c.vs[i].ColorG = g
		c.vs[i].ColorB = b
		c.vs[i].ColorA = a
	}
	c.target.DrawTriangles(c.vs, c.is, whiteImage, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
		FillRule:  ebiten.FillRuleNonZero,
	})
}

// texture returns the GPU image for img, reusing it for comparable images.
func (c *Canvas) texture(img image.Image) *ebiten.Image {
	if e, ok := img.(*ebiten.Image); ok {
		return e
	}
	cacheable := reflect.TypeOf(img).Comparable()
	if cacheable {
		if t, ok := c.textures[img]; ok {
			return t
		}
	}
	t := ebiten.NewImageFromImage(img)
	if cacheable {
		c.textures[img] = t
	}
	return t
}

func straightRGBA(col color.Color) (r, g, b, a float32) {
	n := color.NRGBAModel.Convert(col).(color.NRGBA)
	return float32(n.R) / 255, float32(n.G) / 255, float32(n.B) / 255, float32(n.A) / 255
}

func geoM(m gg.Matrix) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m.A)
	g.SetElement(0, 1, m.B)
	g.SetElement(0, 2, m.C)
	g.SetElement(1, 0, m.D)
	g.SetElement(1, 1, m.E)
	g.SetElement(1, 2, m.F)
	return g
}

func scaleFactor(m gg.Matrix) float64 {
	return math.Sqrt(math.Abs(m.A*m.E - m.B*m.D))
}

func vectorCap(lc paint.LineCap) vector.LineCap {
	switch lc {
	case paint.LineCapRound:
		return vector.LineCapRound
	case paint.LineCapSquare:
		return vector.LineCapSquare
	default:
		return vector.LineCapButt
	}
}

func vectorJoin(lj paint.LineJoin) vector.LineJoin {
	switch lj {
	case paint.LineJoinRound:
		return vector.LineJoinRound
	case paint.LineJoinBevel:
		return vector.LineJoinBevel
	default:
		return vector.LineJoinMiter
	}
}

var _ paint.Canvas = (*Canvas)(nil)
