// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package paint

import (
	"image"
	"image/color"
)

// LineCap selects the shape of stroke endpoints.
// The zero value leaves the canvas setting untouched.
type LineCap uint8

const (
	LineCapUnset LineCap = iota
	LineCapButt
	LineCapRound
	LineCapSquare
)

var lineCapNames = [...]string{
	LineCapUnset:  "unset",
	LineCapButt:   "butt",
	LineCapRound:  "round",
	LineCapSquare: "square",
}

func (c LineCap) String() string {
	if int(c) < len(lineCapNames) {
		return lineCapNames[c]
	}
	return "unknown"
}

// LineJoin selects the shape of stroke corners.
// The zero value leaves the canvas setting untouched.
type LineJoin uint8

const (
	LineJoinUnset LineJoin = iota
	LineJoinMiter
	LineJoinRound
	LineJoinBevel
)

var lineJoinNames = [...]string{
	LineJoinUnset: "unset",
	LineJoinMiter: "miter",
	LineJoinRound: "round",
	LineJoinBevel: "bevel",
}

func (j LineJoin) String() string {
	if int(j) < len(lineJoinNames) {
		return lineJoinNames[j]
	}
	return "unknown"
}

// Float returns a pointer to v. It fills the optional numeric fields of
// Base and ViewTransform:
//
//	paint.Base{Alpha: paint.Float(0.5)}
func Float(v float64) *float64 { return &v }

// Base holds the render properties shared by every shape kind.
// Every field is optional. A nil pointer takes the default; any set value,
// zero included, is used as given:
//
//	Position   Origin
//	Angle      0 (radians)
//	Anchor     Origin (fraction of the bounding box)
//	Scale      1 when nil
//	Alpha      1 when nil
//	Fill       nil, no fill
//	Stroke     nil, no stroke
//	LineWidth  1 when nil
//	LineCap    unset
//	LineJoin   unset
type Base struct {
	Position Point
	Angle    float64
	Anchor   Point
	Scale    *float64
	Alpha    *float64

	Fill   color.Color
	Stroke color.Color

	LineWidth      *float64
	ScaleLineWidth bool
	LineCap        LineCap
	LineJoin       LineJoin
}

// style is a Base with its defaults applied.
type style struct {
	Base
	scale     float64
	alpha     float64
	lineWidth float64
}

func valueOr(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}

func (b Base) resolved() style {
	return style{
		Base:      b,
		scale:     valueOr(b.Scale, 1),
		alpha:     valueOr(b.Alpha, 1),
		lineWidth: valueOr(b.LineWidth, 1),
	}
}

// StrokeWidth returns the line width handed to the canvas.
func (b Base) StrokeWidth() float64 {
	return b.resolved().strokeWidth()
}

func (st style) strokeWidth() float64 {
	if st.ScaleLineWidth {
		return st.lineWidth * st.scale
	}
	return st.lineWidth
}

// ShapeKind tags the variants accepted by Surface.Draw.
type ShapeKind uint8

const (
	KindRectangle ShapeKind = iota
	KindImage
	KindCircle
	KindPath
)

func (k ShapeKind) String() string {
	switch k {
	case KindRectangle:
		return "rectangle"
	case KindImage:
		return "image"
	case KindCircle:
		return "circle"
	case KindPath:
		return "path"
	default:
		return "unknown"
	}
}

// Shape is implemented by RectangleProps, ImageProps, CircleProps and
// PathProps. The set is closed.
type Shape interface {
	Kind() ShapeKind
	drawOn(s *Surface)
}

// RectangleProps describes an axis-aligned rectangle in local space,
// Width by Height before scaling.
type RectangleProps struct {
	Base
	Width, Height float64
}

// ImageProps describes a bitmap draw. Image is used when non-nil; otherwise
// Name is looked up in the surface image cache.
type ImageProps struct {
	Base
	Image image.Image
	Name  string
}

// CircleProps describes a circle centered at Position.
// Anchor and Angle have no effect on circles.
type CircleProps struct {
	Base
	Radius float64
}

// PathProps describes a polyline through Points, closed when ClosePath is set.
type PathProps struct {
	Base
	Points    []Point
	ClosePath bool
}

func (RectangleProps) Kind() ShapeKind { return KindRectangle }
func (ImageProps) Kind() ShapeKind     { return KindImage }
func (CircleProps) Kind() ShapeKind    { return KindCircle }
func (PathProps) Kind() ShapeKind      { return KindPath }

func (p RectangleProps) drawOn(s *Surface) { s.Rectangle(p) }
func (p ImageProps) drawOn(s *Surface)     { s.Image(p) }
func (p CircleProps) drawOn(s *Surface)    { s.Circle(p) }
func (p PathProps) drawOn(s *Surface)      { s.Path(p) }
