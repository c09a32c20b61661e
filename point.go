// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package paint

import "math"

// Point is a 2D coordinate in world space.
type Point struct {
	X, Y float64
}

// Origin is the default position and anchor.
var Origin = Point{}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul scales both coordinates by s.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Rotate rotates p about the origin. Positive angles turn clockwise
// on screen because y grows downwards.
func (p Point) Rotate(angle float64) Point {
	sin, cos := math.Sincos(angle)
	return Point{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}

// RotateAbout rotates p about pivot.
func (p Point) RotateAbout(angle float64, pivot Point) Point {
	return p.Sub(pivot).Rotate(angle).Add(pivot)
}

// Size is a width/height pair produced by the final-dimension step of a draw.
type Size struct {
	W, H float64
}

// pathSize returns the bounding box extent of pts, scaled by scale.
// pts must not be empty.
func pathSize(pts []Point, scale float64) Size {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	return Size{W: (maxX - minX) * scale, H: (maxY - minY) * scale}
}
