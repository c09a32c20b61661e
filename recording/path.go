// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package recording

import (
	"math"

	"github.com/gogpu/gg"
)

// Subpath is one polyline of a Path. Arcs are flattened into it.
type Subpath struct {
	Points []gg.Point
	Closed bool
}

// Path is a device-space snapshot of the current path.
type Path struct {
	Subpaths []Subpath
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	Min, Max gg.Point
}

// Width returns r.Max.X - r.Min.X.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns r.Max.Y - r.Min.Y.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Center returns the midpoint of r.
func (r Rect) Center() gg.Point {
	return gg.Pt((r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2)
}

// IsEmpty reports whether p has no points.
func (p Path) IsEmpty() bool {
	for _, s := range p.Subpaths {
		if len(s.Points) > 0 {
			return false
		}
	}
	return true
}

// Points returns every point of every subpath in order.
func (p Path) Points() []gg.Point {
	var pts []gg.Point
	for _, s := range p.Subpaths {
		pts = append(pts, s.Points...)
	}
	return pts
}

// Bounds returns the bounding box of every point in p.
// An empty path has a zero Rect.
func (p Path) Bounds() Rect {
	if p.IsEmpty() {
		return Rect{}
	}
	r := Rect{
		Min: gg.Pt(math.Inf(1), math.Inf(1)),
		Max: gg.Pt(math.Inf(-1), math.Inf(-1)),
	}
	for _, s := range p.Subpaths {
		for _, pt := range s.Points {
			r.Min.X = math.Min(r.Min.X, pt.X)
			r.Min.Y = math.Min(r.Min.Y, pt.Y)
			r.Max.X = math.Max(r.Max.X, pt.X)
			r.Max.Y = math.Max(r.Max.Y, pt.Y)
		}
	}
	return r
}

// clone returns a deep copy of p.
func (p Path) clone() Path {
	if len(p.Subpaths) == 0 {
		return Path{}
	}
	out := Path{Subpaths: make([]Subpath, 0, len(p.Subpaths))}
	for _, s := range p.Subpaths {
		if len(s.Points) == 0 {
			continue
		}
		pts := make([]gg.Point, len(s.Points))
		copy(pts, s.Points)
		out.Subpaths = append(out.Subpaths, Subpath{Points: pts, Closed: s.Closed})
	}
	return out
}
