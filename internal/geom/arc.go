// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package geom holds the curve math shared by the canvas backends.
package geom

import (
	"math"

	"github.com/gogpu/gg"
)

// Cubic is one cubic Bézier segment.
type Cubic struct {
	P0, C1, C2, P1 gg.Point
}

// At evaluates the segment at t in [0, 1].
func (c Cubic) At(t float64) gg.Point {
	u := 1 - t
	a := u * u * u
	b := 3 * u * u * t
	d := 3 * u * t * t
	e := t * t * t
	return gg.Point{
		X: a*c.P0.X + b*c.C1.X + d*c.C2.X + e*c.P1.X,
		Y: a*c.P0.Y + b*c.C1.Y + d*c.C2.Y + e*c.P1.Y,
	}
}

// Flatten appends n points along the segment, excluding P0.
func (c Cubic) Flatten(dst []gg.Point, n int) []gg.Point {
	if n < 1 {
		n = 1
	}
	for i := 1; i <= n; i++ {
		dst = append(dst, c.At(float64(i)/float64(n)))
	}
	return dst
}

// Transform maps every control point through m.
func (c Cubic) Transform(m gg.Matrix) Cubic {
	return Cubic{
		P0: m.TransformPoint(c.P0),
		C1: m.TransformPoint(c.C1),
		C2: m.TransformPoint(c.C2),
		P1: m.TransformPoint(c.P1),
	}
}

// Sweep returns the clockwise angle covered by an arc from start to end,
// in [0, 2π]. Spans of a full turn or more draw the whole circle.
func Sweep(start, end float64) float64 {
	d := end - start
	if d >= 2*math.Pi {
		return 2 * math.Pi
	}
	d = math.Mod(d, 2*math.Pi)
	if d < 0 {
		d += 2 * math.Pi
	}
	return d
}

// Arc approximates a clockwise circular arc with at most quarter-turn cubic
// segments. It returns nil for an empty sweep.
func Arc(cx, cy, r, start, end float64) []Cubic {
	sweep := Sweep(start, end)
	if sweep == 0 {
		return nil
	}
	n := int(math.Ceil(sweep / (math.Pi / 2)))
	step := sweep / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4)

	segs := make([]Cubic, 0, n)
	a0 := start
	for range n {
		a1 := a0 + step
		s0, c0 := math.Sincos(a0)
		s1, c1 := math.Sincos(a1)
		segs = append(segs, Cubic{
			P0: gg.Pt(cx+r*c0, cy+r*s0),
			C1: gg.Pt(cx+r*(c0-k*s0), cy+r*(s0+k*c0)),
			C2: gg.Pt(cx+r*(c1+k*s1), cy+r*(s1-k*c1)),
			P1: gg.Pt(cx+r*c1, cy+r*s1),
		})
		a0 = a1
	}
	return segs
}
