// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package geom

import (
	"math"
	"testing"
)

func TestSweep(t *testing.T) {
	tests := []struct {
		name       string
		start, end float64
		want       float64
	}{
		{"full circle", 0, 2 * math.Pi, 2 * math.Pi},
		{"more than full", 0, 5 * math.Pi, 2 * math.Pi},
		{"quarter", 0, math.Pi / 2, math.Pi / 2},
		{"wraps negative", math.Pi, math.Pi / 2, 3 * math.Pi / 2},
		{"empty", 1, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sweep(tt.start, tt.end); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Sweep(%v, %v) = %v, want %v", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestArcStaysOnCircle(t *testing.T) {
	const cx, cy, r = 150.0, 150.0, 55.0
	segs := Arc(cx, cy, r, 0, 2*math.Pi)
	if len(segs) != 4 {
		t.Fatalf("full circle: got %d segments, want 4", len(segs))
	}

	for i, s := range segs {
		for _, tt := range []float64{0, 0.25, 0.5, 0.75, 1} {
			p := s.At(tt)
			d := math.Hypot(p.X-cx, p.Y-cy)
			// Quarter-turn cubics deviate from the circle by under 0.03%.
			if math.Abs(d-r) > r*3e-4 {
				t.Errorf("segment %d t=%v: distance %v, want %v", i, tt, d, r)
			}
		}
	}

	first, last := segs[0].P0, segs[len(segs)-1].P1
	if math.Hypot(first.X-last.X, first.Y-last.Y) > 1e-9 {
		t.Errorf("circle not closed: start %v end %v", first, last)
	}
}

func TestArcClockwise(t *testing.T) {
	segs := Arc(0, 0, 10, 0, math.Pi/2)
	if len(segs) != 1 {
		t.Fatalf("got %d segments, want 1", len(segs))
	}
	// y grows downwards, so a clockwise quarter from angle 0 ends at (0, 10).
	end := segs[0].P1
	if math.Abs(end.X) > 1e-9 || math.Abs(end.Y-10) > 1e-9 {
		t.Errorf("end = %v, want (0, 10)", end)
	}
}

func TestArcEmpty(t *testing.T) {
	if segs := Arc(0, 0, 10, 1, 1); segs != nil {
		t.Errorf("empty sweep: got %d segments, want none", len(segs))
	}
}

func TestFlatten(t *testing.T) {
	c := Arc(0, 0, 10, 0, math.Pi/2)[0]
	pts := c.Flatten(nil, 8)
	if len(pts) != 8 {
		t.Fatalf("got %d points, want 8", len(pts))
	}
	if pts[7] != c.P1 {
		t.Errorf("last point %v, want %v", pts[7], c.P1)
	}
}
