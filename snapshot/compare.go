// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package snapshot

import (
	"image"

	"github.com/anthonynsimon/bild/blend"
	"github.com/anthonynsimon/bild/clone"
)

// Comparison defaults.
const (
	// DefaultTolerance is the per-channel difference two pixels may have
	// and still count as equal.
	DefaultTolerance = 16

	// DefaultMaxMismatch is the share of differing pixels (0.1%) a
	// matching image may have.
	DefaultMaxMismatch = 0.001
)

// CompareOptions controls Compare.
type CompareOptions struct {
	// Tolerance is the allowed per-channel difference, 0..255.
	Tolerance int

	// IgnoreColors compares brightness and alpha only.
	IgnoreColors bool

	// MaxMismatch is the largest mismatch ratio that still matches.
	// Zero means DefaultMaxMismatch.
	MaxMismatch float64
}

// DefaultCompareOptions compares brightness with DefaultTolerance.
func DefaultCompareOptions() CompareOptions {
	return CompareOptions{
		Tolerance:    DefaultTolerance,
		IgnoreColors: true,
		MaxMismatch:  DefaultMaxMismatch,
	}
}

// Comparison is the outcome of Compare.
type Comparison struct {
	// Mismatched counts pixels outside the tolerance.
	Mismatched int
	// Total is the pixel count of the compared area.
	Total int
	// Ratio is Mismatched / Total, or 1 when the sizes differ.
	Ratio float64
	// SizeMismatch is set when the bounds differ.
	SizeMismatch bool
	// Match reports whether Ratio is within MaxMismatch.
	Match bool
	// Diff is the opaque absolute difference of the two images.
	Diff *image.RGBA
}

// Compare measures how far got is from want.
func Compare(got, want image.Image, opts CompareOptions) Comparison {
	maxMismatch := opts.MaxMismatch
	if maxMismatch <= 0 {
		maxMismatch = DefaultMaxMismatch
	}
	tol := min(max(opts.Tolerance, 0), 255)

	diff := blend.Difference(want, got)
	for i := 3; i < len(diff.Pix); i += 4 {
		diff.Pix[i] = 0xff
	}

	gb, wb := got.Bounds(), want.Bounds()
	if gb.Size() != wb.Size() {
		return Comparison{
			Total:        wb.Dx() * wb.Dy(),
			Ratio:        1,
			SizeMismatch: true,
			Diff:         diff,
		}
	}

	g := clone.AsShallowRGBA(got)
	w := clone.AsShallowRGBA(want)
	c := Comparison{Total: wb.Dx() * wb.Dy(), Diff: diff}
	for y := 0; y < wb.Dy(); y++ {
		gi := g.PixOffset(g.Rect.Min.X, g.Rect.Min.Y+y)
		wi := w.PixOffset(w.Rect.Min.X, w.Rect.Min.Y+y)
		for x := 0; x < wb.Dx(); x++ {
			if !pixelsMatch(g.Pix[gi:gi+4], w.Pix[wi:wi+4], tol, opts.IgnoreColors) {
				c.Mismatched++
			}
			gi += 4
			wi += 4
		}
	}
	if c.Total > 0 {
		c.Ratio = float64(c.Mismatched) / float64(c.Total)
	}
	c.Match = c.Ratio <= maxMismatch
	return c
}

func pixelsMatch(a, b []uint8, tol int, ignoreColors bool) bool {
	if !within(int(a[3]), int(b[3]), tol) {
		return false
	}
	if ignoreColors {
		return within(brightness(a), brightness(b), tol)
	}
	return within(int(a[0]), int(b[0]), tol) &&
		within(int(a[1]), int(b[1]), tol) &&
		within(int(a[2]), int(b[2]), tol)
}

func within(a, b, tol int) bool {
	d := a - b
	return d >= -tol && d <= tol
}

// brightness is the Rec. 601 luma of a pixel.
func brightness(p []uint8) int {
	return (299*int(p[0]) + 587*int(p[1]) + 114*int(p[2]) + 500) / 1000
}
