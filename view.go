// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package paint

// ViewTransform is the surface-wide camera applied before every shape's own
// transform. Shapes are authored in world coordinates; the view rotates the
// world by -Angle about the surface center, pans it by -Offset and zooms it
// by Scale. A nil Scale means 1; zero collapses the view to its center.
type ViewTransform struct {
	Angle  float64
	Offset Point
	Scale  *float64
}

// IdentityView returns the view that leaves world coordinates unchanged.
func IdentityView() ViewTransform {
	return ViewTransform{}
}

// Zoom returns Scale, or 1 when it is nil.
func (v ViewTransform) Zoom() float64 {
	return valueOr(v.Scale, 1)
}

// IsIdentity reports whether v has no visible effect.
func (v ViewTransform) IsIdentity() bool {
	return v.Angle == 0 && v.Offset == Origin && v.Zoom() == 1
}

// Equal reports whether v and w describe the same view.
func (v ViewTransform) Equal(w ViewTransform) bool {
	return v.Angle == w.Angle && v.Offset == w.Offset && v.Zoom() == w.Zoom()
}
