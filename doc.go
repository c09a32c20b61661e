// Package paint is a small 2D drawing layer over an immediate-mode canvas.
//
// # Overview
//
// Callers describe a shape with a property value (position, rotation, anchor,
// scale, alpha, fill and stroke) and a [Surface] issues the matching canvas
// calls, handling the transform order for them:
//
//	save
//	view transform   (surface center, -view angle, -view offset, view scale)
//	shape transform  (rotate about Position, shift by Anchor, move to Position)
//	primitive        (rect, arc, polyline or image at the local origin)
//	paint            (alpha, fill, stroke)
//	restore
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/paint"
//	    "github.com/gogpu/paint/backend/raster"
//	)
//
//	c := raster.New(300, 300)
//	s := paint.MustNew(c)
//
//	s.Rectangle(paint.RectangleProps{
//	    Base:  paint.Base{Position: paint.Pt(150, 150), Fill: paint.MustColor("black")},
//	    Width: 100, Height: 50,
//	})
//	s.Circle(paint.CircleProps{
//	    Base:   paint.Base{Position: paint.Pt(150, 150), Stroke: paint.MustColor("black"), LineWidth: paint.Float(5)},
//	    Radius: 55,
//	})
//
//	c.SavePNG("out.png")
//
// # Defaults
//
// Every property is optional. A nil Scale, Alpha or LineWidth means 1, while
// an explicit [Float](0) is passed through, so Alpha 0 draws nothing.
// A nil Fill or Stroke skips that paint step. LineCap and LineJoin are
// only applied when set.
//
// # Images
//
// [ImageProps] takes either a decoded image or a name. Names are looked up in
// the surface [ImageCache], filled by [Surface.LoadImages]. Drawing a name
// that is not loaded is a silent no-op.
//
// # Backends
//
// A [Canvas] is provided by a backend package: backend/raster (gogpu/gg
// software rasterizer), backend/ebitengine (Ebitengine vector), or recording
// (command capture and playback). Backends register themselves by name;
// import them for side effects and use [NewBackend].
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians, positive turns clockwise on screen
package paint
