// Package recording provides a paint.Canvas that records drawing calls.
//
// Each Canvas method is captured as a typed command struct, in the manner of
// Cairo's recording surfaces, so that tests and tools can inspect exactly
// which calls a paint.Surface issued and in what order.
//
// # Geometry
//
// The Recorder tracks the current transform and keeps the current path in
// device space. FillCommand and StrokeCommand carry a copy of that path,
// with arcs flattened into line segments, together with the style and
// transform in effect. DrawImageCommand.Quad gives the device-space corners
// of a drawn image.
//
// # Playback
//
// A Recording can be replayed to any other paint.Canvas:
//
//	rec := recording.NewRecorder(300, 300)
//	s := paint.MustNew(rec)
//	drawScene(s)
//
//	c := raster.New(300, 300)
//	if err := rec.Finish().Playback(c); err != nil {
//	    log.Fatal(err)
//	}
//	c.SavePNG("scene.png")
//
// The package registers itself as the "recording" backend.
package recording
