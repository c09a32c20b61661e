// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster_test

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"math"
	"path/filepath"
	"testing"

	"github.com/gogpu/paint"
	"github.com/gogpu/paint/backend/raster"
)

func pixel(img image.Image, x, y int) color.RGBA {
	return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
}

func isOpaque(c color.RGBA) bool  { return c.A > 250 }
func isClear(c color.RGBA) bool   { return c.A < 5 }
func isBlack(c color.RGBA) bool   { return isOpaque(c) && c.R < 10 && c.G < 10 && c.B < 10 }
func isRed(c color.RGBA) bool     { return isOpaque(c) && c.R > 245 && c.G < 10 && c.B < 10 }
func near(a, b uint8, tol int) bool {
	d := int(a) - int(b)
	return d >= -tol && d <= tol
}

func newSurface(t *testing.T) (*raster.Canvas, *paint.Surface) {
	t.Helper()
	c := raster.New(300, 300)
	t.Cleanup(func() { _ = c.Close() })
	return c, paint.MustNew(c)
}

func TestRectangleFill(t *testing.T) {
	c, s := newSurface(t)

	s.Rectangle(paint.RectangleProps{
		Base:   paint.Base{Position: paint.Pt(150, 150), Fill: color.Black},
		Width:  100,
		Height: 50,
	})
	img := c.Image()

	inside := []image.Point{{151, 151}, {200, 175}, {248, 198}}
	for _, p := range inside {
		if got := pixel(img, p.X, p.Y); !isBlack(got) {
			t.Errorf("pixel %v = %v, want black", p, got)
		}
	}
	outside := []image.Point{{148, 175}, {252, 175}, {200, 148}, {200, 202}, {10, 10}}
	for _, p := range outside {
		if got := pixel(img, p.X, p.Y); !isClear(got) {
			t.Errorf("pixel %v = %v, want transparent", p, got)
		}
	}
}

func TestCircleFillAndStroke(t *testing.T) {
	c, s := newSurface(t)

	s.Circle(paint.CircleProps{
		Base: paint.Base{
			Position:  paint.Pt(150, 150),
			Fill:      color.RGBA{R: 255, A: 255},
			Stroke:    color.Black,
			LineWidth: paint.Float(5),
		},
		Radius: 55,
	})
	img := c.Image()

	if got := pixel(img, 150, 150); !isRed(got) {
		t.Errorf("center = %v, want red", got)
	}
	if got := pixel(img, 150+50, 150); !isRed(got) {
		t.Errorf("radius 50 = %v, want red", got)
	}
	// The stroke straddles the circle: 52.5 to 57.5.
	for _, r := range []int{54, 55, 56} {
		if got := pixel(img, 150+r, 150); !isBlack(got) {
			t.Errorf("radius %d = %v, want black stroke", r, got)
		}
		if got := pixel(img, 150, 150-r); !isBlack(got) {
			t.Errorf("top radius %d = %v, want black stroke", r, got)
		}
	}
	if got := pixel(img, 150+59, 150); !isClear(got) {
		t.Errorf("radius 59 = %v, want transparent", got)
	}
}

func TestPathClosing(t *testing.T) {
	pts := []paint.Point{paint.Pt(10, 10), paint.Pt(200, 200), paint.Pt(40, 140), paint.Pt(160, 70)}
	// Midpoint of the closing segment (160,70)->(10,10).
	mid := image.Point{X: 85, Y: 40}

	tests := []struct {
		name      string
		closePath bool
		wantInk   bool
	}{
		{"open", false, false},
		{"closed", true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, s := newSurface(t)
			s.Path(paint.PathProps{
				Base:      paint.Base{Stroke: color.Black, LineWidth: paint.Float(5)},
				Points:    pts,
				ClosePath: tt.closePath,
			})
			got := pixel(c.Image(), mid.X, mid.Y)
			if tt.wantInk && !isBlack(got) {
				t.Errorf("closing segment midpoint = %v, want black", got)
			}
			if !tt.wantInk && !isClear(got) {
				t.Errorf("closing segment midpoint = %v, want transparent", got)
			}
			// (200,200) is a vertex in both cases.
			if got := pixel(c.Image(), 120, 120); !isBlack(got) {
				t.Errorf("first segment = %v, want black", got)
			}
		})
	}
}

func TestGlobalAlpha(t *testing.T) {
	c, s := newSurface(t)

	s.Rectangle(paint.RectangleProps{
		Base:  paint.Base{Position: paint.Pt(10, 10), Fill: color.Black, Alpha: paint.Float(0.5)},
		Width: 50, Height: 50,
	})
	got := pixel(c.Image(), 30, 30)
	if !near(got.A, 128, 3) {
		t.Errorf("alpha = %d, want about 128", got.A)
	}
}

func TestTranslucentFillColor(t *testing.T) {
	tests := []struct {
		name string
		fill color.Color
		want color.RGBA
	}{
		{"straight", color.NRGBA{R: 255, A: 128}, color.RGBA{R: 128, A: 128}},
		{"premultiplied", color.RGBA{G: 64, A: 128}, color.RGBA{G: 64, A: 128}},
		{"opaque", color.RGBA{B: 200, A: 255}, color.RGBA{B: 200, A: 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, s := newSurface(t)
			s.Rectangle(paint.RectangleProps{
				Base:  paint.Base{Position: paint.Pt(10, 10), Fill: tt.fill},
				Width: 50, Height: 50,
			})
			got := pixel(c.Image(), 30, 30)
			if !near(got.R, tt.want.R, 2) || !near(got.G, tt.want.G, 2) ||
				!near(got.B, tt.want.B, 2) || !near(got.A, tt.want.A, 2) {
				t.Errorf("pixel = %v, want about %v", got, tt.want)
			}
		})
	}
}

func TestExplicitZeroPaintsNothing(t *testing.T) {
	zero := paint.Float(0)
	tests := []struct {
		name string
		draw func(s *paint.Surface)
	}{
		{"rect alpha", func(s *paint.Surface) {
			s.Rectangle(paint.RectangleProps{
				Base:  paint.Base{Position: paint.Pt(10, 10), Fill: color.Black, Alpha: zero},
				Width: 50, Height: 50,
			})
		}},
		{"rect scale", func(s *paint.Surface) {
			s.Rectangle(paint.RectangleProps{
				Base:  paint.Base{Position: paint.Pt(10, 10), Fill: color.Black, Scale: zero},
				Width: 50, Height: 50,
			})
		}},
		{"image alpha", func(s *paint.Surface) {
			s.Image(paint.ImageProps{
				Base:  paint.Base{Position: paint.Pt(10, 10), Alpha: zero},
				Image: solidImage(50, 50, color.NRGBA{A: 255}),
			})
		}},
		{"view scale", func(s *paint.Surface) {
			s.SetViewScale(0)
			s.Rectangle(paint.RectangleProps{
				Base:  paint.Base{Position: paint.Pt(10, 10), Fill: color.Black},
				Width: 50, Height: 50,
			})
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, s := newSurface(t)
			tt.draw(s)
			img := c.Image()
			for _, p := range []image.Point{{10, 10}, {30, 30}, {150, 150}} {
				if got := pixel(img, p.X, p.Y); got.A != 0 {
					t.Errorf("pixel %v alpha = %d, want 0", p, got.A)
				}
			}
		})
	}
}

func TestSaveRestoreStyle(t *testing.T) {
	c := raster.New(40, 20)
	c.SetFillStyle(color.RGBA{R: 255, A: 255})
	c.Save()
	c.SetFillStyle(color.RGBA{B: 255, A: 255})
	c.Translate(20, 0)
	c.Restore()

	c.BeginPath()
	c.Rect(0, 0, 10, 10)
	if err := c.Fill(); err != nil {
		t.Fatalf("Fill: %v", err)
	}
	img := c.Image()
	if got := pixel(img, 5, 5); !isRed(got) {
		t.Errorf("pixel = %v, want red from restored style", got)
	}
	if got := pixel(img, 25, 5); !isClear(got) {
		t.Errorf("pixel = %v, want transparent, translation should be restored", got)
	}
}

func TestRestoreUnbalanced(t *testing.T) {
	c := raster.New(10, 10)
	c.Restore() // must not panic
	c.Save()
	c.Restore()
	c.Restore()
}

func TestFillKeepsPath(t *testing.T) {
	c := raster.New(20, 20)
	c.BeginPath()
	c.Rect(2, 2, 16, 16)
	c.SetFillStyle(color.RGBA{R: 255, A: 255})
	if err := c.Fill(); err != nil {
		t.Fatal(err)
	}
	c.SetLineWidth(2)
	c.SetStrokeStyle(color.Black)
	if err := c.Stroke(); err != nil {
		t.Fatal(err)
	}
	img := c.Image()
	if got := pixel(img, 10, 10); !isRed(got) {
		t.Errorf("interior = %v, want red", got)
	}
	if got := pixel(img, 2, 10); !isBlack(got) {
		t.Errorf("edge = %v, want black stroke over the kept path", got)
	}
}

func TestStrokeWidthFollowsTransform(t *testing.T) {
	c := raster.New(100, 100)
	c.Scale(4, 4)
	c.BeginPath()
	c.MoveTo(5, 10)
	c.LineTo(20, 10)
	c.SetLineWidth(2)
	c.SetStrokeStyle(color.Black)
	if err := c.Stroke(); err != nil {
		t.Fatal(err)
	}
	img := c.Image()
	// Device width is 8, centered on y=40.
	if got := pixel(img, 50, 37); !isBlack(got) {
		t.Errorf("y=37 = %v, want black", got)
	}
	if got := pixel(img, 50, 46); !isClear(got) {
		t.Errorf("y=46 = %v, want transparent", got)
	}
}

func solidImage(w, h int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestDrawImage(t *testing.T) {
	c, s := newSurface(t)

	src := solidImage(10, 10, color.NRGBA{R: 255, A: 255})
	s.Image(paint.ImageProps{
		Base:  paint.Base{Position: paint.Pt(50, 50), Scale: paint.Float(2)},
		Image: src,
	})
	img := c.Image()

	if got := pixel(img, 60, 60); !isRed(got) {
		t.Errorf("inside = %v, want red", got)
	}
	if got := pixel(img, 72, 60); !isClear(got) {
		t.Errorf("outside = %v, want transparent", got)
	}
}

func TestDrawImageAnchorRotation(t *testing.T) {
	c, s := newSurface(t)

	src := solidImage(40, 10, color.NRGBA{R: 255, A: 255})
	s.Image(paint.ImageProps{
		Base: paint.Base{
			Position: paint.Pt(150, 150),
			Anchor:   paint.Pt(0.5, 0.5),
			Angle:    math.Pi / 2,
		},
		Image: src,
	})
	img := c.Image()

	// A 40x10 strip centered on (150,150), turned upright.
	if got := pixel(img, 150, 135); !isRed(got) {
		t.Errorf("upright strip = %v, want red", got)
	}
	if got := pixel(img, 135, 150); !isClear(got) {
		t.Errorf("horizontal extent = %v, want transparent after rotation", got)
	}
}

func TestDrawImageAlpha(t *testing.T) {
	c, s := newSurface(t)

	src := solidImage(10, 10, color.NRGBA{A: 255})
	s.Image(paint.ImageProps{
		Base:  paint.Base{Position: paint.Pt(0, 0), Alpha: paint.Float(0.5)},
		Image: src,
	})
	got := pixel(c.Image(), 5, 5)
	if !near(got.A, 128, 3) {
		t.Errorf("alpha = %d, want about 128", got.A)
	}
}

func TestReset(t *testing.T) {
	c, s := newSurface(t)
	c.Save()
	c.Translate(100, 100)
	c.SetGlobalAlpha(0.2)
	s.Rectangle(paint.RectangleProps{
		Base:  paint.Base{Fill: color.Black},
		Width: 300, Height: 300,
	})

	s.Clear()

	img := c.Image()
	for _, p := range []image.Point{{0, 0}, {150, 150}, {299, 299}} {
		if got := pixel(img, p.X, p.Y); !isClear(got) {
			t.Errorf("after Clear pixel %v = %v, want transparent", p, got)
		}
	}

	// Identity transform and full alpha after reset.
	c.BeginPath()
	c.Rect(0, 0, 10, 10)
	if err := c.Fill(); err != nil {
		t.Fatal(err)
	}
	if got := pixel(c.Image(), 5, 5); !isBlack(got) {
		t.Errorf("after reset fill = %v, want opaque black at origin", got)
	}
}

func TestEncodeAndSavePNG(t *testing.T) {
	c, s := newSurface(t)
	s.Rectangle(paint.RectangleProps{
		Base:  paint.Base{Fill: color.Black},
		Width: 10, Height: 10,
	})

	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Bounds().Dx() != 300 || decoded.Bounds().Dy() != 300 {
		t.Errorf("bounds = %v, want 300x300", decoded.Bounds())
	}

	path := filepath.Join(t.TempDir(), "out.png")
	if err := c.SavePNG(path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
}

func TestRegistered(t *testing.T) {
	if !paint.IsRegistered(raster.Name) {
		t.Fatalf("%q backend not registered", raster.Name)
	}
	s, err := paint.NewBackend(raster.Name, 64, 32)
	if err != nil {
		t.Fatalf("NewBackend: %v", err)
	}
	if s.Width() != 64 || s.Height() != 32 {
		t.Errorf("size = %dx%d, want 64x32", s.Width(), s.Height())
	}

	_, err = paint.OpenCanvas(raster.Name, 0, 10)
	if !errors.Is(err, raster.ErrInvalidSize) {
		t.Errorf("OpenCanvas(0, 10) error = %v, want ErrInvalidSize", err)
	}
}
