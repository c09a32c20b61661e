// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gallery holds the visual cases checked by cmd/paintsnap and the
// package tests: images under alpha, scale, anchor and rotation, filled and
// stroked rectangles, open and closed paths, and a circle.
package gallery

import (
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/gogpu/paint"
	"github.com/gogpu/paint/snapshot"
)

// Size of the sprite returned by Sprite.
const (
	SpriteWidth  = 80
	SpriteHeight = 60
)

var (
	spriteOnce sync.Once
	sprite     *image.RGBA
)

// Sprite returns the image drawn by the image cases: a red/green gradient
// with a white marker in its top-left corner so rotation and anchoring are
// visible. The same image is returned on every call.
func Sprite() *image.RGBA {
	spriteOnce.Do(func() {
		sprite = image.NewRGBA(image.Rect(0, 0, SpriteWidth, SpriteHeight))
		for y := 0; y < SpriteHeight; y++ {
			for x := 0; x < SpriteWidth; x++ {
				c := color.RGBA{
					R: uint8(x * 255 / (SpriteWidth - 1)),
					G: uint8(y * 255 / (SpriteHeight - 1)),
					B: 128,
					A: 255,
				}
				if x < 12 && y < 12 {
					c = color.RGBA{R: 255, G: 255, B: 255, A: 255}
				}
				sprite.SetRGBA(x, y, c)
			}
		}
	})
	return sprite
}

var center = paint.Pt(snapshot.DefaultWidth/2, snapshot.DefaultHeight/2)

var pathPoints = []paint.Point{
	{X: 10, Y: 10},
	{X: 200, Y: 200},
	{X: 40, Y: 140},
	{X: 160, Y: 70},
}

func imageCase(name string, b paint.Base) snapshot.Case {
	b.Position = center
	return snapshot.Case{
		Name: name,
		Draw: func(s *paint.Surface) {
			s.Image(paint.ImageProps{Base: b, Image: Sprite()})
		},
	}
}

// Cases returns the gallery in display order.
func Cases() []snapshot.Case {
	half := paint.Pt(0.5, 0.5)
	black := paint.MustColor("black")

	return []snapshot.Case{
		imageCase("Image", paint.Base{}),
		imageCase("Alpha", paint.Base{Alpha: paint.Float(0.5)}),
		imageCase("Scale", paint.Base{Scale: paint.Float(2)}),
		imageCase("Anchor", paint.Base{Anchor: half}),
		imageCase("Angle", paint.Base{Angle: math.Pi * 0.25}),
		imageCase("Angle + anchor + scale + alpha", paint.Base{
			Anchor: half,
			Angle:  math.Pi * 0.25,
			Scale:  paint.Float(1.5),
			Alpha:  paint.Float(0.5),
		}),
		{
			Name: "rect + fill",
			Draw: func(s *paint.Surface) {
				s.Rectangle(paint.RectangleProps{
					Base:   paint.Base{Position: center, Fill: black},
					Width:  100,
					Height: 50,
				})
			},
		},
		{
			Name: "rect + stroke",
			Draw: func(s *paint.Surface) {
				s.Rectangle(paint.RectangleProps{
					Base:   paint.Base{Position: center, Stroke: black, LineWidth: paint.Float(5)},
					Width:  100,
					Height: 50,
				})
			},
		},
		{
			Name: "rect + stroke + fill + angle",
			Draw: func(s *paint.Surface) {
				s.Rectangle(paint.RectangleProps{
					Base: paint.Base{
						Position:  center,
						Stroke:    black,
						Fill:      paint.MustColor("green"),
						LineWidth: paint.Float(5),
						Angle:     math.Pi * 0.3,
						Anchor:    half,
					},
					Width:  100,
					Height: 50,
				})
			},
		},
		{
			Name: "path + stroke",
			Draw: func(s *paint.Surface) {
				s.Path(paint.PathProps{
					Base:   paint.Base{Stroke: black, LineWidth: paint.Float(3)},
					Points: pathPoints,
				})
			},
		},
		{
			Name: "path + stroke + fill + close path",
			Draw: func(s *paint.Surface) {
				s.Path(paint.PathProps{
					Base:      paint.Base{Stroke: black, Fill: paint.MustColor("red"), LineWidth: paint.Float(5)},
					Points:    pathPoints,
					ClosePath: true,
				})
			},
		},
		{
			Name: "circle + stroke + fill",
			Draw: func(s *paint.Surface) {
				s.Circle(paint.CircleProps{
					Base:   paint.Base{Position: center, Stroke: black, Fill: paint.MustColor("red"), LineWidth: paint.Float(5)},
					Radius: 55,
				})
			},
		},
		{
			Name: "view rotation",
			Draw: func(s *paint.Surface) {
				s.SetView(paint.ViewTransform{Angle: math.Pi / 6, Offset: paint.Pt(20, 0), Scale: paint.Float(0.75)})
				s.Rectangle(paint.RectangleProps{
					Base:   paint.Base{Position: center, Fill: black, Anchor: half},
					Width:  100,
					Height: 50,
				})
				s.Circle(paint.CircleProps{
					Base:   paint.Base{Position: paint.Pt(60, 60), Stroke: black, LineWidth: paint.Float(4)},
					Radius: 30,
				})
			},
		},
	}
}

// Find returns the case named name.
func Find(name string) (snapshot.Case, bool) {
	for _, c := range Cases() {
		if c.Name == name {
			return c, true
		}
	}
	return snapshot.Case{}, false
}
