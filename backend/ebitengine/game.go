// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ebitengine

import (
	"github.com/gogpu/paint"
	"github.com/hajimehoshi/ebiten/v2"
)

// Game is an ebiten.Game that redraws a paint.Surface every frame.
// The layout follows the window size, so the surface always covers the
// whole window.
type Game struct {
	draw    func(*paint.Surface)
	opts    []paint.Option
	canvas  *Canvas
	surface *paint.Surface
}

// NewGame returns a Game that calls draw once per frame on a cleared surface.
// opts configure the surface, for example a shared image cache or view.
func NewGame(draw func(*paint.Surface), opts ...paint.Option) *Game {
	return &Game{draw: draw, opts: opts}
}

// Surface returns the surface used for the last frame, or nil before the
// first frame. Its view settings persist across frames.
func (g *Game) Surface() *paint.Surface { return g.surface }

func (g *Game) Update() error { return nil }

func (g *Game) Draw(screen *ebiten.Image) {
	if g.canvas == nil {
		g.canvas = New(screen)
		g.surface = paint.MustNew(g.canvas, g.opts...)
	} else {
		g.canvas.SetTarget(screen)
	}
	g.surface.Clear()
	if g.draw != nil {
		g.draw(g.surface)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// Run opens a resizable window titled title and runs g until it is closed.
func Run(title string, width, height int, g *Game) error {
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(g)
}

var _ ebiten.Game = (*Game)(nil)
