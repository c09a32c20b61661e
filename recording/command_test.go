// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package recording

import (
	"image"
	"testing"

	"github.com/gogpu/gg"
)

func TestCommandTypeString(t *testing.T) {
	tests := []struct {
		cmd  CommandType
		want string
	}{
		{CmdSave, "Save"},
		{CmdRestore, "Restore"},
		{CmdReset, "Reset"},
		{CmdTranslate, "Translate"},
		{CmdArc, "Arc"},
		{CmdSetGlobalAlpha, "SetGlobalAlpha"},
		{CmdFill, "Fill"},
		{CmdStroke, "Stroke"},
		{CmdDrawImage, "DrawImage"},
		{CommandType(200), "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.cmd.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCommandTypeNamesComplete(t *testing.T) {
	for c := CmdSave; c <= CmdDrawImage; c++ {
		if commandTypeNames[c] == "" {
			t.Errorf("CommandType %d has no name", c)
		}
	}
}

func TestCommandTypes(t *testing.T) {
	tests := []struct {
		cmd  Command
		want CommandType
	}{
		{SaveCommand{}, CmdSave},
		{RestoreCommand{}, CmdRestore},
		{ResetCommand{}, CmdReset},
		{TranslateCommand{}, CmdTranslate},
		{RotateCommand{}, CmdRotate},
		{ScaleCommand{}, CmdScale},
		{BeginPathCommand{}, CmdBeginPath},
		{MoveToCommand{}, CmdMoveTo},
		{LineToCommand{}, CmdLineTo},
		{ClosePathCommand{}, CmdClosePath},
		{RectCommand{}, CmdRect},
		{ArcCommand{}, CmdArc},
		{SetFillStyleCommand{}, CmdSetFillStyle},
		{SetStrokeStyleCommand{}, CmdSetStrokeStyle},
		{SetLineWidthCommand{}, CmdSetLineWidth},
		{SetLineCapCommand{}, CmdSetLineCap},
		{SetLineJoinCommand{}, CmdSetLineJoin},
		{SetGlobalAlphaCommand{}, CmdSetGlobalAlpha},
		{FillCommand{}, CmdFill},
		{StrokeCommand{}, CmdStroke},
		{DrawImageCommand{}, CmdDrawImage},
	}
	for _, tt := range tests {
		if got := tt.cmd.Type(); got != tt.want {
			t.Errorf("%T.Type() = %v, want %v", tt.cmd, got, tt.want)
		}
	}
}

func TestDrawImageQuad(t *testing.T) {
	c := DrawImageCommand{
		X: 0, Y: 0, W: 10, H: 20,
		Transform: gg.Translate(100, 50).Multiply(gg.Scale(2, 2)),
	}
	q := c.Quad()
	want := [4]gg.Point{{X: 100, Y: 50}, {X: 120, Y: 50}, {X: 120, Y: 90}, {X: 100, Y: 90}}
	if q != want {
		t.Errorf("Quad() = %v, want %v", q, want)
	}
}

func TestResourcePoolDedupe(t *testing.T) {
	p := NewResourcePool()
	a := image.NewRGBA(image.Rect(0, 0, 2, 2))
	b := image.NewRGBA(image.Rect(0, 0, 2, 2))

	ra := p.AddImage(a)
	rb := p.AddImage(b)
	if ra == rb {
		t.Fatalf("distinct images share ref %d", ra)
	}
	if again := p.AddImage(a); again != ra {
		t.Errorf("re-adding image: ref %d, want %d", again, ra)
	}
	if p.ImageCount() != 2 {
		t.Errorf("ImageCount() = %d, want 2", p.ImageCount())
	}
	if p.Image(ra) != image.Image(a) {
		t.Error("Image(ra) returned a different image")
	}
	if p.Image(ImageRef(99)) != nil {
		t.Error("Image(out of range) should be nil")
	}

	p.Clear()
	if p.ImageCount() != 0 {
		t.Errorf("after Clear ImageCount() = %d, want 0", p.ImageCount())
	}
}

func TestPathBounds(t *testing.T) {
	p := Path{Subpaths: []Subpath{
		{Points: []gg.Point{{X: 10, Y: 20}, {X: 30, Y: 5}}},
		{Points: []gg.Point{{X: -4, Y: 8}}, Closed: true},
	}}
	b := p.Bounds()
	if b.Min != gg.Pt(-4, 5) || b.Max != gg.Pt(30, 20) {
		t.Errorf("Bounds() = %+v", b)
	}
	if b.Width() != 34 || b.Height() != 15 {
		t.Errorf("size = %vx%v, want 34x15", b.Width(), b.Height())
	}
	if (Path{}).Bounds() != (Rect{}) {
		t.Error("empty path bounds should be zero")
	}
}
