// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gallery

import (
	"context"
	"image"
	"image/color"
	"slices"
	"testing"

	"github.com/gogpu/paint/snapshot"
)

func TestCasesUnique(t *testing.T) {
	seen := make(map[string]string)
	for _, c := range Cases() {
		slug := snapshot.Slug(c.Name)
		if prev, ok := seen[slug]; ok {
			t.Errorf("cases %q and %q share slug %q", prev, c.Name, slug)
		}
		seen[slug] = c.Name
		if c.Draw == nil {
			t.Errorf("case %q has no Draw", c.Name)
		}
	}
	if len(seen) < 12 {
		t.Errorf("got %d cases, want at least 12", len(seen))
	}
}

func TestFind(t *testing.T) {
	if _, ok := Find("rect + fill"); !ok {
		t.Error(`Find("rect + fill") not found`)
	}
	if _, ok := Find("nope"); ok {
		t.Error(`Find("nope") found a case`)
	}
}

func TestSprite(t *testing.T) {
	s := Sprite()
	if s != Sprite() {
		t.Error("Sprite() returned a different image")
	}
	if s.Bounds() != image.Rect(0, 0, SpriteWidth, SpriteHeight) {
		t.Errorf("bounds = %v", s.Bounds())
	}
	if c := s.RGBAAt(3, 3); c != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("marker = %v, want white", c)
	}
	if c := s.RGBAAt(SpriteWidth-1, SpriteHeight-1); c.R != 255 || c.G != 255 || c.B != 128 {
		t.Errorf("bottom-right = %v", c)
	}
}

func render(t *testing.T, name string) *image.RGBA {
	t.Helper()
	c, ok := Find(name)
	if !ok {
		t.Fatalf("no case %q", name)
	}
	f, err := snapshot.Render(context.Background(), c, snapshot.DefaultRenderOptions())
	if err != nil {
		t.Fatalf("Render(%q) error = %v", name, err)
	}
	img, ok := f.Image.(*image.RGBA)
	if !ok {
		t.Fatalf("Render(%q) returned %T", name, f.Image)
	}
	return img
}

func TestGeometry(t *testing.T) {
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	black := color.RGBA{A: 255}
	red := color.RGBA{R: 255, A: 255}

	tests := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		{"rect + fill", 200, 175, black},
		{"rect + fill", 249, 199, black},
		{"rect + fill", 255, 175, color.RGBA{}},
		{"rect + fill", 200, 205, color.RGBA{}},
		{"circle + stroke + fill", 170, 170, red},
		{"circle + stroke + fill", 189, 110, black},
		{"circle + stroke + fill", 192, 107, color.RGBA{}},
		{"path + stroke", 85, 40, color.RGBA{}},
		{"path + stroke + fill + close path", 85, 40, black},
		{"Image", 155, 155, white},
		{"Anchor", 115, 125, white},
		{"Anchor", 105, 125, color.RGBA{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := render(t, tt.name)
			if got := img.RGBAAt(tt.x, tt.y); got != tt.want {
				t.Errorf("pixel (%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestImageAlpha(t *testing.T) {
	img := render(t, "Alpha")
	if a := img.RGBAAt(155, 155).A; a < 120 || a > 135 {
		t.Errorf("half-transparent marker alpha = %d, want about 128", a)
	}
}

// TestSnapshots checks every case against the references committed in
// testdata. Set snapshot.UpdateEnv to rewrite them.
func TestSnapshots(t *testing.T) {
	store := snapshot.NewStore(snapshot.AssertDir)
	update := snapshot.UpdateFromEnv()
	for _, c := range Cases() {
		t.Run(snapshot.Slug(c.Name), func(t *testing.T) {
			if !update && !store.Exists(c.Name) {
				t.Fatalf("no reference %s; run with %s=1 to create it", store.Path(c.Name), snapshot.UpdateEnv)
			}
			f, err := snapshot.Render(context.Background(), c, snapshot.DefaultRenderOptions())
			if err != nil {
				t.Fatal(err)
			}
			snapshot.Assert(t, f.Image, c.Name)
		})
	}
}

func TestReferencesCommitted(t *testing.T) {
	got, err := snapshot.NewStore(snapshot.AssertDir).Slugs()
	if err != nil {
		t.Fatal(err)
	}
	var want []string
	for _, c := range Cases() {
		want = append(want, snapshot.Slug(c.Name))
	}
	slices.Sort(want)
	if !slices.Equal(got, want) {
		t.Errorf("references = %v, want %v", got, want)
	}
}
