// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package paint

import (
	"errors"
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"black", color.NRGBA{0, 0, 0, 255}},
		{"Red", color.NRGBA{255, 0, 0, 255}},
		{" green ", color.NRGBA{0, 128, 0, 255}},
		{"cornflowerblue", color.NRGBA{100, 149, 237, 255}},
		{"transparent", color.NRGBA{}},
		{"#fff", color.NRGBA{255, 255, 255, 255}},
		{"#f008", color.NRGBA{255, 0, 0, 0x88}},
		{"#1a2B3c", color.NRGBA{0x1a, 0x2b, 0x3c, 255}},
		{"#1a2b3c80", color.NRGBA{0x1a, 0x2b, 0x3c, 0x80}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := ParseColor(tt.in)
			if err != nil {
				t.Fatalf("ParseColor(%q) error: %v", tt.in, err)
			}
			got := color.NRGBAModel.Convert(c).(color.NRGBA)
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseColorErrors(t *testing.T) {
	for _, in := range []string{"", "notacolor", "#12", "#12345", "#ggg", "#123456789"} {
		if _, err := ParseColor(in); !errors.Is(err, ErrUnknownColor) {
			t.Errorf("ParseColor(%q) error = %v, want ErrUnknownColor", in, err)
		}
	}
}

func TestMustColor(t *testing.T) {
	if MustColor("white") == nil {
		t.Error("MustColor(white) = nil")
	}
	defer func() {
		if recover() == nil {
			t.Error("MustColor(bogus) did not panic")
		}
	}()
	MustColor("bogus")
}
