// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package paint

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseColor interprets a CSS-style color string: a named color such as
// "red" or "cornflowerblue", "transparent", or a hex form "#rgb", "#rgba",
// "#rrggbb" or "#rrggbbaa". Names are case-insensitive.
func ParseColor(s string) (color.Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch {
	case name == "":
		return nil, fmt.Errorf("%w: empty string", ErrUnknownColor)
	case name == "transparent":
		return color.NRGBA{}, nil
	case name[0] == '#':
		c, ok := parseHex(name[1:])
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownColor, s)
		}
		return c, nil
	}
	if c, ok := colornames.Map[name]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownColor, s)
}

// MustColor is like ParseColor but panics on error.
// It is meant for literals known to be valid.
func MustColor(s string) color.Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func parseHex(h string) (color.NRGBA, bool) {
	var short bool
	switch len(h) {
	case 3, 4:
		short = true
	case 6, 8:
	default:
		return color.NRGBA{}, false
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, false
	}

	var r, g, b, a uint8
	a = 0xff
	if short {
		nib := func(shift uint) uint8 {
			n := uint8(v>>shift) & 0xf
			return n<<4 | n
		}
		if len(h) == 3 {
			r, g, b = nib(8), nib(4), nib(0)
		} else {
			r, g, b, a = nib(12), nib(8), nib(4), nib(0)
		}
	} else {
		if len(h) == 6 {
			v = v<<8 | 0xff
		}
		r, g, b, a = uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)
	}
	return color.NRGBA{R: r, G: g, B: b, A: a}, true
}
