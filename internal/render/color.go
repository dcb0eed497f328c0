package render

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// RGB is an opaque 24-bit colour.
type RGB struct {
	R, G, B uint8
}

// RGBA implements color.Color.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}.RGBA()
}

// Hex returns the colour as 0xRRGGBB.
func (c RGB) Hex() uint32 { return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B) }

func (c RGB) String() string { return fmt.Sprintf("#%06x", c.Hex()) }

// FromHex unpacks 0xRRGGBB.
func FromHex(v uint32) RGB {
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
}

// Default maze colours.
var (
	DefaultForeground = FromHex(0x775577)
	DefaultBackground = FromHex(0x3f3f3f)
)

// ParseColor accepts "random", bare hex ("3f3f3f"), "#rrggbb" or a W3C
// colour name. rnd supplies the 24-bit value for "random"; with a nil rnd
// "random" is rejected.
func ParseColor(s string, rnd func() uint32) (RGB, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "random" {
		if rnd == nil {
			return RGB{}, fmt.Errorf("random colour needs a random source")
		}
		return FromHex(rnd() & 0xffffff), nil
	}
	if len(name) == 6 && isHex(name) {
		name = "#" + name
	}
	c := tcell.GetColor(name)
	if c == tcell.ColorDefault {
		return RGB{}, fmt.Errorf("unknown colour %q", s)
	}
	r, g, b := c.RGB()
	if r < 0 {
		return RGB{}, fmt.Errorf("colour %q has no RGB value", s)
	}
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

func isHex(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f':
		default:
			return false
		}
	}
	return true
}
