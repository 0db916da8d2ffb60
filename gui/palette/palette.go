// This file is part of GopherChip.
//
// GopherChip is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherChip is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherChip.  If not, see <https://www.gnu.org/licenses/>.

// Package palette maps the four pixel colours of the display to RGB values.
package palette

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopherchip/curated"
	"github.com/jetsetilly/gopherchip/hardware/display"
)

// RGB is a 24 bit colour value.
type RGB struct {
	R, G, B uint8
}

func (c RGB) String() string {
	return fmt.Sprintf("0x%06x", c.Packed())
}

// Packed returns the colour as a single value in 0xRRGGBB format.
func (c RGB) Packed() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// FromPacked creates an RGB value from a value in 0xRRGGBB format.
func FromPacked(v uint32) RGB {
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
}

// ParseHex converts a hexadecimal string to an RGB value. The string can be
// prefixed with 0x or # and must have six digits.
func ParseHex(s string) (RGB, error) {
	t := strings.TrimSpace(s)
	t = strings.TrimPrefix(strings.ToLower(t), "0x")
	t = strings.TrimPrefix(t, "#")
	if len(t) != 6 {
		return RGB{}, curated.Errorf("palette: invalid colour (%s)", s)
	}
	v, err := strconv.ParseUint(t, 16, 32)
	if err != nil {
		return RGB{}, curated.Errorf("palette: invalid colour (%s)", s)
	}
	return FromPacked(uint32(v)), nil
}

// Palette is indexed by display.Colour.
type Palette [4]RGB

// Default is the palette used if no other palette is specified.
var Default = Palette{
	display.Off:    {0x00, 0x00, 0x00},
	display.First:  {0xff, 0x00, 0x00},
	display.Second: {0x00, 0xff, 0x00},
	display.Both:   {0x00, 0x00, 0xff},
}

func (p Palette) String() string {
	return fmt.Sprintf("off=%s first=%s second=%s both=%s",
		p[display.Off], p[display.First], p[display.Second], p[display.Both])
}

// Lookup returns the RGB value for the display colour.
func (p Palette) Lookup(c display.Colour) RGB {
	return p[c&0x03]
}

// NewPalette creates a palette from four hexadecimal strings, in the order
// off, first, second, both. Empty strings select the colour from the Default
// palette.
func NewPalette(off, first, second, both string) (Palette, error) {
	p := Default
	for i, s := range []string{off, first, second, both} {
		if strings.TrimSpace(s) == "" {
			continue
		}
		c, err := ParseHex(s)
		if err != nil {
			return Default, err
		}
		p[i] = c
	}
	return p, nil
}
