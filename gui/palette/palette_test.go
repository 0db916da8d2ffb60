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

package palette_test

import (
	"testing"

	"github.com/jetsetilly/gopherchip/gui/palette"
	"github.com/jetsetilly/gopherchip/hardware/display"
	"github.com/jetsetilly/gopherchip/test"
)

func TestParseHex(t *testing.T) {
	c, err := palette.ParseHex("0xff8000")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, c, palette.RGB{R: 0xff, G: 0x80, B: 0x00})

	c, err = palette.ParseHex("#00FF00")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, c.Packed(), 0x00ff00)

	c, err = palette.ParseHex("0000ff")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, c.String(), "0x0000ff")

	// string representation can be parsed
	test.ExpectEquality(t, palette.RGB{}.String(), "0x000000")
	c, err = palette.ParseHex(palette.RGB{}.String())
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, c, palette.RGB{})

	// every colour in the default palette can be parsed from its string
	for _, d := range palette.Default {
		c, err = palette.ParseHex(d.String())
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, c, d)
	}
	p, err := palette.NewPalette(palette.Default[0].String(), palette.Default[1].String(),
		palette.Default[2].String(), palette.Default[3].String())
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, palette.Default)

	_, err = palette.ParseHex("0xfff")
	test.ExpectFailure(t, err)
	_, err = palette.ParseHex("0xgggggg")
	test.ExpectFailure(t, err)
}

func TestPalette(t *testing.T) {
	test.ExpectEquality(t, palette.Default.Lookup(display.Off), palette.RGB{})
	test.ExpectEquality(t, palette.Default.Lookup(display.First).Packed(), 0xff0000)
	test.ExpectEquality(t, palette.Default.Lookup(display.Second).Packed(), 0x00ff00)
	test.ExpectEquality(t, palette.Default.Lookup(display.Both).Packed(), 0x0000ff)

	p, err := palette.NewPalette("", "0xffffff", "", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p.Lookup(display.First).Packed(), 0xffffff)
	test.ExpectEquality(t, p.Lookup(display.Second).Packed(), 0x00ff00)

	_, err = palette.NewPalette("bad", "", "", "")
	test.ExpectFailure(t, err)
}
