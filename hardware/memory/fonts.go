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

package memory

// FontSize distinguishes between the two glyph tables.
type FontSize int

// List of valid FontSize values.
const (
	// 4x5 pixel glyphs for hex digits 0 to F
	FontStandard FontSize = iota

	// 8x10 pixel glyphs for decimal digits 0 to 9
	FontExtended
)

func (fs FontSize) String() string {
	switch fs {
	case FontStandard:
		return "standard"
	case FontExtended:
		return "extended"
	}
	return "unknown"
}

// origin and glyph sizes of the two font tables
const (
	OriginFontStandard = 0x000
	GlyphStandard      = 5
	OriginFontExtended = 0x050
	GlyphExtended      = 10
)

var fontStandard = []uint8{
	0xf0, 0x90, 0x90, 0x90, 0xf0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xf0, 0x10, 0xf0, 0x80, 0xf0, // 2
	0xf0, 0x10, 0xf0, 0x10, 0xf0, // 3
	0x90, 0x90, 0xf0, 0x10, 0x10, // 4
	0xf0, 0x80, 0xf0, 0x10, 0xf0, // 5
	0xf0, 0x80, 0xf0, 0x90, 0xf0, // 6
	0xf0, 0x10, 0x20, 0x40, 0x40, // 7
	0xf0, 0x90, 0xf0, 0x90, 0xf0, // 8
	0xf0, 0x90, 0xf0, 0x10, 0xf0, // 9
	0xf0, 0x90, 0xf0, 0x90, 0x90, // A
	0xe0, 0x90, 0xe0, 0x90, 0xe0, // B
	0xf0, 0x80, 0x80, 0x80, 0xf0, // C
	0xe0, 0x90, 0x90, 0x90, 0xe0, // D
	0xf0, 0x80, 0xf0, 0x80, 0xf0, // E
	0xf0, 0x80, 0xf0, 0x80, 0x80, // F
}

var fontExtended = []uint8{
	0x3c, 0x7e, 0xe7, 0xc3, 0xc3, 0xc3, 0xc3, 0xe7, 0x7e, 0x3c, // 0
	0x18, 0x38, 0x58, 0x18, 0x18, 0x18, 0x18, 0x18, 0x18, 0x3c, // 1
	0x3e, 0x7f, 0xc3, 0x06, 0x0c, 0x18, 0x30, 0x60, 0xff, 0xff, // 2
	0x3c, 0x7e, 0xc3, 0x03, 0x0e, 0x0e, 0x03, 0xc3, 0x7e, 0x3c, // 3
	0x06, 0x0e, 0x1e, 0x36, 0x66, 0xc6, 0xff, 0xff, 0x06, 0x06, // 4
	0xff, 0xff, 0xc0, 0xc0, 0xfc, 0xfe, 0x03, 0xc3, 0x7e, 0x3c, // 5
	0x3e, 0x7c, 0xe0, 0xc0, 0xfc, 0xfe, 0xc3, 0xc3, 0x7e, 0x3c, // 6
	0xff, 0xff, 0x03, 0x06, 0x0c, 0x18, 0x30, 0x60, 0x60, 0x60, // 7
	0x3c, 0x7e, 0xc3, 0xc3, 0x7e, 0x7e, 0xc3, 0xc3, 0x7e, 0x3c, // 8
	0x3c, 0x7e, 0xc3, 0xc3, 0x7f, 0x3f, 0x03, 0x03, 0x3e, 0x7c, // 9
}

// FontAddress returns the address of the glyph for the digit. Standard
// glyphs exist for digits 0x0 to 0xf. Extended glyphs exist for digits 0 to 9
// and only in the extended modes.
func (mem *Memory) FontAddress(digit uint8, size FontSize) (uint16, error) {
	switch size {
	case FontStandard:
		if digit > 0x0f {
			return 0, errorf(InvalidFontDigit, digit, size)
		}
		return OriginFontStandard + uint16(digit)*GlyphStandard, nil
	case FontExtended:
		if !mem.mode.Extended() || digit > 9 {
			return 0, errorf(InvalidFontDigit, digit, size)
		}
		return OriginFontExtended + uint16(digit)*GlyphExtended, nil
	}
	return 0, errorf(InvalidFontDigit, digit, size)
}
