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

package display

// DrawSprite draws an 8 pixel wide sprite to the plane. Each byte in the
// sprite is one row, most significant bit on the left. The sprite is drawn
// with XOR and the return value is true if any pixel was turned off.
//
// The coordinates are wrapped to the display before drawing. Sprite pixels
// that go over the edge are wrapped or clipped depending on WrapSprites.
func (dsp *Display) DrawSprite(x int, y int, sprite []uint8, plane int) bool {
	rows := make([]uint16, len(sprite))
	for i, b := range sprite {
		rows[i] = uint16(b) << 8
	}
	return dsp.draw(x, y, rows, 8, plane)
}

// Draw16x16Sprite draws a sprite of sixteen rows each sixteen pixels wide. In
// all other respects it is the same as DrawSprite().
func (dsp *Display) Draw16x16Sprite(x int, y int, sprite []uint16, plane int) bool {
	return dsp.draw(x, y, sprite, 16, plane)
}

// rows are left aligned in the 16 bit value
func (dsp *Display) draw(x int, y int, rows []uint16, width int, plane int) bool {
	w := dsp.Width()
	h := dsp.Height()

	x %= w
	y %= h

	var collision bool

	for r, bits := range rows {
		py := y + r
		if py >= h {
			if !dsp.WrapSprites {
				break
			}
			py -= h
		}

		for c := 0; c < width; c++ {
			px := x + c
			if px >= w {
				if !dsp.WrapSprites {
					break
				}
				px -= w
			}

			if bits&(0x8000>>c) == 0 {
				continue
			}

			i := py*HiresWidth + px
			if dsp.planes[plane][i] {
				collision = true
			}
			dsp.planes[plane][i] = !dsp.planes[plane][i]
		}
	}

	return collision
}
