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

package terminal

import (
	"slices"
	"strings"

	"github.com/jetsetilly/gopherchip/gui/palette"
	"github.com/jetsetilly/gopherchip/gui/terminal/ansi"
	"github.com/jetsetilly/gopherchip/hardware/display"
)

// upper half block. the foreground colour is the upper pixel and the
// background colour is the lower pixel
const halfBlock = "▀"

func colourPair(upper palette.RGB, lower palette.RGB) string {
	pen := ansi.Colour(upper)
	paper := ansi.Colour(lower)
	return ansi.ColourBuild(&pen, &paper)
}

// Render implements the gui.GUI interface.
func (g *GUI) Render(dsp *display.Display) error {
	px := dsp.Bitplane()
	w := dsp.Width()

	if g.rendered && w == g.prevRes && slices.Equal(px, g.prev) {
		return nil
	}

	var s strings.Builder

	if w != g.prevRes {
		s.WriteString(ansi.NormalPen)
		s.WriteString(ansi.ClearScreen)
	}
	s.WriteString(ansi.CursorHome)

	h := dsp.Height()
	for y := 0; y < h; y += 2 {
		var last string
		for x := 0; x < w; x++ {
			c := colourPair(g.pal.Lookup(px[y*w+x]), g.pal.Lookup(px[(y+1)*w+x]))
			if c != last {
				s.WriteString(c)
				last = c
			}
			s.WriteString(halfBlock)
		}
		s.WriteString(ansi.NormalPen)
		s.WriteString("\r\n")
	}

	g.write(s.String())

	g.prev = px
	g.prevRes = w
	g.rendered = true

	return nil
}
