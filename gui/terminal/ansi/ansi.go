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

// Package ansi defines the ANSI control sequences used to draw the display
// in a terminal. Colours are always 24-bit.
package ansi

import (
	"fmt"
	"strings"
)

// control sequence introducer.
const csi = "\x1b["

// cursor and screen control.
const (
	CursorHome  = csi + "H"
	CursorHide  = csi + "?25l"
	CursorShow  = csi + "?25h"
	ClearScreen = csi + "2J"
)

// NormalPen is the sequence for regular text in the terminal's default
// colours.
const NormalPen = csi + "0m"

// ansi target.
const (
	targetPen   = 38
	targetPaper = 48
)

// selects the 24-bit colour form of the pen and paper targets
const trueColour = 2

// Colour is a 24-bit colour value.
type Colour struct {
	R, G, B uint8
}

// ColourBuild creates the sequence for the pen and paper colour. Either
// colour can be nil, in which case that target is left unchanged.
func ColourBuild(pen *Colour, paper *Colour) string {
	if pen == nil && paper == nil {
		return ""
	}

	s := strings.Builder{}
	s.Grow(40)
	s.WriteString(csi)

	if pen != nil {
		s.WriteString(fmt.Sprintf("%d;%d;%d;%d;%d", targetPen, trueColour, pen.R, pen.G, pen.B))
	}

	if paper != nil {
		if pen != nil {
			s.WriteString(";")
		}
		s.WriteString(fmt.Sprintf("%d;%d;%d;%d;%d", targetPaper, trueColour, paper.R, paper.G, paper.B))
	}

	s.WriteString("m")

	return s.String()
}
