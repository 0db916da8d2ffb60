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

// Package display implements the two bitplanes of the CHIP-8 display.
//
// In CHIP-8 and SUPER-CHIP modes only the first plane is ever selected and
// the display is monochrome. XO-CHIP programs can select either plane, or
// both, giving four colours. The colour of a pixel is the combination of the
// bits in each plane:
//
//	first  second  colour
//	  0      0     Off
//	  1      0     First
//	  0      1     Second
//	  1      1     Both
//
// The display has two resolutions. Lores is 64x32 and hires is 128x64. The
// planes are always large enough for hires and only the top left of the
// planes is used in lores. Changing resolution clears both planes.
//
// Drawing and scrolling operations affect only the selected planes. Sprites
// are drawn with XOR and a collision is reported if any pixel is turned off.
package display
