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

// Package memory implements the 4096 byte address space of the CHIP-8
// interpreter.
//
// The memory map:
//
//	0x000 - 0x04f	standard font (16 glyphs of 5 bytes)
//	0x050 - 0x0b3	extended font (10 glyphs of 10 bytes, SUPER-CHIP and XO-CHIP)
//	0x0b4 - 0x1ff	reserved
//	0x200 - 0xfff	program and data
//
// Addresses below 0x200 cannot be written to by a program. Addresses above
// 0xfff do not exist.
//
// Separate from the address space is the RPL flag store. Eight bytes in
// SUPER-CHIP mode and sixteen bytes in XO-CHIP mode, used by the Fx75 and
// Fx85 instructions.
package memory
