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

// Package programloader is used to specify and load the program image to be
// run by the interpreter. Program images are flat binary files with no header.
//
// The platform can be specified explicitly or guessed from the file
// extension. The conventional extensions are:
//
//	.ch8	CHIP-8
//	.sc8	SUPER-CHIP
//	.xo8	XO-CHIP
//
// Any other extension is treated as CHIP-8.
//
// The filename can also be an http or https URL.
package programloader
