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

// Package registers implements the register file: sixteen 8 bit general
// purpose registers, the 12 bit address register and the program counter.
//
// The arithmetic functions of the Register type do not write the flag
// register themselves. Instructions that set a flag must write the
// destination register first and the flag register second, so that an
// instruction with VF as the destination ends with the flag value in VF.
package registers
