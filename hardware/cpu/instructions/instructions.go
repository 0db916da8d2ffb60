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

package instructions

import "fmt"

// Instruction is a single 16-bit word fetched from memory. Every 16-bit value
// is a valid Instruction as far as decoding is concerned. Whether the value
// is a meaningful instruction for the current platform is decided by the CPU.
//
// Field names follow the usual CHIP-8 notation. For the value 0xD123:
//
//	Opcode = 0xD
//	X      = 0x1
//	Y      = 0x2
//	N      = 0x3
//	KK     = 0x23
//	NNN    = 0x123
type Instruction uint16

// Opcode is the most significant nibble (bits 12-15).
func (ins Instruction) Opcode() uint8 {
	return uint8(ins >> 12)
}

// X is the register index in bits 8-11.
func (ins Instruction) X() uint8 {
	return uint8(ins>>8) & 0x0f
}

// Y is the register index in bits 4-7.
func (ins Instruction) Y() uint8 {
	return uint8(ins>>4) & 0x0f
}

// N is the least significant nibble (bits 0-3).
func (ins Instruction) N() uint8 {
	return uint8(ins) & 0x0f
}

// KK is the 8-bit immediate value in bits 0-7.
func (ins Instruction) KK() uint8 {
	return uint8(ins)
}

// NNN is the 12-bit address in bits 0-11.
func (ins Instruction) NNN() uint16 {
	return uint16(ins) & 0x0fff
}

// Nibbles returns the four nibbles of the instruction, most significant first.
// Useful for switch statements that match on the whole instruction.
func (ins Instruction) Nibbles() (uint8, uint8, uint8, uint8) {
	return ins.Opcode(), ins.X(), ins.Y(), ins.N()
}

// Encode creates an Instruction from the four nibbles. Only the lower four
// bits of each argument are used.
func Encode(opcode uint8, x uint8, y uint8, n uint8) Instruction {
	return Instruction(uint16(opcode&0x0f)<<12 | uint16(x&0x0f)<<8 | uint16(y&0x0f)<<4 | uint16(n&0x0f))
}

// FromBytes creates an Instruction from two bytes in big-endian order.
func FromBytes(hi uint8, lo uint8) Instruction {
	return Instruction(uint16(hi)<<8 | uint16(lo))
}

func (ins Instruction) String() string {
	return fmt.Sprintf("%04x", uint16(ins))
}

// Instructions that are matched as a whole by the CPU.
const (
	ClearScreen     Instruction = 0x00e0
	Return          Instruction = 0x00ee
	ScrollRight     Instruction = 0x00fb
	ScrollLeft      Instruction = 0x00fc
	Exit            Instruction = 0x00fd
	LoresMode       Instruction = 0x00fe
	HiresMode       Instruction = 0x00ff
	LongLoad        Instruction = 0xf000
	LoadAudioBuffer Instruction = 0xf002
)
