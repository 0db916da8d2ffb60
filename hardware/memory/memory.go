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

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopherchip/curated"
	"github.com/jetsetilly/gopherchip/hardware/platform"
)

// Sentinel error patterns.
const (
	ReadOutOfRange   = "memory: read out of range (%#04x)"
	WriteOutOfRange  = "memory: write out of range (%#04x)"
	WriteReserved    = "memory: write to reserved address (%#04x)"
	ProgramTooLarge  = "memory: program too large (%d bytes)"
	InvalidFontDigit = "memory: invalid font digit (%#x) for %v font"
	InvalidFlagCount = "memory: invalid flag count (%d)"
)

func errorf(pattern string, values ...interface{}) error {
	return curated.Errorf(pattern, values...)
}

// important addresses in the memory map.
const (
	OriginProgram = 0x200
	Memtop        = 0xfff
	Size          = Memtop + 1

	// maximum size of a program
	MaxProgram = Size - OriginProgram
)

// number of bytes in the RPL flag store.
const (
	FlagsSuperChip = 8
	FlagsXOChip    = 16
)

// Memory is the address space of the interpreter. The font tables are
// loaded on creation and cannot be changed by the program.
type Memory struct {
	mode platform.Mode

	data  [Size]uint8
	flags []uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
// The program is loaded at OriginProgram.
func NewMemory(mode platform.Mode, program []uint8) (*Memory, error) {
	if len(program) > MaxProgram {
		return nil, errorf(ProgramTooLarge, len(program))
	}

	mem := &Memory{
		mode: mode,
	}

	copy(mem.data[OriginFontStandard:], fontStandard)
	if mode.Extended() {
		copy(mem.data[OriginFontExtended:], fontExtended)
	}
	copy(mem.data[OriginProgram:], program)

	if mode == platform.XOChip {
		mem.flags = make([]uint8, FlagsXOChip)
	} else {
		mem.flags = make([]uint8, FlagsSuperChip)
	}

	return mem, nil
}

// Read returns the byte at the address.
func (mem *Memory) Read(address uint16) (uint8, error) {
	if address > Memtop {
		return 0, errorf(ReadOutOfRange, address)
	}
	return mem.data[address], nil
}

// Write the byte to the address. Addresses below OriginProgram are reserved
// for the interpreter.
func (mem *Memory) Write(address uint16, value uint8) error {
	if address > Memtop {
		return errorf(WriteOutOfRange, address)
	}
	if address < OriginProgram {
		return errorf(WriteReserved, address)
	}
	mem.data[address] = value
	return nil
}

// Peek returns the byte at the address without error checking. The address
// is masked to the address space.
func (mem *Memory) Peek(address uint16) uint8 {
	return mem.data[address&Memtop]
}

// ReadBytes reads n bytes starting at the address. Each address must be
// valid for Read().
func (mem *Memory) ReadBytes(address uint16, n int) ([]uint8, error) {
	b := make([]uint8, n)
	for i := range b {
		v, err := mem.Read(address + uint16(i))
		if err != nil {
			return nil, err
		}
		b[i] = v
	}
	return b, nil
}

// ReadWords reads n big-endian 16-bit words starting at the address.
func (mem *Memory) ReadWords(address uint16, n int) ([]uint16, error) {
	b, err := mem.ReadBytes(address, n*2)
	if err != nil {
		return nil, err
	}
	w := make([]uint16, n)
	for i := range w {
		w[i] = uint16(b[i*2])<<8 | uint16(b[i*2+1])
	}
	return w, nil
}

// FlagsSize returns the number of bytes in the RPL flag store.
func (mem *Memory) FlagsSize() int {
	return len(mem.flags)
}

// WriteFlags stores the values in the RPL flag store, starting at index zero.
func (mem *Memory) WriteFlags(values []uint8) error {
	if len(values) > len(mem.flags) {
		return errorf(InvalidFlagCount, len(values))
	}
	copy(mem.flags, values)
	return nil
}

// ReadFlags returns the first n bytes of the RPL flag store.
func (mem *Memory) ReadFlags(n int) ([]uint8, error) {
	if n < 0 || n > len(mem.flags) {
		return nil, errorf(InvalidFlagCount, n)
	}
	v := make([]uint8, n)
	copy(v, mem.flags)
	return v, nil
}

// HexDump returns a string showing length bytes from the origin address. Each
// line shows sixteen bytes.
func (mem *Memory) HexDump(origin uint16, length int) string {
	s := strings.Builder{}
	s.WriteString("       -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	s.WriteString("     ---- -- -- -- -- -- -- -- -- -- -- -- -- -- -- --\n")

	origin &= 0xfff0
	for l := 0; l < length; l += 16 {
		a := origin + uint16(l)
		if a > Memtop {
			break
		}
		s.WriteString(fmt.Sprintf("%03x- | ", a>>4))
		for x := uint16(0); x < 16; x++ {
			s.WriteString(fmt.Sprintf(" %02x", mem.data[a+x]))
		}
		s.WriteString("\n")
	}

	return strings.TrimSuffix(s.String(), "\n")
}
