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

package memory_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopherchip/curated"
	"github.com/jetsetilly/gopherchip/hardware/memory"
	"github.com/jetsetilly/gopherchip/hardware/platform"
	"github.com/jetsetilly/gopherchip/test"
)

func TestProgramLoad(t *testing.T) {
	mem, err := memory.NewMemory(platform.Chip8, []uint8{0x12, 0x34, 0x56})
	test.DemandSuccess(t, err)

	v, err := mem.Read(memory.OriginProgram)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0x12)

	w, err := mem.ReadWords(memory.OriginProgram, 1)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, w[0], 0x1234)

	b, err := mem.ReadBytes(memory.OriginProgram+1, 3)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b[0], 0x34)
	test.ExpectEquality(t, b[1], 0x56)
	test.ExpectEquality(t, b[2], 0x00)

	// largest possible program
	_, err = memory.NewMemory(platform.Chip8, make([]uint8, memory.MaxProgram))
	test.ExpectSuccess(t, err)

	// one byte too many
	_, err = memory.NewMemory(platform.Chip8, make([]uint8, memory.MaxProgram+1))
	test.ExpectSuccess(t, curated.Is(err, memory.ProgramTooLarge))
}

func TestBounds(t *testing.T) {
	mem, err := memory.NewMemory(platform.Chip8, nil)
	test.DemandSuccess(t, err)

	_, err = mem.Read(memory.Memtop)
	test.ExpectSuccess(t, err)
	_, err = mem.Read(memory.Memtop + 1)
	test.ExpectSuccess(t, curated.Is(err, memory.ReadOutOfRange))

	test.ExpectSuccess(t, mem.Write(memory.OriginProgram, 0xff))
	test.ExpectSuccess(t, mem.Write(memory.Memtop, 0xff))

	err = mem.Write(memory.OriginProgram-1, 0xff)
	test.ExpectSuccess(t, curated.Is(err, memory.WriteReserved))
	err = mem.Write(0x000, 0xff)
	test.ExpectSuccess(t, curated.Is(err, memory.WriteReserved))
	err = mem.Write(memory.Memtop+1, 0xff)
	test.ExpectSuccess(t, curated.Is(err, memory.WriteOutOfRange))

	// font data is unchanged after failed write
	test.ExpectEquality(t, mem.Peek(0x000), 0xf0)

	// bulk read crossing the top of memory fails
	_, err = mem.ReadBytes(memory.Memtop, 2)
	test.ExpectSuccess(t, curated.Is(err, memory.ReadOutOfRange))
}

func TestFontAddress(t *testing.T) {
	mem, err := memory.NewMemory(platform.Chip8, nil)
	test.DemandSuccess(t, err)

	a, err := mem.FontAddress(0, memory.FontStandard)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, a, memory.OriginFontStandard)

	// glyph for zero
	b, err := mem.ReadBytes(a, memory.GlyphStandard)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b[0], 0xf0)
	test.ExpectEquality(t, b[1], 0x90)
	test.ExpectEquality(t, b[4], 0xf0)

	a, err = mem.FontAddress(0xf, memory.FontStandard)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, a, 0xf*memory.GlyphStandard)

	_, err = mem.FontAddress(0x10, memory.FontStandard)
	test.ExpectSuccess(t, curated.Is(err, memory.InvalidFontDigit))

	// no extended font in CHIP-8 mode
	_, err = mem.FontAddress(0, memory.FontExtended)
	test.ExpectSuccess(t, curated.Is(err, memory.InvalidFontDigit))
}

func TestExtendedFont(t *testing.T) {
	for _, mode := range []platform.Mode{platform.SuperChip, platform.XOChip} {
		mem, err := memory.NewMemory(mode, nil)
		test.DemandSuccess(t, err)

		a, err := mem.FontAddress(0, memory.FontExtended)
		test.ExpectSuccess(t, err, mode)
		test.ExpectSuccess(t, a >= 16*memory.GlyphStandard, mode)
		test.ExpectEquality(t, mem.Peek(a), 0x3c, mode)

		a, err = mem.FontAddress(9, memory.FontExtended)
		test.ExpectSuccess(t, err, mode)
		test.ExpectEquality(t, a, memory.OriginFontExtended+9*memory.GlyphExtended, mode)

		// the extended table finishes before the program area
		test.ExpectSuccess(t, a+memory.GlyphExtended <= memory.OriginProgram, mode)

		_, err = mem.FontAddress(10, memory.FontExtended)
		test.ExpectSuccess(t, curated.Is(err, memory.InvalidFontDigit), mode)
	}
}

func TestFlags(t *testing.T) {
	mem, err := memory.NewMemory(platform.SuperChip, nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, mem.FlagsSize(), memory.FlagsSuperChip)

	test.ExpectSuccess(t, mem.WriteFlags([]uint8{1, 2, 3}))
	f, err := mem.ReadFlags(3)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, f[0], 1)
	test.ExpectEquality(t, f[2], 3)

	// flags are outside of the address space
	test.ExpectEquality(t, mem.Peek(0), 0xf0)

	err = mem.WriteFlags(make([]uint8, 9))
	test.ExpectSuccess(t, curated.Is(err, memory.InvalidFlagCount))
	_, err = mem.ReadFlags(9)
	test.ExpectSuccess(t, curated.Is(err, memory.InvalidFlagCount))

	mem, err = memory.NewMemory(platform.XOChip, nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, mem.FlagsSize(), memory.FlagsXOChip)
	test.ExpectSuccess(t, mem.WriteFlags(make([]uint8, 16)))
}

func TestHexDump(t *testing.T) {
	mem, err := memory.NewMemory(platform.Chip8, []uint8{0xab, 0xcd})
	test.DemandSuccess(t, err)

	s := mem.HexDump(memory.OriginProgram, 16)
	l := strings.Split(s, "\n")
	test.DemandEquality(t, len(l), 3)
	test.ExpectSuccess(t, strings.HasPrefix(l[2], "020- |  ab cd 00"))
}
