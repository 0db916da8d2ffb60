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

package registers

import (
	"fmt"
	"strings"
)

// NumRegisters is the number of general purpose registers.
const NumRegisters = 16

// VF is the index of the flag register.
const VF = 0xf

// Registers is the register file. V0 to VF are general purpose registers
// although VF is also written to by some instructions as a flag.
type Registers struct {
	V  [NumRegisters]Register
	I  Address
	PC ProgramCounter
}

// NewRegisters is the preferred method of initialisation for Registers. The
// program counter is set to the origin value.
func NewRegisters(origin uint16) Registers {
	r := Registers{
		PC: NewProgramCounter(origin),
	}
	for i := range r.V {
		r.V[i] = NewRegister(0, fmt.Sprintf("V%X", i))
	}
	return r
}

func (r Registers) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("PC=%s %s", r.PC, r.I))
	for _, v := range r.V {
		s.WriteString(" ")
		s.WriteString(v.String())
	}
	return s.String()
}

// SetFlag writes the flag register. True is written as one.
func (r *Registers) SetFlag(v bool) {
	if v {
		r.V[VF].Load(1)
	} else {
		r.V[VF].Load(0)
	}
}
