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
)

// Register is an 8 bit general purpose register. Arithmetic functions return
// the value that should be written to the flag register, but it is the
// responsibility of the caller to write it.
type Register struct {
	label string
	value uint8
}

// NewRegister is the preferred method of initialisation for Register.
func NewRegister(val uint8, label string) Register {
	return Register{
		value: val,
		label: label,
	}
}

func (r Register) String() string {
	return fmt.Sprintf("%s=%#02x", r.label, r.value)
}

// Label returns the name of the register.
func (r Register) Label() string {
	return r.label
}

// Value returns the current value of the register.
func (r Register) Value() uint8 {
	return r.value
}

// Load a value into the register.
func (r *Register) Load(val uint8) {
	r.value = val
}

// Add a value to the register. Returns true if the result did not fit in
// eight bits.
func (r *Register) Add(val uint8) bool {
	v := r.value
	r.value += val
	return r.value < v
}

// Subtract a value from the register. Returns true if there was no borrow,
// which is to say the value before subtraction was greater than or equal to
// val.
func (r *Register) Subtract(val uint8) bool {
	noBorrow := r.value >= val
	r.value -= val
	return noBorrow
}

// SubtractFrom sets the register to val minus the current value. Returns
// true if there was no borrow.
func (r *Register) SubtractFrom(val uint8) bool {
	noBorrow := val >= r.value
	r.value = val - r.value
	return noBorrow
}

// OR the register with the value.
func (r *Register) OR(val uint8) {
	r.value |= val
}

// AND the register with the value.
func (r *Register) AND(val uint8) {
	r.value &= val
}

// XOR the register with the value.
func (r *Register) XOR(val uint8) {
	r.value ^= val
}

// ShiftLeft loads the value shifted left by one bit. Returns the bit that
// was shifted out.
func (r *Register) ShiftLeft(val uint8) bool {
	r.value = val << 1
	return val&0x80 == 0x80
}

// ShiftRight loads the value shifted right by one bit. Returns the bit that
// was shifted out.
func (r *Register) ShiftRight(val uint8) bool {
	r.value = val >> 1
	return val&0x01 == 0x01
}
