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

import "fmt"

// AddressMask is applied to every value loaded into the Address register.
const AddressMask = 0x0fff

// Address is the 12 bit index register, usually called I.
type Address struct {
	value uint16
}

// Label returns the name of the register.
func (a Address) Label() string {
	return "I"
}

func (a Address) String() string {
	return fmt.Sprintf("I=%#03x", a.value)
}

// Address returns the current value of the register.
func (a Address) Address() uint16 {
	return a.value
}

// Load an address into the register. The value is masked to twelve bits.
func (a *Address) Load(val uint16) {
	a.value = val & AddressMask
}

// Add a value to the register. The result is masked to twelve bits.
func (a *Address) Add(val uint16) {
	a.value = (a.value + val) & AddressMask
}
