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

// Package stack implements the call stack used by the 2nnn and 00EE
// instructions. The stack holds sixteen return addresses.
package stack

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopherchip/curated"
)

// Sentinel error patterns.
const (
	Overflow  = "stack: overflow (depth %d)"
	Underflow = "stack: underflow"
)

// Depth is the maximum number of entries in the stack.
const Depth = 16

// Stack is a bounded LIFO of return addresses.
type Stack struct {
	entries [Depth]uint16
	pointer int
}

// Push the address onto the stack.
func (st *Stack) Push(address uint16) error {
	if st.pointer >= Depth {
		return curated.Errorf(Overflow, Depth)
	}
	st.entries[st.pointer] = address
	st.pointer++
	return nil
}

// Pop the most recently pushed address from the stack.
func (st *Stack) Pop() (uint16, error) {
	if st.pointer == 0 {
		return 0, curated.Errorf(Underflow)
	}
	st.pointer--
	return st.entries[st.pointer], nil
}

// Depth returns the number of addresses in the stack.
func (st *Stack) Depth() int {
	return st.pointer
}

// Entries returns a copy of the addresses in the stack, the least recently
// pushed entry first.
func (st *Stack) Entries() []uint16 {
	e := make([]uint16, st.pointer)
	copy(e, st.entries[:st.pointer])
	return e
}

func (st Stack) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("SP=%d [", st.pointer))
	for i, a := range st.entries[:st.pointer] {
		if i > 0 {
			s.WriteString(" ")
		}
		s.WriteString(fmt.Sprintf("%#03x", a))
	}
	s.WriteString("]")
	return s.String()
}
