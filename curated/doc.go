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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. Patterns are normally stored as exported constants in the
// package that creates the error. For example, in the memory package:
//
//	const WriteReserved = "memory: write to reserved address %#03x"
//
//	err := curated.Errorf(WriteReserved, address)
//
//	if curated.Is(err, memory.WriteReserved) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs anywhere in
// the error chain. Errors from the hardware sub-packages are wrapped by the
// CPU with the address and value of the failing instruction, so Has() is the
// function to use when inspecting errors returned by the interpreter.
//
//	err := curated.Errorf(cpu.ExecutionError, pc, opcode, memoryErr)
//
//	if curated.Has(err, memory.WriteReserved) {
//		fmt.Println("true")
//	}
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the chain does not contain
// duplicate adjacent parts. For example, if a "cpu: " error wraps another
// "cpu: " error the message will read:
//
//	cpu: stack underflow
//
// and not:
//
//	cpu: cpu: stack underflow
//
// For the purposes of this package we think of chains as being composed of
// parts separated by the sub-string ': '.
package curated
