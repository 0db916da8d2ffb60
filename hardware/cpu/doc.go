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

// Package cpu fetches, decodes and executes instructions for the CHIP-8,
// SUPER-CHIP and XO-CHIP platforms.
//
// A single CPU type serves all three platforms. The platform.Platform value
// given to NewCPU() decides which instructions are available and which quirks
// are active. An instruction that is not available for the platform results
// in an UnknownInstruction error.
//
// ExecuteInstruction() runs exactly one instruction. It is the interpreter's
// responsibility to call it the correct number of times per frame and to tick
// the timers.
//
// Errors returned by ExecuteInstruction() are wrapped in an ExecutionError
// which records the address and value of the failing instruction. The
// wrapped error can be identified with curated.Has(). No error is
// recoverable.
package cpu
