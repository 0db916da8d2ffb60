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

// Package hardware is the base package for the CHIP-8 interpreter. The
// Interpreter type collates the individual components and runs the frame
// loop.
//
// The emulation is driven by calling Frame() repeatedly, or by handing
// control to Run() or RunForFrameCount(). In both cases the host is informed
// of the state of the display, sound timer and audio pattern through the
// FrameCallback function. The callback is also the correct place to update
// the keypad.
//
// The interpreter is not safe for concurrent use. Hosts that collect input in
// another goroutine should use input.Keypad.PushEvent() which is applied at
// the start of every frame.
package hardware
