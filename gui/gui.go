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

// Package gui defines the interface that a host implementation must satisfy
// and the loop that connects a host to the interpreter.
//
// Implementations are in the sdl and terminal sub-packages. Host key names
// are translated to keypad keys by the keymap package and display colours are
// translated to RGB values by the palette package.
package gui

import (
	"github.com/jetsetilly/gopherchip/hardware/audio"
	"github.com/jetsetilly/gopherchip/hardware/display"
)

// GUI defines the operations that can be performed on a host
// implementation. Every function will be called from the same goroutine as
// the interpreter.
type GUI interface {
	// Render the current state of the display
	Render(dsp *display.Display) error

	// Produce one frame's worth of audio. If gate is false the host should
	// output silence
	SetAudio(gate bool, pattern [audio.PatternLen]uint8, pitch uint16) error

	// Service the host and return any events that have occurred since the
	// previous call. Must not block
	Service() ([]Event, error)

	// Release all resources
	Destroy()
}
