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

// Package keymap translates the names of host keys to keypad keys and to
// emulation control actions.
//
// Key names are those returned by SDL's GetKeyName() function. The terminal
// host converts the bytes it reads to the same names. The default layout maps
// the left hand side of a QWERTY keyboard to the keypad:
//
//	1 2 3 4        1 2 3 C
//	Q W E R   ->   4 5 6 D
//	A S D F        7 8 9 E
//	Z X C V        A 0 B F
package keymap

import (
	"sort"
	"strings"

	"github.com/jetsetilly/gopherchip/govern"
	"github.com/jetsetilly/gopherchip/hardware/input"
)

// Keymap maps host key names to keypad keys.
type Keymap map[string]input.Key

// Default is the standard keymap.
var Default = Keymap{
	"1": 0x1, "2": 0x2, "3": 0x3, "4": 0xc,
	"Q": 0x4, "W": 0x5, "E": 0x6, "R": 0xd,
	"A": 0x7, "S": 0x8, "D": 0x9, "F": 0xe,
	"Z": 0xa, "X": 0x0, "C": 0xb, "V": 0xf,
}

// Lookup returns the keypad key for the host key name. Key names are case
// insensitive.
func (km Keymap) Lookup(name string) (input.Key, bool) {
	k, ok := km[strings.ToUpper(name)]
	return k, ok
}

// Names returns the host key names in the keymap, sorted.
func (km Keymap) Names() []string {
	n := make([]string, 0, len(km))
	for k := range km {
		n = append(n, k)
	}
	sort.Strings(n)
	return n
}

// Controls maps host key names to emulation requests.
var Controls = map[string]govern.Request{
	"ESCAPE": govern.RequestQuit,
	"SPACE":  govern.RequestPause,
	"F5":     govern.RequestReset,
}

// Control returns the emulation request for the host key name. Pause is
// reported as RequestResume if the emulation is already paused.
func Control(name string, state govern.State) (govern.Request, bool) {
	r, ok := Controls[strings.ToUpper(name)]
	if !ok {
		return govern.RequestNone, false
	}
	if r == govern.RequestPause && state == govern.Paused {
		r = govern.RequestResume
	}
	return r, true
}
