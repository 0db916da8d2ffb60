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

package keymap_test

import (
	"testing"

	"github.com/jetsetilly/gopherchip/govern"
	"github.com/jetsetilly/gopherchip/gui/keymap"
	"github.com/jetsetilly/gopherchip/hardware/input"
	"github.com/jetsetilly/gopherchip/test"
)

func TestDefault(t *testing.T) {
	var expected = map[string]input.Key{
		"1": 0x1, "2": 0x2, "3": 0x3, "4": 0xc,
		"q": 0x4, "w": 0x5, "e": 0x6, "r": 0xd,
		"a": 0x7, "s": 0x8, "d": 0x9, "f": 0xe,
		"z": 0xa, "x": 0x0, "c": 0xb, "v": 0xf,
	}

	for n, k := range expected {
		v, ok := keymap.Default.Lookup(n)
		test.ExpectSuccess(t, ok, n)
		test.ExpectEquality(t, v, k, n)
	}

	_, ok := keymap.Default.Lookup("5")
	test.ExpectFailure(t, ok)

	// every keypad key is reachable
	var seen [input.NumKeys]bool
	for _, n := range keymap.Default.Names() {
		k, _ := keymap.Default.Lookup(n)
		seen[k] = true
	}
	for k, s := range seen {
		test.ExpectSuccess(t, s, k)
	}
}

func TestControl(t *testing.T) {
	r, ok := keymap.Control("Escape", govern.Running)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, r, govern.RequestQuit)

	r, ok = keymap.Control("Space", govern.Running)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, r, govern.RequestPause)

	r, ok = keymap.Control("Space", govern.Paused)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, r, govern.RequestResume)

	_, ok = keymap.Control("Q", govern.Running)
	test.ExpectFailure(t, ok)
}

func TestReset(t *testing.T) {
	r, ok := keymap.Control("F5", govern.Paused)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, r, govern.RequestReset)
}
