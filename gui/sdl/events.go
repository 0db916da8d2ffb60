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

package sdl

import (
	"github.com/jetsetilly/gopherchip/assert"
	"github.com/jetsetilly/gopherchip/gui"

	"github.com/veandco/go-sdl2/sdl"
)

// Service implements the gui.GUI interface.
func (g *GUI) Service() ([]gui.Event, error) {
	assert.SameGoroutine(g.owner, "sdl")

	var events []gui.Event

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			events = append(events, gui.Event{ID: gui.EventQuit})

		case *sdl.KeyboardEvent:
			if ev.Repeat != 0 {
				continue
			}

			switch ev.Type {
			case sdl.KEYDOWN:
				events = append(events, gui.Event{
					ID: gui.EventKeyboard,
					Data: gui.EventDataKeyboard{
						Key:  sdl.GetKeyName(ev.Keysym.Sym),
						Down: true}})
			case sdl.KEYUP:
				events = append(events, gui.Event{
					ID: gui.EventKeyboard,
					Data: gui.EventDataKeyboard{
						Key:  sdl.GetKeyName(ev.Keysym.Sym),
						Down: false}})
			}
		}
	}

	return events, nil
}
