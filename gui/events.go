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

package gui

// EventID identifies the type of event.
type EventID int

// List of valid EventIDs.
const (
	// the host window has been closed or the host input stream has ended
	EventQuit EventID = iota

	// a key has been pressed or released. data is EventDataKeyboard
	EventKeyboard
)

func (id EventID) String() string {
	switch id {
	case EventQuit:
		return "quit"
	case EventKeyboard:
		return "keyboard"
	}
	return "unknown"
}

// EventData is the information that accompanies an event.
type EventData interface{}

// Event is sent by a GUI implementation and handled by Run().
type Event struct {
	ID   EventID
	Data EventData
}

// EventDataKeyboard is the data that accompanies EventKeyboard. The key name
// is as used by the keymap package.
type EventDataKeyboard struct {
	Key  string
	Down bool
}
