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

package govern

// State indicates the emulation's state.
type State int

// List of possible emulation states.
//
// Ending is the state when the emulation is being shut down. Either because
// the program has executed the exit instruction or because of a user request.
const (
	Initialising State = iota
	Paused
	Running
	Ending
)

func (s State) String() string {
	switch s {
	case Initialising:
		return "Initialising"
	case Paused:
		return "Paused"
	case Running:
		return "Running"
	case Ending:
		return "Ending"
	}

	return ""
}

// Request is made by the host to change the state of the emulation.
type Request int

// List of possible state requests.
const (
	RequestNone Request = iota
	RequestPause
	RequestResume
	RequestQuit

	// reset does not change the state. the host is responsible for resetting
	// the interpreter
	RequestReset
)

func (r Request) String() string {
	switch r {
	case RequestPause:
		return "Pause"
	case RequestResume:
		return "Resume"
	case RequestQuit:
		return "Quit"
	case RequestReset:
		return "Reset"
	}
	return ""
}

// Apply the request to the current state and return the new state. Requests
// that make no sense for the current state leave it unchanged.
func (s State) Apply(r Request) State {
	switch r {
	case RequestQuit:
		return Ending
	case RequestPause:
		if s == Running {
			return Paused
		}
	case RequestResume:
		if s == Paused {
			return Running
		}
	}
	return s
}
