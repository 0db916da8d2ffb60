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

// Package input implements the sixteen key hexadecimal keypad.
//
// Keys can be pressed and released directly with Press() and Release(). These
// must only be called between frames, usually from the frame callback.
//
// Hosts that read keyboard input in a different goroutine can use PushEvent()
// instead. Pushed events are queued and applied by the interpreter at the
// start of the next frame.
package input

import (
	"fmt"
	"strings"
)

// NumKeys is the number of keys on the keypad.
const NumKeys = 16

// Key is the value of a key on the keypad, 0x0 to 0xf.
type Key uint8

func (k Key) String() string {
	return fmt.Sprintf("%X", uint8(k))
}

// Event is a change in the state of a key.
type Event struct {
	Key     Key
	Pressed bool
}

func (ev Event) String() string {
	if ev.Pressed {
		return fmt.Sprintf("%s down", ev.Key)
	}
	return fmt.Sprintf("%s up", ev.Key)
}

// the maximum number of events that can be waiting in the push queue
const pushedQueueLen = 64

// Keypad is the state of the sixteen keys.
type Keypad struct {
	keys   [NumKeys]bool
	pushed chan Event
}

// NewKeypad is the preferred method of initialisation for the Keypad type.
func NewKeypad() *Keypad {
	return &Keypad{
		pushed: make(chan Event, pushedQueueLen),
	}
}

func (kp *Keypad) String() string {
	s := strings.Builder{}
	for k, p := range kp.keys {
		if p {
			s.WriteString(Key(k).String())
		} else {
			s.WriteString("-")
		}
	}
	return s.String()
}

// Press the key. Only the lower nibble of the key value is used.
func (kp *Keypad) Press(k Key) {
	kp.keys[k&0x0f] = true
}

// Release the key. Only the lower nibble of the key value is used.
func (kp *Keypad) Release(k Key) {
	kp.keys[k&0x0f] = false
}

// Set the state of every key at once.
func (kp *Keypad) Set(keys [NumKeys]bool) {
	kp.keys = keys
}

// Keys returns the state of every key.
func (kp *Keypad) Keys() [NumKeys]bool {
	return kp.keys
}

// IsPressed returns true if the key is pressed. Only the lower nibble of the
// key value is used.
func (kp *Keypad) IsPressed(k Key) bool {
	return kp.keys[k&0x0f]
}

// Pressed returns the lowest valued key that is pressed. The second return
// value is false if no key is pressed.
func (kp *Keypad) Pressed() (Key, bool) {
	for k, p := range kp.keys {
		if p {
			return Key(k), true
		}
	}
	return 0, false
}

// PushEvent queues an event from another goroutine. Returns false if the
// queue is full and the event has been dropped.
func (kp *Keypad) PushEvent(ev Event) bool {
	select {
	case kp.pushed <- ev:
		return true
	default:
		return false
	}
}

// HandlePushed applies all queued events to the keypad. Returns the number of
// events applied.
func (kp *Keypad) HandlePushed() int {
	var n int
	for {
		select {
		case ev := <-kp.pushed:
			if ev.Pressed {
				kp.Press(ev.Key)
			} else {
				kp.Release(ev.Key)
			}
			n++
		default:
			return n
		}
	}
}
