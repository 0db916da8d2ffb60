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

// Package timer implements the delay and sound timers. Both timers are
// decremented once per frame and stop at zero.
package timer

import "fmt"

// Timer is a single 8-bit countdown timer.
type Timer struct {
	label string
	value uint8
}

// NewTimer is the preferred method of initialisation for the Timer type.
func NewTimer(label string) Timer {
	return Timer{label: label}
}

func (tmr Timer) String() string {
	return fmt.Sprintf("%s=%#02x", tmr.label, tmr.value)
}

// Label returns the name of the timer.
func (tmr Timer) Label() string {
	return tmr.label
}

// Set the timer value.
func (tmr *Timer) Set(value uint8) {
	tmr.value = value
}

// Get the timer value.
func (tmr Timer) Get() uint8 {
	return tmr.value
}

// Tick decreases the timer by one. A timer at zero stays at zero.
func (tmr *Timer) Tick() {
	if tmr.value > 0 {
		tmr.value--
	}
}

// Pair is the delay and sound timer.
type Pair struct {
	Delay Timer
	Sound Timer
}

// NewPair is the preferred method of initialisation for the Pair type.
func NewPair() Pair {
	return Pair{
		Delay: NewTimer("DT"),
		Sound: NewTimer("ST"),
	}
}

func (p Pair) String() string {
	return fmt.Sprintf("%s %s", p.Delay, p.Sound)
}

// Tick both timers.
func (p *Pair) Tick() {
	p.Delay.Tick()
	p.Sound.Tick()
}
