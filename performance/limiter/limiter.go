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

// Package limiter is used to cap the number of frames per second. The
// interpreter itself runs as fast as it can so hosts that want the timers to
// count down at the correct speed should call Wait() once per frame.
package limiter

import (
	"time"
)

// FPSLimiter will trigger every frames-per-second.
type FPSLimiter struct {
	framesPerSecond int
	secondsPerFrame time.Duration

	tick chan bool
	quit chan bool
}

// NewFPSLimiter is the preferred method of initialisation for the FPSLimiter
// type. The limiter goroutine runs until Close() is called.
func NewFPSLimiter(framesPerSecond int) *FPSLimiter {
	lim := &FPSLimiter{
		tick: make(chan bool),
		quit: make(chan bool),
	}
	lim.SetLimit(framesPerSecond)

	go func() {
		// the sleep duration is adjusted on every iteration to account for
		// the time taken to hand the tick to the waiting goroutine
		adjusted := lim.secondsPerFrame
		t := time.Now()
		for {
			select {
			case lim.tick <- true:
			case <-lim.quit:
				return
			}

			time.Sleep(adjusted)
			nt := time.Now()
			adjusted -= nt.Sub(t) - lim.secondsPerFrame
			if adjusted < 0 {
				adjusted = 0
			}
			t = nt
		}
	}()

	return lim
}

// SetLimit changes the limit at which the FPSLimiter waits. A value of zero
// or less is treated as one.
func (lim *FPSLimiter) SetLimit(framesPerSecond int) {
	if framesPerSecond < 1 {
		framesPerSecond = 1
	}
	lim.framesPerSecond = framesPerSecond
	lim.secondsPerFrame = time.Second / time.Duration(framesPerSecond)
}

// Limit returns the current frames per second limit.
func (lim *FPSLimiter) Limit() int {
	return lim.framesPerSecond
}

// Wait will block until the next tick.
func (lim *FPSLimiter) Wait() {
	<-lim.tick
}

// HasWaited will return true if the next tick has arrived. It does not block.
func (lim *FPSLimiter) HasWaited() bool {
	select {
	case <-lim.tick:
		return true
	default:
		return false
	}
}

// Close stops the limiter goroutine. Wait() must not be called after Close().
func (lim *FPSLimiter) Close() {
	close(lim.quit)
}
