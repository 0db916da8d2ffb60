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

package timer_test

import (
	"testing"

	"github.com/jetsetilly/gopherchip/hardware/timer"
	"github.com/jetsetilly/gopherchip/test"
)

func TestTimer(t *testing.T) {
	tmr := timer.NewTimer("DT")
	tmr.Set(10)
	for i := 0; i < 10; i++ {
		tmr.Tick()
	}
	test.ExpectEquality(t, tmr.Get(), 0)

	// no underflow
	tmr.Tick()
	test.ExpectEquality(t, tmr.Get(), 0)
	test.ExpectEquality(t, tmr.String(), "DT=0x00")
}

func TestPair(t *testing.T) {
	p := timer.NewPair()
	p.Delay.Set(2)
	p.Sound.Set(1)

	p.Tick()
	test.ExpectEquality(t, p.Delay.Get(), 1)
	test.ExpectEquality(t, p.Sound.Get(), 0)

	p.Tick()
	test.ExpectEquality(t, p.Delay.Get(), 0)
	test.ExpectEquality(t, p.Sound.Get(), 0)
	test.ExpectEquality(t, p.String(), "DT=0x00 ST=0x00")
}
