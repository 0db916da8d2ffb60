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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopherchip/hardware/audio"
	"github.com/jetsetilly/gopherchip/hardware/cpu"
	"github.com/jetsetilly/gopherchip/hardware/display"
	"github.com/jetsetilly/gopherchip/hardware/input"
	"github.com/jetsetilly/gopherchip/hardware/memory"
	"github.com/jetsetilly/gopherchip/hardware/platform"
	"github.com/jetsetilly/gopherchip/hardware/timer"
	"github.com/jetsetilly/gopherchip/random"
	"github.com/jetsetilly/gopherchip/test"
)

// creates a CPU with the program loaded at the program origin. program is
// a list of 16 bit words
func newCPU(t *testing.T, plt platform.Platform, program ...uint16) *cpu.CPU {
	t.Helper()

	b := make([]uint8, 0, len(program)*2)
	for _, w := range program {
		b = append(b, uint8(w>>8), uint8(w))
	}

	mem, err := memory.NewMemory(plt.Mode, b)
	test.DemandSuccess(t, err)

	tmrs := timer.NewPair()
	rnd := random.NewRandom()
	rnd.ZeroSeed()

	return cpu.NewCPU(plt, mem, display.NewDisplay(plt.Quirks.WrapInsteadOfClipping),
		&tmrs, input.NewKeypad(), audio.NewAudio(), rnd)
}

// executes n instructions and fails the test on any error
func step(t *testing.T, mc *cpu.CPU, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		test.DemandSuccess(t, mc.ExecuteInstruction())
	}
}

func v(mc *cpu.CPU, reg int) uint8 {
	return mc.Registers.V[reg].Value()
}

func pc(mc *cpu.CPU) uint16 {
	return mc.Registers.PC.Address()
}

func chip8() platform.Platform {
	return platform.NewPlatform(platform.Chip8)
}

func schip() platform.Platform {
	return platform.NewPlatform(platform.SuperChip)
}

func xochip() platform.Platform {
	return platform.NewPlatform(platform.XOChip)
}
