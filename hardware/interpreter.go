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

package hardware

import (
	"fmt"
	"time"

	"github.com/jetsetilly/gopherchip/curated"
	"github.com/jetsetilly/gopherchip/govern"
	"github.com/jetsetilly/gopherchip/hardware/audio"
	"github.com/jetsetilly/gopherchip/hardware/cpu"
	"github.com/jetsetilly/gopherchip/hardware/display"
	"github.com/jetsetilly/gopherchip/hardware/input"
	"github.com/jetsetilly/gopherchip/hardware/memory"
	"github.com/jetsetilly/gopherchip/hardware/platform"
	"github.com/jetsetilly/gopherchip/hardware/timer"
	"github.com/jetsetilly/gopherchip/logger"
	"github.com/jetsetilly/gopherchip/random"
)

// InvalidInstructionsPerFrame is returned by NewInterpreter() if the
// platform asks for fewer than one instruction per frame.
const InvalidInstructionsPerFrame = "hardware: invalid instructions per frame (%d)"

// FrameCallback is called once per frame, after the timers have been ticked.
// The keypad can be changed by the callback and the changes will be seen by
// the next frame. The display should not be changed.
type FrameCallback func(kp *input.Keypad, dsp *display.Display, soundTimer uint8, pattern [audio.PatternLen]uint8, pitch uint16) error

// Interpreter is the top level type of the emulation. It owns every
// component.
type Interpreter struct {
	Platform platform.Platform

	CPU     *cpu.CPU
	Mem     *memory.Memory
	Display *display.Display
	Timers  timer.Pair
	Keypad  *input.Keypad
	Audio   *audio.Audio
	Random  *random.Random

	// the program image as it was given to NewInterpreter(). used by Reset()
	program []uint8

	// number of frames completed since creation or reset
	frameNum int
}

// NewInterpreter is the preferred method of initialisation for the
// Interpreter type. The program is loaded at the program origin.
func NewInterpreter(program []uint8, plt platform.Platform) (*Interpreter, error) {
	if plt.InstructionsPerFrame < 1 {
		return nil, curated.Errorf(InvalidInstructionsPerFrame, plt.InstructionsPerFrame)
	}

	itp := &Interpreter{
		Platform: plt,
		Keypad:   input.NewKeypad(),
		Audio:    audio.NewAudio(),
		Random:   random.NewRandom(),
		program:  program,
	}

	err := itp.Reset()
	if err != nil {
		return nil, err
	}

	logger.Logf(logger.Allow, "hardware", "%s: %d bytes", itp.Platform, len(program))

	return itp, nil
}

// Reset the interpreter to the state it was in immediately after creation.
// The random number generator is returned to the start of its sequence.
func (itp *Interpreter) Reset() error {
	mem, err := memory.NewMemory(itp.Platform.Mode, itp.program)
	if err != nil {
		return curated.Errorf("hardware: %v", err)
	}

	itp.Mem = mem
	itp.Display = display.NewDisplay(itp.Platform.Quirks.WrapInsteadOfClipping)
	itp.Timers = timer.NewPair()
	itp.Keypad.Set([input.NumKeys]bool{})
	itp.Audio.Reset()
	itp.Random.Reset()
	itp.CPU = cpu.NewCPU(itp.Platform, itp.Mem, itp.Display, &itp.Timers, itp.Keypad, itp.Audio, itp.Random)
	itp.frameNum = 0

	return nil
}

func (itp *Interpreter) String() string {
	return fmt.Sprintf("%s %s", itp.CPU, itp.Timers)
}

// FrameNum returns the number of frames completed.
func (itp *Interpreter) FrameNum() int {
	return itp.frameNum
}

// PressKey sets the key as pressed.
func (itp *Interpreter) PressKey(k input.Key) {
	itp.Keypad.Press(k)
}

// ReleaseKey sets the key as released.
func (itp *Interpreter) ReleaseKey(k input.Key) {
	itp.Keypad.Release(k)
}

// Pixels returns the colour of every pixel for the active resolution, in
// row-major order.
func (itp *Interpreter) Pixels() []display.Colour {
	return itp.Display.Bitplane()
}

// Resolution returns the width and height of the active resolution.
func (itp *Interpreter) Resolution() (int, int) {
	return itp.Display.Width(), itp.Display.Height()
}

// Frame executes the number of instructions specified by the platform, ticks
// the timers and then calls the callback. The callback can be nil.
//
// Returns govern.Ending if the program has executed the exit instruction.
// Any error should be considered fatal.
func (itp *Interpreter) Frame(callback FrameCallback) (govern.State, error) {
	itp.Keypad.HandlePushed()

	if itp.CPU.Halted {
		return govern.Ending, nil
	}

	for i := 0; i < itp.Platform.InstructionsPerFrame; i++ {
		err := itp.CPU.ExecuteInstruction()
		if err != nil {
			return govern.Ending, err
		}

		if itp.CPU.Halted {
			break
		}

		if itp.Platform.Sleep > 0 {
			time.Sleep(itp.Platform.Sleep)
		}
	}

	itp.Timers.Tick()
	itp.frameNum++

	if callback != nil {
		err := callback(itp.Keypad, itp.Display, itp.Timers.Sound.Get(), itp.Audio.Pattern, itp.Audio.Pitch)
		if err != nil {
			return govern.Ending, err
		}
	}

	if itp.CPU.Halted {
		return govern.Ending, nil
	}

	return govern.Running, nil
}
