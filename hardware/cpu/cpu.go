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

package cpu

import (
	"fmt"

	"github.com/jetsetilly/gopherchip/curated"
	"github.com/jetsetilly/gopherchip/hardware/audio"
	"github.com/jetsetilly/gopherchip/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherchip/hardware/cpu/registers"
	"github.com/jetsetilly/gopherchip/hardware/cpu/stack"
	"github.com/jetsetilly/gopherchip/hardware/display"
	"github.com/jetsetilly/gopherchip/hardware/input"
	"github.com/jetsetilly/gopherchip/hardware/memory"
	"github.com/jetsetilly/gopherchip/hardware/platform"
	"github.com/jetsetilly/gopherchip/hardware/timer"
	"github.com/jetsetilly/gopherchip/logger"
	"github.com/jetsetilly/gopherchip/random"
)

// Sentinel error patterns.
const (
	UnknownInstruction = "cpu: unknown instruction for %v"
	InvalidRPLCount    = "cpu: invalid RPL count (%d) for %v"
	ExecutionError     = "cpu: instruction %v at %#03x: %v"
)

// LastResult records the most recently fetched instruction.
type LastResult struct {
	Address     uint16
	Instruction instructions.Instruction
}

func (r LastResult) String() string {
	return fmt.Sprintf("%#03x %v", r.Address, r.Instruction)
}

// CPU fetches, decodes and executes instructions. The CPU owns the register
// file and the call stack. All other components are shared with the
// interpreter.
type CPU struct {
	plt platform.Platform

	Registers registers.Registers
	Stack     stack.Stack

	Mem     *memory.Memory
	Display *display.Display
	Timers  *timer.Pair
	Keypad  *input.Keypad
	Audio   *audio.Audio
	Random  *random.Random

	LastResult LastResult

	// the program has executed the 00FD instruction. the CPU will not
	// execute any further instructions until Reset()
	Halted bool

	// log entries for mode changes and program exit are made only if Log
	// allows it. defaults to logger.Allow
	Log logger.Permission
}

// NewCPU is the preferred method of initialisation for the CPU type.
func NewCPU(plt platform.Platform, mem *memory.Memory, dsp *display.Display,
	tmrs *timer.Pair, kp *input.Keypad, aud *audio.Audio, rnd *random.Random) *CPU {
	mc := &CPU{
		plt:     plt,
		Mem:     mem,
		Display: dsp,
		Timers:  tmrs,
		Keypad:  kp,
		Audio:   aud,
		Random:  rnd,
		Log:     logger.Allow,
	}
	mc.Reset()
	return mc
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s %s", mc.Registers, mc.Stack)
}

// Reset the register file and the stack. The program counter points to the
// start of the program.
func (mc *CPU) Reset() {
	mc.Registers = registers.NewRegisters(memory.OriginProgram)
	mc.Stack = stack.Stack{}
	mc.LastResult = LastResult{}
	mc.Halted = false
}

// Platform returns the platform the CPU was created with.
func (mc *CPU) Platform() platform.Platform {
	return mc.plt
}

// ExecuteInstruction fetches the instruction at the program counter,
// advances the program counter and executes the instruction.
//
// Any error returned is wrapped in ExecutionError and should be treated as
// fatal.
func (mc *CPU) ExecuteInstruction() error {
	if mc.Halted {
		return nil
	}

	address := mc.Registers.PC.Address()

	hi, err := mc.Mem.Read(address)
	if err != nil {
		return curated.Errorf(ExecutionError, instructions.Instruction(0), address, err)
	}
	lo, err := mc.Mem.Read(address + 1)
	if err != nil {
		return curated.Errorf(ExecutionError, instructions.FromBytes(hi, 0), address, err)
	}

	ins := instructions.FromBytes(hi, lo)
	mc.LastResult = LastResult{
		Address:     address,
		Instruction: ins,
	}
	mc.Registers.PC.Add(2)

	err = mc.execute(ins)
	if err != nil {
		return curated.Errorf(ExecutionError, ins, address, err)
	}

	return nil
}

// returns UnknownInstruction if the active mode is not SUPER-CHIP or XO-CHIP
func (mc *CPU) requireExtended() error {
	if !mc.plt.Mode.Extended() {
		return curated.Errorf(UnknownInstruction, mc.plt.Mode)
	}
	return nil
}

// returns UnknownInstruction if the active mode is not XO-CHIP
func (mc *CPU) requireXOChip() error {
	if mc.plt.Mode != platform.XOChip {
		return curated.Errorf(UnknownInstruction, mc.plt.Mode)
	}
	return nil
}

// skip the next instruction if the condition is true. in XO-CHIP mode the
// four byte F000 instruction is skipped as a whole
func (mc *CPU) skip(condition bool) {
	if !condition {
		return
	}

	pc := mc.Registers.PC.Address()
	if mc.plt.Mode == platform.XOChip {
		next := instructions.FromBytes(mc.Mem.Peek(pc), mc.Mem.Peek(pc+1))
		if next == instructions.LongLoad {
			mc.Registers.PC.Add(4)
			return
		}
	}

	mc.Registers.PC.Add(2)
}
