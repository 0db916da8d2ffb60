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

// Package statedump writes a graphviz representation of the interpreter
// state. The output is produced by "github.com/bradleyjkemp/memviz" and can be
// rendered with the dot command:
//
//	dot -Tpng state.dot > state.png
//
// The memory and display are summarised rather than dumped in full.
package statedump

import (
	"fmt"
	"io"
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopherchip/curated"
	"github.com/jetsetilly/gopherchip/hardware"
	"github.com/jetsetilly/gopherchip/hardware/display"
	"github.com/jetsetilly/gopherchip/hardware/cpu/registers"
	"github.com/jetsetilly/gopherchip/logger"
)

// State is a snapshot of the interpreter taken by NewState().
type State struct {
	Platform string
	Frame    int
	Halted   bool

	CPU     *CPU
	Timers  *Timers
	Display *Display
	Audio   *Audio
	Keypad  *Keypad
}

// CPU is the register and stack part of the snapshot.
type CPU struct {
	V               [registers.NumRegisters]uint8
	I               uint16
	PC              uint16
	Stack           []uint16
	LastAddress     uint16
	LastInstruction string
}

// Timers is the timer part of the snapshot.
type Timers struct {
	Delay uint8
	Sound uint8
}

// Display is the display part of the snapshot.
type Display struct {
	Width    int
	Height   int
	Selected uint8

	// number of pixels of each colour
	Off    int
	First  int
	Second int
	Both   int
}

// Audio is the audio part of the snapshot.
type Audio struct {
	Pattern string
	Pitch   uint16
}

// Keypad is the keypad part of the snapshot.
type Keypad struct {
	Keys string
}

// NewState takes a snapshot of the interpreter.
func NewState(itp *hardware.Interpreter) *State {
	st := &State{
		Platform: itp.Platform.String(),
		Frame:    itp.FrameNum(),
		Halted:   itp.CPU.Halted,
	}

	cpu := &CPU{
		I:               itp.CPU.Registers.I.Address(),
		PC:              itp.CPU.Registers.PC.Address(),
		Stack:           itp.CPU.Stack.Entries(),
		LastAddress:     itp.CPU.LastResult.Address,
		LastInstruction: fmt.Sprintf("%04x", uint16(itp.CPU.LastResult.Instruction)),
	}
	for i, r := range itp.CPU.Registers.V {
		cpu.V[i] = r.Value()
	}
	st.CPU = cpu

	st.Timers = &Timers{
		Delay: itp.Timers.Delay.Get(),
		Sound: itp.Timers.Sound.Get(),
	}

	dsp := &Display{
		Width:    itp.Display.Width(),
		Height:   itp.Display.Height(),
		Selected: itp.Display.Selected(),
	}
	for _, c := range itp.Display.Bitplane() {
		switch c {
		case display.Off:
			dsp.Off++
		case display.First:
			dsp.First++
		case display.Second:
			dsp.Second++
		case display.Both:
			dsp.Both++
		}
	}
	st.Display = dsp

	st.Audio = &Audio{
		Pattern: fmt.Sprintf("% x", itp.Audio.Pattern[:]),
		Pitch:   itp.Audio.Pitch,
	}

	st.Keypad = &Keypad{
		Keys: itp.Keypad.String(),
	}

	return st
}

// Write the graphviz representation of the interpreter state.
func Write(w io.Writer, itp *hardware.Interpreter) {
	memviz.Map(w, NewState(itp))
}

// WriteFile writes the graphviz representation of the interpreter state to
// the named file.
func WriteFile(filename string, itp *hardware.Interpreter) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("statedump: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("statedump: %v", err)
		}
	}()

	Write(f, itp)

	logger.Logf(logger.Allow, "statedump", "state written to %s", filename)

	return nil
}
