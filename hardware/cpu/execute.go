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
	"github.com/jetsetilly/gopherchip/curated"
	"github.com/jetsetilly/gopherchip/hardware/audio"
	"github.com/jetsetilly/gopherchip/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherchip/hardware/input"
	"github.com/jetsetilly/gopherchip/hardware/memory"
	"github.com/jetsetilly/gopherchip/hardware/platform"
	"github.com/jetsetilly/gopherchip/logger"
)

// execute the decoded instruction. the program counter has already been
// advanced past the instruction
func (mc *CPU) execute(ins instructions.Instruction) error {
	r := &mc.Registers
	vx := &r.V[ins.X()]
	vy := &r.V[ins.Y()]

	switch ins.Opcode() {
	case 0x0:
		return mc.executeSystem(ins)

	case 0x1:
		r.PC.Load(ins.NNN())

	case 0x2:
		err := mc.Stack.Push(r.PC.Address())
		if err != nil {
			return err
		}
		r.PC.Load(ins.NNN())

	case 0x3:
		mc.skip(vx.Value() == ins.KK())

	case 0x4:
		mc.skip(vx.Value() != ins.KK())

	case 0x5:
		switch ins.N() {
		case 0x0:
			mc.skip(vx.Value() == vy.Value())
		case 0x2:
			if err := mc.requireXOChip(); err != nil {
				return err
			}
			return mc.saveRange(ins.X(), ins.Y())
		case 0x3:
			if err := mc.requireXOChip(); err != nil {
				return err
			}
			return mc.loadRange(ins.X(), ins.Y())
		default:
			return curated.Errorf(UnknownInstruction, mc.plt.Mode)
		}

	case 0x6:
		vx.Load(ins.KK())

	case 0x7:
		// no flag
		_ = vx.Add(ins.KK())

	case 0x8:
		return mc.executeArithmetic(ins)

	case 0x9:
		if ins.N() != 0x0 {
			return curated.Errorf(UnknownInstruction, mc.plt.Mode)
		}
		mc.skip(vx.Value() != vy.Value())

	case 0xa:
		r.I.Load(ins.NNN())

	case 0xb:
		if mc.plt.Quirks.JumpWithX {
			r.PC.Load(ins.NNN() + uint16(vx.Value()))
		} else {
			r.PC.Load(ins.NNN() + uint16(r.V[0].Value()))
		}

	case 0xc:
		vx.Load(mc.Random.Byte() & ins.KK())

	case 0xd:
		return mc.draw(ins)

	case 0xe:
		switch ins.KK() {
		case 0x9e:
			mc.skip(mc.Keypad.IsPressed(input.Key(vx.Value())))
		case 0xa1:
			mc.skip(!mc.Keypad.IsPressed(input.Key(vx.Value())))
		default:
			return curated.Errorf(UnknownInstruction, mc.plt.Mode)
		}

	case 0xf:
		return mc.executeMisc(ins)
	}

	return nil
}

// 0nnn group
func (mc *CPU) executeSystem(ins instructions.Instruction) error {
	switch ins {
	case instructions.ClearScreen:
		mc.Display.Clear()
		return nil

	case instructions.Return:
		address, err := mc.Stack.Pop()
		if err != nil {
			return err
		}
		mc.Registers.PC.Load(address)
		return nil

	case instructions.ScrollRight:
		if err := mc.requireExtended(); err != nil {
			return err
		}
		mc.Display.ScrollRight()
		return nil

	case instructions.ScrollLeft:
		if err := mc.requireExtended(); err != nil {
			return err
		}
		mc.Display.ScrollLeft()
		return nil

	case instructions.Exit:
		if err := mc.requireExtended(); err != nil {
			return err
		}
		mc.Halted = true
		logger.Logf(mc.Log, "cpu", "exit instruction at %#03x", mc.LastResult.Address)
		return nil

	case instructions.LoresMode:
		if err := mc.requireExtended(); err != nil {
			return err
		}
		mc.Display.DisableHires()
		logger.Log(mc.Log, "cpu", "lores mode")
		return nil

	case instructions.HiresMode:
		if err := mc.requireExtended(); err != nil {
			return err
		}
		mc.Display.EnableHires()
		logger.Log(mc.Log, "cpu", "hires mode")
		return nil
	}

	switch ins & 0xfff0 {
	case 0x00c0:
		if err := mc.requireExtended(); err != nil {
			return err
		}
		mc.Display.ScrollDown(int(ins.N()))
		return nil

	case 0x00d0:
		if err := mc.requireXOChip(); err != nil {
			return err
		}
		mc.Display.ScrollUp(int(ins.N()))
		return nil
	}

	return curated.Errorf(UnknownInstruction, mc.plt.Mode)
}

// 8xyn group. the flag register is always written after the destination
// register
func (mc *CPU) executeArithmetic(ins instructions.Instruction) error {
	r := &mc.Registers
	vx := &r.V[ins.X()]
	y := r.V[ins.Y()].Value()

	switch ins.N() {
	case 0x0:
		vx.Load(y)

	case 0x1:
		vx.OR(y)
		if mc.plt.Quirks.BinaryOpResetVF {
			r.SetFlag(false)
		}

	case 0x2:
		vx.AND(y)
		if mc.plt.Quirks.BinaryOpResetVF {
			r.SetFlag(false)
		}

	case 0x3:
		vx.XOR(y)
		if mc.plt.Quirks.BinaryOpResetVF {
			r.SetFlag(false)
		}

	case 0x4:
		r.SetFlag(vx.Add(y))

	case 0x5:
		r.SetFlag(vx.Subtract(y))

	case 0x6:
		if mc.plt.Quirks.ShiftIgnoreVY {
			y = vx.Value()
		}
		r.SetFlag(vx.ShiftRight(y))

	case 0x7:
		r.SetFlag(vx.SubtractFrom(y))

	case 0xe:
		if mc.plt.Quirks.ShiftIgnoreVY {
			y = vx.Value()
		}
		r.SetFlag(vx.ShiftLeft(y))

	default:
		return curated.Errorf(UnknownInstruction, mc.plt.Mode)
	}

	return nil
}

// Fxnn group
func (mc *CPU) executeMisc(ins instructions.Instruction) error {
	r := &mc.Registers
	vx := &r.V[ins.X()]

	switch ins {
	case instructions.LongLoad:
		if err := mc.requireXOChip(); err != nil {
			return err
		}
		pc := r.PC.Address()
		w, err := mc.Mem.ReadWords(pc, 1)
		if err != nil {
			return err
		}
		r.I.Load(w[0])
		r.PC.Add(2)
		return nil

	case instructions.LoadAudioBuffer:
		if err := mc.requireXOChip(); err != nil {
			return err
		}
		b, err := mc.Mem.ReadBytes(r.I.Address(), audio.PatternLen)
		if err != nil {
			return err
		}
		mc.Audio.SetPattern(b)
		return nil
	}

	switch ins.KK() {
	case 0x01:
		if err := mc.requireXOChip(); err != nil {
			return err
		}
		return mc.Display.SetPlane(ins.X())

	case 0x07:
		vx.Load(mc.Timers.Delay.Get())

	case 0x0a:
		if k, ok := mc.Keypad.Pressed(); ok {
			vx.Load(uint8(k))
		} else {
			r.PC.Rewind(2)
		}

	case 0x15:
		mc.Timers.Delay.Set(vx.Value())

	case 0x18:
		mc.Timers.Sound.Set(vx.Value())

	case 0x1e:
		r.I.Add(uint16(vx.Value()))

	case 0x29:
		address, err := mc.Mem.FontAddress(vx.Value(), memory.FontStandard)
		if err != nil {
			return err
		}
		r.I.Load(address)

	case 0x30:
		if err := mc.requireExtended(); err != nil {
			return err
		}
		address, err := mc.Mem.FontAddress(vx.Value(), memory.FontExtended)
		if err != nil {
			return err
		}
		r.I.Load(address)

	case 0x33:
		v := vx.Value()
		i := r.I.Address()
		for n, d := range []uint8{v / 100, (v / 10) % 10, v % 10} {
			if err := mc.Mem.Write(i+uint16(n), d); err != nil {
				return err
			}
		}

	case 0x3a:
		if err := mc.requireXOChip(); err != nil {
			return err
		}
		mc.Audio.Pitch = uint16(vx.Value())

	case 0x55:
		i := r.I.Address()
		for n := uint8(0); n <= ins.X(); n++ {
			if err := mc.Mem.Write(i+uint16(n), r.V[n].Value()); err != nil {
				return err
			}
		}
		if mc.plt.Quirks.IRegisterIncrementedWithX {
			r.I.Add(uint16(ins.X()) + 1)
		}

	case 0x65:
		i := r.I.Address()
		for n := uint8(0); n <= ins.X(); n++ {
			v, err := mc.Mem.Read(i + uint16(n))
			if err != nil {
				return err
			}
			r.V[n].Load(v)
		}
		if mc.plt.Quirks.IRegisterIncrementedWithX {
			r.I.Add(uint16(ins.X()) + 1)
		}

	case 0x75:
		if err := mc.checkRPLCount(ins.X()); err != nil {
			return err
		}
		v := make([]uint8, ins.X()+1)
		for n := range v {
			v[n] = r.V[n].Value()
		}
		return mc.Mem.WriteFlags(v)

	case 0x85:
		if err := mc.checkRPLCount(ins.X()); err != nil {
			return err
		}
		v, err := mc.Mem.ReadFlags(int(ins.X()) + 1)
		if err != nil {
			return err
		}
		for n := range v {
			r.V[n].Load(v[n])
		}

	default:
		return curated.Errorf(UnknownInstruction, mc.plt.Mode)
	}

	return nil
}

// the RPL instructions are only available in the extended modes. SUPER-CHIP
// is limited to registers V0 to V7
func (mc *CPU) checkRPLCount(x uint8) error {
	if err := mc.requireExtended(); err != nil {
		return err
	}
	if mc.plt.Mode == platform.SuperChip && x > 7 {
		return curated.Errorf(InvalidRPLCount, int(x)+1, mc.plt.Mode)
	}
	return nil
}

// 5xy2. I is not changed
func (mc *CPU) saveRange(x uint8, y uint8) error {
	i := mc.Registers.I.Address()
	for n, reg := range registerRange(x, y) {
		if err := mc.Mem.Write(i+uint16(n), mc.Registers.V[reg].Value()); err != nil {
			return err
		}
	}
	return nil
}

// 5xy3. I is not changed
func (mc *CPU) loadRange(x uint8, y uint8) error {
	i := mc.Registers.I.Address()
	for n, reg := range registerRange(x, y) {
		v, err := mc.Mem.Read(i + uint16(n))
		if err != nil {
			return err
		}
		mc.Registers.V[reg].Load(v)
	}
	return nil
}

// list of register indexes from x to y inclusive. the list is in descending
// order if x is greater than y
func registerRange(x uint8, y uint8) []uint8 {
	var l []uint8
	if x <= y {
		for n := x; n <= y; n++ {
			l = append(l, n)
		}
	} else {
		for n := int(x); n >= int(y); n-- {
			l = append(l, uint8(n))
		}
	}
	return l
}

// Dxyn
func (mc *CPU) draw(ins instructions.Instruction) error {
	r := &mc.Registers
	x := int(r.V[ins.X()].Value())
	y := int(r.V[ins.Y()].Value())
	n := int(ins.N())

	large := n == 0 && mc.Display.Hires
	if n == 0 && !large {
		r.SetFlag(false)
		return nil
	}

	address := r.I.Address()

	var collision bool
	for _, p := range mc.Display.SelectedPlanes() {
		if large {
			sprite, err := mc.Mem.ReadWords(address, 16)
			if err != nil {
				return err
			}
			if mc.Display.Draw16x16Sprite(x, y, sprite, p) {
				collision = true
			}
			address += 32
		} else {
			sprite, err := mc.Mem.ReadBytes(address, n)
			if err != nil {
				return err
			}
			if mc.Display.DrawSprite(x, y, sprite, p) {
				collision = true
			}
			address += uint16(n)
		}
	}

	r.SetFlag(collision)

	return nil
}
