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

package platform

import (
	"fmt"
	"strings"
	"time"

	"github.com/jetsetilly/gopherchip/curated"
)

// Mode is the CHIP-8 variant being emulated. The mode decides which
// instructions are available and which font tables are present in memory.
type Mode int

// List of valid Mode values.
const (
	Chip8 Mode = iota
	SuperChip
	XOChip
)

func (m Mode) String() string {
	switch m {
	case Chip8:
		return "CHIP-8"
	case SuperChip:
		return "SUPER-CHIP"
	case XOChip:
		return "XO-CHIP"
	}
	return "unknown"
}

// Extended returns true if the mode is one of the extended modes.
// SUPER-CHIP and XO-CHIP are the extended modes.
func (m Mode) Extended() bool {
	return m == SuperChip || m == XOChip
}

// UnknownMode is returned by ParseMode() when the name is not recognised.
const UnknownMode = "platform: unknown mode (%s)"

// ModeNames lists the names accepted by ParseMode().
var ModeNames = []string{"chip8", "schip", "xochip"}

// ParseMode returns the Mode for the name. The name is case insensitive and
// may be one of the entries in ModeNames or the longer form "superchip".
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "chip8", "chip-8":
		return Chip8, nil
	case "schip", "superchip", "super-chip":
		return SuperChip, nil
	case "xochip", "xo-chip":
		return XOChip, nil
	}
	return Chip8, curated.Errorf(UnknownMode, name)
}

// Quirks is the set of independently selectable behaviours. The zero value
// selects the original COSMAC VIP behaviour for every quirk.
type Quirks struct {
	// Fx55 and Fx65 leave I pointing to I+X+1
	IRegisterIncrementedWithX bool

	// Bnnn jumps to xnn+Vx rather than nnn+V0
	JumpWithX bool

	// 8xy6 and 8xyE shift Vx in place rather than shifting Vy into Vx
	ShiftIgnoreVY bool

	// 8xy1, 8xy2 and 8xy3 set VF to zero
	BinaryOpResetVF bool

	// sprites that extend beyond the edge of the display are drawn on the
	// other side rather than being clipped
	WrapInsteadOfClipping bool
}

func (q Quirks) String() string {
	s := strings.Builder{}
	add := func(on bool, name string) {
		if on {
			if s.Len() > 0 {
				s.WriteString(" ")
			}
			s.WriteString(name)
		}
	}
	add(q.IRegisterIncrementedWithX, "loadincrement")
	add(q.JumpWithX, "jumpx")
	add(q.ShiftIgnoreVY, "shiftvx")
	add(q.BinaryOpResetVF, "resetvf")
	add(q.WrapInsteadOfClipping, "wrap")
	if s.Len() == 0 {
		return "none"
	}
	return s.String()
}

// DefaultInstructionsPerFrame is the number of instructions executed per
// frame if no other value is specified.
const DefaultInstructionsPerFrame = 1000

// Platform collates the Mode and Quirks along with the speed of emulation.
type Platform struct {
	Mode   Mode
	Quirks Quirks

	// number of instructions executed by the interpreter every frame
	InstructionsPerFrame int

	// time to wait after every instruction
	Sleep time.Duration
}

// NewPlatform is the preferred method of initialisation for the Platform type.
func NewPlatform(mode Mode) Platform {
	return Platform{
		Mode:                 mode,
		InstructionsPerFrame: DefaultInstructionsPerFrame,
	}
}

func (p Platform) String() string {
	return fmt.Sprintf("%s quirks=[%s] ipf=%d", p.Mode, p.Quirks, p.InstructionsPerFrame)
}
