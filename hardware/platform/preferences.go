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
	"time"

	"github.com/jetsetilly/gopherchip/curated"
	"github.com/jetsetilly/gopherchip/prefs"
)

// Sentinel error patterns for preference values rejected by Set().
const (
	InvalidInstructionsPerFrame = "platform: instructions per frame must be at least 1 (%d)"
	InvalidSleep                = "platform: sleep cannot be negative (%d)"
)

// Preferences defines and collates the platform preference values. The
// values are persisted to disk under the "platform" key prefix.
type Preferences struct {
	dsk *prefs.Disk

	IRegisterIncrementedWithX prefs.Bool
	JumpWithX                 prefs.Bool
	ShiftIgnoreVY             prefs.Bool
	BinaryOpResetVF           prefs.Bool
	WrapInsteadOfClipping     prefs.Bool

	InstructionsPerFrame prefs.Int

	// microseconds to wait after every instruction
	Sleep prefs.Int
}

func (p *Preferences) String() string {
	return fmt.Sprintf("quirks=[%s] ipf=%d sleep=%dus", p.Quirks(), p.InstructionsPerFrame.Get().(int), p.Sleep.Get().(int))
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. The path is the file the preferences are loaded from and saved to. Any
// values on the prefs command line stack override the values from disk.
func NewPreferences(path string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	p.InstructionsPerFrame.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 1 {
			return curated.Errorf(InvalidInstructionsPerFrame, v)
		}
		return nil
	})
	p.Sleep.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 {
			return curated.Errorf(InvalidSleep, v)
		}
		return nil
	})

	var err error
	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, curated.Errorf("platform: %v", err)
	}

	err = p.dsk.Add("platform.quirks.loadincrement", &p.IRegisterIncrementedWithX)
	if err != nil {
		return nil, curated.Errorf("platform: %v", err)
	}
	err = p.dsk.Add("platform.quirks.jumpx", &p.JumpWithX)
	if err != nil {
		return nil, curated.Errorf("platform: %v", err)
	}
	err = p.dsk.Add("platform.quirks.shiftvx", &p.ShiftIgnoreVY)
	if err != nil {
		return nil, curated.Errorf("platform: %v", err)
	}
	err = p.dsk.Add("platform.quirks.resetvf", &p.BinaryOpResetVF)
	if err != nil {
		return nil, curated.Errorf("platform: %v", err)
	}
	err = p.dsk.Add("platform.quirks.wrap", &p.WrapInsteadOfClipping)
	if err != nil {
		return nil, curated.Errorf("platform: %v", err)
	}
	err = p.dsk.Add("platform.ipf", &p.InstructionsPerFrame)
	if err != nil {
		return nil, curated.Errorf("platform: %v", err)
	}
	err = p.dsk.Add("platform.sleep", &p.Sleep)
	if err != nil {
		return nil, curated.Errorf("platform: %v", err)
	}

	if err := p.dsk.Load(false); err != nil {
		return nil, curated.Errorf("platform: %v", err)
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	_ = p.IRegisterIncrementedWithX.Set(false)
	_ = p.JumpWithX.Set(false)
	_ = p.ShiftIgnoreVY.Set(false)
	_ = p.BinaryOpResetVF.Set(false)
	_ = p.WrapInsteadOfClipping.Set(false)
	_ = p.InstructionsPerFrame.Set(DefaultInstructionsPerFrame)
	_ = p.Sleep.Set(0)
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// Quirks returns the quirk preferences as a Quirks value.
func (p *Preferences) Quirks() Quirks {
	return Quirks{
		IRegisterIncrementedWithX: p.IRegisterIncrementedWithX.Get().(bool),
		JumpWithX:                 p.JumpWithX.Get().(bool),
		ShiftIgnoreVY:             p.ShiftIgnoreVY.Get().(bool),
		BinaryOpResetVF:           p.BinaryOpResetVF.Get().(bool),
		WrapInsteadOfClipping:     p.WrapInsteadOfClipping.Get().(bool),
	}
}

// Platform returns a Platform value for the mode using the current preference
// values.
func (p *Preferences) Platform(mode Mode) Platform {
	return Platform{
		Mode:                 mode,
		Quirks:               p.Quirks(),
		InstructionsPerFrame: p.InstructionsPerFrame.Get().(int),
		Sleep:                time.Duration(p.Sleep.Get().(int)) * time.Microsecond,
	}
}
