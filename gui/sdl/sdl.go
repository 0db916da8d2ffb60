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

// Package sdl implements the gui.GUI interface using SDL. The display is
// drawn through a streaming texture and the audio is queued to an SDL audio
// device.
//
// SDL requires that all calls are made from the main thread. NewGUI() locks
// the calling goroutine to its OS thread, so it should be called from the
// main goroutine and the GUI should only be used from that goroutine.
package sdl

import (
	"runtime"

	"github.com/jetsetilly/gopherchip/assert"
	"github.com/jetsetilly/gopherchip/curated"
	"github.com/jetsetilly/gopherchip/gui/palette"
	"github.com/jetsetilly/gopherchip/hardware/audio"
	"github.com/jetsetilly/gopherchip/hardware/display"
	"github.com/jetsetilly/gopherchip/logger"

	"github.com/veandco/go-sdl2/sdl"
)

// GUI is the SDL implementation of the gui.GUI interface.
type GUI struct {
	scr *screen
	snd *sound

	// the goroutine that created the GUI
	owner uint64
}

// NewGUI is the preferred method of initialisation for the GUI type. The
// window is scale times larger than the hires display.
func NewGUI(title string, scale int, pal palette.Palette) (*GUI, error) {
	runtime.LockOSThread()

	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO | sdl.INIT_EVENTS)
	if err != nil {
		return nil, curated.Errorf("sdl: %v", err)
	}

	v := sdl.Version{}
	sdl.GetVersion(&v)
	logger.Logf(logger.Allow, "sdl", "version %d.%d.%d", v.Major, v.Minor, v.Patch)

	g := &GUI{
		owner: assert.GoroutineID(),
	}

	g.scr, err = newScreen(title, scale, pal)
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf("sdl: %v", err)
	}

	// the emulation can continue without sound
	g.snd, err = newSound()
	if err != nil {
		logger.Logf(logger.Allow, "sdl", "audio disabled: %v", err)
		g.snd = nil
	}

	return g, nil
}

// Render implements the gui.GUI interface.
func (g *GUI) Render(dsp *display.Display) error {
	assert.SameGoroutine(g.owner, "sdl")
	return g.scr.render(dsp)
}

// SetAudio implements the gui.GUI interface.
func (g *GUI) SetAudio(gate bool, pattern [audio.PatternLen]uint8, pitch uint16) error {
	if g.snd == nil {
		return nil
	}
	return g.snd.queue(gate, pattern, pitch)
}

// Destroy implements the gui.GUI interface.
func (g *GUI) Destroy() {
	if g.snd != nil {
		g.snd.destroy()
	}
	g.scr.destroy()
	sdl.Quit()
}
