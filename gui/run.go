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

package gui

import (
	"os"

	"github.com/jetsetilly/gopherchip/curated"
	"github.com/jetsetilly/gopherchip/govern"
	"github.com/jetsetilly/gopherchip/gui/keymap"
	"github.com/jetsetilly/gopherchip/hardware"
	"github.com/jetsetilly/gopherchip/hardware/audio"
	"github.com/jetsetilly/gopherchip/hardware/display"
	"github.com/jetsetilly/gopherchip/hardware/input"
	"github.com/jetsetilly/gopherchip/logger"
)

// Limiter is used by Run() to wait between frames. Satisfied by the
// limiter.FPSLimiter type.
type Limiter interface {
	Wait()
}

// Options for the Run() function. The zero value is valid.
type Options struct {
	// keymap to use. if nil the default keymap is used
	Keymap keymap.Keymap

	// wait between frames. if nil the emulation runs as fast as possible
	Limiter Limiter

	// called after the GUI has been updated for every frame
	OnFrame hardware.FrameCallback

	// the emulation ends when a value is received
	Interrupt <-chan os.Signal
}

// Run the interpreter with the GUI. Returns when the program exits, the GUI
// sends a quit event or the quit control key is pressed.
func Run(itp *hardware.Interpreter, g GUI, opts Options) error {
	km := opts.Keymap
	if km == nil {
		km = keymap.Default
	}

	state := govern.Running

	handleEvents := func() error {
		events, err := g.Service()
		if err != nil {
			return curated.Errorf("gui: %v", err)
		}

		for _, ev := range events {
			switch ev.ID {
			case EventQuit:
				state = state.Apply(govern.RequestQuit)

			case EventKeyboard:
				kb, ok := ev.Data.(EventDataKeyboard)
				if !ok {
					continue
				}

				if r, ok := keymap.Control(kb.Key, state); ok {
					if !kb.Down {
						continue
					}
					if r == govern.RequestReset {
						logger.Log(logger.Allow, "gui", "reset")
						if err := itp.Reset(); err != nil {
							return err
						}
						continue
					}
					state = state.Apply(r)
					logger.Logf(logger.Allow, "gui", "%s", state)
					continue
				}

				if k, ok := km.Lookup(kb.Key); ok {
					if kb.Down {
						itp.PressKey(k)
					} else {
						itp.ReleaseKey(k)
					}
				}
			}
		}

		return nil
	}

	callback := func(kp *input.Keypad, dsp *display.Display, soundTimer uint8, pattern [audio.PatternLen]uint8, pitch uint16) error {
		if err := g.Render(dsp); err != nil {
			return curated.Errorf("gui: %v", err)
		}
		if err := g.SetAudio(soundTimer > 0, pattern, pitch); err != nil {
			return curated.Errorf("gui: %v", err)
		}
		if opts.OnFrame != nil {
			return opts.OnFrame(kp, dsp, soundTimer, pattern, pitch)
		}
		return nil
	}

	continueCheck := func() (govern.State, error) {
		select {
		case <-opts.Interrupt:
			logger.Log(logger.Allow, "gui", "interrupted")
			return govern.Ending, nil
		default:
		}

		if err := handleEvents(); err != nil {
			return govern.Ending, err
		}

		// the display is still rendered when paused so that the host window
		// can redraw itself
		if state == govern.Paused {
			if err := g.Render(itp.Display); err != nil {
				return govern.Ending, curated.Errorf("gui: %v", err)
			}
			if err := g.SetAudio(false, itp.Audio.Pattern, itp.Audio.Pitch); err != nil {
				return govern.Ending, curated.Errorf("gui: %v", err)
			}
		}

		if opts.Limiter != nil {
			opts.Limiter.Wait()
		}

		return state, nil
	}

	return itp.Run(callback, continueCheck)
}
