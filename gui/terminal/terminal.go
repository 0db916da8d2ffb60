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

// Package terminal implements the gui.GUI interface for ANSI terminals. The
// terminal is put into raw mode and the display is drawn with half-block
// characters so that each character cell shows two rows of pixels.
//
// Terminals do not report key releases. A key is considered to be held for
// a fixed number of frames after the last time it was read, which allows the
// terminal's key repeat to keep a key held down.
package terminal

import (
	"io"
	"os"
	"sort"
	"sync"

	"github.com/jetsetilly/gopherchip/curated"
	"github.com/jetsetilly/gopherchip/gui"
	"github.com/jetsetilly/gopherchip/gui/palette"
	"github.com/jetsetilly/gopherchip/gui/terminal/ansi"
	"github.com/jetsetilly/gopherchip/hardware/audio"
	"github.com/jetsetilly/gopherchip/hardware/display"

	"github.com/pkg/term"
)

// DefaultHoldFrames is the number of frames a key is held for if no other
// value is given to NewGUI().
const DefaultHoldFrames = 6

// the device opened by NewGUI()
const ttyDevice = "/dev/tty"

// list of input codes with special meaning
const (
	keyInterrupt = 0x03
	keyEscape    = 0x1b
	keySpace     = 0x20
)

// escape sequences that are translated to key names. sequences not in the
// table are ignored
var escSequences = map[string]string{
	"\x1b[15~": "F5",
	"\x1bOP":   "F1",
}

// GUI is the terminal implementation of the gui.GUI interface.
type GUI struct {
	tty *term.Term
	out io.Writer
	pal palette.Palette

	// chunks of input read by the input goroutine. closed when the input
	// stream ends
	input chan []byte
	ended bool

	// closed by Destroy(). the input goroutine stops sending once it is
	// closed and closes exited when it returns
	done     chan struct{}
	exited   chan struct{}
	doneOnce sync.Once

	// held keys and the number of frames remaining before they are released
	hold int
	held map[string]int

	// the most recent frame drawn. used to avoid redrawing an unchanged
	// display
	prev     []display.Colour
	prevRes  int
	rendered bool
}

// NewGUI is the preferred method of initialisation for the GUI type. The
// terminal is put into raw mode until Destroy() is called.
func NewGUI(pal palette.Palette, holdFrames int) (*GUI, error) {
	tty, err := term.Open(ttyDevice, term.RawMode)
	if err != nil {
		return nil, curated.Errorf("terminal: %v", err)
	}

	g := newGUI(tty, os.Stdout, pal, holdFrames)
	g.tty = tty

	g.write(ansi.CursorHide + ansi.ClearScreen)

	return g, nil
}

func newGUI(in io.Reader, out io.Writer, pal palette.Palette, holdFrames int) *GUI {
	if holdFrames < 1 {
		holdFrames = DefaultHoldFrames
	}

	g := &GUI{
		out:   out,
		pal:   pal,
		input:  make(chan []byte, 64),
		done:   make(chan struct{}),
		exited: make(chan struct{}),
		hold:   holdFrames,
		held:   make(map[string]int),
	}

	go func() {
		defer close(g.exited)
		defer close(g.input)
		for {
			b := make([]byte, 16)
			n, err := in.Read(b)
			if n > 0 {
				select {
				case g.input <- b[:n]:
				case <-g.done:
					return
				}
			}
			if err != nil {
				return
			}
			select {
			case <-g.done:
				return
			default:
			}
		}
	}()

	return g
}

func (g *GUI) write(s string) {
	_, _ = io.WriteString(g.out, s)
}

// SetAudio implements the gui.GUI interface. The terminal has no audio
// output.
func (g *GUI) SetAudio(gate bool, pattern [audio.PatternLen]uint8, pitch uint16) error {
	return nil
}

// Destroy implements the gui.GUI interface.
func (g *GUI) Destroy() {
	g.doneOnce.Do(func() {
		close(g.done)
	})
	g.write(ansi.NormalPen + ansi.CursorShow + "\r\n")
	if g.tty != nil {
		_ = g.tty.Restore()
		_ = g.tty.Close()
	}
}

// Service implements the gui.GUI interface.
func (g *GUI) Service() ([]gui.Event, error) {
	events := g.release()

	for !g.ended {
		select {
		case b, ok := <-g.input:
			if !ok {
				g.ended = true
				return append(events, gui.Event{ID: gui.EventQuit}), nil
			}
			events = append(events, g.translate(b)...)
		default:
			return events, nil
		}
	}

	return events, nil
}

// release keys that have been held for long enough. keys are released in
// name order.
func (g *GUI) release() []gui.Event {
	var events []gui.Event

	names := make([]string, 0, len(g.held))
	for k := range g.held {
		names = append(names, k)
	}
	sort.Strings(names)

	for _, k := range names {
		g.held[k]--
		if g.held[k] <= 0 {
			delete(g.held, k)
			events = append(events, gui.Event{
				ID:   gui.EventKeyboard,
				Data: gui.EventDataKeyboard{Key: k, Down: false}})
		}
	}

	return events
}

// translate a chunk of input into events.
func (g *GUI) translate(b []byte) []gui.Event {
	var events []gui.Event

	if len(b) > 1 && b[0] == keyEscape {
		if k, ok := escSequences[string(b)]; ok {
			events = append(events, g.press(k)...)
		}
		return events
	}

	for _, c := range b {
		switch c {
		case keyInterrupt:
			events = append(events, gui.Event{ID: gui.EventQuit})
		case keyEscape:
			events = append(events, g.press("Escape")...)
		case keySpace:
			events = append(events, g.press("Space")...)
		default:
			if c > keySpace && c < 0x7f {
				events = append(events, g.press(string(c))...)
			}
		}
	}

	return events
}

// press returns a key down event unless the key is already held. in both
// cases the hold period is restarted.
func (g *GUI) press(k string) []gui.Event {
	_, held := g.held[k]
	g.held[k] = g.hold
	if held {
		return nil
	}
	return []gui.Event{{
		ID:   gui.EventKeyboard,
		Data: gui.EventDataKeyboard{Key: k, Down: true}}}
}
