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

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/jetsetilly/gopherchip/digest"
	"github.com/jetsetilly/gopherchip/govern"
	"github.com/jetsetilly/gopherchip/gui"
	"github.com/jetsetilly/gopherchip/gui/palette"
	"github.com/jetsetilly/gopherchip/gui/sdl"
	"github.com/jetsetilly/gopherchip/gui/terminal"
	"github.com/jetsetilly/gopherchip/logger"
	"github.com/jetsetilly/gopherchip/modalflag"
	"github.com/jetsetilly/gopherchip/performance"
	"github.com/jetsetilly/gopherchip/performance/limiter"
	"github.com/jetsetilly/gopherchip/version"
)

// window scaling for the RUN mode
const (
	defaultScale = 7
	maxScale     = 13
)

// number of log entries to show when a mode ends with an error
const logTailOnError = 10

// exit values
const (
	exitSuccess    = 0
	exitParseError = 10
	exitModeError  = 20
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch the mode selected by the arguments and return the value to be used
// with os.Exit()
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "TERMINAL", "HEADLESS", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitSuccess

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParseError
	}

	// ctrl-c ends the emulation cleanly
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	switch md.Mode() {
	case "RUN":
		err = run(md, intChan)

	case "TERMINAL":
		err = term(md, intChan)

	case "HEADLESS":
		err = headless(md, intChan)

	case "PERFORMANCE":
		err = perform(md)

	case "VERSION":
		fmt.Fprintln(output, version.String())
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		logger.Tail(output, logTailOnError)
		return exitModeError
	}

	return exitSuccess
}

func run(md *modalflag.Modes, intChan chan os.Signal) error {
	md.NewMode()

	sh := addSharedFlags(md)
	scale := md.AddInt("scale", defaultScale, fmt.Sprintf("window scaling (1 to %d)", maxScale))
	pal := addPaletteFlags(md)
	fpsCap := md.AddBool("fpscap", true, fmt.Sprintf("cap emulation to %d frames per second", performance.FramesPerSecond))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *scale < 1 || *scale > maxScale {
		return fmt.Errorf("scale must be between 1 and %d", maxScale)
	}

	colours, err := pal.palette()
	if err != nil {
		return err
	}

	sess, err := sh.newSession(md)
	if err != nil {
		return err
	}

	g, err := sdl.NewGUI(fmt.Sprintf("%s - %s", version.ApplicationName, sess.ld.ShortName()), *scale, colours)
	if err != nil {
		return err
	}
	defer g.Destroy()

	opts := gui.Options{
		OnFrame:   sess.onFrame,
		Interrupt: intChan,
	}

	if *fpsCap {
		lim := limiter.NewFPSLimiter(performance.FramesPerSecond)
		defer lim.Close()
		opts.Limiter = lim
	}

	return sess.end(gui.Run(sess.itp, g, opts))
}

func term(md *modalflag.Modes, intChan chan os.Signal) error {
	md.NewMode()

	sh := addSharedFlags(md)
	pal := addPaletteFlags(md)
	hold := md.AddInt("hold", terminal.DefaultHoldFrames, "number of frames a key is held after it is read")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	colours, err := pal.palette()
	if err != nil {
		return err
	}

	sess, err := sh.newSession(md)
	if err != nil {
		return err
	}

	// the log would interfere with the display
	logger.SetEcho(nil)

	g, err := terminal.NewGUI(colours, *hold)
	if err != nil {
		return err
	}
	defer g.Destroy()

	lim := limiter.NewFPSLimiter(performance.FramesPerSecond)
	defer lim.Close()

	return sess.end(gui.Run(sess.itp, g, gui.Options{
		Limiter:   lim,
		OnFrame:   sess.onFrame,
		Interrupt: intChan,
	}))
}

func headless(md *modalflag.Modes, intChan chan os.Signal) error {
	md.NewMode()

	sh := addSharedFlags(md)
	frames := md.AddInt("frames", 60, "number of frames to run")
	dig := md.AddBool("digest", false, "print digest of video and audio output")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *frames < 1 {
		return fmt.Errorf("frames must be at least 1")
	}

	sess, err := sh.newSession(md)
	if err != nil {
		return err
	}

	var vid *digest.Video
	var aud *digest.Audio
	if *dig {
		vid = digest.NewVideo()
		aud = digest.NewAudio()
		sess.addCallback(vid.OnFrame)
		sess.addCallback(aud.OnFrame)
	}

	err = sess.itp.RunForFrameCount(*frames, sess.onFrame, func(frame int) (govern.State, error) {
		select {
		case <-intChan:
			return govern.Ending, nil
		default:
		}
		return govern.Running, nil
	})

	err = sess.end(err)
	if err != nil {
		return err
	}

	fmt.Fprintf(md.Output, "%d frames: %s\n", sess.itp.FrameNum(), sess.itp)
	if *dig {
		fmt.Fprintf(md.Output, "video: %s\n", vid.Hash())
		fmt.Fprintf(md.Output, "audio: %s\n", aud.Hash())
	}

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	sh := addSharedFlags(md)
	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "NONE", "run performance check with profiling: CPU, MEM, TRACE, ALL (comma separated)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	sess, err := sh.newSession(md)
	if err != nil {
		return err
	}

	return sess.end(performance.Check(md.Output, prf, sess.itp, *duration))
}

type paletteFlags struct {
	off    *string
	first  *string
	second *string
	both   *string
}

func addPaletteFlags(md *modalflag.Modes) paletteFlags {
	return paletteFlags{
		off:    md.AddString("off", palette.Default[0].String(), "colour of pixels that are off in both planes"),
		first:  md.AddString("first", palette.Default[1].String(), "colour of pixels that are on in the first plane only"),
		second: md.AddString("second", palette.Default[2].String(), "colour of pixels that are on in the second plane only"),
		both:   md.AddString("both", palette.Default[3].String(), "colour of pixels that are on in both planes"),
	}
}

func (pf paletteFlags) palette() (palette.Palette, error) {
	return palette.NewPalette(*pf.off, *pf.first, *pf.second, *pf.both)
}
