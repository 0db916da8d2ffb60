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

	"github.com/jetsetilly/gopherchip/hardware"
	"github.com/jetsetilly/gopherchip/hardware/audio"
	"github.com/jetsetilly/gopherchip/hardware/display"
	"github.com/jetsetilly/gopherchip/hardware/input"
	"github.com/jetsetilly/gopherchip/hardware/platform"
	"github.com/jetsetilly/gopherchip/logger"
	"github.com/jetsetilly/gopherchip/modalflag"
	"github.com/jetsetilly/gopherchip/paths"
	"github.com/jetsetilly/gopherchip/prefs"
	"github.com/jetsetilly/gopherchip/programloader"
	"github.com/jetsetilly/gopherchip/statedump"
	"github.com/jetsetilly/gopherchip/statsview"
	"github.com/jetsetilly/gopherchip/version"
	"github.com/jetsetilly/gopherchip/wavwriter"
)

// name of the preferences file in the resource path
const prefsFile = "preferences"

// value of the -wav and -dump flags that asks for a generated filename
const autoFilename = "auto"

// outputFilename returns the filename for an optional output file. an empty
// string means the output is not wanted.
func outputFilename(flg string, prepend string, programName string, ext string) string {
	if flg == autoFilename {
		return paths.UniqueFilename(prepend, programName) + ext
	}
	return flg
}

// flags that are common to every mode
type sharedFlags struct {
	platform  *string
	ipf       *int
	sleep     *int
	prefs     *string
	savePrefs *bool
	seed      *int64
	log       *bool
	wav       *string
	dump      *string
	statsview *bool

	// quirk flags
	loadIncrement *bool
	jumpX         *bool
	shiftVX       *bool
	resetVF       *bool
	wrap          *bool
}

func addSharedFlags(md *modalflag.Modes) *sharedFlags {
	return &sharedFlags{
		platform:      md.AddString("platform", programloader.AutoPlatform, "platform to emulate: CHIP8, SCHIP, XOCHIP"),
		ipf:           md.AddInt("ipf", platform.DefaultInstructionsPerFrame, "instructions per frame"),
		sleep:         md.AddInt("sleep", 0, "microseconds to wait after every instruction"),
		prefs:         md.AddString("prefs", "", "preference overrides (key::value; key::value)"),
		savePrefs:     md.AddBool("savePrefs", false, "save platform preferences"),
		seed:          md.AddInt64("seed", 0, "seed for random number generator (0 to seed from clock)"),
		log:           md.AddBool("log", false, "echo debugging log to stdout"),
		wav:           md.AddString("wav", "", "record audio to wav file (auto for generated name)"),
		dump:          md.AddString("dump", "", "write graphviz dump of the final interpreter state to file (auto for generated name)"),
		statsview:     md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.DefaultAddress)),
		loadIncrement: md.AddBool("loadincrement", false, "Fx55 and Fx65 increment I"),
		jumpX:         md.AddBool("jumpx", false, "Bxnn jumps to xnn+Vx"),
		shiftVX:       md.AddBool("shiftvx", false, "8xy6 and 8xyE shift Vx in place"),
		resetVF:       md.AddBool("resetvf", false, "8xy1, 8xy2 and 8xy3 reset VF"),
		wrap:          md.AddBool("wrap", false, "sprites wrap around the edge of the display"),
	}
}

// session is the interpreter along with the optional components selected by
// the shared flags
type session struct {
	ld  programloader.Loader
	itp *hardware.Interpreter

	// will be nil if no component requires a frame callback
	onFrame hardware.FrameCallback

	wav      *wavwriter.WavWriter
	dump     string
	stopStat func()
}

// newSession should be called after the mode's flags have been parsed.
func (sh *sharedFlags) newSession(md *modalflag.Modes) (*session, error) {
	if *sh.log {
		logger.SetEcho(md.Output)
	} else {
		logger.SetEcho(nil)
	}

	logger.Log(logger.Allow, "version", version.String())

	switch len(md.RemainingArgs()) {
	case 0:
		return nil, fmt.Errorf("program file required for %s mode", md)
	case 1:
	default:
		return nil, fmt.Errorf("too many arguments for %s mode", md)
	}

	sess := &session{
		ld:   programloader.NewLoader(md.GetArg(0), *sh.platform),
		dump: outputFilename(*sh.dump, "state", md.GetArg(0), ".dot"),
	}

	err := sess.ld.Load()
	if err != nil {
		return nil, err
	}

	mode, err := sess.ld.Mode()
	if err != nil {
		return nil, err
	}

	plt, err := sh.platformPrefs(md, mode)
	if err != nil {
		return nil, err
	}

	sess.itp, err = hardware.NewInterpreter(sess.ld.Data, plt)
	if err != nil {
		return nil, err
	}

	if *sh.seed != 0 {
		sess.itp.Random.Seed(*sh.seed)
	}

	if wav := outputFilename(*sh.wav, "audio", md.GetArg(0), ".wav"); wav != "" {
		sess.wav, err = wavwriter.NewWavWriter(wav)
		if err != nil {
			return nil, err
		}
		sess.addCallback(sess.wav.OnFrame)
	}

	if *sh.statsview {
		sess.stopStat, err = statsview.Launch(md.Output, "")
		if err != nil {
			fmt.Fprintf(md.Output, "* %v\n", err)
		}
	}

	return sess, nil
}

// addCallback adds a function to be called every frame. functions are called
// in the order they were added and the first error stops the sequence.
func (sess *session) addCallback(cb hardware.FrameCallback) {
	prev := sess.onFrame
	if prev == nil {
		sess.onFrame = cb
		return
	}
	sess.onFrame = func(kp *input.Keypad, dsp *display.Display, soundTimer uint8, pattern [audio.PatternLen]uint8, pitch uint16) error {
		if err := prev(kp, dsp, soundTimer, pattern, pitch); err != nil {
			return err
		}
		return cb(kp, dsp, soundTimer, pattern, pitch)
	}
}

// platformPrefs loads the platform preferences from disk and applies the
// command line overrides. flags that have not been set explicitly do not
// change the preference values.
func (sh *sharedFlags) platformPrefs(md *modalflag.Modes, mode platform.Mode) (platform.Platform, error) {
	if *sh.prefs != "" {
		prefs.PushCommandLineStack(*sh.prefs)
		defer prefs.PopCommandLineStack()
	}

	pth, err := paths.ResourcePath("", prefsFile)
	if err != nil {
		return platform.Platform{}, err
	}

	p, err := platform.NewPreferences(pth)
	if err != nil {
		return platform.Platform{}, err
	}

	md.Visit(func(flg string) {
		if err != nil {
			return
		}
		switch flg {
		case "ipf":
			err = p.InstructionsPerFrame.Set(*sh.ipf)
		case "sleep":
			err = p.Sleep.Set(*sh.sleep)
		case "loadincrement":
			err = p.IRegisterIncrementedWithX.Set(*sh.loadIncrement)
		case "jumpx":
			err = p.JumpWithX.Set(*sh.jumpX)
		case "shiftvx":
			err = p.ShiftIgnoreVY.Set(*sh.shiftVX)
		case "resetvf":
			err = p.BinaryOpResetVF.Set(*sh.resetVF)
		case "wrap":
			err = p.WrapInsteadOfClipping.Set(*sh.wrap)
		}
	})
	if err != nil {
		return platform.Platform{}, err
	}

	if *sh.savePrefs {
		err = p.Save()
		if err != nil {
			return platform.Platform{}, err
		}
	}

	logger.Logf(logger.Allow, "prefs", "%s", p)

	return p.Platform(mode), nil
}

// end the session. the error from the emulation is returned in preference to
// any error from the optional components.
func (sess *session) end(runErr error) error {
	var err error

	if sess.stopStat != nil {
		sess.stopStat()
	}

	if sess.wav != nil {
		err = sess.wav.Close()
	}

	if sess.dump != "" {
		if dumpErr := statedump.WriteFile(sess.dump, sess.itp); dumpErr != nil && err == nil {
			err = dumpErr
		}
	}

	if runErr != nil {
		return runErr
	}

	return err
}
