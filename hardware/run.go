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

package hardware

import (
	"github.com/jetsetilly/gopherchip/curated"
	"github.com/jetsetilly/gopherchip/govern"
)

// Run sets the emulation running as quickly as possible. The continueCheck
// function is called after every frame and can be used to pause or end the
// emulation. If it is nil then the emulation runs until the program exits or
// there is an error.
//
// When the state returned by continueCheck is govern.Paused no frames are
// run but continueCheck will still be called. It is up to the host to avoid
// busy waiting in that case.
func (itp *Interpreter) Run(callback FrameCallback, continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	var err error

	state := govern.Running

	for state != govern.Ending {
		switch state {
		case govern.Running:
			state, err = itp.Frame(callback)
			if err != nil {
				return err
			}
			if state == govern.Ending {
				return nil
			}
		case govern.Paused:
		default:
			return curated.Errorf("hardware: unsupported emulation state (%v) in Run() function", state)
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForFrameCount runs the emulation for the specified number of frames or
// until the program exits. The continueCheck function is called after every
// frame with the number of frames completed so far. It can be nil.
func (itp *Interpreter) RunForFrameCount(numFrames int, callback FrameCallback, continueCheck func(frame int) (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func(frame int) (govern.State, error) { return govern.Running, nil }
	}

	targetFrame := itp.frameNum + numFrames

	state := govern.Running
	for itp.frameNum < targetFrame && state != govern.Ending {
		var err error

		state, err = itp.Frame(callback)
		if err != nil {
			return err
		}
		if state == govern.Ending {
			return nil
		}

		state, err = continueCheck(itp.frameNum)
		if err != nil {
			return err
		}
	}

	return nil
}
