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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopherchip/curated"
	"github.com/jetsetilly/gopherchip/govern"
	"github.com/jetsetilly/gopherchip/hardware"
	"github.com/jetsetilly/gopherchip/logger"
)

var timedOut = errors.New("performance timed out")

// leadtime before measurement begins. allows the frame rate to settle
const leadtime = 2 * time.Second

// Check the performance of the interpreter by running it, uncapped, for the
// duration. The duration string should be parseable by time.ParseDuration().
// The result is written to output.
func Check(output io.Writer, profile Profile, itp *hardware.Interpreter, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	startFrame := itp.FrameNum()

	// mode changes can be very frequent in some programs
	log := itp.CPU.Log
	itp.CPU.Log = logger.Deny
	defer func() {
		itp.CPU.Log = log
	}()

	runner := func() error {
		// signals false when the leadtime has elapsed and true when the
		// measurement period has elapsed
		timerChan := make(chan bool, 2)
		time.AfterFunc(leadtime, func() {
			timerChan <- false
			time.AfterFunc(dur, func() {
				timerChan <- true
			})
		})

		return itp.Run(nil, func() (govern.State, error) {
			select {
			case v := <-timerChan:
				if v {
					return govern.Ending, timedOut
				}
				startFrame = itp.FrameNum()
			default:
			}
			return govern.Running, nil
		})
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return curated.Errorf("performance: %v", err)
	}

	numFrames := itp.FrameNum() - startFrame
	fps, accuracy := CalcFPS(numFrames, dur.Seconds())
	_, err = output.Write([]byte(fmt.Sprintf("%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, dur.Seconds(), accuracy)))
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	return nil
}
