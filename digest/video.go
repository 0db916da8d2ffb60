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

package digest

import (
	"github.com/jetsetilly/gopherchip/hardware/audio"
	"github.com/jetsetilly/gopherchip/hardware/display"
	"github.com/jetsetilly/gopherchip/hardware/input"
)

// Video generates a digest of the display every frame. Every pixel of the
// hires display area is included along with the resolution.
type Video struct {
	chain
	frameNum int
}

// the final byte of the video data indicates the resolution
const videoDataLen = display.HiresWidth*display.HiresHeight + 1

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	return &Video{
		chain: newChain(videoDataLen),
	}
}

// OnFrame satisfies the hardware.FrameCallback type.
func (dig *Video) OnFrame(_ *input.Keypad, dsp *display.Display, _ uint8, _ [audio.PatternLen]uint8, _ uint16) error {
	d := dig.data()

	w := dsp.Width()
	h := dsp.Height()
	for y := 0; y < display.HiresHeight; y++ {
		for x := 0; x < display.HiresWidth; x++ {
			i := y*display.HiresWidth + x
			if x < w && y < h {
				d[i] = uint8(dsp.Colour(x, y))
			} else {
				d[i] = 0
			}
		}
	}

	if dsp.Hires {
		d[videoDataLen-1] = 1
	} else {
		d[videoDataLen-1] = 0
	}

	dig.update()
	dig.frameNum++

	return nil
}

// Frames returns the number of frames that have contributed to the digest.
func (dig *Video) Frames() int {
	return dig.frameNum
}

// ResetDigest implements the Digest interface.
func (dig *Video) ResetDigest() {
	dig.chain.ResetDigest()
	dig.frameNum = 0
}
