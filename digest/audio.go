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
	"github.com/jetsetilly/gopherchip/performance"
)

// Audio generates a digest of the audio output every frame. The audio is
// generated in the same way as it is for the SDL host.
type Audio struct {
	chain
	tone *audio.Tone
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() *Audio {
	tone := audio.NewTone(audio.SampleFreq)
	return &Audio{
		chain: newChain(tone.SamplesPerFrame(performance.FramesPerSecond)),
		tone:  tone,
	}
}

// OnFrame satisfies the hardware.FrameCallback type.
func (dig *Audio) OnFrame(_ *input.Keypad, _ *display.Display, soundTimer uint8, pattern [audio.PatternLen]uint8, pitch uint16) error {
	dig.tone.Generate(dig.data(), soundTimer > 0, pattern, pitch)
	dig.update()
	return nil
}
