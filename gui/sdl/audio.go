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

package sdl

import (
	"github.com/jetsetilly/gopherchip/hardware/audio"
	"github.com/jetsetilly/gopherchip/performance"

	"github.com/veandco/go-sdl2/sdl"
)

// the maximum number of frames worth of audio that can be waiting to be
// played. audio is dropped rather than allowing the latency to grow
const maxQueuedFrames = 4

type sound struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	tone   *audio.Tone
	buffer []uint8
}

func newSound() (*sound, error) {
	snd := &sound{}

	spec := &sdl.AudioSpec{
		Freq:     audio.SampleFreq,
		Format:   sdl.AUDIO_U8,
		Channels: 1,
		Samples:  1024,
	}

	var err error

	snd.id, err = sdl.OpenAudioDevice("", false, spec, &snd.spec, 0)
	if err != nil {
		return nil, err
	}

	snd.tone = audio.NewTone(int(snd.spec.Freq))
	snd.buffer = make([]uint8, snd.tone.SamplesPerFrame(performance.FramesPerSecond))

	sdl.PauseAudioDevice(snd.id, false)

	return snd, nil
}

func (snd *sound) queue(gate bool, pattern [audio.PatternLen]uint8, pitch uint16) error {
	snd.tone.Generate(snd.buffer, gate, pattern, pitch)

	if sdl.GetQueuedAudioSize(snd.id) > uint32(len(snd.buffer)*maxQueuedFrames) {
		return nil
	}

	return sdl.QueueAudio(snd.id, snd.buffer)
}

func (snd *sound) destroy() {
	sdl.ClearQueuedAudio(snd.id)
	sdl.CloseAudioDevice(snd.id)
}
