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

// Package wavwriter records the audio output of the interpreter to a WAV
// file. Audio is generated once per frame in the same way as the SDL host
// generates audio, so the recording matches what is heard.
//
// Audio data is buffered in memory in its entirety and written to disk when
// Close() is called. It is therefore probably only suitable for testing
// purposes.
package wavwriter

import (
	"os"

	"github.com/jetsetilly/gopherchip/curated"
	"github.com/jetsetilly/gopherchip/hardware/audio"
	"github.com/jetsetilly/gopherchip/hardware/display"
	"github.com/jetsetilly/gopherchip/hardware/input"
	"github.com/jetsetilly/gopherchip/logger"
	"github.com/jetsetilly/gopherchip/performance"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// output format
const (
	bitDepth    = 8
	numChannels = 1

	// PCM format in the WAV header
	formatPCM = 1
)

// WavWriter collects audio for every frame of the emulation.
type WavWriter struct {
	filename string
	tone     *audio.Tone
	frame    []uint8
	buffer   []int
}

// NewWavWriter is the preferred method of initialisation for the WavWriter
// type. Nothing is written to the file until Close() is called.
func NewWavWriter(filename string) (*WavWriter, error) {
	if filename == "" {
		return nil, curated.Errorf("wavwriter: no filename")
	}

	aw := &WavWriter{
		filename: filename,
		tone:     audio.NewTone(audio.SampleFreq),
	}
	aw.frame = make([]uint8, aw.tone.SamplesPerFrame(performance.FramesPerSecond))

	return aw, nil
}

// OnFrame satisfies the hardware.FrameCallback type. One frame of audio is
// added to the recording. The audio is silent if the sound timer is zero.
func (aw *WavWriter) OnFrame(_ *input.Keypad, _ *display.Display, soundTimer uint8, pattern [audio.PatternLen]uint8, pitch uint16) error {
	aw.tone.Generate(aw.frame, soundTimer > 0, pattern, pitch)
	for _, s := range aw.frame {
		aw.buffer = append(aw.buffer, int(s))
	}
	return nil
}

// NumSamples returns the number of samples recorded so far.
func (aw *WavWriter) NumSamples() int {
	return len(aw.buffer)
}

// Close writes the recording to disk.
func (aw *WavWriter) Close() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, audio.SampleFreq, bitDepth, numChannels, formatPCM)

	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: numChannels,
			SampleRate:  audio.SampleFreq,
		},
		Data:           aw.buffer,
		SourceBitDepth: bitDepth,
	}

	logger.Logf(logger.Allow, "wavwriter", "writing %d samples to %s", len(aw.buffer), aw.filename)

	err = enc.Write(buf)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	err = enc.Close()
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}
