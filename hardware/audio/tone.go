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

package audio

// SampleFreq is the default output frequency used by the hosts.
const SampleFreq = 44100

// sample values written by the tone generator
const (
	Silence = 0x80
	High    = 0xc0
	Low     = 0x40
)

// Tone converts the pattern buffer into a stream of 8 bit unsigned samples.
// The position in the pattern is kept between calls to Generate() so that
// consecutive buffers join without a discontinuity.
type Tone struct {
	sampleFreq float64
	phase      float64
}

// NewTone is the preferred method of initialisation for the Tone type.
func NewTone(sampleFreq int) *Tone {
	return &Tone{
		sampleFreq: float64(sampleFreq),
	}
}

// Generate fills buf with samples. If gate is false the buffer is filled
// with the silence value and the pattern position is reset.
func (tn *Tone) Generate(buf []uint8, gate bool, pattern [PatternLen]uint8, pitch uint16) {
	if !gate {
		for i := range buf {
			buf[i] = Silence
		}
		tn.phase = 0
		return
	}

	step := Rate(pitch) / tn.sampleFreq
	for i := range buf {
		if Bit(pattern, int(tn.phase)) {
			buf[i] = High
		} else {
			buf[i] = Low
		}
		tn.phase += step
		if tn.phase >= PatternBits {
			tn.phase -= PatternBits
		}
	}
}

// SamplesPerFrame returns the number of samples needed to fill one frame at
// the given frame rate.
func (tn *Tone) SamplesPerFrame(fps float64) int {
	return int(tn.sampleFreq / fps)
}
