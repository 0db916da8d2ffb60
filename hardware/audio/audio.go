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

// Package audio holds the sound pattern and pitch used by XO-CHIP programs
// and a tone generator that turns them into 8 bit unsigned samples.
//
// CHIP-8 and SUPER-CHIP programs never change the pattern or pitch so the
// default values produce a square-ish buzz at the reference rate.
package audio

import (
	"fmt"
	"math"
)

// PatternLen is the number of bytes in the pattern buffer.
const PatternLen = 16

// PatternBits is the number of one-bit samples in the pattern buffer.
const PatternBits = PatternLen * 8

// DefaultPitch is the pitch value that plays the pattern at ReferenceRate.
const DefaultPitch = 64

// ReferenceRate is the number of pattern bits played per second at the
// default pitch.
const ReferenceRate = 4000.0

// Audio is the pattern buffer and pitch. The sound timer in the timer pair
// gates whether the pattern is heard.
type Audio struct {
	Pattern [PatternLen]uint8
	Pitch   uint16
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() *Audio {
	aud := &Audio{}
	aud.Reset()
	return aud
}

// Reset pattern and pitch to their default values.
func (aud *Audio) Reset() {
	for i := range aud.Pattern {
		aud.Pattern[i] = 0xff
	}
	aud.Pitch = DefaultPitch
}

func (aud *Audio) String() string {
	return fmt.Sprintf("pitch=%d pattern=% 02x", aud.Pitch, aud.Pattern)
}

// SetPattern copies the bytes into the pattern buffer. Any bytes beyond the
// length of the buffer are ignored.
func (aud *Audio) SetPattern(pattern []uint8) {
	copy(aud.Pattern[:], pattern)
}

// Rate returns the number of pattern bits played per second for the pitch.
func Rate(pitch uint16) float64 {
	return ReferenceRate * math.Pow(2, (float64(pitch)-DefaultPitch)/48)
}

// Bit returns the value of the numbered bit in the pattern. Bit zero is the
// most significant bit of the first byte.
func Bit(pattern [PatternLen]uint8, bit int) bool {
	bit %= PatternBits
	return pattern[bit/8]&(0x80>>(bit%8)) != 0
}
