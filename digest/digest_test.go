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

package digest_test

import (
	"testing"

	"github.com/jetsetilly/gopherchip/digest"
	"github.com/jetsetilly/gopherchip/hardware/audio"
	"github.com/jetsetilly/gopherchip/hardware/display"
	"github.com/jetsetilly/gopherchip/test"
)

const zeroHash = "0000000000000000000000000000000000000000"

func TestVideo(t *testing.T) {
	var _ digest.Digest = digest.NewVideo()

	dsp := display.NewDisplay(false)

	a := digest.NewVideo()
	b := digest.NewVideo()
	test.ExpectEquality(t, a.Hash(), zeroHash)

	test.ExpectSuccess(t, a.OnFrame(nil, dsp, 0, [audio.PatternLen]uint8{}, 0))
	test.ExpectSuccess(t, b.OnFrame(nil, dsp, 0, [audio.PatternLen]uint8{}, 0))
	test.ExpectEquality(t, a.Hash(), b.Hash())
	test.ExpectInequality(t, a.Hash(), zeroHash)

	// identical frames produce a new digest because the digest is chained
	h := a.Hash()
	test.ExpectSuccess(t, a.OnFrame(nil, dsp, 0, [audio.PatternLen]uint8{}, 0))
	test.ExpectInequality(t, a.Hash(), h)
	test.ExpectEquality(t, a.Frames(), 2)

	// a change in resolution changes the digest even though every pixel is
	// off in both cases
	dsp.EnableHires()
	test.ExpectSuccess(t, b.OnFrame(nil, dsp, 0, [audio.PatternLen]uint8{}, 0))
	test.ExpectInequality(t, a.Hash(), b.Hash())

	a.ResetDigest()
	test.ExpectEquality(t, a.Hash(), zeroHash)
	test.ExpectEquality(t, a.Frames(), 0)
}

func TestAudio(t *testing.T) {
	var pattern [audio.PatternLen]uint8
	for i := range pattern {
		pattern[i] = 0xf0
	}

	silent := digest.NewAudio()
	sound := digest.NewAudio()

	test.ExpectSuccess(t, silent.OnFrame(nil, nil, 0, pattern, audio.DefaultPitch))
	test.ExpectSuccess(t, sound.OnFrame(nil, nil, 1, pattern, audio.DefaultPitch))
	test.ExpectInequality(t, silent.Hash(), sound.Hash())
}
