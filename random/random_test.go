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

package random_test

import (
	"testing"

	"github.com/jetsetilly/gopherchip/random"
	"github.com/jetsetilly/gopherchip/test"
)

func TestRandom(t *testing.T) {
	a := random.NewRandom()
	b := random.NewRandom()
	a.ZeroSeed()
	b.ZeroSeed()

	for i := 1; i < 256; i++ {
		test.ExpectEquality(t, a.Byte(), b.Byte())
		test.ExpectEquality(t, a.Intn(i), b.Intn(i))
	}
}

func TestReset(t *testing.T) {
	a := random.NewRandom()
	a.Seed(1234)

	seq := make([]uint8, 32)
	for i := range seq {
		seq[i] = a.Byte()
	}

	a.Reset()
	for i := range seq {
		test.ExpectEquality(t, a.Byte(), seq[i])
	}
}
