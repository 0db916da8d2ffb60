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

package random

import (
	"math/rand"
	"time"
)

// Random is a source of random numbers for the emulation.
type Random struct {
	rng  *rand.Rand
	seed int64
}

// NewRandom is the preferred method of initialisation for the Random type.
// The seed is taken from the current time.
func NewRandom() *Random {
	rnd := &Random{}
	rnd.Seed(time.Now().UnixNano())
	return rnd
}

// Seed the random number generator. Two instances with the same seed will
// produce the same sequence of numbers.
func (rnd *Random) Seed(seed int64) {
	rnd.seed = seed
	rnd.rng = rand.New(rand.NewSource(seed))
}

// ZeroSeed is the same as Seed(0).
func (rnd *Random) ZeroSeed() {
	rnd.Seed(0)
}

// Reset the generator to the beginning of the sequence for the current seed.
func (rnd *Random) Reset() {
	rnd.Seed(rnd.seed)
}

// Byte returns a random number in the range 0 to 255.
func (rnd *Random) Byte() uint8 {
	return uint8(rnd.rng.Intn(256))
}

// Intn returns a random number in the range 0 to n-1.
func (rnd *Random) Intn(n int) int {
	return rnd.rng.Intn(n)
}
