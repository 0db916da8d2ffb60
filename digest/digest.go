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

// Package digest creates SHA-1 fingerprints of the output of the interpreter.
// The fingerprint of each frame includes the fingerprint of the previous
// frame so that the final value represents the entire run.
//
// Note that the use of SHA-1 is fine for this application because this is not
// a cryptographic task.
package digest

import (
	"crypto/sha1"
	"fmt"
)

// Digest is implemented by the Video and Audio types.
type Digest interface {
	Hash() string
	ResetDigest()
}

// chain is the shared part of the Video and Audio types. the start of the
// buffer holds the previous digest value
type chain struct {
	digest [sha1.Size]byte
	buffer []byte
}

func newChain(size int) chain {
	return chain{buffer: make([]byte, sha1.Size+size)}
}

// Hash implements the Digest interface.
func (ch chain) Hash() string {
	return fmt.Sprintf("%x", ch.digest)
}

// ResetDigest implements the Digest interface.
func (ch *chain) ResetDigest() {
	ch.digest = [sha1.Size]byte{}
}

// data returns the part of the buffer that follows the previous digest
func (ch *chain) data() []byte {
	return ch.buffer[sha1.Size:]
}

func (ch *chain) update() {
	copy(ch.buffer, ch.digest[:])
	ch.digest = sha1.Sum(ch.buffer)
}
