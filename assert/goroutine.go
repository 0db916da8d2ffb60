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

// Package assert contains functions that check conditions that can not be
// expressed through the type system. A failed assertion is a programming
// error and causes a panic.
package assert

import (
	"bytes"
	"fmt"
	"runtime"
	"strconv"
)

// GoroutineID returns the ID of the calling goroutine. The value is only
// useful for comparison with another value returned by GoroutineID().
func GoroutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	if i := bytes.IndexByte(b, ' '); i >= 0 {
		b = b[:i]
	}
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// SameGoroutine panics if the calling goroutine is not the goroutine with the
// ID. The name is used in the panic message.
func SameGoroutine(id uint64, name string) {
	if cur := GoroutineID(); cur != id {
		panic(fmt.Sprintf("%s: called from goroutine %d but owned by goroutine %d", name, cur, id))
	}
}
