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

package govern_test

import (
	"testing"

	"github.com/jetsetilly/gopherchip/govern"
	"github.com/jetsetilly/gopherchip/test"
)

func TestApply(t *testing.T) {
	test.ExpectEquality(t, govern.Running.Apply(govern.RequestPause), govern.Paused)
	test.ExpectEquality(t, govern.Paused.Apply(govern.RequestResume), govern.Running)
	test.ExpectEquality(t, govern.Paused.Apply(govern.RequestPause), govern.Paused)
	test.ExpectEquality(t, govern.Ending.Apply(govern.RequestResume), govern.Ending)
	test.ExpectEquality(t, govern.Paused.Apply(govern.RequestQuit), govern.Ending)
	test.ExpectEquality(t, govern.Running.Apply(govern.RequestNone), govern.Running)
}

func TestReset(t *testing.T) {
	test.ExpectEquality(t, govern.Running.Apply(govern.RequestReset), govern.Running)
	test.ExpectEquality(t, govern.Paused.Apply(govern.RequestReset), govern.Paused)
	test.ExpectEquality(t, govern.RequestReset.String(), "Reset")
}
