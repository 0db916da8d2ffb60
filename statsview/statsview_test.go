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

//go:build !statsview

package statsview_test

import (
	"io"
	"testing"

	"github.com/jetsetilly/gopherchip/curated"
	"github.com/jetsetilly/gopherchip/statsview"
	"github.com/jetsetilly/gopherchip/test"
)

func TestUnavailable(t *testing.T) {
	test.ExpectFailure(t, statsview.Available())
	stop, err := statsview.Launch(io.Discard, "")
	test.ExpectSuccess(t, curated.Is(err, statsview.NotAvailable))
	test.ExpectSuccess(t, stop == nil)
}
