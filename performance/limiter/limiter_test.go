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

package limiter_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/gopherchip/performance/limiter"
	"github.com/jetsetilly/gopherchip/test"
)

func TestLimiter(t *testing.T) {
	lim := limiter.NewFPSLimiter(100)
	defer lim.Close()
	test.ExpectEquality(t, lim.Limit(), 100)

	start := time.Now()
	for i := 0; i < 10; i++ {
		lim.Wait()
	}

	// ten frames at 100fps is 100ms. the first tick is immediate so the
	// minimum elapsed time is for nine frames
	test.ExpectSuccess(t, time.Since(start) >= 80*time.Millisecond)
}

func TestSetLimit(t *testing.T) {
	lim := limiter.NewFPSLimiter(0)
	defer lim.Close()
	test.ExpectEquality(t, lim.Limit(), 1)

	lim.SetLimit(60)
	test.ExpectEquality(t, lim.Limit(), 60)
}
