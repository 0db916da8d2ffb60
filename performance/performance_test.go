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

package performance_test

import (
	"testing"

	"github.com/jetsetilly/gopherchip/performance"
	"github.com/jetsetilly/gopherchip/test"
)

func TestCalcFPS(t *testing.T) {
	fps, accuracy := performance.CalcFPS(120, 2.0)
	test.ExpectClose(t, fps, 60.0, 0.001)
	test.ExpectClose(t, accuracy, 100.0, 0.001)

	fps, accuracy = performance.CalcFPS(60, 2.0)
	test.ExpectClose(t, fps, 30.0, 0.001)
	test.ExpectClose(t, accuracy, 50.0, 0.001)

	fps, _ = performance.CalcFPS(60, 0)
	test.ExpectClose(t, fps, 0, 0.001)
}

func TestParseProfileString(t *testing.T) {
	p, err := performance.ParseProfileString("cpu,mem")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileMem)
	test.ExpectEquality(t, p.String(), "cpu,mem")

	p, err = performance.ParseProfileString("all")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileAll)

	p, err = performance.ParseProfileString("none")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p.String(), "none")

	_, err = performance.ParseProfileString("cpu,foo")
	test.ExpectFailure(t, err)
}

func TestRunProfilerNone(t *testing.T) {
	var ran bool
	err := performance.RunProfiler(performance.ProfileNone, "test", func() error {
		ran = true
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ran)
}
