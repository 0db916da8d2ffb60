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

package display_test

import (
	"testing"

	"github.com/jetsetilly/gopherchip/curated"
	"github.com/jetsetilly/gopherchip/hardware/display"
	"github.com/jetsetilly/gopherchip/test"
)

// returns the pixels of row y in the plane as a string of 0 and 1 characters
func row(dsp *display.Display, plane int, y int) string {
	s := make([]byte, dsp.Width())
	for x := range s {
		if dsp.Pixel(plane, x, y) {
			s[x] = '1'
		} else {
			s[x] = '0'
		}
	}
	return string(s)
}

func countSet(dsp *display.Display, plane int) int {
	var n int
	for y := 0; y < dsp.Height(); y++ {
		for x := 0; x < dsp.Width(); x++ {
			if dsp.Pixel(plane, x, y) {
				n++
			}
		}
	}
	return n
}

func TestWrap(t *testing.T) {
	dsp := display.NewDisplay(true)
	collision := dsp.DrawSprite(60, 0, []uint8{0xff}, 0)
	test.ExpectFailure(t, collision)

	for x := 60; x < 64; x++ {
		test.ExpectSuccess(t, dsp.Pixel(0, x, 0), x)
	}
	for x := 0; x < 4; x++ {
		test.ExpectSuccess(t, dsp.Pixel(0, x, 0), x)
	}
	test.ExpectEquality(t, countSet(dsp, 0), 8)
}

func TestClip(t *testing.T) {
	dsp := display.NewDisplay(false)
	collision := dsp.DrawSprite(60, 0, []uint8{0xff}, 0)
	test.ExpectFailure(t, collision)

	for x := 60; x < 64; x++ {
		test.ExpectSuccess(t, dsp.Pixel(0, x, 0), x)
	}
	test.ExpectEquality(t, countSet(dsp, 0), 4)

	// clipping at the bottom of the display
	dsp.Clear()
	dsp.DrawSprite(0, 30, []uint8{0x80, 0x80, 0x80, 0x80}, 0)
	test.ExpectEquality(t, countSet(dsp, 0), 2)
}

func TestInitialCoordinatesWrap(t *testing.T) {
	// the starting coordinates are always wrapped, even when clipping
	dsp := display.NewDisplay(false)
	dsp.DrawSprite(64+2, 32+1, []uint8{0x80}, 0)
	test.ExpectSuccess(t, dsp.Pixel(0, 2, 1))
	test.ExpectEquality(t, countSet(dsp, 0), 1)
}

func TestCollision(t *testing.T) {
	dsp := display.NewDisplay(false)

	collision := dsp.DrawSprite(8, 4, []uint8{0xff}, 0)
	test.ExpectFailure(t, collision)
	test.ExpectEquality(t, countSet(dsp, 0), 8)

	collision = dsp.DrawSprite(8, 4, []uint8{0xff}, 0)
	test.ExpectSuccess(t, collision)
	test.ExpectEquality(t, countSet(dsp, 0), 0)

	// collision in the first row is not forgotten by later rows
	dsp.DrawSprite(0, 0, []uint8{0x80}, 0)
	collision = dsp.DrawSprite(0, 0, []uint8{0x80, 0x40, 0x20}, 0)
	test.ExpectSuccess(t, collision)
	test.ExpectEquality(t, countSet(dsp, 0), 2)
}

func TestDraw16x16(t *testing.T) {
	dsp := display.NewDisplay(false)
	dsp.EnableHires()

	sprite := make([]uint16, 16)
	for i := range sprite {
		sprite[i] = 0xffff
	}

	collision := dsp.Draw16x16Sprite(0, 0, sprite, 0)
	test.ExpectFailure(t, collision)
	test.ExpectEquality(t, countSet(dsp, 0), 256)

	// clipped on the right hand side
	dsp.Clear()
	dsp.Draw16x16Sprite(120, 0, sprite, 0)
	test.ExpectEquality(t, countSet(dsp, 0), 8*16)

	collision = dsp.Draw16x16Sprite(120, 0, sprite, 0)
	test.ExpectSuccess(t, collision)
	test.ExpectEquality(t, countSet(dsp, 0), 0)
}

func TestPlanes(t *testing.T) {
	dsp := display.NewDisplay(false)
	test.ExpectEquality(t, dsp.Selected(), display.PlaneFirst)

	dsp.DrawSprite(0, 0, []uint8{0x80}, 0)
	dsp.DrawSprite(0, 0, []uint8{0xc0}, 1)
	test.ExpectEquality(t, dsp.Colour(0, 0), display.Both)
	test.ExpectEquality(t, dsp.Colour(1, 0), display.Second)
	test.ExpectEquality(t, dsp.Colour(2, 0), display.Off)

	// mask of zero is a no-op
	test.ExpectSuccess(t, dsp.SetPlane(display.PlaneNone))
	test.ExpectEquality(t, dsp.Selected(), display.PlaneFirst)

	// invalid mask
	err := dsp.SetPlane(0x04)
	test.ExpectSuccess(t, curated.Is(err, display.InvalidPlane))
	test.ExpectEquality(t, dsp.Selected(), display.PlaneFirst)

	// clear only affects the selected plane
	test.ExpectSuccess(t, dsp.SetPlane(display.PlaneSecond))
	test.ExpectEquality(t, len(dsp.SelectedPlanes()), 1)
	dsp.Clear()
	test.ExpectEquality(t, dsp.Colour(0, 0), display.First)
	test.ExpectEquality(t, dsp.Colour(1, 0), display.Off)

	test.ExpectSuccess(t, dsp.SetPlane(display.PlaneBoth))
	test.ExpectEquality(t, len(dsp.SelectedPlanes()), 2)
	dsp.Clear()
	test.ExpectEquality(t, dsp.Colour(0, 0), display.Off)
}

func TestResolution(t *testing.T) {
	dsp := display.NewDisplay(false)
	test.ExpectEquality(t, dsp.Width(), display.LoresWidth)
	test.ExpectEquality(t, dsp.Height(), display.LoresHeight)
	test.ExpectEquality(t, len(dsp.Bitplane()), display.LoresWidth*display.LoresHeight)

	// resolution change clears both planes even when only one is selected
	dsp.DrawSprite(0, 0, []uint8{0xff}, 0)
	dsp.DrawSprite(0, 0, []uint8{0xff}, 1)
	dsp.EnableHires()
	test.ExpectEquality(t, dsp.Width(), display.HiresWidth)
	test.ExpectEquality(t, dsp.Height(), display.HiresHeight)
	test.ExpectEquality(t, countSet(dsp, 0), 0)
	test.ExpectEquality(t, countSet(dsp, 1), 0)
	test.ExpectEquality(t, len(dsp.Bitplane()), display.HiresWidth*display.HiresHeight)

	dsp.DrawSprite(100, 50, []uint8{0xff}, 1)
	dsp.DisableHires()
	test.ExpectEquality(t, countSet(dsp, 1), 0)
}

func TestScrollVertical(t *testing.T) {
	dsp := display.NewDisplay(false)
	dsp.DrawSprite(0, 0, []uint8{0xff}, 0)

	dsp.ScrollDown(3)
	test.ExpectEquality(t, row(dsp, 0, 0), row(dsp, 0, 1))
	test.ExpectEquality(t, countSet(dsp, 0), 8)
	test.ExpectSuccess(t, dsp.Pixel(0, 0, 3))
	test.ExpectFailure(t, dsp.Pixel(0, 0, 0))

	dsp.ScrollUp(2)
	test.ExpectSuccess(t, dsp.Pixel(0, 0, 1))
	test.ExpectFailure(t, dsp.Pixel(0, 0, 3))

	// scrolling off the top of the display loses the pixels
	dsp.ScrollUp(2)
	test.ExpectEquality(t, countSet(dsp, 0), 0)

	// scrolling off the bottom
	dsp.DrawSprite(0, 31, []uint8{0xff}, 0)
	dsp.ScrollDown(1)
	test.ExpectEquality(t, countSet(dsp, 0), 0)
}

func TestScrollHorizontal(t *testing.T) {
	dsp := display.NewDisplay(false)
	dsp.DrawSprite(0, 0, []uint8{0x80}, 0)

	dsp.ScrollRight()
	test.ExpectFailure(t, dsp.Pixel(0, 0, 0))
	test.ExpectSuccess(t, dsp.Pixel(0, 4, 0))

	dsp.ScrollLeft()
	test.ExpectSuccess(t, dsp.Pixel(0, 0, 0))
	test.ExpectFailure(t, dsp.Pixel(0, 4, 0))

	dsp.ScrollLeft()
	test.ExpectEquality(t, countSet(dsp, 0), 0)

	dsp.DrawSprite(62, 0, []uint8{0x80}, 0)
	dsp.ScrollRight()
	test.ExpectEquality(t, countSet(dsp, 0), 0)
}

func TestScrollSelectedPlaneOnly(t *testing.T) {
	dsp := display.NewDisplay(false)
	dsp.DrawSprite(0, 0, []uint8{0x80}, 0)
	dsp.DrawSprite(0, 0, []uint8{0x80}, 1)

	test.ExpectSuccess(t, dsp.SetPlane(display.PlaneSecond))
	dsp.ScrollDown(1)
	test.ExpectEquality(t, dsp.Colour(0, 0), display.First)
	test.ExpectEquality(t, dsp.Colour(0, 1), display.Second)
}
