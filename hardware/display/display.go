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

package display

import (
	"fmt"

	"github.com/jetsetilly/gopherchip/curated"
)

// InvalidPlane is the sentinel error pattern returned by SetPlane().
const InvalidPlane = "display: invalid plane selection (%#x)"

// Display dimensions for each resolution.
const (
	LoresWidth  = 64
	LoresHeight = 32
	HiresWidth  = 128
	HiresHeight = 64
)

// the number of planes in the display
const NumPlanes = 2

// Plane selection masks. Used with SetPlane().
const (
	PlaneNone   uint8 = 0x00
	PlaneFirst  uint8 = 0x01
	PlaneSecond uint8 = 0x02
	PlaneBoth   uint8 = PlaneFirst | PlaneSecond
)

// Colour is the combination of the two plane bits for a single pixel.
type Colour uint8

// List of valid Colour values. The value of each Colour is the same as the
// plane mask that would select it.
const (
	Off    Colour = Colour(PlaneNone)
	First  Colour = Colour(PlaneFirst)
	Second Colour = Colour(PlaneSecond)
	Both   Colour = Colour(PlaneBoth)
)

func (c Colour) String() string {
	switch c {
	case Off:
		return "off"
	case First:
		return "first"
	case Second:
		return "second"
	case Both:
		return "both"
	}
	return "unknown"
}

// Display is the state of the two bitplanes.
type Display struct {
	// the planes are indexed by y*HiresWidth+x regardless of resolution
	planes [NumPlanes][HiresWidth * HiresHeight]bool

	// Hires is true when the display is 128x64. Use EnableHires() and
	// DisableHires() to change the resolution
	Hires bool

	// the planes affected by drawing, scrolling and clearing. use SetPlane()
	// to change
	selected uint8

	// WrapSprites controls what happens when a sprite is drawn over the edge
	// of the display. If true the sprite continues on the other side of the
	// display. Otherwise the sprite is clipped.
	//
	// Note that the initial coordinates of a sprite always wrap.
	WrapSprites bool
}

// NewDisplay is the preferred method of initialisation for the Display type.
// The display is in lores with the first plane selected.
func NewDisplay(wrapSprites bool) *Display {
	return &Display{
		selected:    PlaneFirst,
		WrapSprites: wrapSprites,
	}
}

func (dsp *Display) String() string {
	return fmt.Sprintf("%dx%d plane=%#x wrap=%v", dsp.Width(), dsp.Height(), dsp.selected, dsp.WrapSprites)
}

// Width returns the width of the display in the current resolution.
func (dsp *Display) Width() int {
	if dsp.Hires {
		return HiresWidth
	}
	return LoresWidth
}

// Height returns the height of the display in the current resolution.
func (dsp *Display) Height() int {
	if dsp.Hires {
		return HiresHeight
	}
	return LoresHeight
}

// Selected returns the current plane selection mask.
func (dsp *Display) Selected() uint8 {
	return dsp.selected
}

// SelectedPlanes returns the indexes of the selected planes in ascending
// order. The first plane has index 0.
func (dsp *Display) SelectedPlanes() []int {
	p := make([]int, 0, NumPlanes)
	for i := 0; i < NumPlanes; i++ {
		if dsp.selected&(1<<i) != 0 {
			p = append(p, i)
		}
	}
	return p
}

// SetPlane changes which planes are affected by subsequent operations. A
// mask of zero leaves the selection unchanged.
func (dsp *Display) SetPlane(mask uint8) error {
	if mask > PlaneBoth {
		return curated.Errorf(InvalidPlane, mask)
	}
	if mask == PlaneNone {
		return nil
	}
	dsp.selected = mask
	return nil
}

// EnableHires switches to the 128x64 resolution. Both planes are cleared.
func (dsp *Display) EnableHires() {
	dsp.Hires = true
	dsp.clearAll()
}

// DisableHires switches to the 64x32 resolution. Both planes are cleared.
func (dsp *Display) DisableHires() {
	dsp.Hires = false
	dsp.clearAll()
}

func (dsp *Display) clearAll() {
	for p := range dsp.planes {
		dsp.planes[p] = [HiresWidth * HiresHeight]bool{}
	}
}

// Clear the selected planes.
func (dsp *Display) Clear() {
	for _, p := range dsp.SelectedPlanes() {
		dsp.planes[p] = [HiresWidth * HiresHeight]bool{}
	}
}

// Pixel returns the state of the pixel in the plane.
func (dsp *Display) Pixel(plane int, x int, y int) bool {
	return dsp.planes[plane][y*HiresWidth+x]
}

// Colour returns the colour of the pixel at the coordinates.
func (dsp *Display) Colour(x int, y int) Colour {
	var c Colour
	if dsp.planes[0][y*HiresWidth+x] {
		c |= First
	}
	if dsp.planes[1][y*HiresWidth+x] {
		c |= Second
	}
	return c
}

// Bitplane returns the colour of every pixel in the current resolution. The
// returned slice is in row-major order and is Width()*Height() in length.
func (dsp *Display) Bitplane() []Colour {
	w := dsp.Width()
	h := dsp.Height()
	b := make([]Colour, 0, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			b = append(b, dsp.Colour(x, y))
		}
	}
	return b
}
