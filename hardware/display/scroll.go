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

// number of pixels moved by ScrollLeft() and ScrollRight()
const horizontalScroll = 4

// ScrollDown moves the contents of the selected planes down by n rows. The
// vacated rows at the top are cleared.
func (dsp *Display) ScrollDown(n int) {
	w := dsp.Width()
	h := dsp.Height()
	for _, p := range dsp.SelectedPlanes() {
		for y := h - 1; y >= 0; y-- {
			for x := 0; x < w; x++ {
				var v bool
				if y-n >= 0 {
					v = dsp.planes[p][(y-n)*HiresWidth+x]
				}
				dsp.planes[p][y*HiresWidth+x] = v
			}
		}
	}
}

// ScrollUp moves the contents of the selected planes up by n rows. The
// vacated rows at the bottom are cleared.
func (dsp *Display) ScrollUp(n int) {
	w := dsp.Width()
	h := dsp.Height()
	for _, p := range dsp.SelectedPlanes() {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				var v bool
				if y+n < h {
					v = dsp.planes[p][(y+n)*HiresWidth+x]
				}
				dsp.planes[p][y*HiresWidth+x] = v
			}
		}
	}
}

// ScrollLeft moves the contents of the selected planes four pixels to the
// left. The vacated columns on the right are cleared.
func (dsp *Display) ScrollLeft() {
	w := dsp.Width()
	h := dsp.Height()
	for _, p := range dsp.SelectedPlanes() {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				var v bool
				if x+horizontalScroll < w {
					v = dsp.planes[p][y*HiresWidth+x+horizontalScroll]
				}
				dsp.planes[p][y*HiresWidth+x] = v
			}
		}
	}
}

// ScrollRight moves the contents of the selected planes four pixels to the
// right. The vacated columns on the left are cleared.
func (dsp *Display) ScrollRight() {
	w := dsp.Width()
	h := dsp.Height()
	for _, p := range dsp.SelectedPlanes() {
		for y := 0; y < h; y++ {
			for x := w - 1; x >= 0; x-- {
				var v bool
				if x-horizontalScroll >= 0 {
					v = dsp.planes[p][y*HiresWidth+x-horizontalScroll]
				}
				dsp.planes[p][y*HiresWidth+x] = v
			}
		}
	}
}
