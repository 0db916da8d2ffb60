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

package sdl

import (
	"github.com/jetsetilly/gopherchip/gui/palette"
	"github.com/jetsetilly/gopherchip/hardware/display"

	"github.com/veandco/go-sdl2/sdl"
)

// the number of bytes required for each screen pixel
// 4 == red + green + blue + alpha
const scrDepth = 4

type screen struct {
	window   *sdl.Window
	renderer *sdl.Renderer

	// the texture is always the size of the hires display. lores frames only
	// use the top-left quarter
	texture *sdl.Texture
	pixels  []byte

	pal palette.Palette

	// the whole window. the source rectangle changes with the resolution
	destRect *sdl.Rect
	srcRect  *sdl.Rect
}

func newScreen(title string, scale int, pal palette.Palette) (*screen, error) {
	var err error

	if scale < 1 {
		scale = 1
	}

	scr := &screen{
		pal:    pal,
		pixels: make([]byte, display.HiresWidth*display.HiresHeight*scrDepth),
	}

	w := int32(display.HiresWidth * scale)
	h := int32(display.HiresHeight * scale)

	scr.window, err = sdl.CreateWindow(title, int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED), w, h, uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		return nil, err
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		scr.window.Destroy()
		return nil, err
	}

	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888), int(sdl.TEXTUREACCESS_STREAMING), display.HiresWidth, display.HiresHeight)
	if err != nil {
		scr.renderer.Destroy()
		scr.window.Destroy()
		return nil, err
	}

	scr.destRect = &sdl.Rect{X: 0, Y: 0, W: w, H: h}
	scr.srcRect = &sdl.Rect{X: 0, Y: 0, W: display.LoresWidth, H: display.LoresHeight}

	return scr, nil
}

func (scr *screen) destroy() {
	scr.texture.Destroy()
	scr.renderer.Destroy()
	scr.window.Destroy()
}

func (scr *screen) render(dsp *display.Display) error {
	w := dsp.Width()
	h := dsp.Height()
	scr.srcRect.W = int32(w)
	scr.srcRect.H = int32(h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := scr.pal.Lookup(dsp.Colour(x, y))
			i := (y*display.HiresWidth + x) * scrDepth
			scr.pixels[i] = c.R
			scr.pixels[i+1] = c.G
			scr.pixels[i+2] = c.B
			scr.pixels[i+3] = 255
		}
	}

	err := scr.texture.Update(nil, scr.pixels, display.HiresWidth*scrDepth)
	if err != nil {
		return err
	}

	err = scr.renderer.Clear()
	if err != nil {
		return err
	}

	err = scr.renderer.Copy(scr.texture, scr.srcRect, scr.destRect)
	if err != nil {
		return err
	}

	scr.renderer.Present()

	return nil
}
