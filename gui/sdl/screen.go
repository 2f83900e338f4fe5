// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package sdl

import (
	"github.com/jetsetilly/gopher8/hardware/display"

	"github.com/veandco/go-sdl2/sdl"
)

// the number of bytes per pixel in the texture.
const scrDepth = 4

// the colours of lit and unlit pixels. the byte order is the same as the
// texture's pixel format
var (
	onColor  = [scrDepth]byte{0xff, 0xff, 0xff, 0xff}
	offColor = [scrDepth]byte{0x00, 0x00, 0x00, 0xff}
)

type screen struct {
	renderer *sdl.Renderer
	texture  *sdl.Texture
	destRect *sdl.Rect
}

func newScreen(renderer *sdl.Renderer, scale int32) (*screen, error) {
	scr := &screen{
		renderer: renderer,
		destRect: &sdl.Rect{X: 0, Y: 0, W: display.Width * scale, H: display.Height * scale},
	}

	var err error

	scr.texture, err = renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888), int(sdl.TEXTUREACCESS_STREAMING), display.Width, display.Height)
	if err != nil {
		return nil, err
	}

	return scr, nil
}

func (scr *screen) destroy() error {
	return scr.texture.Destroy()
}

// update the texture with the supplied pixels and present it to the window.
func (scr *screen) update(pixels []byte) error {
	err := scr.texture.Update(nil, pixels, display.Width*scrDepth)
	if err != nil {
		return err
	}

	err = scr.renderer.Clear()
	if err != nil {
		return err
	}

	err = scr.renderer.Copy(scr.texture, nil, scr.destRect)
	if err != nil {
		return err
	}

	scr.renderer.Present()

	return nil
}

// fillPixels converts the framebuffer into texture data.
func fillPixels(pixels []byte, fb [display.Height][display.Width]uint8) {
	i := 0
	for y := range fb {
		for x := range fb[y] {
			if fb[y][x] != 0 {
				copy(pixels[i:], onColor[:])
			} else {
				copy(pixels[i:], offColor[:])
			}
			i += scrDepth
		}
	}
}
