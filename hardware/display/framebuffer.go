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

package display

import (
	"io"
	"strings"
	"sync/atomic"
)

// Dimensions of the framebuffer in pixels.
const (
	Width  = 64
	Height = 32
)

// SpriteWidth is the width in pixels of every sprite. Each row of a sprite is
// a single byte with the most significant bit on the left.
const SpriteWidth = 8

// Runes used by String() for pixels that are on and off.
const (
	OnRune  = '#'
	OffRune = '.'
)

// Framebuffer is the grid of pixels drawn by the CPU.
type Framebuffer struct {
	pixels [Height][Width]uint8
	redraw atomic.Bool
}

// NewFramebuffer is the preferred method of initialisation for the
// Framebuffer type.
func NewFramebuffer() *Framebuffer {
	fb := &Framebuffer{}
	fb.Clear()
	return fb
}

// Clear turns off every pixel and sets the redraw flag.
func (fb *Framebuffer) Clear() {
	fb.pixels = [Height][Width]uint8{}
	fb.redraw.Store(true)
}

// Draw XORs the sprite onto the framebuffer with the top-left corner of the
// sprite at x, y. Each byte of the sprite is one row. Coordinates are taken
// modulo the dimensions of the framebuffer and pixels that fall off the
// right or bottom edges wrap around.
//
// Returns true if any pixel was turned off. The redraw flag is always set.
func (fb *Framebuffer) Draw(x, y uint8, sprite []uint8) bool {
	var collision bool

	for r, row := range sprite {
		py := (int(y) + r) % Height
		for b := range SpriteWidth {
			if row&(0x80>>b) == 0 {
				continue // for loop
			}
			px := (int(x) + b) % Width
			if fb.pixels[py][px] == 1 {
				collision = true
			}
			fb.pixels[py][px] ^= 1
		}
	}

	fb.redraw.Store(true)

	return collision
}

// Pixel returns the value of the pixel at x, y. Coordinates are taken modulo
// the dimensions of the framebuffer.
func (fb *Framebuffer) Pixel(x, y int) uint8 {
	return fb.pixels[mod(y, Height)][mod(x, Width)]
}

func mod(v, m int) int {
	v %= m
	if v < 0 {
		v += m
	}
	return v
}

// Pixels returns a copy of every pixel in the framebuffer, indexed by row and
// then by column. Each value is 0 or 1.
func (fb *Framebuffer) Pixels() [Height][Width]uint8 {
	return fb.pixels
}

// ConsumeRedraw clears the redraw flag and returns the state it had.
func (fb *Framebuffer) ConsumeRedraw() bool {
	return fb.redraw.Swap(false)
}

// String returns the framebuffer as text, one line per row and one rune per
// pixel.
func (fb *Framebuffer) String() string {
	s := &strings.Builder{}
	_ = fb.Write(s, OnRune, OffRune)
	return s.String()
}

// Write the framebuffer as text to w, using the on and off runes for the
// value of each pixel. Each row is terminated by a newline.
func (fb *Framebuffer) Write(w io.Writer, on rune, off rune) error {
	line := make([]rune, Width+1)
	line[Width] = '\n'

	for y := range Height {
		for x := range Width {
			if fb.Pixel(x, y) == 1 {
				line[x] = on
			} else {
				line[x] = off
			}
		}
		if _, err := io.WriteString(w, string(line)); err != nil {
			return err
		}
	}

	return nil
}
