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

package display_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/test"
)

func TestClear(t *testing.T) {
	fb := display.NewFramebuffer()
	test.ExpectSuccess(t, fb.ConsumeRedraw())
	test.ExpectFailure(t, fb.ConsumeRedraw())

	fb.Draw(0, 0, []uint8{0xff})
	fb.Clear()
	test.ExpectSuccess(t, fb.ConsumeRedraw())
	test.ExpectEquality(t, fb.Pixels(), [display.Height][display.Width]uint8{})
}

func TestDraw(t *testing.T) {
	fb := display.NewFramebuffer()
	fb.ConsumeRedraw()

	collision := fb.Draw(2, 3, []uint8{0b10100000, 0b01000000})
	test.ExpectFailure(t, collision)
	test.ExpectSuccess(t, fb.ConsumeRedraw())

	test.ExpectEquality(t, fb.Pixel(2, 3), 1)
	test.ExpectEquality(t, fb.Pixel(3, 3), 0)
	test.ExpectEquality(t, fb.Pixel(4, 3), 1)
	test.ExpectEquality(t, fb.Pixel(3, 4), 1)
	test.ExpectEquality(t, fb.Pixel(2, 4), 0)

	// overlapping sprite turns off one pixel
	collision = fb.Draw(3, 4, []uint8{0b11000000})
	test.ExpectSuccess(t, collision)
	test.ExpectEquality(t, fb.Pixel(3, 4), 0)
	test.ExpectEquality(t, fb.Pixel(4, 4), 1)
}

func TestDrawIdempotent(t *testing.T) {
	sprite := []uint8{0xf0, 0x80, 0xf0, 0x10, 0xf0}

	for _, c := range []struct{ x, y uint8 }{{0, 0}, {30, 10}, {60, 30}, {63, 31}} {
		fb := display.NewFramebuffer()

		// some existing pixels
		fb.Draw(c.x+1, c.y+1, []uint8{0xaa, 0x55})
		before := fb.Pixels()

		fb.Draw(c.x, c.y, sprite)
		after := fb.Pixels()

		// collision on second draw iff any pixel was on after the first
		var anyOn bool
		for r, row := range sprite {
			for b := range display.SpriteWidth {
				if row&(0x80>>b) != 0 && fb.Pixel(int(c.x)+b, int(c.y)+r) == 1 {
					anyOn = true
				}
			}
		}

		second := fb.Draw(c.x, c.y, sprite)
		test.ExpectEquality(t, second, anyOn, c)
		test.ExpectEquality(t, fb.Pixels(), before, c)
		test.ExpectInequality(t, after, before, c)
	}
}

func TestDrawWrap(t *testing.T) {
	fb := display.NewFramebuffer()

	// sprite drawn at the bottom right corner wraps to the other edges
	fb.Draw(62, 31, []uint8{0xf0, 0xf0})
	test.ExpectEquality(t, fb.Pixel(62, 31), 1)
	test.ExpectEquality(t, fb.Pixel(63, 31), 1)
	test.ExpectEquality(t, fb.Pixel(0, 31), 1)
	test.ExpectEquality(t, fb.Pixel(1, 31), 1)
	test.ExpectEquality(t, fb.Pixel(2, 31), 0)
	test.ExpectEquality(t, fb.Pixel(62, 0), 1)
	test.ExpectEquality(t, fb.Pixel(1, 0), 1)

	// coordinates beyond the framebuffer are taken modulo its dimensions
	fb.Clear()
	fb.Draw(64+5, 32+2, []uint8{0x80})
	test.ExpectEquality(t, fb.Pixel(5, 2), 1)
	test.ExpectEquality(t, fb.Pixel(-59, -30), 1)
}

func TestString(t *testing.T) {
	fb := display.NewFramebuffer()
	fb.Draw(0, 0, []uint8{0xc0})
	fb.Draw(63, 31, []uint8{0x80})

	s := fb.String()
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	test.DemandEquality(t, len(lines), display.Height)
	test.ExpectEquality(t, lines[0], "##"+strings.Repeat(".", display.Width-2))
	test.ExpectEquality(t, lines[1], strings.Repeat(".", display.Width))
	test.ExpectEquality(t, lines[31], strings.Repeat(".", display.Width-1)+"#")

	w := &test.CompareWriter{}
	test.ExpectSuccess(t, fb.Write(w, 'X', ' '))
	test.ExpectEquality(t, strings.Count(w.String(), "X"), 3)
	test.ExpectEquality(t, strings.Count(w.String(), "\n"), display.Height)
}
