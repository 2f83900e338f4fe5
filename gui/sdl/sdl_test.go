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
	"testing"

	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/test"
	"github.com/jetsetilly/gopher8/userinput"
)

var _ gui.GUI = (*GUI)(nil)
var _ gui.SoundIndicator = (*GUI)(nil)

func TestFlush(t *testing.T) {
	g := &GUI{userinput: make(chan userinput.Event, 2)}

	g.send(userinput.EventKeyboard{Key: "1", Down: true})
	g.send(userinput.EventKeyboard{Key: "2", Down: true})
	g.send(userinput.EventKeyboard{Key: "3", Down: true})
	g.send(userinput.EventKeyboard{Key: "1", Down: false})
	g.send(userinput.EventQuit{})
	g.flush()

	// the third key press is dropped but the release and quit are kept
	test.ExpectEquality(t, len(g.userinput), 2)
	test.ExpectEquality(t, len(g.backlog), 2)

	test.ExpectEquality(t, <-g.userinput, userinput.Event(userinput.EventKeyboard{Key: "1", Down: true}))
	test.ExpectEquality(t, <-g.userinput, userinput.Event(userinput.EventKeyboard{Key: "2", Down: true}))

	g.flush()
	test.ExpectEquality(t, len(g.backlog), 0)
	test.ExpectEquality(t, <-g.userinput, userinput.Event(userinput.EventKeyboard{Key: "1", Down: false}))
	test.ExpectEquality(t, <-g.userinput, userinput.Event(userinput.EventQuit{}))
}

func TestIndicateSound(t *testing.T) {
	g := &GUI{}

	test.ExpectSuccess(t, g.IndicateSound(true))
	test.ExpectSuccess(t, g.sounding)
	test.ExpectSuccess(t, g.titlePending)
	test.ExpectEquality(t, title(g.sounding), "Gopher8 [SOUND]")

	test.ExpectSuccess(t, g.IndicateSound(false))
	test.ExpectEquality(t, title(g.sounding), "Gopher8")
}
