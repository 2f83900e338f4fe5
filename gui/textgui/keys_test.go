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

package textgui

import (
	"testing"
	"time"

	"github.com/jetsetilly/gopher8/test"
	"github.com/jetsetilly/gopher8/userinput"
)

func TestKeyName(t *testing.T) {
	test.ExpectEquality(t, keyName('q'), "Q")
	test.ExpectEquality(t, keyName('Q'), "Q")
	test.ExpectEquality(t, keyName('4'), "4")
	test.ExpectEquality(t, keyName(27), "Escape")
	test.ExpectEquality(t, keyName(' '), "Space")
}

func TestHeldKeys(t *testing.T) {
	h := newHeldKeys(100 * time.Millisecond)
	now := time.Now()

	evs := h.press("Q", now)
	test.DemandEquality(t, len(evs), 1)
	test.ExpectEquality(t, evs[0].(userinput.EventKeyboard), userinput.EventKeyboard{Key: "Q", Down: true})

	// key repeat extends the hold period without a new event
	evs = h.press("Q", now.Add(80*time.Millisecond))
	test.ExpectEquality(t, len(evs), 0)

	evs = h.expire(now.Add(150 * time.Millisecond))
	test.ExpectEquality(t, len(evs), 0)

	evs = h.expire(now.Add(180 * time.Millisecond))
	test.DemandEquality(t, len(evs), 1)
	test.ExpectEquality(t, evs[0].(userinput.EventKeyboard), userinput.EventKeyboard{Key: "Q", Down: false})

	// the key is no longer held so a new press produces a new event
	evs = h.press("Q", now.Add(200*time.Millisecond))
	test.ExpectEquality(t, len(evs), 1)
}
