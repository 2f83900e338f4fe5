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
	"strings"
	"time"

	"github.com/jetsetilly/gopher8/gui/textgui/easyterm"
	"github.com/jetsetilly/gopher8/userinput"
)

// the period after which a key with no repeat is considered to be released.
// terminal key repeat typically begins after a longer delay than this so a
// held key will flicker between pressed and released for the first part of
// the press.
const holdPeriod = 300 * time.Millisecond

// heldKeys tracks which keys are currently held down and synthesises the
// release events that terminals do not provide.
type heldKeys struct {
	hold    time.Duration
	expires map[string]time.Time
}

func newHeldKeys(hold time.Duration) *heldKeys {
	return &heldKeys{
		hold:    hold,
		expires: make(map[string]time.Time),
	}
}

// keyName converts the byte read from the terminal into a key name suitable
// for a userinput.EventKeyboard.
func keyName(b byte) string {
	switch b {
	case easyterm.KeyEsc:
		return "Escape"
	case easyterm.KeyTab:
		return "Tab"
	case easyterm.KeyCarriageReturn, '\n':
		return "Return"
	case easyterm.KeyBackspace, 127:
		return "Backspace"
	case ' ':
		return "Space"
	}
	return strings.ToUpper(string(rune(b)))
}

// press returns the events caused by the key being seen at the given time. If
// the key is already held down there is no event but the release is delayed.
func (h *heldKeys) press(key string, now time.Time) []userinput.Event {
	_, held := h.expires[key]
	h.expires[key] = now.Add(h.hold)
	if held {
		return nil
	}
	return []userinput.Event{userinput.EventKeyboard{Key: key, Down: true}}
}

// expire returns release events for every key whose hold period has elapsed.
func (h *heldKeys) expire(now time.Time) []userinput.Event {
	var evs []userinput.Event
	for key, t := range h.expires {
		if !now.Before(t) {
			delete(h.expires, key)
			evs = append(evs, userinput.EventKeyboard{Key: key, Down: false})
		}
	}
	return evs
}
