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

package userinput

import "strings"

// HandleInput conceptualises the keypad of the emulated machine.
type HandleInput interface {
	Press(key uint8)
	Release(key uint8)
}

// Result of handling an event that the GUI or run loop should act on.
type Result int

// List of valid Result values.
const (
	NoAction Result = iota
	Quit
	Reset
	Pause
)

func (r Result) String() string {
	switch r {
	case NoAction:
		return "no action"
	case Quit:
		return "quit"
	case Reset:
		return "reset"
	case Pause:
		return "pause"
	}
	return "unknown result"
}

// Controllers translates user input into keypad changes.
type Controllers struct {
	KeyMap KeyMap

	// whether the last event was for a key in the KeyMap
	LastKeyHandled bool
}

// NewControllers is the preferred method of initialisation for the
// Controllers type. The KeyMap is set to the default key map.
func NewControllers() *Controllers {
	return &Controllers{
		KeyMap: DefaultKeyMap(),
	}
}

// HandleUserInput forwards the event to the keypad if the event is for a key
// in the KeyMap. Events that should affect the emulation as a whole are
// returned as a Result.
//
// The Escape key quits the emulation, F1 resets it and F2 pauses it. The
// action happens when the key is pressed.
func (c *Controllers) HandleUserInput(ev Event, handle HandleInput) Result {
	c.LastKeyHandled = false

	switch ev := ev.(type) {
	case EventQuit:
		return Quit

	case EventKeyboard:
		// keys that are held down produce repeat events that can be ignored
		if ev.Repeat {
			return NoAction
		}

		if k, ok := c.KeyMap.Lookup(ev.Key); ok {
			if ev.Down {
				handle.Press(k)
			} else {
				handle.Release(k)
			}
			c.LastKeyHandled = true
			return NoAction
		}

		if !ev.Down {
			return NoAction
		}

		switch strings.ToUpper(ev.Key) {
		case "ESCAPE":
			return Quit
		case "F1":
			return Reset
		case "F2":
			return Pause
		}
	}

	return NoAction
}
