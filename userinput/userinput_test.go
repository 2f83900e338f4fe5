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

package userinput_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/test"
	"github.com/jetsetilly/gopher8/userinput"
)

func TestDefaultKeyMap(t *testing.T) {
	km := userinput.DefaultKeyMap()
	test.ExpectEquality(t, len(km), 16)

	grid := []struct {
		keys   string
		keypad [4]uint8
	}{
		{"1234", [4]uint8{0x1, 0x2, 0x3, 0xc}},
		{"QWER", [4]uint8{0x4, 0x5, 0x6, 0xd}},
		{"ASDF", [4]uint8{0x7, 0x8, 0x9, 0xe}},
		{"ZXCV", [4]uint8{0xa, 0x0, 0xb, 0xf}},
	}

	for _, row := range grid {
		for i, r := range row.keys {
			k, ok := km.Lookup(string(r))
			test.ExpectSuccess(t, ok, string(r))
			test.ExpectEquality(t, k, row.keypad[i], string(r))
		}
	}

	// lookups are case insensitive
	k, ok := km.Lookup("v")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k, 0xf)

	_, ok = km.Lookup("P")
	test.ExpectFailure(t, ok)
}

func TestKeyMapSet(t *testing.T) {
	km := userinput.DefaultKeyMap()
	km.Set("up", 0x15)
	k, ok := km.Lookup("UP")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k, 0x5)
}

func TestKeyMapHelp(t *testing.T) {
	km := userinput.KeyMap{}
	km.Set("x", 0x0)
	km.Set("Up", 0x2)
	km.Set("w", 0x2)

	expected := "0: X\n1: \n2: UP, W\n"
	help := km.Help()
	test.ExpectEquality(t, help[:len(expected)], expected)
}

func TestHandleUserInput(t *testing.T) {
	var kp keypad.Keypad
	c := userinput.NewControllers()

	r := c.HandleUserInput(userinput.EventKeyboard{Key: "W", Down: true}, &kp)
	test.ExpectEquality(t, r, userinput.NoAction)
	test.ExpectSuccess(t, c.LastKeyHandled)
	test.ExpectSuccess(t, kp.IsPressed(0x5))

	// repeat events are ignored
	r = c.HandleUserInput(userinput.EventKeyboard{Key: "W", Down: false, Repeat: true}, &kp)
	test.ExpectEquality(t, r, userinput.NoAction)
	test.ExpectFailure(t, c.LastKeyHandled)
	test.ExpectSuccess(t, kp.IsPressed(0x5))

	c.HandleUserInput(userinput.EventKeyboard{Key: "w", Down: false}, &kp)
	test.ExpectFailure(t, kp.IsPressed(0x5))

	// keys not in the key map
	r = c.HandleUserInput(userinput.EventKeyboard{Key: "P", Down: true}, &kp)
	test.ExpectEquality(t, r, userinput.NoAction)
	test.ExpectFailure(t, c.LastKeyHandled)
	_, ok := kp.HighestPressed()
	test.ExpectFailure(t, ok)

	r = c.HandleUserInput(userinput.EventKeyboard{Key: "Escape", Down: true}, &kp)
	test.ExpectEquality(t, r, userinput.Quit)

	r = c.HandleUserInput(userinput.EventKeyboard{Key: "Escape", Down: false}, &kp)
	test.ExpectEquality(t, r, userinput.NoAction)

	r = c.HandleUserInput(userinput.EventKeyboard{Key: "F1", Down: true}, &kp)
	test.ExpectEquality(t, r, userinput.Reset)

	r = c.HandleUserInput(userinput.EventKeyboard{Key: "F2", Down: true}, &kp)
	test.ExpectEquality(t, r, userinput.Pause)
	test.ExpectEquality(t, r.String(), "pause")

	r = c.HandleUserInput(userinput.EventQuit{}, &kp)
	test.ExpectEquality(t, r, userinput.Quit)
}
