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

// Package keypad implements the sixteen key hexadecimal keypad. The state of
// each key is stored atomically so that keys can be pressed and released by
// an input goroutine while the CPU is running in another.
package keypad

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// NumKeys is the number of keys on the keypad.
const NumKeys = 16

// Keypad is the state of the sixteen keys. Key indexes are masked to the low
// nibble.
type Keypad struct {
	keys [NumKeys]atomic.Bool
}

func (kp *Keypad) String() string {
	s := strings.Builder{}
	for k := range NumKeys {
		if kp.keys[k].Load() {
			s.WriteString(fmt.Sprintf("%X", k))
		} else {
			s.WriteRune('-')
		}
	}
	return s.String()
}

// Press the key.
func (kp *Keypad) Press(key uint8) {
	kp.keys[key&0x0f].Store(true)
}

// Release the key.
func (kp *Keypad) Release(key uint8) {
	kp.keys[key&0x0f].Store(false)
}

// IsPressed returns true if the key is pressed.
func (kp *Keypad) IsPressed(key uint8) bool {
	return kp.keys[key&0x0f].Load()
}

// HighestPressed returns the highest numbered key that is pressed. The
// boolean is false if no key is pressed.
func (kp *Keypad) HighestPressed() (uint8, bool) {
	for k := NumKeys - 1; k >= 0; k-- {
		if kp.keys[k].Load() {
			return uint8(k), true
		}
	}
	return 0, false
}

// Reset releases all keys.
func (kp *Keypad) Reset() {
	for k := range NumKeys {
		kp.keys[k].Store(false)
	}
}
