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

import (
	"fmt"
	"sort"
	"strings"
)

// KeyMap maps key names to keypad keys. Key names are stored in upper case.
type KeyMap map[string]uint8

// DefaultKeyMap returns the reference four by four mapping.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		"1": 0x1, "2": 0x2, "3": 0x3, "4": 0xc,
		"Q": 0x4, "W": 0x5, "E": 0x6, "R": 0xd,
		"A": 0x7, "S": 0x8, "D": 0x9, "F": 0xe,
		"Z": 0xa, "X": 0x0, "C": 0xb, "V": 0xf,
	}
}

// Lookup returns the keypad key for the key name. The comparison is case
// insensitive.
func (km KeyMap) Lookup(key string) (uint8, bool) {
	k, ok := km[strings.ToUpper(key)]
	return k, ok
}

// Set the keypad key for the key name. The keypad key is masked to the low
// nibble.
func (km KeyMap) Set(key string, keypad uint8) {
	km[strings.ToUpper(key)] = keypad & 0x0f
}

// Help returns a description of the key map suitable for printing. One line
// for each keypad key in order.
func (km KeyMap) Help() string {
	names := make([][]string, 16)
	for name, k := range km {
		names[k] = append(names[k], name)
	}

	s := strings.Builder{}
	for k, n := range names {
		sort.Strings(n)
		s.WriteString(fmt.Sprintf("%X: %s\n", k, strings.Join(n, ", ")))
	}
	return s.String()
}
