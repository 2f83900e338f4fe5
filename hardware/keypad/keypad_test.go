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

package keypad_test

import (
	"sync"
	"testing"

	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/test"
)

func TestKeypad(t *testing.T) {
	var kp keypad.Keypad

	_, ok := kp.HighestPressed()
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, kp.String(), "----------------")

	kp.Press(0xc)
	kp.Press(0x3)
	test.ExpectSuccess(t, kp.IsPressed(0xc))
	test.ExpectFailure(t, kp.IsPressed(0xd))
	test.ExpectEquality(t, kp.String(), "---3--------C---")

	k, ok := kp.HighestPressed()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k, 0xc)

	kp.Release(0xc)
	k, _ = kp.HighestPressed()
	test.ExpectEquality(t, k, 0x3)

	kp.Release(0x3)
	kp.Press(0xc)
	test.ExpectSuccess(t, kp.IsPressed(0xc))

	kp.Release(0xc)
	test.ExpectFailure(t, kp.IsPressed(0xc))

	// index is masked to the low nibble
	kp.Press(0x1f)
	test.ExpectSuccess(t, kp.IsPressed(0xf))

	kp.Reset()
	_, ok = kp.HighestPressed()
	test.ExpectFailure(t, ok)
}

// run with -race to check that concurrent access to the keypad is safe
func TestKeypadConcurrency(t *testing.T) {
	var kp keypad.Keypad
	var wg sync.WaitGroup

	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := range 10000 {
			if i%3 == 0 {
				kp.Press(uint8(i))
			} else {
				kp.Release(uint8(i))
			}
		}
	}()

	go func() {
		defer wg.Done()
		for i := range 10000 {
			_ = kp.IsPressed(uint8(i))
			_, _ = kp.HighestPressed()
		}
	}()

	wg.Wait()

	kp.Reset()
	_, ok := kp.HighestPressed()
	test.ExpectFailure(t, ok)
}
