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

package timers_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/hardware/timers"
	"github.com/jetsetilly/gopher8/test"
)

func TestTick(t *testing.T) {
	tm := timers.Timers{Delay: 3, Sound: 1}
	test.ExpectSuccess(t, tm.Sounding())
	test.ExpectEquality(t, tm.String(), "DT=03 ST=01")

	tm.Tick()
	test.ExpectEquality(t, tm.Delay, 2)
	test.ExpectEquality(t, tm.Sound, 0)
	test.ExpectFailure(t, tm.Sounding())

	// timers stop at zero
	for range 10 {
		tm.Tick()
	}
	test.ExpectEquality(t, tm.Delay, 0)
	test.ExpectEquality(t, tm.Sound, 0)

	tm.Delay = 0xff
	tm.Sound = 0xff
	tm.Reset()
	test.ExpectEquality(t, tm, timers.Timers{})
}
