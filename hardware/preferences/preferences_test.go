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

package preferences_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/prefs"
	"github.com/jetsetilly/gopher8/test"
)

func TestDefaults(t *testing.T) {
	p, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, p.ClockHz.Get().(int), preferences.DefaultClockHz)
	test.ExpectEquality(t, p.TimerHz.Get().(int), preferences.DefaultTimerHz)
	test.ExpectEquality(t, p.StrictDecode.Get().(bool), false)
	test.ExpectEquality(t, p.RandSeed.Get().(int), 0)
	test.ExpectEquality(t, p.InstructionsPerTick(), 9)
	test.ExpectEquality(t, p.String(), "clock=540Hz timer=60Hz strict=false seed=0")
}

func TestCommandLine(t *testing.T) {
	prefs.PushCommandLineStack("hardware.clock::700; hardware.strict::true; hardware.seed::42; other::value")
	p, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, p.ClockHz.Get().(int), 700)
	test.ExpectEquality(t, p.TimerHz.Get().(int), preferences.DefaultTimerHz)
	test.ExpectEquality(t, p.StrictDecode.Get().(bool), true)
	test.ExpectEquality(t, p.RandSeed.Get().(int), 42)

	// keys not consumed by the hardware preferences remain
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "other::value")

	p.SetDefaults()
	test.ExpectEquality(t, p.ClockHz.Get().(int), preferences.DefaultClockHz)
	test.ExpectEquality(t, p.StrictDecode.Get().(bool), false)
}

func TestInvalidRate(t *testing.T) {
	p, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)

	err = p.ClockHz.Set(0)
	test.ExpectSuccess(t, curated.Is(err, preferences.InvalidRate))
	test.ExpectEquality(t, p.ClockHz.Get().(int), preferences.DefaultClockHz)

	prefs.PushCommandLineStack("hardware.timer::-1")
	_, err = preferences.NewPreferences()
	test.ExpectSuccess(t, curated.Has(err, preferences.InvalidRate))
	prefs.PopCommandLineStack()

	// a clock slower than the timer still executes one instruction per tick
	test.ExpectSuccess(t, p.ClockHz.Set(30))
	test.ExpectEquality(t, p.InstructionsPerTick(), 1)
}
