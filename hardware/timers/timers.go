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

// Package timers implements the delay and sound timers. Both timers count
// down to zero at a fixed rate that is decided by the run loop and not by
// the CPU.
package timers

import "fmt"

// Timers contains the two countdown timers.
type Timers struct {
	Delay uint8
	Sound uint8
}

func (tm *Timers) String() string {
	return fmt.Sprintf("DT=%02x ST=%02x", tm.Delay, tm.Sound)
}

// Tick decrements each timer that is not already zero.
func (tm *Timers) Tick() {
	if tm.Delay > 0 {
		tm.Delay--
	}
	if tm.Sound > 0 {
		tm.Sound--
	}
}

// Reset both timers to zero.
func (tm *Timers) Reset() {
	tm.Delay = 0
	tm.Sound = 0
}

// Sounding returns true while the sound timer is active.
func (tm *Timers) Sounding() bool {
	return tm.Sound > 0
}
