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

// Package playmode runs a program loaded into a hardware.Machine without any
// debugging features.
//
// The loop is regulated by a limiter running at the timer rate of the
// machine. Every frame the user input is serviced, the machine executes one
// frame's worth of instructions, the timers are ticked and then the GUI is
// updated if the display has changed.
//
// If the GUI needs to read user input in a goroutine of its own, the loop and
// the input reader are run in the same errgroup. An error or a quit request
// in either will end both.
package playmode
