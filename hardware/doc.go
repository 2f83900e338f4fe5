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

// Package hardware is the base package for the emulated machine. The Machine
// type owns every component: memory, the CPU, the framebuffer, the keypad and
// the two timers. The components are exported so that the run loop and the
// presentation layer can reach them directly.
//
// Each Machine is self-contained. There is no package level state and more
// than one Machine can exist at the same time.
//
// Instructions are executed with Step() and the timers are decremented with
// TickTimers(). The rate of each is decided by the caller. Run() and
// RunForFrameCount() are provided for callers that want to run the machine
// without a real-time display.
package hardware
