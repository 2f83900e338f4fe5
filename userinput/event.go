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

// Event represents all the different type of events that can occur in the
// GUI.
type Event interface{}

// EventKeyboard is a key being pressed or released. The Key field should be
// the name of the key as given by SDL, for example "Q", "1" or "Escape".
type EventKeyboard struct {
	Key    string
	Down   bool
	Repeat bool
}

// EventQuit is sent when the GUI wants the emulation to end. For example, when
// the window has been closed.
type EventQuit struct{}
