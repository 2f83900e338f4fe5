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

// Package prefs defines the typed preference values used to configure the
// emulation. Values are stored atomically so they can be read from one
// goroutine while being changed in another. Hooks can be attached to a value
// to validate or react to a change.
//
// Preferences can also be set from the command line by pushing a string of
// key/value pairs onto the command line stack. A preference group (for
// example hardware/preferences) consults the stack when it is created.
package prefs
