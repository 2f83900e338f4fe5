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

// Package textgui implements the gui.GUI interface for a terminal. Each pixel
// is printed as a single character and the cursor is returned to the top left
// of the terminal before each frame.
//
// Terminals do not report when a key has been released. Instead, a key is
// considered to be held down for a short period after the last time it was
// seen. The key repeat of the terminal will keep the key held down for as
// long as it is physically pressed.
package textgui
