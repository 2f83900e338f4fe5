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

package instructions

// Category of an instruction describes its effect.
type Category int

// List of instruction categories.
const (
	Machine Category = iota
	Flow
	Subroutine
	Skip
	Register
	Memory
	Graphics
	Timer
	Input
)

func (c Category) String() string {
	switch c {
	case Machine:
		return "Machine"
	case Flow:
		return "Flow"
	case Subroutine:
		return "Subroutine"
	case Skip:
		return "Skip"
	case Register:
		return "Register"
	case Memory:
		return "Memory"
	case Graphics:
		return "Graphics"
	case Timer:
		return "Timer"
	case Input:
		return "Input"
	}
	return "unknown category"
}
