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

package cpu

// ControlState describes whether the CPU is ready to fetch the next
// instruction or is waiting for a key to be pressed.
type ControlState int

// List of valid control states.
const (
	Ready ControlState = iota
	AwaitingKey
)

func (s ControlState) String() string {
	switch s {
	case Ready:
		return "ready"
	case AwaitingKey:
		return "awaiting key"
	}
	return "unknown state"
}
