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

// Package instructions defines every instruction in the instruction set. The
// table of definitions is closed and the Operator type enumerates every
// entry. The CPU uses the Operator to select the effect of an instruction.
//
// Decode() selects a definition for an instruction word by the high nibble
// and then, for the groups that need it, by the low byte or low nibble.
package instructions
