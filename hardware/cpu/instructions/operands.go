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

// Operands are the fields of an instruction word that an instruction uses.
type Operands int

// List of operand formats. The names follow the usual notation where X and Y
// are register selectors, N is a 4 bit value, NN an 8 bit value and NNN a 12
// bit address.
const (
	None Operands = iota
	Address
	VxByte
	VxVy
	Vx
	IAddress
	V0Address
	VxVyNibble
)

// X returns the first register selector of the instruction word.
func X(opcode uint16) uint8 {
	return uint8(opcode>>8) & 0x0f
}

// Y returns the second register selector of the instruction word.
func Y(opcode uint16) uint8 {
	return uint8(opcode>>4) & 0x0f
}

// N returns the low nibble of the instruction word.
func N(opcode uint16) uint8 {
	return uint8(opcode) & 0x0f
}

// NN returns the low byte of the instruction word.
func NN(opcode uint16) uint8 {
	return uint8(opcode)
}

// NNN returns the low 12 bits of the instruction word.
func NNN(opcode uint16) uint16 {
	return opcode & 0x0fff
}
