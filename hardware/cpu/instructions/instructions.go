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

import (
	"fmt"
	"strings"
)

// Operator identifies each definition in the instruction set.
type Operator int

// List of operators. The names combine the mnemonic with the operand format
// where the mnemonic alone is ambiguous.
const (
	Sys Operator = iota
	Cls
	Ret
	Jp
	Call
	SeVxByte
	SneVxByte
	SeVxVy
	LdVxByte
	AddVxByte
	LdVxVy
	Or
	And
	Xor
	AddVxVy
	Sub
	Shr
	Subn
	Shl
	SneVxVy
	LdI
	JpV0
	Rnd
	Drw
	Skp
	Sknp
	LdVxDT
	LdVxK
	LdDTVx
	LdSTVx
	AddIVx
	LdFVx
	LdBVx
	LdIndirectVx
	LdVxIndirect

	// the number of operators in the instruction set
	NumOperators
)

// Definition defines each instruction in the instruction set; one per
// operator.
type Definition struct {
	Operator Operator

	// the instruction word matches the definition if the word ANDed with
	// Mask equals Pattern
	Pattern uint16
	Mask    uint16

	Mnemonic string
	Operands Operands
	Category Category
}

// String returns the definition in the usual notation. For example,
// "8XY4 ADD Vx, Vy".
func (defn Definition) String() string {
	pat := []byte(fmt.Sprintf("%04X", defn.Pattern))
	for i := range pat {
		if (defn.Mask>>(12-i*4))&0x0f == 0 {
			pat[i] = 'N'
		}
	}

	// operand fields that are register selectors
	switch defn.Operands {
	case VxByte:
		pat[1] = 'X'
	case Vx:
		pat[1] = 'X'

		// the shift instructions ignore the Y field but it is still written
		if defn.Category == Register && pat[2] == 'N' {
			pat[2] = 'Y'
		}
	case VxVy, VxVyNibble:
		pat[1] = 'X'
		pat[2] = 'Y'
	}

	return strings.TrimSpace(fmt.Sprintf("%s %s %s", pat, defn.Mnemonic, defn.notation()))
}

func (defn Definition) notation() string {
	switch defn.Operands {
	case Address:
		return "addr"
	case VxByte:
		return "Vx, byte"
	case VxVy:
		return "Vx, Vy"
	case Vx:
		switch defn.Operator {
		case LdVxDT:
			return "Vx, DT"
		case LdVxK:
			return "Vx, K"
		case LdDTVx:
			return "DT, Vx"
		case LdSTVx:
			return "ST, Vx"
		case AddIVx:
			return "I, Vx"
		case LdFVx:
			return "F, Vx"
		case LdBVx:
			return "B, Vx"
		case LdIndirectVx:
			return "[I], Vx"
		case LdVxIndirect:
			return "Vx, [I]"
		}
		return "Vx"
	case IAddress:
		return "I, addr"
	case V0Address:
		return "V0, addr"
	case VxVyNibble:
		return "Vx, Vy, nibble"
	}
	return ""
}

// Format returns the instruction word as it would be written in assembly
// language. For example, "ADD V3, V4".
func (defn Definition) Format(opcode uint16) string {
	s := defn.FormatOperands(opcode)
	if s == "" {
		return defn.Mnemonic
	}
	return fmt.Sprintf("%s %s", defn.Mnemonic, s)
}

// FormatOperands returns the operands of the instruction word. For example,
// "V3, V4". Returns the empty string for instructions with no operands.
func (defn Definition) FormatOperands(opcode uint16) string {
	x := X(opcode)
	y := Y(opcode)

	var s string
	switch defn.Operands {
	case Address:
		s = fmt.Sprintf("$%03X", NNN(opcode))
	case VxByte:
		s = fmt.Sprintf("V%X, $%02X", x, NN(opcode))
	case VxVy:
		s = fmt.Sprintf("V%X, V%X", x, y)
	case Vx:
		s = strings.Replace(defn.notation(), "Vx", fmt.Sprintf("V%X", x), 1)
	case IAddress:
		s = fmt.Sprintf("I, $%03X", NNN(opcode))
	case V0Address:
		s = fmt.Sprintf("V0, $%03X", NNN(opcode))
	case VxVyNibble:
		s = fmt.Sprintf("V%X, V%X, $%X", x, y, N(opcode))
	}

	return s
}

// Matches returns true if the instruction word matches the definition.
func (defn Definition) Matches(opcode uint16) bool {
	return opcode&defn.Mask == defn.Pattern
}
