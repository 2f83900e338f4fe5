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

// the definitions are ordered by operator so that a definition can be found
// by indexing with the operator value
var definitions = [NumOperators]Definition{
	{Operator: Sys, Pattern: 0x0000, Mask: 0xf000, Mnemonic: "SYS", Operands: Address, Category: Machine},
	{Operator: Cls, Pattern: 0x00e0, Mask: 0xffff, Mnemonic: "CLS", Operands: None, Category: Graphics},
	{Operator: Ret, Pattern: 0x00ee, Mask: 0xffff, Mnemonic: "RET", Operands: None, Category: Subroutine},
	{Operator: Jp, Pattern: 0x1000, Mask: 0xf000, Mnemonic: "JP", Operands: Address, Category: Flow},
	{Operator: Call, Pattern: 0x2000, Mask: 0xf000, Mnemonic: "CALL", Operands: Address, Category: Subroutine},
	{Operator: SeVxByte, Pattern: 0x3000, Mask: 0xf000, Mnemonic: "SE", Operands: VxByte, Category: Skip},
	{Operator: SneVxByte, Pattern: 0x4000, Mask: 0xf000, Mnemonic: "SNE", Operands: VxByte, Category: Skip},
	{Operator: SeVxVy, Pattern: 0x5000, Mask: 0xf00f, Mnemonic: "SE", Operands: VxVy, Category: Skip},
	{Operator: LdVxByte, Pattern: 0x6000, Mask: 0xf000, Mnemonic: "LD", Operands: VxByte, Category: Register},
	{Operator: AddVxByte, Pattern: 0x7000, Mask: 0xf000, Mnemonic: "ADD", Operands: VxByte, Category: Register},
	{Operator: LdVxVy, Pattern: 0x8000, Mask: 0xf00f, Mnemonic: "LD", Operands: VxVy, Category: Register},
	{Operator: Or, Pattern: 0x8001, Mask: 0xf00f, Mnemonic: "OR", Operands: VxVy, Category: Register},
	{Operator: And, Pattern: 0x8002, Mask: 0xf00f, Mnemonic: "AND", Operands: VxVy, Category: Register},
	{Operator: Xor, Pattern: 0x8003, Mask: 0xf00f, Mnemonic: "XOR", Operands: VxVy, Category: Register},
	{Operator: AddVxVy, Pattern: 0x8004, Mask: 0xf00f, Mnemonic: "ADD", Operands: VxVy, Category: Register},
	{Operator: Sub, Pattern: 0x8005, Mask: 0xf00f, Mnemonic: "SUB", Operands: VxVy, Category: Register},
	{Operator: Shr, Pattern: 0x8006, Mask: 0xf00f, Mnemonic: "SHR", Operands: Vx, Category: Register},
	{Operator: Subn, Pattern: 0x8007, Mask: 0xf00f, Mnemonic: "SUBN", Operands: VxVy, Category: Register},
	{Operator: Shl, Pattern: 0x800e, Mask: 0xf00f, Mnemonic: "SHL", Operands: Vx, Category: Register},
	{Operator: SneVxVy, Pattern: 0x9000, Mask: 0xf00f, Mnemonic: "SNE", Operands: VxVy, Category: Skip},
	{Operator: LdI, Pattern: 0xa000, Mask: 0xf000, Mnemonic: "LD", Operands: IAddress, Category: Memory},
	{Operator: JpV0, Pattern: 0xb000, Mask: 0xf000, Mnemonic: "JP", Operands: V0Address, Category: Flow},
	{Operator: Rnd, Pattern: 0xc000, Mask: 0xf000, Mnemonic: "RND", Operands: VxByte, Category: Register},
	{Operator: Drw, Pattern: 0xd000, Mask: 0xf000, Mnemonic: "DRW", Operands: VxVyNibble, Category: Graphics},
	{Operator: Skp, Pattern: 0xe09e, Mask: 0xf0ff, Mnemonic: "SKP", Operands: Vx, Category: Skip},
	{Operator: Sknp, Pattern: 0xe0a1, Mask: 0xf0ff, Mnemonic: "SKNP", Operands: Vx, Category: Skip},
	{Operator: LdVxDT, Pattern: 0xf007, Mask: 0xf0ff, Mnemonic: "LD", Operands: Vx, Category: Timer},
	{Operator: LdVxK, Pattern: 0xf00a, Mask: 0xf0ff, Mnemonic: "LD", Operands: Vx, Category: Input},
	{Operator: LdDTVx, Pattern: 0xf015, Mask: 0xf0ff, Mnemonic: "LD", Operands: Vx, Category: Timer},
	{Operator: LdSTVx, Pattern: 0xf018, Mask: 0xf0ff, Mnemonic: "LD", Operands: Vx, Category: Timer},
	{Operator: AddIVx, Pattern: 0xf01e, Mask: 0xf0ff, Mnemonic: "ADD", Operands: Vx, Category: Memory},
	{Operator: LdFVx, Pattern: 0xf029, Mask: 0xf0ff, Mnemonic: "LD", Operands: Vx, Category: Memory},
	{Operator: LdBVx, Pattern: 0xf033, Mask: 0xf0ff, Mnemonic: "LD", Operands: Vx, Category: Memory},
	{Operator: LdIndirectVx, Pattern: 0xf055, Mask: 0xf0ff, Mnemonic: "LD", Operands: Vx, Category: Memory},
	{Operator: LdVxIndirect, Pattern: 0xf065, Mask: 0xf0ff, Mnemonic: "LD", Operands: Vx, Category: Memory},
}

// groups indexes the definitions by the high nibble of the instruction word.
// within a group, definitions with the most specific mask are first
var groups [16][]*Definition

func init() {
	for i := range definitions {
		defn := &definitions[i]
		g := defn.Pattern >> 12
		groups[g] = append(groups[g], defn)
	}

	// SYS matches every word in group zero so it must come after CLS and RET
	groups[0] = []*Definition{&definitions[Cls], &definitions[Ret], &definitions[Sys]}
}

// Lookup returns the definition for the operator.
func Lookup(op Operator) *Definition {
	if op < 0 || op >= NumOperators {
		return nil
	}
	return &definitions[op]
}

// Decode returns the definition for the instruction word. The boolean is
// false if the word is not a valid instruction.
func Decode(opcode uint16) (*Definition, bool) {
	for _, defn := range groups[opcode>>12] {
		if defn.Matches(opcode) {
			return defn, true
		}
	}
	return nil, false
}
