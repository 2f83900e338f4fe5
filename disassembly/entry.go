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

package disassembly

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// EntryLevel describes the level of the Entry.
type EntryLevel int

// List of valid EntryLevel in increasing reliability.
//
// Decoded entries have been decoded as though every word is a valid
// instruction. Blessed entries have been reached according to the flow of the
// instructions from the origin.
const (
	EntryLevelDecoded EntryLevel = iota
	EntryLevelBlessed
)

func (l EntryLevel) String() string {
	switch l {
	case EntryLevelDecoded:
		return "decoded"
	case EntryLevelBlessed:
		return "blessed"
	}
	return "unknown level"
}

// Entry is a disassembled instruction.
type Entry struct {
	Level EntryLevel

	Address uint16
	Opcode  uint16

	// Defn is nil if the opcode is not a valid instruction
	Defn *instructions.Definition

	// the matching opcode in the retrogolib table. the Instruction field is
	// nil if the word is not an instruction that a program can usefully
	// reach. this includes SYS, which has no effect on the machine
	Op chip8.Opcode

	// string representations of the instruction
	Label    string
	Operator string
	Operand  string
}

func newEntry(address uint16, opcode uint16) *Entry {
	e := &Entry{
		Address: address,
		Opcode:  opcode,
	}

	var ok bool
	e.Defn, ok = instructions.Decode(opcode)
	if !ok {
		e.Operator = "??"
		e.Operand = fmt.Sprintf("$%04X", opcode)
		return e
	}

	e.Operand = e.Defn.FormatOperands(opcode)

	e.Op, ok = lookup(opcode)
	if !ok {
		e.Operator = e.Defn.Mnemonic
		return e
	}
	e.Operator = strings.ToUpper(e.Op.Instruction.Name)

	return e
}

// Bytecode returns the instruction word as it appears in memory.
func (e *Entry) Bytecode() string {
	return fmt.Sprintf("%02x %02x", uint8(e.Opcode>>8), uint8(e.Opcode))
}

// String returns a very basic representation of an Entry. Provided for
// convenience.
func (e *Entry) String() string {
	return strings.TrimSpace(fmt.Sprintf("%03X %s %s", e.Address, e.Operator, e.Operand))
}
