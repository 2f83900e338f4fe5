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
	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// lookup finds the opcode in the retrogolib table that matches the
// instruction word. Returns false if retrogolib does not recognise the word
// as an instruction.
func lookup(w uint16) (chip8.Opcode, bool) {
	for _, op := range chip8.Opcodes[int(w>>12)] {
		if op.Info.Mask&w == op.Info.Value {
			return op, op.Instruction != nil
		}
	}
	return chip8.Opcode{}, false
}

// how an instruction affects the flow of the program.
type flowType int

const (
	flowNext flowType = iota
	flowJump
	flowCall
	flowSkip
	flowDataRef

	// the next instruction can not be reached from this one. either a return
	// or a jump with a target that can only be known at runtime
	flowStop
)

// flowOf classifies the opcode using the instruction metadata in retrogolib.
func flowOf(op chip8.Opcode) flowType {
	if op.Instruction == nil {
		return flowStop
	}

	if chip8.SkipInstructions.Contains(op.Instruction.Name) {
		return flowSkip
	}

	switch chip8.NameToOpcodeID[op.Instruction.Name] {
	case chip8.Jp:
		if op.Info == chip8.Opcode1000 {
			return flowJump
		}
		return flowStop
	case chip8.Call:
		return flowCall
	case chip8.Ret:
		return flowStop
	case chip8.Ld:
		if op.Info == chip8.OpcodeA000 {
			return flowDataRef
		}
	}

	return flowNext
}
