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

import (
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/logger"
)

func boolToFlag(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// ExecuteInstruction fetches, decodes and executes the instruction at the
// program counter.
//
// An error is returned on stack overflow or underflow and, if the
// StrictDecode preference is set, for unknown instructions and machine code
// routines (SYS). The program counter is unchanged in all these cases.
// Without StrictDecode, both are logged and skipped.
func (mc *CPU) ExecuteInstruction() error {
	opcode := mc.mem.Read16(mc.PC)

	mc.LastResult = Result{
		Address: mc.PC,
		Opcode:  opcode,
	}

	defn, ok := instructions.Decode(opcode)
	if !ok {
		if mc.prefs.StrictDecode.Get().(bool) {
			return curated.Errorf(UnknownInstruction, opcode, mc.PC)
		}
		logger.Logf(logger.Allow, "cpu", "unknown instruction (%04x) at %03x", opcode, mc.PC)
		mc.PC = (mc.PC + 2) & memory.AddressMask
		mc.LastResult.Final = true
		return nil
	}

	mc.LastResult.Defn = defn

	x := instructions.X(opcode)
	y := instructions.Y(opcode)
	nn := instructions.NN(opcode)
	nnn := instructions.NNN(opcode)

	// the address of the next instruction. the program counter is only
	// updated once the instruction has completed
	pc := mc.PC + 2

	skipIf := func(cond bool) {
		if cond {
			pc += 2
			mc.LastResult.Skipped = true
		}
	}

	switch defn.Operator {
	case instructions.Sys:
		if mc.prefs.StrictDecode.Get().(bool) {
			return curated.Errorf(UnknownInstruction, opcode, mc.PC)
		}
		logger.Logf(logger.Allow, "cpu", "machine code routine at %03x ignored", nnn)

	case instructions.Cls:
		mc.fb.Clear()

	case instructions.Ret:
		if mc.SP == 0 {
			return curated.Errorf(StackUnderflow, mc.PC)
		}
		mc.SP--
		pc = mc.Stack[mc.SP] + 2

	case instructions.Jp:
		pc = nnn

	case instructions.Call:
		if mc.SP >= StackDepth {
			return curated.Errorf(StackOverflow, nnn, mc.PC)
		}
		mc.Stack[mc.SP] = mc.PC
		mc.SP++
		pc = nnn

	case instructions.SeVxByte:
		skipIf(mc.V[x] == nn)

	case instructions.SneVxByte:
		skipIf(mc.V[x] != nn)

	case instructions.SeVxVy:
		skipIf(mc.V[x] == mc.V[y])

	case instructions.SneVxVy:
		skipIf(mc.V[x] != mc.V[y])

	case instructions.LdVxByte:
		mc.V[x] = nn

	case instructions.AddVxByte:
		mc.V[x] += nn

	case instructions.LdVxVy:
		mc.V[x] = mc.V[y]

	case instructions.Or:
		mc.V[x] |= mc.V[y]

	case instructions.And:
		mc.V[x] &= mc.V[y]

	case instructions.Xor:
		mc.V[x] ^= mc.V[y]

	// for the following arithmetic instructions the flag is written after
	// the result so that the flag is kept when x is VF

	case instructions.AddVxVy:
		sum := uint16(mc.V[x]) + uint16(mc.V[y])
		mc.V[x] = uint8(sum)
		mc.V[VF] = boolToFlag(sum > 0xff)

	case instructions.Sub:
		vx, vy := mc.V[x], mc.V[y]
		mc.V[x] = vx - vy
		mc.V[VF] = boolToFlag(vx >= vy)

	case instructions.Shr:
		vx := mc.V[x]
		mc.V[x] = vx >> 1
		mc.V[VF] = vx & 0x01

	case instructions.Subn:
		vx, vy := mc.V[x], mc.V[y]
		mc.V[x] = vy - vx
		mc.V[VF] = boolToFlag(vy >= vx)

	case instructions.Shl:
		vx := mc.V[x]
		mc.V[x] = vx << 1
		mc.V[VF] = vx >> 7

	case instructions.LdI:
		mc.I = nnn

	case instructions.JpV0:
		pc = nnn + uint16(mc.V[0])

	case instructions.Rnd:
		mc.V[x] = mc.rnd.Byte() & nn

	case instructions.Drw:
		sprite := mc.mem.ReadN(mc.I, int(instructions.N(opcode)))
		mc.V[VF] = boolToFlag(mc.fb.Draw(mc.V[x], mc.V[y], sprite))

	case instructions.Skp:
		skipIf(mc.keys.IsPressed(mc.V[x]))

	case instructions.Sknp:
		skipIf(!mc.keys.IsPressed(mc.V[x]))

	case instructions.LdVxDT:
		mc.V[x] = mc.tmr.Delay

	case instructions.LdVxK:
		k, ok := mc.keys.HighestPressed()
		if !ok {
			mc.State = AwaitingKey
			mc.LastResult.Blocked = true
			return nil
		}
		mc.State = Ready
		mc.V[x] = k

	case instructions.LdDTVx:
		mc.tmr.Delay = mc.V[x]

	case instructions.LdSTVx:
		mc.tmr.Sound = mc.V[x]

	case instructions.AddIVx:
		i := mc.I + uint16(mc.V[x])
		mc.I = i
		mc.V[VF] = boolToFlag(i > memory.AddressMask)

	case instructions.LdFVx:
		mc.I = memory.GlyphAddress(mc.V[x])

	case instructions.LdBVx:
		v := mc.V[x]
		mc.mem.Write(mc.I, v/100)
		mc.mem.Write(mc.I+1, (v/10)%10)
		mc.mem.Write(mc.I+2, v%10)

	case instructions.LdIndirectVx:
		for r := range uint16(x) + 1 {
			mc.mem.Write(mc.I+r, mc.V[r])
		}
		mc.I += uint16(x) + 1

	case instructions.LdVxIndirect:
		for r := range uint16(x) + 1 {
			mc.V[r] = mc.mem.Read(mc.I + r)
		}
		mc.I += uint16(x) + 1

	default:
		return curated.Errorf("cpu: operator %d has no implementation", defn.Operator)
	}

	mc.PC = pc & memory.AddressMask
	mc.LastResult.Final = true

	return nil
}
