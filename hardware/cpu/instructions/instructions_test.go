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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/test"
)

func TestDefinitionTable(t *testing.T) {
	test.DemandEquality(t, int(instructions.NumOperators), 35)

	for op := range instructions.NumOperators {
		defn := instructions.Lookup(op)
		test.DemandSuccess(t, defn != nil, op)
		test.ExpectEquality(t, defn.Operator, op, defn)

		// the pattern of each definition decodes to the same definition
		d, ok := instructions.Decode(defn.Pattern)
		test.ExpectSuccess(t, ok, defn)
		test.ExpectEquality(t, d, defn, defn)
	}

	test.ExpectEquality(t, instructions.Lookup(instructions.NumOperators), (*instructions.Definition)(nil))
	test.ExpectEquality(t, instructions.Lookup(-1), (*instructions.Definition)(nil))
}

func TestDecodeAllWords(t *testing.T) {
	counts := make(map[instructions.Operator]int)
	var unknown int

	for w := range 0x10000 {
		defn, ok := instructions.Decode(uint16(w))
		if !ok {
			unknown++
			continue
		}
		counts[defn.Operator]++
	}

	// every operator is reachable
	test.ExpectEquality(t, len(counts), int(instructions.NumOperators))

	// the number of words that decode to each operator depends on the size
	// of its operand fields
	test.ExpectEquality(t, counts[instructions.Cls], 1)
	test.ExpectEquality(t, counts[instructions.Ret], 1)
	test.ExpectEquality(t, counts[instructions.Sys], 0x1000-2)
	test.ExpectEquality(t, counts[instructions.Jp], 0x1000)
	test.ExpectEquality(t, counts[instructions.SeVxVy], 0x100)
	test.ExpectEquality(t, counts[instructions.AddVxVy], 0x100)
	test.ExpectEquality(t, counts[instructions.Skp], 0x10)
	test.ExpectEquality(t, counts[instructions.LdVxIndirect], 0x10)

	// groups 5 and 9 have fifteen unused low nibbles, group 8 has seven,
	// group E has 254 unused low bytes and group F has 247
	expectedUnknown := 0x100*15 + 0x100*15 + 0x100*7 + 0x10*254 + 0x10*247
	test.ExpectEquality(t, unknown, expectedUnknown)
}

func TestDecodeUnknown(t *testing.T) {
	for _, w := range []uint16{0x5121, 0x9ab7, 0x8008, 0x800f, 0xe000, 0xe1a2, 0xf000, 0xf0ff} {
		_, ok := instructions.Decode(w)
		test.ExpectFailure(t, ok, w)
	}
}

func TestOperands(t *testing.T) {
	test.ExpectEquality(t, instructions.X(0xd123), 0x1)
	test.ExpectEquality(t, instructions.Y(0xd123), 0x2)
	test.ExpectEquality(t, instructions.N(0xd123), 0x3)
	test.ExpectEquality(t, instructions.NN(0xd123), 0x23)
	test.ExpectEquality(t, instructions.NNN(0xd123), 0x123)
}

func TestDefinitionString(t *testing.T) {
	tests := []struct {
		op       instructions.Operator
		expected string
	}{
		{instructions.Sys, "0NNN SYS addr"},
		{instructions.Cls, "00E0 CLS"},
		{instructions.Jp, "1NNN JP addr"},
		{instructions.SeVxByte, "3XNN SE Vx, byte"},
		{instructions.AddVxVy, "8XY4 ADD Vx, Vy"},
		{instructions.Shr, "8XY6 SHR Vx"},
		{instructions.Shl, "8XYE SHL Vx"},
		{instructions.LdI, "ANNN LD I, addr"},
		{instructions.JpV0, "BNNN JP V0, addr"},
		{instructions.Drw, "DXYN DRW Vx, Vy, nibble"},
		{instructions.Skp, "EX9E SKP Vx"},
		{instructions.LdVxK, "FX0A LD Vx, K"},
		{instructions.LdIndirectVx, "FX55 LD [I], Vx"},
	}

	for _, tt := range tests {
		test.ExpectEquality(t, instructions.Lookup(tt.op).String(), tt.expected)
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		opcode   uint16
		expected string
	}{
		{0x00e0, "CLS"},
		{0x00ee, "RET"},
		{0x0123, "SYS $123"},
		{0x1208, "JP $208"},
		{0x2abc, "CALL $ABC"},
		{0x3a05, "SE VA, $05"},
		{0x5ab0, "SE VA, VB"},
		{0x8346, "SHR V3"},
		{0xa050, "LD I, $050"},
		{0xb300, "JP V0, $300"},
		{0xc7ff, "RND V7, $FF"},
		{0xd125, "DRW V1, V2, $5"},
		{0xe4a1, "SKNP V4"},
		{0xf207, "LD V2, DT"},
		{0xf515, "LD DT, V5"},
		{0xf129, "LD F, V1"},
		{0xfc33, "LD B, VC"},
		{0xf355, "LD [I], V3"},
		{0xf365, "LD V3, [I]"},
		{0xf11e, "ADD I, V1"},
	}

	for _, tt := range tests {
		defn, ok := instructions.Decode(tt.opcode)
		test.DemandSuccess(t, ok, tt.opcode)
		test.ExpectEquality(t, defn.Format(tt.opcode), tt.expected)
	}
}
