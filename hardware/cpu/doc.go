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

// Package cpu emulates the interpreter's processor: sixteen 8 bit registers,
// the 16 bit index register I, the program counter and a call stack sixteen
// entries deep.
//
// The bread-and-butter of the CPU type is the ExecuteInstruction() function.
// Each call fetches the two byte instruction word at the program counter,
// decodes it with the instructions package and performs its effect. For
// example, with mem an implementation of the Memory interface:
//
//	mc := cpu.NewCPU(prefs, mem, fb, keys, tmr, rnd)
//	mc.Reset()
//
//	for {
//		if err := mc.ExecuteInstruction(); err != nil {
//			return err
//		}
//	}
//
// The only instruction that can fail to complete is FX0A, which waits for a
// key to be pressed. If no key is pressed then the program counter is not
// advanced and the CPU is put into the AwaitingKey state. The next call to
// ExecuteInstruction() will try the instruction again.
//
// The LastResult field can be inspected for information about the most recent
// instruction. Very useful for debugging and testing.
package cpu
