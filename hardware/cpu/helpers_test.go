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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/hardware/timers"
)

// fixedRandom always returns the same number
type fixedRandom uint8

func (r fixedRandom) Byte() uint8 {
	return uint8(r)
}

type testMachine struct {
	prefs *preferences.Preferences
	mem   *memory.Memory
	fb    *display.Framebuffer
	keys  *keypad.Keypad
	tmr   *timers.Timers
	mc    *cpu.CPU
}

func newTestMachine(t *testing.T) *testMachine {
	t.Helper()

	prefs, err := preferences.NewPreferences()
	if err != nil {
		t.Fatal(err)
	}

	m := &testMachine{
		prefs: prefs,
		mem:   memory.NewMemory(),
		fb:    display.NewFramebuffer(),
		keys:  &keypad.Keypad{},
		tmr:   &timers.Timers{},
	}
	m.mc = cpu.NewCPU(m.prefs, m.mem, m.fb, m.keys, m.tmr, fixedRandom(0xa5))

	return m
}

// putInstructions writes the instruction words to memory starting at the
// origin and returns the address after the last instruction
func (m *testMachine) putInstructions(origin uint16, opcodes ...uint16) uint16 {
	for _, op := range opcodes {
		m.mem.Write(origin, uint8(op>>8))
		m.mem.Write(origin+1, uint8(op))
		origin += 2
	}
	return origin
}

// run places the instruction at the program counter and executes it
func (m *testMachine) run(t *testing.T, opcode uint16) cpu.Result {
	t.Helper()
	m.putInstructions(m.mc.PC, opcode)
	return step(t, m.mc)
}

func step(t *testing.T, mc *cpu.CPU) cpu.Result {
	t.Helper()
	err := mc.ExecuteInstruction()
	if err != nil {
		t.Fatal(err)
	}
	return mc.LastResult
}
