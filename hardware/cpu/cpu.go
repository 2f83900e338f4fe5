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
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/hardware/timers"
)

// Memory defines the memory operations required by the CPU. Implementations
// should mask addresses to the size of memory.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
	Read16(address uint16) uint16
	ReadN(address uint16, n int) []uint8
}

// Display defines the framebuffer operations required by the CPU.
type Display interface {
	Clear()
	Draw(x, y uint8, sprite []uint8) bool
}

// Keypad defines the keypad operations required by the CPU.
type Keypad interface {
	IsPressed(key uint8) bool
	HighestPressed() (uint8, bool)
}

// Random is the source of numbers for the RND instruction.
type Random interface {
	Byte() uint8
}

// Register file dimensions.
const (
	NumRegisters = 16
	StackDepth   = 16

	// register VF is used as a flag by several instructions
	VF = 0x0f
)

// ResetAddress is the value of the program counter after a reset.
const ResetAddress = uint16(0x200)

// Sentinal errors returned by ExecuteInstruction().
const (
	UnknownInstruction = "cpu: unknown instruction (%04x) at %03x"
	StackOverflow      = "cpu: stack overflow calling %03x from %03x"
	StackUnderflow     = "cpu: stack underflow returning from %03x"
)

// CPU implements the interpreter's processor.
type CPU struct {
	prefs *preferences.Preferences

	mem  Memory
	fb   Display
	keys Keypad
	tmr  *timers.Timers
	rnd  Random

	V  [NumRegisters]uint8
	I  uint16
	PC uint16

	Stack [StackDepth]uint16
	SP    uint8

	State ControlState

	// last result. the Address field will be zero only if the CPU has just
	// been reset
	LastResult Result
}

// NewCPU is the preferred method of initialisation for the CPU structure.
// The CPU is reset before it is returned.
func NewCPU(prefs *preferences.Preferences, mem Memory, fb Display, keys Keypad, tmr *timers.Timers, rnd Random) *CPU {
	mc := &CPU{
		prefs: prefs,
		mem:   mem,
		fb:    fb,
		keys:  keys,
		tmr:   tmr,
		rnd:   rnd,
	}
	mc.Reset()
	return mc
}

func (mc *CPU) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("PC=%03x I=%03x SP=%x", mc.PC, mc.I, mc.SP))
	for i, v := range mc.V {
		s.WriteString(fmt.Sprintf(" V%X=%02x", i, v))
	}
	if mc.State != Ready {
		s.WriteString(fmt.Sprintf(" [%s]", mc.State))
	}
	return s.String()
}

// Reset clears all registers and the stack. The program counter is set to
// ResetAddress.
func (mc *CPU) Reset() {
	mc.LastResult.Reset()
	mc.V = [NumRegisters]uint8{}
	mc.I = 0
	mc.PC = ResetAddress
	mc.Stack = [StackDepth]uint16{}
	mc.SP = 0
	mc.State = Ready
}
