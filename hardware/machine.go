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

package hardware

import (
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/hardware/timers"
	"github.com/jetsetilly/gopher8/random"
)

// Machine is the main container for the emulated components.
type Machine struct {
	Prefs *preferences.Preferences

	CPU     *cpu.CPU
	Mem     *memory.Memory
	Display *display.Framebuffer
	Keypad  *keypad.Keypad
	Timers  *timers.Timers
	Random  *random.Random
}

// NewMachine creates a new Machine and everything associated with the
// hardware. If prefs is nil then a new instance of the hardware preferences
// is created.
func NewMachine(prefs *preferences.Preferences) (*Machine, error) {
	if prefs == nil {
		var err error
		prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, err
		}
	}

	m := &Machine{
		Prefs:   prefs,
		Mem:     memory.NewMemory(),
		Display: display.NewFramebuffer(),
		Keypad:  &keypad.Keypad{},
		Timers:  &timers.Timers{},
		Random:  random.NewRandom(int64(prefs.RandSeed.Get().(int))),
	}
	m.CPU = cpu.NewCPU(m.Prefs, m.Mem, m.Display, m.Keypad, m.Timers, m.Random)

	m.Reset()

	return m, nil
}

func (m *Machine) String() string {
	return m.CPU.String()
}

// Reset returns every component to its initial state. Memory is zeroed and the
// font is written. The random number source is reseeded.
func (m *Machine) Reset() {
	m.Mem.Reset()
	m.CPU.Reset()
	m.Display.Clear()
	m.Keypad.Reset()
	m.Timers.Reset()
	m.Random.Reseed(int64(m.Prefs.RandSeed.Get().(int)))
}

// Load copies data into memory starting at origin. Returns an error if the
// data will not fit, in which case memory is not changed.
func (m *Machine) Load(data []uint8, origin uint16) error {
	return m.Mem.Load(data, origin)
}

// LoadProgram copies data into memory at the program origin.
func (m *Machine) LoadProgram(data []uint8) error {
	return m.Load(data, memory.ProgramOrigin)
}

// Step executes a single instruction. If the CPU is waiting for a key then
// the instruction is tried again.
func (m *Machine) Step() error {
	return m.CPU.ExecuteInstruction()
}

// TickTimers decrements the delay and sound timers. It should be called at the
// rate given by the TimerHz preference.
func (m *Machine) TickTimers() {
	m.Timers.Tick()
}

// Frame executes the number of instructions that fit between two ticks of the
// timers and then ticks the timers once.
func (m *Machine) Frame() error {
	for range m.Prefs.InstructionsPerTick() {
		if err := m.Step(); err != nil {
			return err
		}
	}
	m.TickTimers()
	return nil
}
