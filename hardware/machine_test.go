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

package hardware_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/test"
)

func newMachine(t *testing.T) *hardware.Machine {
	t.Helper()
	m, err := hardware.NewMachine(nil)
	test.DemandSuccess(t, err)
	return m
}

func program(opcodes ...uint16) []uint8 {
	b := make([]uint8, 0, len(opcodes)*2)
	for _, op := range opcodes {
		b = append(b, uint8(op>>8), uint8(op))
	}
	return b
}

func TestReset(t *testing.T) {
	m := newMachine(t)

	test.ExpectSuccess(t, m.LoadProgram(program(0x6005, 0xa300, 0xd125)))
	m.Keypad.Press(3)
	m.Timers.Delay = 10
	for range 3 {
		test.ExpectSuccess(t, m.Step())
	}
	m.Display.ConsumeRedraw()

	m.Reset()
	test.ExpectEquality(t, m.CPU.PC, 0x200)
	test.ExpectEquality(t, m.CPU.SP, 0)
	test.ExpectEquality(t, m.CPU.I, 0)
	test.ExpectEquality(t, m.CPU.V, [cpu.NumRegisters]uint8{})
	test.ExpectEquality(t, m.Display.Pixels(), [display.Height][display.Width]uint8{})
	test.ExpectSuccess(t, m.Display.ConsumeRedraw())
	test.ExpectFailure(t, m.Keypad.IsPressed(3))
	test.ExpectEquality(t, m.Timers.Delay, 0)

	for i, b := range memory.Font {
		test.ExpectEquality(t, m.Mem.Read(memory.FontOrigin+uint16(i)), b, i)
	}
	test.ExpectEquality(t, m.Mem.Read(0x200), 0)
}

func TestLoad(t *testing.T) {
	m := newMachine(t)

	data := make([]uint8, 3584)
	data[0] = 0x12
	data[3583] = 0x34
	test.ExpectSuccess(t, m.LoadProgram(data))
	test.ExpectEquality(t, m.Mem.Read(0x200), 0x12)
	test.ExpectEquality(t, m.Mem.Read(0xfff), 0x34)

	m.Reset()
	data = make([]uint8, 3585)
	data[0] = 0x12
	err := m.LoadProgram(data)
	test.ExpectSuccess(t, curated.Is(err, memory.ProgramTooLarge))
	test.ExpectEquality(t, m.Mem.Read(0x200), 0)

	// loading at another origin
	test.ExpectSuccess(t, m.Load([]uint8{0xab}, 0x300))
	test.ExpectEquality(t, m.Mem.Read(0x300), 0xab)
}

// the glyph for the digit 5 in the font
var glyph5 = [5]uint8{0xf0, 0x80, 0xf0, 0x10, 0xf0}

func TestDrawGlyph(t *testing.T) {
	m := newMachine(t)

	// LD V0, 5; LD F, V0; DRW V1, V2, 5; JP 206
	test.DemandSuccess(t, m.LoadProgram(program(0x6005, 0xf029, 0xd125, 0x1206)))
	test.ExpectSuccess(t, m.Display.ConsumeRedraw())

	var redraws int
	for range 20 {
		test.DemandSuccess(t, m.Step())
		if m.Display.ConsumeRedraw() {
			redraws++
		}
	}

	// the redraw flag is set once by the draw and never again by the jump
	test.ExpectEquality(t, redraws, 1)
	test.ExpectEquality(t, m.CPU.PC, 0x206)
	test.ExpectEquality(t, m.CPU.V[cpu.VF], 0)

	for y := range display.Height {
		for x := range display.Width {
			var expected uint8
			if x < 8 && y < 5 && glyph5[y]&(0x80>>x) != 0 {
				expected = 1
			}
			test.ExpectEquality(t, m.Display.Pixel(x, y), expected, x, y)
		}
	}

	dots := strings.Repeat(".", display.Width-4) + "\n"
	expected := "####" + dots +
		"#..." + dots +
		"####" + dots +
		"...#" + dots +
		"####" + dots
	test.ExpectEquality(t, m.Display.String()[:len(expected)], expected)
}

func TestRun(t *testing.T) {
	m := newMachine(t)

	// ADD V0, 1; JP 200
	test.DemandSuccess(t, m.LoadProgram(program(0x7001, 0x1200)))
	m.Timers.Delay = 0xff

	var steps int
	err := m.Run(func() (govern.State, error) {
		steps++
		if steps >= 100 {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, m.CPU.V[0], 50)

	// the timers are ticked once every nine instructions
	test.ExpectEquality(t, m.Timers.Delay, 0xff-100/9)

	// the paused state doesn't step the machine
	steps = 0
	err = m.Run(func() (govern.State, error) {
		steps++
		if steps >= 10 {
			return govern.Ending, nil
		}
		return govern.Paused, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, m.CPU.V[0], 51)
}

func TestRunError(t *testing.T) {
	m := newMachine(t)

	// RET with nothing on the stack
	test.DemandSuccess(t, m.LoadProgram(program(0x00ee)))
	err := m.Run(nil)
	test.ExpectSuccess(t, curated.Is(err, cpu.StackUnderflow))
}

func TestRunForFrameCount(t *testing.T) {
	prefs, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, prefs.ClockHz.Set(600))

	m, err := hardware.NewMachine(prefs)
	test.DemandSuccess(t, err)

	// ADD V0, 1; JP 200
	test.DemandSuccess(t, m.LoadProgram(program(0x7001, 0x1200)))
	m.Timers.Sound = 3

	var frames int
	err = m.RunForFrameCount(4, func(frame int) (govern.State, error) {
		frames = frame
		return govern.Running, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, frames, 4)

	// ten instructions per frame
	test.ExpectEquality(t, m.CPU.V[0], 20)
	test.ExpectEquality(t, m.Timers.Sound, 0)
	test.ExpectFailure(t, m.Timers.Sounding())

	// ending early
	err = m.RunForFrameCount(10, func(frame int) (govern.State, error) {
		frames = frame
		if frame == 2 {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, frames, 2)
}

func TestWaitKeyTimers(t *testing.T) {
	m := newMachine(t)

	// LD V3, K
	test.DemandSuccess(t, m.LoadProgram(program(0xf30a)))
	m.Timers.Delay = 5

	// timers continue to run while waiting for a key
	for range 3 {
		test.ExpectSuccess(t, m.Frame())
	}
	test.ExpectEquality(t, m.CPU.State, cpu.AwaitingKey)
	test.ExpectEquality(t, m.CPU.PC, 0x200)
	test.ExpectEquality(t, m.Timers.Delay, 2)

	m.Keypad.Press(0x7)
	test.ExpectSuccess(t, m.Step())
	test.ExpectEquality(t, m.CPU.State, cpu.Ready)
	test.ExpectEquality(t, m.CPU.V[3], 7)
}

func TestSeededRandom(t *testing.T) {
	prefs, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, prefs.RandSeed.Set(1234))

	// RND V0, FF; RND V1, FF; RND V2, FF
	prog := program(0xc0ff, 0xc1ff, 0xc2ff)

	run := func() [3]uint8 {
		m, err := hardware.NewMachine(prefs)
		test.DemandSuccess(t, err)
		test.DemandSuccess(t, m.LoadProgram(prog))
		for range 3 {
			test.DemandSuccess(t, m.Step())
		}
		return [3]uint8{m.CPU.V[0], m.CPU.V[1], m.CPU.V[2]}
	}

	test.ExpectEquality(t, run(), run())
}
