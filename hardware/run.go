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
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/govern"
)

// Run sets the emulation running as quickly as possible. The timers are
// ticked once for every Frame() worth of instructions.
//
// The continueCheck function is called after every instruction. Running
// continues until continueCheck returns the Ending or Initialising state, or
// an error. In the Paused state the machine is not stepped but continueCheck
// is still called.
// A nil continueCheck runs the machine until an error occurs.
func (m *Machine) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	var err error
	var count int

	state := govern.Running

	for state != govern.Ending && state != govern.Initialising {
		switch state {
		case govern.Running:
			if err := m.Step(); err != nil {
				return err
			}
			count++
			if count >= m.Prefs.InstructionsPerTick() {
				count = 0
				m.TickTimers()
			}
		case govern.Paused:
		default:
			return curated.Errorf("hardware: unsupported emulation state (%s) in Run() function", state)
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForFrameCount runs the machine for the specified number of frames. See
// the Frame() function. The continueCheck function is called after every
// frame and can end the run early.
func (m *Machine) RunForFrameCount(numFrames int, continueCheck func(frame int) (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func(frame int) (govern.State, error) { return govern.Running, nil }
	}

	for frame := 1; frame <= numFrames; frame++ {
		if err := m.Frame(); err != nil {
			return err
		}

		state, err := continueCheck(frame)
		if err != nil {
			return err
		}
		if state == govern.Ending {
			break // for loop
		}
	}

	return nil
}
