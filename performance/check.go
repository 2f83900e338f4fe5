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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/programloader"
)

// sentinal error returned by Run() loop.
var timedOut = errors.New("performance timed out")

// only check for the end of the measurement period every performanceBrake
// instructions. checking the timer channel is relatively expensive
const performanceBrake = 100

// the time given to the emulation to settle down before measurement begins.
const leadTime = 2 * time.Second

// Check the performance of the emulator using the supplied program. The
// machine runs as fast as it can for the specified duration.
//
// Emulation will create a cpu, memory profile, a trace (or a combination of
// those) as defined by the Profile argument.
func Check(output io.Writer, profile Profile, m *hardware.Machine, loader programloader.Loader, duration string) error {
	return check(output, profile, m, loader, duration, leadTime)
}

func check(output io.Writer, profile Profile, m *hardware.Machine, loader programloader.Loader, duration string, lead time.Duration) error {
	err := loader.Attach(m)
	if err != nil {
		return curated.Errorf(ProfilingError, err)
	}

	// parse supplied duration
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf(ProfilingError, err)
	}
	if dur <= 0 {
		return curated.Errorf(InvalidDuration, duration)
	}

	var instructions int
	var measuring bool

	// run for specified period of time
	runner := func() error {
		// setup trigger that expires when duration has elapsed. signals true
		// when duration has expired. signals false to indicate that
		// performance measurement should start
		timerChan := make(chan bool, 2)

		time.AfterFunc(lead, func() {
			timerChan <- false
			time.AfterFunc(dur, func() {
				timerChan <- true
			})
		})

		brake := 0

		// run until specified time elapses
		return m.Run(func() (govern.State, error) {
			if measuring {
				instructions++
			}

			brake++
			if brake < performanceBrake {
				return govern.Running, nil
			}
			brake = 0

			select {
			case v := <-timerChan:
				// timerChan has returned true, which means measurement
				// period has finished
				if v {
					return govern.Ending, timedOut
				}

				// timerChan has returned false which indicates that the
				// leadtime has concluded
				measuring = true
			default:
			}

			return govern.Running, nil
		})
	}

	// launch runner directly or through the profiler, depending on
	// supplied arguments
	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return curated.Errorf(ProfilingError, err)
	}

	numFrames := instructions / m.Prefs.InstructionsPerTick()
	timerHz := m.Prefs.TimerHz.Get().(int)
	fps, accuracy := CalcFPS(timerHz, numFrames, dur.Seconds())
	output.Write([]byte(fmt.Sprintf("%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, dur.Seconds(), accuracy)))
	output.Write([]byte(fmt.Sprintf("%d instructions (%.0f per second)\n", instructions, float64(instructions)/dur.Seconds())))

	return nil
}
