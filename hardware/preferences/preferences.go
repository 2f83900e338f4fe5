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

package preferences

import (
	"fmt"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/prefs"
)

// Default values for the hardware preferences.
const (
	DefaultClockHz = 540
	DefaultTimerHz = 60
)

// Sentinal error returned when a preference is given an unusable value.
const (
	InvalidRate = "preferences: %s must be a positive value (%d)"
)

// Preferences defines and collates all the preference values used by the
// hardware.
type Preferences struct {
	// the number of instructions executed every second
	ClockHz prefs.Int

	// the rate at which the delay and sound timers are decremented. the run
	// loop presents the display at the same rate
	TimerHz prefs.Int

	// unknown instructions are normally skipped with a log entry. with
	// StrictDecode the instruction returns an error and the emulation stops
	StrictDecode prefs.Bool

	// seed for the random number source. zero means seed with the time
	RandSeed prefs.Int
}

func (p *Preferences) String() string {
	return fmt.Sprintf("clock=%sHz timer=%sHz strict=%s seed=%s",
		p.ClockHz.String(), p.TimerHz.String(),
		p.StrictDecode.String(), p.RandSeed.String())
}

// command line keys for each preference
var keys = map[string]func(p *Preferences) prefs.Pref{
	"hardware.clock":  func(p *Preferences) prefs.Pref { return &p.ClockHz },
	"hardware.timer":  func(p *Preferences) prefs.Pref { return &p.TimerHz },
	"hardware.strict": func(p *Preferences) prefs.Pref { return &p.StrictDecode },
	"hardware.seed":   func(p *Preferences) prefs.Pref { return &p.RandSeed },
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are set to the defaults and then to any value found
// on the command line stack.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}

	positive := func(name string) func(prefs.Value) error {
		return func(v prefs.Value) error {
			if v.(int) <= 0 {
				return curated.Errorf(InvalidRate, name, v.(int))
			}
			return nil
		}
	}
	p.ClockHz.SetHookPre(positive("clock"))
	p.TimerHz.SetHookPre(positive("timer"))

	p.SetDefaults()

	for k, f := range keys {
		if ok, v := prefs.GetCommandLinePref(k); ok {
			if err := f(p).Set(v); err != nil {
				return nil, curated.Errorf("preferences: %v: %v", k, err)
			}
		}
	}

	return p, nil
}

// SetDefaults reverts all hardware preferences to the default values.
func (p *Preferences) SetDefaults() {
	_ = p.ClockHz.Set(DefaultClockHz)
	_ = p.TimerHz.Set(DefaultTimerHz)
	_ = p.StrictDecode.Set(false)
	_ = p.RandSeed.Set(0)
}

// InstructionsPerTick returns the number of instructions that should be
// executed between each tick of the timers. The value is never less than one.
func (p *Preferences) InstructionsPerTick() int {
	n := p.ClockHz.Get().(int) / p.TimerHz.Get().(int)
	if n < 1 {
		return 1
	}
	return n
}
