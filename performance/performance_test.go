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
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/programloader"
	"github.com/jetsetilly/gopher8/test"
)

func TestCalcFPS(t *testing.T) {
	fps, accuracy := CalcFPS(60, 120, 2.0)
	test.ExpectEquality(t, fps, 60.0)
	test.ExpectEquality(t, accuracy, 100.0)

	fps, accuracy = CalcFPS(60, 60, 2.0)
	test.ExpectEquality(t, fps, 30.0)
	test.ExpectEquality(t, accuracy, 50.0)

	fps, accuracy = CalcFPS(60, 60, 0)
	test.ExpectEquality(t, fps, 0.0)
	test.ExpectEquality(t, accuracy, 0.0)
}

func TestParseProfileString(t *testing.T) {
	p, err := ParseProfileString("none")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, ProfileNone)

	p, err = ParseProfileString("cpu, trace")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, ProfileCPU|ProfileTrace)
	test.ExpectEquality(t, p.String(), "CPU,TRACE")

	p, err = ParseProfileString("ALL")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, ProfileAll)

	_, err = ParseProfileString("cpu,disk")
	test.ExpectSuccess(t, curated.Is(err, UnknownProfile))
}

func TestCheck(t *testing.T) {
	m, err := hardware.NewMachine(nil)
	test.DemandSuccess(t, err)

	// an infinite loop
	loader := programloader.Loader{Filename: "loop.ch8", Data: []uint8{0x70, 0x01, 0x12, 0x00}}

	w := &test.CompareWriter{}
	err = check(w, ProfileNone, m, loader, "100ms", 10*time.Millisecond)
	test.DemandSuccess(t, err)

	lines := strings.Split(strings.TrimSpace(w.String()), "\n")
	test.DemandEquality(t, len(lines), 2)
	test.ExpectSuccess(t, strings.HasSuffix(lines[0], "%"))
	test.ExpectSuccess(t, strings.Contains(lines[0], "fps ("))
	test.ExpectSuccess(t, strings.Contains(lines[1], "instructions ("))

	// the machine really did run
	var n int
	_, err = fmt.Sscanf(lines[1], "%d instructions", &n)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, n > 0)
}

func TestCheckErrors(t *testing.T) {
	m, err := hardware.NewMachine(nil)
	test.DemandSuccess(t, err)

	w := &test.CompareWriter{}

	err = check(w, ProfileNone, m, programloader.Loader{}, "100ms", 0)
	test.ExpectSuccess(t, curated.Is(err, ProfilingError))
	test.ExpectSuccess(t, curated.Has(err, programloader.ProgramNotLoaded))

	loader := programloader.Loader{Filename: "loop.ch8", Data: []uint8{0x12, 0x00}}
	err = check(w, ProfileNone, m, loader, "forever", 0)
	test.ExpectSuccess(t, curated.Is(err, ProfilingError))

	err = check(w, ProfileNone, m, loader, "-1s", 0)
	test.ExpectSuccess(t, curated.Is(err, InvalidDuration))

	// nothing was written for the failed checks
	test.ExpectEquality(t, w.String(), "")
}
