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

package playmode

import (
	"context"
	"os"
	"os/signal"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/performance/limiter"
	"github.com/jetsetilly/gopher8/programloader"
	"github.com/jetsetilly/gopher8/userinput"

	"golang.org/x/sync/errgroup"
)

type playmode struct {
	m           *hardware.Machine
	loader      programloader.Loader
	scr         gui.GUI
	controllers *userinput.Controllers

	state govern.State

	// whether the sound timer was active at the end of the last frame
	sounding bool

	// interrupt signals from the operating system
	intChan chan os.Signal
}

// Play the program supplied by the loader. The machine is reset before the
// program is attached.
//
// The scr argument can be nil, in which case the program runs without
// any presentation or user input until interrupted.
func Play(m *hardware.Machine, loader programloader.Loader, scr gui.GUI) error {
	pl := newPlaymode(m, loader, scr)

	err := pl.loader.Attach(pl.m)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	lmtr, err := limiter.NewFPSLimiter(m.Prefs.TimerHz.Get().(int))
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}
	defer lmtr.Stop()
	logger.Logf(logger.Allow, "playmode", "frame limit: %d fps", lmtr.Limit())

	signal.Notify(pl.intChan, os.Interrupt)
	defer signal.Stop(pl.intChan)

	grp, ctx := errgroup.WithContext(context.Background())
	ctx, cancel := context.WithCancel(ctx)

	if ir, ok := scr.(gui.InputReader); ok {
		grp.Go(func() error {
			return ir.ReadInput(ctx)
		})
	}

	grp.Go(func() error {
		// ending the loop for any reason must also end the input reader
		defer cancel()

		pl.state = govern.Running
		for {
			select {
			case <-ctx.Done():
				return nil
			default:
			}

			lmtr.Wait()

			done, err := pl.frame()
			if err != nil || done {
				return err
			}
		}
	})

	err = grp.Wait()
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	return nil
}

// the number of bytes of memory logged either side of the program counter
// when the emulation stops with an error.
const dumpLen = 0x10

// logMachine logs the registers and the memory around the program counter.
func logMachine(m *hardware.Machine) {
	pc := m.CPU.PC
	from := pc &^ (dumpLen - 1)
	if from >= dumpLen {
		from -= dumpLen
	}
	to := min(from+3*dumpLen-1, memory.Size-1)
	logger.Logf(logger.Allow, "playmode", "%s", m)
	for _, l := range strings.Split(m.Mem.Dump(from, to), "\n") {
		logger.Log(logger.Allow, "playmode", l)
	}
}

func newPlaymode(m *hardware.Machine, loader programloader.Loader, scr gui.GUI) *playmode {
	return &playmode{
		m:           m,
		loader:      loader,
		scr:         scr,
		controllers: userinput.NewControllers(),
		state:       govern.Initialising,
		intChan:     make(chan os.Signal, 1),
	}
}

// frame services user input and then runs the machine for one frame. returns
// true if the emulation should end.
func (pl *playmode) frame() (bool, error) {
	err := pl.eventHandler()
	if err != nil {
		return false, err
	}

	switch pl.state {
	case govern.Ending:
		return true, nil

	case govern.Running:
		err = pl.m.Frame()
		if err != nil {
			logMachine(pl.m)
			return false, err
		}
	}

	if pl.scr != nil && pl.m.Display.ConsumeRedraw() {
		err = pl.scr.Present(pl.m.Display)
		if err != nil {
			return false, err
		}
	}

	if si, ok := pl.scr.(gui.SoundIndicator); ok {
		sounding := pl.m.Timers.Sounding()
		if sounding != pl.sounding {
			pl.sounding = sounding
			err = si.IndicateSound(sounding)
			if err != nil {
				return false, err
			}
		}
	}

	return false, nil
}
