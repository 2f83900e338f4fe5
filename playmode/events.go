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
	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/userinput"
)

// eventHandler drains all pending user input and changes the emulation state
// accordingly.
func (pl *playmode) eventHandler() error {
	var events <-chan userinput.Event
	if pl.scr != nil {
		events = pl.scr.UserInput()
	}

	for {
		select {
		case <-pl.intChan:
			logger.Log(logger.Allow, "playmode", "interrupted")
			pl.state = govern.Ending
			return nil

		case ev := <-events:
			err := pl.userInputHandler(ev)
			if err != nil {
				return err
			}

		default:
			return nil
		}
	}
}

func (pl *playmode) userInputHandler(ev userinput.Event) error {
	switch pl.controllers.HandleUserInput(ev, pl.m.Keypad) {
	case userinput.Quit:
		pl.state = govern.Ending

	case userinput.Reset:
		// the state is not changed. a paused emulation stays paused
		err := pl.loader.Attach(pl.m)
		if err != nil {
			return err
		}
		logger.Log(logger.Allow, "playmode", "machine reset")

	case userinput.Pause:
		switch pl.state {
		case govern.Running:
			pl.state = govern.Paused
		case govern.Paused:
			pl.state = govern.Running
		}
		logger.Logf(logger.Allow, "playmode", "emulation %s", pl.state)
	}

	return nil
}
