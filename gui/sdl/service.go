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

package sdl

import (
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/userinput"

	"github.com/veandco/go-sdl2/sdl"
)

// Service checks for SDL events and draws any pending pixels.
//
// MUST ONLY be called from the #mainthread
func (g *GUI) Service() {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		// close window
		case *sdl.QuitEvent:
			g.send(userinput.EventQuit{})

		case *sdl.KeyboardEvent:
			switch ev.Type {
			case sdl.KEYDOWN:
				g.send(userinput.EventKeyboard{
					Key:    sdl.GetKeyName(ev.Keysym.Sym),
					Down:   true,
					Repeat: ev.Repeat != 0,
				})
			case sdl.KEYUP:
				g.send(userinput.EventKeyboard{
					Key:  sdl.GetKeyName(ev.Keysym.Sym),
					Down: false,
				})
			}
		}
	}

	g.flush()

	g.crit.Lock()
	defer g.crit.Unlock()

	if g.titlePending {
		g.titlePending = false
		g.window.SetTitle(title(g.sounding))
	}

	if !g.pending {
		return
	}
	g.pending = false

	err := g.scr.update(g.pixels)
	if err != nil {
		logger.Log(logger.Allow, "sdl", err)
	}
}

// send queues the event for delivery by flush().
func (g *GUI) send(ev userinput.Event) {
	g.backlog = append(g.backlog, ev)
}

// flush delivers queued events to the emulation without blocking the
// #mainthread. if the channel is full then key presses are dropped. key
// releases and quit events are kept and delivered by a later call, otherwise
// a key could stay pressed forever.
func (g *GUI) flush() {
	for len(g.backlog) > 0 {
		select {
		case g.userinput <- g.backlog[0]:
			g.backlog = g.backlog[1:]
		default:
			kept := g.backlog[:0]
			for _, ev := range g.backlog {
				if kb, ok := ev.(userinput.EventKeyboard); ok && kb.Down {
					logger.Logf(logger.Allow, "sdl", "input queue full, dropping %v", ev)
					continue
				}
				kept = append(kept, ev)
			}
			g.backlog = kept
			return
		}
	}
}
