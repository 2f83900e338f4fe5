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
	"fmt"
	"io"
	"sync"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/userinput"

	"github.com/veandco/go-sdl2/sdl"
)

const windowTitle = "Gopher8"

// DefaultScale is the scale used if the requested scale is not positive.
const DefaultScale = 10

// the number of events that can be queued before key presses are dropped.
const eventQueueLen = 64

// GUI is a simple SDL implementation of the gui.GUI interface.
type GUI struct {
	window   *sdl.Window
	renderer *sdl.Renderer

	// much of the work of drawing the framebuffer happens in the screen type
	scr *screen

	// pixels are written by Present() and read by Service()
	crit    sync.Mutex
	pixels  []byte
	pending bool

	// the window title is changed by Service() when the sound timer starts
	// or stops
	sounding     bool
	titlePending bool

	userinput chan userinput.Event

	// events waiting to be sent on the userinput channel. only accessed from
	// the #mainthread
	backlog []userinput.Event
}

// NewGUI is the preferred method of initialisation for the GUI type.
//
// MUST ONLY be called from the #mainthread
func NewGUI(scale int) (*GUI, error) {
	if scale <= 0 {
		scale = DefaultScale
	}

	g := &GUI{
		pixels:    make([]byte, display.Width*display.Height*scrDepth),
		userinput: make(chan userinput.Event, eventQueueLen),
	}

	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, curated.Errorf(gui.CreationError, "sdl window", err)
	}

	g.window, err = sdl.CreateWindow(windowTitle,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(display.Width*scale), int32(display.Height*scale),
		sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf(gui.CreationError, "sdl window", err)
	}

	g.renderer, err = sdl.CreateRenderer(g.window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		g.window.Destroy()
		sdl.Quit()
		return nil, curated.Errorf(gui.CreationError, "sdl renderer", err)
	}

	g.scr, err = newScreen(g.renderer, int32(scale))
	if err != nil {
		g.renderer.Destroy()
		g.window.Destroy()
		sdl.Quit()
		return nil, curated.Errorf(gui.CreationError, "sdl screen", err)
	}

	// show a blank screen until the first call to Present()
	g.pending = true

	logger.Logf(logger.Allow, "sdl", "window created with scale %d", scale)

	return g, nil
}

// Destroy the SDL window and release resources.
//
// MUST ONLY be called from the #mainthread
func (g *GUI) Destroy(output io.Writer) {
	err := g.scr.destroy()
	if err != nil {
		output.Write([]byte(fmt.Sprintf("sdl: %v\n", err)))
	}
	err = g.renderer.Destroy()
	if err != nil {
		output.Write([]byte(fmt.Sprintf("sdl: %v\n", err)))
	}
	err = g.window.Destroy()
	if err != nil {
		output.Write([]byte(fmt.Sprintf("sdl: %v\n", err)))
	}
	sdl.Quit()
}

// Present implements the gui.GUI interface. The pixels are copied and will
// be drawn to the window on the next call to Service().
func (g *GUI) Present(fb *display.Framebuffer) error {
	g.crit.Lock()
	defer g.crit.Unlock()
	fillPixels(g.pixels, fb.Pixels())
	g.pending = true
	return nil
}

// IndicateSound implements the gui.SoundIndicator interface. The window title
// will be changed on the next call to Service().
func (g *GUI) IndicateSound(on bool) error {
	g.crit.Lock()
	defer g.crit.Unlock()
	g.sounding = on
	g.titlePending = true
	return nil
}

// title returns the window title for the sound state.
func title(sounding bool) string {
	if sounding {
		return fmt.Sprintf("%s [SOUND]", windowTitle)
	}
	return windowTitle
}

// UserInput implements the gui.GUI interface.
func (g *GUI) UserInput() <-chan userinput.Event {
	return g.userinput
}
