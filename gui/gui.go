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

package gui

import (
	"context"

	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/userinput"
)

// GUI defines the operations that can be performed on visual user interfaces.
type GUI interface {
	// Present the current state of the framebuffer. Should only be called
	// when the framebuffer has changed.
	Present(fb *display.Framebuffer) error

	// UserInput returns the channel on which user input events are sent. The
	// channel should be drained at least once per frame.
	UserInput() <-chan userinput.Event
}

// InputReader is implemented by GUIs that must read user input in a goroutine
// of their own. The function should block until the context is cancelled or
// until an error occurs.
type InputReader interface {
	ReadInput(ctx context.Context) error
}

// SoundIndicator is implemented by GUIs that can show that the sound timer
// is active. IndicateSound is called whenever the state changes.
type SoundIndicator interface {
	IndicateSound(on bool) error
}

// Sentinal error returned when a GUI could not be created.
const (
	CreationError = "gui: cannot create %s: %v"
)
