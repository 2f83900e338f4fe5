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

package textgui

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"time"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/gui/textgui/easyterm"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/userinput"
)

// InputError is returned by ReadInput() when the input cannot be read.
const InputError = "textgui: %v"

// Runes used to draw pixels that are on and off.
const (
	OnRune  = '#'
	OffRune = ' '
)

// tenths of a second that a read from the terminal will wait for input.
const readTimeout = 1

// the number of events that can be queued before ReadInput() blocks.
const eventQueueLen = 64

// TextGUI is an implementation of gui.GUI for a terminal.
type TextGUI struct {
	output io.Writer

	// both input and term are nil if input is not a terminal
	input *os.File
	term  *easyterm.Terminal

	held      *heldKeys
	userinput chan userinput.Event

	// text is reused by every call to Present()
	text strings.Builder
}

// NewTextGUI is the preferred method of initialisation for the TextGUI type.
// If input is nil then there will be no user input.
func NewTextGUI(input *os.File, output io.Writer) (*TextGUI, error) {
	tg := &TextGUI{
		output:    output,
		held:      newHeldKeys(holdPeriod),
		userinput: make(chan userinput.Event, eventQueueLen),
	}

	// input from anything other than a terminal is ignored. reads from a
	// terminal time out so the reading goroutine can always notice that
	// the context has been cancelled
	if input != nil && easyterm.IsTerminal(input) {
		tg.input = input

		out, ok := output.(*os.File)
		if !ok {
			out = os.Stdout
		}

		tg.term = &easyterm.Terminal{}
		err := tg.term.Initialise(input, out, readTimeout)
		if err != nil {
			return nil, curated.Errorf(gui.CreationError, "text gui", err)
		}

		err = tg.term.CBreakMode()
		if err != nil {
			tg.term.CleanUp()
			return nil, curated.Errorf(gui.CreationError, "text gui", err)
		}

		geom := tg.term.Geometry()
		if geom.Rows > 0 && (geom.Rows <= display.Height || geom.Cols < display.Width) {
			logger.Logf(logger.Allow, "textgui", "terminal (%dx%d) is smaller than the display (%dx%d)",
				geom.Cols, geom.Rows, display.Width, display.Height+1)
		}
	}

	io.WriteString(tg.output, easyterm.ClearScreen+easyterm.HideCursor)

	return tg, nil
}

// Destroy returns the terminal to its normal state.
func (tg *TextGUI) Destroy(output io.Writer) {
	io.WriteString(tg.output, easyterm.ShowCursor)
	if tg.term != nil {
		// discard keys pressed during shutdown so they don't reach the shell
		if err := tg.term.Flush(); err != nil {
			logger.Log(logger.Allow, "textgui", err)
		}
		tg.term.CleanUp()
	}
}

// Service is a stub function. The TextGUI has no need for servicing on the
// main thread.
func (tg *TextGUI) Service() {
}

// Present implements the gui.GUI interface.
func (tg *TextGUI) Present(fb *display.Framebuffer) error {
	tg.text.Reset()
	tg.text.WriteString(easyterm.CursorHome)
	err := fb.Write(&tg.text, OnRune, OffRune)
	if err != nil {
		return err
	}
	_, err = io.WriteString(tg.output, tg.text.String())
	return err
}

// the text shown below the display while the sound timer is active.
const soundIndicator = "[SOUND]"

// IndicateSound implements the gui.SoundIndicator interface. The terminal bell
// is rung when the sound starts.
func (tg *TextGUI) IndicateSound(on bool) error {
	s := easyterm.CursorMove(display.Height+1, 1) + easyterm.ClearLine
	if on {
		s += soundIndicator + easyterm.Bell
	}
	_, err := io.WriteString(tg.output, s)
	return err
}

// UserInput implements the gui.GUI interface.
func (tg *TextGUI) UserInput() <-chan userinput.Event {
	return tg.userinput
}

// ReadInput implements the gui.InputReader interface. It reads characters
// from the terminal until the context is cancelled.
func (tg *TextGUI) ReadInput(ctx context.Context) error {
	if tg.input == nil {
		<-ctx.Done()
		return nil
	}

	buf := make([]byte, 16)

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		// a read that times out looks like an EOF to the os package
		n, err := tg.input.Read(buf)
		if err != nil && !errors.Is(err, io.EOF) {
			return curated.Errorf(InputError, err)
		}

		now := time.Now()
		for _, b := range buf[:n] {
			// cbreak mode leaves signal generation to the terminal but if the
			// interrupt character arrives anyway then treat it as a request
			// to quit
			if b == easyterm.KeyInterrupt {
				if err := tg.send(ctx, userinput.EventQuit{}); err != nil {
					return nil
				}
				continue
			}
			for _, ev := range tg.held.press(keyName(b), now) {
				if err := tg.send(ctx, ev); err != nil {
					return nil
				}
			}
		}

		for _, ev := range tg.held.expire(now) {
			if err := tg.send(ctx, ev); err != nil {
				return nil
			}
		}
	}
}

func (tg *TextGUI) send(ctx context.Context, ev userinput.Event) error {
	select {
	case tg.userinput <- ev:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
