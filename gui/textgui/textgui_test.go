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

package textgui_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/gui/textgui"
	"github.com/jetsetilly/gopher8/gui/textgui/easyterm"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/test"
)

func TestPresent(t *testing.T) {
	w := &test.CompareWriter{}

	tg, err := textgui.NewTextGUI(nil, w)
	test.DemandSuccess(t, err)
	defer tg.Destroy(w)

	var _ gui.GUI = tg
	var _ gui.InputReader = tg
	var _ gui.SoundIndicator = tg

	w.Clear()

	fb := display.NewFramebuffer()
	fb.Draw(0, 0, []uint8{0x80})
	test.ExpectSuccess(t, tg.Present(fb))

	s := w.String()
	test.ExpectSuccess(t, strings.HasPrefix(s, easyterm.CursorHome))

	lines := strings.Split(strings.TrimPrefix(s, easyterm.CursorHome), "\n")
	test.ExpectEquality(t, lines[0], "#"+strings.Repeat(" ", display.Width-1))
	test.ExpectEquality(t, lines[1], strings.Repeat(" ", display.Width))
	test.ExpectEquality(t, len(lines), display.Height+1)
}

func TestIndicateSound(t *testing.T) {
	w := &test.CompareWriter{}

	tg, err := textgui.NewTextGUI(nil, w)
	test.DemandSuccess(t, err)
	defer tg.Destroy(w)

	status := easyterm.CursorMove(display.Height+1, 1) + easyterm.ClearLine

	w.Clear()
	test.ExpectSuccess(t, tg.IndicateSound(true))
	test.ExpectEquality(t, w.String(), status+"[SOUND]\a")

	w.Clear()
	test.ExpectSuccess(t, tg.IndicateSound(false))
	test.ExpectEquality(t, w.String(), status)
}

func TestReadInputWithoutTerminal(t *testing.T) {
	tg, err := textgui.NewTextGUI(nil, &test.CompareWriter{})
	test.DemandSuccess(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() {
		done <- tg.ReadInput(ctx)
	}()

	cancel()

	select {
	case err := <-done:
		test.ExpectSuccess(t, err)
	case <-time.After(time.Second):
		t.Fatalf("ReadInput() did not return after cancellation")
	}
}
