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
	"io"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/programloader"
)

// Sentinal error returned by RunForFrames().
const (
	InvalidFrameCount = "playmode: frame count must be positive (%d)"
)

// Runes used by RunForFrames() to write pixels that are on and off.
const (
	OnRune  = '#'
	OffRune = '.'
)

// RunForFrames runs the program without a GUI for the number of frames and
// then writes the framebuffer to output. The frames are not limited to the
// timer rate. A program that is waiting for a key will wait forever.
func RunForFrames(m *hardware.Machine, loader programloader.Loader, frames int, output io.Writer) error {
	if frames <= 0 {
		return curated.Errorf(InvalidFrameCount, frames)
	}

	err := loader.Attach(m)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	err = m.RunForFrameCount(frames, nil)
	if err != nil {
		logMachine(m)
		return curated.Errorf("playmode: %v", err)
	}
	logger.Logf(logger.Allow, "playmode", "ran %s for %d frames", loader.ShortName(), frames)

	return m.Display.Write(output, OnRune, OffRune)
}
