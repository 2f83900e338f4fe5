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

// Package programloader is used to specify the program image that is to be
// attached to the emulated machine.
//
// The program is read whole with the Load() function. Local files and data
// over HTTP are supported. The simplest use of the Loader type:
//
//	pl := programloader.NewLoader("roms/pong.ch8")
//	if err := pl.Load(); err != nil {
//		return err
//	}
//	if err := pl.Attach(machine); err != nil {
//		return err
//	}
//
// Load() returns distinct errors for a file that cannot be opened
// (FileOpenError), a file that could not be read in full (ShortRead) and a
// file that is too large to fit in memory (memory.ProgramTooLarge). The
// curated package can be used to tell them apart.
package programloader
