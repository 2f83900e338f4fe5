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

// Package curated is a helper package for the plain Go language error type.
// Errors created with the Errorf() function remember the pattern they were
// created with and it is the pattern that identifies the kind of error.
//
// Packages that want to expose a kind of error declare the pattern as an
// exported const string. For example, the memory package declares:
//
//	const ProgramTooLarge = "memory: program too large (%d bytes at %#03x)"
//
// and a caller can test for it without caring about the values:
//
//	err := mem.Load(data, memory.ProgramOrigin)
//	if curated.Is(err, memory.ProgramTooLarge) {
//		...
//	}
//
// Errors are often wrapped as they travel back up the call stack. The Has()
// function checks the whole chain for the pattern, whereas Is() only checks
// the outermost error.
//
//	err := curated.Errorf("programloader: %v", memErr)
//	curated.Is(err, memory.ProgramTooLarge)  // false
//	curated.Has(err, memory.ProgramTooLarge) // true
//
// Error chains are made of parts separated by ": ". The Error() function
// removes a part if it is the same as the part immediately after it, so that
// wrapping an error with the same prefix more than once does not stutter.
// ie. "cpu: cpu: unknown instruction" is printed as "cpu: unknown instruction"
package curated
