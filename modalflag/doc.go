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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a method of handling program modes and allows a
// different set of flags for each mode.
//
// Unlike flag.FlagSet, arguments are given with NewArgs() and then Parse() is
// called with no arguments. This allows the argument list to be parsed in
// layers, one layer for each mode:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "DISASM")
//	_, _ = md.Parse()
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		scale := md.AddInt("scale", 10, "window scaling")
//		_, _ = md.Parse()
//		run(md.GetArg(0), *scale)
//	}
//
// The first sub-mode is the default and is selected if the first argument
// after the flags is not a sub-mode. Sub-mode comparisons are case
// insensitive.
//
// Help messages are printed to the Output field of the Modes struct when the
// -help flag is given. The flags and sub-modes of the current layer are
// listed.
package modalflag
