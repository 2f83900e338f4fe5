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

// Package disassembly produces a static listing of a program image.
//
// Every two byte word of the program is first decoded as though it is an
// instruction. The flow of the program is then followed from the origin and
// the words that can be reached are blessed. Blessed entries are much more
// likely to be real instructions; everything else is probably data.
//
// Jump and call targets are given labels. The targets of JP V0 instructions
// depend on the state of the machine and can not be followed.
//
// Mnemonics are taken from the CHIP-8 definitions of the retrogolib package
// where possible, so that the listing agrees with other tools in that
// ecosystem.
package disassembly
