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

package cpu

import (
	"fmt"

	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
)

// Result records the outcome of the most recent call to ExecuteInstruction().
type Result struct {
	// the address the instruction was fetched from
	Address uint16

	// the instruction word
	Opcode uint16

	// the definition of the instruction. will be nil if the instruction word
	// could not be decoded
	Defn *instructions.Definition

	// the instruction was a skip instruction and the condition was true
	Skipped bool

	// the instruction is waiting for a key press and will be retried
	Blocked bool

	// the instruction completed without error. an unknown instruction that
	// was skipped over is considered to be final
	Final bool
}

// Reset the result to the zero value.
func (r *Result) Reset() {
	*r = Result{}
}

func (r Result) String() string {
	if r.Defn == nil {
		return fmt.Sprintf("%03x: %04x ???", r.Address, r.Opcode)
	}

	s := fmt.Sprintf("%03x: %04x %s", r.Address, r.Opcode, r.Defn.Format(r.Opcode))
	if r.Blocked {
		s = fmt.Sprintf("%s (waiting)", s)
	}
	if r.Skipped {
		s = fmt.Sprintf("%s (skip)", s)
	}
	return s
}
