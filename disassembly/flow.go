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

package disassembly

import (
	"fmt"

	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
)

// flow follows the program from the origin and blesses every entry that
// can be reached.
func (dsm *Disassembly) flow() {
	dsm.labels[dsm.Origin] = "start"

	queue := []uint16{dsm.Origin}

	for len(queue) > 0 {
		address := queue[0]
		queue = queue[1:]

		for {
			opcode, ok := dsm.word(address)
			if !ok {
				break // for loop
			}

			e, ok := dsm.entries[address]
			if !ok {
				e = newEntry(address, opcode)
				dsm.entries[address] = e
			}

			// an instruction that retrogolib does not recognise is the start
			// of data. an entry that has already been blessed has already
			// been followed
			if e.Op.Instruction == nil || e.Level == EntryLevelBlessed {
				break // for loop
			}
			e.Level = EntryLevelBlessed

			// whether the instruction after this one can be reached
			fallthru := true

			switch flowOf(e.Op) {
			case flowJump:
				target := instructions.NNN(opcode)
				dsm.addLabel(target, "L")
				queue = append(queue, target)
				fallthru = false

			case flowCall:
				target := instructions.NNN(opcode)
				dsm.addLabel(target, "S")
				queue = append(queue, target)

			case flowSkip:
				queue = append(queue, address+4)

			case flowDataRef:
				target := instructions.NNN(opcode)
				if target >= dsm.Origin && target < dsm.end() {
					dsm.addLabel(target, "D")
				}

			case flowStop:
				fallthru = false
			}

			if !fallthru {
				break // for loop
			}
			address += 2
		}
	}
}

// addLabel adds a label for the address if there isn't one already.
func (dsm *Disassembly) addLabel(address uint16, prefix string) {
	if _, ok := dsm.labels[address]; ok {
		return
	}
	dsm.labels[address] = fmt.Sprintf("%s%03X", prefix, address)
}
