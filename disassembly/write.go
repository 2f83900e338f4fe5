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
	"io"
	"strings"
)

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	// include the instruction word as it appears in memory
	ByteCode bool

	// show entries that have only been decoded as instructions rather than
	// as data
	Decoded bool
}

// Write the entire disassembly to io.Writer. Bytes that are not part of a
// blessed entry are written as data.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) error {
	address := dsm.Origin
	for address < dsm.end() {
		e, ok := dsm.GetEntryByAddress(address)
		if ok && (e.Level == EntryLevelBlessed || attr.Decoded) {
			err := dsm.WriteEntry(output, attr, e)
			if err != nil {
				return err
			}
			address += 2
			continue
		}

		err := dsm.writeData(output, attr, address)
		if err != nil {
			return err
		}
		address++
	}

	return nil
}

// WriteEntry writes a single entry to io.Writer.
func (dsm *Disassembly) WriteEntry(output io.Writer, attr WriteAttr, e *Entry) error {
	if e.Label != "" {
		if _, err := io.WriteString(output, fmt.Sprintf("%s:\n", e.Label)); err != nil {
			return err
		}
	}

	bytecode := ""
	if attr.ByteCode {
		bytecode = fmt.Sprintf("%s  ", e.Bytecode())
	}

	line := fmt.Sprintf("  %03X  %s%-4s %s", e.Address, bytecode, e.Operator, e.Operand)
	_, err := io.WriteString(output, strings.TrimRight(line, " ")+"\n")
	return err
}

func (dsm *Disassembly) writeData(output io.Writer, attr WriteAttr, address uint16) error {
	b := dsm.data[address-dsm.Origin]

	if label, ok := dsm.labels[address]; ok {
		if _, err := io.WriteString(output, fmt.Sprintf("%s:\n", label)); err != nil {
			return err
		}
	}

	bytecode := ""
	if attr.ByteCode {
		bytecode = fmt.Sprintf("%02x     ", b)
	}

	_, err := io.WriteString(output, fmt.Sprintf("  %03X  %sDB   $%02X\n", address, bytecode, b))
	return err
}
