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

package memory

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
)

// Memory layout.
const (
	Size          = 4096
	AddressMask   = 0x0fff
	FontOrigin    = uint16(0x000)
	ProgramOrigin = uint16(0x200)

	// the largest program that can be loaded at ProgramOrigin
	ProgramCapacity = Size - int(ProgramOrigin)
)

// Sentinal error returned by Load() when the data will not fit in memory.
const (
	ProgramTooLarge = "memory: program too large (%d bytes at %#03x, capacity is %d bytes)"
)

// Memory is the addressable memory of the machine.
type Memory struct {
	data [Size]uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
// The font is written to memory.
func NewMemory() *Memory {
	mem := &Memory{}
	mem.Reset()
	return mem
}

func (mem *Memory) String() string {
	return fmt.Sprintf("%d bytes", len(mem.data))
}

// Reset zeroes memory and writes the font at FontOrigin.
func (mem *Memory) Reset() {
	clear(mem.data[:])
	copy(mem.data[FontOrigin:], Font[:])
}

// Read returns the value at the address.
func (mem *Memory) Read(address uint16) uint8 {
	return mem.data[address&AddressMask]
}

// Write the value to the address.
func (mem *Memory) Write(address uint16, data uint8) {
	mem.data[address&AddressMask] = data
}

// Read16 returns the big-endian 16 bit value at address and address+1.
func (mem *Memory) Read16(address uint16) uint16 {
	return uint16(mem.Read(address))<<8 | uint16(mem.Read(address+1))
}

// ReadN returns a copy of the n bytes starting at the address. Addresses wrap
// around at the end of memory.
func (mem *Memory) ReadN(address uint16, n int) []uint8 {
	b := make([]uint8, n)
	for i := range b {
		b[i] = mem.Read(address + uint16(i))
	}
	return b
}

// Load copies data into memory starting at origin. Nothing is written if the
// data will not fit between origin and the end of memory. Origins at or
// beyond the end of memory have no capacity and are not wrapped.
func (mem *Memory) Load(data []uint8, origin uint16) error {
	capacity := max(Size-int(origin), 0)
	if len(data) > capacity {
		return curated.Errorf(ProgramTooLarge, len(data), origin, capacity)
	}
	if len(data) == 0 {
		return nil
	}
	copy(mem.data[origin:], data)
	return nil
}

// Dump returns a hexadecimal listing of memory between the two addresses
// inclusive. Sixteen bytes are listed on each line.
func (mem *Memory) Dump(from, to uint16) string {
	from &= AddressMask
	to &= AddressMask

	s := strings.Builder{}
	for a := from; a <= to; a++ {
		if (a-from)%16 == 0 {
			if a != from {
				s.WriteString("\n")
			}
			s.WriteString(fmt.Sprintf("%03x:", a))
		}
		s.WriteString(fmt.Sprintf(" %02x", mem.data[a]))
	}
	return s.String()
}
