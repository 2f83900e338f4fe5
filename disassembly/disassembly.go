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
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/programloader"
)

// Sentinal errors returned by the disassembly package.
const (
	NoProgram = "disassembly: no program data"
)

// Disassembly represents the annotated disassembly of a program image.
type Disassembly struct {
	Origin uint16
	data   []uint8

	// entries indexed by address. words at odd addresses only have an entry
	// if they are reached by the flow of the program
	entries map[uint16]*Entry

	// labels for addresses that are the target of a jump or call, or that
	// are referenced as data by LD I
	labels map[uint16]string
}

// FromLoader disassembles the data in the loader. The loader will be loaded
// if it has not been already.
func FromLoader(loader programloader.Loader) (*Disassembly, error) {
	if !loader.HasLoaded() {
		err := loader.Load()
		if err != nil {
			return nil, curated.Errorf("disassembly: %v", err)
		}
	}
	return FromData(loader.Data, memory.ProgramOrigin)
}

// FromData disassembles the data as it would be placed in memory at origin.
func FromData(data []uint8, origin uint16) (*Disassembly, error) {
	if len(data) == 0 {
		return nil, curated.Errorf(NoProgram)
	}
	if int(origin)+len(data) > memory.Size {
		return nil, curated.Errorf(memory.ProgramTooLarge, len(data), origin, memory.Size-int(origin))
	}

	dsm := &Disassembly{
		Origin:  origin,
		data:    data,
		entries: make(map[uint16]*Entry),
		labels:  make(map[uint16]string),
	}

	dsm.decode()
	dsm.flow()

	for address, label := range dsm.labels {
		if e, ok := dsm.entries[address]; ok {
			e.Label = label
		}
	}

	return dsm, nil
}

// end returns the address after the last byte of data.
func (dsm *Disassembly) end() uint16 {
	return dsm.Origin + uint16(len(dsm.data))
}

// word returns the instruction word at the address. returns false if the
// address is outside of the data or the word is incomplete.
func (dsm *Disassembly) word(address uint16) (uint16, bool) {
	if address < dsm.Origin || address+1 >= dsm.end() {
		return 0, false
	}
	i := address - dsm.Origin
	return uint16(dsm.data[i])<<8 | uint16(dsm.data[i+1]), true
}

// GetEntryByAddress returns the entry at the address. Returns false if there
// is no entry.
func (dsm *Disassembly) GetEntryByAddress(address uint16) (*Entry, bool) {
	e, ok := dsm.entries[address]
	return e, ok
}
