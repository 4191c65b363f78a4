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
	"io"

	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/memory"
)

// Disassembly represents the linear disassembly of a program.
type Disassembly struct {
	// entries in address order
	Entries []*Entry

	// indexed by address. only the first byte of an entry is referenced
	reference map[uint16]*Entry
}

// FromReader creates a disassembly of the program data in the reader. The
// program is loaded at the program start address in the same way as the
// machine loads a program.
func FromReader(r io.Reader) (*Disassembly, error) {
	mem := memory.NewMemory(nil)
	n, err := mem.LoadROM(r)
	if err != nil {
		return nil, err
	}
	return FromMemory(mem, memory.ProgramStart, n), nil
}

// FromMemory creates a disassembly of length bytes of memory starting at the
// start address. Bytes beyond the end of memory are ignored.
func FromMemory(mem *memory.Memory, start uint16, length int) *Disassembly {
	dsm := &Disassembly{
		reference: make(map[uint16]*Entry),
	}

	end := int(start) + length
	if end > memory.Size {
		end = memory.Size
	}

	addr := int(start)
	for addr < end {
		e := decodeEntry(mem, addr, end)
		dsm.Entries = append(dsm.Entries, e)
		dsm.reference[e.Address] = e
		addr += len(e.Bytes)
	}

	return dsm
}

// decode the entry at the address. the entry will not extend beyond end
func decodeEntry(mem *memory.Memory, addr int, end int) *Entry {
	e := &Entry{
		Level:   EntryLevelData,
		Address: uint16(addr),
	}

	if end-addr < 2 {
		e.Bytes = []uint8{mem.Peek(uint16(addr))}
		return e
	}

	e.Bytes = []uint8{mem.Peek(uint16(addr)), mem.Peek(uint16(addr + 1))}
	w := uint16(e.Bytes[0])<<8 | uint16(e.Bytes[1])

	op, err := instructions.Decode(w)
	if err != nil {
		return e
	}

	n := op.Definition().Bytes
	if end-addr < n {
		return e
	}

	for i := 2; i < n; i++ {
		e.Bytes = append(e.Bytes, mem.Peek(uint16(addr+i)))
	}

	if op.Kind == instructions.SetIndexWide {
		e.Wide = uint16(e.Bytes[2])<<8 | uint16(e.Bytes[3])
	}

	e.Op = op
	e.Level = EntryLevelDecoded

	return e
}

// GetEntryByAddress returns the disassembly entry that starts at the address.
func (dsm *Disassembly) GetEntryByAddress(address uint16) (*Entry, bool) {
	e, ok := dsm.reference[address]
	return e, ok
}

// Count returns the number of entries at each level.
func (dsm *Disassembly) Count() map[EntryLevel]int {
	c := make(map[EntryLevel]int)
	for _, e := range dsm.Entries {
		c[e.Level]++
	}
	return c
}
