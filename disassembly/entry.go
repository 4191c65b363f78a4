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
	"strings"

	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
)

// EntryLevel describes the level of the Entry.
type EntryLevel int

// List of valid EntryLevel values.
const (
	// the bytes do not form a valid instruction
	EntryLevelData EntryLevel = iota

	// the bytes have been decoded as an instruction
	EntryLevelDecoded
)

func (l EntryLevel) String() string {
	switch l {
	case EntryLevelData:
		return "data"
	case EntryLevelDecoded:
		return "decoded"
	}
	return fmt.Sprintf("EntryLevel(%d)", int(l))
}

// Entry is a single line of the disassembly.
type Entry struct {
	Level EntryLevel

	// the address of the first byte
	Address uint16

	// the bytes that make up the entry. two bytes for most instructions, four
	// bytes for the wide index instruction and one or two bytes for data
	Bytes []uint8

	// the decoded operation. undefined if Level is EntryLevelData
	Op instructions.Operation

	// the value loaded by a wide index instruction
	Wide uint16
}

// Bytecode returns the bytes of the entry as a string of hex words.
func (e *Entry) Bytecode() string {
	s := strings.Builder{}
	for i, b := range e.Bytes {
		if i > 0 && i%2 == 0 {
			s.WriteRune(' ')
		}
		s.WriteString(fmt.Sprintf("%02X", b))
	}
	return s.String()
}

// Mnemonic returns the assembly representation of the entry.
func (e *Entry) Mnemonic() string {
	if e.Level == EntryLevelData {
		if len(e.Bytes) == 1 {
			return fmt.Sprintf("DB #%02X", e.Bytes[0])
		}
		return fmt.Sprintf("DW #%02X%02X", e.Bytes[0], e.Bytes[1])
	}

	if e.Op.Kind == instructions.SetIndexWide {
		return fmt.Sprintf("%s I, #%04X", e.Op.Definition().Mnemonic, e.Wide)
	}

	return e.Op.String()
}

func (e *Entry) String() string {
	return fmt.Sprintf("%#06x %s", e.Address, e.Mnemonic())
}
