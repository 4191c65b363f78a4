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


package disassembly_test

import (
	"bytes"
	"testing"

	"github.com/jetsetilly/gopher8/disassembly"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/test"
)

func TestLinear(t *testing.T) {
	rom := []byte{
		0x6a, 0x3c, // LD VA, #3C
		0xf0, 0x00, 0x12, 0x34, // LD I, #1234
		0x00, 0x00, // data
		0x12, 0x00, // JP #200
		0xff, // odd byte
	}

	dsm, err := disassembly.FromReader(bytes.NewReader(rom))
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(dsm.Entries), 5)

	e := dsm.Entries[0]
	test.ExpectEquality(t, e.Level, disassembly.EntryLevelDecoded)
	test.ExpectEquality(t, e.Op.Kind, instructions.SetConst)

	e = dsm.Entries[1]
	test.ExpectEquality(t, e.Address, uint16(0x202))
	test.ExpectEquality(t, e.Op.Kind, instructions.SetIndexWide)
	test.ExpectEquality(t, e.Wide, uint16(0x1234))
	test.ExpectEquality(t, e.Bytecode(), "F000 1234")
	test.ExpectEquality(t, e.Mnemonic(), "LD I, #1234")

	// the word following the wide index instruction is not an entry
	_, ok := dsm.GetEntryByAddress(0x204)
	test.ExpectFailure(t, ok)

	e, ok = dsm.GetEntryByAddress(0x206)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, e.Level, disassembly.EntryLevelData)
	test.ExpectEquality(t, e.Mnemonic(), "DW #0000")

	e = dsm.Entries[4]
	test.ExpectEquality(t, e.Address, uint16(0x20a))
	test.ExpectEquality(t, e.Mnemonic(), "DB #FF")

	c := dsm.Count()
	test.ExpectEquality(t, c[disassembly.EntryLevelDecoded], 3)
	test.ExpectEquality(t, c[disassembly.EntryLevelData], 2)
}

func TestWideTruncated(t *testing.T) {
	// wide index instruction with no room for the value
	dsm, err := disassembly.FromReader(bytes.NewReader([]byte{0xf0, 0x00, 0x12}))
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(dsm.Entries), 2)
	test.ExpectEquality(t, dsm.Entries[0].Level, disassembly.EntryLevelData)
	test.ExpectEquality(t, dsm.Entries[0].Mnemonic(), "DW #F000")
}

func TestWrite(t *testing.T) {
	dsm, err := disassembly.FromReader(bytes.NewReader([]byte{0x6a, 0x3c, 0x12, 0x00}))
	test.DemandSuccess(t, err)

	w := &test.CompareWriter{}
	test.DemandSuccess(t, dsm.Write(w, disassembly.WriteAttr{}))
	test.ExpectEquality(t, w.String(), "0x0200  LD VA, #3C\n0x0202  JP #200\n")

	w.Clear()
	test.DemandSuccess(t, dsm.Write(w, disassembly.WriteAttr{ByteCode: true}))
	test.ExpectEquality(t, w.String(), "0x0200  6A3C       LD VA, #3C\n0x0202  1200       JP #200\n")
}
