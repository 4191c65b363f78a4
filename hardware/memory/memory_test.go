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

package memory_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/test"
)

func TestFont(t *testing.T) {
	mem := memory.NewMemory(nil)

	test.ExpectEquality(t, memory.GlyphAddress(0x0a), uint16(0x82))
	test.ExpectEquality(t, memory.GlyphAddress(0xfa), uint16(0x82))

	// glyph for zero
	s, err := mem.Slice(memory.FontBase, memory.GlyphSize)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, bytes.Equal(s, []uint8{0xf0, 0x90, 0x90, 0x90, 0xf0}))

	// glyph for F
	s, err = mem.Slice(memory.GlyphAddress(0xf), memory.GlyphSize)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, bytes.Equal(s, []uint8{0xf0, 0x80, 0xf0, 0x80, 0x80}))

	// memory either side of the font is empty
	test.ExpectEquality(t, mem.Peek(memory.FontBase-1), uint8(0))
	test.ExpectEquality(t, mem.Peek(memory.FontBase+16*memory.GlyphSize), uint8(0))
}

func TestCheckedAccess(t *testing.T) {
	mem := memory.NewMemory(nil)

	test.ExpectSuccess(t, mem.Write(0xfffe, 1, 0x12))
	v, err := mem.Read(0xffff, 0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x12))

	err = mem.Write(0xffff, 1, 0x12)
	test.ExpectSuccess(t, curated.Is(err, memory.OutOfRange))
	_, err = mem.Read(0x0000, -1)
	test.ExpectSuccess(t, curated.Is(err, memory.OutOfRange))

	_, err = mem.ReadWord(0xffff)
	test.ExpectSuccess(t, curated.Is(err, memory.OutOfRange))

	_, err = mem.Slice(0xfff0, 17)
	test.ExpectSuccess(t, curated.Is(err, memory.OutOfRange))
	s, err := mem.Slice(0xfff0, 16)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(s), 16)
	test.ExpectEquality(t, s[15], uint8(0x12))

	test.ExpectSuccess(t, mem.InRange(0xfff0, 16))
	test.ExpectFailure(t, mem.InRange(0xfff0, 17))
	test.ExpectSuccess(t, mem.InRange(0xffff, 0))

	// slices are copies
	s[15] = 0
	test.ExpectEquality(t, mem.Peek(0xffff), uint8(0x12))
}

func TestReadWord(t *testing.T) {
	mem := memory.NewMemory(nil)
	mem.Poke(0x200, 0x6a)
	mem.Poke(0x201, 0x3c)
	w, err := mem.ReadWord(0x200)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, w, uint16(0x6a3c))
}

func TestLoadROM(t *testing.T) {
	mem := memory.NewMemory(nil)

	n, err := mem.LoadROM(bytes.NewReader([]byte{0x00, 0xe0, 0x12, 0x00}))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 4)
	w, _ := mem.ReadWord(memory.ProgramStart)
	test.ExpectEquality(t, w, uint16(0x00e0))
	w, _ = mem.ReadWord(memory.ProgramStart + 2)
	test.ExpectEquality(t, w, uint16(0x1200))

	// empty roms are not an error
	n, err = mem.LoadROM(bytes.NewReader(nil))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 0)
}

func TestLoadROMTruncated(t *testing.T) {
	logger.Clear()
	defer logger.Clear()

	mem := memory.NewMemory(nil)
	rom := bytes.Repeat([]byte{0xaa}, memory.Size)
	n, err := mem.LoadROM(bytes.NewReader(rom))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, memory.Size-memory.ProgramStart)
	test.ExpectEquality(t, mem.Peek(0xffff), uint8(0xaa))

	// font is untouched
	test.ExpectEquality(t, mem.Peek(memory.FontBase), uint8(0xf0))

	var w strings.Builder
	logger.Write(&w)
	test.ExpectSuccess(t, strings.Contains(w.String(), "rom truncated"))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestLoadROMError(t *testing.T) {
	mem := memory.NewMemory(nil)
	_, err := mem.LoadROM(failingReader{})
	test.ExpectFailure(t, err)
}
