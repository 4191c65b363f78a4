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
	"errors"
	"fmt"
	"io"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/environment"
	"github.com/jetsetilly/gopher8/logger"
)

// Memory layout.
const (
	Size         = 0x10000
	FontBase     = 0x50
	GlyphSize    = 5
	ProgramStart = 0x200
)

// OutOfRange is the pattern of the error returned when an access would be
// outside of the memory. The values are the base address and the offset.
const OutOfRange = "memory: address out of range (%#04x + %d)"

// the glyphs for the hexadecimal digits 0 to F
var font = [16 * GlyphSize]uint8{
	0xf0, 0x90, 0x90, 0x90, 0xf0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xf0, 0x10, 0xf0, 0x80, 0xf0, // 2
	0xf0, 0x10, 0xf0, 0x10, 0xf0, // 3
	0x90, 0x90, 0xf0, 0x10, 0x10, // 4
	0xf0, 0x80, 0xf0, 0x10, 0xf0, // 5
	0xf0, 0x80, 0xf0, 0x90, 0xf0, // 6
	0xf0, 0x10, 0x20, 0x40, 0x40, // 7
	0xf0, 0x90, 0xf0, 0x90, 0xf0, // 8
	0xf0, 0x90, 0xf0, 0x10, 0xf0, // 9
	0xf0, 0x90, 0xf0, 0x90, 0x90, // A
	0xe0, 0x90, 0xe0, 0x90, 0xe0, // B
	0xf0, 0x80, 0x80, 0x80, 0xf0, // C
	0xe0, 0x90, 0x90, 0x90, 0xe0, // D
	0xf0, 0x80, 0xf0, 0x80, 0xf0, // E
	0xf0, 0x80, 0xf0, 0x80, 0x80, // F
}

// GlyphAddress returns the address of the glyph for the low nibble of digit.
func GlyphAddress(digit uint8) uint16 {
	return FontBase + uint16(digit&0x0f)*GlyphSize
}

// Memory is the 64KB memory of the machine.
type Memory struct {
	env  *environment.Environment
	data [Size]uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
// The memory is zeroed and the font is loaded.
func NewMemory(env *environment.Environment) *Memory {
	mem := &Memory{env: env}
	mem.Reset()
	return mem
}

// Reset zeroes memory and reloads the font.
func (mem *Memory) Reset() {
	clear(mem.data[:])
	copy(mem.data[FontBase:], font[:])
}

func (mem *Memory) String() string {
	return fmt.Sprintf("memory: %d bytes", Size)
}

// effective address of base plus offset
func (mem *Memory) address(base uint16, offset int) (int, error) {
	a := int(base) + offset
	if a < 0 || a >= Size {
		return 0, curated.Errorf(OutOfRange, base, offset)
	}
	return a, nil
}

// InRange returns an error if any of the n bytes starting at base are outside
// of the memory.
func (mem *Memory) InRange(base uint16, n int) error {
	if n <= 0 {
		return nil
	}
	_, err := mem.address(base, n-1)
	return err
}

// Read the byte at base plus offset.
func (mem *Memory) Read(base uint16, offset int) (uint8, error) {
	a, err := mem.address(base, offset)
	if err != nil {
		return 0, err
	}
	return mem.data[a], nil
}

// Write the byte at base plus offset.
func (mem *Memory) Write(base uint16, offset int, v uint8) error {
	a, err := mem.address(base, offset)
	if err != nil {
		return err
	}
	mem.data[a] = v
	return nil
}

// ReadWord reads the big-endian word at addr. Both bytes must be inside the
// memory.
func (mem *Memory) ReadWord(addr uint16) (uint16, error) {
	a, err := mem.address(addr, 1)
	if err != nil {
		return 0, err
	}
	return uint16(mem.data[a-1])<<8 | uint16(mem.data[a]), nil
}

// Slice returns a copy of n bytes starting at base. Every byte must be inside
// the memory.
func (mem *Memory) Slice(base uint16, n int) ([]uint8, error) {
	if n <= 0 {
		return []uint8{}, nil
	}
	if err := mem.InRange(base, n); err != nil {
		return nil, err
	}
	s := make([]uint8, n)
	copy(s, mem.data[base:int(base)+n])
	return s, nil
}

// Peek returns the byte at addr. Every 16bit address is inside the memory so
// there is no error condition.
func (mem *Memory) Peek(addr uint16) uint8 {
	return mem.data[addr]
}

// Poke sets the byte at addr.
func (mem *Memory) Poke(addr uint16, v uint8) {
	mem.data[addr] = v
}

// LoadROM copies the contents of the reader into memory at ProgramStart. The
// data is copied verbatim. A reader that provides less data than the available
// space is not an error. Data that does not fit is ignored and the truncation
// is logged. Returns the number of bytes loaded.
func (mem *Memory) LoadROM(r io.Reader) (int, error) {
	n, err := io.ReadFull(r, mem.data[ProgramStart:])
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return n, nil
		}
		return n, fmt.Errorf("memory: %w", err)
	}

	// the memory is full. check for any remaining data
	var b [1]uint8
	if m, _ := r.Read(b[:]); m > 0 {
		logger.Logf(mem.env, "memory", "rom truncated to %d bytes", n)
	}

	return n, nil
}
