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

// Package memory implements the 64KB byte addressable memory of the machine.
//
// All access that is derived from machine state (the index register, the
// program counter) goes through the checked accessors Read(), Write(),
// ReadWord() and Slice(). These never wrap and never panic. An address outside
// of the memory results in a curated error with the OutOfRange pattern.
//
// The font is loaded at FontBase when the memory is created. Programs are
// loaded at ProgramStart.
package memory
