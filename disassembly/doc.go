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


// Package disassembly produces a linear listing of a program. Every word from
// the program start address is decoded as though it is an instruction. Words
// that do not decode are listed as data.
//
// A linear disassembly can not tell the difference between instructions and
// data that happens to look like an instruction. The listing is nonetheless
// useful for inspecting a program before and during debugging.
//
// The wide index instruction is four bytes long. The word that follows it is
// listed as part of the instruction and not as an instruction in its own
// right.
package disassembly
