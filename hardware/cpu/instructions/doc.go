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

// Package instructions decodes 16-bit instruction words into typed Operation
// values. Decoding is a pure function of the word. Words that are not in the
// instruction table result in a curated error with the MalformedInstruction
// pattern.
//
// Whether an operation is available, and how it behaves, depends on the
// compatibility mode of the machine. That decision is not made here. See the
// compat package.
package instructions
