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

// Package debugger implements a reaction-driven debugger for the emulated
// machine. Commands are read from a terminal.Terminal implementation and
// results are written back to it.
//
// The debugger is created with NewDebugger() and the input loop started with
// Start(). The loop ends with the QUIT command, when the terminal input ends,
// or when the context is cancelled.
//
// Commands are case-insensitive. Numeric arguments can be written in decimal
// or, with a 0x, $ or # prefix, in hexadecimal. An empty line steps a single
// instruction. The HELP command lists all commands.
package debugger
