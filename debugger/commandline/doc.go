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

// Package commandline facilitates parsing of debugger input. TokeniseInput()
// divides input into Tokens that can be walked with Get(), Peek() and
// Unget().
//
// The TabCompletion type is used to transform input such that it more closely
// resembles a known command. Given a number of options to use for the
// completion, the first option will be returned first followed by the second,
// third, etc. on subsequent calls to Complete(). A tab completion session can
// be terminated with a call to Reset().
package commandline
